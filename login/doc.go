// Package login authenticates against the Baasic login endpoint and keeps
// the resulting access token.
//
//	svc := login.NewService(transport, login.WithStore(store))
//	token, err := svc.Login(ctx, "alice", "secret")
//	user, err := svc.LoadUserData(ctx)
//	err = svc.Logout(ctx, token.AccessToken, token.TokenType)
//
// A successful Login stores the token in the service's TokenStore. The
// store also implements httpclient.TokenSource, so the transport can send
// it as the Authorization header of later requests.
package login
