// Package app wires a configured Baasic client: one transport, one token
// store and the services that share them.
//
// Nothing is global. Each App owns its transport, so several applications
// can be used side by side.
//
// Example:
//
//	cfg := config.Default()
//	cfg.APIKey = "my-app"
//	client, err := app.New(cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Stop(ctx)
//
//	if _, err := client.Login().Login(ctx, user, pass); err != nil {
//	    return err
//	}
//	page, err := client.ValueSetItems().Find(ctx, "colors", params.FindOptions{})
package app
