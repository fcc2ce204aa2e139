// Package observability instruments Baasic API calls with OpenTelemetry.
//
// The SDK never installs exporters or global providers. An Instrumentation
// uses the global otel providers unless explicit ones are supplied, so the
// application that embeds the client decides where spans and metrics go.
//
//	inst, err := observability.New(
//		observability.WithTracerProvider(tp),
//		observability.WithMeterProvider(mp),
//	)
//	ctx, call := inst.Start(ctx, "GET", url)
//	defer call.End(status, outcome, err)
package observability
