// Package logger provides structured logging for the Baasic client using
// zerolog.
//
// Loggers are created from Config and passed explicitly to the services that
// use them; the package keeps no global logger and never changes zerolog's
// global level.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(cfg.Logging, "baasic").WithComponent("valueset")
//	log.Debug("resolved route", logger.Fields("url", u))
package logger
