// Package errors provides the structured error type returned by the Baasic
// client core. Each error carries a machine-readable code so callers can
// branch on the failure kind with HasCode or the package-level helpers of the
// hal and validation packages.
package errors
