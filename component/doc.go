// Package component defines the lifecycle interfaces an SDK client exposes
// to a host application: start, stop, health and a startup description.
package component
