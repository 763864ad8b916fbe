// Package service contains the application-specific use cases over the
// task book. It orchestrates the load-mutate-save cycle against the
// durable store and enforces the validation and ordering invariants;
// delivery mechanisms (HTTP handlers, the digest scheduler, exporters)
// call into it rather than touching storage directly.
package service
