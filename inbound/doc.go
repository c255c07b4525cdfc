// Package inbound holds the HTTP plumbing shared by the gateway API and the
// reference data service: the chi middleware stack, JSON decoding and the
// error body written for go-errors envelopes.
package inbound
