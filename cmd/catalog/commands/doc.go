// Package commands wires the catalog command line: the public gateway, the
// data service and a few read-only catalog queries.
package commands
