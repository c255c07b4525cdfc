// Package api serves the catalog gateway over HTTP. Handlers parse and
// validate the request, run the matching command or query, and render
// failures through core.Envelope.
package api
