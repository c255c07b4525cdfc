// Package core contains the catalog domain records, the closed error
// taxonomy and the orchestration services that sit between the inbound API
// and the remote data service. Transport and wire details live in the
// remote and transport packages; core only sees the RemoteClient contract.
package core
