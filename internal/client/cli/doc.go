// Package cli provides the interactive grievdesk terminal client.
//
// It wires configuration, the gRPC client, and a REPL. Typical flow: log in
// with an identifier code, browse the catalog, file a grievance and receive
// the generated PDF in the output directory.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
