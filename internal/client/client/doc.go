// Package client contains the client-side transport for grievdesk.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): Login,
//     Logout, Ping, Catalog and Submit.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the session token via an interceptor, and maps
//     gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrAccessDenied, ErrInvalidForm.
//
// The session token lives only in memory and is dropped by Logout or when
// the server reports it as expired.
package client
