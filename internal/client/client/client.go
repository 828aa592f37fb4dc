package client

import "context"

// Document is a generated grievance PDF.
type Document struct {
	Data     []byte
	FileName string
	// Degraded is set when the server rendered it with the fallback font.
	Degraded bool
}

type Client interface {
	Close() error
	Login(ctx context.Context, identifier string) (string, error)
	Logout()
	LoggedIn() bool
	Ping(ctx context.Context) error
	Catalog(ctx context.Context) (map[string][]string, error)
	Submit(ctx context.Context, form map[string]string) (*Document, error)
}
