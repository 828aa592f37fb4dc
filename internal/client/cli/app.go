package cli

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/dmitrijs2005/grievdesk/internal/client/client"
	"github.com/dmitrijs2005/grievdesk/internal/client/config"
)

type App struct {
	config   *config.Config
	api      client.Client
	userName string
	catalog  map[string][]string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGrievanceClient(c.ServerEndpointAddr)
	if err != nil {
		log.Printf("error initializing client: %s", err.Error())
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

// requestContext bounds a single server call by the configured timeout.
func (a *App) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := 10 * time.Second
	if a.config != nil && a.config.RequestTimeout > 0 {
		timeout = a.config.RequestTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (a *App) getStatus() string {
	if a.userName == "" || !a.isLoggedIn() {
		return "(guest)"
	}
	return "(" + a.userName + ")"
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to grievdesk (type 'help' for commands)")

	pingCtx, cancel := a.requestContext(ctx)
	if err := a.api.Ping(pingCtx); err != nil {
		log.Printf("server is not reachable: %v", err)
	}
	cancel()

	runREPL(ctx, a, a.getStatus, a.reader)
}
