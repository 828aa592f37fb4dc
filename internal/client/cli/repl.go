package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Catalog(ctx context.Context) error
	Submit(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help             show available commands
//	  - login            authenticate with an identifier code
//	  - catalog          show reference lists
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - help             show available commands
//	  - catalog          show reference lists
//	  - submit           file a grievance and save the document
//	  - logout           end the session
//	  - exit | quit      leave the program
//
// Handlers report their own errors, so the returned values are ignored here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gd %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: catalog, submit, logout, exit")
			} else {
				printlnFn("Available commands: login, catalog, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "catalog":
			_ = a.Catalog(ctx)

		case "submit":
			if !a.isLoggedIn() {
				printlnFn("Please log in first")
				continue
			}
			_ = a.Submit(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
