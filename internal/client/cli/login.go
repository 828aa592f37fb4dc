package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/grievdesk/internal/client/client"
	"github.com/dmitrijs2005/grievdesk/internal/common"
)

func (a *App) Login(ctx context.Context) error {

	code, err := GetSecret("Enter identifier code", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(code)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	actor, err := a.api.Login(ctx, string(code))
	if err != nil {
		switch {
		case errors.Is(err, client.ErrAccessDenied):
			log.Printf("Access denied")
		case errors.Is(err, client.ErrUnavailable):
			log.Printf("Server unavailable, try again later")
		default:
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	a.userName = actor
	fmt.Fprintf(a.out, "Welcome, %s\n", actor)
	return nil

}

func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	a.catalog = nil
	log.Printf("Logged out")
	return nil
}
