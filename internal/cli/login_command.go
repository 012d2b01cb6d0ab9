package cli

import (
	"context"
	"fmt"

	"slimtimer/internal/client"
)

// LoginCommand verifies the configured credentials and prints the session
// material, so it can be exported for token reuse on later invocations
type LoginCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute logs in and prints the resulting user id and access token
func (c *LoginCommand) Execute(ctx context.Context, args []string) error {
	api, err := c.app.connect(ctx, c.app)
	if err != nil {
		return c.errorHandler.Handle("login", err)
	}

	session, ok := api.(*client.Session)
	if !ok {
		fmt.Fprintln(c.app.out, "Logged in")
		return nil
	}

	fmt.Fprintf(c.app.out, "Logged in as user %d\n", session.UserID())
	fmt.Fprintf(c.app.out, "export ST_USER_ID=%d ST_ACCESS_TOKEN=%s\n", session.UserID(), session.AccessToken())
	return nil
}
