package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"

	"slimtimer/internal/client"
	"slimtimer/internal/config"
)

// connectFunc obtains an authenticated API; tests substitute their own
type connectFunc func(ctx context.Context, app *App) (client.API, error)

// App represents the CLI application. Commands obtain an authenticated
// session through connect, so tests can run them against a mock API.
type App struct {
	cfg     *config.Config
	out     io.Writer
	in      io.Reader
	connect connectFunc
}

// NewApp creates a new CLI application instance
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:     cfg,
		out:     os.Stdout,
		in:      os.Stdin,
		connect: connectSession,
	}
}

// connectSession authenticates against the service. When ST_USER_ID and
// ST_ACCESS_TOKEN are both set the session is resumed from them without a
// login round trip; otherwise the configured email and a password
// (ST_PASSWORD or an interactive prompt) are used.
func connectSession(ctx context.Context, app *App) (client.API, error) {
	c := client.NewFromConfig(app.cfg)

	if userID, token, ok := savedSession(); ok {
		return c.ResumeSession(userID, token), nil
	}

	email := app.cfg.Service.Email
	if email == "" {
		return nil, fmt.Errorf("no email configured: set ST_EMAIL or pass --email")
	}

	password := os.Getenv("ST_PASSWORD")
	if password == "" {
		fmt.Fprintf(app.out, "Password for %s: ", email)
		var err error
		password, err = readPassword(app.in)
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(app.out)
	}

	session, err := c.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// savedSession reads resumable session credentials from the environment
func savedSession() (int64, string, bool) {
	token := os.Getenv("ST_ACCESS_TOKEN")
	rawUserID := os.Getenv("ST_USER_ID")
	if token == "" || rawUserID == "" {
		return 0, "", false
	}
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil || userID <= 0 {
		return 0, "", false
	}
	return userID, token, true
}

// readPassword reads a password without echo when attached to a terminal,
// falling back to line input for pipes and tests
func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
