package client

import (
	"context"
	"net/http"

	"slimtimer/internal/config"
	"slimtimer/internal/validation"
	"slimtimer/internal/wire"
)

const defaultBaseURL = "http://slimtimer.com"

// Client is the anonymous entry point to the SlimTimer service. It can
// only log in; every other operation lives on the Session a successful
// login returns, so an unauthenticated call is unrepresentable.
type Client struct {
	baseURL       string
	apiKey        string
	transport     wire.Doer
	credValidator *validation.CredentialsValidator
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the service base URL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTransport overrides the HTTP transport collaborator
func WithTransport(transport wire.Doer) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

// New creates an anonymous client for the given API key
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:       defaultBaseURL,
		apiKey:        apiKey,
		transport:     http.DefaultClient,
		credValidator: validation.NewCredentialsValidator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig creates an anonymous client from the application configuration
func NewFromConfig(cfg *config.Config) *Client {
	return New(cfg.Service.APIKey,
		WithBaseURL(cfg.Service.BaseURL),
		WithTransport(&http.Client{Timeout: cfg.GetHTTPTimeout()}),
	)
}

// Login authenticates against the service and returns an authenticated
// session carrying the user id and access token from the response
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	if err := c.credValidator.ValidateAPIKey(c.apiKey); err != nil {
		return nil, err
	}
	if err := c.credValidator.ValidateLogin(email, password); err != nil {
		return nil, err
	}

	params := wire.Mapping{
		"user": map[string]interface{}{
			"email":    email,
			"password": password,
		},
	}
	req, err := wire.BuildBodyRequest(ctx, http.MethodPost, loginURL(c.baseURL), c.credentials(), params)
	if err != nil {
		return nil, err
	}

	node, err := wire.Submit(c.transport, req, "login")
	if err != nil {
		return nil, err
	}
	wm, err := wire.AsMapping(node, "login response")
	if err != nil {
		return nil, err
	}

	userID, err := wm.Int("user_id")
	if err != nil {
		return nil, err
	}
	accessToken, err := wm.String("access_token")
	if err != nil {
		return nil, err
	}

	return c.session(userID, accessToken), nil
}

// ResumeSession rebuilds an authenticated session from externally held
// credentials, without another round trip to the login endpoint
func (c *Client) ResumeSession(userID int64, accessToken string) *Session {
	return c.session(userID, accessToken)
}

// credentials returns the anonymous credentials (api key only)
func (c *Client) credentials() wire.Credentials {
	return wire.Credentials{APIKey: c.apiKey}
}

func (c *Client) session(userID int64, accessToken string) *Session {
	return newSession(c, userID, accessToken)
}
