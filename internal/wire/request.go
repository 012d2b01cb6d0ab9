package wire

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	"gopkg.in/yaml.v3"

	"slimtimer/internal/errors"
)

// ContentTypeYAML is the interchange format the service speaks
const ContentTypeYAML = "application/x-yaml"

// Credentials carries the authentication material attached to every request.
// AccessToken is empty until a login has succeeded.
type Credentials struct {
	APIKey      string
	AccessToken string
}

// LoggedIn returns true once an access token has been obtained
func (c Credentials) LoggedIn() bool {
	return c.AccessToken != ""
}

// BuildQueryRequest builds a GET or DELETE request carrying the credentials
// and caller parameters in the query string
func BuildQueryRequest(ctx context.Context, method string, rawURL string, creds Credentials, params map[string]string) (*http.Request, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.NewValidationError("invalid request URL", err)
	}

	query := parsed.Query()
	query.Set("api_key", creds.APIKey)
	if creds.LoggedIn() {
		query.Set("access_token", creds.AccessToken)
	}
	for key, value := range params {
		query.Set(key, value)
	}
	parsed.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, parsed.String(), nil)
	if err != nil {
		return nil, errors.NewValidationError("cannot build request", err)
	}
	req.Header.Set("Accept", ContentTypeYAML)
	return req, nil
}

// BuildBodyRequest builds a POST or PUT request with the credentials and
// caller parameters serialized as the request body. The api_key is always
// injected; the access token only once logged in, since the login call
// itself is a POST issued before a token exists.
func BuildBodyRequest(ctx context.Context, method string, rawURL string, creds Credentials, params Mapping) (*http.Request, error) {
	body := make(Mapping, len(params)+2)
	for key, value := range params {
		body[key] = value
	}
	body["api_key"] = creds.APIKey
	if creds.LoggedIn() {
		body["access_token"] = creds.AccessToken
	}

	encoded, err := yaml.Marshal(map[string]interface{}(body))
	if err != nil {
		return nil, errors.NewValidationError("cannot encode request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bytes.NewReader(encoded))
	if err != nil {
		return nil, errors.NewValidationError("cannot build request", err)
	}
	req.Header.Set("Content-Type", ContentTypeYAML)
	req.Header.Set("Accept", ContentTypeYAML)
	return req, nil
}
