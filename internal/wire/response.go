package wire

import (
	"io"
	"net/http"

	"gopkg.in/yaml.v3"

	"slimtimer/internal/errors"
	"slimtimer/internal/logging"
)

// Doer issues an HTTP request and returns the response. *http.Client
// satisfies it; tests substitute their own.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Submit sends the request and decodes a successful response body into a
// generic node (mapping or sequence). Non-2xx responses become a service
// error carrying the operation name and the status line; a 404 is
// classified as not found.
func Submit(transport Doer, req *http.Request, operation string) (interface{}, error) {
	resp, err := transport.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewTransportError(operation, err)
	}

	logging.Debugf("%s %s -> %s\n%s\n", req.Method, req.URL.Path, resp.Status, body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusNotFound {
			return nil, errors.NewNotFoundError(operation, resp.Status)
		}
		return nil, errors.NewServiceError(operation, resp.Status, nil)
	}

	var node interface{}
	if err := yaml.Unmarshal(body, &node); err != nil {
		return nil, errors.NewDecodeError("body", "malformed response", err)
	}
	return node, nil
}
