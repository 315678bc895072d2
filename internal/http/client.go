// Package http implements the request core every resource client calls
// through: header and body construction, one round trip on the injected
// transport, and normalization of the response into raw JSON, nil or a
// *governance.APIError.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/fivetwenty-io/governance-client/pkg/governance"
)

// Header names and values set by the core.
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderTenantID      = "X-Tenant-Id"

	ContentTypeJSON = "application/json"
)

// Static errors for err113 compliance.
var (
	ErrNilResponse = errors.New("transport returned no response")
)

// errorMessageKeys is the order in which an error body is searched for a message.
var errorMessageKeys = []string{"message", "detail", "error"}

// Request describes a single call to the governance API.
type Request struct {
	// Method is passed to the transport as is.
	Method string
	// Endpoint is appended verbatim to the base URL and may carry a query string.
	Endpoint string
	// Body is JSON-encoded when non-nil. A nil Body sends no payload at all.
	Body interface{}
	// Token, when non-empty, is sent as a bearer credential.
	Token string
	// TenantID, when non-empty, is sent as X-Tenant-Id.
	TenantID string
}

// Client is the request core. It holds no per-call state and is safe for
// concurrent use.
type Client struct {
	baseURL   string
	transport governance.Transport
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the transport used for every request.
func WithTransport(transport governance.Transport) Option {
	return func(c *Client) {
		if transport != nil {
			c.transport = transport
		}
	}
}

// NewClient creates a request core for baseURL. Without WithTransport a fresh
// pooled client from go-cleanhttp is used.
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL: baseURL,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.transport == nil {
		client.transport = cleanhttp.DefaultPooledClient()
	}

	return client
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs the request and interprets the response.
//
// It returns nil for 204 and for empty 2xx bodies, the raw body for other 2xx
// responses, and a *governance.APIError for everything else. Transport errors
// and success-path read errors are returned unchanged.
func (c *Client) Do(ctx context.Context, req *Request) (json.RawMessage, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.transport.Do(httpReq)
	if err != nil {
		return nil, err //nolint:wrapcheck // callers must see the transport's own error
	}

	if resp == nil {
		return nil, ErrNilResponse
	}

	defer closeBody(resp)

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	if !isSuccess(resp.StatusCode) {
		return nil, newAPIError(resp)
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	if len(body) == 0 {
		return nil, nil
	}

	return json.RawMessage(body), nil
}

// Call performs the request and decodes a non-empty success body into T.
// It returns nil, nil when the server sent no content. A malformed body
// yields the decoder's own error.
func Call[T any](ctx context.Context, client *Client, req *Request) (*T, error) {
	raw, err := client.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	if raw == nil {
		return nil, nil
	}

	var result T

	err = json.Unmarshal(raw, &result)
	if err != nil {
		return nil, err //nolint:wrapcheck // a bad success body is a server contract bug
	}

	return &result, nil
}

func (c *Client) newRequest(ctx context.Context, req *Request) (*http.Request, error) {
	var body io.Reader

	if req.Body != nil {
		payload, err := encodeBody(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = buildHeaders(req.Token, req.TenantID)

	return httpReq, nil
}

func buildHeaders(token, tenantID string) http.Header {
	headers := http.Header{}
	headers.Set(HeaderContentType, ContentTypeJSON)

	if token != "" {
		headers.Set(HeaderAuthorization, "Bearer "+token)
	}

	if tenantID != "" {
		headers.Set(HeaderTenantID, tenantID)
	}

	return headers
}

// encodeBody marshals value without HTML escaping and without the trailing
// newline json.Encoder adds.
func encodeBody(value interface{}) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(value)
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by the caller
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func readBody(resp *http.Response) ([]byte, error) {
	if resp.Body == nil {
		return nil, nil
	}

	return io.ReadAll(resp.Body) //nolint:wrapcheck // read errors propagate unchanged
}

func closeBody(resp *http.Response) {
	if resp.Body != nil {
		_ = resp.Body.Close()
	}
}

// newAPIError builds the typed error for a non-2xx response. A body that
// cannot be read is treated as empty.
func newAPIError(resp *http.Response) *governance.APIError {
	message, kind := governance.DefaultErrorMessage, ""

	text, err := readBody(resp)
	if err == nil {
		message, kind = extractError(text)
	}

	return governance.NewAPIError(message, resp.StatusCode, kind)
}

// extractError resolves the message and kind from an error body.
func extractError(text []byte) (string, string) {
	var parsed interface{}

	err := json.Unmarshal(text, &parsed)
	if err != nil {
		if len(text) > 0 {
			return string(text), ""
		}

		return governance.DefaultErrorMessage, ""
	}

	fields, ok := parsed.(map[string]interface{})
	if !ok {
		return governance.DefaultErrorMessage, ""
	}

	message := governance.DefaultErrorMessage

	for _, key := range errorMessageKeys {
		value, present := fields[key]
		if present && value != nil {
			message = stringify(value)

			break
		}
	}

	kind, _ := fields["type"].(string)

	return message, kind
}

func stringify(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}

	return string(encoded)
}
