package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyTransport adapts a resty.Client to governance.Transport.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport creates a resty-backed transport with the specified timeout.
func NewRestyTransport(timeout time.Duration) *RestyTransport {
	client := resty.New()
	client.SetTimeout(timeout)

	return NewRestyTransportFromClient(client)
}

// NewRestyTransportFromClient exposes an already configured resty.Client as a transport.
func NewRestyTransportFromClient(client *resty.Client) *RestyTransport {
	return &RestyTransport{client: client}
}

// Do implements governance.Transport. resty buffers the response, so the
// returned body is an in-memory reader over it.
func (t *RestyTransport) Do(req *http.Request) (*http.Response, error) {
	restyReq := t.client.R().SetContext(req.Context())
	restyReq.Header = req.Header.Clone()

	if req.Body != nil {
		payload, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}

		restyReq.SetBody(payload)
	}

	resp, err := restyReq.Execute(req.Method, req.URL.String())
	if err != nil {
		return nil, err //nolint:wrapcheck // transport errors propagate unchanged
	}

	raw := resp.RawResponse
	raw.Body = io.NopCloser(bytes.NewReader(resp.Body()))

	return raw, nil
}
