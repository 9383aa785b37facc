package relay

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// Upstream issues the single outbound call per invocation to the configured
// node endpoint.
//
// No timeout is configured on the client; the lambda deadline propagates
// through the request context instead.
type Upstream struct {
	Endpoint string
	Client   *http.Client
}

// UpstreamResponse is the outcome of an upstream call that produced an http
// response. A rejection (non-2xx status) is a response, not an error.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// Success returns true if the response status is in the 2xx range.
func (response *UpstreamResponse) Success() bool {
	return response.StatusCode >= 200 && response.StatusCode < 300
}

// StatusText returns the standard status text for the response status code.
func (response *UpstreamResponse) StatusText() string {
	return http.StatusText(response.StatusCode)
}

// NewUpstream returns an Upstream for the given endpoint.
func NewUpstream(endpoint string) *Upstream {
	return &Upstream{
		Endpoint: endpoint,
		Client:   http.DefaultClient,
	}
}

// Post forwards body verbatim to the endpoint as a json POST and reads the
// full response. Transport failures are returned as errors, upstream
// rejections as a non-success UpstreamResponse.
func (upstream *Upstream) Post(ctx context.Context, body string) (*UpstreamResponse, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, upstream.Endpoint, strings.NewReader(body))
	if err != nil {
		return nil, errors.Wrapf(err, "failed building request for '%s'", upstream.Endpoint)
	}

	request.Header.Set("Content-Type", "application/json")

	client := upstream.Client
	if client == nil {
		client = http.DefaultClient
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, errors.Wrapf(err, "failed calling upstream '%s'", upstream.Endpoint)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed reading upstream response")
	}

	return &UpstreamResponse{
		StatusCode: response.StatusCode,
		Body:       payload,
	}, nil
}
