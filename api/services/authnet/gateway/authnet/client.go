package authnetgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	gw "github.com/tbeaudouin05/authnet-billing/api/services/authnet/gateway"
)

const (
	SandboxEndpoint    = "https://apitest.authorize.net/xml/v1/request.api"
	ProductionEndpoint = "https://api.authorize.net/xml/v1/request.api"
)

// Responses are small JSON envelopes; anything larger is not a gateway reply.
const maxResponseBytes = 4 << 20

var utf8BOM = []byte("\xef\xbb\xbf")

// EndpointFor returns the API URL for an environment. Anything other than production
// goes to the sandbox.
func EndpointFor(env gw.Environment) string {
	if env == gw.Production {
		return ProductionEndpoint
	}
	return SandboxEndpoint
}

// client is the net/http implementation of the gateway executor.
type client struct {
	endpoint   string
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) { c.httpClient = hc }
}

// WithEndpoint overrides the environment endpoint. Used by tests.
func WithEndpoint(url string) Option {
	return func(c *client) { c.endpoint = url }
}

// New returns an Executor posting JSON to the endpoint of env.
func New(env gw.Environment, opts ...Option) gw.Executor {
	c := &client{
		endpoint:   EndpointFor(env),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) Execute(ctx context.Context, req gw.Request, resp gw.Response) error {
	name := req.RequestName()
	requestID := uuid.NewString()

	body, err := json.Marshal(map[string]gw.Request{name: req})
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s: %w", name, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		slog.Error("authorize.net request failed", "operation", name, "request_id", requestID, "err", err)
		return fmt.Errorf("send %s: %w", name, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read %s response: %w", name, err)
	}
	slog.Debug("authorize.net response",
		"operation", name,
		"request_id", requestID,
		"status", res.StatusCode,
		"elapsed", time.Since(start),
		"bytes", len(raw))

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected HTTP status %d", name, res.StatusCode)
	}

	// The API prefixes JSON bodies with a byte order mark.
	raw = bytes.TrimSpace(bytes.TrimPrefix(raw, utf8BOM))
	if len(raw) == 0 {
		return fmt.Errorf("%s: %w", name, gw.ErrEmptyResponse)
	}
	if err := json.Unmarshal(raw, resp); err != nil {
		return fmt.Errorf("decode %s response: %w", name, err)
	}
	return nil
}
