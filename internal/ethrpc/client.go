package ethrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

// Client is a minimal JSON-RPC 2.0 client for an EVM provider endpoint.
// It issues one request per call; batching is not needed here.
type Client struct {
	endpoint string
	http     *http.Client
	nextID   atomic.Uint64
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error"`
}

// Error is the error object a provider returns inside a JSON-RPC response,
// e.g. for a reverting call. Transport failures are ordinary wrapped errors,
// never *Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

// IsProviderError reports whether err carries a JSON-RPC error object,
// i.e. the provider was reachable and rejected the call.
func IsProviderError(err error) bool {
	var rpcErr *Error
	return errors.As(err, &rpcErr)
}

// Call invokes method with params and decodes the result into result, which
// must be a pointer or nil when the caller ignores the payload.
func (c *Client) Call(ctx context.Context, result any, method string, params ...any) error {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("calling %s: unexpected status code %d", method, resp.StatusCode)
	}

	var rpcResp response
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}

	if rpcResp.Error != nil {
		return rpcResp.Error
	}

	if result == nil {
		return nil
	}

	if len(rpcResp.Result) == 0 || bytes.Equal(rpcResp.Result, []byte("null")) {
		return fmt.Errorf("%s: provider returned no result", method)
	}

	if err := json.Unmarshal(rpcResp.Result, result); err != nil {
		return fmt.Errorf("decoding %s result: %w", method, err)
	}

	return nil
}
