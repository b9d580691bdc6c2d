package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"go.uber.org/zap"
)

// DefaultTimeout bounds every call unless overridden
const DefaultTimeout = 30 * time.Second

// Config configures a NodeClient
type Config struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
}

// NodeClient is a JSON-RPC 2.0 client for a Drachma node
type NodeClient struct {
	rpc    jsonrpc.RPCClient
	url    string
	logger *zap.Logger
}

// Option configures a NodeClient
type Option func(*NodeClient)

// WithLogger sets the client logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *NodeClient) {
		c.logger = logger
	}
}

// NewNodeClient creates a client for cfg.URL
func NewNodeClient(cfg Config, opts ...Option) (*NodeClient, error) {
	if cfg.URL == "" {
		return nil, errors.New("node RPC URL is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	headers := map[string]string{}
	if cfg.Username != "" && cfg.Password != "" {
		token := base64.StdEncoding.EncodeToString([]byte(cfg.Username + ":" + cfg.Password))
		headers["Authorization"] = "Basic " + token
	}

	c := &NodeClient{
		rpc: jsonrpc.NewClientWithOpts(cfg.URL, &jsonrpc.RPCClientOpts{
			HTTPClient:    &http.Client{Timeout: timeout},
			CustomHeaders: headers,
		}),
		url:    cfg.URL,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Close releases idle connections
func (c *NodeClient) Close() error {
	return c.rpc.Close()
}

// Call invokes method and decodes the result into out (which may be nil)
func (c *NodeClient) Call(ctx context.Context, out interface{}, method string, params ...interface{}) error {
	if params == nil {
		params = []interface{}{}
	}
	var raw json.RawMessage
	err := c.rpc.CallForInto(ctx, &raw, method, params)
	if err != nil {
		err = classify(method, err)
		c.logger.Debug("rpc call failed", zap.String("method", method), zap.Error(err))
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &NetworkError{Method: method, Err: fmt.Errorf("failed to decode result: %w", err)}
	}
	return nil
}

// Batch sends calls in one request. A transport failure fails the whole
// batch; an error in one element is reported only in that element.
func (c *NodeClient) Batch(ctx context.Context, calls []BatchCall) ([]BatchResult, error) {
	if len(calls) == 0 {
		return nil, nil
	}

	requests := make(jsonrpc.RPCRequests, 0, len(calls))
	for i, call := range calls {
		params := call.Params
		if params == nil {
			params = []interface{}{}
		}
		requests = append(requests, &jsonrpc.RPCRequest{
			JSONRPC: "2.0",
			ID:      i,
			Method:  call.Method,
			Params:  params,
		})
	}

	responses, err := c.rpc.CallBatch(ctx, requests)
	if err != nil {
		return nil, &NetworkError{Method: "batch", Err: err}
	}

	byID := make(map[string]*jsonrpc.RPCResponse, len(responses))
	for _, res := range responses {
		if res != nil {
			byID[fmt.Sprint(res.ID)] = res
		}
	}

	results := make([]BatchResult, len(calls))
	for i, call := range calls {
		res, ok := byID[strconv.Itoa(i)]
		switch {
		case !ok:
			results[i].Err = &NetworkError{Method: call.Method, Err: errors.New("missing response in batch")}
		case res.Error != nil:
			results[i].Err = &RPCError{Method: call.Method, Code: res.Error.Code, Message: res.Error.Message}
		default:
			var raw json.RawMessage
			if err := res.GetObject(&raw); err != nil {
				results[i].Err = &NetworkError{Method: call.Method, Err: err}
				continue
			}
			results[i].Result = raw
		}
	}
	return results, nil
}

func classify(method string, err error) error {
	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		return &RPCError{Method: method, Code: rpcErr.Code, Message: rpcErr.Message}
	}
	return &NetworkError{Method: method, Err: err}
}
