package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

type rpcRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      interface{}       `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// newNode serves single requests through handle and records what it saw
func newNode(t *testing.T, handle func(req rpcRequest) (interface{}, *rpcErrorBody)) (*NodeClient, *[]rpcRequest, *http.Header) {
	t.Helper()
	var seen []rpcRequest
	var headers http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req rpcRequest
		require.NoError(t, json.Unmarshal(body, &req))
		seen = append(seen, req)

		result, rpcErr := handle(req)
		resp := map[string]interface{}{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)

	c, err := NewNodeClient(Config{URL: srv.URL, Username: "user", Password: "pass"})
	require.NoError(t, err)
	return c, &seen, &headers
}

type rpcErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func TestNodeClient_GetBalance(t *testing.T) {
	c, seen, headers := newNode(t, func(req rpcRequest) (interface{}, *rpcErrorBody) {
		return json.Number("12.5"), nil
	})

	bal, err := c.GetBalance(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, json.Number("12.5"), bal)

	require.Len(t, *seen, 1)
	assert.Equal(t, "2.0", (*seen)[0].JSONRPC)
	assert.Equal(t, "getbalance", (*seen)[0].Method)
	assert.Empty(t, (*seen)[0].Params)
	assert.Equal(t, "Basic dXNlcjpwYXNz", headers.Get("Authorization"))
}

func TestNodeClient_RPCError(t *testing.T) {
	c, _, _ := newNode(t, func(req rpcRequest) (interface{}, *rpcErrorBody) {
		return nil, &rpcErrorBody{Code: -5, Message: "Invalid address"}
	})

	_, err := c.ValidateAddress(context.Background(), "drm123")
	require.Error(t, err)
	assert.True(t, IsRPCError(err))
	assert.False(t, IsNetworkError(err))

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -5, rpcErr.Code)
	assert.Equal(t, "Invalid address", rpcErr.Message)
	assert.Equal(t, "validateaddress", rpcErr.Method)
}

func TestNodeClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewNodeClient(Config{URL: url, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.GetBlockchainInfo(context.Background())
	require.Error(t, err)
	assert.True(t, IsNetworkError(err))
	assert.False(t, IsRPCError(err))
}

func TestNodeClient_HTTPStatusIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	c, err := NewNodeClient(Config{URL: srv.URL})
	require.NoError(t, err)

	_, err = c.GetBlockTemplate(context.Background())
	assert.True(t, IsNetworkError(err))
}

func TestNodeClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c, err := NewNodeClient(Config{URL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.GetNewAddress(context.Background())
	assert.True(t, IsNetworkError(err))
}

func TestNodeClient_GetBlockTemplateParams(t *testing.T) {
	c, seen, _ := newNode(t, func(req rpcRequest) (interface{}, *rpcErrorBody) {
		return map[string]interface{}{
			"version":           1,
			"previousblockhash": "00000000000000000000000000000000000000000000000000000000000000aa",
			"merkleroothash":    "00000000000000000000000000000000000000000000000000000000000000bb",
			"curtime":           1700000000,
			"bits":              "1d00ffff",
			"target":            "00000000ffff0000000000000000000000000000000000000000000000000000",
			"difficulty":        1.5,
			"height":            42,
		}, nil
	})

	tmpl, err := c.GetBlockTemplate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), tmpl.Version)
	assert.Equal(t, uint32(1700000000), tmpl.CurTime)
	assert.Equal(t, "1d00ffff", tmpl.Bits)
	assert.Equal(t, int64(42), tmpl.Height)

	require.Len(t, (*seen)[0].Params, 1)
	assert.JSONEq(t, `{"rules":["segwit"]}`, string((*seen)[0].Params[0]))
}

func TestNodeClient_SubmitShare(t *testing.T) {
	tests := []struct {
		name     string
		result   interface{}
		accepted bool
		reason   string
	}{
		{"null", nil, true, ""},
		{"true", true, true, ""},
		{"false", false, false, "rejected"},
		{"reason", "high-hash", false, "high-hash"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, seen, _ := newNode(t, func(req rpcRequest) (interface{}, *rpcErrorBody) {
				return tt.result, nil
			})
			accepted, reason, err := c.SubmitShare(context.Background(), Share{JobID: "job", Nonce: 7, HashRate: 10})
			require.NoError(t, err)
			assert.Equal(t, tt.accepted, accepted)
			assert.Equal(t, tt.reason, reason)
			assert.Equal(t, "submitblock", (*seen)[0].Method)
			assert.JSONEq(t, `{"jobId":"job","nonce":7,"hashRate":10}`, string((*seen)[0].Params[0]))
		})
	}
}

func TestNodeClient_ListTransactions(t *testing.T) {
	c, seen, _ := newNode(t, func(req rpcRequest) (interface{}, *rpcErrorBody) {
		return json.RawMessage(`[{"address":"drm00","category":"receive","amount":1.25,"confirmations":3,"txid":"ab","time":1700000000}]`), nil
	})

	txs, err := c.ListTransactions(context.Background(), 10, 5)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, json.Number("1.25"), txs[0].Amount)
	assert.Equal(t, "receive", txs[0].Category)

	params := (*seen)[0].Params
	require.Len(t, params, 3)
	assert.Equal(t, `"*"`, string(params[0]))
	assert.Equal(t, `10`, string(params[1]))
	assert.Equal(t, `5`, string(params[2]))
}

func TestNodeClient_SendRawTransaction(t *testing.T) {
	c, seen, _ := newNode(t, func(req rpcRequest) (interface{}, *rpcErrorBody) {
		return "txid123", nil
	})

	txID, err := c.SendRawTransaction(context.Background(), "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, "txid123", txID)
	assert.Equal(t, `"deadbeef"`, string((*seen)[0].Params[0]))
}

func TestNodeClient_Batch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqs []rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqs))
		require.Len(t, reqs, 3)

		// answer out of order, second element fails
		resp := []map[string]interface{}{
			{"jsonrpc": "2.0", "id": reqs[2].ID, "result": "drmaddr"},
			{"jsonrpc": "2.0", "id": reqs[1].ID, "error": map[string]interface{}{"code": -32601, "message": "Method not found"}},
			{"jsonrpc": "2.0", "id": reqs[0].ID, "result": 3.5},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)

	c, err := NewNodeClient(Config{URL: srv.URL})
	require.NoError(t, err)

	results, err := c.Batch(context.Background(), []BatchCall{
		{Method: "getbalance"},
		{Method: "nosuchmethod"},
		{Method: "getnewaddress"},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	var bal json.Number
	require.NoError(t, results[0].Decode(&bal))
	assert.Equal(t, json.Number("3.5"), bal)

	assert.True(t, IsRPCError(results[1].Err))

	var addr string
	require.NoError(t, results[2].Decode(&addr))
	assert.Equal(t, "drmaddr", addr)
}

func TestNewNodeClient_RequiresURL(t *testing.T) {
	_, err := NewNodeClient(Config{})
	assert.Error(t, err)
}

func TestNodeClient_NFTMethods(t *testing.T) {
	c, seen, _ := newNode(t, func(req rpcRequest) (interface{}, *rpcErrorBody) {
		switch req.Method {
		case "list_nft":
			return []map[string]interface{}{
				{"tokenId": "7", "name": "Owl", "attributes": []map[string]interface{}{{"trait_type": "eyes", "value": 2}}},
			}, nil
		case "mint_nft":
			return "token-9", nil
		case "transfer_nft":
			return "tx-nft", nil
		}
		return nil, &rpcErrorBody{Code: -32601, Message: "Method not found"}
	})
	ctx := context.Background()

	nfts, err := c.ListNFTs(ctx, "drm-owner")
	require.NoError(t, err)
	require.Len(t, nfts, 1)
	assert.Equal(t, "Owl", nfts[0].Name)
	assert.Equal(t, 2.0, nfts[0].Attributes[0].Value)

	_, err = c.ListNFTs(ctx, "")
	require.NoError(t, err)

	tokenID, err := c.MintNFT(ctx, model.NFT{Name: "Owl", Owner: "drm-owner"})
	require.NoError(t, err)
	assert.Equal(t, "token-9", tokenID)

	txID, err := c.TransferNFT(ctx, "token-9", "drm-to")
	require.NoError(t, err)
	assert.Equal(t, "tx-nft", txID)

	require.Len(t, *seen, 4)
	assert.Equal(t, "list_nft", (*seen)[0].Method)
	assert.JSONEq(t, `"drm-owner"`, string((*seen)[0].Params[0]))
	assert.Empty(t, (*seen)[1].Params)
	assert.Equal(t, "mint_nft", (*seen)[2].Method)
	var minted model.NFT
	require.NoError(t, json.Unmarshal((*seen)[2].Params[0], &minted))
	assert.Equal(t, "drm-owner", minted.Owner)
	assert.Equal(t, "transfer_nft", (*seen)[3].Method)
	require.Len(t, (*seen)[3].Params, 2)
	assert.JSONEq(t, `"drm-to"`, string((*seen)[3].Params[1]))
}
