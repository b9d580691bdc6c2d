package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

// GetBalance returns the node-reported balance, optionally for one asset
func (c *NodeClient) GetBalance(ctx context.Context, assetID string) (json.Number, error) {
	var params []interface{}
	if assetID != "" {
		params = append(params, assetID)
	}
	var balance json.Number
	if err := c.Call(ctx, &balance, "getbalance", params...); err != nil {
		return "", err
	}
	return balance, nil
}

// GetNewAddress asks the node for a fresh receiving address
func (c *NodeClient) GetNewAddress(ctx context.Context) (string, error) {
	var address string
	if err := c.Call(ctx, &address, "getnewaddress"); err != nil {
		return "", err
	}
	return address, nil
}

// SendRawTransaction broadcasts a signed, hex-encoded transaction and returns its id
func (c *NodeClient) SendRawTransaction(ctx context.Context, rawHex string) (string, error) {
	var txID string
	if err := c.Call(ctx, &txID, "sendrawtransaction", rawHex); err != nil {
		return "", err
	}
	return txID, nil
}

// SendToAddress lets the node's own wallet pay address. amount is a decimal string.
func (c *NodeClient) SendToAddress(ctx context.Context, address, amount, assetID string) (string, error) {
	params := []interface{}{address, json.Number(amount)}
	if assetID != "" {
		params = append(params, assetID)
	}
	var txID string
	if err := c.Call(ctx, &txID, "sendtoaddress", params...); err != nil {
		return "", err
	}
	return txID, nil
}

// ListTransactions returns up to count entries after skipping skip
func (c *NodeClient) ListTransactions(ctx context.Context, count, skip int) ([]NodeTransaction, error) {
	var txs []NodeTransaction
	if err := c.Call(ctx, &txs, "listtransactions", "*", count, skip); err != nil {
		return nil, err
	}
	return txs, nil
}

// GetTransaction looks up one transaction by id
func (c *NodeClient) GetTransaction(ctx context.Context, txID string) (*NodeTransaction, error) {
	var tx NodeTransaction
	if err := c.Call(ctx, &tx, "gettransaction", txID); err != nil {
		return nil, err
	}
	return &tx, nil
}

// GetBlockchainInfo returns chain height and tip
func (c *NodeClient) GetBlockchainInfo(ctx context.Context) (*BlockchainInfo, error) {
	var info BlockchainInfo
	if err := c.Call(ctx, &info, "getblockchaininfo"); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetBlockTemplate fetches mining work
func (c *NodeClient) GetBlockTemplate(ctx context.Context) (*BlockTemplate, error) {
	var tmpl BlockTemplate
	rules := map[string]interface{}{"rules": []string{"segwit"}}
	if err := c.Call(ctx, &tmpl, "getblocktemplate", rules); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// SubmitShare submits a found nonce. The node answers null or true on
// acceptance; false or a rejection reason string means rejected.
func (c *NodeClient) SubmitShare(ctx context.Context, share Share) (accepted bool, reason string, err error) {
	var result interface{}
	if err := c.Call(ctx, &result, "submitblock", share); err != nil {
		return false, "", err
	}
	switch v := result.(type) {
	case nil:
		return true, "", nil
	case bool:
		if !v {
			return false, "rejected", nil
		}
		return true, "", nil
	case string:
		if v == "" {
			return true, "", nil
		}
		return false, v, nil
	default:
		return false, "", fmt.Errorf("unexpected submitblock result %v", v)
	}
}

// ValidateAddress asks the node whether address is valid
func (c *NodeClient) ValidateAddress(ctx context.Context, address string) (*AddressValidation, error) {
	var v AddressValidation
	if err := c.Call(ctx, &v, "validateaddress", address); err != nil {
		return nil, err
	}
	return &v, nil
}

// EstimateFee returns the fee per kB for confirmation within blocks
func (c *NodeClient) EstimateFee(ctx context.Context, blocks int) (json.Number, error) {
	if blocks <= 0 {
		blocks = 6
	}
	var fee json.Number
	if err := c.Call(ctx, &fee, "estimatefee", blocks); err != nil {
		return "", err
	}
	return fee, nil
}

// GetStakingInfo returns the node staking status
func (c *NodeClient) GetStakingInfo(ctx context.Context) (*StakingInfo, error) {
	var info StakingInfo
	if err := c.Call(ctx, &info, "getstakinginfo"); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListNFTs returns the layer-2 tokens held by owner, or all tokens when owner is empty
func (c *NodeClient) ListNFTs(ctx context.Context, owner string) ([]model.NFT, error) {
	var params []interface{}
	if owner != "" {
		params = append(params, owner)
	}
	var nfts []model.NFT
	if err := c.Call(ctx, &nfts, "list_nft", params...); err != nil {
		return nil, err
	}
	return nfts, nil
}

// MintNFT registers a new token and returns its id
func (c *NodeClient) MintNFT(ctx context.Context, nft model.NFT) (string, error) {
	var tokenID string
	if err := c.Call(ctx, &tokenID, "mint_nft", nft); err != nil {
		return "", err
	}
	return tokenID, nil
}

// TransferNFT moves tokenID to address and returns the transaction id
func (c *NodeClient) TransferNFT(ctx context.Context, tokenID, to string) (string, error) {
	var txID string
	if err := c.Call(ctx, &txID, "transfer_nft", tokenID, to); err != nil {
		return "", err
	}
	return txID, nil
}
