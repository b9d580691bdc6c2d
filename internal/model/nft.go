package model

import "errors"

// NFT is one token as reported by the node's layer-2 registry
type NFT struct {
	ID              string         `json:"id,omitempty"`
	TokenID         string         `json:"tokenId"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	Image           string         `json:"image,omitempty"`
	Collection      string         `json:"collection,omitempty"`
	ContractAddress string         `json:"contractAddress,omitempty"`
	Owner           string         `json:"owner,omitempty"`
	Attributes      []NFTAttribute `json:"attributes,omitempty"`
}

// NFTAttribute is a trait; Value is a string or a number
type NFTAttribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// NFTListResponse represents response for GET /nft
type NFTListResponse struct {
	Owner string `json:"owner"`
	Items []NFT  `json:"items"`
}

// MintNFTRequest represents request for POST /nft/mint
type MintNFTRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Image       string         `json:"image,omitempty"`
	Collection  string         `json:"collection,omitempty"`
	Attributes  []NFTAttribute `json:"attributes,omitempty"`
}

// Validate checks MintNFTRequest fields
func (r *MintNFTRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	for _, a := range r.Attributes {
		if a.TraitType == "" {
			return errors.New("attribute trait_type is required")
		}
		switch a.Value.(type) {
		case string, float64, int, int64, uint64:
		default:
			return errors.New("attribute value must be a string or a number")
		}
	}
	return nil
}

// MintNFTResponse represents response for POST /nft/mint
type MintNFTResponse struct {
	TokenID string `json:"tokenId"`
	Owner   string `json:"owner"`
}

// TransferNFTRequest represents request for POST /nft/transfer
type TransferNFTRequest struct {
	TokenID   string `json:"tokenId"`
	ToAddress string `json:"toAddress"`
}

// TransferNFTResponse represents response for POST /nft/transfer
type TransferNFTResponse struct {
	TxID    string `json:"txId"`
	TokenID string `json:"tokenId"`
	From    string `json:"from"`
	To      string `json:"to"`
}
