package drachma

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/internal/common"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

// ListNFTs lists the tokens held by owner, defaulting to the current account
func (s *Service) ListNFTs(ctx context.Context, owner string) (*model.NFTListResponse, error) {
	if owner == "" {
		account, err := s.currentAccount()
		if err != nil {
			return nil, err
		}
		owner = account.Address
	} else if !common.IsValidAddress(owner) {
		return nil, &ValidationError{Field: "owner", Reason: "not a drachma address"}
	}

	nfts, err := s.node.ListNFTs(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list nfts: %w", err)
	}
	if nfts == nil {
		nfts = []model.NFT{}
	}
	return &model.NFTListResponse{Owner: owner, Items: nfts}, nil
}

// MintNFT mints a token owned by the current account
func (s *Service) MintNFT(ctx context.Context, req *model.MintNFTRequest) (*model.MintNFTResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Field: "nft", Reason: err.Error()}
	}
	account, err := s.currentAccount()
	if err != nil {
		return nil, err
	}

	tokenID, err := s.node.MintNFT(ctx, model.NFT{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Collection:  req.Collection,
		Owner:       account.Address,
		Attributes:  req.Attributes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mint nft: %w", err)
	}

	s.logger.Info("nft minted", zap.String("token", tokenID), zap.String("owner", account.Address))
	return &model.MintNFTResponse{TokenID: tokenID, Owner: account.Address}, nil
}

// TransferNFT sends a token from the current account to another address
func (s *Service) TransferNFT(ctx context.Context, req *model.TransferNFTRequest) (*model.TransferNFTResponse, error) {
	if req.TokenID == "" {
		return nil, &ValidationError{Field: "tokenId", Reason: "required"}
	}
	if !common.IsValidAddress(req.ToAddress) {
		return nil, &ValidationError{Field: "toAddress", Reason: "not a drachma address"}
	}
	account, err := s.currentAccount()
	if err != nil {
		return nil, err
	}
	if req.ToAddress == account.Address {
		return nil, &ValidationError{Field: "toAddress", Reason: "already owned by the current account"}
	}

	txID, err := s.node.TransferNFT(ctx, req.TokenID, req.ToAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to transfer nft: %w", err)
	}

	s.logger.Info("nft transferred", zap.String("token", req.TokenID), zap.String("tx", txID))
	return &model.TransferNFTResponse{
		TxID:    txID,
		TokenID: req.TokenID,
		From:    account.Address,
		To:      req.ToAddress,
	}, nil
}
