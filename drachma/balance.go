package drachma

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/drachma-wallet/internal/common"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

// GetBalance gets the node wallet balance, optionally for one asset.
// getbalance is not address scoped, so every account sees the same total;
// Address only names the account the caller is on.
func (s *Service) GetBalance(ctx context.Context, assetID string) (*model.BalanceResponse, error) {
	account, err := s.currentAccount()
	if err != nil {
		return nil, err
	}

	units, err := s.balanceUnits(ctx, assetID)
	if err != nil {
		return nil, err
	}

	return &model.BalanceResponse{
		Address:   account.Address,
		AssetID:   assetID,
		Balance:   common.UnitsToAmount(units),
		Formatted: common.FormatUnits(units),
	}, nil
}

func (s *Service) balanceUnits(ctx context.Context, assetID string) (uint64, error) {
	raw, err := s.node.GetBalance(ctx, assetID)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}
	if raw == "" {
		return 0, nil
	}
	units, negative, err := common.NodeAmountToUnits(raw.String())
	if err != nil {
		return 0, fmt.Errorf("failed to parse balance: %w", err)
	}
	if negative {
		return 0, nil
	}
	return units, nil
}
