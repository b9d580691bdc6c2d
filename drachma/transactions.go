package drachma

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/AlexZinkM/drachma-wallet/internal/client"
	"github.com/AlexZinkM/drachma-wallet/internal/common"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

// DefaultHistoryCount is how many entries are requested when none is given
const DefaultHistoryCount = 100

// GetTransactions gets the node wallet history with filtering, newest first.
// listtransactions covers every address the node wallet holds, so the result
// is the same for every account; Address names the current one.
func (s *Service) GetTransactions(ctx context.Context, req *model.LogRequest) (*model.LogResponse, error) {
	if req == nil {
		req = &model.LogRequest{}
	}
	if err := req.Validate(); err != nil {
		return nil, &ValidationError{Field: "filter", Reason: err.Error()}
	}

	account, err := s.currentAccount()
	if err != nil {
		return nil, err
	}

	count := req.Count
	if count == 0 {
		count = DefaultHistoryCount
	}
	nodeTxs, err := s.node.ListTransactions(ctx, count, req.Skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	var minUnits, maxUnits *uint64
	if req.MinAmount != nil {
		v, err := common.AmountToUnits(*req.MinAmount)
		if err != nil {
			return nil, &ValidationError{Field: "minAmount", Reason: err.Error()}
		}
		minUnits = &v
	}
	if req.MaxAmount != nil {
		v, err := common.AmountToUnits(*req.MaxAmount)
		if err != nil {
			return nil, &ValidationError{Field: "maxAmount", Reason: err.Error()}
		}
		maxUnits = &v
	}

	var totalReceived, totalSent uint64
	result := make([]model.Transaction, 0, len(nodeTxs))
	for _, ntx := range nodeTxs {
		tx, units, ok, err := convertTransaction(ntx)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		if req.Type != nil && *req.Type != tx.Type {
			continue
		}
		if req.TxID != nil && *req.TxID != tx.TxID {
			continue
		}
		if req.AssetID != nil && *req.AssetID != tx.AssetID {
			continue
		}
		if req.From != nil && tx.Timestamp.Before(*req.From) {
			continue
		}
		if req.To != nil && tx.Timestamp.After(*req.To) {
			continue
		}
		if minUnits != nil && units < *minUnits {
			continue
		}
		if maxUnits != nil && units > *maxUnits {
			continue
		}

		if tx.AssetID == "" {
			switch tx.Type {
			case model.TransactionTypeReceive:
				totalReceived += units
			case model.TransactionTypeSend:
				totalSent += units
			}
		}
		result = append(result, tx)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})

	return &model.LogResponse{
		Address:       account.Address,
		TotalReceived: common.UnitsToAmount(totalReceived),
		TotalSent:     common.UnitsToAmount(totalSent),
		Transactions:  result,
	}, nil
}

// convertTransaction maps a node entry; ok is false for categories the
// wallet does not show.
func convertTransaction(ntx client.NodeTransaction) (model.Transaction, uint64, bool, error) {
	var txType model.TransactionType
	switch ntx.Category {
	case "send":
		txType = model.TransactionTypeSend
	case "receive", "generate", "immature":
		txType = model.TransactionTypeReceive
	default:
		return model.Transaction{}, 0, false, nil
	}

	units, _, err := common.NodeAmountToUnits(ntx.Amount.String())
	if err != nil {
		return model.Transaction{}, 0, false, fmt.Errorf("transaction %s: %w", ntx.TxID, err)
	}

	fee := common.UnitsToAmount(0)
	if ntx.Fee != "" {
		feeUnits, _, err := common.NodeAmountToUnits(ntx.Fee.String())
		if err != nil {
			return model.Transaction{}, 0, false, fmt.Errorf("transaction %s fee: %w", ntx.TxID, err)
		}
		fee = common.UnitsToAmount(feeUnits)
	}

	return model.Transaction{
		Type:          txType,
		TxID:          ntx.TxID,
		Address:       ntx.Address,
		Amount:        common.UnitsToAmount(units),
		AssetID:       ntx.AssetID,
		Fee:           fee,
		Confirmations: ntx.Confirmations,
		Timestamp:     time.Unix(ntx.Time, 0).UTC(),
	}, units, true, nil
}
