package drachma

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/AlexZinkM/drachma-wallet/internal/common"
	"github.com/AlexZinkM/drachma-wallet/internal/keys"
	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

const (
	// DefaultFeeUnits is used when no fee is given and the node cannot estimate one
	DefaultFeeUnits = 10_000
	feeTargetBlocks = 6
	maxMemoLength   = 256
)

// CooldownError is returned when a send comes too soon after the previous one
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active, please wait %v", e.Remaining.Round(time.Second))
}

// IsCooldownError checks if error is CooldownError
func IsCooldownError(err error) bool {
	var ce *CooldownError
	return errors.As(err, &ce)
}

// InsufficientFundsError is returned when the balance cannot cover a send
type InsufficientFundsError struct {
	Have string
	Need string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance: have %s, need %s", e.Have, e.Need)
}

// IsInsufficientFundsError checks if error is InsufficientFundsError
func IsInsufficientFundsError(err error) bool {
	var ie *InsufficientFundsError
	return errors.As(err, &ie)
}

// ValidationError is returned when request fields are malformed
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidationError checks if error is ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Send signs a transfer from the current account and broadcasts it
func (s *Service) Send(ctx context.Context, req *model.PayRequest) (*model.PayResponse, error) {
	if !common.IsValidAddress(req.ToAddress) {
		return nil, &ValidationError{Field: "toAddress", Reason: "not a drachma address"}
	}
	if !common.IsValidAmount(req.Amount) {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive with at most 8 decimals"}
	}
	amount, err := common.AmountToUnits(req.Amount)
	if err != nil {
		return nil, &ValidationError{Field: "amount", Reason: err.Error()}
	}
	memo := common.SanitizeInput(req.Memo)
	if len(memo) > maxMemoLength {
		return nil, &ValidationError{Field: "memo", Reason: fmt.Sprintf("longer than %d bytes", maxMemoLength)}
	}

	s.payMu.Lock()
	defer s.payMu.Unlock()

	if s.cooldown > 0 && !s.lastPay.IsZero() {
		if elapsed := s.now().Sub(s.lastPay); elapsed < s.cooldown {
			return nil, &CooldownError{Remaining: s.cooldown - elapsed}
		}
	}

	account, err := s.currentAccount()
	if err != nil {
		return nil, err
	}

	fee, err := s.fee(ctx, req.Fee)
	if err != nil {
		return nil, err
	}

	if err := s.checkFunds(ctx, req.AssetID, amount, fee); err != nil {
		return nil, err
	}

	payload := model.TransactionPayload{
		ChainID: s.chainID,
		From:    account.Address,
		To:      req.ToAddress,
		Amount:  amount,
		Fee:     fee,
		Nonce:   uint64(s.now().UnixMilli()),
		AssetID: req.AssetID,
		Memo:    memo,
	}

	sig, err := s.wallet.SignTransaction(payload)
	if err != nil {
		return nil, err
	}

	raw, err := keys.EncodeSignedTransaction(payload, sig)
	if err != nil {
		return nil, err
	}

	txID, err := s.node.SendRawTransaction(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	s.lastPay = s.now()
	s.logger.Info("transaction sent",
		zap.String("txid", txID),
		zap.String("to", common.TruncateAddress(req.ToAddress)),
		zap.String("amount", req.Amount))

	return &model.PayResponse{TxID: txID}, nil
}

// fee resolves the explicit fee, else the node estimate, else the default
func (s *Service) fee(ctx context.Context, explicit string) (uint64, error) {
	if explicit != "" {
		fee, err := common.AmountToUnits(explicit)
		if err != nil {
			return 0, &ValidationError{Field: "fee", Reason: err.Error()}
		}
		return fee, nil
	}

	estimate, err := s.node.EstimateFee(ctx, feeTargetBlocks)
	if err != nil {
		s.logger.Debug("fee estimate failed, using default", zap.Error(err))
		return DefaultFeeUnits, nil
	}
	fee, negative, err := common.NodeAmountToUnits(estimate.String())
	if err != nil || negative || fee == 0 {
		return DefaultFeeUnits, nil
	}
	return fee, nil
}

func (s *Service) checkFunds(ctx context.Context, assetID string, amount, fee uint64) error {
	native, err := s.balanceUnits(ctx, "")
	if err != nil {
		return err
	}

	if assetID == "" {
		need := amount + fee
		if need < amount || native < need {
			return &InsufficientFundsError{Have: common.UnitsToAmount(native), Need: common.UnitsToAmount(need)}
		}
		return nil
	}

	if native < fee {
		return &InsufficientFundsError{Have: common.UnitsToAmount(native), Need: common.UnitsToAmount(fee)}
	}
	asset, err := s.balanceUnits(ctx, assetID)
	if err != nil {
		return err
	}
	if asset < amount {
		return &InsufficientFundsError{Have: common.UnitsToAmount(asset), Need: common.UnitsToAmount(amount)}
	}
	return nil
}
