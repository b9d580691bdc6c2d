package drachma

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/AlexZinkM/drachma-wallet/internal/model"
	"github.com/AlexZinkM/drachma-wallet/wallet"
)

// QRSize is the edge length of the receive QR image in pixels
const QRSize = 256

// Receive returns the current address and a base64 PNG QR code of it
func (s *Service) Receive() (*model.ReceiveResponse, error) {
	account, err := s.currentAccount()
	if err != nil {
		return nil, err
	}

	qr, err := generateQRCode(account.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return &model.ReceiveResponse{
		Address: account.Address,
		QR:      qr,
	}, nil
}

func (s *Service) currentAccount() (*model.WalletAccount, error) {
	account, err := s.wallet.CurrentAccount()
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, &wallet.NoAccountError{}
	}
	return account, nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(QRSize)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
