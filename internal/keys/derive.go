package keys

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

const (
	purpose  = 44
	coinType = 9001
	account  = 0
	change   = 0
)

// DerivationError is returned when a path segment yields no usable key
type DerivationError struct {
	Path string
	Err  error
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("failed to derive %s: %v", e.Path, e.Err)
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}

// IsDerivationError checks if error is DerivationError
func IsDerivationError(err error) bool {
	var de *DerivationError
	return errors.As(err, &de)
}

// DerivationPath returns the full path for an account index
func DerivationPath(index uint32) string {
	return model.DerivationPathPrefix + strconv.FormatUint(uint64(index), 10)
}

// DeriveAccount walks m/44'/9001'/0'/0/index from seed. The result depends
// on nothing but its inputs, so restoring a mnemonic reproduces every
// account. No intermediate node outlives the call.
func DeriveAccount(seed []byte, index uint32) (*model.WalletAccount, error) {
	path := DerivationPath(index)

	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		if errors.Is(err, hdkeychain.ErrUnusableSeed) {
			return nil, &DerivationError{Path: "m", Err: err}
		}
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}
	defer master.Zero()

	node := master
	segments := []uint32{
		hdkeychain.HardenedKeyStart + purpose,
		hdkeychain.HardenedKeyStart + coinType,
		hdkeychain.HardenedKeyStart + account,
		change,
		index,
	}
	for _, segment := range segments {
		child, err := node.Derive(segment)
		if err != nil {
			return nil, &DerivationError{Path: path, Err: err}
		}
		if node != master {
			node.Zero()
		}
		node = child
	}
	defer node.Zero()

	priv, err := node.ECPrivKey()
	if err != nil {
		return nil, &DerivationError{Path: path, Err: err}
	}
	privBytes := priv.Serialize()
	defer clear(privBytes)
	if isZero(privBytes) {
		return nil, &DerivationError{Path: path, Err: hdkeychain.ErrInvalidChild}
	}

	pub := priv.PubKey().SerializeCompressed()

	return &model.WalletAccount{
		Address:        AddressFromPublicKey(pub),
		PublicKey:      hex.EncodeToString(pub),
		PrivateKey:     hex.EncodeToString(privBytes),
		DerivationPath: path,
		Index:          index,
	}, nil
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
