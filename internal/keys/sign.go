package keys

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/fxamacker/cbor/v2"

	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

// TransactionTag is the BIP-340 tag of the transaction digest
const TransactionTag = "DRACHMA/tx"

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cbor: %v", err))
	}
}

// EncodePayload returns the canonical encoding of a payload: a CBOR array in
// field order using core deterministic encoding.
func EncodePayload(payload model.TransactionPayload) ([]byte, error) {
	data, err := encMode.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return data, nil
}

// TransactionHash is TaggedHash("DRACHMA/tx", EncodePayload(payload))
func TransactionHash(payload model.TransactionPayload) (*chainhash.Hash, error) {
	data, err := EncodePayload(payload)
	if err != nil {
		return nil, err
	}
	return chainhash.TaggedHash([]byte(TransactionTag), data), nil
}

// SignTransaction signs the payload digest with a hex private key
func SignTransaction(privateKeyHex string, payload model.TransactionPayload) (*model.Signature, error) {
	privBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}
	defer clear(privBytes)
	if len(privBytes) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("private key must be %d bytes", btcec.PrivKeyBytesLen)
	}

	hash, err := TransactionHash(payload)
	if err != nil {
		return nil, err
	}

	priv, pub := btcec.PrivKeyFromBytes(privBytes)
	defer priv.Zero()

	sig, err := schnorr.Sign(priv, hash[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	return &model.Signature{
		Hash:      hex.EncodeToString(hash[:]),
		Signature: hex.EncodeToString(sig.Serialize()),
		PublicKey: hex.EncodeToString(pub.SerializeCompressed()),
	}, nil
}

// VerifyTransaction checks a signature against the payload it claims to cover
func VerifyTransaction(payload model.TransactionPayload, signature *model.Signature) (bool, error) {
	if signature == nil {
		return false, errors.New("signature is nil")
	}
	hash, err := TransactionHash(payload)
	if err != nil {
		return false, err
	}
	if signature.Hash != "" && signature.Hash != hex.EncodeToString(hash[:]) {
		return false, nil
	}

	pubBytes, err := hex.DecodeString(signature.PublicKey)
	if err != nil {
		return false, fmt.Errorf("failed to decode public key: %w", err)
	}
	pub, err := btcec.ParsePubKey(pubBytes)
	if err != nil {
		return false, fmt.Errorf("failed to parse public key: %w", err)
	}

	sigBytes, err := hex.DecodeString(signature.Signature)
	if err != nil {
		return false, fmt.Errorf("failed to decode signature: %w", err)
	}
	sig, err := schnorr.ParseSignature(sigBytes)
	if err != nil {
		return false, fmt.Errorf("failed to parse signature: %w", err)
	}

	return sig.Verify(hash[:], pub), nil
}

// EncodeSignedTransaction builds the hex envelope accepted by sendrawtransaction
func EncodeSignedTransaction(payload model.TransactionPayload, signature *model.Signature) (string, error) {
	pub, err := hex.DecodeString(signature.PublicKey)
	if err != nil {
		return "", fmt.Errorf("failed to decode public key: %w", err)
	}
	sig, err := hex.DecodeString(signature.Signature)
	if err != nil {
		return "", fmt.Errorf("failed to decode signature: %w", err)
	}

	data, err := encMode.Marshal(model.SignedTransaction{
		Payload:   payload,
		PublicKey: pub,
		Signature: sig,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode signed transaction: %w", err)
	}
	return hex.EncodeToString(data), nil
}

// DecodeSignedTransaction reverses EncodeSignedTransaction
func DecodeSignedTransaction(raw string) (*model.SignedTransaction, error) {
	data, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode transaction hex: %w", err)
	}
	var tx model.SignedTransaction
	if err := cbor.Unmarshal(data, &tx); err != nil {
		return nil, fmt.Errorf("failed to decode transaction: %w", err)
	}
	return &tx, nil
}
