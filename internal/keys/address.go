package keys

import (
	"crypto/sha256"
	"encoding/hex"
)

// AddressPrefix starts every wallet address
const AddressPrefix = "drm"

const addressHexLen = 40

// AddressFromPublicKey returns "drm" + the first 40 hex chars of
// sha256(compressed public key).
func AddressFromPublicKey(compressed []byte) string {
	sum := sha256.Sum256(compressed)
	return AddressPrefix + hex.EncodeToString(sum[:])[:addressHexLen]
}
