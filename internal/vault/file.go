package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for the device vault
	// Security is prioritized over performance
	//
	// N=2^18 (~256MB RAM, 0.5-2s) stays inside per-app memory limits on
	// phones while keeping brute force expensive. The key is derived once per
	// Open, not per record.
	DefaultScryptN = 1 << 18
	scryptR        = 8
	scryptP        = 1
	keyLen         = 32
	saltLen        = 32
	nonceLen       = 12

	metaFile      = "vault.json"
	recordExt     = ".rec"
	stagedExt     = ".new"
	formatVersion = 1
)

var checkPlaintext = []byte("drachma-vault-check")

// metaData represents vault.json
type metaData struct {
	Version int    `json:"version"`
	ScryptN int    `json:"scryptN"`
	Salt    string `json:"salt"`
	Check   string `json:"check"` // nonce || sealed checkPlaintext
}

// record represents one <hash>.rec file
type record struct {
	Key        string `json:"key"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// Option configures a FileVault
type Option func(*options)

type options struct {
	scryptN int
}

// WithScryptN overrides the scrypt cost used when a new vault is created
func WithScryptN(n int) Option {
	return func(o *options) { o.scryptN = n }
}

// FileVault stores one encrypted file per key inside a directory
type FileVault struct {
	dir string

	mu     sync.RWMutex
	aead   cipher.AEAD
	key    []byte
	closed bool
}

var _ Vault = (*FileVault)(nil)

// Exists reports whether dir already holds a vault
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, metaFile))
	return err == nil
}

// Open opens the vault in dir, creating it when it does not exist yet.
// password must be []byte for security (caller should zero it after use)
func Open(dir string, password []byte, opts ...Option) (*FileVault, error) {
	o := options{scryptN: DefaultScryptN}
	for _, opt := range opts {
		opt(&o)
	}

	if len(password) == 0 {
		return nil, &StorageError{Op: "open", Err: errors.New("password cannot be empty")}
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, &StorageError{Op: "open", Err: fmt.Errorf("failed to create vault dir: %w", err)}
	}

	if err := recoverRekey(dir); err != nil {
		return nil, &StorageError{Op: "open", Err: fmt.Errorf("failed to recover interrupted rekey: %w", err)}
	}

	metaPath := filepath.Join(dir, metaFile)
	raw, err := os.ReadFile(metaPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return create(dir, password, o.scryptN)
	case err != nil:
		return nil, &StorageError{Op: "open", Err: fmt.Errorf("failed to read vault metadata: %w", err)}
	}

	var meta metaData
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, &StorageError{Op: "open", Err: fmt.Errorf("failed to unmarshal vault metadata: %w", err)}
	}
	if meta.Version != formatVersion {
		return nil, &StorageError{Op: "open", Err: fmt.Errorf("unsupported vault version %d", meta.Version)}
	}

	salt, err := base64.StdEncoding.DecodeString(meta.Salt)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: fmt.Errorf("failed to decode salt: %w", err)}
	}
	check, err := base64.StdEncoding.DecodeString(meta.Check)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: fmt.Errorf("failed to decode check: %w", err)}
	}

	key, aead, err := deriveAEAD(password, salt, meta.ScryptN)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	if _, err := unseal(aead, check, []byte(metaFile)); err != nil {
		clear(key)
		return nil, &StorageError{Op: "open", Err: ErrInvalidPassword}
	}

	return &FileVault{dir: dir, aead: aead, key: key}, nil
}

func create(dir string, password []byte, scryptN int) (*FileVault, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, &StorageError{Op: "create", Err: fmt.Errorf("failed to generate salt: %w", err)}
	}

	key, aead, err := deriveAEAD(password, salt, scryptN)
	if err != nil {
		return nil, &StorageError{Op: "create", Err: err}
	}

	if err := writeMeta(dir, aead, salt, scryptN); err != nil {
		clear(key)
		return nil, &StorageError{Op: "create", Err: err}
	}

	return &FileVault{dir: dir, aead: aead, key: key}, nil
}

// Put seals value and atomically replaces the record for key
func (v *FileVault) Put(key, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return &StorageError{Op: "put", Key: key, Err: ErrClosed}
	}

	plaintext := []byte(value)
	defer clear(plaintext) // wipe plaintext bytes from memory

	if err := v.writeRecord(v.aead, key, plaintext); err != nil {
		return &StorageError{Op: "put", Key: key, Err: err}
	}
	return nil
}

// Get returns the value for key; ok is false when no record exists
func (v *FileVault) Get(key string) (string, bool, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.closed {
		return "", false, &StorageError{Op: "get", Key: key, Err: ErrClosed}
	}

	plaintext, ok, err := v.readRecord(v.aead, key)
	if err != nil {
		return "", false, &StorageError{Op: "get", Key: key, Err: err}
	}
	if !ok {
		return "", false, nil
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	return string(plaintext), true, nil
}

// Delete removes the record for key. Deleting a missing key is not an error.
func (v *FileVault) Delete(key string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return &StorageError{Op: "delete", Key: key, Err: ErrClosed}
	}
	if err := v.removeRecord(key); err != nil {
		return &StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// DeleteMany removes every key, attempting all of them even if some fail
func (v *FileVault) DeleteMany(keys []string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return &StorageError{Op: "delete", Err: ErrClosed}
	}

	var errs []error
	for _, key := range keys {
		if err := v.removeRecord(key); err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", key, err))
		}
	}
	if len(errs) > 0 {
		return &StorageError{Op: "delete", Err: errors.Join(errs...)}
	}
	return nil
}

// Close wipes the derived key from memory
func (v *FileVault) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.closed {
		clear(v.key)
		v.aead = nil
		v.closed = true
	}
	return nil
}

func (v *FileVault) recordPath(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(v.dir, hex.EncodeToString(sum[:])+recordExt)
}

func (v *FileVault) writeRecord(aead cipher.AEAD, key string, plaintext []byte) error {
	data, err := encodeRecord(aead, key, plaintext)
	if err != nil {
		return err
	}
	return writeFileAtomic(v.recordPath(key), data)
}

func encodeRecord(aead cipher.AEAD, key string, plaintext []byte) ([]byte, error) {
	sealed, err := seal(aead, plaintext, []byte(key))
	if err != nil {
		return nil, err
	}

	rec := record{
		Key:        key,
		Nonce:      base64.StdEncoding.EncodeToString(sealed[:nonceLen]),
		CipherText: base64.StdEncoding.EncodeToString(sealed[nonceLen:]),
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return data, nil
}

func (v *FileVault) readRecord(aead cipher.AEAD, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(v.recordPath(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read record: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	if rec.Key != key {
		return nil, false, fmt.Errorf("record key mismatch")
	}

	nonce, err := base64.StdEncoding.DecodeString(rec.Nonce)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(rec.CipherText)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	plaintext, err := unseal(aead, append(nonce, ciphertext...), []byte(key))
	if err != nil {
		return nil, false, err
	}
	return plaintext, true, nil
}

func (v *FileVault) removeRecord(key string) error {
	err := os.Remove(v.recordPath(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// keys lists the key names of all records in the vault
func (v *FileVault) keys() ([]string, error) {
	entries, err := os.ReadDir(v.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list vault dir: %w", err)
	}

	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), recordExt) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(v.dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		var rec record
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record %s: %w", e.Name(), err)
		}
		keys = append(keys, rec.Key)
	}
	return keys, nil
}

func deriveAEAD(password, salt []byte, scryptN int) ([]byte, cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		clear(key)
		return nil, nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		clear(key)
		return nil, nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return key, aesGCM, nil
}

// seal returns nonce || ciphertext || tag
func seal(aead cipher.AEAD, plaintext, aad []byte) ([]byte, error) {
	nonce := make([]byte, nonceLen, nonceLen+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plaintext, aad), nil
}

func unseal(aead cipher.AEAD, data, aad []byte) ([]byte, error) {
	if len(data) < nonceLen+aead.Overhead() {
		return nil, errors.New("ciphertext too short")
	}
	plaintext, err := aead.Open(nil, data[:nonceLen], data[nonceLen:], aad)
	if err != nil {
		return nil, errors.New("decryption failed")
	}
	return plaintext, nil
}

func writeMeta(dir string, aead cipher.AEAD, salt []byte, scryptN int) error {
	data, err := encodeMeta(aead, salt, scryptN)
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(dir, metaFile), data)
}

func encodeMeta(aead cipher.AEAD, salt []byte, scryptN int) ([]byte, error) {
	check, err := seal(aead, checkPlaintext, []byte(metaFile))
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(metaData{
		Version: formatVersion,
		ScryptN: scryptN,
		Salt:    base64.StdEncoding.EncodeToString(salt),
		Check:   base64.StdEncoding.EncodeToString(check),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal vault metadata: %w", err)
	}
	return data, nil
}

// writeFileAtomic writes to a temp file in the same dir, syncs it and renames it over path
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
