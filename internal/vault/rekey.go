package vault

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Rekey re-encrypts every record under a key derived from newPassword.
//
// The new metadata and records are staged next to the live ones as ".new"
// files. Renaming the staged metadata over vault.json is the commit point:
// before it the old password still reads every record, after it Open
// promotes any staged records left behind.
func (v *FileVault) Rekey(newPassword []byte, opts ...Option) error {
	o := options{scryptN: DefaultScryptN}
	for _, opt := range opts {
		opt(&o)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return &StorageError{Op: "rekey", Err: ErrClosed}
	}
	if len(newPassword) == 0 {
		return &StorageError{Op: "rekey", Err: errors.New("password cannot be empty")}
	}

	keys, err := v.keys()
	if err != nil {
		return &StorageError{Op: "rekey", Err: err}
	}

	plaintexts := make(map[string][]byte, len(keys))
	defer func() {
		for _, p := range plaintexts {
			clear(p)
		}
	}()
	for _, key := range keys {
		p, ok, err := v.readRecord(v.aead, key)
		if err != nil {
			return &StorageError{Op: "rekey", Key: key, Err: err}
		}
		if ok {
			plaintexts[key] = p
		}
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return &StorageError{Op: "rekey", Err: fmt.Errorf("failed to generate salt: %w", err)}
	}
	newKey, newAEAD, err := deriveAEAD(newPassword, salt, o.scryptN)
	if err != nil {
		return &StorageError{Op: "rekey", Err: err}
	}

	abort := func(key string, err error) error {
		clear(newKey)
		if derr := discardStaged(v.dir); derr != nil {
			err = errors.Join(err, derr)
		}
		return &StorageError{Op: "rekey", Key: key, Err: err}
	}

	// Staged metadata goes first: while it exists the rekey is uncommitted.
	stagedMeta := filepath.Join(v.dir, metaFile+stagedExt)
	meta, err := encodeMeta(newAEAD, salt, o.scryptN)
	if err != nil {
		return abort("", err)
	}
	if err := writeFileAtomic(stagedMeta, meta); err != nil {
		return abort("", err)
	}

	for key, p := range plaintexts {
		data, err := encodeRecord(newAEAD, key, p)
		if err != nil {
			return abort(key, err)
		}
		if err := writeFileAtomic(v.recordPath(key)+stagedExt, data); err != nil {
			return abort(key, err)
		}
	}

	if err := os.Rename(stagedMeta, filepath.Join(v.dir, metaFile)); err != nil {
		return abort("", fmt.Errorf("failed to commit metadata: %w", err))
	}

	// Committed. The vault now belongs to the new key even if promotion
	// fails here; the next Open finishes it.
	clear(v.key)
	v.key = newKey
	v.aead = newAEAD

	if err := promoteStaged(v.dir); err != nil {
		return &StorageError{Op: "rekey", Err: err}
	}
	return nil
}

// recoverRekey finishes or rolls back a rekey that did not complete
func recoverRekey(dir string) error {
	_, err := os.Stat(filepath.Join(dir, metaFile+stagedExt))
	switch {
	case err == nil:
		return discardStaged(dir)
	case errors.Is(err, os.ErrNotExist):
		return promoteStaged(dir)
	default:
		return err
	}
}

func stagedRecords(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list vault dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), recordExt+stagedExt) {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// discardStaged removes the staged metadata and every staged record
func discardStaged(dir string) error {
	names, err := stagedRecords(dir)
	if err != nil {
		return err
	}
	var errs []error
	for _, name := range names {
		if err := os.RemoveAll(filepath.Join(dir, name)); err != nil {
			errs = append(errs, err)
		}
	}
	err = os.Remove(filepath.Join(dir, metaFile+stagedExt))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// promoteStaged renames every staged record over its live counterpart
func promoteStaged(dir string) error {
	names, err := stagedRecords(dir)
	if err != nil {
		return err
	}
	for _, name := range names {
		staged := filepath.Join(dir, name)
		if err := os.Rename(staged, strings.TrimSuffix(staged, stagedExt)); err != nil {
			return fmt.Errorf("failed to promote %s: %w", name, err)
		}
	}
	return nil
}
