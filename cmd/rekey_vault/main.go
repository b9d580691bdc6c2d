// One-off: re-encrypt every vault record under a new password, optionally
// with a different scrypt cost. Keep the mnemonic at hand before running.
// Usage: go run ./cmd/rekey_vault [-dir .drachma/vault] [-scrypt-n 262144]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/AlexZinkM/drachma-wallet/internal/config"
	"github.com/AlexZinkM/drachma-wallet/internal/vault"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	dir := flag.String("dir", cfg.VaultDir(), "vault directory")
	scryptN := flag.Int("scrypt-n", vault.DefaultScryptN, "scrypt cost for the new key, power of two")
	flag.Parse()

	if !vault.Exists(*dir) {
		fmt.Fprintln(os.Stderr, "no vault at", *dir)
		os.Exit(1)
	}

	oldPassword, err := config.PromptForPassword("Current vault password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	v, err := vault.Open(*dir, oldPassword)
	clear(oldPassword)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open failed:", err)
		os.Exit(1)
	}
	defer v.Close()

	newPassword, err := config.PromptForNewPassword("New vault password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer clear(newPassword)

	if err := v.Rekey(newPassword, vault.WithScryptN(*scryptN)); err != nil {
		fmt.Fprintln(os.Stderr, "rekey failed:", err)
		os.Exit(1)
	}
	fmt.Println("Vault re-encrypted")
}
