package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/drachma-wallet/internal/config"
)

func walletCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Manage the wallet stored in the vault",
	}
	cmd.AddCommand(
		walletGenerateCmd(),
		walletRestoreCmd(),
		walletShowCmd(),
		walletAccountCmd(),
		walletDeleteCmd(),
	)
	return cmd
}

// withWallet unlocks the vault, runs fn and closes everything
func withWallet(fn func(a *app) error) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()
	if err := a.openVault(); err != nil {
		return err
	}
	return fn(a)
}

func ensureNoWallet(a *app, force bool) error {
	has, err := a.wallet.HasWallet()
	if err != nil {
		return err
	}
	if has && !force {
		return errors.New("a wallet already exists in this vault\nUse --force to replace it. Make sure its mnemonic is backed up first")
	}
	return nil
}

func readPassphrase(enabled bool) (string, error) {
	if !enabled {
		return "", nil
	}
	p, err := config.PromptForPassword("BIP-39 passphrase: ")
	if err != nil {
		return "", err
	}
	defer clear(p)
	return string(p), nil
}

func walletGenerateCmd() *cobra.Command {
	var force, passphrase bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new 24-word wallet",
		Long: `Generate a new 24-word wallet and derive account 0.

The mnemonic is printed once. Write it down: it is the only way to restore
the wallet on another device.`,
		Example: `  drachma wallet generate
  drachma wallet generate --passphrase`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWallet(func(a *app) error {
				if err := ensureNoWallet(a, force); err != nil {
					return err
				}
				pass, err := readPassphrase(passphrase)
				if err != nil {
					return err
				}
				mnemonic, err := a.wallet.GenerateWallet(pass)
				if err != nil {
					return err
				}
				account, err := a.wallet.CurrentAccount()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "Mnemonic (write it down, it will not be shown again):")
				fmt.Fprintln(out)
				for i, word := range strings.Fields(mnemonic) {
					fmt.Fprintf(out, "%2d. %s\n", i+1, word)
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Address:", account.Address)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing wallet")
	cmd.Flags().BoolVar(&passphrase, "passphrase", false, "prompt for an optional BIP-39 passphrase")
	return cmd
}

func walletRestoreCmd() *cobra.Command {
	var force, passphrase bool

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore a wallet from its mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWallet(func(a *app) error {
				if err := ensureNoWallet(a, force); err != nil {
					return err
				}
				raw, err := config.PromptForPassword("Mnemonic: ")
				if err != nil {
					return err
				}
				mnemonic := strings.Join(strings.Fields(string(raw)), " ")
				clear(raw)

				pass, err := readPassphrase(passphrase)
				if err != nil {
					return err
				}
				if err := a.wallet.RestoreWallet(mnemonic, pass); err != nil {
					return err
				}
				account, err := a.wallet.CurrentAccount()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Restored. Address:", account.Address)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing wallet")
	cmd.Flags().BoolVar(&passphrase, "passphrase", false, "prompt for the BIP-39 passphrase used at generation")
	return cmd
}

func walletShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List accounts and mark the current one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWallet(func(a *app) error {
				data, err := a.wallet.Wallet()
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "\tPOS\tADDRESS\tPATH")
				for i, acc := range data.Accounts {
					mark := ""
					if i == data.CurrentAccountIndex {
						mark = "*"
					}
					fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", mark, i, acc.Address, acc.DerivationPath)
				}
				return tw.Flush()
			})
		},
	}
}

func walletAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Create or switch accounts",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "new",
		Short: "Derive the next account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withWallet(func(a *app) error {
				acc, err := a.wallet.CreateAccount()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", acc.Address, acc.DerivationPath)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "switch <position>",
		Short: "Make the account at position current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[0])
			}
			return withWallet(func(a *app) error {
				if err := a.wallet.SwitchAccount(pos); err != nil {
					return err
				}
				acc, err := a.wallet.CurrentAccount()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Current:", acc.Address)
				return nil
			})
		},
	})
	return cmd
}

func walletDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Erase the wallet from the vault",
		Long: `Erase the wallet from the vault. This cannot be undone: without the
mnemonic the funds are lost.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete without --yes")
			}
			return withWallet(func(a *app) error {
				if err := a.wallet.DeleteWallet(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Wallet deleted")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}
