package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/drachma-wallet/internal/model"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change saved settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print saved settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.close()

			s, err := a.settings.Load()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		},
	})

	var network, theme string
	set := &cobra.Command{
		Use:     "set",
		Short:   "Change saved settings",
		Example: `  drachma settings set --network mainnet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.close()

			s, err := a.settings.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("network") {
				s.Network = model.Network(network)
			}
			if cmd.Flags().Changed("theme") {
				s.Theme = theme
			}
			if err := a.settings.Save(s); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved")
			return nil
		},
	}
	set.Flags().StringVar(&network, "network", "", "mainnet, testnet or local")
	set.Flags().StringVar(&theme, "theme", "", "UI theme")
	cmd.AddCommand(set)

	return cmd
}
