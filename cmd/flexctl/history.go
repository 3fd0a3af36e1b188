package main

import (
	"github.com/spf13/cobra"
	"github.com/vytor/flexstats/internal/config"
	"github.com/vytor/flexstats/internal/models"
)

func newHistoryCmd(cfg config.Config, opts *options) *cobra.Command {
	var window int

	cmd := &cobra.Command{
		Use:   "history <name#tag>",
		Short: "Average a player's most recent stored matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := models.ParsePlayerIdentity(args[0])
			if err != nil {
				return err
			}

			a, err := open(cfg, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			h, err := a.Histories.PlayerHistory(cmd.Context(), player, window)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), h)
		},
	}
	cmd.Flags().IntVar(&window, "window", cfg.HistoryWindow, "number of recent matches")
	return cmd
}
