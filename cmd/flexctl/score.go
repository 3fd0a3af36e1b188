package main

import (
	"github.com/spf13/cobra"
	"github.com/vytor/flexstats/internal/config"
	"github.com/vytor/flexstats/internal/models"
)

func newScoreCmd(cfg config.Config, opts *options) *cobra.Command {
	var player string

	cmd := &cobra.Command{
		Use:   "score <match.json>",
		Short: "Rank every participant of one Riot match-v5 document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var requested *models.PlayerIdentity
			if player != "" {
				p, err := models.ParsePlayerIdentity(player)
				if err != nil {
					return err
				}
				requested = &p
			}

			participants, err := readMatch(args[0])
			if err != nil {
				return err
			}

			a, err := open(cfg, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.Matches.ScoreMatch(cmd.Context(), participants, requested)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().StringVar(&player, "player", "", "highlight this player (name#tag)")
	return cmd
}
