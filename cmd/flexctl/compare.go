package main

import (
	"github.com/spf13/cobra"
	"github.com/vytor/flexstats/internal/config"
	"github.com/vytor/flexstats/internal/models"
)

func newCompareCmd(cfg config.Config, opts *options) *cobra.Command {
	var (
		window int
		key    string
	)

	cmd := &cobra.Command{
		Use:   "compare <name#tag> [<name#tag>...]",
		Short: "Compare up to five players by their recent matches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			players := make([]models.PlayerIdentity, 0, len(args))
			for _, arg := range args {
				p, err := models.ParsePlayerIdentity(arg)
				if err != nil {
					return err
				}
				players = append(players, p)
			}

			a, err := open(cfg, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.Comparisons.CompareSquad(cmd.Context(), players, window, models.ComparisonKey(key))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().IntVar(&window, "window", cfg.HistoryWindow, "number of recent matches per player")
	cmd.Flags().StringVar(&key, "key", string(models.KeyMVPScore), "average to order by: mvp_score, win_rate, kda, damage, gold, vision_score")
	return cmd
}
