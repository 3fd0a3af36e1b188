package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vytor/flexstats/internal/config"
	"github.com/vytor/flexstats/internal/models"
	"github.com/vytor/flexstats/internal/riot"
)

type importSummary struct {
	File    string `json:"file"`
	MatchID string `json:"matchId"`
	Players int    `json:"players"`
}

func newImportCmd(cfg config.Config, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <match.json> [<match.json>...]",
		Short: "Store Riot match-v5 documents in the match store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open(cfg, opts)
			if err != nil {
				return err
			}
			defer a.Close()

			var summary []importSummary
			for _, path := range args {
				participants, err := readMatch(path)
				if err != nil {
					return err
				}
				result, err := a.Matches.IngestMatch(cmd.Context(), participants)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				summary = append(summary, importSummary{File: path, MatchID: result.MatchID, Players: result.Size()})
			}
			return printJSON(cmd.OutOrStdout(), summary)
		},
	}
}

func readMatch(path string) ([]models.ParticipantRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	match, err := riot.DecodeMatch(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	participants, err := match.ParticipantRecords()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return participants, nil
}
