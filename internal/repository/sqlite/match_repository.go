package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/flexstats/internal/logger"
	"github.com/vytor/flexstats/internal/models"
	"github.com/vytor/flexstats/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

var participantColumns = []string{
	"p.match_id", "p.game_name", "p.tag_line", "p.team_id", "p.champion", "p.role",
	"p.kills", "p.deaths", "p.assists", "p.cs", "p.gold", "p.damage_dealt", "p.damage_taken",
	"p.vision_score", "p.items", "p.win",
	"m.game_creation", "m.game_duration", "m.game_mode", "m.queue_id",
}

type matchRepository struct {
	db *sql.DB
}

// NewMatchRepository creates a new MatchRepository implementation
func NewMatchRepository(db *sql.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) RecentMatches(ctx context.Context, player models.PlayerIdentity, n int) ([][]models.ParticipantRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("match_repo")
	log.Debug("loading recent matches: player=%s, n=%d", player, n)

	if n < 1 {
		return nil, fmt.Errorf("match window must be at least 1, got %d", n)
	}

	ids, err := r.recentMatchIDs(ctx, player, n)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		log.Debug("no matches stored for player=%s", player)
		return nil, repository.ErrPlayerNotFound
	}
	if len(ids) < n {
		log.Debug("short history: player=%s, want=%d, have=%d", player, n, len(ids))
		return nil, &repository.InsufficientHistoryError{Want: n, Have: len(ids)}
	}

	query, args, err := sqlBuilder.Select(participantColumns...).
		From("participants p").
		Join("matches m ON m.match_id = p.match_id").
		Where(squirrel.Eq{"p.match_id": ids}).
		OrderBy("p.match_id", "p.slot").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to load participants: %v", err)
		return nil, err
	}
	defer rows.Close()

	byMatch := make(map[string][]models.ParticipantRecord, len(ids))
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			log.Error("failed to scan participant row: %v", err)
			return nil, err
		}
		byMatch[p.MatchID] = append(byMatch[p.MatchID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	matches := make([][]models.ParticipantRecord, 0, len(ids))
	for _, id := range ids {
		matches = append(matches, byMatch[id])
	}
	log.Debug("loaded %d matches for player=%s", len(matches), player)
	return matches, nil
}

func (r *matchRepository) recentMatchIDs(ctx context.Context, player models.PlayerIdentity, n int) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("match_repo")

	query, args, err := sqlBuilder.Select("m.match_id").
		From("matches m").
		Join("participants p ON p.match_id = m.match_id").
		Where(squirrel.Eq{"p.player_key": player.Key()}).
		OrderBy("m.game_creation DESC", "m.match_id DESC").
		Limit(uint64(n)).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list match ids: %v", err)
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *matchRepository) InsertMatch(ctx context.Context, participants []models.ParticipantRecord) error {
	log := logger.FromContext(ctx).WithPrefix("match_repo")

	if len(participants) == 0 {
		return fmt.Errorf("match has no participants")
	}
	first := participants[0]
	log.Debug("inserting match: match_id=%s, participants=%d", first.MatchID, len(participants))

	return tx(ctx, r.db, func(tx *sql.Tx) error {
		query, args, err := sqlBuilder.Insert("matches").
			Columns("match_id", "game_creation", "game_duration", "game_mode", "queue_id").
			Values(first.MatchID, first.PlayedAt.UnixMilli(), first.DurationSeconds, first.GameMode, first.QueueID).
			Suffix("ON CONFLICT(match_id) DO NOTHING").
			ToSql()
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Error("failed to insert match: %v", err)
			return err
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			log.Debug("match already stored: match_id=%s", first.MatchID)
			return nil
		}

		insert := sqlBuilder.Insert("participants").Columns(
			"match_id", "slot", "game_name", "tag_line", "player_key", "team_id", "champion", "role",
			"kills", "deaths", "assists", "cs", "gold", "damage_dealt", "damage_taken",
			"vision_score", "items", "win",
		)
		for slot, p := range participants {
			if p.MatchID != first.MatchID {
				return fmt.Errorf("participant %s belongs to match %q, not %q", p.Player, p.MatchID, first.MatchID)
			}
			items, err := encodeItems(p.Items)
			if err != nil {
				return err
			}
			insert = insert.Values(
				p.MatchID, slot, p.Player.GameName, p.Player.TagLine, p.Player.Key(), p.TeamID, p.Champion, p.Role,
				p.Kills, p.Deaths, p.Assists, p.CS, p.Gold, p.DamageDealt, p.DamageTaken,
				p.VisionScore, items, boolToInt(p.Win),
			)
		}
		query, args, err = insert.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Error("failed to insert participants: %v", err)
			return err
		}
		log.Debug("match inserted: match_id=%s", first.MatchID)
		return nil
	})
}

func (r *matchRepository) CountMatches(ctx context.Context, player models.PlayerIdentity) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("match_repo")

	query, args, err := sqlBuilder.Select("COUNT(*)").
		From("participants").
		Where(squirrel.Eq{"player_key": player.Key()}).
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Error("failed to count matches: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *matchRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func scanParticipant(rows *sql.Rows) (models.ParticipantRecord, error) {
	var (
		p         models.ParticipantRecord
		items     string
		win       int
		createdMs int64
	)
	err := rows.Scan(
		&p.MatchID, &p.Player.GameName, &p.Player.TagLine, &p.TeamID, &p.Champion, &p.Role,
		&p.Kills, &p.Deaths, &p.Assists, &p.CS, &p.Gold, &p.DamageDealt, &p.DamageTaken,
		&p.VisionScore, &items, &win,
		&createdMs, &p.DurationSeconds, &p.GameMode, &p.QueueID,
	)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal([]byte(items), &p.Items); err != nil {
		return p, fmt.Errorf("decode items of %s in %s: %w", p.Player, p.MatchID, err)
	}
	p.Win = win != 0
	p.PlayedAt = time.UnixMilli(createdMs).UTC()
	return p, nil
}

func encodeItems(items []int) (string, error) {
	if items == nil {
		items = []int{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
