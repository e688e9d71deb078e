// Package sqlite implements roll history storage on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/dicebot/internal/platform/id"
	"github.com/louisbranch/dicebot/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/dicebot/internal/services/dice/storage"
	"github.com/louisbranch/dicebot/internal/services/dice/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const rollColumns = `seq, id, expression, source, seed, count, dice_count, sides,
keep_drop, keep_drop_count, arithmetic, arithmetic_value, spec_expression, sets_json, total, created_at`

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store is a SQLite-backed storage.RollStore.
type Store struct {
	sqlDB *sql.DB
	newID func() (string, error)
	now   func() time.Time
}

var _ storage.RollStore = (*Store)(nil)

// Open opens the roll history database at path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.RollsFS, "rolls"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB, newID: id.NewID, now: time.Now}, nil
}

// Close closes the underlying database. It is nil-safe.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutRoll inserts record, assigning an ID and creation time when missing.
func (s *Store) PutRoll(ctx context.Context, record storage.RollRecord) (storage.RollRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.RollRecord{}, err
	}
	if record.ID == "" {
		generated, err := s.newID()
		if err != nil {
			return storage.RollRecord{}, err
		}
		record.ID = generated
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now()
	}
	record.CreatedAt = record.CreatedAt.UTC().Truncate(time.Millisecond)

	setsJSON, err := encodeSets(record.Sets)
	if err != nil {
		return storage.RollRecord{}, err
	}

	spec := record.Spec
	result, err := s.sqlDB.ExecContext(ctx, `INSERT INTO rolls (
    id, expression, source, seed, count, dice_count, sides,
    keep_drop, keep_drop_count, arithmetic, arithmetic_value, spec_expression, sets_json, total, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Expression,
		record.Source,
		record.Seed,
		int64(spec.Count),
		int64(spec.DiceCount),
		int64(spec.Sides),
		spec.KeepDrop.String(),
		int64(spec.KeepDropCount),
		spec.Arithmetic.String(),
		int64(spec.ArithmeticValue),
		spec.Expression,
		setsJSON,
		record.Total,
		toMillis(record.CreatedAt),
	)
	if err != nil {
		return storage.RollRecord{}, fmt.Errorf("insert roll: %w", err)
	}
	seq, err := result.LastInsertId()
	if err != nil {
		return storage.RollRecord{}, fmt.Errorf("read roll seq: %w", err)
	}
	record.Seq = uint64(seq)
	return record, nil
}

// GetRoll returns the roll with id.
func (s *Store) GetRoll(ctx context.Context, id string) (storage.RollRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.RollRecord{}, err
	}
	if strings.TrimSpace(id) == "" {
		return storage.RollRecord{}, errors.New("roll id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, "SELECT "+rollColumns+" FROM rolls WHERE id = ?", id)
	record, err := scanRoll(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.RollRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.RollRecord{}, fmt.Errorf("get roll: %w", err)
	}
	return record, nil
}

// ListRolls returns one page of rolls, newest first.
func (s *Store) ListRolls(ctx context.Context, req storage.ListRollsRequest) (storage.RollPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.RollPage{}, err
	}
	if req.PageSize <= 0 {
		return storage.RollPage{}, errors.New("page size must be greater than zero")
	}

	plan := buildListRollsSQLPlan(req)
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+rollColumns+" FROM rolls WHERE "+plan.whereClause+" "+plan.orderClause+" "+plan.limitClause,
		plan.params...,
	)
	if err != nil {
		return storage.RollPage{}, fmt.Errorf("list rolls: %w", err)
	}
	defer rows.Close()

	var page storage.RollPage
	for rows.Next() {
		record, err := scanRoll(rows)
		if err != nil {
			return storage.RollPage{}, fmt.Errorf("scan roll: %w", err)
		}
		page.Rolls = append(page.Rolls, record)
	}
	if err := rows.Err(); err != nil {
		return storage.RollPage{}, fmt.Errorf("iterate rolls: %w", err)
	}

	if len(page.Rolls) > req.PageSize {
		page.Rolls = page.Rolls[:req.PageSize]
		page.HasMore = true
	}
	return page, nil
}
