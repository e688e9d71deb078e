// Package storage defines roll history persistence for the dice service.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/dicebot/internal/core/dice"
)

// ErrNotFound indicates a requested roll does not exist.
var ErrNotFound = errors.New("record not found")

// RollRecord is a persisted roll.
type RollRecord struct {
	ID string
	// Seq orders records by insertion and backs page tokens. It is assigned
	// by the store.
	Seq        uint64
	Expression string
	Source     string
	Seed       int64
	Spec       dice.Spec
	Sets       []dice.RollSet
	Total      int
	CreatedAt  time.Time
}

// ListRollsRequest selects one page of roll history, newest first.
type ListRollsRequest struct {
	PageSize int
	// BeforeSeq restricts the page to records older than this sequence when
	// positive.
	BeforeSeq    uint64
	FilterClause string
	FilterParams []any
}

// RollPage is one page of roll history.
type RollPage struct {
	Rolls   []RollRecord
	HasMore bool
}

// RollStore persists roll history.
type RollStore interface {
	// PutRoll stores a record and returns it with Seq assigned.
	PutRoll(ctx context.Context, record RollRecord) (RollRecord, error)
	// GetRoll returns the record with id or ErrNotFound.
	GetRoll(ctx context.Context, id string) (RollRecord, error)
	ListRolls(ctx context.Context, req ListRollsRequest) (RollPage, error)
}
