package rolls

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	dicev1 "github.com/louisbranch/dicebot/internal/api/dice/v1"
	grpcmeta "github.com/louisbranch/dicebot/internal/api/grpc/metadata"
	"github.com/louisbranch/dicebot/internal/core/dice"
	"github.com/louisbranch/dicebot/internal/platform/grpc/pagination"
	platformotel "github.com/louisbranch/dicebot/internal/platform/otel"
	"github.com/louisbranch/dicebot/internal/random"
	"github.com/louisbranch/dicebot/internal/services/dice/filter"
	"github.com/louisbranch/dicebot/internal/services/dice/storage"
	"github.com/louisbranch/dicebot/internal/storage/cursor"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultListRollsPageSize = 20
	maxListRollsPageSize     = 100
)

// Service implements dicev1.DiceServiceServer.
type Service struct {
	dicev1.UnimplementedDiceServiceServer
	limits   dice.Limits
	store    storage.RollStore
	seedFunc func() (int64, error)
	now      func() time.Time
	tracer   trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithLimits bounds the expressions the service accepts.
func WithLimits(limits dice.Limits) Option {
	return func(s *Service) {
		s.limits = limits
	}
}

// WithStore enables roll history. A nil store leaves history disabled.
func WithStore(store storage.RollStore) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithSeedFunc replaces the per-request seed generator.
func WithSeedFunc(seedFunc func() (int64, error)) Option {
	return func(s *Service) {
		if seedFunc != nil {
			s.seedFunc = seedFunc
		}
	}
}

// WithClock replaces the clock used to stamp rolls.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a dice service with default limits and no history.
func NewService(opts ...Option) *Service {
	s := &Service{
		limits:   dice.DefaultLimits,
		seedFunc: random.NewSeed,
		now:      time.Now,
		tracer:   platformotel.Tracer("github.com/louisbranch/dicebot/internal/services/dice"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Roll parses and rolls an expression with a per-request seed.
func (s *Service) Roll(ctx context.Context, in *dicev1.RollRequest) (*dicev1.RollResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "roll request is required")
	}
	locale := grpcmeta.LocaleFromContext(ctx)
	expression := strings.TrimSpace(in.GetExpression())

	seed, err := random.ResolveSeed(in.Seed, s.seedFunc)
	if err != nil {
		return nil, handleError(errSeedUnavailable(err), locale)
	}

	ctx, span := s.tracer.Start(ctx, "dice.Roll", trace.WithAttributes(
		attribute.String("dice.expression", expression),
		attribute.Int64("dice.seed", seed),
		attribute.String("dice.source", in.GetSource()),
	))
	defer span.End()

	roller := dice.NewRoller(random.NewSource(seed), dice.WithLimits(s.limits))
	result, err := roller.Roll(expression)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "roll failed")
		return nil, handleError(diceError(err), locale)
	}
	span.SetAttributes(
		attribute.Int("dice.sets", len(result.Sets)),
		attribute.Int("dice.total", result.Total()),
	)

	record := storage.RollRecord{
		Expression: expression,
		Source:     in.GetSource(),
		Seed:       seed,
		Spec:       result.Spec,
		Sets:       result.Sets,
		Total:      result.Total(),
		CreatedAt:  s.now().UTC(),
	}
	if s.store != nil {
		record, err = s.store.PutRoll(ctx, record)
		if err != nil {
			log.Printf("store roll: %v", err)
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, "store roll failed")
			return nil, handleError(err, locale)
		}
		span.SetAttributes(attribute.String("dice.roll_id", record.ID))
	}

	return &dicev1.RollResponse{Roll: toAPIRoll(record)}, nil
}

// ParseExpression parses and validates an expression without rolling it.
func (s *Service) ParseExpression(ctx context.Context, in *dicev1.ParseRequest) (*dicev1.ParseResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "parse request is required")
	}
	locale := grpcmeta.LocaleFromContext(ctx)

	spec, err := dice.Parse(strings.TrimSpace(in.Expression))
	if err == nil {
		err = s.limits.Validate(spec)
	}
	if err != nil {
		return nil, handleError(diceError(err), locale)
	}
	return &dicev1.ParseResponse{Spec: toAPISpec(spec)}, nil
}

// GetRoll returns a recorded roll.
func (s *Service) GetRoll(ctx context.Context, in *dicev1.GetRollRequest) (*dicev1.RollResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get roll request is required")
	}
	locale := grpcmeta.LocaleFromContext(ctx)
	if s.store == nil {
		return nil, handleError(errHistoryDisabled(), locale)
	}
	rollID := strings.TrimSpace(in.GetRollId())
	if rollID == "" {
		return nil, status.Error(codes.InvalidArgument, "roll id is required")
	}

	record, err := s.store.GetRoll(ctx, rollID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, handleError(errRollNotFound(rollID, err), locale)
		}
		log.Printf("get roll %s: %v", rollID, err)
		return nil, handleError(err, locale)
	}
	return &dicev1.RollResponse{Roll: toAPIRoll(record)}, nil
}

// ListRolls returns one page of recorded rolls, newest first.
func (s *Service) ListRolls(ctx context.Context, in *dicev1.ListRollsRequest) (*dicev1.ListRollsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list rolls request is required")
	}
	locale := grpcmeta.LocaleFromContext(ctx)
	if s.store == nil {
		return nil, handleError(errHistoryDisabled(), locale)
	}

	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListRollsPageSize,
		Max:     maxListRollsPageSize,
	})
	condition, err := filter.ParseRollFilter(in.GetFilter())
	if err != nil {
		return nil, handleError(errFilterInvalid(err), locale)
	}
	pageCursor, err := cursor.DecodeForFilter(in.GetPageToken(), in.GetFilter())
	if err == nil && pageCursor != nil {
		switch {
		case pageCursor.Dir != cursor.DirectionBackward:
			err = errors.New("page token direction does not match listing order")
		case pageCursor.Seq == 0:
			// Zero would read as "no cursor" and restart from the newest roll.
			err = errors.New("page token has no position")
		}
	}
	if err != nil {
		return nil, handleError(errPageTokenInvalid(err), locale)
	}

	req := storage.ListRollsRequest{
		PageSize:     pageSize,
		FilterClause: condition.Clause,
		FilterParams: condition.Params,
	}
	if pageCursor != nil {
		req.BeforeSeq = pageCursor.Seq
	}
	page, err := s.store.ListRolls(ctx, req)
	if err != nil {
		log.Printf("list rolls: %v", err)
		return nil, handleError(err, locale)
	}

	response := &dicev1.ListRollsResponse{Rolls: make([]*dicev1.Roll, 0, len(page.Rolls))}
	for _, record := range page.Rolls {
		response.Rolls = append(response.Rolls, toAPIRoll(record))
	}
	if page.HasMore && len(page.Rolls) > 0 {
		last := page.Rolls[len(page.Rolls)-1]
		token, err := cursor.Encode(cursor.NewNextPageCursor(last.Seq, true, in.GetFilter()))
		if err != nil {
			return nil, handleError(err, locale)
		}
		response.NextPageToken = token
	}
	return response, nil
}
