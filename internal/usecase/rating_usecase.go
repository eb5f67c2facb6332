package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"

	"skill-swap/internal/domain/rating"
	"skill-swap/internal/domain/role"
	"skill-swap/internal/pkg/logger"
	"skill-swap/internal/pkg/sanitize"
	"skill-swap/internal/repository"
)

// MaxAverageCacheTTL bounds how long a stale average can be served when a
// read races a new rating and writes back after Leave invalidated the key.
const MaxAverageCacheTTL = 30 * time.Second

type LeaveRatingInput struct {
	To     string
	Rating int
	Review string
}

type RatingUsecase interface {
	Leave(ctx context.Context, c Caller, in LeaveRatingInput) (rating.Rating, error)
	// List returns ratings received by memberID in insertion order.
	List(ctx context.Context, c Caller, memberID string) ([]rating.Rating, error)
	// Average has a nil Average for a member nobody rated yet.
	Average(ctx context.Context, c Caller, memberID string) (rating.Summary, error)
}

type Ratings struct {
	store    repository.Store
	gate     *AccessGate
	cache    Cache
	cacheTTL time.Duration
	clock    Clock
	metrics  counters
	logger   *zap.Logger
}

func NewRatingUsecase(store repository.Store, gate *AccessGate, cache Cache, cacheTTL time.Duration, clock Clock, scope tally.Scope, log *zap.Logger) *Ratings {
	if gate == nil {
		gate = NewAccessGate(store)
	}
	return &Ratings{
		store:    store,
		gate:     gate,
		cache:    cacheOrNoop(cache),
		cacheTTL: cacheTTL,
		clock:    clockOrSystem(clock),
		metrics:  newCounters(scope),
		logger:   logger.OrNop(log),
	}
}

func (u *Ratings) Leave(ctx context.Context, c Caller, in LeaveRatingInput) (rating.Rating, error) {
	if err := c.Require(role.Rate); err != nil {
		u.metrics.denied("leave_rating")
		return rating.Rating{}, err
	}
	to := strings.TrimSpace(in.To)
	if to == "" {
		return rating.Rating{}, invalid("rated member is required")
	}
	if err := rating.ValidateScore(in.Rating); err != nil {
		return rating.Rating{}, validation(err)
	}
	review, err := rating.NormalizeReview(sanitize.Plain(in.Review))
	if err != nil {
		return rating.Rating{}, validation(err)
	}

	var left rating.Rating
	err = u.store.WithinTx(ctx, func(tx repository.Store) error {
		ok, err := u.gate.within(tx).CanRate(ctx, c.ID, to)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: no accepted exchange with %s", ErrForbidden, to)
		}
		left, err = tx.Ratings().Append(ctx, rating.Rating{
			ID:        uuid.New(),
			From:      c.ID,
			To:        to,
			Score:     in.Rating,
			Review:    review,
			CreatedAt: u.clock.Now(),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			u.metrics.denied("leave_rating")
		}
		if errors.Is(err, rating.ErrInvalid) {
			return rating.Rating{}, validation(err)
		}
		return rating.Rating{}, passThrough(err)
	}

	if err := u.cache.Delete(ctx, averageKey(to)); err != nil {
		u.logger.Warn("rating cache invalidation failed", zap.String("member_id", to), zap.Error(err))
	}
	u.metrics.inc(MetricRatingsLeft, 1)
	u.logger.Info("rating left", zap.String("from", left.From), zap.String("to", left.To), zap.Int("rating", left.Score))
	return left, nil
}

func (u *Ratings) List(ctx context.Context, c Caller, memberID string) ([]rating.Rating, error) {
	if err := c.Require(role.ReadPublic); err != nil {
		return nil, err
	}
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return nil, invalid("member id is required")
	}
	out, err := u.store.Ratings().ListFor(ctx, memberID)
	if err != nil {
		return nil, internal(err)
	}
	return out, nil
}

func (u *Ratings) Average(ctx context.Context, c Caller, memberID string) (rating.Summary, error) {
	if err := c.Require(role.ReadPublic); err != nil {
		return rating.Summary{}, err
	}
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return rating.Summary{}, invalid("member id is required")
	}

	var cached rating.Summary
	if hit, err := u.cache.GetJSON(ctx, averageKey(memberID), &cached); err == nil && hit {
		return cached, nil
	}

	sum, err := u.store.Ratings().Summary(ctx, memberID)
	if err != nil {
		return rating.Summary{}, internal(err)
	}
	if err := u.cache.SetJSON(ctx, averageKey(memberID), sum, u.averageTTL()); err != nil {
		u.logger.Debug("rating cache write failed", zap.String("member_id", memberID), zap.Error(err))
	}
	return sum, nil
}

func (u *Ratings) averageTTL() time.Duration {
	if u.cacheTTL <= 0 || u.cacheTTL > MaxAverageCacheTTL {
		return MaxAverageCacheTTL
	}
	return u.cacheTTL
}
