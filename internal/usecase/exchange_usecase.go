package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"

	"skill-swap/internal/domain/exchange"
	"skill-swap/internal/domain/matching"
	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/role"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/pkg/logger"
	"skill-swap/internal/repository"
)

type SendExchangeInput struct {
	To               string
	FromOfferedSkill string
	FromWantedSkill  string
}

type ExchangeUsecase interface {
	Send(ctx context.Context, c Caller, in SendExchangeInput) (exchange.Request, error)
	// Accept accepts every pending request from fromID to the caller and
	// returns all requests in that direction. Accepting again is a no-op.
	Accept(ctx context.Context, c Caller, fromID string) ([]exchange.Request, error)
	ListIncoming(ctx context.Context, c Caller) ([]exchange.Request, error)
	ListOutgoing(ctx context.Context, c Caller) ([]exchange.Request, error)
	ListPartners(ctx context.Context, c Caller) ([]string, error)
}

type Exchanges struct {
	store   repository.Store
	clock   Clock
	metrics counters
	logger  *zap.Logger
}

func NewExchangeUsecase(store repository.Store, clock Clock, scope tally.Scope, log *zap.Logger) *Exchanges {
	return &Exchanges{
		store:   store,
		clock:   clockOrSystem(clock),
		metrics: newCounters(scope),
		logger:  logger.OrNop(log),
	}
}

func (u *Exchanges) Send(ctx context.Context, c Caller, in SendExchangeInput) (exchange.Request, error) {
	if err := c.Require(role.Exchange); err != nil {
		u.metrics.denied("send_exchange_request")
		return exchange.Request{}, err
	}

	to := strings.TrimSpace(in.To)
	offered := strings.TrimSpace(in.FromOfferedSkill)
	wanted := strings.TrimSpace(in.FromWantedSkill)
	switch {
	case to == "":
		return exchange.Request{}, invalid("recipient is required")
	case to == c.ID:
		return exchange.Request{}, invalid("cannot send an exchange request to yourself")
	case offered == "" || wanted == "":
		return exchange.Request{}, invalid("offered and wanted skills are required")
	}

	var created exchange.Request
	err := u.store.WithinTx(ctx, func(tx repository.Store) error {
		mine, err := tx.Profiles().Get(ctx, c.ID)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				return notFound("create your profile before sending exchange requests")
			}
			return err
		}
		theirs, err := tx.Profiles().Get(ctx, to)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				return notFound("recipient profile")
			}
			return err
		}

		if !mine.Offers(offered) {
			return invalid("you do not offer %q", offered)
		}
		if !mine.Wants(wanted) {
			return invalid("you do not want %q", wanted)
		}
		m, ok := matching.Contains(matching.FindMatches(&mine, &theirs), offered, wanted)
		if !ok {
			return invalid("%q for %q is not a complementary match with %s", offered, wanted, to)
		}

		req := exchange.Request{
			ID:               uuid.New(),
			From:             c.ID,
			To:               to,
			FromOfferedSkill: m.ViewerOfferedSkill,
			FromWantedSkill:  m.ViewerWantedSkill,
			ToOfferedSkill:   canonicalName(theirs.OfferedSkills, m.TargetOfferedSkill),
			ToWantedSkill:    canonicalName(theirs.WantedSkills, m.TargetWantedSkill),
			Status:           exchange.StatusPending,
			CreatedAt:        u.clock.Now(),
		}
		created, err = tx.Exchanges().Create(ctx, req)
		return err
	})
	if err != nil {
		return exchange.Request{}, passThrough(err)
	}

	u.metrics.inc(MetricRequestsSent, 1)
	u.logger.Info("exchange request sent",
		zap.String("request_id", created.ID.String()),
		zap.String("from", created.From),
		zap.String("to", created.To),
	)
	return created, nil
}

func (u *Exchanges) Accept(ctx context.Context, c Caller, fromID string) ([]exchange.Request, error) {
	if err := c.Require(role.Exchange); err != nil {
		u.metrics.denied("accept_exchange_request")
		return nil, err
	}
	fromID = strings.TrimSpace(fromID)
	if fromID == "" {
		return nil, invalid("requester is required")
	}
	if fromID == c.ID {
		return nil, invalid("cannot accept your own request")
	}

	var (
		out      []exchange.Request
		accepted int64
	)
	err := u.store.WithinTx(ctx, func(tx repository.Store) error {
		existing, err := tx.Exchanges().ListDirected(ctx, fromID, c.ID)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return notFound("no exchange request from " + fromID)
		}

		accepted, err = tx.Exchanges().AcceptPending(ctx, fromID, c.ID, u.clock.Now())
		if err != nil {
			return err
		}
		out, err = tx.Exchanges().ListDirected(ctx, fromID, c.ID)
		return err
	})
	if err != nil {
		return nil, passThrough(err)
	}

	if accepted > 0 {
		u.metrics.inc(MetricRequestsAccepted, accepted)
		u.logger.Info("exchange accepted",
			zap.String("from", fromID),
			zap.String("to", c.ID),
			zap.Int64("requests", accepted),
		)
	}
	return out, nil
}

func (u *Exchanges) ListIncoming(ctx context.Context, c Caller) ([]exchange.Request, error) {
	if err := c.Require(role.Exchange); err != nil {
		return nil, err
	}
	out, err := u.store.Exchanges().ListTo(ctx, c.ID)
	if err != nil {
		return nil, internal(err)
	}
	return out, nil
}

func (u *Exchanges) ListOutgoing(ctx context.Context, c Caller) ([]exchange.Request, error) {
	if err := c.Require(role.Exchange); err != nil {
		return nil, err
	}
	out, err := u.store.Exchanges().ListFrom(ctx, c.ID)
	if err != nil {
		return nil, internal(err)
	}
	return out, nil
}

func (u *Exchanges) ListPartners(ctx context.Context, c Caller) ([]string, error) {
	if err := c.Require(role.Exchange); err != nil {
		return nil, err
	}
	out, err := u.store.Exchanges().Partners(ctx, c.ID)
	if err != nil {
		return nil, internal(err)
	}
	return out, nil
}

// canonicalName returns the spelling the owner used for name.
func canonicalName(list []skill.Skill, name string) string {
	if s, ok := skill.Find(list, name); ok {
		return s.Name
	}
	return name
}
