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

	"skill-swap/internal/domain/message"
	"skill-swap/internal/domain/role"
	"skill-swap/internal/pkg/logger"
	"skill-swap/internal/pkg/sanitize"
	"skill-swap/internal/repository"
)

const DefaultPollInterval = 10 * time.Second

type MessageUsecase interface {
	Send(ctx context.Context, c Caller, to, content string) (message.Message, error)
	// Thread returns the conversation between the caller and withID in
	// timestamp order regardless of direction.
	Thread(ctx context.Context, c Caller, withID string) ([]message.Message, error)
	PollInterval() time.Duration
}

type Messages struct {
	store        repository.Store
	gate         *AccessGate
	clock        Clock
	pollInterval time.Duration
	metrics      counters
	logger       *zap.Logger
}

func NewMessageUsecase(store repository.Store, gate *AccessGate, clock Clock, pollInterval time.Duration, scope tally.Scope, log *zap.Logger) *Messages {
	if gate == nil {
		gate = NewAccessGate(store)
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Messages{
		store:        store,
		gate:         gate,
		clock:        clockOrSystem(clock),
		pollInterval: pollInterval,
		metrics:      newCounters(scope),
		logger:       logger.OrNop(log),
	}
}

func (u *Messages) PollInterval() time.Duration {
	return u.pollInterval
}

func (u *Messages) Send(ctx context.Context, c Caller, to, content string) (message.Message, error) {
	if err := c.Require(role.Message); err != nil {
		u.metrics.denied("send_message")
		return message.Message{}, err
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return message.Message{}, invalid("recipient is required")
	}
	content, err := message.NormalizeContent(sanitize.Plain(content))
	if err != nil {
		return message.Message{}, validation(err)
	}

	var sent message.Message
	err = u.store.WithinTx(ctx, func(tx repository.Store) error {
		ok, err := u.gate.within(tx).CanMessage(ctx, c.ID, to)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: no accepted exchange with %s", ErrForbidden, to)
		}
		sent, err = tx.Messages().Append(ctx, message.Message{
			ID:        uuid.New(),
			From:      c.ID,
			To:        to,
			Content:   content,
			CreatedAt: u.clock.Now(),
		})
		return err
	})
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			u.metrics.denied("send_message")
		}
		if errors.Is(err, message.ErrInvalid) {
			return message.Message{}, validation(err)
		}
		return message.Message{}, passThrough(err)
	}

	u.metrics.inc(MetricMessagesSent, 1)
	u.logger.Debug("message sent", zap.String("from", sent.From), zap.String("to", sent.To))
	return sent, nil
}

func (u *Messages) Thread(ctx context.Context, c Caller, withID string) ([]message.Message, error) {
	if err := c.Require(role.Message); err != nil {
		return nil, err
	}
	withID = strings.TrimSpace(withID)
	if withID == "" {
		return nil, invalid("conversation partner is required")
	}
	out, err := u.store.Messages().Thread(ctx, c.ID, withID)
	if err != nil {
		return nil, internal(err)
	}
	return out, nil
}
