package repository

import (
	"context"
	"time"

	"skill-swap/internal/domain/exchange"
	"skill-swap/internal/domain/message"
	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/rating"
	"skill-swap/internal/domain/role"
)

type ProfileRepository interface {
	// Get returns profile.ErrNotFound when the member has no profile.
	Get(ctx context.Context, memberID string) (profile.Profile, error)
	Upsert(ctx context.Context, memberID string, p profile.Profile) error
	// List returns every profile ordered by member id.
	List(ctx context.Context) ([]profile.Entry, error)
}

type ExchangeRepository interface {
	Create(ctx context.Context, r exchange.Request) (exchange.Request, error)
	// ListTo, ListFrom and ListDirected return requests in insertion order.
	ListTo(ctx context.Context, to string) ([]exchange.Request, error)
	ListFrom(ctx context.Context, from string) ([]exchange.Request, error)
	ListDirected(ctx context.Context, from, to string) ([]exchange.Request, error)
	// AcceptPending marks every pending from->to request accepted and
	// returns how many changed.
	AcceptPending(ctx context.Context, from, to string, at time.Time) (int64, error)
	// Authorized reports whether an accepted request exists between a and b
	// in either direction.
	Authorized(ctx context.Context, a, b string) (bool, error)
	// Partners lists every member with an accepted request with member,
	// ordered by member id.
	Partners(ctx context.Context, member string) ([]string, error)
}

type MessageRepository interface {
	Append(ctx context.Context, m message.Message) (message.Message, error)
	// Thread returns messages between a and b by timestamp then insertion order.
	Thread(ctx context.Context, a, b string) ([]message.Message, error)
}

type RatingRepository interface {
	Append(ctx context.Context, r rating.Rating) (rating.Rating, error)
	// ListFor returns ratings received by member in insertion order.
	ListFor(ctx context.Context, to string) ([]rating.Rating, error)
	Summary(ctx context.Context, to string) (rating.Summary, error)
}

type RoleRepository interface {
	// Get reports ok=false when no role was ever assigned to the member.
	Get(ctx context.Context, memberID string) (r role.Role, ok bool, err error)
	Set(ctx context.Context, memberID string, r role.Role, at time.Time) error
}

// Store is the single ledger every operation reads and writes through.
// WithinTx runs fn as one command: commands are serialized with respect to
// each other and fn sees everything committed before it.
type Store interface {
	Profiles() ProfileRepository
	Exchanges() ExchangeRepository
	Messages() MessageRepository
	Ratings() RatingRepository
	Roles() RoleRepository

	WithinTx(ctx context.Context, fn func(tx Store) error) error
}
