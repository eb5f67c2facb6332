package repository

import (
	"context"

	"skill-swap/internal/database"
)

// commandLockKey serializes mutating commands across every service instance.
const commandLockKey int64 = 811503227

type PostgresStore struct {
	db   database.DB
	q    database.Querier
	inTx bool
}

func NewPostgresStore(db database.DB) *PostgresStore {
	return &PostgresStore{db: db, q: db}
}

func (s *PostgresStore) Profiles() ProfileRepository {
	return NewPostgresProfileRepository(s.q)
}

func (s *PostgresStore) Exchanges() ExchangeRepository {
	return NewPostgresExchangeRepository(s.q)
}

func (s *PostgresStore) Messages() MessageRepository {
	return NewPostgresMessageRepository(s.q)
}

func (s *PostgresStore) Ratings() RatingRepository {
	return NewPostgresRatingRepository(s.q)
}

func (s *PostgresStore) Roles() RoleRepository {
	return NewPostgresRoleRepository(s.q)
}

func (s *PostgresStore) WithinTx(ctx context.Context, fn func(tx Store) error) error {
	if s.inTx {
		return fn(s)
	}
	return database.InTx(ctx, s.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, commandLockKey); err != nil {
			return err
		}
		return fn(&PostgresStore{db: s.db, q: tx, inTx: true})
	})
}
