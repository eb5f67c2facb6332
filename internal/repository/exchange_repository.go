package repository

import (
	"context"
	"time"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/exchange"
)

const exchangeColumns = `id, from_member, to_member, from_offered_skill, from_wanted_skill,
	to_offered_skill, to_wanted_skill, status, created_at, accepted_at`

type PostgresExchangeRepository struct {
	q database.Querier
}

func NewPostgresExchangeRepository(q database.Querier) *PostgresExchangeRepository {
	return &PostgresExchangeRepository{q: q}
}

func (r *PostgresExchangeRepository) Create(ctx context.Context, req exchange.Request) (exchange.Request, error) {
	_, err := r.q.Exec(ctx,
		`INSERT INTO exchange_requests (
			id, from_member, to_member, from_offered_skill, from_wanted_skill,
			to_offered_skill, to_wanted_skill, status, created_at, accepted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		req.ID, req.From, req.To, req.FromOfferedSkill, req.FromWantedSkill,
		req.ToOfferedSkill, req.ToWantedSkill, req.Status.String(), req.CreatedAt, req.AcceptedAt,
	)
	if err != nil {
		return exchange.Request{}, err
	}
	return req, nil
}

func (r *PostgresExchangeRepository) ListTo(ctx context.Context, to string) ([]exchange.Request, error) {
	return r.list(ctx, `SELECT `+exchangeColumns+` FROM exchange_requests WHERE to_member = $1 ORDER BY seq ASC`, to)
}

func (r *PostgresExchangeRepository) ListFrom(ctx context.Context, from string) ([]exchange.Request, error) {
	return r.list(ctx, `SELECT `+exchangeColumns+` FROM exchange_requests WHERE from_member = $1 ORDER BY seq ASC`, from)
}

func (r *PostgresExchangeRepository) ListDirected(ctx context.Context, from, to string) ([]exchange.Request, error) {
	return r.list(ctx,
		`SELECT `+exchangeColumns+` FROM exchange_requests WHERE from_member = $1 AND to_member = $2 ORDER BY seq ASC`,
		from, to,
	)
}

func (r *PostgresExchangeRepository) AcceptPending(ctx context.Context, from, to string, at time.Time) (int64, error) {
	return r.q.Exec(ctx,
		`UPDATE exchange_requests
		 SET status = 'accepted', accepted_at = $3
		 WHERE from_member = $1 AND to_member = $2 AND status = 'pending'`,
		from, to, at,
	)
}

func (r *PostgresExchangeRepository) Authorized(ctx context.Context, a, b string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM exchange_requests
			WHERE status = 'accepted'
			  AND ((from_member = $1 AND to_member = $2) OR (from_member = $2 AND to_member = $1))
		)`,
		a, b,
	).Scan(&ok)
	return ok, err
}

func (r *PostgresExchangeRepository) Partners(ctx context.Context, member string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT CASE WHEN from_member = $1 THEN to_member ELSE from_member END AS partner
		 FROM exchange_requests
		 WHERE status = 'accepted' AND (from_member = $1 OR to_member = $1)
		 ORDER BY partner ASC`,
		member,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresExchangeRepository) list(ctx context.Context, query string, args ...any) ([]exchange.Request, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]exchange.Request, 0)
	for rows.Next() {
		var req exchange.Request
		var status string
		if err := rows.Scan(
			&req.ID, &req.From, &req.To, &req.FromOfferedSkill, &req.FromWantedSkill,
			&req.ToOfferedSkill, &req.ToWantedSkill, &status, &req.CreatedAt, &req.AcceptedAt,
		); err != nil {
			return nil, err
		}
		if req.Status, err = exchange.ParseStatus(status); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
