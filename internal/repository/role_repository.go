package repository

import (
	"context"
	"time"

	"skill-swap/internal/database"
	"skill-swap/internal/database/postgres"
	"skill-swap/internal/domain/role"
)

type PostgresRoleRepository struct {
	q database.Querier
}

func NewPostgresRoleRepository(q database.Querier) *PostgresRoleRepository {
	return &PostgresRoleRepository{q: q}
}

func (r *PostgresRoleRepository) Get(ctx context.Context, memberID string) (role.Role, bool, error) {
	var v string
	err := r.q.QueryRow(ctx, `SELECT role FROM member_roles WHERE member_id = $1`, memberID).Scan(&v)
	if err != nil {
		if postgres.IsNoRows(err) {
			return role.Guest, false, nil
		}
		return role.Guest, false, err
	}
	rl, err := role.Parse(v)
	if err != nil {
		return role.Guest, false, err
	}
	return rl, true, nil
}

func (r *PostgresRoleRepository) Set(ctx context.Context, memberID string, rl role.Role, at time.Time) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO member_roles (member_id, role, updated_at)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (member_id) DO UPDATE
		 SET role = EXCLUDED.role, updated_at = EXCLUDED.updated_at`,
		memberID, rl.String(), at,
	)
	return err
}
