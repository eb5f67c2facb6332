package repository

import (
	"context"
	"fmt"

	"skill-swap/internal/database"
	"skill-swap/internal/database/postgres"
	"skill-swap/internal/domain/message"
)

type PostgresMessageRepository struct {
	q database.Querier
}

func NewPostgresMessageRepository(q database.Querier) *PostgresMessageRepository {
	return &PostgresMessageRepository{q: q}
}

func (r *PostgresMessageRepository) Append(ctx context.Context, m message.Message) (message.Message, error) {
	err := r.q.QueryRow(ctx,
		`INSERT INTO messages (id, from_member, to_member, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING seq`,
		m.ID, m.From, m.To, m.Content, m.CreatedAt,
	).Scan(&m.Seq)
	if err != nil {
		if postgres.IsCheckViolation(err) {
			return message.Message{}, fmt.Errorf("%w: %w", message.ErrInvalid, err)
		}
		return message.Message{}, err
	}
	return m, nil
}

func (r *PostgresMessageRepository) Thread(ctx context.Context, a, b string) ([]message.Message, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, seq, from_member, to_member, content, created_at
		 FROM messages
		 WHERE (from_member = $1 AND to_member = $2) OR (from_member = $2 AND to_member = $1)
		 ORDER BY created_at ASC, seq ASC`,
		a, b,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]message.Message, 0)
	for rows.Next() {
		var m message.Message
		if err := rows.Scan(&m.ID, &m.Seq, &m.From, &m.To, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
