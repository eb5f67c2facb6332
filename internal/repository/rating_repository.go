package repository

import (
	"context"
	"fmt"

	"skill-swap/internal/database"
	"skill-swap/internal/database/postgres"
	"skill-swap/internal/domain/rating"
)

type PostgresRatingRepository struct {
	q database.Querier
}

func NewPostgresRatingRepository(q database.Querier) *PostgresRatingRepository {
	return &PostgresRatingRepository{q: q}
}

func (r *PostgresRatingRepository) Append(ctx context.Context, rt rating.Rating) (rating.Rating, error) {
	err := r.q.QueryRow(ctx,
		`INSERT INTO ratings (id, from_member, to_member, rating, review, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING seq`,
		rt.ID, rt.From, rt.To, rt.Score, rt.Review, rt.CreatedAt,
	).Scan(&rt.Seq)
	if err != nil {
		if postgres.IsCheckViolation(err) {
			return rating.Rating{}, fmt.Errorf("%w: %w", rating.ErrInvalid, err)
		}
		return rating.Rating{}, err
	}
	return rt, nil
}

func (r *PostgresRatingRepository) ListFor(ctx context.Context, to string) ([]rating.Rating, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, seq, from_member, to_member, rating, review, created_at
		 FROM ratings
		 WHERE to_member = $1
		 ORDER BY seq ASC`,
		to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]rating.Rating, 0)
	for rows.Next() {
		var rt rating.Rating
		var score int16
		if err := rows.Scan(&rt.ID, &rt.Seq, &rt.From, &rt.To, &score, &rt.Review, &rt.CreatedAt); err != nil {
			return nil, err
		}
		rt.Score = int(score)
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRatingRepository) Summary(ctx context.Context, to string) (rating.Summary, error) {
	var count, sum int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(rating), 0)
		 FROM ratings
		 WHERE to_member = $1`,
		to,
	).Scan(&count, &sum)
	if err != nil {
		return rating.Summary{}, err
	}
	return rating.Summarize(count, sum), nil
}
