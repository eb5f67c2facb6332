package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"skill-swap/internal/database"
	"skill-swap/internal/database/postgres"
	"skill-swap/internal/domain/profile"
	"skill-swap/internal/domain/skill"
)

type PostgresProfileRepository struct {
	q database.Querier
}

func NewPostgresProfileRepository(q database.Querier) *PostgresProfileRepository {
	return &PostgresProfileRepository{q: q}
}

func (r *PostgresProfileRepository) Get(ctx context.Context, memberID string) (profile.Profile, error) {
	row := r.q.QueryRow(ctx,
		`SELECT name, bio, offered_skills, wanted_skills, updated_at
		 FROM profiles
		 WHERE member_id = $1`,
		memberID,
	)

	p, err := scanProfile(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, memberID string, p profile.Profile) error {
	offered, err := encodeSkills(p.OfferedSkills)
	if err != nil {
		return err
	}
	wanted, err := encodeSkills(p.WantedSkills)
	if err != nil {
		return err
	}

	_, err = r.q.Exec(ctx,
		`INSERT INTO profiles (member_id, name, bio, offered_skills, wanted_skills, created_at, updated_at)
		 VALUES ($1, $2, $3, $4::jsonb, $5::jsonb, $6, $6)
		 ON CONFLICT (member_id) DO UPDATE
		 SET name = EXCLUDED.name,
		     bio = EXCLUDED.bio,
		     offered_skills = EXCLUDED.offered_skills,
		     wanted_skills = EXCLUDED.wanted_skills,
		     updated_at = EXCLUDED.updated_at`,
		memberID, p.Name, p.Bio, offered, wanted, p.UpdatedAt,
	)
	return err
}

func (r *PostgresProfileRepository) List(ctx context.Context) ([]profile.Entry, error) {
	rows, err := r.q.Query(ctx,
		`SELECT member_id, name, bio, offered_skills, wanted_skills, updated_at
		 FROM profiles
		 ORDER BY member_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Entry, 0)
	for rows.Next() {
		var id string
		var p profile.Profile
		var offered, wanted []byte
		if err := rows.Scan(&id, &p.Name, &p.Bio, &offered, &wanted, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if p.OfferedSkills, err = decodeSkills(offered); err != nil {
			return nil, err
		}
		if p.WantedSkills, err = decodeSkills(wanted); err != nil {
			return nil, err
		}
		out = append(out, profile.Entry{MemberID: id, Profile: p})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var p profile.Profile
	var offered, wanted []byte
	if err := row.Scan(&p.Name, &p.Bio, &offered, &wanted, &p.UpdatedAt); err != nil {
		return profile.Profile{}, err
	}
	var err error
	if p.OfferedSkills, err = decodeSkills(offered); err != nil {
		return profile.Profile{}, err
	}
	if p.WantedSkills, err = decodeSkills(wanted); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func encodeSkills(list []skill.Skill) (string, error) {
	if list == nil {
		list = []skill.Skill{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encode skills: %w", err)
	}
	return string(b), nil
}

func decodeSkills(b []byte) ([]skill.Skill, error) {
	out := make([]skill.Skill, 0)
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	return out, nil
}
