package repository

import (
	"context"
	"slices"

	"github.com/umputun/huntmatch/pkg/domain"
)

// HunterRepository provides read access to approved hunters and their skills
type HunterRepository struct {
	*store
}

type hunterRow struct {
	UserID      string `db:"user_id"`
	Approved    bool   `db:"approved"`
	RewardTotal int64  `db:"reward_total"`
}

type skillRow struct {
	UserID string `db:"user_id"`
	Skill  string `db:"skill"`
}

// FindBySkills returns approved hunters having at least one of the skills, ordered by
// reward total descending and user id ascending, up to limit. No skills, no hunters.
func (r *HunterRepository) FindBySkills(ctx context.Context, skills []string, limit int) ([]domain.Hunter, error) {
	if len(skills) == 0 || limit <= 0 {
		return []domain.Hunter{}, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	sub := r.flavor.NewSelectBuilder()
	sub.Select("1").From("hunter_skills s").Where("s.user_id = h.user_id", sub.In("s.skill", toArgs(skills)...))

	sb := r.flavor.NewSelectBuilder()
	sb.Select("h.user_id", "h.approved", "h.reward_total").
		From("hunters h").
		Where(sb.Equal("h.approved", true), sb.Exists(sub)).
		OrderBy("h.reward_total DESC", "h.user_id ASC").
		Limit(limit)

	query, args := sb.Build()
	var rows []hunterRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, upstream("find hunters by skills", err)
	}
	if len(rows) == 0 {
		return []domain.Hunter{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.UserID
	}
	skillsByHunter, err := r.loadSkills(ctx, ids)
	if err != nil {
		return nil, err
	}

	hunters := make([]domain.Hunter, len(rows))
	for i, row := range rows {
		hunters[i] = domain.Hunter{
			UserID:      row.UserID,
			Approved:    row.Approved,
			RewardTotal: row.RewardTotal,
			Skills:      skillsByHunter[row.UserID],
		}
	}
	return hunters, nil
}

// SaveHunter inserts or updates a hunter and replaces its skill set
func (r *HunterRepository) SaveHunter(ctx context.Context, h domain.Hunter) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return upstream("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := tx.Rebind(`
		INSERT INTO hunters (user_id, approved, reward_total) VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET approved = excluded.approved, reward_total = excluded.reward_total`)
	if _, err := tx.ExecContext(ctx, query, h.UserID, h.Approved, h.RewardTotal); err != nil {
		return upstream("save hunter", err)
	}

	if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM hunter_skills WHERE user_id = ?"), h.UserID); err != nil {
		return upstream("clear hunter skills", err)
	}
	for _, skill := range h.Skills {
		ins := tx.Rebind("INSERT INTO hunter_skills (user_id, skill) VALUES (?, ?) ON CONFLICT DO NOTHING")
		if _, err := tx.ExecContext(ctx, ins, h.UserID, skill); err != nil {
			return upstream("save hunter skill", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return upstream("commit hunter", err)
	}
	return nil
}

// loadSkills returns sorted skills keyed by hunter id
func (r *HunterRepository) loadSkills(ctx context.Context, ids []string) (map[string][]string, error) {
	sb := r.flavor.NewSelectBuilder()
	sb.Select("user_id", "skill").From("hunter_skills").Where(sb.In("user_id", toArgs(ids)...))
	query, args := sb.Build()

	var rows []skillRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, upstream("load hunter skills", err)
	}

	res := make(map[string][]string, len(ids))
	for _, row := range rows {
		res[row.UserID] = append(res[row.UserID], row.Skill)
	}
	for id := range res {
		slices.Sort(res[id])
	}
	return res, nil
}

func toArgs(values []string) []interface{} {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

