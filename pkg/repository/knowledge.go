package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/huandu/go-sqlbuilder"

	"github.com/umputun/huntmatch/pkg/domain"
)

// KnowledgeRepository stores solved-knowledge documents, one per post id
type KnowledgeRepository struct {
	*store
}

type knowledgeRow struct {
	PostID    string    `db:"post_id"`
	Content   string    `db:"content"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Upsert stores the document of a solved post, replacing any previous content and timestamp.
// Only SQLite lock errors are retried, anything else is returned immediately.
func (r *KnowledgeRepository) Upsert(ctx context.Context, k domain.SolvedKnowledge) error {
	if k.UpdatedAt.IsZero() {
		k.UpdatedAt = time.Now().UTC()
	}
	row := knowledgeRow{PostID: k.PostID, Content: k.Content, UpdatedAt: k.UpdatedAt}
	query := `
		INSERT INTO solved_knowledge (post_id, content, updated_at)
		VALUES (:post_id, :content, :updated_at)
		ON CONFLICT (post_id) DO UPDATE
		SET content = excluded.content, updated_at = excluded.updated_at`

	var critical error
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		callCtx, cancel := r.withTimeout(ctx)
		defer cancel()
		_, err := r.db.NamedExecContext(callCtx, query, row)
		if err != nil && !isLockError(err) {
			critical = err
			return nil // stop retrying
		}
		return err
	})
	if critical != nil {
		return upstream("upsert solved knowledge", critical)
	}
	if err != nil {
		return upstream("upsert solved knowledge", err)
	}
	return nil
}

// Get retrieves the document of a post, domain.ErrNotFound if not indexed
func (r *KnowledgeRepository) Get(ctx context.Context, postID string) (*domain.SolvedKnowledge, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row knowledgeRow
	query := r.db.Rebind("SELECT post_id, content, updated_at FROM solved_knowledge WHERE post_id = ?")
	if err := r.db.GetContext(ctx, &row, query, postID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("solved knowledge %s: %w", postID, domain.ErrNotFound)
		}
		return nil, upstream("get solved knowledge", err)
	}
	return row.toDomain(), nil
}

// Search returns up to limit documents containing at least one of the keywords as a
// case-sensitive substring. Results are in the store's natural order, not ranked.
func (r *KnowledgeRepository) Search(ctx context.Context, keywords []string, limit int) ([]domain.SolvedKnowledge, error) {
	if len(keywords) == 0 || limit <= 0 {
		return []domain.SolvedKnowledge{}, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// instr and strpos are both case-sensitive, unlike LIKE in SQLite
	position := "instr"
	if r.flavor == sqlbuilder.PostgreSQL {
		position = "strpos"
	}

	sb := r.flavor.NewSelectBuilder()
	conds := make([]string, len(keywords))
	for i, kw := range keywords {
		conds[i] = fmt.Sprintf("%s(content, %s) > 0", position, sb.Var(kw))
	}
	sb.Select("post_id", "content", "updated_at").From("solved_knowledge").Where(sb.Or(conds...)).Limit(limit)

	query, args := sb.Build()
	var rows []knowledgeRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, upstream("search solved knowledge", err)
	}

	res := make([]domain.SolvedKnowledge, len(rows))
	for i, row := range rows {
		res[i] = *row.toDomain()
	}
	return res, nil
}

// Count returns number of indexed documents
func (r *KnowledgeRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM solved_knowledge"); err != nil {
		return 0, upstream("count solved knowledge", err)
	}
	return count, nil
}

func (k *knowledgeRow) toDomain() *domain.SolvedKnowledge {
	return &domain.SolvedKnowledge{PostID: k.PostID, Content: k.Content, UpdatedAt: k.UpdatedAt}
}
