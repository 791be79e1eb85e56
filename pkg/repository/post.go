package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/umputun/huntmatch/pkg/domain"
)

// PostRepository reads posts and their approved solutions
type PostRepository struct {
	*store
}

type postRow struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Body      string    `db:"body"`
	AuthorID  string    `db:"author_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type solvedPostRow struct {
	postRow
	SolutionText string `db:"solution_text"`
}

// GetPost retrieves a post by id, domain.ErrNotFound if there is no such post
func (r *PostRepository) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row postRow
	query := r.db.Rebind("SELECT id, title, body, author_id, status, created_at FROM posts WHERE id = ?")
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
		}
		return nil, upstream("get post", err)
	}
	return row.toDomain(), nil
}

// GetSolvedPost retrieves a post joined with its approved solution.
// Returns domain.ErrNotFound if the post is missing or has no approved solution.
func (r *PostRepository) GetSolvedPost(ctx context.Context, id string) (*domain.SolvedPost, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.Rebind(`
		SELECT p.id, p.title, p.body, p.author_id, p.status, p.created_at, s.solution_text
		FROM posts p
		JOIN solutions s ON s.post_id = p.id AND s.approved = TRUE
		WHERE p.id = ?
		ORDER BY s.created_at DESC
		LIMIT 1`)
	var row solvedPostRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("solved post %s: %w", id, domain.ErrNotFound)
		}
		return nil, upstream("get solved post", err)
	}
	return &domain.SolvedPost{Post: *row.toDomain(), SolutionText: row.SolutionText}, nil
}

// CreatePost inserts a new post, status defaults to open
func (r *PostRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if post.Status == "" {
		post.Status = domain.PostOpen
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	row := postRow{
		ID: post.ID, Title: post.Title, Body: post.Body, AuthorID: post.AuthorID,
		Status: string(post.Status), CreatedAt: post.CreatedAt,
	}
	query := `INSERT INTO posts (id, title, body, author_id, status, created_at)
		VALUES (:id, :title, :body, :author_id, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return upstream("create post", err)
	}
	return nil
}

// SaveSolution inserts or replaces a solution of a post, approving it marks the post solved
func (r *PostRepository) SaveSolution(ctx context.Context, sol domain.Solution, authorID string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return upstream("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := tx.Rebind(`
		INSERT INTO solutions (post_id, author_id, solution_text, approved, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (post_id, author_id) DO UPDATE
		SET solution_text = excluded.solution_text, approved = excluded.approved`)
	if _, err := tx.ExecContext(ctx, query, sol.PostID, authorID, sol.Text, sol.Approved, time.Now().UTC()); err != nil {
		return upstream("save solution", err)
	}

	if sol.Approved {
		res, err := tx.ExecContext(ctx, tx.Rebind("UPDATE posts SET status = ? WHERE id = ?"), string(domain.PostSolved), sol.PostID)
		if err != nil {
			return upstream("mark post solved", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("post %s: %w", sol.PostID, domain.ErrNotFound)
		}
	}

	if err := tx.Commit(); err != nil {
		return upstream("commit solution", err)
	}
	return nil
}

func (p *postRow) toDomain() *domain.Post {
	return &domain.Post{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		AuthorID:  p.AuthorID,
		Status:    domain.PostStatus(p.Status),
		CreatedAt: p.CreatedAt,
	}
}
