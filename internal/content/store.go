// internal/content/store.go
//
// sqlx-backed persistence for users, articles, and comments.
//
// Context
// -------
// The store owns one *sqlx.DB opened by internal/database and performs
// simple parameterised queries.  Helpers are thin; callers may wrap the
// results in their own per-request cache.
//
//	user     (id PK, name, email)
//	article  (id PK, title, author, published)
//	comment  (id PK, name, email, content)
//
// Not-found conditions surface as ErrNotFound so the HTTP layer can map
// them to 404 without inspecting driver errors.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
// • Max line length 100 columns.
package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound reports that the requested row does not exist.
var ErrNotFound = errors.New("content: not found")

// Store bundles the repositories behind one handle.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps an open pool.  The pool stays owned by the caller.
func NewStore(db *sqlx.DB) *Store { return &Store{db: db} }

// newID mints a UUIDv7.  Failure is possible only when the entropy source
// is broken, which is fatal for every caller anyway.
func newID() (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate id: %w", err)
	}
	return id, nil
}

/*──────────────────────────────── users ───────────────────────────────────*/

// ListUsers returns every user ordered by creation time (UUIDv7 order).
func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	const q = `SELECT id, name, email FROM user ORDER BY id`
	users := make([]User, 0, 16)
	if err := s.db.SelectContext(ctx, &users, q); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches one user by ID.
func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	const q = `SELECT id, name, email FROM user WHERE id = ? LIMIT 1`
	var u User
	if err := s.db.GetContext(ctx, &u, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// CreateUser assigns a fresh ID and inserts the row.
func (s *Store) CreateUser(ctx context.Context, u *User) error {
	id, err := newID()
	if err != nil {
		return err
	}
	u.ID = id

	const q = `INSERT INTO user (id, name, email) VALUES (?, ?, ?)`
	_, err = s.db.ExecContext(ctx, q, u.ID, u.Name, u.Email)
	return err
}

// UpdateUser overwrites name and email for an existing row.
func (s *Store) UpdateUser(ctx context.Context, u *User) error {
	const q = `UPDATE user SET name = ?, email = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, u.Name, u.Email, u.ID)
	if err != nil {
		return err
	}
	return oneRow(res)
}

// DeleteUser removes the row, reporting ErrNotFound for unknown IDs.
func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM user WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return oneRow(res)
}

/*─────────────────────────────── articles ─────────────────────────────────*/

// ListArticles returns every article ordered by creation time.
func (s *Store) ListArticles(ctx context.Context) ([]Article, error) {
	const q = `SELECT id, title, author, published FROM article ORDER BY id`
	articles := make([]Article, 0, 16)
	if err := s.db.SelectContext(ctx, &articles, q); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticle fetches one article by ID.
func (s *Store) GetArticle(ctx context.Context, id uuid.UUID) (*Article, error) {
	const q = `SELECT id, title, author, published FROM article WHERE id = ? LIMIT 1`
	var a Article
	if err := s.db.GetContext(ctx, &a, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// CreateArticle assigns a fresh ID and inserts the row.
func (s *Store) CreateArticle(ctx context.Context, a *Article) error {
	id, err := newID()
	if err != nil {
		return err
	}
	a.ID = id

	const q = `INSERT INTO article (id, title, author, published) VALUES (?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, q, a.ID, a.Title, a.Author, a.Published)
	return err
}

// UpdateArticle overwrites the mutable columns for an existing row.
func (s *Store) UpdateArticle(ctx context.Context, a *Article) error {
	const q = `UPDATE article SET title = ?, author = ?, published = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, a.Title, a.Author, a.Published, a.ID)
	if err != nil {
		return err
	}
	return oneRow(res)
}

// DeleteArticle removes the row, reporting ErrNotFound for unknown IDs.
func (s *Store) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM article WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return oneRow(res)
}

/*─────────────────────────────── comments ─────────────────────────────────*/

// ListComments returns every comment ordered by creation time.
func (s *Store) ListComments(ctx context.Context) ([]Comment, error) {
	const q = `SELECT id, name, email, content FROM comment ORDER BY id`
	comments := make([]Comment, 0, 16)
	if err := s.db.SelectContext(ctx, &comments, q); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetComment fetches one comment by ID.
func (s *Store) GetComment(ctx context.Context, id uuid.UUID) (*Comment, error) {
	const q = `SELECT id, name, email, content FROM comment WHERE id = ? LIMIT 1`
	var c Comment
	if err := s.db.GetContext(ctx, &c, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// CreateComment assigns a fresh ID and inserts the row.
func (s *Store) CreateComment(ctx context.Context, c *Comment) error {
	id, err := newID()
	if err != nil {
		return err
	}
	c.ID = id

	const q = `INSERT INTO comment (id, name, email, content) VALUES (?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, q, c.ID, c.Name, c.Email, c.Content)
	return err
}

// UpdateComment overwrites the mutable columns for an existing row.
func (s *Store) UpdateComment(ctx context.Context, c *Comment) error {
	const q = `UPDATE comment SET name = ?, email = ?, content = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, c.Name, c.Email, c.Content, c.ID)
	if err != nil {
		return err
	}
	return oneRow(res)
}

// DeleteComment removes the row, reporting ErrNotFound for unknown IDs.
func (s *Store) DeleteComment(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM comment WHERE id = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return oneRow(res)
}

/*──────────────────────────────── helpers ─────────────────────────────────*/

// oneRow converts a zero-row UPDATE or DELETE into ErrNotFound.  Drivers
// that cannot report affected rows pass through as success.
func oneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return nil
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
