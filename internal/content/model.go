// internal/content/model.go
//
// Data model for the content API.
//
// Context
// -------
// Three resources: users, articles, and comments.  IDs are UUIDv7 so they
// sort by creation time in the database without a separate sequence.  The
// validate tags drive the 422 responses produced by internal/api; the db
// tags drive the sqlx scans in store.go.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package content

import "github.com/google/uuid"

// User is an account that may author articles and moderate comments.
type User struct {
	ID    uuid.UUID `db:"id"    json:"id"`
	Name  string    `db:"name"  json:"name"  validate:"required"`
	Email string    `db:"email" json:"email" validate:"required,email"`
}

// Article is one piece of published or draft content.
type Article struct {
	ID        uuid.UUID `db:"id"        json:"id"`
	Title     string    `db:"title"     json:"title"  validate:"required"`
	Author    string    `db:"author"    json:"author" validate:"required"`
	Published bool      `db:"published" json:"published"`
}

// Comment is reader feedback left on an article.
type Comment struct {
	ID      uuid.UUID `db:"id"      json:"id"`
	Name    string    `db:"name"    json:"name"    validate:"required"`
	Email   string    `db:"email"   json:"email"   validate:"required,email"`
	Content string    `db:"content" json:"content" validate:"required"`
}
