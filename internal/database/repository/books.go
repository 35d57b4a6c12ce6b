package repository

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/khoad/asynclist/internal/database"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// BookQuery defines one page of a catalog listing.
type BookQuery struct {
	Search string // substring match on title or author
	Sort   string // title, author, year or pages; anything else means title
	Desc   bool
	Limit  int    // rows per page; <= 0 uses 50
	Cursor string // opaque position from a previous page; "" starts over
}

// sortColumns whitelists ORDER BY targets. Every listing adds id as a
// tiebreak so pages stay stable across equal values.
var sortColumns = map[string]bool{
	"title":  true,
	"author": true,
	"year":   true,
	"pages":  true,
}

// BookRepo handles books.
type BookRepo struct {
	db *sql.DB
}

func NewBookRepo(db *sql.DB) *BookRepo { return &BookRepo{db: db} }

func (r *BookRepo) Insert(ctx context.Context, b Book) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO books(id, title, author, year, pages, rating)
	VALUES(?, ?, ?, ?, ?, ?);
	`, b.ID, b.Title, b.Author, b.Year, b.Pages, b.Rating)
	return err
}

// InsertBatch inserts books in a single transaction.
func (r *BookRepo) InsertBatch(ctx context.Context, books []Book) error {
	return database.WithTx(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO books(id, title, author, year, pages, rating) VALUES(?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, b := range books {
			if _, err := stmt.ExecContext(ctx, b.ID, b.Title, b.Author, b.Year, b.Pages, b.Rating); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteAll empties the catalog.
func (r *BookRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM books`)
	return err
}

func (r *BookRepo) Get(ctx context.Context, id string) (Book, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, author, year, pages, rating FROM books WHERE id = ?`, id)
	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return Book{}, ErrNotFound
	}
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

// Count returns how many books match the search text, or all books when it
// is empty.
func (r *BookRepo) Count(ctx context.Context, search string) (int, error) {
	query := "SELECT COUNT(*) FROM books"
	var args []interface{}
	if search != "" {
		query += " WHERE title LIKE ? OR author LIKE ?"
		pat := "%" + search + "%"
		args = append(args, pat, pat)
	}
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Titles returns every title ordered alphabetically.
func (r *BookRepo) Titles(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT title FROM books ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// List returns one page of books plus the cursor for the next page. An
// empty cursor means the listing is exhausted. The cursor is only valid
// for the sort it was minted under; List rejects it otherwise.
func (r *BookRepo) List(ctx context.Context, q BookQuery) ([]Book, string, error) {
	col := q.Sort
	if !sortColumns[col] {
		col = "title"
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}

	var where []string
	var args []interface{}

	if q.Search != "" {
		where = append(where, "(title LIKE ? OR author LIKE ?)")
		pat := "%" + q.Search + "%"
		args = append(args, pat, pat)
	}
	if q.Cursor != "" {
		cur, err := decodeCursor(q.Cursor)
		if err != nil {
			return nil, "", fmt.Errorf("cursor: %w", err)
		}
		if cur.Col != col || cur.Desc != q.Desc {
			return nil, "", fmt.Errorf("cursor: minted under a different sort")
		}
		op := ">"
		if q.Desc {
			op = "<"
		}
		where = append(where, fmt.Sprintf("(%s %s ? OR (%s = ? AND id %s ?))", col, op, col, op))
		args = append(args, cur.Value, cur.Value, cur.ID)
	}

	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	query := "SELECT id, title, author, year, pages, rating FROM books"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY %s %s, id %s LIMIT ?", col, dir, dir)
	args = append(args, limit+1) // the extra row decides whether a next page exists

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, "", err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}

	next := ""
	if len(out) > limit {
		out = out[:limit]
		last := out[len(out)-1]
		next = encodeCursor(bookCursor{Col: col, Desc: q.Desc, Value: sortValue(last, col), ID: last.ID})
	}
	return out, next, nil
}

// bookCursor is the decoded keyset position. Value travels as text; sqlite
// type affinity converts it back for integer columns. The wire form is
// base64 over JSON so titles may contain any byte.
type bookCursor struct {
	Col   string `json:"col"`
	Desc  bool   `json:"desc"`
	Value string `json:"value"`
	ID    string `json:"id"`
}

func encodeCursor(c bookCursor) string {
	raw, _ := json.Marshal(c) // flat strings and a bool cannot fail
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(s string) (bookCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return bookCursor{}, err
	}
	var c bookCursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return bookCursor{}, err
	}
	return c, nil
}

func sortValue(b Book, col string) string {
	switch col {
	case "author":
		return b.Author
	case "year":
		return fmt.Sprintf("%d", b.Year)
	case "pages":
		return fmt.Sprintf("%d", b.Pages)
	default:
		return b.Title
	}
}
