package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookreview-backend/internal/domains/book/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// bookColumns joins authors so every read carries the denormalized
// author_name.
const bookColumns = `
        b.id, b.title, b.publication_date, b.isbn, b.author_id, a.name
`

func scanBook(row pgx.Row, b *model.Book) error {
	return row.Scan(
		&b.ID,
		&b.Title,
		&b.PublicationDate,
		&b.ISBN,
		&b.AuthorID,
		&b.AuthorName,
	)
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if strings.Contains(pgErr.ConstraintName, "isbn") {
				return model.ErrDuplicateISBN
			}
		case pgForeignKeyViolation:
			return model.ErrInvalidAuthor
		}
	}
	return err
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        WITH inserted AS (
            INSERT INTO books (title, publication_date, isbn, author_id)
            VALUES ($1, $2, $3, $4)
            RETURNING id, title, publication_date, isbn, author_id
        )
        SELECT b.id, b.title, b.publication_date, b.isbn, b.author_id, a.name
        FROM inserted b
        JOIN authors a ON a.id = b.author_id
    `

	var created model.Book
	err := scanBook(r.pool.QueryRow(ctx, query,
		b.Title, b.PublicationDate, b.ISBN, b.AuthorID,
	), &created)
	if err != nil {
		if mapped := mapWriteError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	query := `
        SELECT ` + bookColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.id = $1
    `

	var b model.Book
	err := scanBook(r.pool.QueryRow(ctx, query, id), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	query := `
        SELECT ` + bookColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        ORDER BY b.id
    `

	return r.queryBooks(ctx, query)
}

func (r *postgresRepository) GetByAuthor(ctx context.Context, authorID int64) ([]model.Book, error) {
	query := `
        SELECT ` + bookColumns + `
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.author_id = $1
        ORDER BY b.id
    `

	return r.queryBooks(ctx, query, authorID)
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...any) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        WITH updated AS (
            UPDATE books
            SET title = $2, publication_date = $3, isbn = $4, author_id = $5
            WHERE id = $1
            RETURNING id, title, publication_date, isbn, author_id
        )
        SELECT b.id, b.title, b.publication_date, b.isbn, b.author_id, a.name
        FROM updated b
        JOIN authors a ON a.id = b.author_id
    `

	var updated model.Book
	err := scanBook(r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.PublicationDate, b.ISBN, b.AuthorID,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		if mapped := mapWriteError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	// Reviews are removed by ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}
