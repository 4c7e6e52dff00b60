package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookreview-backend/internal/domains/review/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const pgForeignKeyViolation = "23503"

// reviewColumns joins books and users so every read carries the denormalized
// book_title and username.
const reviewColumns = `
        r.id, r.book_id, r.user_id, r.rating, r.review_text, r.created_at, b.title, u.username
`

func scanReview(row pgx.Row, rv *model.Review) error {
	return row.Scan(
		&rv.ID,
		&rv.BookID,
		&rv.UserID,
		&rv.Rating,
		&rv.ReviewText,
		&rv.CreatedAt,
		&rv.BookTitle,
		&rv.Username,
	)
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		if strings.Contains(pgErr.ConstraintName, "user") {
			return model.ErrInvalidUser
		}
		return model.ErrInvalidBook
	}
	return err
}

func (r *postgresRepository) Create(ctx context.Context, rv *model.Review) (*model.Review, error) {
	query := `
        WITH inserted AS (
            INSERT INTO reviews (book_id, user_id, rating, review_text)
            VALUES ($1, $2, $3, $4)
            RETURNING id, book_id, user_id, rating, review_text, created_at
        )
        SELECT r.id, r.book_id, r.user_id, r.rating, r.review_text, r.created_at, b.title, u.username
        FROM inserted r
        JOIN books b ON b.id = r.book_id
        JOIN users u ON u.id = r.user_id
    `

	var created model.Review
	err := scanReview(r.pool.QueryRow(ctx, query,
		rv.BookID, rv.UserID, rv.Rating, rv.ReviewText,
	), &created)
	if err != nil {
		if mapped := mapWriteError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	query := `
        SELECT ` + reviewColumns + `
        FROM reviews r
        JOIN books b ON b.id = r.book_id
        JOIN users u ON u.id = r.user_id
        WHERE r.id = $1
    `

	var rv model.Review
	err := scanReview(r.pool.QueryRow(ctx, query, id), &rv)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review by id: %w", err)
	}

	return &rv, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Review, error) {
	query := `
        SELECT ` + reviewColumns + `
        FROM reviews r
        JOIN books b ON b.id = r.book_id
        JOIN users u ON u.id = r.user_id
        ORDER BY r.id
    `

	return r.queryReviews(ctx, query)
}

func (r *postgresRepository) GetByBook(ctx context.Context, bookID int64) ([]model.Review, error) {
	query := `
        SELECT ` + reviewColumns + `
        FROM reviews r
        JOIN books b ON b.id = r.book_id
        JOIN users u ON u.id = r.user_id
        WHERE r.book_id = $1
        ORDER BY r.id
    `

	return r.queryReviews(ctx, query, bookID)
}

func (r *postgresRepository) queryReviews(ctx context.Context, query string, args ...any) ([]model.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := scanReview(rows, &rv); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return reviews, nil
}

func (r *postgresRepository) Update(ctx context.Context, rv *model.Review) (*model.Review, error) {
	// created_at is deliberately not in the SET list; it is immutable.
	query := `
        WITH updated AS (
            UPDATE reviews
            SET book_id = $2, user_id = $3, rating = $4, review_text = $5
            WHERE id = $1
            RETURNING id, book_id, user_id, rating, review_text, created_at
        )
        SELECT r.id, r.book_id, r.user_id, r.rating, r.review_text, r.created_at, b.title, u.username
        FROM updated r
        JOIN books b ON b.id = r.book_id
        JOIN users u ON u.id = r.user_id
    `

	var updated model.Review
	err := scanReview(r.pool.QueryRow(ctx, query,
		rv.ID, rv.BookID, rv.UserID, rv.Rating, rv.ReviewText,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		if mapped := mapWriteError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}
	return nil
}
