package book

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) ListAll(ctx context.Context) ([]Book, error) {
	const query = `
		SELECT id, title, author, publication_year, publisher, isbn,
		       total_copies, available_copies, acquisition_value, loan_status
		FROM books
		ORDER BY id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.PublicationYear, &b.Publisher, &b.ISBN,
			&b.TotalCopies, &b.AvailableCopies, &b.AcquisitionValue, &b.LoanStatus,
		); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Create inserts b and writes the generated id back into it.
func (r *PostgresRepo) Create(ctx context.Context, b *Book) (bool, error) {
	if !Valid(b) {
		log.Printf("book create rejected: invalid=%s", ValidationProblems(b))
		return false, nil
	}

	const sql = `
		INSERT INTO books (title, author, publication_year, publisher, isbn,
		                   total_copies, available_copies, acquisition_value, loan_status,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, sql,
		b.Title, b.Author, b.PublicationYear, b.Publisher, b.ISBN,
		b.TotalCopies, b.AvailableCopies, b.AcquisitionValue, b.LoanStatus,
	).Scan(&b.ID)
	if err != nil {
		return false, fmt.Errorf("insert book: %w", err)
	}
	return true, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if !ValidID(id) {
		return false, nil
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete book %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepo) Update(ctx context.Context, b *Book) (bool, error) {
	if b == nil || !ValidID(b.ID) {
		return false, nil
	}
	if !Valid(b) {
		log.Printf("book update rejected: book_id=%d invalid=%s", b.ID, ValidationProblems(b))
		return false, nil
	}

	const sql = `
		UPDATE books SET
			title = $2,
			author = $3,
			publication_year = $4,
			publisher = $5,
			isbn = $6,
			total_copies = $7,
			available_copies = $8,
			acquisition_value = $9,
			loan_status = $10,
			updated_at = NOW()
		WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql,
		b.ID, b.Title, b.Author, b.PublicationYear, b.Publisher, b.ISBN,
		b.TotalCopies, b.AvailableCopies, b.AcquisitionValue, b.LoanStatus,
	)
	if err != nil {
		return false, fmt.Errorf("update book %d: %w", b.ID, err)
	}
	return tag.RowsAffected() == 1, nil
}
