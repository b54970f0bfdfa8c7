package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
)

const bookColumns = `id, title, author, isbn, genre, age_category, condition, description, language,
	publication_year, donor_id, status, created_at, updated_at`

const (
	createBookQuery = `INSERT INTO content.books (id, title, author, isbn, genre, age_category, condition, description,
		language, publication_year, donor_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`
	updateBookQuery = `UPDATE content.books SET title = $2, author = $3, isbn = $4, genre = $5, age_category = $6,
		condition = $7, description = $8, language = $9, publication_year = $10, updated_at = $11
		WHERE id = $1;`

	getBookQuery           = `SELECT ` + bookColumns + ` FROM content.books WHERE id = $1;`
	getBookForUpdateQuery  = `SELECT ` + bookColumns + ` FROM content.books WHERE id = $1 FOR UPDATE;`
	listBooksByDonorQuery  = `SELECT ` + bookColumns + ` FROM content.books WHERE donor_id = $1 ORDER BY created_at DESC;`
	setBookStatusQuery     = `UPDATE content.books SET status = $2, updated_at = $3 WHERE id = $1;`
	deleteBookQuery        = `DELETE FROM content.books WHERE id = $1;`
	countBookRequestsQuery = `SELECT COUNT(*) FROM content.donation_requests WHERE book_id = $1;`
)

const likeEscaper = "\\"

var likeReplacer = strings.NewReplacer(likeEscaper, likeEscaper+likeEscaper, "%", likeEscaper+"%", "_", likeEscaper+"_")

func scanBook(row scanner) (*models.Book, error) {
	book := &models.Book{}
	var publicationYear sql.NullInt32
	err := row.Scan(&book.ID, &book.Title, &book.Author, &book.ISBN, &book.Genre, &book.AgeCategory, &book.Condition,
		&book.Description, &book.Language, &publicationYear, &book.DonorID, &book.Status, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if publicationYear.Valid {
		year := int(publicationYear.Int32)
		book.PublicationYear = &year
	}
	return book, nil
}

func nullableYear(year *int) sql.NullInt32 {
	if year == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*year), Valid: true}
}

// CreateBook inserts a new book listing.
func (postgresql *PostgreSQL) CreateBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	_, err := postgresql.db.ExecContext(ctx, createBookQuery, book.ID, book.Title, book.Author, book.ISBN, book.Genre,
		book.AgeCategory, book.Condition, book.Description, book.Language, nullableYear(book.PublicationYear),
		book.DonorID, book.Status, book.CreatedAt, book.UpdatedAt)
	if err != nil {
		return nil, postgresql.queryFailed("createBookQuery", err)
	}
	return book, nil
}

// GetBook retrieves a book listing by its ID.
func (postgresql *PostgreSQL) GetBook(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	book, err := scanBook(postgresql.db.QueryRowContext(ctx, getBookQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("book not found")
	}
	if err != nil {
		return nil, postgresql.queryFailed("getBookQuery", err)
	}
	return book, nil
}

// UpdateBook overwrites the descriptive fields of a listing. Status and donor are never touched.
func (postgresql *PostgreSQL) UpdateBook(ctx context.Context, book *models.Book) (*models.Book, error) {
	result, err := postgresql.db.ExecContext(ctx, updateBookQuery, book.ID, book.Title, book.Author, book.ISBN,
		book.Genre, book.AgeCategory, book.Condition, book.Description, book.Language,
		nullableYear(book.PublicationYear), book.UpdatedAt)
	if err != nil {
		return nil, postgresql.queryFailed("updateBookQuery", err)
	}
	if err := expectAffected(result, domain.NotFound("book not found")); err != nil {
		return nil, err
	}
	return postgresql.GetBook(ctx, book.ID)
}

// DeleteBook removes a listing that is still available and has never been requested.
// The book row is locked so a concurrent request cannot slip in between the check and the delete.
func (postgresql *PostgreSQL) DeleteBook(ctx context.Context, id uuid.UUID) error {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	book, err := postgresql.lockBook(ctx, tx, id)
	if err != nil {
		return err
	}
	if book.Status != models.BookAvailable {
		return domain.InvalidState("book with status %s cannot be deleted", book.Status)
	}

	var requests int
	if err := tx.QueryRowContext(ctx, countBookRequestsQuery, id).Scan(&requests); err != nil {
		return postgresql.queryFailed("countBookRequestsQuery", err)
	}
	if requests > 0 {
		return domain.InvalidState("book has donation history and cannot be deleted")
	}

	if _, err := tx.ExecContext(ctx, deleteBookQuery, id); err != nil {
		return postgresql.queryFailed("deleteBookQuery", err)
	}

	return tx.Commit()
}

// ListBooks returns one page of available books matching the filter, newest first,
// together with the number of matching books across all pages.
func (postgresql *PostgreSQL) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, int, error) {
	conditions := []string{"status = $1"}
	args := []any{models.BookAvailable}
	addCondition := func(format string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if filter.Genre != "" {
		addCondition("genre = $%d", filter.Genre)
	}
	if filter.Condition != "" {
		addCondition("condition = $%d", filter.Condition)
	}
	if filter.AgeCategory != "" {
		addCondition("age_category = $%d", filter.AgeCategory)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeReplacer.Replace(search) + "%"
		args = append(args, pattern)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR author ILIKE $%d)", n, n))
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM content.books` + where
	if err := postgresql.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, postgresql.queryFailed("countBooksQuery", err)
	}

	pageArgs := append(args, filter.Limit, filter.Offset())
	listQuery := fmt.Sprintf(`SELECT %s FROM content.books%s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d`,
		bookColumns, where, len(pageArgs)-1, len(pageArgs))
	rows, err := postgresql.db.QueryContext(ctx, listQuery, pageArgs...)
	if err != nil {
		return nil, 0, postgresql.queryFailed("listBooksQuery", err)
	}
	defer rows.Close()

	books, err := collectBooks(rows)
	if err != nil {
		return nil, 0, postgresql.queryFailed("listBooksQuery", err)
	}
	return books, total, nil
}

// ListBooksByDonor returns every listing of a donor regardless of status.
func (postgresql *PostgreSQL) ListBooksByDonor(ctx context.Context, donorID uuid.UUID) ([]models.Book, error) {
	rows, err := postgresql.db.QueryContext(ctx, listBooksByDonorQuery, donorID)
	if err != nil {
		return nil, postgresql.queryFailed("listBooksByDonorQuery", err)
	}
	defer rows.Close()

	books, err := collectBooks(rows)
	if err != nil {
		return nil, postgresql.queryFailed("listBooksByDonorQuery", err)
	}
	return books, nil
}

func collectBooks(rows *sql.Rows) ([]models.Book, error) {
	books := make([]models.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}
	return books, rows.Err()
}

func (postgresql *PostgreSQL) lockBook(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*models.Book, error) {
	book, err := scanBook(tx.QueryRowContext(ctx, getBookForUpdateQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("book not found")
	}
	if err != nil {
		return nil, postgresql.queryFailed("getBookForUpdateQuery", err)
	}
	return book, nil
}

func (postgresql *PostgreSQL) saveBookStatus(ctx context.Context, tx *sql.Tx, book *models.Book) error {
	if _, err := tx.ExecContext(ctx, setBookStatusQuery, book.ID, book.Status, book.UpdatedAt); err != nil {
		return postgresql.queryFailed("setBookStatusQuery", err)
	}
	return nil
}
