// Package storage provides primitives for connecting to and interacting with data storage systems.
// It defines the Storage interface along with a PostgreSQL implementation that persists users,
// book listings, donation requests, donation drives, donation records, schools and allocations.
// Every operation that moves state between two or three entities runs in one transaction,
// locks the rows it reads, applies the domain rules to the locked snapshot and only then writes.
package storage

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks pustakdhaan/internal/storage Storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	legacypgconn "github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
	"pustakdhaan/internal/pkg/logger"
)

// Storage defines the methods required for data storage operations.
type Storage interface {
	// Close closes the database connection.
	Close()

	// User accounts.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserRole(ctx context.Context, id uuid.UUID, role models.Role) error

	// Book registry.
	CreateBook(ctx context.Context, book *models.Book) (*models.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*models.Book, error)
	UpdateBook(ctx context.Context, book *models.Book) (*models.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, int, error)
	ListBooksByDonor(ctx context.Context, donorID uuid.UUID) ([]models.Book, error)

	// Donation request workflow.
	CreateDonationRequest(ctx context.Context, req *models.DonationRequest) (*models.DonationRequest, error)
	GetDonationRequest(ctx context.Context, id uuid.UUID) (*models.DonationRequest, error)
	ListDonationRequestsByDonor(ctx context.Context, donorID uuid.UUID) ([]models.DonationRequest, error)
	ListDonationRequestsByRecipient(ctx context.Context, recipientID uuid.UUID) ([]models.DonationRequest, error)
	UpdateDonationRequestStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus, actorID uuid.UUID) (*models.DonationRequest, error)

	// Donation drives and donation records.
	CreateDrive(ctx context.Context, drive *models.DonationDrive) (*models.DonationDrive, error)
	GetDrive(ctx context.Context, id uuid.UUID) (*models.DonationDrive, error)
	ListDrives(ctx context.Context, status models.DriveStatus) ([]models.DonationDrive, error)
	UpdateDriveStatus(ctx context.Context, id uuid.UUID, status models.DriveStatus) (*models.DonationDrive, error)
	SubmitDonation(ctx context.Context, record *models.DonationRecord, policy domain.BadgePolicy) (*models.DonationRecord, error)
	ListDonationRecords(ctx context.Context, donorID *uuid.UUID) ([]models.DonationRecord, error)
	UpdateDonationRecordStatus(ctx context.Context, id uuid.UUID, status string, collectedAt *time.Time) (*models.DonationRecord, error)

	// Schools and allocations.
	CreateSchool(ctx context.Context, school *models.School) (*models.School, error)
	ListSchools(ctx context.Context) ([]models.School, error)
	AllocateBooks(ctx context.Context, allocation *models.BookAllocation) (*models.BookAllocation, error)
	ListAllocations(ctx context.Context, filter models.AllocationFilter) ([]models.BookAllocation, error)
	UpdateAllocationStatus(ctx context.Context, id uuid.UUID, status string, deliveryDate *time.Time) (*models.BookAllocation, error)
}

// PostgreSQL implements the Storage interface using a PostgreSQL database.
type PostgreSQL struct {
	db  *sql.DB        // Connection to the database.
	log *logger.Logger // Logger for recording events and errors.
}

// NewPostgreSQL creates a new PostgreSQL instance with the provided connection string and logger.
// It opens the connection and pings the database to ensure connectivity.
// When the ping fails the pool is closed again and the returned instance holds no connection.
func NewPostgreSQL(configDBString string, l *logger.Logger) (*PostgreSQL, error) {
	db, err := sql.Open("pgx", configDBString)
	if err != nil {
		l.Sugar().Errorf("Failed to open a database: %s", err)
		return &PostgreSQL{db: db, log: l}, err
	}

	const defaultTimeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		l.Sugar().Errorf("Database ping failed: %s", err)
		db.Close()
		return &PostgreSQL{log: l}, err
	}

	return &PostgreSQL{db: db, log: l}, nil
}

// Close closes the database connection if it is open.
func (postgresql *PostgreSQL) Close() {
	if postgresql.db != nil {
		postgresql.db.Close()
	}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// categoryCounts mirrors the books_2_4 .. books_8_10 columns, in models.AgeCategories order.
type categoryCounts [4]int

func countsFromModel(counts models.CategoryCounts) categoryCounts {
	var c categoryCounts
	for i, category := range models.AgeCategories {
		c[i] = counts.Get(category)
	}
	return c
}

func (c *categoryCounts) dest() []any {
	return []any{&c[0], &c[1], &c[2], &c[3]}
}

func (c categoryCounts) args() []any {
	return []any{c[0], c[1], c[2], c[3]}
}

func (c categoryCounts) model() models.CategoryCounts {
	counts := models.NewCategoryCounts()
	for i, category := range models.AgeCategories {
		counts[category] = c[i]
	}
	return counts
}

// pgErrorCode extracts the SQLSTATE and constraint of a PostgreSQL error.
// Both the pgx v5 and the standalone pgconn error types are recognised.
func pgErrorCode(err error) (code string, constraint string, ok bool) {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		return pgError.Code, pgError.ConstraintName, true
	}
	var legacyError *legacypgconn.PgError
	if errors.As(err, &legacyError) {
		return legacyError.Code, legacyError.ConstraintName, true
	}
	return "", "", false
}

// translateError maps constraint violations onto domain errors and passes everything else through.
func translateError(err error) error {
	code, constraint, ok := pgErrorCode(err)
	if !ok {
		return err
	}

	switch code {
	case pgerrcode.UniqueViolation:
		if constraint == "users_email_key" {
			return domain.InvalidOperation("user with provided email already exists")
		}
		return domain.InvalidOperation("record already exists (%s)", constraint)
	case pgerrcode.ForeignKeyViolation:
		return domain.NotFound("referenced record does not exist (%s)", constraint)
	case pgerrcode.CheckViolation:
		return domain.InvalidState("update rejected by constraint %s", constraint)
	}
	return err
}

func (postgresql *PostgreSQL) queryFailed(query string, err error) error {
	postgresql.log.Sugar().Errorf("Failed to execute a query %s: %s", query, err)
	return translateError(err)
}

func expectAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
