package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
)

const allocationColumns = `id, drive_id, school_id, allocated_by, books_2_4, books_4_6, books_6_8, books_8_10,
	total_books_allocated, notes, status, delivery_date, created_at, updated_at`

const (
	createAllocationQuery = `INSERT INTO content.book_allocations (id, drive_id, school_id, allocated_by,
		books_2_4, books_4_6, books_6_8, books_8_10, total_books_allocated, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	getAllocationQuery          = `SELECT ` + allocationColumns + ` FROM content.book_allocations WHERE id = $1;`
	updateAllocationStatusQuery = `UPDATE content.book_allocations SET status = $2, delivery_date = COALESCE($3, delivery_date), updated_at = NOW() WHERE id = $1;`
)

func scanAllocation(row scanner) (*models.BookAllocation, error) {
	allocation := &models.BookAllocation{}
	var deliveryDate sql.NullTime
	var counts categoryCounts
	dest := []any{&allocation.ID, &allocation.DriveID, &allocation.SchoolID, &allocation.AllocatedBy}
	dest = append(dest, counts.dest()...)
	dest = append(dest, &allocation.TotalBooksAllocated, &allocation.Notes, &allocation.Status, &deliveryDate,
		&allocation.CreatedAt, &allocation.UpdatedAt)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	allocation.DeliveryDate = timePtr(deliveryDate)
	allocation.BooksAllocated = counts.model()
	return allocation, nil
}

// AllocateBooks moves counted books from a drive to a school. The drive and then the school
// are locked, every category is checked against the drive's stock, and only then are
// the allocation, the drive counters and the school total written in one transaction.
func (postgresql *PostgreSQL) AllocateBooks(ctx context.Context, allocation *models.BookAllocation) (*models.BookAllocation, error) {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	drive, err := postgresql.lockDrive(ctx, tx, allocation.DriveID)
	if err != nil {
		return nil, err
	}
	school, err := postgresql.lockSchool(ctx, tx, allocation.SchoolID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	total, err := domain.Allocate(drive, school, allocation.BooksAllocated, now)
	if err != nil {
		return nil, err
	}
	allocation.TotalBooksAllocated = total

	args := []any{allocation.ID, allocation.DriveID, allocation.SchoolID, allocation.AllocatedBy}
	args = append(args, countsFromModel(allocation.BooksAllocated).args()...)
	args = append(args, allocation.TotalBooksAllocated, allocation.Notes, allocation.Status,
		allocation.CreatedAt, allocation.UpdatedAt)
	if _, err := tx.ExecContext(ctx, createAllocationQuery, args...); err != nil {
		return nil, postgresql.queryFailed("createAllocationQuery", err)
	}

	if err := postgresql.saveDriveCounters(ctx, tx, drive); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, updateSchoolTotalQuery, school.ID, school.TotalBooksReceived, school.UpdatedAt); err != nil {
		return nil, postgresql.queryFailed("updateSchoolTotalQuery", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return allocation, nil
}

// ListAllocations returns allocations newest first, optionally narrowed to one drive or school.
func (postgresql *PostgreSQL) ListAllocations(ctx context.Context, filter models.AllocationFilter) ([]models.BookAllocation, error) {
	var conditions []string
	var args []any
	if filter.DriveID != nil {
		args = append(args, *filter.DriveID)
		conditions = append(conditions, fmt.Sprintf("drive_id = $%d", len(args)))
	}
	if filter.SchoolID != nil {
		args = append(args, *filter.SchoolID)
		conditions = append(conditions, fmt.Sprintf("school_id = $%d", len(args)))
	}

	query := `SELECT ` + allocationColumns + ` FROM content.book_allocations`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := postgresql.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, postgresql.queryFailed("listAllocationsQuery", err)
	}
	defer rows.Close()

	allocations := make([]models.BookAllocation, 0)
	for rows.Next() {
		allocation, err := scanAllocation(rows)
		if err != nil {
			return nil, postgresql.queryFailed("listAllocationsQuery", err)
		}
		allocations = append(allocations, *allocation)
	}
	if err := rows.Err(); err != nil {
		return nil, postgresql.queryFailed("listAllocationsQuery", err)
	}
	return allocations, nil
}

// UpdateAllocationStatus overwrites the status of an allocation and stores deliveryDate when given.
func (postgresql *PostgreSQL) UpdateAllocationStatus(ctx context.Context, id uuid.UUID, status string, deliveryDate *time.Time) (*models.BookAllocation, error) {
	result, err := postgresql.db.ExecContext(ctx, updateAllocationStatusQuery, id, status, nullableTime(deliveryDate))
	if err != nil {
		return nil, postgresql.queryFailed("updateAllocationStatusQuery", err)
	}
	if err := expectAffected(result, domain.NotFound("allocation not found")); err != nil {
		return nil, err
	}

	allocation, err := scanAllocation(postgresql.db.QueryRowContext(ctx, getAllocationQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("allocation not found")
	}
	if err != nil {
		return nil, postgresql.queryFailed("getAllocationQuery", err)
	}
	return allocation, nil
}
