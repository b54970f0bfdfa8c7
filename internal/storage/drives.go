package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
)

const driveColumns = `id, name, description, location, gated_community, coordinator_id, start_date, end_date, status,
	books_2_4, books_4_6, books_6_8, books_8_10, total_books_received, created_at, updated_at`

const recordColumns = `r.id, r.donor_id, r.drive_id, d.name, r.donation_date,
	r.books_2_4, r.books_4_6, r.books_6_8, r.books_8_10, r.total_books, r.status, r.collected_at, r.created_at, r.updated_at`

const recordFrom = ` FROM content.donation_records r JOIN content.donation_drives d ON d.id = r.drive_id`

const (
	createDriveQuery = `INSERT INTO content.donation_drives (id, name, description, location, gated_community, coordinator_id,
		start_date, end_date, status, books_2_4, books_4_6, books_6_8, books_8_10, total_books_received, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`

	createRecordQuery = `INSERT INTO content.donation_records (id, donor_id, drive_id, donation_date,
		books_2_4, books_4_6, books_6_8, books_8_10, total_books, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	updateDriveCountersQuery = `UPDATE content.donation_drives SET books_2_4 = $2, books_4_6 = $3, books_6_8 = $4, books_8_10 = $5,
		total_books_received = $6, updated_at = $7 WHERE id = $1;`

	getDriveQuery           = `SELECT ` + driveColumns + ` FROM content.donation_drives WHERE id = $1;`
	getDriveForUpdateQuery  = `SELECT ` + driveColumns + ` FROM content.donation_drives WHERE id = $1 FOR UPDATE;`
	listDrivesQuery         = `SELECT ` + driveColumns + ` FROM content.donation_drives ORDER BY created_at DESC;`
	listDrivesByStatusQuery = `SELECT ` + driveColumns + ` FROM content.donation_drives WHERE status = $1 ORDER BY created_at DESC;`
	updateDriveStatusQuery  = `UPDATE content.donation_drives SET status = $2, updated_at = NOW() WHERE id = $1;`
	getRecordQuery          = `SELECT ` + recordColumns + recordFrom + ` WHERE r.id = $1;`
	listRecordsQuery        = `SELECT ` + recordColumns + recordFrom + ` ORDER BY r.donation_date DESC, r.created_at DESC;`
	listRecordsByDonorQuery = `SELECT ` + recordColumns + recordFrom + ` WHERE r.donor_id = $1 ORDER BY r.donation_date DESC, r.created_at DESC;`
	updateRecordStatusQuery = `UPDATE content.donation_records SET status = $2, collected_at = COALESCE($3, collected_at), updated_at = NOW() WHERE id = $1;`
)

func scanDrive(row scanner) (*models.DonationDrive, error) {
	drive := &models.DonationDrive{}
	var endDate sql.NullTime
	var counts categoryCounts
	dest := []any{&drive.ID, &drive.Name, &drive.Description, &drive.Location, &drive.GatedCommunity,
		&drive.CoordinatorID, &drive.StartDate, &endDate, &drive.Status}
	dest = append(dest, counts.dest()...)
	dest = append(dest, &drive.TotalBooksReceived, &drive.CreatedAt, &drive.UpdatedAt)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	drive.EndDate = timePtr(endDate)
	drive.BooksReceived = counts.model()
	return drive, nil
}

func scanRecord(row scanner) (*models.DonationRecord, error) {
	record := &models.DonationRecord{}
	var collectedAt sql.NullTime
	var counts categoryCounts
	dest := []any{&record.ID, &record.DonorID, &record.DriveID, &record.DriveName, &record.DonationDate}
	dest = append(dest, counts.dest()...)
	dest = append(dest, &record.TotalBooks, &record.Status, &collectedAt, &record.CreatedAt, &record.UpdatedAt)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	record.CollectedAt = timePtr(collectedAt)
	record.BooksCount = counts.model()
	return record, nil
}

// CreateDrive inserts a new donation drive with its counters as given.
func (postgresql *PostgreSQL) CreateDrive(ctx context.Context, drive *models.DonationDrive) (*models.DonationDrive, error) {
	args := []any{drive.ID, drive.Name, drive.Description, drive.Location, drive.GatedCommunity, drive.CoordinatorID,
		drive.StartDate, nullableTime(drive.EndDate), drive.Status}
	args = append(args, countsFromModel(drive.BooksReceived).args()...)
	args = append(args, drive.TotalBooksReceived, drive.CreatedAt, drive.UpdatedAt)

	if _, err := postgresql.db.ExecContext(ctx, createDriveQuery, args...); err != nil {
		return nil, postgresql.queryFailed("createDriveQuery", err)
	}
	return drive, nil
}

// GetDrive retrieves a donation drive by its ID.
func (postgresql *PostgreSQL) GetDrive(ctx context.Context, id uuid.UUID) (*models.DonationDrive, error) {
	drive, err := scanDrive(postgresql.db.QueryRowContext(ctx, getDriveQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("donation drive not found")
	}
	if err != nil {
		return nil, postgresql.queryFailed("getDriveQuery", err)
	}
	return drive, nil
}

// ListDrives returns drives newest first. An empty status lists every drive.
func (postgresql *PostgreSQL) ListDrives(ctx context.Context, status models.DriveStatus) ([]models.DonationDrive, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		rows, err = postgresql.db.QueryContext(ctx, listDrivesQuery)
	} else {
		rows, err = postgresql.db.QueryContext(ctx, listDrivesByStatusQuery, status)
	}
	if err != nil {
		return nil, postgresql.queryFailed("listDrivesQuery", err)
	}
	defer rows.Close()

	drives := make([]models.DonationDrive, 0)
	for rows.Next() {
		drive, err := scanDrive(rows)
		if err != nil {
			return nil, postgresql.queryFailed("listDrivesQuery", err)
		}
		drives = append(drives, *drive)
	}
	if err := rows.Err(); err != nil {
		return nil, postgresql.queryFailed("listDrivesQuery", err)
	}
	return drives, nil
}

// UpdateDriveStatus opens or closes a drive.
func (postgresql *PostgreSQL) UpdateDriveStatus(ctx context.Context, id uuid.UUID, status models.DriveStatus) (*models.DonationDrive, error) {
	result, err := postgresql.db.ExecContext(ctx, updateDriveStatusQuery, id, status)
	if err != nil {
		return nil, postgresql.queryFailed("updateDriveStatusQuery", err)
	}
	if err := expectAffected(result, domain.NotFound("donation drive not found")); err != nil {
		return nil, err
	}
	return postgresql.GetDrive(ctx, id)
}

// SubmitDonation records counted books given to a drive. The record, the drive counters
// and the donor's lifetime total and badge are written in one transaction;
// the drive is locked before the donor.
func (postgresql *PostgreSQL) SubmitDonation(ctx context.Context, record *models.DonationRecord, policy domain.BadgePolicy) (*models.DonationRecord, error) {
	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	drive, err := postgresql.lockDrive(ctx, tx, record.DriveID)
	if err != nil {
		return nil, err
	}
	donor, err := postgresql.lockUser(ctx, tx, record.DonorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	total, err := domain.ReceiveDonation(drive, record.BooksCount, now)
	if err != nil {
		return nil, err
	}
	if err := policy.CreditDonor(donor, total, now); err != nil {
		return nil, err
	}

	record.TotalBooks = total
	record.DriveName = drive.Name
	counts := countsFromModel(record.BooksCount)
	args := []any{record.ID, record.DonorID, record.DriveID, record.DonationDate}
	args = append(args, counts.args()...)
	args = append(args, record.TotalBooks, record.Status, record.CreatedAt, record.UpdatedAt)
	if _, err := tx.ExecContext(ctx, createRecordQuery, args...); err != nil {
		return nil, postgresql.queryFailed("createRecordQuery", err)
	}

	if err := postgresql.saveDriveCounters(ctx, tx, drive); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, updateUserDonatedQuery, donor.ID, donor.TotalBooksDonated, donor.Badge, donor.UpdatedAt); err != nil {
		return nil, postgresql.queryFailed("updateUserDonatedQuery", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	postgresql.log.Sugar().Debugf("Drive %s now holds %d books, donor %s has %d (%s)",
		drive.ID, drive.TotalBooksReceived, donor.ID, donor.TotalBooksDonated, donor.Badge)
	return record, nil
}

// ListDonationRecords returns donation records newest first, limited to one donor when donorID is set.
func (postgresql *PostgreSQL) ListDonationRecords(ctx context.Context, donorID *uuid.UUID) ([]models.DonationRecord, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if donorID == nil {
		rows, err = postgresql.db.QueryContext(ctx, listRecordsQuery)
	} else {
		rows, err = postgresql.db.QueryContext(ctx, listRecordsByDonorQuery, *donorID)
	}
	if err != nil {
		return nil, postgresql.queryFailed("listRecordsQuery", err)
	}
	defer rows.Close()

	records := make([]models.DonationRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, postgresql.queryFailed("listRecordsQuery", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, postgresql.queryFailed("listRecordsQuery", err)
	}
	return records, nil
}

// UpdateDonationRecordStatus overwrites the status of a record. collectedAt is stored
// only when non-nil; drive and donor counters are untouched.
func (postgresql *PostgreSQL) UpdateDonationRecordStatus(ctx context.Context, id uuid.UUID, status string, collectedAt *time.Time) (*models.DonationRecord, error) {
	result, err := postgresql.db.ExecContext(ctx, updateRecordStatusQuery, id, status, nullableTime(collectedAt))
	if err != nil {
		return nil, postgresql.queryFailed("updateRecordStatusQuery", err)
	}
	if err := expectAffected(result, domain.NotFound("donation record not found")); err != nil {
		return nil, err
	}

	record, err := scanRecord(postgresql.db.QueryRowContext(ctx, getRecordQuery, id))
	if err != nil {
		return nil, postgresql.queryFailed("getRecordQuery", err)
	}
	return record, nil
}

func (postgresql *PostgreSQL) lockDrive(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*models.DonationDrive, error) {
	drive, err := scanDrive(tx.QueryRowContext(ctx, getDriveForUpdateQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("donation drive not found")
	}
	if err != nil {
		return nil, postgresql.queryFailed("getDriveForUpdateQuery", err)
	}
	return drive, nil
}

func (postgresql *PostgreSQL) saveDriveCounters(ctx context.Context, tx *sql.Tx, drive *models.DonationDrive) error {
	args := []any{drive.ID}
	args = append(args, countsFromModel(drive.BooksReceived).args()...)
	args = append(args, drive.TotalBooksReceived, drive.UpdatedAt)
	if _, err := tx.ExecContext(ctx, updateDriveCountersQuery, args...); err != nil {
		return postgresql.queryFailed("updateDriveCountersQuery", err)
	}
	return nil
}
