package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
)

const requestColumns = `r.id, r.book_id, b.title, b.author, r.donor_id, r.recipient_id, r.status, r.request_message,
	r.pickup_method, r.pickup_address, r.requested_at, r.approved_at, r.completed_at, r.updated_at`

const requestFrom = ` FROM content.donation_requests r JOIN content.books b ON b.id = r.book_id`

const (
	createRequestQuery = `INSERT INTO content.donation_requests (id, book_id, donor_id, recipient_id, status, request_message,
		pickup_method, pickup_address, requested_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	updateRequestStatusQuery = `UPDATE content.donation_requests SET status = $2, approved_at = $3, completed_at = $4, updated_at = $5
		WHERE id = $1;`

	getRequestQuery              = `SELECT ` + requestColumns + requestFrom + ` WHERE r.id = $1;`
	getRequestForUpdateQuery     = `SELECT ` + requestColumns + requestFrom + ` WHERE r.id = $1 FOR UPDATE OF r;`
	listRequestsByDonorQuery     = `SELECT ` + requestColumns + requestFrom + ` WHERE r.donor_id = $1 ORDER BY r.requested_at DESC;`
	listRequestsByRecipientQuery = `SELECT ` + requestColumns + requestFrom + ` WHERE r.recipient_id = $1 ORDER BY r.requested_at DESC;`
)

func scanRequest(row scanner) (*models.DonationRequest, error) {
	req := &models.DonationRequest{}
	var address []byte
	var approvedAt, completedAt sql.NullTime
	err := row.Scan(&req.ID, &req.BookID, &req.BookTitle, &req.BookAuthor, &req.DonorID, &req.RecipientID, &req.Status,
		&req.RequestMessage, &req.PickupMethod, &address, &req.RequestedAt, &approvedAt, &completedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(address) > 0 {
		req.PickupAddress = &models.Address{}
		if err := json.Unmarshal(address, req.PickupAddress); err != nil {
			return nil, err
		}
	}
	req.ApprovedAt = timePtr(approvedAt)
	req.CompletedAt = timePtr(completedAt)
	return req, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// CreateDonationRequest stores a new request and marks the book as requested in one transaction.
// The book is locked first; the request is refused unless the book is available and
// belongs to someone other than the recipient.
func (postgresql *PostgreSQL) CreateDonationRequest(ctx context.Context, req *models.DonationRequest) (*models.DonationRequest, error) {
	var address any
	if req.PickupAddress != nil {
		encoded, err := json.Marshal(req.PickupAddress)
		if err != nil {
			return nil, err
		}
		address = string(encoded)
	}

	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	book, err := postgresql.lockBook(ctx, tx, req.BookID)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckRequestable(book, req.RecipientID); err != nil {
		return nil, err
	}
	if err := domain.MoveBook(book, models.BookRequested, req.RequestedAt); err != nil {
		return nil, err
	}

	req.DonorID = book.DonorID
	req.BookTitle = book.Title
	req.BookAuthor = book.Author

	_, err = tx.ExecContext(ctx, createRequestQuery, req.ID, req.BookID, req.DonorID, req.RecipientID, req.Status,
		req.RequestMessage, req.PickupMethod, address, req.RequestedAt, req.UpdatedAt)
	if err != nil {
		return nil, postgresql.queryFailed("createRequestQuery", err)
	}
	if err := postgresql.saveBookStatus(ctx, tx, book); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return req, nil
}

// GetDonationRequest retrieves a request by its ID.
func (postgresql *PostgreSQL) GetDonationRequest(ctx context.Context, id uuid.UUID) (*models.DonationRequest, error) {
	req, err := scanRequest(postgresql.db.QueryRowContext(ctx, getRequestQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("donation request not found")
	}
	if err != nil {
		return nil, postgresql.queryFailed("getRequestQuery", err)
	}
	return req, nil
}

// ListDonationRequestsByDonor returns the requests received by a donor, newest first.
func (postgresql *PostgreSQL) ListDonationRequestsByDonor(ctx context.Context, donorID uuid.UUID) ([]models.DonationRequest, error) {
	return postgresql.listRequests(ctx, "listRequestsByDonorQuery", listRequestsByDonorQuery, donorID)
}

// ListDonationRequestsByRecipient returns the requests sent by a recipient, newest first.
func (postgresql *PostgreSQL) ListDonationRequestsByRecipient(ctx context.Context, recipientID uuid.UUID) ([]models.DonationRequest, error) {
	return postgresql.listRequests(ctx, "listRequestsByRecipientQuery", listRequestsByRecipientQuery, recipientID)
}

func (postgresql *PostgreSQL) listRequests(ctx context.Context, name, query string, userID uuid.UUID) ([]models.DonationRequest, error) {
	rows, err := postgresql.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, postgresql.queryFailed(name, err)
	}
	defer rows.Close()

	requests := make([]models.DonationRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, postgresql.queryFailed(name, err)
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, postgresql.queryFailed(name, err)
	}
	return requests, nil
}

// UpdateDonationRequestStatus moves a request to a new status on behalf of actorID and
// applies the matching book status change in the same transaction.
// The book is locked before the request so this never deadlocks with CreateDonationRequest.
func (postgresql *PostgreSQL) UpdateDonationRequestStatus(ctx context.Context, id uuid.UUID, status models.RequestStatus, actorID uuid.UUID) (*models.DonationRequest, error) {
	current, err := postgresql.GetDonationRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := postgresql.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	book, err := postgresql.lockBook(ctx, tx, current.BookID)
	if err != nil {
		return nil, err
	}
	req, err := scanRequest(tx.QueryRowContext(ctx, getRequestForUpdateQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("donation request not found")
	}
	if err != nil {
		return nil, postgresql.queryFailed("getRequestForUpdateQuery", err)
	}

	now := time.Now().UTC()
	bookStatus, err := domain.ApplyRequestStatus(req, status, actorID, now)
	if err != nil {
		return nil, err
	}
	if bookStatus != "" {
		if err := domain.MoveBook(book, bookStatus, now); err != nil {
			return nil, err
		}
	}

	_, err = tx.ExecContext(ctx, updateRequestStatusQuery, req.ID, req.Status, nullableTime(req.ApprovedAt),
		nullableTime(req.CompletedAt), req.UpdatedAt)
	if err != nil {
		return nil, postgresql.queryFailed("updateRequestStatusQuery", err)
	}
	if bookStatus != "" {
		if err := postgresql.saveBookStatus(ctx, tx, book); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return req, nil
}
