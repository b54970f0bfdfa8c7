package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
)

// CreateDrive opens a donation drive run by an existing coordinator. Admin only.
func (app *App) CreateDrive(ctx context.Context, identity models.Identity, payload models.DrivePayload) (*models.DonationDrive, error) {
	if err := app.authorize(ctx, identity, domain.CapManageDrives); err != nil {
		return nil, err
	}
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	if payload.EndDate != nil && payload.EndDate.Before(payload.StartDate) {
		return nil, domain.InvalidOperation("endDate must not be before startDate")
	}

	coordinator, err := app.db.GetUser(ctx, payload.CoordinatorID)
	if err != nil {
		return nil, err
	}
	if coordinator.Role != models.RoleCoordinator && coordinator.Role != models.RoleAdmin {
		return nil, domain.InvalidOperation("user %s is not a coordinator", coordinator.Email)
	}

	drive := models.NewDonationDrive(coordinator.ID)
	drive.Name = strings.TrimSpace(payload.Name)
	drive.Description = payload.Description
	drive.Location = payload.Location
	drive.GatedCommunity = payload.GatedCommunity
	drive.StartDate = payload.StartDate
	drive.EndDate = payload.EndDate

	return app.db.CreateDrive(ctx, drive)
}

// ListDrives returns every drive. Admin only.
func (app *App) ListDrives(ctx context.Context, identity models.Identity) ([]models.DonationDrive, error) {
	if err := app.authorize(ctx, identity, domain.CapManageDrives); err != nil {
		return nil, err
	}
	return app.db.ListDrives(ctx, "")
}

// ListActiveDrives returns the drives currently accepting donations.
func (app *App) ListActiveDrives(ctx context.Context) ([]models.DonationDrive, error) {
	return app.db.ListDrives(ctx, models.DriveActive)
}

// SetDriveStatus opens or closes a drive. Admin only.
func (app *App) SetDriveStatus(ctx context.Context, identity models.Identity, id uuid.UUID, payload models.DriveStatusPayload) (*models.DonationDrive, error) {
	if err := app.authorize(ctx, identity, domain.CapManageDrives); err != nil {
		return nil, err
	}
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	return app.db.UpdateDriveStatus(ctx, id, payload.Status)
}

// SubmitDonation records the caller's counted books for an active drive. The record,
// the drive counters and the caller's donation total and badge change together.
func (app *App) SubmitDonation(ctx context.Context, identity models.Identity, payload models.DonationPayload) (*models.DonationRecord, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	if _, err := domain.CountTotal(payload.BooksCount, "donated"); err != nil {
		return nil, err
	}

	donationDate := payload.DonationDate
	if donationDate.IsZero() {
		donationDate = time.Now().UTC()
	}

	record := models.NewDonationRecord(identity.UserID, payload.DriveID, donationDate, payload.BooksCount)
	record, err := app.db.SubmitDonation(ctx, record, app.badges)
	if err != nil {
		return nil, err
	}

	app.log.Info("donation received",
		zap.String("record_id", record.ID.String()),
		zap.String("drive_id", record.DriveID.String()),
		zap.String("donor_id", record.DonorID.String()),
		zap.Int("books", record.TotalBooks))
	return record, nil
}

// MyDonations returns the caller's donation records.
func (app *App) MyDonations(ctx context.Context, identity models.Identity) ([]models.DonationRecord, error) {
	return app.db.ListDonationRecords(ctx, &identity.UserID)
}

// ListDonations returns every donation record. Admin only.
func (app *App) ListDonations(ctx context.Context, identity models.Identity) ([]models.DonationRecord, error) {
	if err := app.authorize(ctx, identity, domain.CapViewAllDonations); err != nil {
		return nil, err
	}
	return app.db.ListDonationRecords(ctx, nil)
}

// SetDonationStatus overwrites a record's status. Coordinators and admins only.
// Moving a record to collected stamps collectedAt; counters are never touched.
func (app *App) SetDonationStatus(ctx context.Context, identity models.Identity, id uuid.UUID, payload models.StatusPayload) (*models.DonationRecord, error) {
	if err := app.authorize(ctx, identity, domain.CapUpdateDonations); err != nil {
		return nil, err
	}
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	var collectedAt *time.Time
	if payload.Status == models.RecordCollected {
		now := time.Now().UTC()
		collectedAt = &now
	}
	return app.db.UpdateDonationRecordStatus(ctx, id, payload.Status, collectedAt)
}
