package app

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
)

// CreateSchool registers a recipient school. Admin only.
func (app *App) CreateSchool(ctx context.Context, identity models.Identity, payload models.SchoolPayload) (*models.School, error) {
	if err := app.authorize(ctx, identity, domain.CapManageSchools); err != nil {
		return nil, err
	}
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	school := models.NewSchool(strings.TrimSpace(payload.Name))
	school.Address = payload.Address
	school.ContactPerson = payload.ContactPerson
	school.StudentsCount = payload.StudentsCount
	return app.db.CreateSchool(ctx, school)
}

// ListSchools returns every school. Admin only.
func (app *App) ListSchools(ctx context.Context, identity models.Identity) ([]models.School, error) {
	if err := app.authorize(ctx, identity, domain.CapManageSchools); err != nil {
		return nil, err
	}
	return app.db.ListSchools(ctx)
}

// Allocate moves counted books from a drive to a school. Admin only.
// Either every category is covered by the drive's stock and both ledgers change,
// or the allocation is rejected and nothing changes.
func (app *App) Allocate(ctx context.Context, identity models.Identity, payload models.AllocationPayload) (*models.BookAllocation, error) {
	if err := app.authorize(ctx, identity, domain.CapAllocateBooks); err != nil {
		return nil, err
	}
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	if _, err := domain.CountTotal(payload.BooksAllocated, "allocated"); err != nil {
		return nil, err
	}

	allocation := models.NewBookAllocation(payload.DriveID, payload.SchoolID, identity.UserID, payload.BooksAllocated, payload.Notes)
	allocation, err := app.db.AllocateBooks(ctx, allocation)
	if err != nil {
		app.log.Debug("allocation rejected", zap.String("drive_id", payload.DriveID.String()), zap.Error(err))
		return nil, err
	}

	app.log.Info("books allocated",
		zap.String("allocation_id", allocation.ID.String()),
		zap.String("drive_id", allocation.DriveID.String()),
		zap.String("school_id", allocation.SchoolID.String()),
		zap.Int("books", allocation.TotalBooksAllocated))
	return allocation, nil
}

// ListAllocations returns allocations, optionally narrowed to a drive or a school. Admin only.
func (app *App) ListAllocations(ctx context.Context, identity models.Identity, filter models.AllocationFilter) ([]models.BookAllocation, error) {
	if err := app.authorize(ctx, identity, domain.CapManageAllocations); err != nil {
		return nil, err
	}
	return app.db.ListAllocations(ctx, filter)
}

// SetAllocationStatus overwrites an allocation's status and records the delivery date when given. Admin only.
func (app *App) SetAllocationStatus(ctx context.Context, identity models.Identity, id uuid.UUID, payload models.StatusPayload) (*models.BookAllocation, error) {
	if err := app.authorize(ctx, identity, domain.CapManageAllocations); err != nil {
		return nil, err
	}
	if err := validatePayload(payload); err != nil {
		return nil, err
	}
	return app.db.UpdateAllocationStatus(ctx, id, payload.Status, payload.DeliveryDate)
}
