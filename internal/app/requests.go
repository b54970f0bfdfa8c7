package app

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
)

// SubmitRequest asks for someone else's available book on behalf of the caller.
// The request is stored and the book marked requested in one step.
func (app *App) SubmitRequest(ctx context.Context, identity models.Identity, payload models.SubmitRequestPayload) (*models.DonationRequest, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	req := models.NewDonationRequest(payload.BookID, identity.UserID)
	req.RequestMessage = payload.RequestMessage
	req.PickupMethod = payload.PickupMethod
	if payload.PickupMethod == models.PickupDelivery {
		req.PickupAddress = payload.PickupAddress
	}

	req, err := app.db.CreateDonationRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	app.log.Info("book requested",
		zap.String("request_id", req.ID.String()),
		zap.String("book_id", req.BookID.String()),
		zap.String("recipient_id", req.RecipientID.String()))
	return req, nil
}

// SetRequestStatus moves a request along its workflow. Only the request's donor may do so;
// the book status follows in the same step.
func (app *App) SetRequestStatus(ctx context.Context, identity models.Identity, id uuid.UUID, payload models.RequestStatusPayload) (*models.DonationRequest, error) {
	if err := validatePayload(payload); err != nil {
		return nil, err
	}

	req, err := app.db.UpdateDonationRequestStatus(ctx, id, payload.Status, identity.UserID)
	if err != nil {
		return nil, err
	}

	app.log.Info("donation request updated",
		zap.String("request_id", req.ID.String()),
		zap.String("status", string(req.Status)))
	return req, nil
}

// GetRequest returns a request visible to its donor or its recipient.
func (app *App) GetRequest(ctx context.Context, identity models.Identity, id uuid.UUID) (*models.DonationRequest, error) {
	req, err := app.db.GetDonationRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if identity.UserID != req.DonorID && identity.UserID != req.RecipientID {
		return nil, domain.Forbidden("not authorized to view this request")
	}
	return req, nil
}

// ListReceivedRequests returns the requests made for the caller's books.
func (app *App) ListReceivedRequests(ctx context.Context, identity models.Identity) ([]models.DonationRequest, error) {
	return app.db.ListDonationRequestsByDonor(ctx, identity.UserID)
}

// ListSentRequests returns the requests the caller has made.
func (app *App) ListSentRequests(ctx context.Context, identity models.Identity) ([]models.DonationRequest, error) {
	return app.db.ListDonationRequestsByRecipient(ctx, identity.UserID)
}
