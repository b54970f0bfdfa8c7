package service

import (
	"net/http"

	"pustakdhaan/internal/models"
)

// submitRequestHandler requests a book for the caller.
func (handlers *handlers) submitRequestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	var payload models.SubmitRequestPayload
	if err := decodeBody(req, &payload); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	donationRequest, err := handlers.app.SubmitRequest(ctx, identity, payload)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusCreated, donationRequest)
}

// receivedRequestsHandler lists requests made for the caller's books.
func (handlers *handlers) receivedRequestsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	requests, err := handlers.app.ListReceivedRequests(ctx, identity)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, requests)
}

// sentRequestsHandler lists requests the caller has made.
func (handlers *handlers) sentRequestsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	requests, err := handlers.app.ListSentRequests(ctx, identity)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, requests)
}

// getRequestHandler returns a request to one of its two parties.
func (handlers *handlers) getRequestHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}
	id, err := pathID(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	donationRequest, err := handlers.app.GetRequest(ctx, identity, id)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, donationRequest)
}

// setRequestStatusHandler moves a request along its workflow on behalf of its donor.
func (handlers *handlers) setRequestStatusHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}
	id, err := pathID(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	var payload models.RequestStatusPayload
	if err := decodeBody(req, &payload); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	donationRequest, err := handlers.app.SetRequestStatus(ctx, identity, id, payload)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, donationRequest)
}
