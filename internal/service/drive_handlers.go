package service

import (
	"net/http"

	"pustakdhaan/internal/models"
)

// createDriveHandler opens a donation drive.
func (handlers *handlers) createDriveHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	var payload models.DrivePayload
	if err := decodeBody(req, &payload); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	drive, err := handlers.app.CreateDrive(ctx, identity, payload)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusCreated, drive)
}

// listDrivesHandler returns every drive to an admin.
func (handlers *handlers) listDrivesHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	drives, err := handlers.app.ListDrives(ctx, identity)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, drives)
}

// listActiveDrivesHandler returns the drives accepting donations.
func (handlers *handlers) listActiveDrivesHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	drives, err := handlers.app.ListActiveDrives(ctx)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, drives)
}

// setDriveStatusHandler opens or closes a drive.
func (handlers *handlers) setDriveStatusHandler(res http.ResponseWriter, req *http.Request) {
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

	var payload models.DriveStatusPayload
	if err := decodeBody(req, &payload); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	drive, err := handlers.app.SetDriveStatus(ctx, identity, id, payload)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, drive)
}

// submitDonationHandler records books the caller gave to a drive.
func (handlers *handlers) submitDonationHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	var payload models.DonationPayload
	if err := decodeBody(req, &payload); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := handlers.app.SubmitDonation(ctx, identity, payload)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusCreated, record)
}

// myDonationsHandler returns the caller's donation records.
func (handlers *handlers) myDonationsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	records, err := handlers.app.MyDonations(ctx, identity)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, records)
}

// listDonationsHandler returns every donation record to an admin.
func (handlers *handlers) listDonationsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	records, err := handlers.app.ListDonations(ctx, identity)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, records)
}

// setDonationStatusHandler overwrites the status of a donation record.
func (handlers *handlers) setDonationStatusHandler(res http.ResponseWriter, req *http.Request) {
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

	var payload models.StatusPayload
	if err := decodeBody(req, &payload); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := handlers.app.SetDonationStatus(ctx, identity, id, payload)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, record)
}
