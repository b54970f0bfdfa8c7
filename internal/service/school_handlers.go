package service

import (
	"net/http"

	"github.com/google/uuid"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
)

// createSchoolHandler registers a school.
func (handlers *handlers) createSchoolHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	var payload models.SchoolPayload
	if err := decodeBody(req, &payload); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	school, err := handlers.app.CreateSchool(ctx, identity, payload)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusCreated, school)
}

// listSchoolsHandler returns every school to an admin.
func (handlers *handlers) listSchoolsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	schools, err := handlers.app.ListSchools(ctx, identity)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, schools)
}

// allocateHandler moves counted books from a drive to a school.
func (handlers *handlers) allocateHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	var payload models.AllocationPayload
	if err := decodeBody(req, &payload); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	allocation, err := handlers.app.Allocate(ctx, identity, payload)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusCreated, allocation)
}

// listAllocationsHandler returns allocations, optionally filtered by driveId and schoolId.
func (handlers *handlers) listAllocationsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	var filter models.AllocationFilter
	if filter.DriveID, err = optionalUUID(req, "driveId"); err != nil {
		handlers.writeError(res, req, err)
		return
	}
	if filter.SchoolID, err = optionalUUID(req, "schoolId"); err != nil {
		handlers.writeError(res, req, err)
		return
	}

	allocations, err := handlers.app.ListAllocations(ctx, identity, filter)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, allocations)
}

func optionalUUID(req *http.Request, name string) (*uuid.UUID, error) {
	value := req.URL.Query().Get(name)
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, domain.InvalidOperation("invalid %s %q", name, value)
	}
	return &id, nil
}

// setAllocationStatusHandler overwrites the status of an allocation.
func (handlers *handlers) setAllocationStatusHandler(res http.ResponseWriter, req *http.Request) {
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

	allocation, err := handlers.app.SetAllocationStatus(ctx, identity, id, payload)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, allocation)
}
