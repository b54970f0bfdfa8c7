package service

import (
	"net/http"
	"strconv"

	"pustakdhaan/internal/models"
)

// listBooksHandler returns a page of available books.
// Query parameters: genre, condition, ageCategory, search, page, limit.
func (handlers *handlers) listBooksHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	query := req.URL.Query()
	filter := models.BookFilter{
		Genre:       query.Get("genre"),
		Condition:   models.Condition(query.Get("condition")),
		AgeCategory: models.AgeCategory(query.Get("ageCategory")),
		Search:      query.Get("search"),
	}

	var err error
	if filter.Page, err = intParam(query.Get("page")); err != nil {
		writeErrorResponse(res, "page must be a number", http.StatusBadRequest)
		return
	}
	if filter.Limit, err = intParam(query.Get("limit")); err != nil {
		writeErrorResponse(res, "limit must be a number", http.StatusBadRequest)
		return
	}

	page, err := handlers.app.ListBooks(ctx, filter)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, page)
}

func intParam(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

// getBookHandler returns a single book.
func (handlers *handlers) getBookHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	id, err := pathID(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	book, err := handlers.app.GetBook(ctx, id)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, book)
}

// createBookHandler lists a new book for the caller.
func (handlers *handlers) createBookHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	var bookRequest models.BookRequest
	if err := decodeBody(req, &bookRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	book, err := handlers.app.CreateBook(ctx, identity, bookRequest)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusCreated, book)
}

// updateBookHandler edits one of the caller's books.
func (handlers *handlers) updateBookHandler(res http.ResponseWriter, req *http.Request) {
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

	var bookRequest models.BookRequest
	if err := decodeBody(req, &bookRequest); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	book, err := handlers.app.UpdateBook(ctx, identity, id, bookRequest)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, book)
}

// deleteBookHandler removes one of the caller's available books.
func (handlers *handlers) deleteBookHandler(res http.ResponseWriter, req *http.Request) {
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

	if err := handlers.app.DeleteBook(ctx, identity, id); err != nil {
		handlers.writeError(res, req, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}

// myBooksHandler returns every book of the caller.
func (handlers *handlers) myBooksHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := requestContext(req)
	defer cancel()

	identity, err := identityOf(req)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	books, err := handlers.app.MyBooks(ctx, identity)
	if err != nil {
		handlers.writeError(res, req, err)
		return
	}

	writeJSON(res, http.StatusOK, books)
}
