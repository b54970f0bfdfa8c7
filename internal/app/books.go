package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"pustakdhaan/internal/domain"
	"pustakdhaan/internal/models"
)

// Book listing paging bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	MaxPage      = 1000000
)

// ListBooks returns one page of available books matching the filter.
// Out-of-range paging values fall back to the defaults or are capped.
func (app *App) ListBooks(ctx context.Context, filter models.BookFilter) (*models.BookPage, error) {
	if filter.Page < 1 {
		filter.Page = DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	if filter.Page > MaxPage {
		return nil, domain.InvalidOperation("page must not exceed %d", MaxPage)
	}
	if filter.Condition != "" {
		if err := validate.Var(filter.Condition, "oneof=Excellent Good Fair Poor"); err != nil {
			return nil, domain.InvalidOperation("condition must be one of [Excellent Good Fair Poor]")
		}
	}
	if filter.AgeCategory != "" && !filter.AgeCategory.Valid() {
		return nil, domain.InvalidOperation("unknown age category %q", filter.AgeCategory)
	}

	books, total, err := app.db.ListBooks(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.BookPage{
		Books:       books,
		Total:       total,
		TotalPages:  (total + filter.Limit - 1) / filter.Limit,
		CurrentPage: filter.Page,
	}, nil
}

// GetBook returns a single listing.
func (app *App) GetBook(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	return app.db.GetBook(ctx, id)
}

// CreateBook lists a new available book owned by the caller.
func (app *App) CreateBook(ctx context.Context, identity models.Identity, req models.BookRequest) (*models.Book, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	book := models.NewBook(identity.UserID)
	applyBookRequest(book, req)
	return app.db.CreateBook(ctx, book)
}

// UpdateBook rewrites the descriptive fields of one of the caller's listings.
func (app *App) UpdateBook(ctx context.Context, identity models.Identity, id uuid.UUID, req models.BookRequest) (*models.Book, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	book, err := app.db.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeOwner(identity, book.DonorID, "update this book"); err != nil {
		return nil, err
	}

	applyBookRequest(book, req)
	book.UpdatedAt = time.Now().UTC()
	return app.db.UpdateBook(ctx, book)
}

// DeleteBook removes one of the caller's listings while it is still available.
func (app *App) DeleteBook(ctx context.Context, identity models.Identity, id uuid.UUID) error {
	book, err := app.db.GetBook(ctx, id)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeOwner(identity, book.DonorID, "delete this book"); err != nil {
		return err
	}
	return app.db.DeleteBook(ctx, id)
}

// MyBooks returns every listing of the caller.
func (app *App) MyBooks(ctx context.Context, identity models.Identity) ([]models.Book, error) {
	return app.db.ListBooksByDonor(ctx, identity.UserID)
}

func applyBookRequest(book *models.Book, req models.BookRequest) {
	book.Title = strings.TrimSpace(req.Title)
	book.Author = strings.TrimSpace(req.Author)
	book.ISBN = req.ISBN
	book.Genre = req.Genre
	book.AgeCategory = req.AgeCategory
	book.Condition = req.Condition
	book.Description = req.Description
	book.PublicationYear = req.PublicationYear
	if language := strings.TrimSpace(req.Language); language != "" {
		book.Language = language
	}
}
