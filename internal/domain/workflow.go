package domain

import (
	"time"

	"github.com/google/uuid"

	"pustakdhaan/internal/models"
)

// requestTransitions is the complete set of legal donation request moves and the
// book status each one implies. An empty book status leaves the book unchanged.
var requestTransitions = map[models.RequestStatus]map[models.RequestStatus]models.BookStatus{
	models.RequestRequested: {
		models.RequestApproved:  "",
		models.RequestCancelled: models.BookAvailable,
	},
	models.RequestApproved: {
		models.RequestCompleted: models.BookDonated,
		models.RequestCancelled: models.BookAvailable,
	},
}

// bookTransitions lists the legal book status moves.
var bookTransitions = map[models.BookStatus][]models.BookStatus{
	models.BookAvailable: {models.BookRequested},
	models.BookRequested: {models.BookAvailable, models.BookDonated},
}

// CheckRequestable reports whether recipientID may open a request for book.
func CheckRequestable(book *models.Book, recipientID uuid.UUID) error {
	if book.Status != models.BookAvailable {
		return InvalidState("book is not available for donation (status: %s)", book.Status)
	}
	if book.DonorID == recipientID {
		return InvalidOperation("you cannot request your own book")
	}
	return nil
}

// MoveBook changes the book status if the move is legal.
func MoveBook(book *models.Book, next models.BookStatus, now time.Time) error {
	for _, allowed := range bookTransitions[book.Status] {
		if allowed == next {
			book.Status = next
			book.UpdatedAt = now
			return nil
		}
	}
	return InvalidState("book cannot move from %s to %s", book.Status, next)
}

// ApplyRequestStatus moves req to next on behalf of actorID and stamps the
// matching timestamp. It returns the status the request's book must take, or an
// empty status when the book is unaffected. req is left untouched on error.
func ApplyRequestStatus(req *models.DonationRequest, next models.RequestStatus, actorID uuid.UUID, now time.Time) (models.BookStatus, error) {
	if req.DonorID != actorID {
		return "", Forbidden("not authorized to update this request")
	}

	bookStatus, ok := requestTransitions[req.Status][next]
	if !ok {
		return "", InvalidState("donation request cannot move from %s to %s", req.Status, next)
	}

	req.Status = next
	req.UpdatedAt = now
	switch next {
	case models.RequestApproved:
		req.ApprovedAt = &now
	case models.RequestCompleted:
		req.CompletedAt = &now
	}

	return bookStatus, nil
}
