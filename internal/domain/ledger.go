package domain

import (
	"math"
	"time"

	"pustakdhaan/internal/models"
)

// MaxCategoryCount bounds the books of one category in a single donation or allocation.
const MaxCategoryCount = 1000000

// maxCounter is the largest value a stored book counter can hold.
const maxCounter = math.MaxInt32

// CountTotal validates per-category counts and returns their sum.
// Unknown categories, negative or oversized counts are rejected; so is an empty total.
func CountTotal(counts models.CategoryCounts, what string) (int, error) {
	for category, n := range counts {
		if !category.Valid() {
			return 0, InvalidOperation("unknown age category %q", category)
		}
		if n < 0 {
			return 0, InvalidOperation("book count for category %s must not be negative", category)
		}
		if n > MaxCategoryCount {
			return 0, InvalidOperation("book count for category %s must not exceed %d", category, MaxCategoryCount)
		}
	}

	total := counts.Total()
	if total == 0 {
		return 0, InvalidOperation("at least one book must be %s", what)
	}
	return total, nil
}

// ReceiveDonation credits counted books to an active drive.
// Either every counter moves or, on error, none does.
func ReceiveDonation(drive *models.DonationDrive, counts models.CategoryCounts, now time.Time) (int, error) {
	if drive.Status != models.DriveActive {
		return 0, InvalidState("donation drive %s is not active", drive.Name)
	}

	total, err := CountTotal(counts, "donated")
	if err != nil {
		return 0, err
	}

	if drive.TotalBooksReceived > maxCounter-total {
		return 0, InvalidOperation("donation drive %s cannot hold %d more books", drive.Name, total)
	}
	received := drive.BooksReceived.Clone()
	if received == nil {
		received = models.NewCategoryCounts()
	}
	for category, n := range counts {
		if received[category] > maxCounter-n {
			return 0, InvalidOperation("donation drive %s cannot hold %d more books in category %s", drive.Name, n, category)
		}
		received[category] += n
	}

	drive.BooksReceived = received
	drive.TotalBooksReceived += total
	drive.UpdatedAt = now
	return total, nil
}

// Allocate moves counted books from a drive to a school. Every category is
// checked against the drive's stock before any counter changes, so a rejected
// allocation leaves both ledgers exactly as they were.
func Allocate(drive *models.DonationDrive, school *models.School, counts models.CategoryCounts, now time.Time) (int, error) {
	total, err := CountTotal(counts, "allocated")
	if err != nil {
		return 0, err
	}

	var shortfalls []Shortfall
	for _, category := range models.AgeCategories {
		requested := counts.Get(category)
		if available := drive.BooksReceived.Get(category); requested > available {
			shortfalls = append(shortfalls, Shortfall{Category: category, Available: available, Requested: requested})
		}
	}
	if len(shortfalls) > 0 {
		return 0, &InsufficientInventoryError{Shortfalls: shortfalls}
	}
	if school.TotalBooksReceived > maxCounter-total {
		return 0, InvalidOperation("school %s cannot receive %d more books", school.Name, total)
	}

	received := drive.BooksReceived.Clone()
	for category, n := range counts {
		received[category] -= n
	}

	drive.BooksReceived = received
	drive.TotalBooksReceived -= total
	drive.UpdatedAt = now
	school.TotalBooksReceived += total
	school.UpdatedAt = now
	return total, nil
}
