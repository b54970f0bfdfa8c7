// Package models defines the data structures used throughout the application.
// It includes the persisted entities of the book-donation domain (users, books,
// donation requests, donation drives, donation records, schools and allocations),
// their enumerations, and the request and response payloads of the HTTP API.
package models

import (
	"github.com/google/uuid"
)

// Role is the authorization role carried by a user.
type Role string

// Known roles. Every new account starts as a donor; donors also act as recipients.
const (
	RoleDonor       Role = "donor"
	RoleCoordinator Role = "coordinator"
	RoleAdmin       Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleCoordinator, RoleAdmin:
		return true
	}
	return false
}

// Badge is a reputation tier derived from the number of books a user has donated.
type Badge string

// Badge tiers in ascending order.
const (
	BadgeNone   Badge = "none"
	BadgeBronze Badge = "bronze"
	BadgeSilver Badge = "silver"
	BadgeGold   Badge = "gold"
)

// Identity is the authenticated caller of an operation, resolved from a bearer token.
// It is passed explicitly into every application operation.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the identity holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// AgeCategory is one of the fixed reader-age buckets used to count drive books.
type AgeCategory string

// The four age categories, keyed by their literal persisted strings.
const (
	AgeTwoToFour  AgeCategory = "2-4"
	AgeFourToSix  AgeCategory = "4-6"
	AgeSixToEight AgeCategory = "6-8"
	AgeEightToTen AgeCategory = "8-10"
)

// AgeCategories lists every age category in display order.
var AgeCategories = []AgeCategory{AgeTwoToFour, AgeFourToSix, AgeSixToEight, AgeEightToTen}

// Valid reports whether c is one of the four known categories.
func (c AgeCategory) Valid() bool {
	for _, known := range AgeCategories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryCounts maps age categories to book counts.
// Categories missing from the map count as zero.
type CategoryCounts map[AgeCategory]int

// NewCategoryCounts returns counts with every category present and set to zero.
func NewCategoryCounts() CategoryCounts {
	counts := make(CategoryCounts, len(AgeCategories))
	for _, category := range AgeCategories {
		counts[category] = 0
	}
	return counts
}

// Get returns the count for a category, zero when absent.
func (c CategoryCounts) Get(category AgeCategory) int {
	return c[category]
}

// Total returns the sum over all categories.
func (c CategoryCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Clone returns an independent copy of the counts.
func (c CategoryCounts) Clone() CategoryCounts {
	clone := make(CategoryCounts, len(c))
	for category, n := range c {
		clone[category] = n
	}
	return clone
}

// Address is a postal address used for pickups and schools.
type Address struct {
	Street  string `json:"street" validate:"max=200"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"max=100"`
	ZipCode string `json:"zipCode" validate:"max=20"`
}

// ContactPerson is the point of contact of a school.
type ContactPerson struct {
	Name  string `json:"name" validate:"max=100"`
	Phone string `json:"phone" validate:"max=32"`
	Email string `json:"email" validate:"omitempty,email"`
}

// ErrorResponse represents a generic error response payload.
// It contains a string describing the encountered error.
type ErrorResponse struct {
	Errors string `json:"errors"`
}
