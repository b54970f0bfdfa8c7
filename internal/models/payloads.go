package models

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest represents the account registration payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"max=32"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest represents the authentication request payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the authentication response payload.
// It contains the generated token and the authenticated user.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// BookRequest is the payload for creating or updating a book listing.
// Status is never accepted from clients.
type BookRequest struct {
	Title           string      `json:"title" validate:"required,max=200"`
	Author          string      `json:"author" validate:"required,max=200"`
	ISBN            string      `json:"isbn" validate:"max=20"`
	Genre           string      `json:"genre" validate:"max=64"`
	AgeCategory     AgeCategory `json:"ageCategory" validate:"omitempty,oneof=2-4 4-6 6-8 8-10"`
	Condition       Condition   `json:"condition" validate:"required,oneof=Excellent Good Fair Poor"`
	Description     string      `json:"description" validate:"max=2000"`
	Language        string      `json:"language" validate:"max=32"`
	PublicationYear *int        `json:"publicationYear" validate:"omitempty,min=0,max=3000"`
}

// BookFilter narrows the public book listing.
type BookFilter struct {
	Genre       string
	Condition   Condition
	AgeCategory AgeCategory
	Search      string
	Page        int
	Limit       int
}

// Offset returns the number of rows to skip for the filter's page.
func (f BookFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// BookPage is one page of the public book listing.
type BookPage struct {
	Books       []Book `json:"books"`
	Total       int    `json:"total"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}

// SubmitRequestPayload is the payload for requesting a book.
type SubmitRequestPayload struct {
	BookID         uuid.UUID    `json:"bookId" validate:"required"`
	RequestMessage string       `json:"requestMessage" validate:"max=1000"`
	PickupMethod   PickupMethod `json:"pickupMethod" validate:"required,oneof=pickup delivery"`
	PickupAddress  *Address     `json:"pickupAddress" validate:"required_if=PickupMethod delivery"`
}

// RequestStatusPayload is the payload for moving a donation request between states.
type RequestStatusPayload struct {
	Status RequestStatus `json:"status" validate:"required"`
}

// DrivePayload is the payload for creating a donation drive.
type DrivePayload struct {
	Name           string     `json:"name" validate:"required,max=200"`
	Description    string     `json:"description" validate:"max=2000"`
	Location       string     `json:"location" validate:"required,max=200"`
	GatedCommunity string     `json:"gatedCommunity" validate:"required,max=200"`
	CoordinatorID  uuid.UUID  `json:"coordinatorId" validate:"required"`
	StartDate      time.Time  `json:"startDate" validate:"required"`
	EndDate        *time.Time `json:"endDate"`
}

// DriveStatusPayload is the payload for opening or closing a drive.
type DriveStatusPayload struct {
	Status DriveStatus `json:"status" validate:"required,oneof=active closed"`
}

// DonationPayload is the payload for submitting counted books to a drive.
type DonationPayload struct {
	DriveID      uuid.UUID      `json:"donationDriveId" validate:"required"`
	DonationDate time.Time      `json:"donationDate"`
	BooksCount   CategoryCounts `json:"booksCount" validate:"required,dive,keys,oneof=2-4 4-6 6-8 8-10,endkeys,min=0,max=1000000"`
}

// SchoolPayload is the payload for registering a school.
type SchoolPayload struct {
	Name          string        `json:"name" validate:"required,max=200"`
	Address       Address       `json:"address"`
	ContactPerson ContactPerson `json:"contactPerson"`
	StudentsCount int           `json:"studentsCount" validate:"min=0"`
}

// AllocationPayload is the payload for allocating drive books to a school.
type AllocationPayload struct {
	DriveID        uuid.UUID      `json:"donationDriveId" validate:"required"`
	SchoolID       uuid.UUID      `json:"schoolId" validate:"required"`
	BooksAllocated CategoryCounts `json:"booksAllocated" validate:"required,dive,keys,oneof=2-4 4-6 6-8 8-10,endkeys,min=0,max=1000000"`
	Notes          string         `json:"notes" validate:"max=2000"`
}

// AllocationFilter narrows the allocation listing. Nil fields do not filter.
type AllocationFilter struct {
	DriveID  *uuid.UUID
	SchoolID *uuid.UUID
}

// StatusPayload is a free-form status overwrite used for donation records and allocations.
type StatusPayload struct {
	Status       string     `json:"status" validate:"required,max=32"`
	DeliveryDate *time.Time `json:"deliveryDate"`
}
