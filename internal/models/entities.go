package models

import (
	"time"

	"github.com/google/uuid"
)

// BookStatus is the lifecycle state of a listed book.
type BookStatus string

// Book statuses. A book only moves available -> requested -> donated,
// or back to available when its request is cancelled.
const (
	BookAvailable BookStatus = "available"
	BookRequested BookStatus = "requested"
	BookDonated   BookStatus = "donated"
)

// Condition describes the physical state of a book.
type Condition string

// Book conditions.
const (
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
)

// RequestStatus is the state of a peer-to-peer donation request.
type RequestStatus string

// Donation request statuses. RequestInTransit is persisted for compatibility
// with historical records but no transition leads to it.
const (
	RequestRequested RequestStatus = "requested"
	RequestApproved  RequestStatus = "approved"
	RequestInTransit RequestStatus = "in-transit"
	RequestCompleted RequestStatus = "completed"
	RequestCancelled RequestStatus = "cancelled"
)

// PickupMethod is how a recipient receives a requested book.
type PickupMethod string

// Pickup methods.
const (
	PickupInPerson PickupMethod = "pickup"
	PickupDelivery PickupMethod = "delivery"
)

// DriveStatus is the state of a donation drive.
type DriveStatus string

// Drive statuses. Only active drives accept donations.
const (
	DriveActive DriveStatus = "active"
	DriveClosed DriveStatus = "closed"
)

// Donation record and allocation statuses written by the system.
// Coordinators and admins may overwrite them with other values later.
const (
	RecordSubmitted     = "submitted"
	RecordCollected     = "collected"
	AllocationAllocated = "allocated"
	AllocationDelivered = "delivered"
)

// User represents a registered account.
type User struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	PasswordHash      string    `json:"-"`
	Role              Role      `json:"role"`
	TotalBooksDonated int       `json:"totalBooksDonated"`
	Badge             Badge     `json:"badge"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// NewUser returns a donor account with no donations and no badge.
func NewUser(name, email, phone string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Role:      RoleDonor,
		Badge:     BadgeNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Book is a single listing offered by its donor.
type Book struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Author          string      `json:"author"`
	ISBN            string      `json:"isbn,omitempty"`
	Genre           string      `json:"genre,omitempty"`
	AgeCategory     AgeCategory `json:"ageCategory,omitempty"`
	Condition       Condition   `json:"condition"`
	Description     string      `json:"description,omitempty"`
	Language        string      `json:"language"`
	PublicationYear *int        `json:"publicationYear,omitempty"`
	DonorID         uuid.UUID   `json:"donorId"`
	Status          BookStatus  `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// NewBook returns an available book owned by donorID.
func NewBook(donorID uuid.UUID) *Book {
	now := time.Now().UTC()
	return &Book{
		ID:        uuid.New(),
		DonorID:   donorID,
		Language:  "English",
		Status:    BookAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DonationRequest is the one-to-one transaction between a donor's book and a recipient.
type DonationRequest struct {
	ID             uuid.UUID     `json:"id"`
	BookID         uuid.UUID     `json:"bookId"`
	BookTitle      string        `json:"bookTitle,omitempty"`
	BookAuthor     string        `json:"bookAuthor,omitempty"`
	DonorID        uuid.UUID     `json:"donorId"`
	RecipientID    uuid.UUID     `json:"recipientId"`
	Status         RequestStatus `json:"status"`
	RequestMessage string        `json:"requestMessage,omitempty"`
	PickupMethod   PickupMethod  `json:"pickupMethod"`
	PickupAddress  *Address      `json:"pickupAddress,omitempty"`
	RequestedAt    time.Time     `json:"requestedAt"`
	ApprovedAt     *time.Time    `json:"approvedAt,omitempty"`
	CompletedAt    *time.Time    `json:"completedAt,omitempty"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// NewDonationRequest returns a request for bookID by recipientID in the requested state.
// The donor is filled in from the book when the request is stored.
func NewDonationRequest(bookID, recipientID uuid.UUID) *DonationRequest {
	now := time.Now().UTC()
	return &DonationRequest{
		ID:          uuid.New(),
		BookID:      bookID,
		RecipientID: recipientID,
		Status:      RequestRequested,
		RequestedAt: now,
		UpdatedAt:   now,
	}
}

// DonationDrive is a time-bounded campaign accumulating books by age category.
// TotalBooksReceived always equals BooksReceived.Total().
type DonationDrive struct {
	ID                 uuid.UUID      `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description,omitempty"`
	Location           string         `json:"location"`
	GatedCommunity     string         `json:"gatedCommunity"`
	CoordinatorID      uuid.UUID      `json:"coordinatorId"`
	StartDate          time.Time      `json:"startDate"`
	EndDate            *time.Time     `json:"endDate,omitempty"`
	Status             DriveStatus    `json:"status"`
	BooksReceived      CategoryCounts `json:"booksReceived"`
	TotalBooksReceived int            `json:"totalBooksReceived"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// NewDonationDrive returns an active drive with empty counters.
func NewDonationDrive(coordinatorID uuid.UUID) *DonationDrive {
	now := time.Now().UTC()
	return &DonationDrive{
		ID:            uuid.New(),
		CoordinatorID: coordinatorID,
		Status:        DriveActive,
		BooksReceived: NewCategoryCounts(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DonationRecord is a donor's contribution of counted books to a drive.
type DonationRecord struct {
	ID           uuid.UUID      `json:"id"`
	DonorID      uuid.UUID      `json:"donorId"`
	DriveID      uuid.UUID      `json:"donationDriveId"`
	DriveName    string         `json:"donationDriveName,omitempty"`
	DonationDate time.Time      `json:"donationDate"`
	BooksCount   CategoryCounts `json:"booksCount"`
	TotalBooks   int            `json:"totalBooks"`
	Status       string         `json:"status"`
	CollectedAt  *time.Time     `json:"collectedAt,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// NewDonationRecord returns a submitted record. TotalBooks is derived once, here.
func NewDonationRecord(donorID, driveID uuid.UUID, donationDate time.Time, booksCount CategoryCounts) *DonationRecord {
	now := time.Now().UTC()
	return &DonationRecord{
		ID:           uuid.New(),
		DonorID:      donorID,
		DriveID:      driveID,
		DonationDate: donationDate,
		BooksCount:   booksCount.Clone(),
		TotalBooks:   booksCount.Total(),
		Status:       RecordSubmitted,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// School is a recipient institution of allocated books.
type School struct {
	ID                 uuid.UUID     `json:"id"`
	Name               string        `json:"name"`
	Address            Address       `json:"address"`
	ContactPerson      ContactPerson `json:"contactPerson"`
	StudentsCount      int           `json:"studentsCount"`
	TotalBooksReceived int           `json:"totalBooksReceived"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// NewSchool returns a school that has not received any books yet.
func NewSchool(name string) *School {
	now := time.Now().UTC()
	return &School{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BookAllocation is a transfer of counted books from a drive to a school.
type BookAllocation struct {
	ID                  uuid.UUID      `json:"id"`
	DriveID             uuid.UUID      `json:"donationDriveId"`
	SchoolID            uuid.UUID      `json:"schoolId"`
	AllocatedBy         uuid.UUID      `json:"allocatedBy"`
	BooksAllocated      CategoryCounts `json:"booksAllocated"`
	TotalBooksAllocated int            `json:"totalBooksAllocated"`
	Notes               string         `json:"notes,omitempty"`
	Status              string         `json:"status"`
	DeliveryDate        *time.Time     `json:"deliveryDate,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// NewBookAllocation returns an allocation in the allocated state.
func NewBookAllocation(driveID, schoolID, allocatedBy uuid.UUID, booksAllocated CategoryCounts, notes string) *BookAllocation {
	now := time.Now().UTC()
	return &BookAllocation{
		ID:                  uuid.New(),
		DriveID:             driveID,
		SchoolID:            schoolID,
		AllocatedBy:         allocatedBy,
		BooksAllocated:      booksAllocated.Clone(),
		TotalBooksAllocated: booksAllocated.Total(),
		Notes:               notes,
		Status:              AllocationAllocated,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
