package domain

import (
	"fmt"
	"time"

	"pustakdhaan/internal/models"
)

// BadgePolicy holds the lifetime donation totals at which each badge is earned.
type BadgePolicy struct {
	Bronze int
	Silver int
	Gold   int
}

// DefaultBadgePolicy: none below 5, bronze 5-14, silver 15-29, gold from 30.
var DefaultBadgePolicy = BadgePolicy{Bronze: 5, Silver: 15, Gold: 30}

// Validate checks that thresholds are positive and non-decreasing.
func (p BadgePolicy) Validate() error {
	if p.Bronze <= 0 || p.Silver < p.Bronze || p.Gold < p.Silver {
		return fmt.Errorf("domain: badge thresholds must satisfy 0 < bronze <= silver <= gold, got %d/%d/%d", p.Bronze, p.Silver, p.Gold)
	}
	return nil
}

// BadgeFor derives the badge for a lifetime donation total.
func (p BadgePolicy) BadgeFor(totalBooksDonated int) models.Badge {
	switch {
	case totalBooksDonated >= p.Gold:
		return models.BadgeGold
	case totalBooksDonated >= p.Silver:
		return models.BadgeSilver
	case totalBooksDonated >= p.Bronze:
		return models.BadgeBronze
	}
	return models.BadgeNone
}

// CreditDonor adds donated books to the user's lifetime total and recomputes the badge.
// The user is left untouched when the total would outgrow the stored counter.
func (p BadgePolicy) CreditDonor(user *models.User, books int, now time.Time) error {
	if books <= 0 {
		return nil
	}
	if user.TotalBooksDonated > maxCounter-books {
		return InvalidOperation("donor total cannot grow by %d more books", books)
	}
	user.TotalBooksDonated += books
	user.Badge = p.BadgeFor(user.TotalBooksDonated)
	user.UpdatedAt = now
	return nil
}
