package service

import (
	"time"

	"github.com/pantrychef/backend/internal/model"
)

// DefaultExpiringThresholdDays is the window, in days, within which an
// ingredient counts as expiring soon.
const DefaultExpiringThresholdDays = 5

const expirationDateLayout = "2006-01-02"

// DaysUntilExpirationAt returns the signed number of calendar days between now
// and the ingredient's expiration date. Both sides are truncated to midnight,
// so a same-day expiration yields 0 and an already-expired ingredient yields a
// negative count. The second return value is false when the ingredient has no
// expiration date or the date cannot be parsed.
func DaysUntilExpirationAt(ing model.Ingredient, now time.Time) (int, bool) {
	if ing.ExpirationDate == "" {
		return 0, false
	}

	parsed, err := time.Parse(expirationDateLayout, ing.ExpirationDate)
	if err != nil {
		// A malformed date is treated the same as no date at all.
		return 0, false
	}

	// Compare calendar dates only. Re-anchoring both midnights in UTC keeps
	// the difference an exact multiple of 24h regardless of DST.
	exp := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(exp.Sub(today).Hours() / 24)
	return days, true
}

// DaysUntilExpiration is DaysUntilExpirationAt evaluated against the wall clock.
func DaysUntilExpiration(ing model.Ingredient) (int, bool) {
	return DaysUntilExpirationAt(ing, time.Now())
}

// IsExpiringSoonAt reports whether the ingredient expires within thresholdDays
// days from now, inclusive on both ends. Already-expired ingredients are not
// "expiring soon".
func IsExpiringSoonAt(ing model.Ingredient, thresholdDays int, now time.Time) bool {
	days, ok := DaysUntilExpirationAt(ing, now)
	if !ok {
		return false
	}
	return days >= 0 && days <= thresholdDays
}

// IsExpiringSoon applies the default threshold against the wall clock.
func IsExpiringSoon(ing model.Ingredient) bool {
	return IsExpiringSoonAt(ing, DefaultExpiringThresholdDays, time.Now())
}

// IsLowStock reports whether an ingredient is nearly used up.
func IsLowStock(ing model.Ingredient) bool {
	return ing.Quantity <= 1
}
