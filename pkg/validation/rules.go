package validation

import (
	"regexp"
	"time"

	"github.com/savioruz/culturepay/pkg/constant"
)

var (
	nonDigit     = regexp.MustCompile(`\D`)
	indianMobile = regexp.MustCompile(`^[6-9]\d{9}$`)
	liteEmail    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidatePhoneNumber accepts a 10 digit Indian mobile number once separators are stripped.
func ValidatePhoneNumber(phone string) bool {
	return indianMobile.MatchString(nonDigit.ReplaceAllString(phone, ""))
}

func ValidateEmail(email string) bool {
	return liteEmail.MatchString(email)
}

// ValidateAmount applies the donation bounds in rupees, inclusive on both ends.
func ValidateAmount(amount float64) bool {
	return amount >= constant.DonationMinAmount && amount <= constant.DonationMaxAmount
}

// IsFutureDate compares instants, so a date earlier today is already in the past.
func IsFutureDate(date, now time.Time) bool {
	return date.After(now)
}
