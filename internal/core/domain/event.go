package domain

import (
	"strings"
	"time"
)

// EventCodeLength is the number of letters in a join code.
const EventCodeLength = 8

// Event is a shared occasion that participants join and expenses are recorded against.
type Event struct {
	EventID   string    `json:"eventID"`
	Code      string    `json:"code"` // 8 uppercase ASCII letters, unique
	Title     string    `json:"title"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizeEventCode trims and uppercases a user-entered code.
func NormalizeEventCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValidEventCode reports whether code is exactly EventCodeLength uppercase ASCII letters.
func IsValidEventCode(code string) bool {
	if len(code) != EventCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
