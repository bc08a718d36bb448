package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// CartStatus represents the lifecycle state of a cart
type CartStatus int

const (
	CartStatusDraft     CartStatus = 0
	CartStatusPaid      CartStatus = 1
	CartStatusConfirmed CartStatus = 2
)

// cartTransitions defines the only legal forward transitions. Confirmed is
// terminal; no backward transition exists.
var cartTransitions = map[CartStatus][]CartStatus{
	CartStatusDraft:     {CartStatusPaid},
	CartStatusPaid:      {CartStatusConfirmed},
	CartStatusConfirmed: {},
}

// CanTransitionTo reports whether moving from s to target is a legal transition
func (s CartStatus) CanTransitionTo(target CartStatus) bool {
	for _, allowed := range cartTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsMutable reports whether cart contents may still be changed
func (s CartStatus) IsMutable() bool {
	return s == CartStatusDraft
}

func (s CartStatus) String() string {
	switch s {
	case CartStatusDraft:
		return "Draft"
	case CartStatusPaid:
		return "Paid"
	case CartStatusConfirmed:
		return "Confirmed"
	}
	return "Unknown"
}

// ParseCartStatus parses a case-insensitive status name.
// Returns false for anything that is not a known status.
func ParseCartStatus(str string) (CartStatus, bool) {
	switch strings.ToLower(str) {
	case "draft":
		return CartStatusDraft, true
	case "paid":
		return CartStatusPaid, true
	case "confirmed":
		return CartStatusConfirmed, true
	}
	return CartStatusDraft, false
}

func (s CartStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *CartStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = CartStatus(i)
		return nil
	}
	switch str {
	case "Draft":
		*s = CartStatusDraft
	case "Paid":
		*s = CartStatusPaid
	case "Confirmed":
		*s = CartStatusConfirmed
	}
	return nil
}

func (s CartStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *CartStatus) Scan(value interface{}) error {
	if value == nil {
		*s = CartStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = CartStatus(v)
	case int:
		*s = CartStatus(v)
	}
	return nil
}
