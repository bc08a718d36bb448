package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountKind represents how a discount value is interpreted
type DiscountKind int

const (
	// DiscountKindPercentage removes value percent of the running total
	DiscountKindPercentage DiscountKind = 0
	// DiscountKindFixed removes a fixed currency amount
	DiscountKindFixed DiscountKind = 1
)

func (k DiscountKind) String() string {
	switch k {
	case DiscountKindPercentage:
		return "Percentage"
	case DiscountKindFixed:
		return "Fixed"
	}
	return "Unknown"
}

func (k DiscountKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *DiscountKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = DiscountKind(i)
		return nil
	}
	switch str {
	case "Percentage":
		*k = DiscountKindPercentage
	case "Fixed":
		*k = DiscountKindFixed
	}
	return nil
}

func (k DiscountKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *DiscountKind) Scan(value interface{}) error {
	if value == nil {
		*k = DiscountKindPercentage
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = DiscountKind(v)
	case int:
		*k = DiscountKind(v)
	}
	return nil
}
