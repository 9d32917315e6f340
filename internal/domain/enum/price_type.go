package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PriceType represents how an order intent prices its fill
type PriceType string

const (
	PriceTypeLimit  PriceType = "limit"
	PriceTypeMarket PriceType = "market"
)

func (t PriceType) String() string {
	return string(t)
}

func (t PriceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *PriceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = PriceType(str)
	return nil
}

func (t PriceType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *PriceType) Scan(value interface{}) error {
	if value == nil {
		*t = PriceTypeMarket
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = PriceType(v)
	case []byte:
		*t = PriceType(string(v))
	}
	return nil
}
