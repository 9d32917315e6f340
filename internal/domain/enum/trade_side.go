package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TradeSide represents the opening side of a trade
type TradeSide string

const (
	TradeSideBuy  TradeSide = "buy"
	TradeSideSell TradeSide = "sell"
)

func (s TradeSide) String() string {
	return string(s)
}

// IsLong reports whether the position profits when price rises
func (s TradeSide) IsLong() bool {
	return s == TradeSideBuy
}

func (s TradeSide) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *TradeSide) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = TradeSide(str)
	return nil
}

func (s TradeSide) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *TradeSide) Scan(value interface{}) error {
	if value == nil {
		*s = TradeSideBuy
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = TradeSide(v)
	case []byte:
		*s = TradeSide(string(v))
	}
	return nil
}
