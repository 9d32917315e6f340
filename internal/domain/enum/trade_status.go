package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TradeStatus represents the lifecycle state of a trade
type TradeStatus string

const (
	TradeStatusOpen   TradeStatus = "open"
	TradeStatusClosed TradeStatus = "closed"
)

func (s TradeStatus) String() string {
	return string(s)
}

func (s TradeStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *TradeStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = TradeStatus(str)
	return nil
}

func (s TradeStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *TradeStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TradeStatusOpen
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = TradeStatus(v)
	case []byte:
		*s = TradeStatus(string(v))
	}
	return nil
}
