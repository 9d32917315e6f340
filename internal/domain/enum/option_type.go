package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OptionType represents the contract type of a listed option
type OptionType string

const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

func (t OptionType) String() string {
	return string(t)
}

func (t OptionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *OptionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = OptionType(str)
	return nil
}

func (t OptionType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *OptionType) Scan(value interface{}) error {
	if value == nil {
		*t = OptionTypeCall
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = OptionType(v)
	case []byte:
		*t = OptionType(string(v))
	}
	return nil
}
