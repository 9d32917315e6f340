package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Plan represents a user's subscription plan
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

func (p Plan) String() string {
	return string(p)
}

// IsPro reports whether the plan unlocks gated features
func (p Plan) IsPro() bool {
	return p == PlanPro
}

func (p Plan) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

func (p *Plan) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*p = Plan(str)
	return nil
}

func (p Plan) Value() (driver.Value, error) {
	return string(p), nil
}

func (p *Plan) Scan(value interface{}) error {
	if value == nil {
		*p = PlanFree
		return nil
	}
	switch v := value.(type) {
	case string:
		*p = Plan(v)
	case []byte:
		*p = Plan(string(v))
	}
	return nil
}
