package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that tolerates the mixed string/number JSON the
// mobile clients send (e.g. "breakfast_calories": "320" vs 320). It parses to
// a single canonical numeric type at the model boundary; null and empty
// strings decode to 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return fmt.Errorf("flexfloat: cannot parse %q as number", str)
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// Value / Scan let gorm store the type as a plain float column.
func (f FlexFloat) Value() (driver.Value, error) {
	return float64(f), nil
}

func (f *FlexFloat) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = 0
	case float64:
		*f = FlexFloat(v)
	case int64:
		*f = FlexFloat(v)
	case []byte:
		parsed, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return err
		}
		*f = FlexFloat(parsed)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*f = FlexFloat(parsed)
	default:
		return fmt.Errorf("flexfloat: unsupported scan type %T", src)
	}
	return nil
}
