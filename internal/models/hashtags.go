package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// HashtagList stores an ordered list of hashtags as a JSON text column so
// the same model works on both PostgreSQL and SQLite.
type HashtagList []string

// Value implements driver.Valuer.
func (h HashtagList) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(h))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (h *HashtagList) Scan(src interface{}) error {
	if src == nil {
		*h = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into HashtagList", src)
	}
	if len(data) == 0 {
		*h = nil
		return nil
	}
	return json.Unmarshal(data, (*[]string)(h))
}
