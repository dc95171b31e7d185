package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FavoriteList is a custom type for storing the favorites array as a JSON column.
type FavoriteList []FavoriteEntry

// Value implements driver.Valuer interface for database storage
func (fl FavoriteList) Value() (driver.Value, error) {
	if fl == nil {
		return nil, nil
	}
	return json.Marshal(fl)
}

// Scan implements sql.Scanner interface for database retrieval
func (fl *FavoriteList) Scan(value interface{}) error {
	if value == nil {
		*fl = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, fl)
	case string:
		return json.Unmarshal([]byte(v), fl)
	default:
		return fmt.Errorf("cannot scan %T into FavoriteList", value)
	}
}

// GormDataType returns the data type for GORM
func (FavoriteList) GormDataType() string {
	return "json"
}

// MarshalJSON implements json.Marshaler interface
func (fl FavoriteList) MarshalJSON() ([]byte, error) {
	if fl == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]FavoriteEntry(fl))
}

// WeekPlan holds seven day-buckets of recipe IDs, stored as a JSON column.
type WeekPlan struct {
	Monday    []string `json:"monday"`
	Tuesday   []string `json:"tuesday"`
	Wednesday []string `json:"wednesday"`
	Thursday  []string `json:"thursday"`
	Friday    []string `json:"friday"`
	Saturday  []string `json:"saturday"`
	Sunday    []string `json:"sunday"`
}

// DayBucket maps a short day name ("mon".."sun") to its bucket.
// The bool reports whether the day name is valid.
func (wp *WeekPlan) DayBucket(day string) (*[]string, bool) {
	switch day {
	case "mon":
		return &wp.Monday, true
	case "tue":
		return &wp.Tuesday, true
	case "wed":
		return &wp.Wednesday, true
	case "thu":
		return &wp.Thursday, true
	case "fri":
		return &wp.Friday, true
	case "sat":
		return &wp.Saturday, true
	case "sun":
		return &wp.Sunday, true
	default:
		return nil, false
	}
}

// Value implements driver.Valuer interface for database storage
func (wp WeekPlan) Value() (driver.Value, error) {
	return json.Marshal(wp)
}

// Scan implements sql.Scanner interface for database retrieval
func (wp *WeekPlan) Scan(value interface{}) error {
	if value == nil {
		*wp = WeekPlan{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, wp)
	case string:
		return json.Unmarshal([]byte(v), wp)
	default:
		return fmt.Errorf("cannot scan %T into WeekPlan", value)
	}
}

// GormDataType returns the data type for GORM
func (WeekPlan) GormDataType() string {
	return "json"
}
