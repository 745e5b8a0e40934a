package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Array is a slice stored as a JSON column.
type Array[T any] []T

func (a *Array[T]) Scan(obj any) error {
	switch t := obj.(type) {
	case string:
		return json.Unmarshal([]byte(t), a)
	case []byte:
		return json.Unmarshal(t, a)
	}

	return fmt.Errorf("cannot scan invalid data type %T", obj)
}

func (a Array[T]) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// StringArrayMap is a map from string keys to string lists stored as a JSON
// column. It backs the per-airdrop completed task lists of a user.
type StringArrayMap map[string][]string

func (m *StringArrayMap) Scan(value any) error {
	switch t := value.(type) {
	case string:
		return json.Unmarshal([]byte(t), m)
	case []byte:
		return json.Unmarshal(t, m)
	default:
		return fmt.Errorf("cannot scan invalid data type %T", value)
	}
}

func (m StringArrayMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}
