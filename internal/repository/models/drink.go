package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Ingredient is the stored JSON form of one recipe layer.
type Ingredient struct {
	Color string `json:"color"`
	Name  string `json:"name"`
	Parts int    `json:"parts"`
}

// Recipe is stored as a JSON array in a text column.
type Recipe []Ingredient

// Value implements the driver.Valuer interface
func (r Recipe) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (r *Recipe) Scan(value interface{}) error {
	if value == nil {
		*r = Recipe{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("Recipe Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(raw) == 0 || string(raw) == "null" {
		*r = Recipe{}
		return nil
	}
	return json.Unmarshal(raw, r)
}

// Drink is the gorm model of the drinks table.
type Drink struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Title  string `gorm:"size:80;not null;uniqueIndex"`
	Recipe Recipe `gorm:"type:text;not null"`
}

func (Drink) TableName() string {
	return "drinks"
}
