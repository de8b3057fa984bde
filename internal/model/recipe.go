package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// IngredientList is a custom type for storing ingredient groups as JSON columns.
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// ApplianceList is a custom type for storing required appliances as a JSON column.
type ApplianceList []Appliance

// Value implements the driver.Valuer interface
func (l ApplianceList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *ApplianceList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// StringList is a custom type for storing instruction steps as a JSON column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, dest)
}

// Recipe is a catalog entry. RequiredIngredients and RequiredAppliances gate
// feasibility; OptionalIngredients never do. Steps are opaque text, shown to
// the user but not interpreted anywhere.
type Recipe struct {
	ID                  string         `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt           time.Time      `json:"-"`
	UpdatedAt           time.Time      `json:"-"`
	Name                string         `gorm:"size:255;not null" json:"name"`
	RequiredIngredients IngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"required_ingredients"`
	OptionalIngredients IngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"optional_ingredients"`
	RequiredAppliances  ApplianceList  `gorm:"type:jsonb;not null;default:'[]'" json:"required_appliances"`
	Steps               StringList     `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
}
