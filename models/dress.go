// models/dress.go
package models

// Dress 是目录中的一件裙子；id 形如 DR-001
type Dress struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

func (d Dress) RecordID() string { return d.ID }

// DressPatch 只包含要修改的字段，nil 表示不变
type DressPatch struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Description *string  `json:"description,omitempty"`
}
