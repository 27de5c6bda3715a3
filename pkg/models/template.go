package models

type Template struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Message string `gorm:"type:text;not null" json:"message"`
}
