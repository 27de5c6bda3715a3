package models

type Sprint struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:20;not null;uniqueIndex" json:"code"`
	Name string `gorm:"size:100;not null" json:"name"`
}
