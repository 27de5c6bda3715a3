package models

import "time"

type Message struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;not null;index" json:"username"`
	SprintID     uint      `gorm:"not null;index" json:"sprintId"`
	TemplateID   uint      `gorm:"not null;index" json:"templateId"`
	FinalMessage string    `gorm:"type:text;not null" json:"finalMessage"`
	GifURL       string    `gorm:"type:text;not null" json:"gifUrl"`
	SentAt       time.Time `gorm:"autoCreateTime" json:"sentAt"`

	Sprint   Sprint   `gorm:"foreignKey:SprintID;constraint:OnDelete:CASCADE" json:"-"`
	Template Template `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"-"`
}
