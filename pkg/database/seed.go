package database

import (
	"gorm.io/gorm"

	"github.com/agnijaravdo/discord-bot/pkg/models"
)

// SeedInitialData inserts the starter templates and sprints when the
// tables are empty, so a fresh deployment can congratulate immediately.
// Safe to call on every boot.
func SeedInitialData(db *gorm.DB) error {
	var templateCount int64
	if err := db.Model(&models.Template{}).Count(&templateCount).Error; err != nil {
		return err
	}
	if templateCount == 0 {
		templates := []models.Template{
			{Message: "You nailed it! 💪"},
			{Message: "You did it! I knew you could. 🤗"},
			{Message: "Way to go! 🎉"},
			{Message: "Congratulations! You did it!"},
			{Message: "Oh my gosh, that's excellent! 🤩"},
			{Message: "Woo-hoo!! You are amazing! 🚀"},
		}
		if err := db.Create(&templates).Error; err != nil {
			return err
		}
	}

	var sprintCount int64
	if err := db.Model(&models.Sprint{}).Count(&sprintCount).Error; err != nil {
		return err
	}
	if sprintCount == 0 {
		sprints := []models.Sprint{
			{Code: "WD-1.1", Name: "First Steps Into Programming with Python"},
			{Code: "WD-1.2", Name: "Intermediate Programming with Python"},
			{Code: "WD-1.3", Name: "Object Oriented Programming"},
			{Code: "WD-1.4", Name: "Computer Science Fundamentals"},
			{Code: "WD-2.1", Name: "HTML and CSS - the Foundation of Web Pages"},
		}
		if err := db.Create(&sprints).Error; err != nil {
			return err
		}
	}
	return nil
}
