package models

import (
	"time"
)

// Contact is one submission captured through the public contact form.
// @Description A stored contact form submission
type Contact struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Contact) TableName() string {
	return "contacts"
}

// ContactCreate is the request body accepted by POST /api/contact.
// @Description Payload for submitting the contact form
type ContactCreate struct {
	Name    string `json:"name" binding:"required" example:"Jane Doe"`
	Email   string `json:"email" binding:"required" example:"jane.doe@example.com"`
	Subject string `json:"subject" binding:"required" example:"Freelance inquiry"`
	Message string `json:"message" binding:"required" example:"Hi, I saw your portfolio and would like to talk."`
}
