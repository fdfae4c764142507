package models

import "time"

type Question struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	AuthorID  uint64    `gorm:"not null" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`

	// Relations
	Author      User            `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Answers     []Answer        `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
	Assignments []TagAssignment `gorm:"foreignKey:QuestionID" json:"-"`
}
