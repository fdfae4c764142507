package models

import "time"

type Answer struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	AuthorID   uint64    `gorm:"not null" json:"author_id"`
	QuestionID uint64    `gorm:"not null" json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
	Score      int       `gorm:"not null;default:0" json:"score"`
	Accepted   bool      `gorm:"not null;default:false" json:"accepted"`
	Body       string    `gorm:"type:text;not null" json:"body"`

	// Relations
	Author   User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Question Question `gorm:"foreignKey:QuestionID" json:"-"`
}
