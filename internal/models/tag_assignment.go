package models

// TagAssignment links one question to one tag. Rows are created only inside
// the question-creation transaction and are never mutated afterwards.
type TagAssignment struct {
	QuestionID uint64 `gorm:"primarykey" json:"question_id"`
	TagID      uint64 `gorm:"primarykey" json:"tag_id"`

	// Relations
	Question Question `gorm:"foreignKey:QuestionID" json:"-"`
	Tag      Tag      `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}
