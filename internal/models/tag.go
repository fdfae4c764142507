package models

// Tag is a topic a question can be filed under. Tags are seeded by an
// administrator; the application only ever reads them.
type Tag struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
