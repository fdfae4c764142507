package models

type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`

	// Relations
	Questions []Question `gorm:"foreignKey:AuthorID" json:"-"`
	Answers   []Answer   `gorm:"foreignKey:AuthorID" json:"-"`
}
