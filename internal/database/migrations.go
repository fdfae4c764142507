package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes adds the query-critical indexes that AutoMigrate does not create
// from the model definitions alone.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Question listing is always ordered by creation time
		{"questions", "idx_questions_created_at", "created_at"},
		{"questions", "idx_questions_author_id", "author_id"},

		// Answers are fetched per question and ordered by score
		{"answers", "idx_answers_question_id", "question_id"},
		{"answers", "idx_answers_question_score", "question_id, score"},

		// Tag filter joins
		{"tag_assignments", "idx_tag_assignments_tag_id", "tag_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
