package repository

import (
	"errors"
	"fmt"

	"github.com/yukikurage/qa-board-api/internal/database"
	"github.com/yukikurage/qa-board-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrUnknownTag is returned when a tag id inside the question-creation
	// transaction does not resolve to an existing tag.
	ErrUnknownTag = errors.New("question repository: unknown tag id")
)

// GormQuestionRepository is a GORM implementation of QuestionRepository
type GormQuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &GormQuestionRepository{db: db}
}

// CreateWithTags creates a question and its tag assignments atomically. The
// whole unit rolls back if any tag id is unknown, so a half-tagged question is
// never visible to readers. The generated id is taken from the insert itself,
// never re-selected.
func (r *GormQuestionRepository) CreateWithTags(question *models.Question, tagIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(tagIDs) > 0 {
			var count int64
			if err := tx.Model(&models.Tag{}).Where("id IN ?", tagIDs).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to verify tags: %w", err)
			}
			if int(count) != len(tagIDs) {
				return ErrUnknownTag
			}
		}

		if err := tx.Create(question).Error; err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}

		if len(tagIDs) == 0 {
			return nil
		}

		assignments := make([]models.TagAssignment, len(tagIDs))
		for i, tagID := range tagIDs {
			assignments[i] = models.TagAssignment{
				QuestionID: question.ID,
				TagID:      tagID,
			}
		}

		if err := tx.Create(&assignments).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return ErrUnknownTag
			}
			return fmt.Errorf("failed to assign tags: %w", err)
		}

		return nil
	})
}

// FindByID finds a question by ID with optional preloading
func (r *GormQuestionRepository) FindByID(id uint64, preload ...string) (*models.Question, error) {
	var question models.Question
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&question, id).Error; err != nil {
		return nil, err
	}

	return &question, nil
}

// List retrieves questions ordered by creation time, newest first. When tag
// names are given the result is restricted to questions carrying at least one
// of them; the EXISTS filter keeps a multi-tag match to a single row.
func (r *GormQuestionRepository) List(filter QuestionFilter) ([]models.Question, int64, error) {
	var questions []models.Question

	query := r.db.Model(&models.Question{})

	if len(filter.TagNames) > 0 {
		assignmentSubQuery := r.db.Model(&models.TagAssignment{}).
			Select("1").
			Joins("JOIN tags ON tags.id = tag_assignments.tag_id").
			Where("tag_assignments.question_id = questions.id").
			Where("tags.name IN ?", filter.TagNames)
		query = query.Where("EXISTS (?)", assignmentSubQuery)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("questions.created_at DESC, questions.id DESC").
		Scopes(database.Paginate(filter.Pagination)).
		Preload("Author").
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}

	return questions, total, nil
}

// TagsFor returns the tags assigned to a question
func (r *GormQuestionRepository) TagsFor(questionID uint64) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Model(&models.Tag{}).
		Joins("JOIN tag_assignments ON tag_assignments.tag_id = tags.id").
		Where("tag_assignments.question_id = ?", questionID).
		Order("tags.id ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// AdjustScore applies a vote delta in a single statement so concurrent votes
// never overwrite each other.
func (r *GormQuestionRepository) AdjustScore(id uint64, delta int) error {
	res := r.db.Model(&models.Question{}).
		Where("id = ?", id).
		UpdateColumn("score", gorm.Expr("score + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
