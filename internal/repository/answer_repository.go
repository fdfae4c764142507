package repository

import (
	"github.com/yukikurage/qa-board-api/internal/models"
	"gorm.io/gorm"
)

// GormAnswerRepository is a GORM implementation of AnswerRepository
type GormAnswerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a new AnswerRepository
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &GormAnswerRepository{db: db}
}

// Create creates a new answer
func (r *GormAnswerRepository) Create(answer *models.Answer) error {
	return r.db.Create(answer).Error
}

// FindByID finds an answer by ID
func (r *GormAnswerRepository) FindByID(id uint64) (*models.Answer, error) {
	var answer models.Answer
	if err := r.db.First(&answer, id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

// ListByQuestion returns a question's answers ordered by score descending,
// with insertion order as the stable tie-break.
func (r *GormAnswerRepository) ListByQuestion(questionID uint64) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.Where("question_id = ?", questionID).
		Order("score DESC, id ASC").
		Preload("Author").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

// CountByQuestion returns the number of answers a question has
func (r *GormAnswerRepository) CountByQuestion(questionID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Answer{}).
		Where("question_id = ?", questionID).
		Count(&count).Error
	return count, err
}

// HasAccepted reports whether any answer of the question is accepted
func (r *GormAnswerRepository) HasAccepted(questionID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Answer{}).
		Where("question_id = ? AND accepted = ?", questionID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AdjustScore applies a vote delta in a single statement so concurrent votes
// never overwrite each other.
func (r *GormAnswerRepository) AdjustScore(id uint64, delta int) error {
	res := r.db.Model(&models.Answer{}).
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

// Accept marks an answer accepted. Siblings on the same question are cleared
// inside the same transaction, keeping at most one accepted answer per
// question.
func (r *GormAnswerRepository) Accept(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var answer models.Answer
		if err := tx.First(&answer, id).Error; err != nil {
			return err
		}

		err := tx.Model(&models.Answer{}).
			Where("question_id = ? AND accepted = ?", answer.QuestionID, true).
			UpdateColumn("accepted", false).Error
		if err != nil {
			return err
		}

		return tx.Model(&models.Answer{}).
			Where("id = ?", id).
			UpdateColumn("accepted", true).Error
	})
}
