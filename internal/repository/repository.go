package repository

import (
	"github.com/yukikurage/qa-board-api/internal/models"
	"github.com/yukikurage/qa-board-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	// ListAll returns every tag
	ListAll() ([]models.Tag, error)

	// FindByNames returns the tags whose name is in the given set
	FindByNames(names []string) ([]models.Tag, error)
}

// QuestionFilter holds filtering options for listing questions
type QuestionFilter struct {
	// TagNames restricts the result to questions carrying at least one of
	// these tags. A question matching several names still appears once.
	TagNames []string

	Pagination utils.PaginationParams
}

// QuestionRepository defines the interface for question data access
type QuestionRepository interface {
	// CreateWithTags creates a question and its tag assignments within a
	// single transaction
	CreateWithTags(question *models.Question, tagIDs []uint64) error

	// FindByID finds a question by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Question, error)

	// List retrieves questions ordered newest first
	List(filter QuestionFilter) ([]models.Question, int64, error)

	// TagsFor returns the tags assigned to a question
	TagsFor(questionID uint64) ([]models.Tag, error)

	// AdjustScore applies a vote delta as a single statement
	AdjustScore(id uint64, delta int) error
}

// AnswerRepository defines the interface for answer data access
type AnswerRepository interface {
	// Create creates a new answer
	Create(answer *models.Answer) error

	// FindByID finds an answer by ID
	FindByID(id uint64) (*models.Answer, error)

	// ListByQuestion returns a question's answers, highest score first
	ListByQuestion(questionID uint64) ([]models.Answer, error)

	// CountByQuestion returns the number of answers a question has
	CountByQuestion(questionID uint64) (int64, error)

	// HasAccepted reports whether any answer of the question is accepted
	HasAccepted(questionID uint64) (bool, error)

	// AdjustScore applies a vote delta as a single statement
	AdjustScore(id uint64, delta int) error

	// Accept marks an answer accepted and clears its siblings
	Accept(id uint64) error
}
