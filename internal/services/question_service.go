package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/qa-board-api/internal/models"
	"github.com/yukikurage/qa-board-api/internal/repository"
	"github.com/yukikurage/qa-board-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound  = errors.New("this question does not exist")
	ErrTitleRequired     = errors.New("title is required")
	ErrBodyRequired      = errors.New("body is required")
	ErrInvalidTagID      = errors.New("invalid tag id supplied")
	ErrInvalidQuestionID = errors.New("invalid question id supplied")
)

// QuestionService handles question and answer content plus the read-time
// aggregation into view objects.
type QuestionService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(questionRepo repository.QuestionRepository, answerRepo repository.AnswerRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

// QuestionView is a question annotated with everything the board needs to
// display it: resolved tags, answer count and whether an accepted answer
// exists. It is computed on every read and never stored.
type QuestionView struct {
	Question   models.Question
	Tags       []models.Tag
	NumAnswers int64
	Answered   bool
}

// AskInput represents input for creating a question
type AskInput struct {
	AuthorID uint64
	Title    string
	Body     string
	TagIDs   []uint64
}

// Ask creates a question together with its tag assignments and returns the new
// question's id for immediate use by the caller.
func (s *QuestionService) Ask(input AskInput) (uint64, error) {
	if input.Title == "" {
		return 0, ErrTitleRequired
	}
	if input.Body == "" {
		return 0, ErrBodyRequired
	}

	question := &models.Question{
		AuthorID: input.AuthorID,
		Title:    input.Title,
		Body:     input.Body,
	}

	if err := s.questionRepo.CreateWithTags(question, uniqueUint64(input.TagIDs)); err != nil {
		if errors.Is(err, repository.ErrUnknownTag) {
			return 0, ErrInvalidTagID
		}
		return 0, fmt.Errorf("failed to create question: %w", err)
	}

	return question.ID, nil
}

// AnswerInput represents input for answering a question
type AnswerInput struct {
	AuthorID   uint64
	QuestionID uint64
	Body       string
}

// Answer posts an answer to an existing question. Nothing is persisted when
// the question does not exist.
func (s *QuestionService) Answer(input AnswerInput) error {
	if input.Body == "" {
		return ErrBodyRequired
	}

	if _, err := s.questionRepo.FindByID(input.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidQuestionID
		}
		return fmt.Errorf("failed to find question: %w", err)
	}

	answer := &models.Answer{
		AuthorID:   input.AuthorID,
		QuestionID: input.QuestionID,
		Body:       input.Body,
	}

	if err := s.answerRepo.Create(answer); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrInvalidQuestionID
		}
		return fmt.Errorf("failed to create answer: %w", err)
	}

	return nil
}

// GetQuestion returns a single question as a view.
func (s *QuestionService) GetQuestion(id uint64) (*QuestionView, error) {
	question, err := s.questionRepo.FindByID(id, "Author")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to find question: %w", err)
	}

	return s.toView(*question)
}

// AnswersFor returns a question's answers, highest-voted first.
func (s *QuestionService) AnswersFor(questionID uint64) ([]models.Answer, error) {
	answers, err := s.answerRepo.ListByQuestion(questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}
	return answers, nil
}

// ListNewest returns question views ordered newest first.
func (s *QuestionService) ListNewest(pagination utils.PaginationParams) ([]QuestionView, int64, error) {
	return s.list(repository.QuestionFilter{Pagination: pagination})
}

// ListByTags returns question views carrying at least one of the given tag
// names, newest first. A question matching several names appears once.
func (s *QuestionService) ListByTags(names []string, pagination utils.PaginationParams) ([]QuestionView, int64, error) {
	return s.list(repository.QuestionFilter{
		TagNames:   names,
		Pagination: pagination,
	})
}

func (s *QuestionService) list(filter repository.QuestionFilter) ([]QuestionView, int64, error) {
	questions, total, err := s.questionRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}

	views, err := s.toViews(questions)
	if err != nil {
		return nil, 0, err
	}

	return views, total, nil
}

// toView annotates a question with its tags, answer count and solved status.
// Three dependent reads per question; lists stay sequential, which is fine at
// board scale.
func (s *QuestionService) toView(question models.Question) (*QuestionView, error) {
	tags, err := s.questionRepo.TagsFor(question.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}

	numAnswers, err := s.answerRepo.CountByQuestion(question.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count answers: %w", err)
	}

	answered, err := s.answerRepo.HasAccepted(question.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check accepted answers: %w", err)
	}

	return &QuestionView{
		Question:   question,
		Tags:       tags,
		NumAnswers: numAnswers,
		Answered:   answered,
	}, nil
}

func (s *QuestionService) toViews(questions []models.Question) ([]QuestionView, error) {
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		view, err := s.toView(q)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// uniqueUint64 removes duplicate values from a slice of uint64
func uniqueUint64(values []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(values))
	result := make([]uint64, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
