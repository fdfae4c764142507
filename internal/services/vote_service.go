package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/qa-board-api/internal/constants"
	"github.com/yukikurage/qa-board-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidVote       = errors.New("vote must be +1 or -1")
	ErrInvalidAnswerID   = errors.New("invalid answer id supplied")
	ErrNotQuestionAuthor = errors.New("only the question author can accept an answer")
)

// VoteService applies vote deltas and accepted-answer moderation.
type VoteService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
}

// NewVoteService creates a new VoteService
func NewVoteService(questionRepo repository.QuestionRepository, answerRepo repository.AnswerRepository) *VoteService {
	return &VoteService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
	}
}

// AdjustQuestionScore moves a question's score by one vote.
func (s *VoteService) AdjustQuestionScore(id uint64, delta int) error {
	if delta != constants.Upvote && delta != constants.Downvote {
		return ErrInvalidVote
	}

	if err := s.questionRepo.AdjustScore(id, delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidQuestionID
		}
		return fmt.Errorf("failed to adjust question score: %w", err)
	}

	return nil
}

// AdjustAnswerScore moves an answer's score by one vote.
func (s *VoteService) AdjustAnswerScore(id uint64, delta int) error {
	if delta != constants.Upvote && delta != constants.Downvote {
		return ErrInvalidVote
	}

	if err := s.answerRepo.AdjustScore(id, delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidAnswerID
		}
		return fmt.Errorf("failed to adjust answer score: %w", err)
	}

	return nil
}

// AcceptAnswer marks an answer as the chosen solution. Only the author of the
// owning question may accept, and any previously accepted sibling is cleared
// so a question never carries two accepted answers.
func (s *VoteService) AcceptAnswer(answerID, actorID uint64) error {
	answer, err := s.answerRepo.FindByID(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidAnswerID
		}
		return fmt.Errorf("failed to find answer: %w", err)
	}

	question, err := s.questionRepo.FindByID(answer.QuestionID)
	if err != nil {
		return fmt.Errorf("failed to find question: %w", err)
	}

	if question.AuthorID != actorID {
		return ErrNotQuestionAuthor
	}

	if err := s.answerRepo.Accept(answerID); err != nil {
		return fmt.Errorf("failed to accept answer: %w", err)
	}

	return nil
}
