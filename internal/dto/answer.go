package dto

import (
	"time"

	"github.com/yukikurage/qa-board-api/internal/models"
)

// AnswerDTO represents an answer in API responses
type AnswerDTO struct {
	ID         uint64    `json:"id"`
	Author     *UserDTO  `json:"author,omitempty"`
	QuestionID uint64    `json:"question_id"`
	CreatedAt  time.Time `json:"created_at"`
	Score      int       `json:"score"`
	Accepted   bool      `json:"accepted"`
	Body       string    `json:"body"`
}

// ThreadDTO represents a question together with its ordered answers
type ThreadDTO struct {
	Question   QuestionDTO `json:"question"`
	NumAnswers int         `json:"num_answers"`
	Answers    []AnswerDTO `json:"answers"`
}

// ToAnswerDTO converts an Answer model to AnswerDTO
func ToAnswerDTO(answer models.Answer) AnswerDTO {
	dto := AnswerDTO{
		ID:         answer.ID,
		QuestionID: answer.QuestionID,
		CreatedAt:  answer.CreatedAt,
		Score:      answer.Score,
		Accepted:   answer.Accepted,
		Body:       answer.Body,
	}

	// Include author if preloaded
	if answer.Author.ID != 0 {
		author := ToUserDTO(answer.Author)
		dto.Author = &author
	}

	return dto
}

// ToThreadDTO converts a question view and its answers to a ThreadDTO
func ToThreadDTO(question QuestionDTO, answers []models.Answer) ThreadDTO {
	answerDTOs := make([]AnswerDTO, len(answers))
	for i, answer := range answers {
		answerDTOs[i] = ToAnswerDTO(answer)
	}

	return ThreadDTO{
		Question:   question,
		NumAnswers: len(answerDTOs),
		Answers:    answerDTOs,
	}
}
