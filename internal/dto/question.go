package dto

import (
	"time"

	"github.com/yukikurage/qa-board-api/internal/models"
	"github.com/yukikurage/qa-board-api/internal/services"
	"github.com/yukikurage/qa-board-api/internal/utils"
)

// UserDTO is the session identity exposed by the API: id and username, never
// any credential material.
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// TagDTO represents a tag in API responses
type TagDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// QuestionDTO represents a question with its aggregated display data
type QuestionDTO struct {
	ID         uint64    `json:"id"`
	Author     *UserDTO  `json:"author,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	Score      int       `json:"score"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Tags       []TagDTO  `json:"tags"`
	NumAnswers int64     `json:"num_answers"`
	Answered   bool      `json:"answered"`
}

// QuestionListResponse represents a paginated list of questions
type QuestionListResponse struct {
	Questions  []QuestionDTO            `json:"questions"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToTagDTO converts a Tag model to TagDTO
func ToTagDTO(tag models.Tag) TagDTO {
	return TagDTO{
		ID:          tag.ID,
		Name:        tag.Name,
		Description: tag.Description,
	}
}

// ToTagDTOs converts a slice of tags
func ToTagDTOs(tags []models.Tag) []TagDTO {
	dtos := make([]TagDTO, len(tags))
	for i, tag := range tags {
		dtos[i] = ToTagDTO(tag)
	}
	return dtos
}

// ToQuestionDTO converts a question view to QuestionDTO
func ToQuestionDTO(view services.QuestionView) QuestionDTO {
	dto := QuestionDTO{
		ID:         view.Question.ID,
		CreatedAt:  view.Question.CreatedAt,
		Score:      view.Question.Score,
		Title:      view.Question.Title,
		Body:       view.Question.Body,
		Tags:       ToTagDTOs(view.Tags),
		NumAnswers: view.NumAnswers,
		Answered:   view.Answered,
	}

	// Include author if preloaded
	if view.Question.Author.ID != 0 {
		author := ToUserDTO(view.Question.Author)
		dto.Author = &author
	}

	return dto
}

// ToQuestionListResponse converts question views to a paginated response
func ToQuestionListResponse(views []services.QuestionView, params utils.PaginationParams, total int64) QuestionListResponse {
	questions := make([]QuestionDTO, len(views))
	for i, view := range views {
		questions[i] = ToQuestionDTO(view)
	}

	return QuestionListResponse{
		Questions: questions,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
