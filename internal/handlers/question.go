package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/qa-board-api/internal/dto"
	apierrors "github.com/yukikurage/qa-board-api/internal/errors"
	"github.com/yukikurage/qa-board-api/internal/middleware"
	"github.com/yukikurage/qa-board-api/internal/services"
	"github.com/yukikurage/qa-board-api/internal/utils"
)

// QuestionHandler coordinates question-related HTTP handlers.
type QuestionHandler struct {
	questionService *services.QuestionService
	tagService      *services.TagService
	voteService     *services.VoteService
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(questionService *services.QuestionService, tagService *services.TagService, voteService *services.VoteService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		tagService:      tagService,
		voteService:     voteService,
	}
}

// ListQuestions returns questions newest first, optionally filtered by a
// comma-separated tags query parameter.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var (
		views []services.QuestionView
		total int64
		err   error
	)

	if raw := c.Query("tags"); raw != "" {
		names := strings.Split(raw, ",")
		// Resolve before filtering so an unknown name fails loudly instead
		// of silently narrowing the result.
		if _, err := h.tagService.ResolveByNames(names); err != nil {
			respondQuestionError(c, err)
			return
		}
		views, total, err = h.questionService.ListByTags(names, params)
	} else {
		views, total, err = h.questionService.ListNewest(params)
	}

	if err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuestionListResponse(views, params, total))
}

// GetThread returns a question view together with its ordered answers.
func (h *QuestionHandler) GetThread(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid question ID")
		return
	}

	view, err := h.questionService.GetQuestion(id)
	if err != nil {
		respondQuestionError(c, err)
		return
	}

	answers, err := h.questionService.AnswersFor(id)
	if err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToThreadDTO(dto.ToQuestionDTO(*view), answers))
}

// Ask creates a new question with tag assignments.
func (h *QuestionHandler) Ask(c *gin.Context) {
	type AskRequest struct {
		Title  string   `json:"title" binding:"required"`
		Body   string   `json:"body" binding:"required"`
		TagIDs []uint64 `json:"tag_ids"`
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	questionID, err := h.questionService.Ask(services.AskInput{
		AuthorID: userID,
		Title:    req.Title,
		Body:     req.Body,
		TagIDs:   req.TagIDs,
	})
	if err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": questionID})
}

// VoteQuestion applies one up or down vote to a question.
func (h *QuestionHandler) VoteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid question ID")
		return
	}

	delta, ok := bindVoteDelta(c)
	if !ok {
		return
	}

	if err := h.voteService.AdjustQuestionScore(id, delta); err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded"})
}

// bindVoteDelta reads the vote direction from the request body.
func bindVoteDelta(c *gin.Context) (int, bool) {
	type VoteRequest struct {
		Direction string `json:"direction" binding:"required,oneof=up down"`
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return 0, false
	}

	if req.Direction == "down" {
		return -1, true
	}
	return 1, true
}

func respondQuestionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrBodyRequired),
		errors.Is(err, services.ErrInvalidTag),
		errors.Is(err, services.ErrInvalidTagID),
		errors.Is(err, services.ErrInvalidQuestionID),
		errors.Is(err, services.ErrInvalidAnswerID),
		errors.Is(err, services.ErrInvalidVote):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrQuestionNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotQuestionAuthor):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
