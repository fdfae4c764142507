package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/qa-board-api/internal/errors"
	"github.com/yukikurage/qa-board-api/internal/middleware"
	"github.com/yukikurage/qa-board-api/internal/services"
)

// AnswerHandler coordinates answer-related HTTP handlers.
type AnswerHandler struct {
	questionService *services.QuestionService
	voteService     *services.VoteService
}

// NewAnswerHandler creates a new AnswerHandler
func NewAnswerHandler(questionService *services.QuestionService, voteService *services.VoteService) *AnswerHandler {
	return &AnswerHandler{
		questionService: questionService,
		voteService:     voteService,
	}
}

// Answer posts an answer to a question.
func (h *AnswerHandler) Answer(c *gin.Context) {
	type AnswerRequest struct {
		Body string `json:"body" binding:"required"`
	}

	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid question ID")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	err = h.questionService.Answer(services.AnswerInput{
		AuthorID:   userID,
		QuestionID: questionID,
		Body:       req.Body,
	})
	if err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Answer posted"})
}

// VoteAnswer applies one up or down vote to an answer.
func (h *AnswerHandler) VoteAnswer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid answer ID")
		return
	}

	delta, ok := bindVoteDelta(c)
	if !ok {
		return
	}

	if err := h.voteService.AdjustAnswerScore(id, delta); err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote recorded"})
}

// AcceptAnswer marks an answer as the accepted solution of its question.
func (h *AnswerHandler) AcceptAnswer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid answer ID")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.voteService.AcceptAnswer(id, userID); err != nil {
		respondQuestionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Answer accepted"})
}
