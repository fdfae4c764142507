package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/qa-board-api/internal/dto"
	apierrors "github.com/yukikurage/qa-board-api/internal/errors"
	"github.com/yukikurage/qa-board-api/internal/services"
)

// TagHandler coordinates tag-related HTTP handlers.
type TagHandler struct {
	tagService *services.TagService
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// ListTags returns every tag on the board.
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.ListAll()
	if err != nil {
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": dto.ToTagDTOs(tags)})
}
