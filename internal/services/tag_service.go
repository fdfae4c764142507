package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/qa-board-api/internal/models"
	"github.com/yukikurage/qa-board-api/internal/repository"
)

var ErrInvalidTag = errors.New("invalid tag")

// TagService exposes the authoritative tag catalog.
type TagService struct {
	tagRepo repository.TagRepository
}

// NewTagService creates a new TagService
func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{
		tagRepo: tagRepo,
	}
}

// ListAll returns every tag on the board.
func (s *TagService) ListAll() ([]models.Tag, error) {
	tags, err := s.tagRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// ResolveByNames returns exactly one tag per distinct requested name. If any
// name does not resolve the whole call fails; callers never proceed with a
// partial tag set.
func (s *TagService) ResolveByNames(names []string) ([]models.Tag, error) {
	distinct := uniqueStrings(names)

	tags, err := s.tagRepo.FindByNames(distinct)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}
	if len(tags) != len(distinct) {
		return nil, ErrInvalidTag
	}

	return tags, nil
}

// uniqueStrings removes duplicate values from a slice of strings
func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
