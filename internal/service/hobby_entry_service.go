package service

import (
	"strings"

	"github.com/starthobby/backend/internal/dto"
	"github.com/starthobby/backend/internal/repository"
)

const topHobbyEntriesLimit = 50

// HobbyEntryService is the normalized free-text "what's your hobby" tally.
type HobbyEntryService interface {
	Submit(raw string) (*dto.HobbyEntryResponse, error)
	TopEntries() ([]dto.HobbyEntryResponse, error)
}

type hobbyEntryService struct {
	repo repository.HobbyEntryRepository
}

func NewHobbyEntryService(repo repository.HobbyEntryRepository) HobbyEntryService {
	return &hobbyEntryService{repo: repo}
}

// NormalizeHobby maps case/whitespace variants of a hobby to one tally key,
// so "Chess" and "chess " count against the same row.
func NormalizeHobby(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func (s *hobbyEntryService) Submit(raw string) (*dto.HobbyEntryResponse, error) {
	normalized := NormalizeHobby(raw)
	if normalized == "" {
		return nil, &ValidationError{Message: "hobby is required"}
	}

	entry, err := s.repo.Upsert(normalized, strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	return &dto.HobbyEntryResponse{Hobby: entry.Label, Count: entry.Count}, nil
}

func (s *hobbyEntryService) TopEntries() ([]dto.HobbyEntryResponse, error) {
	entries, err := s.repo.FindTop(topHobbyEntriesLimit)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.HobbyEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.HobbyEntryResponse{Hobby: entry.Label, Count: entry.Count})
	}
	return responses, nil
}
