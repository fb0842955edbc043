package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/client/repositories/followups"
	"github.com/dmitrijs2005/docshare/internal/common"
	"github.com/google/uuid"
)

// FollowUpService manages the local follow-up action list.
type FollowUpService struct {
	repo followups.Repository

	now func() time.Time
}

func NewFollowUpService(repo followups.Repository) *FollowUpService {
	return &FollowUpService{repo: repo, now: time.Now}
}

// Add records a new follow-up. The title is mandatory; the remaining
// fields are free-form and trimmed.
func (s *FollowUpService) Add(ctx context.Context, title, responsible, dueDate, notes string) (*models.FollowUp, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, common.ErrorIncorrectMetadata
	}

	item := &models.FollowUp{
		ID:          uuid.NewString(),
		Title:       title,
		Responsible: strings.TrimSpace(responsible),
		DueDate:     strings.TrimSpace(dueDate),
		Notes:       strings.TrimSpace(notes),
		CreatedAt:   s.now(),
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add followup: %w", err)
	}
	return item, nil
}

// List returns all follow-ups, newest first.
func (s *FollowUpService) List(ctx context.Context) ([]*models.FollowUp, error) {
	return s.repo.GetAll(ctx)
}

// Toggle flips the completed flag of the follow-up with the given id.
func (s *FollowUpService) Toggle(ctx context.Context, id string) error {
	_, err := s.repo.Toggle(ctx, id)
	return err
}

// Delete removes the follow-up with the given id.
func (s *FollowUpService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
