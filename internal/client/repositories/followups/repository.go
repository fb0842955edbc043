// Package followups persists the local follow-up action list in the
// client's sqlite database. Follow-ups never leave the local machine.
package followups

import (
	"context"

	"github.com/dmitrijs2005/docshare/internal/client/models"
)

type Repository interface {
	Insert(ctx context.Context, item *models.FollowUp) error
	GetAll(ctx context.Context) ([]*models.FollowUp, error)
	// Toggle flips the completed flag and returns the new value.
	Toggle(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
}
