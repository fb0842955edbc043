package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/docshare/internal/client/models"
	"github.com/dmitrijs2005/docshare/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFollowUpRepo struct {
	items []*models.FollowUp
}

func (f *fakeFollowUpRepo) Insert(ctx context.Context, item *models.FollowUp) error {
	cp := *item
	f.items = append([]*models.FollowUp{&cp}, f.items...)
	return nil
}

func (f *fakeFollowUpRepo) GetAll(ctx context.Context) ([]*models.FollowUp, error) {
	return f.items, nil
}

func (f *fakeFollowUpRepo) Toggle(ctx context.Context, id string) (bool, error) {
	for _, item := range f.items {
		if item.ID == id {
			item.Completed = !item.Completed
			return item.Completed, nil
		}
	}
	return false, common.ErrorNotFound
}

func (f *fakeFollowUpRepo) DeleteByID(ctx context.Context, id string) error {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func TestFollowUpAdd(t *testing.T) {
	repo := &fakeFollowUpRepo{}
	svc := NewFollowUpService(repo)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	item, err := svc.Add(context.Background(), "  Kirim laporan  ", " Andi ", "2026-09-15", " catatan ")
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Kirim laporan", item.Title)
	assert.Equal(t, "Andi", item.Responsible)
	assert.Equal(t, "2026-09-15", item.DueDate)
	assert.Equal(t, "catatan", item.Notes)
	assert.Equal(t, now, item.CreatedAt)
	assert.False(t, item.Completed)
	require.Len(t, repo.items, 1)
}

func TestFollowUpAdd_TitleRequired(t *testing.T) {
	svc := NewFollowUpService(&fakeFollowUpRepo{})

	_, err := svc.Add(context.Background(), "   ", "", "", "")
	assert.ErrorIs(t, err, common.ErrorIncorrectMetadata)
}

func TestFollowUpToggle(t *testing.T) {
	repo := &fakeFollowUpRepo{}
	svc := NewFollowUpService(repo)

	item, err := svc.Add(context.Background(), "x", "", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Toggle(context.Background(), item.ID))
	assert.True(t, repo.items[0].Completed)

	require.NoError(t, svc.Toggle(context.Background(), item.ID))
	assert.False(t, repo.items[0].Completed)

	err = svc.Toggle(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFollowUpDelete(t *testing.T) {
	repo := &fakeFollowUpRepo{}
	svc := NewFollowUpService(repo)

	item, err := svc.Add(context.Background(), "x", "", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), item.ID))
	assert.Empty(t, repo.items)
}
