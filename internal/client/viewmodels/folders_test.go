package viewmodels

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/docshare/internal/logging"
	"github.com/dmitrijs2005/docshare/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelector(t *testing.T) (*FolderSelector, *fakeLister) {
	t.Helper()
	reg, err := registry.New([]string{"DAMKAR", "DINSOS", "Dinas PUPR"})
	require.NoError(t, err)

	lister := newFakeLister()
	files := NewFileList(lister, logging.NewDiscardLogger())
	return NewFolderSelector(reg, files), lister
}

func TestFolderSelector_DefaultsToFirstEntry(t *testing.T) {
	sel, lister := newSelector(t)

	assert.Equal(t, "damkar", sel.State().ActiveID)
	assert.Empty(t, lister.calls, "nothing is queried before Activate")

	sel.Activate(context.Background())
	assert.Equal(t, []string{"damkar"}, lister.calls)
}

func TestFolderSelector_SelectTriggersLoad(t *testing.T) {
	sel, lister := newSelector(t)
	sel.Activate(context.Background())

	sel.Select(context.Background(), "dinsos")

	assert.Equal(t, "dinsos", sel.State().ActiveID)
	assert.Equal(t, []string{"damkar", "dinsos"}, lister.calls)
}

func TestFolderSelector_FilterIsDisplayOnly(t *testing.T) {
	sel, lister := newSelector(t)
	sel.Activate(context.Background())

	sel.SetFilter("dinas")

	// The filter narrows what is offered, but never switches folders.
	visible := sel.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "dinas-pupr", visible[0].ID)
	assert.Equal(t, "damkar", sel.State().ActiveID)
	assert.Equal(t, []string{"damkar"}, lister.calls)

	sel.SetFilter("")
	assert.Len(t, sel.Visible(), 3)
}

func TestFolderSelector_Resolve(t *testing.T) {
	sel, _ := newSelector(t)

	assert.Equal(t, "Dinas PUPR", sel.Resolve("dinas-pupr"))
	assert.Equal(t, "gone", sel.Resolve("gone"))
}
