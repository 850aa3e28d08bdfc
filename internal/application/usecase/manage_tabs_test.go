package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/domain/entity"
)

func TestManageTabs_OpenTwiceConverges(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(seqIDs("tab"))
	tabs := entity.NewTabRegistry()

	first, err := uc.Open(ctx, tabs, "term-1", "shell")
	require.NoError(t, err)
	second, err := uc.Open(ctx, tabs, "term-1", "shell")
	require.NoError(t, err)

	assert.True(t, first.Created)
	assert.False(t, second.Created)
	assert.Equal(t, first.TabID, second.TabID)
	assert.Equal(t, 1, tabs.Count())
}

func TestManageTabs_OpenErrors(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(seqIDs("tab"))

	_, err := uc.Open(ctx, nil, "term-1", "x")
	assert.Error(t, err)

	_, err = uc.Open(ctx, entity.NewTabRegistry(), "", "x")
	assert.ErrorIs(t, err, entity.ErrEmptyTerminalID)
}

func TestManageTabs_Lifecycle(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabsUseCase(seqIDs("tab"))
	tabs := entity.NewTabRegistry()

	a, err := uc.Open(ctx, tabs, "a", "a")
	require.NoError(t, err)
	b, err := uc.Open(ctx, tabs, "b", "b")
	require.NoError(t, err)
	view, err := uc.OpenView(ctx, tabs, "chat", "Chat")
	require.NoError(t, err)

	assert.True(t, uc.Reorder(ctx, tabs, view.TabID, 0))
	assert.Equal(t, view.TabID, tabs.Tabs()[0].ID)

	assert.True(t, uc.Activate(ctx, tabs, a.TabID))
	assert.False(t, uc.Activate(ctx, tabs, "missing"))
	assert.Equal(t, a.TabID, tabs.ActiveTabID())

	id, changed := uc.Cycle(ctx, tabs, true)
	assert.True(t, changed)
	assert.Equal(t, b.TabID, id)

	assert.True(t, uc.Close(ctx, tabs, b.TabID))
	assert.Equal(t, a.TabID, tabs.ActiveTabID())
	assert.False(t, uc.Close(ctx, tabs, b.TabID))
}
