package usecase_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
	repomocks "github.com/termify/termify/internal/domain/repository/mocks"
)

func TestRestoreLayout_RoundTrip(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)

	root := entity.NewSplit("s", entity.OrientationVertical, leaf("p1", "t1"), leaf("p2", "t2"))
	tabs := entity.NewTabRegistry()
	_, _, err := tabs.Open("tab1", "t1", "one")
	require.NoError(t, err)
	state := entity.SnapshotLayout("w1", root, tabs)

	repo.EXPECT().Get(mock.Anything, entity.WorkspaceID("w1")).Return(state, nil).Once()

	out, err := usecase.NewRestoreLayoutUseCase(repo).Execute(ctx, "w1")
	require.NoError(t, err)
	assert.False(t, out.Discarded)
	assert.True(t, entity.Equal(root, out.Root))
	assert.Equal(t, entity.TabID("tab1"), out.Tabs.ActiveTabID())
}

func TestRestoreLayout_NothingStored(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().Get(mock.Anything, entity.WorkspaceID("w1")).Return(nil, nil).Once()

	out, err := usecase.NewRestoreLayoutUseCase(repo).Execute(ctx, "w1")
	require.NoError(t, err)
	assert.Nil(t, out.Root)
	assert.Equal(t, 0, out.Tabs.Count())
	assert.False(t, out.Discarded)
}

func TestRestoreLayout_DiscardsUnusableLayouts(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		name  string
		state *entity.LayoutState
		err   error
	}{
		{
			name: "corrupt blob",
			err:  fmt.Errorf("decode: %w", repository.ErrCorruptLayout),
		},
		{
			name:  "newer version",
			state: &entity.LayoutState{Version: entity.LayoutStateVersion + 1, WorkspaceID: "w1", ActiveTabIndex: -1},
		},
		{
			name: "invalid tree",
			state: &entity.LayoutState{
				Version:        entity.LayoutStateVersion,
				WorkspaceID:    "w1",
				ActiveTabIndex: -1,
				Root:           &entity.PaneNodeSnapshot{ID: "x", Kind: entity.SnapshotKindLeaf},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repomocks.NewMockLayoutRepository(t)
			repo.EXPECT().Get(mock.Anything, entity.WorkspaceID("w1")).Return(tt.state, tt.err).Once()

			out, err := usecase.NewRestoreLayoutUseCase(repo).Execute(ctx, "w1")
			require.NoError(t, err)
			assert.True(t, out.Discarded)
			assert.Nil(t, out.Root)
			assert.Equal(t, 0, out.Tabs.Count())
		})
	}
}

func TestRestoreLayout_StoreErrorPropagates(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutRepository(t)
	unreachable := errors.New("connection refused")
	repo.EXPECT().Get(mock.Anything, entity.WorkspaceID("w1")).Return(nil, unreachable).Once()

	_, err := usecase.NewRestoreLayoutUseCase(repo).Execute(ctx, "w1")
	assert.ErrorIs(t, err, unreachable)
}

func TestRestoreLayout_RequiresWorkspace(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	_, err := usecase.NewRestoreLayoutUseCase(repo).Execute(testContext(), "")
	assert.Error(t, err)
}
