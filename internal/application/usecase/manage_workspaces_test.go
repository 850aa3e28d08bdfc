package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/termify/termify/internal/application/port/mocks"
	"github.com/termify/termify/internal/application/usecase"
	"github.com/termify/termify/internal/domain/entity"
	repomocks "github.com/termify/termify/internal/domain/repository/mocks"
)

func workspaces(ids ...string) []*entity.Workspace {
	out := make([]*entity.Workspace, 0, len(ids))
	for i, id := range ids {
		out = append(out, &entity.Workspace{ID: entity.WorkspaceID(id), Name: id, Position: i})
	}
	return out
}

func TestManageWorkspaces_DeleteLastWorkspaceRefused(t *testing.T) {
	ctx := testContext()
	svc := portmocks.NewMockWorkspaceService(t)
	layouts := repomocks.NewMockLayoutRepository(t)

	only := workspaces("w1")
	svc.EXPECT().List(mock.Anything).Return(only, nil).Twice()

	uc := usecase.NewManageWorkspacesUseCase(svc, layouts)
	_, err := uc.Delete(ctx, "w1")
	require.ErrorIs(t, err, usecase.ErrLastWorkspace)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.WorkspaceID("w1"), list[0].ID)
}

func TestManageWorkspaces_DeleteDiscardsLayout(t *testing.T) {
	ctx := testContext()
	svc := portmocks.NewMockWorkspaceService(t)
	layouts := repomocks.NewMockLayoutRepository(t)

	svc.EXPECT().List(mock.Anything).Return(workspaces("w1", "w2", "w3"), nil).Once()
	svc.EXPECT().Delete(mock.Anything, entity.WorkspaceID("w2")).Return(nil).Once()
	layouts.EXPECT().Delete(mock.Anything, entity.WorkspaceID("w2")).Return(nil).Once()

	uc := usecase.NewManageWorkspacesUseCase(svc, layouts)
	out, err := uc.Delete(ctx, "w2")
	require.NoError(t, err)
	require.Len(t, out.Remaining, 2)
	assert.Equal(t, entity.WorkspaceID("w1"), out.Remaining[0].ID)
	assert.Equal(t, entity.WorkspaceID("w3"), out.Remaining[1].ID)
}

func TestManageWorkspaces_DeleteIgnoresLayoutFailure(t *testing.T) {
	ctx := testContext()
	svc := portmocks.NewMockWorkspaceService(t)
	layouts := repomocks.NewMockLayoutRepository(t)

	svc.EXPECT().List(mock.Anything).Return(workspaces("w1", "w2"), nil).Once()
	svc.EXPECT().Delete(mock.Anything, entity.WorkspaceID("w1")).Return(nil).Once()
	layouts.EXPECT().Delete(mock.Anything, entity.WorkspaceID("w1")).Return(errors.New("disk full")).Once()

	uc := usecase.NewManageWorkspacesUseCase(svc, layouts)
	out, err := uc.Delete(ctx, "w1")
	require.NoError(t, err)
	assert.Len(t, out.Remaining, 1)
}

func TestManageWorkspaces_DeleteErrors(t *testing.T) {
	ctx := testContext()

	t.Run("unknown workspace", func(t *testing.T) {
		svc := portmocks.NewMockWorkspaceService(t)
		svc.EXPECT().List(mock.Anything).Return(workspaces("w1", "w2"), nil).Once()

		uc := usecase.NewManageWorkspacesUseCase(svc, nil)
		_, err := uc.Delete(ctx, "nope")
		assert.ErrorIs(t, err, usecase.ErrWorkspaceNotFound)
	})

	t.Run("server rejects", func(t *testing.T) {
		svc := portmocks.NewMockWorkspaceService(t)
		svc.EXPECT().List(mock.Anything).Return(workspaces("w1", "w2"), nil).Once()
		svc.EXPECT().Delete(mock.Anything, entity.WorkspaceID("w1")).Return(errors.New("boom")).Once()

		uc := usecase.NewManageWorkspacesUseCase(svc, nil)
		_, err := uc.Delete(ctx, "w1")
		assert.Error(t, err)
	})
}

func TestManageWorkspaces_ListSorted(t *testing.T) {
	ctx := testContext()
	svc := portmocks.NewMockWorkspaceService(t)
	svc.EXPECT().List(mock.Anything).Return([]*entity.Workspace{
		{ID: "b", Name: "beta", Position: 1},
		{ID: "a", Name: "alpha", Position: 0},
	}, nil).Once()

	uc := usecase.NewManageWorkspacesUseCase(svc, nil)
	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkspaceID("a"), list[0].ID)
	assert.Equal(t, entity.WorkspaceID("b"), list[1].ID)
}

func TestManageWorkspaces_CreateValidates(t *testing.T) {
	ctx := testContext()
	svc := portmocks.NewMockWorkspaceService(t)
	uc := usecase.NewManageWorkspacesUseCase(svc, nil)

	_, err := uc.Create(ctx, entity.WorkspaceInput{})
	assert.ErrorIs(t, err, entity.ErrInvalidWorkspace)

	input := entity.WorkspaceInput{Name: "dev"}
	svc.EXPECT().Create(mock.Anything, input).Return(&entity.Workspace{ID: "w9", Name: "dev"}, nil).Once()
	ws, err := uc.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkspaceID("w9"), ws.ID)
}

func TestManageWorkspaces_UpdateEmptyPatchReadsBack(t *testing.T) {
	ctx := testContext()
	svc := portmocks.NewMockWorkspaceService(t)
	svc.EXPECT().Get(mock.Anything, entity.WorkspaceID("w1")).Return(&entity.Workspace{ID: "w1"}, nil).Once()

	uc := usecase.NewManageWorkspacesUseCase(svc, nil)
	ws, err := uc.Update(ctx, "w1", entity.WorkspacePatch{})
	require.NoError(t, err)
	assert.Equal(t, entity.WorkspaceID("w1"), ws.ID)
}

func TestManageWorkspaces_Reorder(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		name    string
		ids     []entity.WorkspaceID
		wantErr error
	}{
		{name: "permutation", ids: []entity.WorkspaceID{"w2", "w1"}},
		{name: "missing id", ids: []entity.WorkspaceID{"w2"}, wantErr: usecase.ErrInvalidWorkspaceOrder},
		{name: "duplicate id", ids: []entity.WorkspaceID{"w2", "w2"}, wantErr: usecase.ErrInvalidWorkspaceOrder},
		{name: "unknown id", ids: []entity.WorkspaceID{"w2", "w9"}, wantErr: usecase.ErrInvalidWorkspaceOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := portmocks.NewMockWorkspaceService(t)
			svc.EXPECT().List(mock.Anything).Return(workspaces("w1", "w2"), nil).Once()
			if tt.wantErr == nil {
				svc.EXPECT().Reorder(mock.Anything, tt.ids).Return(nil).Once()
			}

			uc := usecase.NewManageWorkspacesUseCase(svc, nil)
			err := uc.Reorder(ctx, tt.ids)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
