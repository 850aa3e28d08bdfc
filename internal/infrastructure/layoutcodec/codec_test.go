package layoutcodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
	"github.com/termify/termify/internal/infrastructure/layoutcodec"
)

func nestedLayout(t *testing.T) (*entity.PaneNode, *entity.TabRegistry) {
	t.Helper()
	inner := entity.NewSplit("h", entity.OrientationHorizontal,
		entity.NewLeaf("b", "tb"),
		entity.NewLeaf("c", "tc"),
	)
	root := entity.NewSplit("v", entity.OrientationVertical, entity.NewLeaf("a", "ta"), inner)

	tabs := entity.NewTabRegistry()
	_, _, err := tabs.Open("tab1", "ta", "alpha")
	require.NoError(t, err)
	_, _, err = tabs.OpenView("tab2", "settings", "Settings")
	require.NoError(t, err)
	return root, tabs
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	root, tabs := nestedLayout(t)
	state := entity.SnapshotLayout("w1", root, tabs)

	data, err := layoutcodec.Encode(state)
	require.NoError(t, err)

	version, err := layoutcodec.Version(data)
	require.NoError(t, err)
	assert.Equal(t, entity.LayoutStateVersion, version)

	decoded, err := layoutcodec.Decode(data)
	require.NoError(t, err)

	gotRoot, gotTabs, err := decoded.Restore()
	require.NoError(t, err)
	assert.True(t, entity.Equal(root, gotRoot))
	assert.Equal(t, entity.TabID("tab2"), gotTabs.ActiveTabID())
	require.Equal(t, 2, gotTabs.Count())
	assert.Equal(t, entity.TabOther, gotTabs.Tabs()[1].Type)
}

func TestDecode_Corrupt(t *testing.T) {
	for _, blob := range []string{
		`{not json`,
		`{"version":"two"}`,
		`{"version":2,"root":{"id":"x","kind":"leaf","orientation":"diagonal"}}`,
		`{"version":2,"tabs":[{"id":"t","type":"unknown"}]}`,
	} {
		_, err := layoutcodec.Decode([]byte(blob))
		assert.ErrorIs(t, err, repository.ErrCorruptLayout, blob)
	}
}

func TestDecode_FutureVersionKeepsHeader(t *testing.T) {
	state, err := layoutcodec.Decode([]byte(`{"version":99,"workspace_id":"w1","root":{"shape":"new"}}`))
	require.NoError(t, err)
	assert.Equal(t, 99, state.Version)
	assert.Equal(t, entity.WorkspaceID("w1"), state.WorkspaceID)
	assert.Nil(t, state.Root)
}

func TestDecode_UpgradesLegacyBlob(t *testing.T) {
	legacy := `{
		"workspaceId": "w1",
		"root": {
			"id": "v", "type": "split", "direction": "vertical", "sizes": [0.5, 0.5],
			"children": [
				{"id": "a", "type": "leaf", "terminalId": "ta"},
				{"id": "h", "type": "split", "direction": "horizontal", "sizes": [0.3, 0.7],
				 "children": [
					{"id": "b", "type": "leaf", "terminalId": "tb"},
					{"id": "c", "type": "leaf", "terminalId": "tc"}
				 ]}
			]
		},
		"tabs": [
			{"id": "tab1", "terminalId": "ta", "name": "alpha"},
			{"id": "tab2", "terminalId": "tb", "name": "beta"}
		],
		"activeTabId": "tab2"
	}`

	state, err := layoutcodec.Decode([]byte(legacy))
	require.NoError(t, err)
	assert.Equal(t, entity.LayoutStateVersion, state.Version)
	assert.Equal(t, entity.WorkspaceID("w1"), state.WorkspaceID)
	assert.Equal(t, 1, state.ActiveTabIndex)

	root, tabs, err := state.Restore()
	require.NoError(t, err)
	assert.Equal(t, []entity.TerminalID{"ta", "tb", "tc"}, root.TerminalIDs())
	assert.Equal(t, entity.OrientationVertical, root.Orientation)
	assert.Equal(t, entity.OrientationHorizontal, root.Children[1].Orientation)
	assert.InDelta(t, 0.7, root.Children[1].Sizes[1], 1e-9)
	assert.Equal(t, entity.TabID("tab2"), tabs.ActiveTabID())
	assert.Equal(t, 1, tabs.Tabs()[1].Position)
}

func TestUpgradeLegacy_EmptyLayout(t *testing.T) {
	out, err := layoutcodec.UpgradeLegacy([]byte(`{"workspaceId":"w1","root":null,"tabs":[]}`))
	require.NoError(t, err)

	state, err := layoutcodec.Decode(out)
	require.NoError(t, err)
	assert.Nil(t, state.Root)
	assert.Equal(t, -1, state.ActiveTabIndex)
	assert.Empty(t, state.Tabs)
}
