// Package layoutcodec encodes workspace layouts to the JSON blob stored by
// the local database and the remote layout endpoint.
package layoutcodec

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
)

// LegacyVersion is the camelCase blob written by the first web client.
// Blobs without a version field are treated as legacy.
const LegacyVersion = 1

// Encode serializes a layout at the current schema version.
func Encode(state *entity.LayoutState) ([]byte, error) {
	if state == nil {
		return nil, fmt.Errorf("encode layout: nil state")
	}
	out := *state
	if out.Version == 0 {
		out.Version = entity.LayoutStateVersion
	}
	data, err := json.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return data, nil
}

// Version probes the schema version of a blob without decoding it.
func Version(data []byte) (int, error) {
	if !gjson.ValidBytes(data) {
		return 0, fmt.Errorf("%w: invalid json", repository.ErrCorruptLayout)
	}
	v := gjson.GetBytes(data, "version")
	if !v.Exists() {
		return LegacyVersion, nil
	}
	if v.Type != gjson.Number || v.Int() < LegacyVersion {
		return 0, fmt.Errorf("%w: bad version %s", repository.ErrCorruptLayout, v.Raw)
	}
	return int(v.Int()), nil
}

// Decode parses a blob, upgrading legacy blobs in place. Versions newer than
// this build understands are returned as-is so callers can decide what to do.
// Every failure wraps repository.ErrCorruptLayout.
func Decode(data []byte) (*entity.LayoutState, error) {
	version, err := Version(data)
	if err != nil {
		return nil, err
	}

	if version == LegacyVersion {
		data, err = UpgradeLegacy(data)
		if err != nil {
			return nil, err
		}
	}

	if version > entity.LayoutStateVersion {
		// Unknown future shape; only the header is trusted.
		return &entity.LayoutState{
			Version:        version,
			WorkspaceID:    entity.WorkspaceID(gjson.GetBytes(data, "workspace_id").String()),
			ActiveTabIndex: -1,
		}, nil
	}

	var state entity.LayoutState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrCorruptLayout, err)
	}
	if state.Tabs == nil {
		state.Tabs = []entity.TabSnapshot{}
	}
	return &state, nil
}
