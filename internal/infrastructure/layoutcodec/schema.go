package layoutcodec

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/termify/termify/internal/domain/entity"
)

// Schema reflects the JSON schema of the current blob version. Pane nodes
// are recursive, so they are emitted as a definition the tree refers to.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "json",
		ExpandedStruct: true,
	}
	schema := r.Reflect(&entity.LayoutState{})
	schema.ID = "https://github.com/termify/termify/layout.schema.json"
	schema.Title = "Termify Workspace Layout"
	schema.Description = fmt.Sprintf("Pane tree and tabs of one workspace, version %d", entity.LayoutStateVersion)

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal layout schema: %w", err)
	}
	return data, nil
}
