package layoutcodec

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/termify/termify/internal/domain/entity"
	"github.com/termify/termify/internal/domain/repository"
)

// renamedNodeKeys maps legacy camelCase node keys to their current names.
var renamedNodeKeys = [][2]string{
	{"type", "kind"},
	{"terminalId", "terminal_id"},
	{"direction", "orientation"},
}

// UpgradeLegacy rewrites a version 1 blob into the current field layout.
//
// Legacy blobs look like:
//
//	{"workspaceId":"w1","root":{"id":"p1","type":"leaf","terminalId":"t1"},
//	 "tabs":[{"id":"tab1","terminalId":"t1","name":"shell"}],"activeTabId":"tab1"}
func UpgradeLegacy(data []byte) ([]byte, error) {
	var err error
	out := append([]byte(nil), data...)

	if ws := gjson.GetBytes(out, "workspaceId"); ws.Exists() {
		if out, err = move(out, "workspaceId", "workspace_id", ws.Value()); err != nil {
			return nil, err
		}
	}

	if gjson.GetBytes(out, "root").IsObject() {
		if out, err = upgradeNode(out, "root"); err != nil {
			return nil, err
		}
	}

	activeIndex := -1
	activeTabID := gjson.GetBytes(out, "activeTabId").String()
	for i, tab := range gjson.GetBytes(out, "tabs").Array() {
		path := "tabs." + strconv.Itoa(i)
		if tab.Get("id").String() == activeTabID && activeTabID != "" {
			activeIndex = i
		}
		if tid := tab.Get("terminalId"); tid.Exists() {
			if out, err = move(out, path+".terminalId", path+".terminal_id", tid.String()); err != nil {
				return nil, err
			}
		}
		if !tab.Get("type").Exists() {
			tabType := entity.TabTerminal
			if tab.Get("terminalId").String() == "" && tab.Get("terminal_id").String() == "" {
				tabType = entity.TabOther
			}
			if out, err = sjson.SetBytes(out, path+".type", tabType.String()); err != nil {
				return nil, corrupt(err)
			}
		}
		if !tab.Get("position").Exists() {
			if out, err = sjson.SetBytes(out, path+".position", i); err != nil {
				return nil, corrupt(err)
			}
		}
	}

	if out, err = sjson.DeleteBytes(out, "activeTabId"); err != nil {
		return nil, corrupt(err)
	}
	if out, err = sjson.SetBytes(out, "active_tab_index", activeIndex); err != nil {
		return nil, corrupt(err)
	}
	if out, err = sjson.SetBytes(out, "version", entity.LayoutStateVersion); err != nil {
		return nil, corrupt(err)
	}
	return out, nil
}

func upgradeNode(data []byte, path string) ([]byte, error) {
	var err error
	node := gjson.GetBytes(data, path)
	for _, keys := range renamedNodeKeys {
		if v := node.Get(keys[0]); v.Exists() {
			if data, err = move(data, path+"."+keys[0], path+"."+keys[1], v.Value()); err != nil {
				return nil, err
			}
		}
	}
	for i := range node.Get("children").Array() {
		if data, err = upgradeNode(data, path+".children."+strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func move(data []byte, from, to string, value any) ([]byte, error) {
	out, err := sjson.SetBytes(data, to, value)
	if err != nil {
		return nil, corrupt(err)
	}
	out, err = sjson.DeleteBytes(out, from)
	if err != nil {
		return nil, corrupt(err)
	}
	return out, nil
}

func corrupt(err error) error {
	return fmt.Errorf("%w: upgrade legacy layout: %w", repository.ErrCorruptLayout, err)
}
