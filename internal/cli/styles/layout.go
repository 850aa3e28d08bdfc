package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/termify/termify/internal/domain/entity"
)

// RenderPaneTree renders the pane tree as an indented tree.
// Leaves show their terminal and the size share they hold in their parent.
func (t *Theme) RenderPaneTree(root *entity.PaneNode) string {
	if root == nil {
		return t.Subtle.Render("(empty layout)")
	}
	return t.paneTree(root, 1).String()
}

func (t *Theme) paneTree(n *entity.PaneNode, share float64) *tree.Tree {
	tr := tree.Root(t.paneLabel(n, share)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(t.Enumerator)

	for i, child := range n.Children {
		childShare := 0.0
		if i < len(n.Sizes) {
			childShare = n.Sizes[i]
		}
		if child.IsSplit() {
			tr.Child(t.paneTree(child, childShare))
			continue
		}
		tr.Child(t.paneLabel(child, childShare))
	}
	return tr
}

func (t *Theme) paneLabel(n *entity.PaneNode, share float64) string {
	pct := fmt.Sprintf("%3.0f%%", share*100)
	if n.IsSplit() {
		return t.SplitNode.Render(fmt.Sprintf("%s split", n.Orientation)) +
			" " + t.Subtle.Render(string(n.ID)+" "+strings.TrimSpace(pct))
	}
	return t.LeafNode.Render(string(n.TerminalID)) +
		" " + t.Subtle.Render(string(n.ID)+" "+strings.TrimSpace(pct))
}
