package ui

import (
	"bounce-demo/internal/panel"
)

// PanelView turns the selection panel model into overlay nodes. Nodes are only rebuilt when
// the model's rows changed, so an idle panel allocates nothing per frame.
type PanelView struct {
	model   *panel.Panel
	root    *Node
	visible bool
	synced  int
}

// NewPanelView wraps a panel model. The view starts visible.
func NewPanelView(model *panel.Panel) *PanelView {
	return &PanelView{model: model, root: NewNode("panel", ""), visible: true, synced: -1}
}

// SetPanelVisible shows or hides the panel.
func (v *PanelView) SetPanelVisible(show bool) { v.visible = show }

// Visible reports whether the panel is drawn.
func (v *PanelView) Visible() bool { return v.visible }

// Nodes appends the panel nodes to dst when visible.
func (v *PanelView) Nodes(dst []*Node) []*Node {
	if !v.visible {
		return dst
	}
	if v.synced != v.model.Refreshes() {
		v.rebuild()
	}
	return append(dst, v.root)
}

func (v *PanelView) rebuild() {
	v.synced = v.model.Refreshes()
	v.root.Children = v.root.Children[:0]
	v.root.Children = append(v.root.Children, NewNode("panel-title", v.model.Title()))
	for _, r := range v.model.Rows() {
		class := "panel-row"
		if r.Label == "Edit" || r.Label == "Hint" {
			class = "panel-hint"
		}
		v.root.Children = append(v.root.Children, NewNode(class, r.Label+": "+r.Value))
	}
}
