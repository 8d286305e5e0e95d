package panel

import (
	"fmt"

	"bounce-demo/internal/entity"
)

// Source is what the panel reads from the scene store.
type Source interface {
	Selection() (entity.Kind, bool)
	Params(kind entity.Kind) (entity.Params, error)
	ConsumeGuiDirty() bool
}

// Row is one label/value line of the panel.
type Row struct {
	Label string
	Value string
}

// Panel is the control panel model: the selected entity and its editable parameters, along
// with the terminal command that edits them. Rows are only rebuilt when the store's gui flag
// is set.
type Panel struct {
	title     string
	rows      []Row
	built     bool
	refreshes int
}

// New returns an empty panel; the first Refresh always builds rows.
func New() *Panel {
	return &Panel{title: "Selection"}
}

// Refresh consumes the store's gui flag and rebuilds the rows when it was set (or on the very
// first call). Returns whether the rows changed.
func (p *Panel) Refresh(src Source) (bool, error) {
	dirty := src.ConsumeGuiDirty()
	if p.built && !dirty {
		return false, nil
	}
	rows, err := rowsFor(src)
	if err != nil {
		return false, err
	}
	p.rows = rows
	p.built = true
	p.refreshes++
	return true, nil
}

// Title is the panel heading.
func (p *Panel) Title() string { return p.title }

// Rows returns a copy of the current rows.
func (p *Panel) Rows() []Row {
	out := make([]Row, len(p.rows))
	copy(out, p.rows)
	return out
}

// Refreshes counts how many times the rows were rebuilt.
func (p *Panel) Refreshes() int { return p.refreshes }

func rowsFor(src Source) ([]Row, error) {
	kind, ok := src.Selection()
	if !ok {
		return []Row{{Label: "Name", Value: "none"}, {Label: "Hint", Value: "click a shape"}}, nil
	}
	params, err := src.Params(kind)
	if err != nil {
		return nil, err
	}
	rows := []Row{{Label: "Name", Value: kind.String()}}
	switch v := params.(type) {
	case entity.BoxParams:
		rows = append(rows,
			Row{Label: "Width", Value: num(v.Width)},
			Row{Label: "Height", Value: num(v.Height)},
			Row{Label: "Depth", Value: num(v.Depth)},
			Row{Label: "Edit", Value: "cmd box --width W --height H --depth D"},
		)
	case entity.CylinderParams:
		rows = append(rows,
			Row{Label: "Diameter", Value: num(v.Diameter)},
			Row{Label: "Height", Value: num(v.Height)},
			Row{Label: "Edit", Value: "cmd cylinder --diameter D --height H"},
		)
	case entity.IcoSphereParams:
		rows = append(rows,
			Row{Label: "Diameter", Value: num(v.Diameter)},
			Row{Label: "Subdivisions", Value: fmt.Sprintf("%d", v.Subdivisions)},
			Row{Label: "Edit", Value: "cmd icosphere --diameter D --subdivisions N"},
		)
	}
	return rows, nil
}

func num(f float32) string {
	return fmt.Sprintf("%.2f", f)
}

// Lines renders the rows as "Label: Value" strings.
func (p *Panel) Lines() []string {
	out := make([]string, 0, len(p.rows))
	for _, r := range p.rows {
		out = append(out, r.Label+": "+r.Value)
	}
	return out
}
