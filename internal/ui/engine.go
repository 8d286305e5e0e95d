package ui

import (
	_ "embed"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"bounce-demo/internal/ui/css"
)

//go:embed default.css
var defaultCSS string

// Engine draws nodes styled by a stylesheet. Resolved styles are cached per class and id
// until the stylesheet changes.
type Engine struct {
	sheet  *css.Stylesheet
	nodes  []*Node
	styles map[string]css.Style
	font   rl.Font
}

// New returns an engine using the built-in stylesheet.
func New() *Engine {
	e := &Engine{}
	sheet, err := css.Parse(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: built-in stylesheet: %v", err))
	}
	e.SetStylesheet(sheet)
	return e
}

// LoadCSS replaces the stylesheet with the file at path.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	sheet, err := css.Parse(string(data))
	if err != nil {
		return fmt.Errorf("ui: %s: %w", path, err)
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet replaces the stylesheet and drops cached styles.
func (e *Engine) SetStylesheet(sheet *css.Stylesheet) {
	e.sheet = sheet
	e.styles = make(map[string]css.Style)
}

// SetFont sets the font used for text. A zero texture ID selects raylib's default font.
func (e *Engine) SetFont(f rl.Font) { e.font = f }

// SetNodes replaces the root nodes. Roots are drawn in order.
func (e *Engine) SetNodes(nodes []*Node) { e.nodes = nodes }

func (e *Engine) style(n *Node) css.Style {
	key := n.Class + "#" + n.ID
	if s, ok := e.styles[key]; ok {
		return s
	}
	s := css.Resolve(e.sheet.Cascade(n.Class, n.ID))
	e.styles[key] = s
	return s
}

// Draw draws every root node. Call inside BeginDrawing, after the 3D pass.
func (e *Engine) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for _, n := range e.nodes {
		s := e.style(n)
		w, h := s.Width, s.Height
		if h == 0 {
			h = e.contentHeight(n, s)
		}
		x := s.Left.Resolve(w, screenW)
		y := s.Top.Resolve(h, screenH)
		e.drawBox(n, s, x, y, w, h)
	}
}

// contentHeight is the height of a node sized by its text and children.
func (e *Engine) contentHeight(n *Node, s css.Style) int32 {
	h := 2 * s.Padding
	if n.Text != "" {
		h += s.LineHeight
	}
	for _, c := range n.Children {
		h += e.style(c).LineHeight
	}
	return h
}

func (e *Engine) drawBox(n *Node, s css.Style, x, y, w, h int32) {
	if s.Background.A > 0 && w > 0 && h > 0 {
		rl.DrawRectangle(x, y, w, h, s.Background)
	}
	if s.HasBorder && w > 0 && h > 0 {
		rl.DrawRectangleLines(x, y, w, h, s.Border)
	}
	cx, cy := x+s.Padding, y+s.Padding
	if n.Text != "" {
		e.text(n.Text, cx, cy, s)
		cy += s.LineHeight
	}
	for _, c := range n.Children {
		cs := e.style(c)
		if c.Text != "" {
			e.text(c.Text, cx, cy, cs)
		}
		cy += cs.LineHeight
	}
}

func (e *Engine) text(t string, x, y int32, s css.Style) {
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, t, rl.NewVector2(float32(x), float32(y)), float32(s.FontSize), 1, s.Color)
		return
	}
	rl.DrawText(t, x, y, s.FontSize, s.Color)
}
