// Package css resolves the small stylesheet dialect used by the overlay UI: class and id
// selectors, selector lists, and plain declarations. Tokenizing is done by tdewolff/parse;
// anything beyond that subset (element selectors, @rules) is skipped.
package css

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// Rule is one selector with its raw declarations.
type Rule struct {
	Selector string
	Props    map[string]string
}

// Matches reports whether the rule's selector targets a node with this class or id.
func (r Rule) Matches(class, id string) bool {
	switch {
	case class != "" && r.Selector == "."+class:
		return true
	case id != "" && r.Selector == "#"+id:
		return true
	}
	return false
}

// Stylesheet is an ordered list of rules; later rules win.
type Stylesheet struct {
	Rules []Rule
}

// Cascade merges the declarations of every rule matching class or id, in sheet order.
func (s *Stylesheet) Cascade(class, id string) map[string]string {
	out := make(map[string]string)
	if s == nil {
		return out
	}
	for _, r := range s.Rules {
		if !r.Matches(class, id) {
			continue
		}
		for k, v := range r.Props {
			out[k] = v
		}
	}
	return out
}

// Parse reads a stylesheet.
func Parse(src string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := tcss.NewParser(parse.NewInputString(src), false)

	var (
		pending []string // selectors of the ruleset being opened
		open    []int    // indexes into sheet.Rules receiving declarations
		atDepth int
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case tcss.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return sheet, fmt.Errorf("css: %w", err)
			}
			return sheet, nil
		case tcss.BeginAtRuleGrammar:
			atDepth++
		case tcss.EndAtRuleGrammar:
			atDepth--
		case tcss.QualifiedRuleGrammar:
			pending = append(pending, selector(p.Values()))
		case tcss.BeginRulesetGrammar:
			pending = append(pending, selector(p.Values()))
			open = open[:0]
			if atDepth == 0 {
				for _, sel := range pending {
					if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
						continue
					}
					sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: make(map[string]string)})
					open = append(open, len(sheet.Rules)-1)
				}
			}
			pending = pending[:0]
		case tcss.EndRulesetGrammar:
			open = open[:0]
		case tcss.DeclarationGrammar:
			key := strings.ToLower(string(data))
			val := joined(p.Values())
			for _, i := range open {
				sheet.Rules[i].Props[key] = val
			}
		}
	}
}

func selector(tokens []tcss.Token) string {
	return strings.ReplaceAll(joined(tokens), " ", "")
}

func joined(tokens []tcss.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
