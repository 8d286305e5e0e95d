package tween

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// DefaultEasing is the curve used for the bounce animation.
const DefaultEasing = "out-bounce"

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"out-cubic":   ease.OutCubic,
	"out-elastic": ease.OutElastic,
	"in-bounce":   ease.InBounce,
	"out-bounce":  ease.OutBounce,
}

// Easing looks up an easing curve by name (e.g. "out-bounce"). Empty selects DefaultEasing.
func Easing(name string) (ease.TweenFunc, error) {
	if name == "" {
		name = DefaultEasing
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// EasingNames lists the accepted easing names, sorted.
func EasingNames() []string {
	out := make([]string, 0, len(easings))
	for name := range easings {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
