// Package classify assigns faces to semantic groups based on their view
// layer color. A face matching the configured inlet color belongs to the
// Inlet group, a face matching the outlet color to the Outlet group, and
// everything else falls back to the Body group.
package classify

import (
	"math"

	"github.com/philipparndt/facestl/internal/scene"
)

// Group is a semantic face group
type Group int

const (
	GroupInlet Group = iota
	GroupOutlet
	GroupBody
)

// AllGroups lists the groups in classification precedence order
var AllGroups = []Group{GroupInlet, GroupOutlet, GroupBody}

// String returns the group name as used in export filenames
func (g Group) String() string {
	switch g {
	case GroupInlet:
		return "Inlet"
	case GroupOutlet:
		return "Outlet"
	case GroupBody:
		return "Body"
	default:
		return "Unknown"
	}
}

// Groups holds the classification result: 1-indexed face IDs per group,
// in ascending face order.
type Groups struct {
	Inlet  []int
	Outlet []int
	Body   []int
}

// IDs returns the face IDs assigned to a group
func (g Groups) IDs(group Group) []int {
	switch group {
	case GroupInlet:
		return g.Inlet
	case GroupOutlet:
		return g.Outlet
	default:
		return g.Body
	}
}

// Total returns the number of classified faces
func (g Groups) Total() int {
	return len(g.Inlet) + len(g.Outlet) + len(g.Body)
}

// Matcher classifies colors against the configured inlet and outlet
// reference colors. Tolerance is the maximum per-channel deviation; zero
// requires bit-exact equality. The alpha channel is ignored.
type Matcher struct {
	Inlet     scene.Color
	Outlet    scene.Color
	Tolerance float64
}

// NewMatcher creates a matcher for the given reference colors
func NewMatcher(inlet, outlet scene.Color, tolerance float64) *Matcher {
	return &Matcher{Inlet: inlet, Outlet: outlet, Tolerance: tolerance}
}

// Match returns the group for a single color. Inlet is checked before
// Outlet; the first match wins.
func (m *Matcher) Match(c scene.Color) Group {
	if m.matches(c, m.Inlet) {
		return GroupInlet
	}
	if m.matches(c, m.Outlet) {
		return GroupOutlet
	}
	return GroupBody
}

func (m *Matcher) matches(c, ref scene.Color) bool {
	if m.Tolerance == 0 {
		return c.R == ref.R && c.G == ref.G && c.B == ref.B
	}
	return math.Abs(c.R-ref.R) < m.Tolerance &&
		math.Abs(c.G-ref.G) < m.Tolerance &&
		math.Abs(c.B-ref.B) < m.Tolerance
}

// Classify buckets a body's parallel color array into face groups.
// Face IDs are 1-indexed, matching the host document's face numbering.
func (m *Matcher) Classify(colors []scene.Color) Groups {
	var groups Groups
	for i, c := range colors {
		id := i + 1
		switch m.Match(c) {
		case GroupInlet:
			groups.Inlet = append(groups.Inlet, id)
		case GroupOutlet:
			groups.Outlet = append(groups.Outlet, id)
		default:
			groups.Body = append(groups.Body, id)
		}
	}
	return groups
}
