package scenegraph

// Graph is the set of live renderable meshes. The renderer draws exactly these and picking
// only considers these; a mesh removed from the graph is gone from the scene even if a caller
// still holds the handle.
type Graph struct {
	meshes []*Mesh
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add inserts m. Adding a mesh that is already present is a no-op.
func (g *Graph) Add(m *Mesh) {
	if m == nil || g.Contains(m) {
		return
	}
	g.meshes = append(g.meshes, m)
}

// Remove drops m from the graph and detaches it from its parent. Returns false when m was not
// in the graph (never created or already removed); that case is a no-op.
func (g *Graph) Remove(m *Mesh) bool {
	for i, x := range g.meshes {
		if x == m {
			g.meshes = append(g.meshes[:i], g.meshes[i+1:]...)
			m.SetParent(nil)
			return true
		}
	}
	return false
}

// Contains reports whether m is live.
func (g *Graph) Contains(m *Mesh) bool {
	for _, x := range g.meshes {
		if x == m {
			return true
		}
	}
	return false
}

// Meshes returns the live meshes in insertion order.
func (g *Graph) Meshes() []*Mesh {
	out := make([]*Mesh, len(g.meshes))
	copy(out, g.meshes)
	return out
}

// Len is the number of live meshes.
func (g *Graph) Len() int { return len(g.meshes) }

// Named returns the live meshes with the given name.
func (g *Graph) Named(name string) []*Mesh {
	var out []*Mesh
	for _, m := range g.meshes {
		if m.Name() == name {
			out = append(out, m)
		}
	}
	return out
}
