package mesh

import "fmt"

// noVertex is returned when no outline neighbour exists
const noVertex = -1

// CalculateOutlines chains every outline edge into closed loops. A loop starts
// at the lowest unchecked vertex that has an outline neighbour and is followed
// until it runs out of unchecked outline neighbours; the start vertex is then
// appended again to close it. A chain that cannot close over an outline edge
// is dropped.
func (m *Mesher) CalculateOutlines() error {
	for v := 0; v < len(m.vertices); v++ {
		if m.checked.Has(v) {
			continue
		}
		next, err := m.connectedOutlineVertex(v)
		if err != nil {
			return err
		}
		if next == noVertex {
			continue
		}

		m.checked.Put(v)
		outline := []int{v}
		for next != noVertex {
			outline = append(outline, next)
			m.checked.Put(next)
			if next, err = m.connectedOutlineVertex(next); err != nil {
				return err
			}
		}
		if len(outline) < 3 || !m.isOutlineEdge(outline[len(outline)-1], v) {
			continue
		}
		m.outlines = append(m.outlines, append(outline, v))
	}
	return nil
}

// connectedOutlineVertex returns an unchecked vertex joined to v by an outline
// edge, or noVertex.
func (m *Mesher) connectedOutlineVertex(v int) (int, error) {
	tris, ok := m.adjacency[v]
	if !ok {
		return noVertex, fmt.Errorf("%w: vertex %d", ErrInconsistentAdjacency, v)
	}
	for _, t := range tris {
		for _, other := range t {
			if other == v || m.checked.Has(other) {
				continue
			}
			if m.isOutlineEdge(v, other) {
				return other, nil
			}
		}
	}
	return noVertex, nil
}

// isOutlineEdge reports whether the edge a-b belongs to exactly one triangle
func (m *Mesher) isOutlineEdge(a, b int) bool {
	shared := 0
	for _, t := range m.adjacency[a] {
		if t.Contains(b) {
			shared++
			if shared > 1 {
				return false
			}
		}
	}
	return shared == 1
}

// Edge is an undirected vertex pair with A < B.
type Edge struct {
	A, B int
}

// NewEdge orders a and b
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// BoundaryEdges returns every edge used by exactly one triangle of m
func (m *MeshData) BoundaryEdges() map[Edge]struct{} {
	counts := make(map[Edge]int)
	for i := 0; i < m.TriangleCount(); i++ {
		t := m.Triangle(i)
		counts[NewEdge(t[0], t[1])]++
		counts[NewEdge(t[1], t[2])]++
		counts[NewEdge(t[2], t[0])]++
	}
	boundary := make(map[Edge]struct{})
	for e, n := range counts {
		if n == 1 {
			boundary[e] = struct{}{}
		}
	}
	return boundary
}
