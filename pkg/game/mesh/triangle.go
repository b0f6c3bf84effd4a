package mesh

// Triangle is three vertex indices, used for adjacency bookkeeping.
type Triangle [3]int

// Contains reports whether vertex is one of the triangle's corners
func (t Triangle) Contains(vertex int) bool {
	return t[0] == vertex || t[1] == vertex || t[2] == vertex
}
