// File: components.go
// Role: breadth-first connectivity over the mesh.
//
// Problem loading uses Components to reject layouts whose pinned endpoints
// live on different connected pieces of the surface before any search runs.
package mesh

// Components labels every vertex with the index of its connected component.
// Labels are assigned in order of the smallest vertex of each component, so
// vertex 0 is always in component 0.
//
// Complexity: O(V + E) time, O(V) space.
func (m *TargetMesh) Components() (labels []int, count int) {
	labels = make([]int, len(m.positions))
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, len(m.positions))
	var (
		s, u int
		inc  Incidence
	)
	for s = range labels {
		if labels[s] >= 0 {
			continue
		}
		// BFS from the smallest unlabelled vertex.
		labels[s] = count
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			u, queue = queue[0], queue[1:]
			for _, inc = range m.incident[u] {
				if labels[inc.To] < 0 {
					labels[inc.To] = count
					queue = append(queue, inc.To)
				}
			}
		}
		count++
	}

	return labels, count
}

// Connected reports whether u and v are joined by some path.
func (m *TargetMesh) Connected(u, v int) bool {
	if !m.HasVertex(u) || !m.HasVertex(v) {
		return false
	}
	if u == v {
		return true
	}
	seen := make([]bool, len(m.positions))
	seen[u] = true
	queue := []int{u}
	var w int
	for len(queue) > 0 {
		w, queue = queue[0], queue[1:]
		for _, inc := range m.incident[w] {
			if inc.To == v {
				return true
			}
			if !seen[inc.To] {
				seen[inc.To] = true
				queue = append(queue, inc.To)
			}
		}
	}

	return false
}
