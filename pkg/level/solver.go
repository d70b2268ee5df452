package level

// Solve computes the minimum number of moves needed to collect every
// required item and then reach the villain's room.
//
// It is a breadth-first search over (room, collected-required-items)
// states. Only items in the required universe participate in state
// deduplication, which bounds the search to |rooms| * 2^|required| states
// regardless of how many items the map holds. Entering the villain's room
// is terminal for a path: a winning path if the collected set covers the
// required set, a dead end otherwise.
//
// Returns ErrUnsolvable when no winning path exists.
func Solve(m *MapGraph, startRoom string, requiredItems []string) (int, error) {
	// Required items indexed for a compact bitmask state key.
	bits := make(map[string]uint, len(requiredItems))
	for _, name := range requiredItems {
		if _, ok := bits[name]; !ok {
			bits[name] = uint(len(bits))
		}
	}
	allCollected := uint64(1)<<uint(len(bits)) - 1

	type searchState struct {
		room string
		mask uint64
	}
	type queueEntry struct {
		searchState
		dist int
	}

	visited := make(map[searchState]bool)
	queue := []queueEntry{{searchState{room: startRoom}, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if visited[cur.searchState] {
			continue
		}
		visited[cur.searchState] = true

		room := m.Rooms[cur.room]
		mask := cur.mask

		if room.Item.IsRelic() {
			if bit, ok := bits[room.Item.Name]; ok {
				mask |= 1 << bit
			}
		}

		if room.Item.IsVillain() {
			if mask == allCollected {
				// BFS explores by non-decreasing distance, so the first
				// winning path found is optimal.
				return cur.dist, nil
			}
			// Meeting the villain early ends this path.
			continue
		}

		for _, next := range m.Neighbors(cur.room) {
			queue = append(queue, queueEntry{searchState{room: next, mask: mask}, cur.dist + 1})
		}
	}

	return 0, ErrUnsolvable
}
