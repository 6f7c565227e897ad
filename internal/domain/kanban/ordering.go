package kanban

import "github.com/google/uuid"

// An ordered id list is the only stored representation of position.
// A card's order is its index in the owning column's CardIDs and a
// column's order is its index in the board's ColumnIDs.

// IndexOf returns the position of id in ids, or -1
func IndexOf(ids []uuid.UUID, id uuid.UUID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// RemoveID returns a copy of ids without id and whether id was present
func RemoveID(ids []uuid.UUID, id uuid.UUID) ([]uuid.UUID, bool) {
	out := make([]uuid.UUID, 0, len(ids))
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	return out, found
}

// InsertID returns a copy of ids with id inserted at index clamped to
// [0, len(ids)], together with the position actually used
func InsertID(ids []uuid.UUID, id uuid.UUID, index int) ([]uuid.UUID, int) {
	index = ClampIndex(index, len(ids))
	out := make([]uuid.UUID, 0, len(ids)+1)
	out = append(out, ids[:index]...)
	out = append(out, id)
	out = append(out, ids[index:]...)
	return out, index
}

// ClampIndex clamps index to [0, n]
func ClampIndex(index, n int) int {
	if index < 0 {
		return 0
	}
	if index > n {
		return n
	}
	return index
}
