package archtable

import (
	"fmt"
	"sort"
	"unsafe"
)

// rowInfoEntry pairs a column's type metadata with the address of its
// element at index zero. The pointer is dangling (see TypeMetadata.dangling)
// when the owning table has zero capacity.
type rowInfoEntry struct {
	meta TypeMetadata
	base unsafe.Pointer
}

// RowInfo is a sorted-by-TypeID sequence of (TypeMetadata, column base
// pointer) pairs. All identities are distinct; duplicates are rejected at
// construction (unless explicitly bypassed, see NewRowInfoUnchecked).
type RowInfo struct {
	entries []rowInfoEntry
}

// NewRowInfo builds a RowInfo from an unordered slice of metadata, sorting
// by TypeID and asserting all identities are distinct. Column pointers start
// dangling. Panics on duplicate component types — a programmer fault per
// spec.md §7.
func NewRowInfo(metas []TypeMetadata) RowInfo {
	sorted := append([]TypeMetadata(nil), metas...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].ID == sorted[i].ID {
			panic(fmt.Sprintf("archtable: duplicate component type %s in RowInfo", sorted[i].Name()))
		}
	}
	return newRowInfoSorted(sorted)
}

// NewRowInfoUnchecked builds a RowInfo assuming metas is already sorted by
// TypeID and contains no duplicates — legal only when the caller supplies
// metadata already validated elsewhere, e.g. a Bundle's own
// TypeMetadata() output.
func NewRowInfoUnchecked(sortedMetas []TypeMetadata) RowInfo {
	return newRowInfoSorted(sortedMetas)
}

func newRowInfoSorted(sortedMetas []TypeMetadata) RowInfo {
	entries := make([]rowInfoEntry, len(sortedMetas))
	for i, m := range sortedMetas {
		entries[i] = rowInfoEntry{meta: m, base: m.dangling()}
	}
	return RowInfo{entries: entries}
}

// Len returns the number of columns.
func (r *RowInfo) Len() int { return len(r.entries) }

// Metadata returns the TypeMetadata of column i, in sorted order.
func (r *RowInfo) Metadata(i int) TypeMetadata { return r.entries[i].meta }

// Base returns the current base pointer of column i.
func (r *RowInfo) Base(i int) unsafe.Pointer { return r.entries[i].base }

// SetBase updates the base pointer of column i (used by RawTable after a
// reallocation moves the column array).
func (r *RowInfo) SetBase(i int, p unsafe.Pointer) { r.entries[i].base = p }

// search binary-searches for id among the sorted columns, returning (index,
// true) on a hit or (insertion point, false) on a miss — restored from
// original_source/osiris-ecs's two-outcome search (`Result<usize, usize>`),
// dropped from spec.md's "binary-search by type identity" phrasing but not
// excluded by any Non-goal.
func (r *RowInfo) search(id TypeID) (int, bool) {
	n := len(r.entries)
	idx := sort.Search(n, func(i int) bool { return r.entries[i].meta.ID >= id })
	if idx < n && r.entries[idx].meta.ID == id {
		return idx, true
	}
	return idx, false
}

// indexOf is a convenience wrapper over search returning only the found
// index, or -1.
func (r *RowInfo) indexOf(id TypeID) int {
	idx, ok := r.search(id)
	if !ok {
		return -1
	}
	return idx
}
