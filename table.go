package archtable

import (
	"fmt"
	"iter"
	"unsafe"
)

// Table wraps a RawTable with a valid row count: rows [0, Len) are fully
// initialized; rows [Len, Capacity) are uninitialized storage. Table owns
// every row it holds — dropping it (via Close) drops each row once.
//
// Row-oriented operations are free generic functions over *Table rather
// than methods, because Go methods cannot introduce a new type parameter
// beyond the receiver's own: every operation that moves a Bundle in or out
// needs its own B type parameter per call, the same way lazyecs's
// NewBuilder2[T1, T2] is a free function rather than a method on World.
type Table struct {
	raw RawTable
	len int
}

// NewTable builds an empty Table over the given (unordered, duplicate-free)
// set of component types.
func NewTable(types []TypeMetadata) Table {
	return Table{raw: NewRawTable(types)}
}

// NewTableForBundle builds an empty Table whose columns are exactly bundle
// shape B's fields, in sorted-by-identity order.
func NewTableForBundle[B Bundle]() Table {
	var zero B
	return Table{raw: NewRawTableUnchecked(zero.TypeMetadata())}
}

// NewTableForBundleWithCapacity builds an empty Table for bundle shape B,
// reserving capacityHint rows up front — the source's dynamic storage
// carries its own with_capacity constructor distinct from new() (see
// SPEC_FULL.md); this is that constructor's Go equivalent.
func NewTableForBundleWithCapacity[B Bundle](capacityHint int) Table {
	t := NewTableForBundle[B]()
	t.Reserve(capacityHint)
	return t
}

// Len returns the number of valid rows.
func (t *Table) Len() int { return t.len }

// Capacity returns the number of rows the backing buffer can hold.
func (t *Table) Capacity() int { return t.raw.Capacity() }

// Empty reports whether Len() == 0.
func (t *Table) Empty() bool { return t.len == 0 }

// Reserve ensures capacity is at least n, growing at most once.
func (t *Table) Reserve(n int) { t.raw.Reserve(n) }

// Close drops every valid row and releases the backing allocation. Go has
// no destructors, so unlike the source's Drop impl this must be called
// explicitly — see DESIGN.md's Open Question resolution. After Close, the
// Table is empty and holds no allocation, exactly as after Clear.
func (t *Table) Close() { t.Clear() }

// Clear drops every valid row, in ascending index order, then releases the
// backing allocation.
func (t *Table) Clear() {
	for i := 0; i < t.len; i++ {
		t.raw.DropRow(i)
	}
	t.len = 0
	t.raw.Clear()
}

// SwapRemove drops the row at idx in place, then moves the former last row
// into its place (a no-op when idx is already the last row). No stable row
// ordering is guaranteed across this call.
func (t *Table) SwapRemove(idx int) {
	t.requireIndex(idx)
	last := t.len - 1
	t.raw.SwapColumns(idx, last)
	t.raw.DropRow(last)
	t.len--
}

// Erase drops rows [idx, idx+count) in place, then shifts rows
// [idx+count, Len) left by count to close the gap. Requires
// idx+count <= Len — see spec.md §9's Open Question: the source's
// idx+count < len is treated as the typo it appears to be, since that
// precondition would make erasing the table's tail impossible.
func (t *Table) Erase(idx, count int) {
	if count == 0 {
		return
	}
	if idx < 0 || count < 0 || idx+count > t.len {
		panic(fmt.Sprintf("archtable: erase(%d, %d) out of range for len %d", idx, count, t.len))
	}
	for i := idx; i < idx+count; i++ {
		t.raw.DropRow(i)
	}
	for j := idx; j < t.len-count; j++ {
		for col := 0; col < t.raw.NumColumns(); col++ {
			meta := t.raw.ColumnMetadata(col)
			if meta.Size == 0 {
				continue
			}
			dst := t.raw.ColumnElem(col, j)
			src := t.raw.ColumnElem(col, j+count)
			copyBytes(dst, src, meta.Size)
		}
	}
	t.len -= count
}

func (t *Table) requireIndex(idx int) {
	if idx < 0 || idx >= t.len {
		panic(fmt.Sprintf("archtable: index %d out of range for len %d", idx, t.len))
	}
}

// isBundleCompatible reports whether bundle shape B's fields, sorted by
// identity, match the table's columns one-for-one.
func isBundleCompatible[B Bundle](t *Table) bool {
	var zero B
	metas := zero.TypeMetadata()
	if len(metas) != t.raw.NumColumns() {
		return false
	}
	for i, m := range metas {
		if t.raw.ColumnMetadata(i).ID != m.ID {
			return false
		}
	}
	return true
}

// IsBundleCompatible reports whether bundle shape B is compatible with t:
// the zip of t's column metadata with B's (sorted) TypeMetadata() is
// pointwise equal on type identity.
func IsBundleCompatible[B Bundle](t *Table) bool { return isBundleCompatible[B](t) }

func requireCompatible[B Bundle](t *Table, op string) {
	if !isBundleCompatible[B](t) {
		var zero B
		panic(fmt.Sprintf("archtable: %s: bundle shape is not compatible with this table's columns (got %v)", op, zero.TypeMetadata()))
	}
}

// putColumnUnchecked walks the table's columns in lockstep with bundle.put,
// asserting identity agreement defense-in-depth, and memcpy's each field's
// bytes into the table at row idx.
func putColumnUnchecked[B Bundle](t *Table, idx int, b B) {
	col := 0
	b.put(func(ptr unsafe.Pointer, id TypeID) {
		meta := t.raw.ColumnMetadata(col)
		if meta.ID != id {
			panic(fmt.Sprintf("archtable: internal: column %d expected type id %d, bundle field has %d", col, meta.ID, id))
		}
		if meta.Size > 0 {
			copyBytes(t.raw.ColumnElem(col, idx), ptr, meta.Size)
		}
		col++
	})
}

// takeColumnUnchecked walks the table's columns in lockstep with bundle
// shape B's take, memcpy'ing each field's bytes out of row idx into a
// freshly constructed B. The bytes left behind at idx are logically
// uninitialized afterward.
func takeColumnUnchecked[B Bundle](t *Table, idx int) B {
	var zero B
	col := 0
	out := zero.take(func(ptr unsafe.Pointer, id TypeID) {
		meta := t.raw.ColumnMetadata(col)
		if meta.Size > 0 {
			copyBytes(ptr, t.raw.ColumnElem(col, idx), meta.Size)
		}
		col++
	})
	return out.(B)
}

// Push appends bundle b as a new last row. Panics if B is not compatible
// with t's columns.
func Push[B Bundle](t *Table, b B) {
	requireCompatible[B](t, "push")
	t.raw.Reserve(t.len + 1)
	putColumnUnchecked[B](t, t.len, b)
	t.len++
}

// InsertAt replaces the bundle at idx with b, returning the bundle formerly
// there. Requires idx < Len and B compatible with t's columns.
func InsertAt[B Bundle](t *Table, idx int, b B) B {
	t.requireIndex(idx)
	requireCompatible[B](t, "insert_at")
	out := takeColumnUnchecked[B](t, idx)
	putColumnUnchecked[B](t, idx, b)
	return out
}

// Pop removes and returns the last row. Panics if the table is empty or B
// is not compatible with t's columns.
func Pop[B Bundle](t *Table) B {
	if t.len == 0 {
		panic("archtable: pop from empty table")
	}
	requireCompatible[B](t, "pop")
	t.len--
	return takeColumnUnchecked[B](t, t.len)
}

// SwapPop removes and returns the row at idx: it is first swapped with the
// current last row (so the new occupant of idx is the former last row),
// then popped. Requires idx < Len.
func SwapPop[B Bundle](t *Table, idx int) B {
	t.requireIndex(idx)
	requireCompatible[B](t, "swap_pop")
	last := t.len - 1
	t.raw.SwapColumns(idx, last)
	t.len--
	return takeColumnUnchecked[B](t, t.len)
}

// SizedSeq pairs a Go 1.23 iterator with the exact-size hints spec.md's
// extend algorithm needs: Lower is a guaranteed minimum count, Upper is an
// exact upper bound, or -1 if unknown. This is the closest Go iterators get
// to Rust's ExactSizeIterator without a dedicated interface nobody else in
// the retrieval pack defines.
type SizedSeq[B Bundle] struct {
	Seq   iter.Seq[B]
	Lower int
	Upper int
}

// SliceSeq builds a SizedSeq of known exact length over a slice, for the
// common case of extending from an in-memory batch of bundles.
func SliceSeq[B Bundle](items []B) SizedSeq[B] {
	n := len(items)
	return SizedSeq[B]{
		Seq: func(yield func(B) bool) {
			for _, it := range items {
				if !yield(it) {
					return
				}
			}
		},
		Lower: n,
		Upper: n,
	}
}

// Extend appends every bundle produced by sq to t. When sq.Upper is known,
// capacity is reserved once for len+Upper and that many rows are written
// directly into the pre-reserved slots with no per-row reserve; any
// further items the sequence yields beyond Upper fall through to Push,
// which may reallocate mid-extend. This mirrors the source's own
// behavior (see spec.md §4.5's Open Question) rather than "fixing" it.
func Extend[B Bundle](t *Table, sq SizedSeq[B]) {
	requireCompatible[B](t, "extend")

	if sq.Upper < 0 {
		t.raw.Reserve(t.len + sq.Lower)
		for b := range sq.Seq {
			Push[B](t, b)
		}
		return
	}

	t.raw.Reserve(t.len + sq.Upper)
	base := t.len
	written := 0
	next, stop := iter.Pull(sq.Seq)
	defer stop()
	for written < sq.Upper {
		b, ok := next()
		if !ok {
			t.len = base + written
			return
		}
		putColumnUnchecked[B](t, base+written, b)
		written++
	}
	t.len = base + written

	for {
		b, ok := next()
		if !ok {
			return
		}
		Push[B](t, b)
	}
}

// ExtendFromFn appends n bundles produced by f(0), f(1), ..., f(n-1),
// reserving capacity once.
func ExtendFromFn[B Bundle](t *Table, n int, f func(i int) B) {
	requireCompatible[B](t, "extend_from_fn")
	t.raw.Reserve(t.len + n)
	base := t.len
	for i := 0; i < n; i++ {
		putColumnUnchecked[B](t, base+i, f(i))
	}
	t.len += n
}

// ExtendDefault appends n zero-valued bundles of shape B. Go's zero value
// is this engine's stand-in for the source's Default bound.
func ExtendDefault[B Bundle](t *Table, n int) {
	var zero B
	ExtendFromFn[B](t, n, func(int) B { return zero })
}

// ExtendCloned appends n copies of proto. Go struct assignment is already a
// (shallow) clone, so this engine's stand-in for the source's Clone bound
// is simply passing proto by value.
func ExtendCloned[B Bundle](t *Table, n int, proto B) {
	ExtendFromFn[B](t, n, func(int) B { return proto })
}

// TableFromFn builds a new Table for bundle shape B and fills it with n
// rows from f, equivalent to NewTableForBundle followed by ExtendFromFn.
func TableFromFn[B Bundle](n int, f func(i int) B) Table {
	t := NewTableForBundle[B]()
	ExtendFromFn[B](&t, n, f)
	return t
}

// TableFromIter builds a new Table for bundle shape B and fills it from sq,
// equivalent to NewTableForBundle followed by Extend.
func TableFromIter[B Bundle](sq SizedSeq[B]) Table {
	t := NewTableForBundle[B]()
	Extend[B](&t, sq)
	return t
}
