package archtable

import (
	"unsafe"
)

// RawTable is the untyped columnar allocator: one contiguous backing
// buffer holding one array per column, concatenated in RowInfo order (each
// column array itself padded to its own alignment). RawTable has no notion
// of a valid row count — that is Table's job.
//
// The backing store is a plain Go []byte. This mirrors lazyecs's own
// Archetype.componentData ([][]byte columns in world.go), generalized to a
// single combined allocation per spec.md §4.4. As in the teacher's byte-slice
// columns, the collector cannot scan into this buffer: components stored
// here must not be the only live reference to heap data they point to for
// longer than the call that reads them out (see DESIGN.md).
type RawTable struct {
	data     []byte
	capacity int
	row      RowInfo
	offsets  []columnLayout // column i's current byte offset/stride within data
}

// NewRawTable builds a zero-capacity RawTable from an unordered metadata
// slice, validating distinctness (see NewRowInfo).
func NewRawTable(metas []TypeMetadata) RawTable {
	return RawTable{row: NewRowInfo(metas)}
}

// NewRawTableUnchecked builds a zero-capacity RawTable assuming metas is
// already sorted and duplicate-free (e.g. a Bundle's own TypeMetadata()).
func NewRawTableUnchecked(sortedMetas []TypeMetadata) RawTable {
	return RawTable{row: NewRowInfoUnchecked(sortedMetas)}
}

// Capacity returns the number of rows the current backing buffer can hold.
func (rt *RawTable) Capacity() int { return rt.capacity }

// NumColumns returns the number of columns.
func (rt *RawTable) NumColumns() int { return rt.row.Len() }

// ColumnMetadata returns column i's metadata (sorted-by-identity order).
func (rt *RawTable) ColumnMetadata(i int) TypeMetadata { return rt.row.Metadata(i) }

// ColumnBase returns the base address of column i's array.
func (rt *RawTable) ColumnBase(i int) unsafe.Pointer { return rt.row.Base(i) }

// ColumnElem returns the address of column i's element at row idx.
func (rt *RawTable) ColumnElem(i int, idx int) unsafe.Pointer {
	stride := paddedElemSize(rt.row.Metadata(i))
	return unsafe.Add(rt.row.Base(i), stride*uintptr(idx))
}

// Reserve ensures capacity is at least total, growing via Grow's amortized
// doubling if needed. A no-op when total <= capacity.
func (rt *RawTable) Reserve(total int) {
	if total <= rt.capacity {
		return
	}
	rt.Grow(total - rt.capacity)
}

// Grow grows capacity by at least minAdditional rows, using amortized
// doubling: new capacity is capacity + max(capacity, minAdditional).
func (rt *RawTable) Grow(minAdditional int) {
	additional := rt.capacity
	if minAdditional > additional {
		additional = minAdditional
	}
	rt.growExact(additional)
}

// growExact grows the backing allocation to hold capacity+additional rows,
// copying existing column contents into their new offsets and updating
// RowInfo's base pointers. Columns are copied in reverse RowInfo order,
// matching spec.md §4.4's note that this is for consistency with in-place
// moves even though source and destination are disjoint allocations here.
func (rt *RawTable) growExact(additional int) {
	newCap := rt.capacity + additional
	metas := make([]TypeMetadata, rt.row.Len())
	for i := 0; i < rt.row.Len(); i++ {
		metas[i] = rt.row.Metadata(i)
	}
	newOffsets, newTotal, _ := rawLayout(metas, newCap)

	var newData []byte
	if newTotal > 0 {
		newData = make([]byte, newTotal)
	}

	oldData := rt.data
	oldOffsets := rt.offsets
	oldCap := rt.capacity
	for i := rt.row.Len() - 1; i >= 0; i-- {
		stride := paddedElemSize(rt.row.Metadata(i))
		if stride == 0 || oldCap == 0 {
			continue
		}
		n := stride * uintptr(oldCap)
		dst := unsafe.Pointer(&newData[newOffsets[i].offset])
		src := unsafe.Pointer(&oldData[oldOffsets[i].offset])
		copyBytes(dst, src, n)
	}

	for i := 0; i < rt.row.Len(); i++ {
		if newTotal == 0 {
			rt.row.SetBase(i, rt.row.Metadata(i).dangling())
			continue
		}
		rt.row.SetBase(i, unsafe.Pointer(&newData[newOffsets[i].offset]))
	}

	rt.data = newData
	rt.offsets = newOffsets
	rt.capacity = newCap
}

// DropColumn invokes column i's drop thunk on the element at idx. The
// caller guarantees the row is initialized.
func (rt *RawTable) DropColumn(i int, idx int) {
	rt.row.Metadata(i).Drop(rt.ColumnElem(i, idx))
}

// DropRow invokes every column's drop thunk on row idx. The caller
// guarantees the row is initialized.
func (rt *RawTable) DropRow(idx int) {
	for i := 0; i < rt.row.Len(); i++ {
		rt.DropColumn(i, idx)
	}
}

// SwapColumns exchanges row a and row b across every column, byte-swapping
// only each column's meaningful Size() bytes (padding need not move). A
// no-op when a == b.
func (rt *RawTable) SwapColumns(a, b int) {
	if a == b {
		return
	}
	for i := 0; i < rt.row.Len(); i++ {
		meta := rt.row.Metadata(i)
		if meta.Size == 0 {
			continue
		}
		swapBytes(rt.ColumnElem(i, a), rt.ColumnElem(i, b), meta.Size)
	}
}

// ColumnVisitor is called once per column, in RowInfo order, with that
// column's metadata and the address of its element at idx.
type ColumnVisitor func(meta TypeMetadata, ptr unsafe.Pointer)

// ColumnIter calls visit once per column, in RowInfo order, for row idx.
func (rt *RawTable) ColumnIter(idx int, visit ColumnVisitor) {
	for i := 0; i < rt.row.Len(); i++ {
		visit(rt.row.Metadata(i), rt.ColumnElem(i, idx))
	}
}

// ColumnIterRange calls visit once per column, in RowInfo order, for the
// element at the start of the run beginning at startIdx (the visitor is
// responsible for advancing by stride itself when walking multiple rows;
// see ColumnStride).
func (rt *RawTable) ColumnIterRange(startIdx int, visit ColumnVisitor) {
	for i := 0; i < rt.row.Len(); i++ {
		visit(rt.row.Metadata(i), rt.ColumnElem(i, startIdx))
	}
}

// ColumnStride returns column i's per-element byte stride.
func (rt *RawTable) ColumnStride(i int) uintptr {
	return paddedElemSize(rt.row.Metadata(i))
}

// Clear releases the backing allocation and resets every column to
// dangling, without dropping any element — Table is responsible for
// dropping rows [0, len) first.
func (rt *RawTable) Clear() {
	rt.data = nil
	rt.offsets = nil
	rt.capacity = 0
	for i := 0; i < rt.row.Len(); i++ {
		rt.row.SetBase(i, rt.row.Metadata(i).dangling())
	}
}
