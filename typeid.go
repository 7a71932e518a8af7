// Package archtable implements a type-erased, columnar archetype storage
// engine: a Struct-of-Arrays table that stores fixed-shape tuples of
// heterogeneous component values, plus the statically-typed archetype
// builder that specializes storage to a declared component list.
package archtable

import (
	"fmt"
	"reflect"
	"unsafe"
)

// TypeID is a stable, process-local type identity token. It is unique per
// registered component type, equipped with equality and a total order (plain
// integer comparison). TypeID is the sort key for every column order in this
// package.
type TypeID uint32

var (
	typeToID = make(map[reflect.Type]TypeID, 64)
	idToMeta = make([]TypeMetadata, 0, 64)
)

// resetTypeRegistry clears the global type registry. Test-only: mirrors
// lazyecs's ResetGlobalRegistry so independent test cases don't leak type
// identities (and therefore column order) into one another.
func resetTypeRegistry() {
	typeToID = make(map[reflect.Type]TypeID, 64)
	idToMeta = idToMeta[:0]
}

// TypeMetadata is a plain, per-component-type descriptor: identity, layout,
// and a drop thunk. Equality and ordering are defined solely on ID.
type TypeMetadata struct {
	ID     TypeID
	Size   uintptr
	Align  uintptr
	rtype  reflect.Type
	dropFn func(unsafe.Pointer)
}

// Name returns the component type's Go type name, for diagnostics only. It
// plays no part in equality, ordering, or hashing.
func (m TypeMetadata) Name() string {
	if m.rtype == nil {
		return "<invalid>"
	}
	return m.rtype.String()
}

// Less reports whether m sorts before other under the canonical column
// order, which is the order on TypeID.
func (m TypeMetadata) Less(other TypeMetadata) bool { return m.ID < other.ID }

// Drop invokes the component's drop thunk on the value at ptr. In this
// engine the drop thunk's job is to erase any pointers the slot held so the
// Go garbage collector does not keep referents alive past the row's
// lifetime (columns here are raw, untyped byte ranges the collector cannot
// scan — see DESIGN.md). For a pointer-free component this is a plain zero.
func (m TypeMetadata) Drop(ptr unsafe.Pointer) {
	m.dropFn(ptr)
}

// dangling returns a non-nil, non-dereferenceable pointer suitably aligned
// for layout, used as a column base pointer when capacity is zero. Mirrors
// Rust's Layout::dangling(): callers must never read or write through it.
func (m TypeMetadata) dangling() unsafe.Pointer {
	return unsafe.Pointer(m.Align)
}

// TypeMetadataOf returns (registering if necessary) the TypeMetadata for T.
// Pure and idempotent: repeated calls for the same T return identical
// metadata, including ID.
func TypeMetadataOf[T any]() TypeMetadata {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil {
		// T is an interface type instantiated with a nil value; reflect
		// cannot recover it from a zero value, so fall back to the
		// interface's own static type.
		rt = reflect.TypeFor[T]()
	}
	if id, ok := typeToID[rt]; ok {
		return idToMeta[id]
	}

	id := TypeID(len(idToMeta))
	size := rt.Size()
	align := uintptr(rt.Align())
	if align == 0 {
		align = 1
	}

	meta := TypeMetadata{
		ID:    id,
		Size:  size,
		Align: align,
		rtype: rt,
		dropFn: func(ptr unsafe.Pointer) {
			dropAt[T](ptr)
		},
	}
	typeToID[rt] = id
	idToMeta = append(idToMeta, meta)
	return meta
}

// Dropper is the Go stand-in for the source's Drop trait. Go has no
// language-level destructors, so a component that needs one (closing a
// handle, decrementing a shared counter) implements Dropper and this
// engine calls it from the drop thunk before the slot is erased — the
// same role Rust's Drop::drop plays, invoked through a function pointer
// exactly as spec.md §4.1 describes ("a drop thunk... invokes T's
// destructor"), just opt-in rather than automatic.
type Dropper interface {
	ArchtableDrop()
}

// dropAt runs T's Dropper implementation, if any, then erases the value at
// ptr so the collector can reclaim any pointers it held. The caller
// considers the slot logically uninitialized afterward.
func dropAt[T any](ptr unsafe.Pointer) {
	v := (*T)(ptr)
	if d, ok := any(v).(Dropper); ok {
		d.ArchtableDrop()
	} else if d, ok := any(*v).(Dropper); ok {
		d.ArchtableDrop()
	}
	var zero T
	*v = zero
}

// MustFindMetadata looks up metadata for an already-registered TypeID. It
// panics if id was never produced by TypeMetadataOf — a programmer fault,
// since TypeIDs never escape this package except embedded in TypeMetadata
// values callers already hold.
func MustFindMetadata(id TypeID) TypeMetadata {
	if int(id) >= len(idToMeta) {
		panic(fmt.Sprintf("archtable: unknown type id %d", id))
	}
	return idToMeta[id]
}
