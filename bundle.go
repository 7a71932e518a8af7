package archtable

import "unsafe"

// PutVisitor is presented with each bundle field's address and type
// identity, in sorted-by-identity order, during Put. It must copy exactly
// Size(id) bytes out of ptr before returning, since whoever calls it takes
// ownership of those bytes from that point on.
type PutVisitor func(ptr unsafe.Pointer, id TypeID)

// TakeVisitor is presented with each bundle field's uninitialized address
// and type identity, in sorted-by-identity order, during Take. It must
// write exactly Size(id) bytes into ptr before returning.
type TakeVisitor func(ptr unsafe.Pointer, id TypeID)

// Bundle is the protocol satisfied by every generated BundleN type: a
// statically-known, finite, ordered tuple of distinct component types, the
// unit of row I/O for push/pop/insert_at/swap_pop. See bundle_generated.go
// for the concrete arities (1 through 16).
//
// The source's "put suppresses the bundle's own destructor" step has no Go
// equivalent and needs none: Go has no destructors, and bundles are passed
// by value, so the table's copy of a field's bytes and the caller's
// original value are already independent the moment put/take return.
type Bundle interface {
	// TypeMetadata returns this bundle shape's column metadata, sorted by
	// TypeID. Pure: every call for the same instantiated type returns
	// equal contents in a fresh slice.
	TypeMetadata() []TypeMetadata

	// put presents each field's address to f in sorted-by-identity order.
	put(f PutVisitor)

	// take fills a fresh instance of this bundle shape by presenting each
	// field's address to f in sorted-by-identity order, then returns it.
	take(f TakeVisitor) Bundle
}

// DropBundle runs every field's drop thunk (see Dropper) on a bundle the
// caller owns but no longer needs — the table's Pop/SwapPop/InsertAt hand
// ownership of a row's worth of components to the caller exactly this way,
// and Go, unlike the source, never does this automatically at scope exit.
// Calling DropBundle on a bundle the caller intends to keep using is
// pointless but not unsafe: it only runs Dropper implementations and zeroes
// the fields of its own copy of b, the same as any other drop; the caller's
// value is left as it was.
func DropBundle[B Bundle](b B) {
	b.put(func(ptr unsafe.Pointer, id TypeID) {
		MustFindMetadata(id).Drop(ptr)
	})
}
