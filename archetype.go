package archtable

import "fmt"

// archetypeKind records which of the three storage shapes spec.md §4.6
// describes an Archetype was built with. Go's type system cannot encode a
// type-level ComponentList crossed with a const-generic N (ToArray<N>)
// without one generated type per (arity, N) pair — combinatorial, and N is
// a runtime value here in any case (BuildStatic takes n as an int
// argument, same as lazyecs's own NewEntities(count int) does for its
// batch paths). All three shapes therefore share one underlying Table,
// distinguished only by this tag and by how they're built and used: a
// documented caller contract rather than a type-system guarantee. See
// DESIGN.md's Open Question resolution for §4.6/4.7.
type archetypeKind int

const (
	kindDynamic archetypeKind = iota
	kindStatic
	kindSingleton
)

// Archetype is a typed façade over a Table, realizing bundle shape B in one
// of three shapes: singleton (exactly one row, built once), fixed (exactly
// N rows, built once), or dynamic (growable). Apply projects each row onto
// a caller-chosen column subset and invokes a callback.
type Archetype[B Bundle] struct {
	table Table
	kind  archetypeKind
	fixed int
}

// Len returns the archetype's current row count (always fixed for
// singleton/static shapes, variable for dynamic).
func (a *Archetype[B]) Len() int { return a.table.Len() }

// Table exposes the underlying Table for row mutation. This is only a
// faithful fit for dynamic archetypes — pushing or popping rows on a
// singleton or static archetype breaks the "exactly one" / "exactly N"
// shape contract the builder established, but Go has no way to withhold
// Table's row-mutating free functions per archetypeKind without a distinct
// wrapper type per shape (which ArchetypeBuilder already avoids emitting,
// per the same Open Question). Callers of a fixed-shape archetype's Table
// are expected to only ever call Apply and read-only introspection.
func (a *Archetype[B]) Table() *Table { return &a.table }

// Kind reports which storage shape this archetype was built with, for
// callers that want to assert the fixed-shape contract themselves.
func (a *Archetype[B]) Kind() string {
	switch a.kind {
	case kindSingleton:
		return "singleton"
	case kindStatic:
		return "static"
	default:
		return "dynamic"
	}
}

// ArchetypeBuilder is a zero-sized, phantom-typed accumulator over bundle
// shape B. In the source, ArchetypeBuilder starts from the empty
// type-level list and add_component::<C>() prepends to it one type at a
// time, so that build_* is parameterized purely by what's already been
// accumulated. Go has no type-level list to prepend to without one
// generated builder-state type per arity-so-far (again combinatorial), so
// this module's Open Question resolution is to let the bundle type itself
// — Bundle3[Position, Velocity, Health], say — stand in for the fully
// accumulated list: picking B is the add_component chain, already done, at
// the type-parameter level Go does support. NewArchetypeBuilder[B]() is
// the moment that corresponds to the source's ArchetypeBuilder::new()
// followed immediately by every add_component call the caller would have
// made.
type ArchetypeBuilder[B Bundle] struct{}

// NewArchetypeBuilder returns the (zero-sized) builder for bundle shape B.
func NewArchetypeBuilder[B Bundle]() ArchetypeBuilder[B] { return ArchetypeBuilder[B]{} }

// BuildSingleton builds a one-row archetype, no growth, seeded with proto.
func (ArchetypeBuilder[B]) BuildSingleton(proto B) Archetype[B] {
	t := NewTableForBundle[B]()
	ExtendCloned[B](&t, 1, proto)
	return Archetype[B]{table: t, kind: kindSingleton, fixed: 1}
}

// BuildDynamic builds an empty, growable archetype.
func (ArchetypeBuilder[B]) BuildDynamic() Archetype[B] {
	return Archetype[B]{table: NewTableForBundle[B](), kind: kindDynamic}
}

// BuildDynamicWithCapacity builds an empty, growable archetype with
// capacityHint rows reserved up front — the source's storage/dynamic.rs
// carries its own with_capacity constructor alongside the bare new().
func (ArchetypeBuilder[B]) BuildDynamicWithCapacity(capacityHint int) Archetype[B] {
	return Archetype[B]{table: NewTableForBundleWithCapacity[B](capacityHint), kind: kindDynamic}
}

// BuildStatic builds an exactly-n-row archetype, each row a clone of proto,
// reserved once with no further growth expected.
func (ArchetypeBuilder[B]) BuildStatic(n int, proto B) Archetype[B] {
	if n < 0 {
		panic(fmt.Sprintf("archtable: build_static: negative size %d", n))
	}
	t := NewTableForBundle[B]()
	ExtendCloned[B](&t, n, proto)
	return Archetype[B]{table: t, kind: kindStatic, fixed: n}
}

// BuildStaticDefault builds an exactly-n-row archetype, each row the zero
// value of B, reserved once with no further growth expected.
func (ArchetypeBuilder[B]) BuildStaticDefault(n int) Archetype[B] {
	if n < 0 {
		panic(fmt.Sprintf("archtable: build_static_default: negative size %d", n))
	}
	t := NewTableForBundle[B]()
	ExtendDefault[B](&t, n)
	return Archetype[B]{table: t, kind: kindStatic, fixed: n}
}

// columnIndexForType resolves, once per Apply call rather than once per
// row, the table column holding values of type T. Panics if T's column is
// absent — the closest a registry-backed runtime lookup gets to the
// source's compile-time "pick these fields by type" trait, which fails to
// compile on a miss; see SPEC_FULL.md.
func columnIndexForType[T any](t *Table) int {
	id := TypeMetadataOf[T]().ID
	for i := 0; i < t.raw.NumColumns(); i++ {
		if t.raw.ColumnMetadata(i).ID == id {
			return i
		}
	}
	panic(fmt.Sprintf("archtable: apply: no column of type %s in this archetype", TypeMetadataOf[T]().Name()))
}
