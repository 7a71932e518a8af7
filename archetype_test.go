package archtable

import "testing"

type atPosition struct{ X, Y float32 }
type atVelocity struct{ DX, DY float32 }
type atRotation struct{ Theta float32 }

type pvrBundle = Bundle3[atVelocity, atRotation, atPosition]

func TestArchetypeApplyProjectsAndLeavesOthersUntouched(t *testing.T) {
	arch := NewArchetypeBuilder[pvrBundle]().BuildStaticDefault(3)
	if arch.Kind() != "static" {
		t.Fatalf("expected static kind, got %s", arch.Kind())
	}
	if arch.Len() != 3 {
		t.Fatalf("expected len 3, got %d", arch.Len())
	}

	for row := 0; row < arch.Len(); row++ {
		b := takeColumnUnchecked[pvrBundle](arch.Table(), row)
		b.F1 = atVelocity{DX: float32(row + 1), DY: 0}
		b.F3 = atPosition{}
		putColumnUnchecked(arch.Table(), row, b)
	}
	// Give row a sentinel rotation value to assert it is never written by Apply2.
	for row := 0; row < arch.Len(); row++ {
		b := takeColumnUnchecked[pvrBundle](arch.Table(), row)
		b.F2 = atRotation{Theta: 9}
		putColumnUnchecked(arch.Table(), row, b)
	}

	Apply2(&arch, func(pos *atPosition, vel *atVelocity) {
		pos.X += vel.DX
		pos.Y += vel.DY
	})
	Apply2(&arch, func(pos *atPosition, vel *atVelocity) {
		pos.X += vel.DX
		pos.Y += vel.DY
	})

	for row := 0; row < arch.Len(); row++ {
		b := takeColumnUnchecked[pvrBundle](arch.Table(), row)
		wantX := 2 * float32(row+1)
		if b.F3.X != wantX {
			t.Errorf("row %d: expected X=%v after two applies, got %+v", row, wantX, b.F3)
		}
		if b.F2.Theta != 9 {
			t.Errorf("row %d: expected rotation untouched at 9, got %+v", row, b.F2)
		}
		putColumnUnchecked(arch.Table(), row, b)
	}
}

func TestArchetypeBuildSingleton(t *testing.T) {
	proto := pvrBundle{F1: atVelocity{DX: 1}, F2: atRotation{Theta: 2}, F3: atPosition{X: 3}}
	arch := NewArchetypeBuilder[pvrBundle]().BuildSingleton(proto)
	if arch.Kind() != "singleton" || arch.Len() != 1 {
		t.Fatalf("expected singleton of len 1, got kind=%s len=%d", arch.Kind(), arch.Len())
	}
	got := takeColumnUnchecked[pvrBundle](arch.Table(), 0)
	if got != proto {
		t.Errorf("expected singleton row to match proto, got %+v", got)
	}
	putColumnUnchecked(arch.Table(), 0, got)
}

func TestArchetypeBuildDynamicGrowsViaTable(t *testing.T) {
	arch := NewArchetypeBuilder[pvrBundle]().BuildDynamic()
	if arch.Kind() != "dynamic" || arch.Len() != 0 {
		t.Fatalf("expected empty dynamic archetype, got kind=%s len=%d", arch.Kind(), arch.Len())
	}
	Push(arch.Table(), pvrBundle{F1: atVelocity{DX: 1}})
	Push(arch.Table(), pvrBundle{F1: atVelocity{DX: 2}})
	if arch.Len() != 2 {
		t.Fatalf("expected len 2 after two pushes, got %d", arch.Len())
	}
	sum := float32(0)
	Apply1(&arch, func(v *atVelocity) { sum += v.DX })
	if sum != 3 {
		t.Errorf("expected sum 3, got %v", sum)
	}
}

func TestArchetypeBuildStaticClonesProto(t *testing.T) {
	proto := pvrBundle{F1: atVelocity{DX: 5}}
	arch := NewArchetypeBuilder[pvrBundle]().BuildStatic(4, proto)
	if arch.Len() != 4 {
		t.Fatalf("expected len 4, got %d", arch.Len())
	}
	count := 0
	Apply1(&arch, func(v *atVelocity) {
		if v.DX != 5 {
			t.Errorf("expected every row cloned from proto, got %+v", v)
		}
		count++
	})
	if count != 4 {
		t.Errorf("expected apply to visit 4 rows, got %d", count)
	}
}

func TestArchetypeBuildDynamicWithCapacityReservesUpFront(t *testing.T) {
	arch := NewArchetypeBuilder[pvrBundle]().BuildDynamicWithCapacity(64)
	if arch.Len() != 0 {
		t.Fatalf("expected empty archetype, got len %d", arch.Len())
	}
	if arch.Table().Capacity() < 64 {
		t.Errorf("expected capacity >= 64, got %d", arch.Table().Capacity())
	}
}

func TestArchetypeBuildStaticNegativeSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for negative static size")
		}
	}()
	NewArchetypeBuilder[pvrBundle]().BuildStatic(-1, pvrBundle{})
}

func TestApplyMissingColumnPanics(t *testing.T) {
	arch := NewArchetypeBuilder[Bundle1[atVelocity]]().BuildStaticDefault(1)
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic applying over a column absent from the archetype")
		}
	}()
	Apply1(&arch, func(*atPosition) {})
}

func TestApplyDuplicateProjectionPanics(t *testing.T) {
	arch := NewArchetypeBuilder[Bundle2[atVelocity, atPosition]]().BuildStaticDefault(1)
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic projecting the same type twice")
		}
	}()
	Apply2(&arch, func(*atVelocity, *atVelocity) {})
}
