package archtable

import "testing"

// droopy is the suite's drop-counting fixture, restored per spec.md §8's
// own scenario list from original_source/osiris-ecs's storage/test.rs.
type droopy struct {
	n       int
	counter *int
}

func (d droopy) ArchtableDrop() { *d.counter++ }

func newDroopies(n int) ([]droopy, []int) {
	counters := make([]int, n)
	ds := make([]droopy, n)
	for i := range ds {
		ds[i] = droopy{n: i, counter: &counters[i]}
	}
	return ds, counters
}

type droopyBundle = Bundle1[droopy]

func TestTableDropCountingOnClear(t *testing.T) {
	ds, counters := newDroopies(1000)
	table := NewTableForBundle[droopyBundle]()
	ExtendFromFn(&table, len(ds), func(i int) droopyBundle { return droopyBundle{F1: ds[i]} })

	table.Clear()

	for i, c := range counters {
		if c != 1 {
			t.Errorf("counter %d: expected 1 drop, got %d", i, c)
		}
	}
	if table.Len() != 0 || table.Capacity() != 0 {
		t.Errorf("expected len=0 capacity=0 after clear, got len=%d capacity=%d", table.Len(), table.Capacity())
	}
}

func TestTableDropCountingOnClose(t *testing.T) {
	// Go has no implicit drop at scope exit (see DESIGN.md); Close is this
	// engine's explicit equivalent to "the Table falls out of scope".
	ds, counters := newDroopies(1000)
	table := NewTableForBundle[droopyBundle]()
	ExtendFromFn(&table, len(ds), func(i int) droopyBundle { return droopyBundle{F1: ds[i]} })

	table.Close()

	for i, c := range counters {
		if c != 1 {
			t.Errorf("counter %d: expected 1 drop, got %d", i, c)
		}
	}
}

func TestTablePushPath(t *testing.T) {
	ds, counters := newDroopies(1000)
	table := NewTableForBundle[droopyBundle]()
	for _, d := range ds {
		Push(&table, droopyBundle{F1: d})
	}
	if table.Capacity() < 1000 {
		t.Errorf("expected capacity >= 1000, got %d", table.Capacity())
	}
	if table.Len() != 1000 {
		t.Errorf("expected len 1000, got %d", table.Len())
	}
	table.Clear()
	for i, c := range counters {
		if c != 1 {
			t.Errorf("counter %d: expected 1 drop, got %d", i, c)
		}
	}
}

func TestTableInsertAt(t *testing.T) {
	ds, counters := newDroopies(999)
	table := NewTableForBundle[droopyBundle]()
	for _, d := range ds {
		Push(&table, droopyBundle{F1: d})
	}

	replacementCounter := 0
	replacement := droopy{n: 999, counter: &replacementCounter}
	former := InsertAt(&table, 499, droopyBundle{F1: replacement})

	DropBundle(former)
	if counters[499] != 1 {
		t.Errorf("expected the former occupant's counter to be 1 immediately after drop, got %d", counters[499])
	}

	table.Clear()
	for i, c := range counters {
		if i == 499 {
			continue
		}
		if c != 1 {
			t.Errorf("counter %d: expected 1 drop after clear, got %d", i, c)
		}
	}
	if replacementCounter != 1 {
		t.Errorf("expected replacement counter to be 1 after clear, got %d", replacementCounter)
	}
}

func TestTableSwapRemoveHalf(t *testing.T) {
	ds, counters := newDroopies(1000)
	table := NewTableForBundle[droopyBundle]()
	for _, d := range ds {
		Push(&table, droopyBundle{F1: d})
	}

	for i := 0; i < 500; i++ {
		table.SwapRemove(i)
		if counters[i] != 1 {
			t.Fatalf("counter %d: expected 1 drop immediately after swap_remove, got %d", i, counters[i])
		}
	}

	table.Clear()
	for i, c := range counters {
		if c != 1 {
			t.Errorf("counter %d: expected 1 drop, got %d", i, c)
		}
	}
}

func TestTableSwapPopHalf(t *testing.T) {
	ds, counters := newDroopies(1000)
	table := NewTableForBundle[droopyBundle]()
	for _, d := range ds {
		Push(&table, droopyBundle{F1: d})
	}

	for i := 0; i < 500; i++ {
		out := SwapPop[droopyBundle](&table, i)
		if out.F1.n != i {
			t.Fatalf("expected swap_pop(%d) to return row %d, got %d", i, i, out.F1.n)
		}
		if *out.F1.counter != 0 {
			t.Fatalf("expected counter %d to still be 0 before the caller drops it, got %d", i, *out.F1.counter)
		}
		DropBundle(out)
	}

	table.Clear()
	for i, c := range counters {
		if c != 1 {
			t.Errorf("counter %d: expected 1 drop, got %d", i, c)
		}
	}
}

func TestTablePopFromTail(t *testing.T) {
	ds, counters := newDroopies(1000)
	table := NewTableForBundle[droopyBundle]()
	for _, d := range ds {
		Push(&table, droopyBundle{F1: d})
	}

	for i := 999; i >= 500; i-- {
		out := Pop[droopyBundle](&table)
		if out.F1.n != i {
			t.Fatalf("expected pop to return row %d, got %d", i, out.F1.n)
		}
		if *out.F1.counter != 0 {
			t.Fatalf("expected counter %d to still be 0 before the caller drops it, got %d", i, *out.F1.counter)
		}
		DropBundle(out)
	}

	table.Clear()
	for i, c := range counters {
		if c != 1 {
			t.Errorf("counter %d: expected 1 drop, got %d", i, c)
		}
	}
}

type posBundle = Bundle1[tidPosition]

func TestTableRoundTrip(t *testing.T) {
	table := NewTableForBundle[posBundle]()
	want := posBundle{F1: tidPosition{X: 1, Y: 2}}
	Push(&table, want)
	got := Pop[posBundle](&table)
	if got != want {
		t.Errorf("expected round-trip %+v, got %+v", want, got)
	}
}

func TestTableSwapPopEquivalence(t *testing.T) {
	table := NewTableForBundle[posBundle]()
	for i := 0; i < 5; i++ {
		Push(&table, posBundle{F1: tidPosition{X: float32(i)}})
	}
	out := SwapPop[posBundle](&table, 1)
	if out.F1.X != 1 {
		t.Errorf("expected swap_pop(1) to return former row 1, got %+v", out)
	}
	// Former last row (index 4) should now occupy index 1.
	remaining := Pop[posBundle](&table) // index 3 now
	if remaining.F1.X != 3 {
		t.Errorf("expected remaining last row to still be row 3, got %+v", remaining)
	}
}

func TestTableExtendEquivalence(t *testing.T) {
	items := []posBundle{
		{F1: tidPosition{X: 0}},
		{F1: tidPosition{X: 1}},
		{F1: tidPosition{X: 2}},
	}

	viaPush := NewTableForBundle[posBundle]()
	for _, it := range items {
		Push(&viaPush, it)
	}

	viaExtend := NewTableForBundle[posBundle]()
	Extend(&viaExtend, SliceSeq(items))

	if viaPush.Len() != viaExtend.Len() {
		t.Fatalf("expected equal lengths, got %d and %d", viaPush.Len(), viaExtend.Len())
	}
	for i := 0; i < viaPush.Len(); i++ {
		a := takeColumnUnchecked[posBundle](&viaPush, i)
		b := takeColumnUnchecked[posBundle](&viaExtend, i)
		if a != b {
			t.Errorf("row %d differs: %+v vs %+v", i, a, b)
		}
		// takeColumnUnchecked leaves the slot logically uninitialized but
		// does not shrink len; put the bytes back so Clear doesn't double
		// free anything it thinks it owns.
		putColumnUnchecked(&viaPush, i, a)
		putColumnUnchecked(&viaExtend, i, b)
	}
	viaPush.Clear()
	viaExtend.Clear()
}

func TestTableErase(t *testing.T) {
	table := NewTableForBundle[posBundle]()
	for i := 0; i < 5; i++ {
		Push(&table, posBundle{F1: tidPosition{X: float32(i)}})
	}
	table.Erase(1, 2) // remove rows 1,2 (X=1,X=2); row 3,4 shift left
	if table.Len() != 3 {
		t.Fatalf("expected len 3 after erase, got %d", table.Len())
	}
	want := []float32{0, 3, 4}
	for i, w := range want {
		got := takeColumnUnchecked[posBundle](&table, i)
		if got.F1.X != w {
			t.Errorf("row %d: expected X=%v, got %+v", i, w, got)
		}
		putColumnUnchecked(&table, i, got)
	}
	table.Clear()
}

func TestTableEraseWholeTailAllowed(t *testing.T) {
	// spec.md §9's Open Question: idx+count <= len must be legal, since
	// erasing the table's own tail would otherwise be impossible.
	table := NewTableForBundle[posBundle]()
	for i := 0; i < 3; i++ {
		Push(&table, posBundle{F1: tidPosition{X: float32(i)}})
	}
	table.Erase(1, 2)
	if table.Len() != 1 {
		t.Fatalf("expected len 1, got %d", table.Len())
	}
	table.Clear()
}

func TestPopFromEmptyPanics(t *testing.T) {
	table := NewTableForBundle[posBundle]()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic popping from an empty table")
		}
	}()
	Pop[posBundle](&table)
}

func TestIncompatibleBundlePanics(t *testing.T) {
	table := NewTableForBundle[posBundle]()
	Push(&table, posBundle{F1: tidPosition{X: 1}})
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic pushing an incompatible bundle shape")
		}
	}()
	Push(&table, Bundle1[tidVelocity]{F1: tidVelocity{DX: 1}})
}

func TestIsBundleCompatible(t *testing.T) {
	table := NewTableForBundle[posBundle]()
	if !IsBundleCompatible[posBundle](&table) {
		t.Errorf("expected posBundle to be compatible with its own table")
	}
	if IsBundleCompatible[Bundle1[tidVelocity]](&table) {
		t.Errorf("expected an unrelated bundle shape to be incompatible")
	}
}
