package archtable

import "testing"

type riA struct{ V int64 }
type riB struct{ V int32 }
type riC struct{ V int16 }

func TestNewRowInfoSortsAndSearches(t *testing.T) {
	a := TypeMetadataOf[riA]()
	b := TypeMetadataOf[riB]()
	c := TypeMetadataOf[riC]()

	row := NewRowInfo([]TypeMetadata{c, a, b})
	if row.Len() != 3 {
		t.Fatalf("expected 3 columns, got %d", row.Len())
	}
	for i := 1; i < row.Len(); i++ {
		if !row.Metadata(i - 1).Less(row.Metadata(i)) {
			t.Errorf("columns not sorted ascending by id at %d", i)
		}
	}
	for _, m := range []TypeMetadata{a, b, c} {
		idx, ok := row.search(m.ID)
		if !ok {
			t.Errorf("expected to find id %d", m.ID)
			continue
		}
		if row.Metadata(idx).ID != m.ID {
			t.Errorf("search returned wrong index for id %d", m.ID)
		}
	}
}

func TestNewRowInfoRejectsDuplicates(t *testing.T) {
	a := TypeMetadataOf[riA]()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on duplicate component type")
		}
	}()
	NewRowInfo([]TypeMetadata{a, a})
}

func TestRowInfoSearchMiss(t *testing.T) {
	a := TypeMetadataOf[riA]()
	b := TypeMetadataOf[riB]()
	row := NewRowInfo([]TypeMetadata{a})
	if _, ok := row.search(b.ID); ok {
		t.Errorf("expected search miss for absent type")
	}
	if row.indexOf(b.ID) != -1 {
		t.Errorf("expected indexOf -1 for absent type")
	}
}

func TestRowInfoDanglingBaseAtZeroCapacity(t *testing.T) {
	a := TypeMetadataOf[riA]()
	row := NewRowInfo([]TypeMetadata{a})
	if row.Base(0) == nil {
		t.Errorf("expected a non-nil dangling base pointer")
	}
}
