package archtable

import "testing"

type tidPosition struct{ X, Y float32 }
type tidVelocity struct{ DX, DY float32 }

func TestTypeMetadataOfIdempotent(t *testing.T) {
	a := TypeMetadataOf[tidPosition]()
	b := TypeMetadataOf[tidPosition]()
	if a.ID != b.ID {
		t.Errorf("expected stable id across calls, got %d and %d", a.ID, b.ID)
	}
	if a.Size != b.Size || a.Align != b.Align {
		t.Errorf("expected stable layout across calls, got %+v and %+v", a, b)
	}
}

func TestTypeMetadataOfDistinctTypesDistinctIDs(t *testing.T) {
	pos := TypeMetadataOf[tidPosition]()
	vel := TypeMetadataOf[tidVelocity]()
	if pos.ID == vel.ID {
		t.Errorf("expected distinct ids for distinct types, got %d for both", pos.ID)
	}
}

func TestTypeMetadataLess(t *testing.T) {
	pos := TypeMetadataOf[tidPosition]()
	vel := TypeMetadataOf[tidVelocity]()
	if pos.ID < vel.ID && !pos.Less(vel) {
		t.Errorf("Less disagrees with ID order")
	}
	if vel.ID < pos.ID && !vel.Less(pos) {
		t.Errorf("Less disagrees with ID order")
	}
}

func TestMustFindMetadataRoundTrip(t *testing.T) {
	pos := TypeMetadataOf[tidPosition]()
	found := MustFindMetadata(pos.ID)
	if found.ID != pos.ID || found.Name() != pos.Name() {
		t.Errorf("expected %+v, got %+v", pos, found)
	}
}

func TestMustFindMetadataUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for unknown type id")
		}
	}()
	MustFindMetadata(TypeID(1 << 20))
}
