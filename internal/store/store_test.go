package store

import (
	"path/filepath"
	"testing"
)

// newTestStore returns an empty store backed by a file in a temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "rclip_db.json"))
}

func TestInsert_AssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)

	for want := uint64(1); want <= 5; want++ {
		r := s.Insert("k", "v")
		if r.ID != want {
			t.Fatalf("Insert() id = %d, want %d", r.ID, want)
		}
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
}

func TestInsert_UsesMaxPlusOne(t *testing.T) {
	s := newTestStore(t)
	s.Insert("a", "1")
	s.Insert("b", "2")
	s.Insert("c", "3")

	s.RemoveByID(2)
	if r := s.Insert("d", "4"); r.ID != 4 {
		t.Errorf("Insert() after removing a middle id = %d, want 4", r.ID)
	}

	// Removing the maximum lets its id be handed out again.
	s.RemoveByID(4)
	if r := s.Insert("e", "5"); r.ID != 4 {
		t.Errorf("Insert() after removing the max id = %d, want 4", r.ID)
	}
}

func TestGetByID(t *testing.T) {
	s := newTestStore(t)
	inserted := s.Insert("user", "alice")

	got, ok := s.GetByID(inserted.ID)
	if !ok {
		t.Fatal("GetByID() found = false, want true")
	}
	if got != inserted {
		t.Errorf("GetByID() = %+v, want %+v", got, inserted)
	}

	if _, ok := s.GetByID(99); ok {
		t.Error("GetByID(99) found = true, want false")
	}
}

func TestGetByKey_LowestIDWins(t *testing.T) {
	s := newTestStore(t)
	s.Insert("other", "x")
	s.Insert("foo", "bar")
	s.Insert("foo", "baz")

	got, ok := s.GetByKey("foo")
	if !ok {
		t.Fatal("GetByKey() found = false, want true")
	}
	if got.ID != 2 || got.Value != "bar" {
		t.Errorf("GetByKey() = %+v, want id 2 value bar", got)
	}

	if _, ok := s.GetByKey("missing"); ok {
		t.Error("GetByKey(missing) found = true, want false")
	}
}

func TestRemoveByID(t *testing.T) {
	s := newTestStore(t)
	r := s.Insert("k", "v")

	removed, ok := s.RemoveByID(r.ID)
	if !ok || removed != r {
		t.Fatalf("RemoveByID() = %+v, %v; want %+v, true", removed, ok, r)
	}
	if _, ok := s.GetByID(r.ID); ok {
		t.Error("GetByID() after remove found = true, want false")
	}
	if _, ok := s.RemoveByID(r.ID); ok {
		t.Error("second RemoveByID() found = true, want false")
	}
}

func TestRemoveByKey(t *testing.T) {
	s := newTestStore(t)
	s.Insert("foo", "bar")
	s.Insert("foo", "baz")

	removed, ok := s.RemoveByKey("foo")
	if !ok || removed.ID != 1 {
		t.Fatalf("RemoveByKey() = %+v, %v; want id 1", removed, ok)
	}

	next, ok := s.GetByKey("foo")
	if !ok || next.Value != "baz" {
		t.Errorf("GetByKey() after remove = %+v, %v; want baz", next, ok)
	}

	if _, ok := s.RemoveByKey("nope"); ok {
		t.Error("RemoveByKey(nope) found = true, want false")
	}
}

func TestList_SortedByID(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 12; i++ {
		s.Insert("k", "v")
	}
	s.RemoveByID(3)
	s.RemoveByID(7)
	s.Insert("late", "entry")

	records := s.List()
	if len(records) != 11 {
		t.Fatalf("List() returned %d records, want 11", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].ID >= records[i].ID {
			t.Fatalf("List() not ascending at %d: %d then %d", i, records[i-1].ID, records[i].ID)
		}
	}
	if last := records[len(records)-1]; last.ID != 13 || last.Key != "late" {
		t.Errorf("last record = %+v, want id 13 key late", last)
	}
}

func TestList_Empty(t *testing.T) {
	s := newTestStore(t)
	if records := s.List(); len(records) != 0 {
		t.Errorf("List() on empty store = %v, want empty", records)
	}
}

func TestRecordString(t *testing.T) {
	r := Record{ID: 7, Key: "user", Value: "alice"}
	if got, want := r.String(), "7 => (user => alice)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in     string
		want   uint64
		wantOK bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"18446744073709551615", 18446744073709551615, true},
		{"18446744073709551616", 0, false},
		{"-1", 0, false},
		{"foo", 0, false},
		{"", 0, false},
		{" 1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseID(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseID(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
