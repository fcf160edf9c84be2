package components

import "testing"

func testItems(n int) []ClipItem {
	items := make([]ClipItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, ClipItem{ID: int64(i + 1), Title: "clip"})
	}
	return items
}

func TestClipListSelection(t *testing.T) {
	s := ClipListState{Items: testItems(3)}

	s.MoveUp()
	if s.SelectedIndex != 0 {
		t.Errorf("SelectedIndex = %d, want 0 (MoveUp at top is a no-op)", s.SelectedIndex)
	}

	s.MoveDown()
	s.MoveDown()
	if s.SelectedIndex != 2 {
		t.Errorf("SelectedIndex = %d, want 2", s.SelectedIndex)
	}

	s.MoveDown()
	if s.SelectedIndex != 2 {
		t.Errorf("SelectedIndex = %d, want 2 (MoveDown at bottom is a no-op)", s.SelectedIndex)
	}

	item := s.GetSelectedItem()
	if item == nil || item.ID != 3 {
		t.Fatalf("GetSelectedItem = %+v, want item with ID 3", item)
	}
}

func TestClipListSelectionEmpty(t *testing.T) {
	var s ClipListState
	if item := s.GetSelectedItem(); item != nil {
		t.Errorf("GetSelectedItem on empty list = %+v, want nil", item)
	}
	s.MoveDown()
	if s.SelectedIndex != 0 {
		t.Errorf("SelectedIndex = %d, want 0", s.SelectedIndex)
	}
}

func TestSearchInputEditing(t *testing.T) {
	var s SearchInputState

	for _, r := range "epic" {
		s.InsertChar(r)
	}
	if s.Input != "epic" || s.CursorPos != 4 {
		t.Fatalf("Input = %q cursor %d, want %q cursor 4", s.Input, s.CursorPos, "epic")
	}

	s.Backspace()
	if s.Input != "epi" || s.CursorPos != 3 {
		t.Errorf("after Backspace: Input = %q cursor %d, want %q cursor 3", s.Input, s.CursorPos, "epi")
	}

	s.MoveCursorLeft()
	s.MoveCursorLeft()
	s.InsertChar('x')
	if s.Input != "expi" {
		t.Errorf("after mid-string insert: Input = %q, want %q", s.Input, "expi")
	}

	s.Clear()
	if s.Input != "" || s.CursorPos != 0 {
		t.Errorf("after Clear: Input = %q cursor %d, want empty", s.Input, s.CursorPos)
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{61.4, "1:01"},
		{-5, "0:00"},
		{600, "10:00"},
	}
	for _, tt := range tests {
		if got := formatTime(tt.seconds); got != tt.want {
			t.Errorf("formatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
