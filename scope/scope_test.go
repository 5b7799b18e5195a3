package scope

import "testing"

func TestNew_Interning(t *testing.T) {
	a := New("App|Net|Socket")
	b := New("App|Net|Socket")
	if a != b {
		t.Error("equal text should produce equal handles")
	}

	c := New("App|Net")
	if a == c {
		t.Error("different text should produce different handles")
	}
}

func TestNew_EmptyIsRoot(t *testing.T) {
	if New("") != Root {
		t.Error(`New("") should equal Root`)
	}
	if !Root.IsRoot() {
		t.Error("Root.IsRoot() = false")
	}
	var zero Path
	if zero != Root {
		t.Error("zero Path should equal Root")
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		child  string
		want   bool
	}{
		{"reflexive", "App|Net", "App|Net", true},
		{"direct child", "App", "App|Net", true},
		{"deep descendant", "App", "App|Net|Socket", true},
		{"root contains all", "", "App|Net", true},
		{"root contains root", "", "", true},
		{"sibling", "App|Net", "App|Disk", false},
		{"reversed", "App|Net", "App", false},
		{"text prefix not segment", "App", "AppServer", false},
		{"segment prefix not path prefix", "Net", "App|Net", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.parent).Contains(New(tt.child))
			if got != tt.want {
				t.Errorf("New(%q).Contains(New(%q)) = %v, want %v",
					tt.parent, tt.child, got, tt.want)
			}
		})
	}
}

func TestContains_Transitive(t *testing.T) {
	a := New("A")
	b := New("A|B")
	c := New("A|B|C")
	if !a.Contains(b) || !b.Contains(c) {
		t.Fatal("expected chain containment")
	}
	if !a.Contains(c) {
		t.Error("containment should be transitive")
	}
}

func TestSegments(t *testing.T) {
	segs := New("App|Net|Socket").Segments()
	want := []string{"App", "Net", "Socket"}
	if len(segs) != len(want) {
		t.Fatalf("Segments() = %v, want %v", segs, want)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, segs[i], want[i])
		}
	}

	if Root.Segments() != nil {
		t.Error("Root.Segments() should be nil")
	}
}

func TestJoin(t *testing.T) {
	p := New("App").Join("Net")
	if p != New("App|Net") {
		t.Errorf("Join = %q, want %q", p, "App|Net")
	}
	if Root.Join("App") != New("App") {
		t.Error("Root.Join should not prepend a separator")
	}
}

func TestCompare(t *testing.T) {
	a := New("A")
	b := New("B")
	if a.Compare(b) >= 0 {
		t.Error("A should order before B")
	}
	if b.Compare(a) <= 0 {
		t.Error("B should order after A")
	}
	if a.Compare(New("A")) != 0 {
		t.Error("equal paths should compare equal")
	}
}

func TestIntern_Concurrent(t *testing.T) {
	done := make(chan Path)
	for i := 0; i < 8; i++ {
		go func() {
			done <- New("Concurrent|Path")
		}()
	}
	first := <-done
	for i := 1; i < 8; i++ {
		if p := <-done; p != first {
			t.Error("concurrent interning of same text diverged")
		}
	}
}
