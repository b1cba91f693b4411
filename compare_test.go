package owning

import (
	"sort"
	"testing"
)

func TestEqual_Identity(t *testing.T) {
	x := New(counter{N: 1})
	y := New(counter{N: 1})

	if x.MustDeref().N != y.MustDeref().N {
		t.Fatal("fixtures should hold equal values")
	}
	if Equal(&x, &y) {
		t.Error("distinct allocations with equal values should not be Equal")
	}
	if !NotEqual(&x, &y) {
		t.Error("NotEqual() should hold for distinct allocations")
	}
	if !Equal(&x, &x) {
		t.Error("a Ptr should be Equal to itself")
	}
}

func TestEqual_CrossType(t *testing.T) {
	var a Ptr[int]
	var b Ptr[string]

	if !Equal(&a, &b) {
		t.Error("empty Ptrs of different element types should be Equal")
	}

	c := New(1)
	if Equal(&c, &b) {
		t.Error("non-empty Ptr should not equal an empty one")
	}
}

func TestEqual_Sentinel(t *testing.T) {
	var e Ptr[int]
	a := New(3)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"empty == Nil", Equal(&e, Nil), true},
		{"Nil == empty", Equal(Nil, &e), true},
		{"full == Nil", Equal(&a, Nil), false},
		{"Nil != full", NotEqual(Nil, &a), true},
		{"nil handle == Nil", Equal(nil, Nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestOrdering_Sentinel(t *testing.T) {
	a := New(1)
	var e Ptr[int]

	if !Less(Nil, &a) {
		t.Error("Nil should order before a non-empty Ptr")
	}
	if !Greater(&a, Nil) {
		t.Error("a non-empty Ptr should order after Nil")
	}
	if Less(&e, &e) || Greater(&e, &e) {
		t.Error("an empty Ptr should not order before or after itself")
	}
	if !LessEqual(&e, Nil) || !GreaterEqual(&e, Nil) {
		t.Error("an empty Ptr should be both <= and >= Nil")
	}
	if Compare(&e, Nil) != 0 {
		t.Errorf("Compare(empty, Nil) = %d, want 0", Compare(&e, Nil))
	}
}

func TestOrdering_Total(t *testing.T) {
	a := New(1)
	b := New(2)
	c := New(3)
	var e Ptr[int]

	handles := []Handle{&c, Nil, &a, &e, &b}
	sort.Slice(handles, func(i, j int) bool { return Less(handles[i], handles[j]) })

	if Compare(handles[0], Nil) != 0 || Compare(handles[1], Nil) != 0 {
		t.Error("empty handles should sort first")
	}
	for i := 1; i < len(handles); i++ {
		if Greater(handles[i-1], handles[i]) {
			t.Errorf("handles[%d] > handles[%d] after sort", i-1, i)
		}
	}

	x, y := Handle(&a), Handle(&b)
	if Less(x, y) == Less(y, x) {
		t.Error("distinct allocations should be strictly ordered")
	}
	if LessEqual(x, y) != !Greater(x, y) {
		t.Error("LessEqual should be !Greater")
	}
	if GreaterEqual(x, y) != !Less(x, y) {
		t.Error("GreaterEqual should be !Less")
	}
}

func TestHash(t *testing.T) {
	a := New(counter{N: 1})

	if a.Hash() != a.Hash() {
		t.Error("Hash() should be stable")
	}

	var e1 Ptr[int]
	var e2 Ptr[string]
	if e1.Hash() != e2.Hash() || e1.Hash() != HashOf(Nil) {
		t.Error("empty Ptrs should hash like Nil")
	}

	before := a.Hash()
	b := a.Take()
	if b.Hash() != before {
		t.Error("hash should follow the allocation across a move")
	}
	if HashOf(&b) != b.Hash() {
		t.Error("HashOf() and Hash() should agree")
	}
}

func TestHash_KeysMap(t *testing.T) {
	a := New(1)
	b, err := a.Clone()
	if err != nil {
		t.Fatalf("Clone() error: %v", err)
	}

	seen := map[uint64]*Ptr[int]{a.Hash(): &a}
	if got, ok := seen[a.Hash()]; !ok || !Equal(got, &a) {
		t.Error("lookup by Hash() should find a")
	}
	if got, ok := seen[b.Hash()]; ok && Equal(got, &b) {
		t.Error("a clone should not be found under its source's identity")
	}
}
