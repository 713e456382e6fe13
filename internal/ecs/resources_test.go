package ecs

import "testing"

type testCounter struct{ N int }

type testSource interface{ Next() int }

type fixedSource int

func (f fixedSource) Next() int { return int(f) }

func TestResources(t *testing.T) {
	rs := NewResourceStore()

	if _, ok := GetResource[*testCounter](rs); ok {
		t.Fatal("empty store must not return a resource")
	}

	AddResource(rs, &testCounter{N: 1})
	c := MustGetResource[*testCounter](rs)
	c.N++

	if got := MustGetResource[*testCounter](rs).N; got != 2 {
		t.Errorf("N = %d, want 2 (pointer resources are shared)", got)
	}

	// Ресурсы-интерфейсы ищутся по интерфейсному типу
	AddResource[testSource](rs, fixedSource(7))
	src, ok := GetResource[testSource](rs)
	if !ok || src.Next() != 7 {
		t.Errorf("interface resource lookup failed: %v, %v", src, ok)
	}
}

func TestMustGetResource_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGetResource must panic on a missing resource")
		}
	}()
	MustGetResource[*testCounter](NewResourceStore())
}
