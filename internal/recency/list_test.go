package recency

import (
	"container/list"
	"math/rand"
	"slices"
	"testing"
)

// checkList verifies the forward chain, the backward chain, the count and
// the slot accounting of l against the expected front-to-back key order.
func checkList[K comparable, V any](t *testing.T, l *List[K, V], want []K) {
	t.Helper()

	if got := l.Len(); got != len(want) {
		t.Fatalf("Len() = %d, want %d", got, len(want))
	}

	i := 0
	for h, ok := l.Front(); ok; h, ok = l.Next(h) {
		if i >= len(want) {
			t.Fatalf("forward walk yields more than %d entries", len(want))
		}
		if got := l.Key(h); got != want[i] {
			t.Fatalf("forward walk position %d: key = %v, want %v", i, got, want[i])
		}
		i++
	}
	if i != len(want) {
		t.Fatalf("forward walk yields %d entries, want %d", i, len(want))
	}

	i = len(want) - 1
	for h, ok := l.Back(); ok; h, ok = l.Prev(h) {
		if i < 0 {
			t.Fatalf("backward walk yields more than %d entries", len(want))
		}
		if got := l.Key(h); got != want[i] {
			t.Fatalf("backward walk position %d: key = %v, want %v", i, got, want[i])
		}
		i--
	}
	if i != -1 {
		t.Fatalf("backward walk yields %d entries, want %d", len(want)-1-i, len(want))
	}

	if live := len(l.slots) - len(l.free); live != l.count {
		t.Fatalf("slot accounting: %d slots, %d free, but count = %d", len(l.slots), len(l.free), l.count)
	}
}

func TestList_PushFront(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		l := New[string, int](0)
		if h, ok := l.Front(); ok || h != None {
			t.Errorf("Front() = (%d, %v), want (None, false)", h, ok)
		}
		if h, ok := l.Back(); ok || h != None {
			t.Errorf("Back() = (%d, %v), want (None, false)", h, ok)
		}
		checkList(t, l, nil)
	})

	t.Run("single entry is both front and back", func(t *testing.T) {
		l := New[string, int](4)
		h := l.PushFront("a", 1)

		front, ok := l.Front()
		if !ok || front != h {
			t.Errorf("Front() = (%d, %v), want (%d, true)", front, ok, h)
		}
		back, ok := l.Back()
		if !ok || back != h {
			t.Errorf("Back() = (%d, %v), want (%d, true)", back, ok, h)
		}
		if got := l.Value(h); got != 1 {
			t.Errorf("Value() = %d, want 1", got)
		}
		checkList(t, l, []string{"a"})
	})

	t.Run("newest first", func(t *testing.T) {
		l := New[string, int](4)
		l.PushFront("a", 1)
		l.PushFront("b", 2)
		l.PushFront("c", 3)
		checkList(t, l, []string{"c", "b", "a"})
	})
}

func TestList_MoveToFront(t *testing.T) {
	build := func() (*List[string, int], map[string]Handle) {
		l := New[string, int](4)
		hs := map[string]Handle{}
		for i, k := range []string{"a", "b", "c"} {
			hs[k] = l.PushFront(k, i)
		}
		// Order is now c, b, a.
		return l, hs
	}

	t.Run("from back", func(t *testing.T) {
		l, hs := build()
		l.MoveToFront(hs["a"])
		checkList(t, l, []string{"a", "c", "b"})
	})

	t.Run("from middle", func(t *testing.T) {
		l, hs := build()
		l.MoveToFront(hs["b"])
		checkList(t, l, []string{"b", "c", "a"})
	})

	t.Run("already front", func(t *testing.T) {
		l, hs := build()
		l.MoveToFront(hs["c"])
		checkList(t, l, []string{"c", "b", "a"})
	})

	t.Run("only entry", func(t *testing.T) {
		l := New[string, int](1)
		h := l.PushFront("a", 1)
		l.MoveToFront(h)
		checkList(t, l, []string{"a"})
	})

	t.Run("handle survives the move", func(t *testing.T) {
		l, hs := build()
		h := hs["a"]
		l.MoveToFront(h)
		l.MoveToFront(hs["b"])
		if got := l.Key(h); got != "a" {
			t.Errorf("Key(h) = %q after moves, want %q", got, "a")
		}
		if got := l.Value(h); got != 0 {
			t.Errorf("Value(h) = %d after moves, want 0", got)
		}
	})
}

func TestList_Remove(t *testing.T) {
	build := func() (*List[string, int], map[string]Handle) {
		l := New[string, int](4)
		hs := map[string]Handle{}
		for i, k := range []string{"a", "b", "c"} {
			hs[k] = l.PushFront(k, i)
		}
		return l, hs
	}

	t.Run("front", func(t *testing.T) {
		l, hs := build()
		k, v := l.Remove(hs["c"])
		if k != "c" || v != 2 {
			t.Errorf("Remove() = (%q, %d), want (%q, 2)", k, v, "c")
		}
		checkList(t, l, []string{"b", "a"})
	})

	t.Run("middle splices neighbors", func(t *testing.T) {
		l, hs := build()
		l.Remove(hs["b"])
		checkList(t, l, []string{"c", "a"})
	})

	t.Run("back", func(t *testing.T) {
		l, hs := build()
		l.Remove(hs["a"])
		checkList(t, l, []string{"c", "b"})
	})

	t.Run("only entry leaves empty list", func(t *testing.T) {
		l := New[string, int](1)
		h := l.PushFront("a", 1)
		l.Remove(h)
		checkList(t, l, nil)
		if h, ok := l.Front(); ok || h != None {
			t.Errorf("Front() = (%d, %v) after removing only entry, want (None, false)", h, ok)
		}
	})
}

func TestList_RemoveBack(t *testing.T) {
	l := New[string, int](4)
	l.PushFront("a", 1)
	l.PushFront("b", 2)
	l.PushFront("c", 3)

	for _, want := range []struct {
		key   string
		value int
	}{{"a", 1}, {"b", 2}, {"c", 3}} {
		k, v, ok := l.RemoveBack()
		if !ok || k != want.key || v != want.value {
			t.Fatalf("RemoveBack() = (%q, %d, %v), want (%q, %d, true)", k, v, ok, want.key, want.value)
		}
	}

	if k, v, ok := l.RemoveBack(); ok {
		t.Errorf("RemoveBack() on empty list = (%q, %d, true), want ok=false", k, v)
	}
	checkList(t, l, nil)
}

func TestList_SetValue(t *testing.T) {
	l := New[string, int](2)
	h := l.PushFront("a", 1)
	l.PushFront("b", 2)

	l.SetValue(h, 42)

	if got := l.Value(h); got != 42 {
		t.Errorf("Value() = %d, want 42", got)
	}
	checkList(t, l, []string{"b", "a"})
}

func TestList_SlotReuse(t *testing.T) {
	l := New[string, int](2)
	l.PushFront("a", 1)
	l.PushFront("b", 2)

	// Churn at the high-water mark: every removal must hand its slot to
	// the next insertion instead of growing the arena.
	for i := 0; i < 100; i++ {
		k, _, ok := l.RemoveBack()
		if !ok {
			t.Fatal("RemoveBack() on non-empty list reports false")
		}
		l.PushFront(k, i)
	}

	if got := len(l.slots); got != 2 {
		t.Errorf("arena grew to %d slots during churn, want 2", got)
	}
	checkList(t, l, []string{"b", "a"})
}

func TestList_Prealloc(t *testing.T) {
	l := New[string, int](8)
	base := cap(l.slots)
	if base < 8 {
		t.Fatalf("cap(slots) = %d after New(8), want >= 8", base)
	}

	for i := 0; i < 8; i++ {
		l.PushFront("k", i)
	}

	if got := cap(l.slots); got != base {
		t.Errorf("cap(slots) = %d after filling to capacity, want %d", got, base)
	}
}

func TestList_Clear(t *testing.T) {
	l := New[string, int](4)
	l.PushFront("a", 1)
	l.PushFront("b", 2)

	l.Clear()
	checkList(t, l, nil)

	// The list must be fully usable after Clear.
	l.PushFront("c", 3)
	l.PushFront("d", 4)
	checkList(t, l, []string{"d", "c"})
}

func TestList_StaleHandlePanics(t *testing.T) {
	l := New[string, int](4)
	l.PushFront("a", 1)
	h := l.PushFront("b", 2)
	l.Remove(h)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on removing a stale handle")
		}
	}()
	l.Remove(h)
}

// TestList_RandomizedChurn runs a mixed workload against a plain slice
// mirror and verifies the full chain structure after every operation.
func TestList_RandomizedChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l := New[int, int](0)
	handles := make(map[int]Handle)
	var order []int // keys, most recent first

	next := 0
	for step := 0; step < 3000; step++ {
		switch op := rng.Intn(100); {
		case op < 40 || len(order) == 0:
			handles[next] = l.PushFront(next, next*10)
			order = append([]int{next}, order...)
			next++
		case op < 65:
			k := order[rng.Intn(len(order))]
			l.MoveToFront(handles[k])
			i := slices.Index(order, k)
			order = slices.Delete(order, i, i+1)
			order = append([]int{k}, order...)
		case op < 85:
			k := order[rng.Intn(len(order))]
			key, value := l.Remove(handles[k])
			if key != k || value != k*10 {
				t.Fatalf("step %d: Remove(%d) = (%d, %d)", step, k, key, value)
			}
			delete(handles, k)
			i := slices.Index(order, k)
			order = slices.Delete(order, i, i+1)
		default:
			k := order[len(order)-1]
			key, value, ok := l.RemoveBack()
			if !ok || key != k || value != k*10 {
				t.Fatalf("step %d: RemoveBack() = (%d, %d, %v), want key %d", step, key, value, ok, k)
			}
			delete(handles, k)
			order = order[:len(order)-1]
		}
		checkList(t, l, order)
	}
}

func BenchmarkList_Churn(b *testing.B) {
	const size = 1024
	l := New[int, int](size)
	for i := 0; i < size; i++ {
		l.PushFront(i, i)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		k, v, _ := l.RemoveBack()
		l.PushFront(k, v)
	}
}

func BenchmarkList_MoveToFront(b *testing.B) {
	const size = 1024
	l := New[int, int](size)
	hs := make([]Handle, size)
	for i := 0; i < size; i++ {
		hs[i] = l.PushFront(i, i)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.MoveToFront(hs[i%size])
	}
}

func BenchmarkList_vs_ContainerList(b *testing.B) {
	const size = 1024

	b.Run("recency.List", func(b *testing.B) {
		l := New[int, int](size)
		for i := 0; i < size; i++ {
			l.PushFront(i, i)
		}
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			k, v, _ := l.RemoveBack()
			l.PushFront(k, v)
		}
	})

	b.Run("container/list", func(b *testing.B) {
		l := list.New()
		for i := 0; i < size; i++ {
			l.PushFront(i)
		}
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			e := l.Back()
			l.Remove(e)
			l.PushFront(e.Value)
		}
	})
}
