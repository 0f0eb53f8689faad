// Package recency implements the ordering half of an LRU cache: a doubly
// linked list of key/value entries kept in strict most-recently-used (front)
// to least-recently-used (back) order.
//
// Entries live in a slot arena (a contiguous growable slice) and are
// addressed by integer handles instead of pointers. Links between entries
// are handles too, so the structure contains no interior pointers, allocates
// nothing once the arena has grown to its working size, and reuses the slot
// of an evicted entry for the next insertion.
package recency

// Handle addresses an entry slot inside a List. A handle stays valid for
// the lifetime of its entry: moving an entry to the front does not change
// its handle. After Remove (or RemoveBack) the handle is recycled and must
// not be used again.
type Handle int32

// None is the null handle. Front and Back report it alongside ok=false on
// an empty list.
const None Handle = -1

// freedMark poisons the links of a recycled slot so that reuse of a dead
// handle is caught instead of corrupting the list.
const freedMark Handle = -2

// slot holds one entry plus its links. Slots are owned exclusively by the
// List; callers hold handles, never slots.
type slot[K comparable, V any] struct {
	key   K
	value V
	prev  Handle
	next  Handle
}

// List is a doubly linked list over a slot arena. The zero value is not
// valid; create lists with New.
//
// List is not safe for concurrent use.
type List[K comparable, V any] struct {
	slots []slot[K, V]
	free  []Handle
	head  Handle
	tail  Handle
	count int
}

// New creates an empty list. If capacity is positive, slot storage for that
// many entries is reserved up front, so a list that never grows beyond
// capacity entries performs no further allocations.
func New[K comparable, V any](capacity int) *List[K, V] {
	l := &List[K, V]{head: None, tail: None}
	if capacity > 0 {
		l.slots = make([]slot[K, V], 0, capacity)
		l.free = make([]Handle, 0, capacity)
	}
	return l
}

// Len returns the number of entries in the list.
func (l *List[K, V]) Len() int {
	return l.count
}

// PushFront inserts a new entry at the front of the list, making it the
// most recently used, and returns its handle. O(1).
func (l *List[K, V]) PushFront(key K, value V) Handle {
	h := l.alloc(key, value)
	l.linkFront(h)
	l.count++
	return h
}

// MoveToFront detaches the entry at h from its current position and
// reinserts it at the front, marking it most recently used. The entry keeps
// its slot and its handle. O(1).
//
// The caller must ensure h references a live entry of this list.
func (l *List[K, V]) MoveToFront(h Handle) {
	if l.head == h {
		return
	}
	l.mustLive(h)
	l.unlink(h)
	l.linkFront(h)
}

// Remove detaches the entry at h from any position, front, back or
// interior, by splicing its neighbors together, releases its slot for
// reuse, and returns the removed key and value. O(1).
//
// Removing a handle twice panics.
func (l *List[K, V]) Remove(h Handle) (K, V) {
	l.mustLive(h)
	l.unlink(h)
	key, value := l.slots[h].key, l.slots[h].value
	l.release(h)
	l.count--
	return key, value
}

// RemoveBack removes the least recently used entry and returns its key and
// value. It reports false on an empty list. O(1).
func (l *List[K, V]) RemoveBack() (K, V, bool) {
	if l.tail == None {
		var key K
		var value V
		return key, value, false
	}
	key, value := l.Remove(l.tail)
	return key, value, true
}

// Front returns the handle of the most recently used entry, or None and
// false on an empty list.
func (l *List[K, V]) Front() (Handle, bool) {
	return l.head, l.head != None
}

// Back returns the handle of the least recently used entry, or None and
// false on an empty list.
func (l *List[K, V]) Back() (Handle, bool) {
	return l.tail, l.tail != None
}

// Next returns the entry one step toward the least recently used end, or
// None and false at the back.
func (l *List[K, V]) Next(h Handle) (Handle, bool) {
	n := l.slots[h].next
	return n, n != None
}

// Prev returns the entry one step toward the most recently used end, or
// None and false at the front.
func (l *List[K, V]) Prev(h Handle) (Handle, bool) {
	p := l.slots[h].prev
	return p, p != None
}

// Key returns the key stored at h.
func (l *List[K, V]) Key(h Handle) K {
	return l.slots[h].key
}

// Value returns the value stored at h.
func (l *List[K, V]) Value(h Handle) V {
	return l.slots[h].value
}

// SetValue replaces the value stored at h without touching its position.
func (l *List[K, V]) SetValue(h Handle, value V) {
	l.slots[h].value = value
}

// Clear removes all entries. Slot storage is kept for reuse, but keys and
// values are zeroed so the garbage collector can reclaim them.
func (l *List[K, V]) Clear() {
	clear(l.slots)
	l.slots = l.slots[:0]
	l.free = l.free[:0]
	l.head = None
	l.tail = None
	l.count = 0
}

// alloc takes a slot from the free stack, or grows the arena by one slot.
func (l *List[K, V]) alloc(key K, value V) Handle {
	if n := len(l.free); n > 0 {
		h := l.free[n-1]
		l.free = l.free[:n-1]
		l.slots[h] = slot[K, V]{key: key, value: value}
		return h
	}
	l.slots = append(l.slots, slot[K, V]{key: key, value: value})
	return Handle(len(l.slots) - 1)
}

// release zeroes the slot for GC and pushes it on the free stack. The
// poisoned links let mustLive catch reuse of the dead handle.
func (l *List[K, V]) release(h Handle) {
	l.slots[h] = slot[K, V]{prev: freedMark, next: freedMark}
	l.free = append(l.free, h)
}

// mustLive panics when h is out of range or addresses a slot that has been
// released. Both indicate a caller bug, never a reachable state.
func (l *List[K, V]) mustLive(h Handle) {
	if h < 0 || int(h) >= len(l.slots) || l.slots[h].next == freedMark {
		panic("recency: stale handle")
	}
}

// linkFront attaches an unlinked slot at the head of the list.
func (l *List[K, V]) linkFront(h Handle) {
	s := &l.slots[h]
	s.prev = None
	s.next = l.head
	if l.head != None {
		l.slots[l.head].prev = h
	}
	l.head = h
	if l.tail == None {
		l.tail = h
	}
}

// unlink splices the slot out of the list, updating head and tail when the
// slot is at either end. Unlinking the only entry leaves an empty list.
func (l *List[K, V]) unlink(h Handle) {
	s := &l.slots[h]
	if s.prev != None {
		l.slots[s.prev].next = s.next
	} else {
		l.head = s.next
	}
	if s.next != None {
		l.slots[s.next].prev = s.prev
	} else {
		l.tail = s.prev
	}
	s.prev = None
	s.next = None
}
