package rx

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Disposable releases the resources held by a subscription.
// Dispose must be idempotent and safe to call from inside a callback of the
// subscription being disposed.
type Disposable interface {
	Dispose()
}

type nopDisposable struct{}

func (nopDisposable) Dispose() {}

// NopDisposable returns a Disposable that does nothing.
func NopDisposable() Disposable {
	return nopDisposable{}
}

type actionDisposable struct {
	disposed atomic.Bool
	action   func()
}

// NewDisposable returns a Disposable that runs action exactly once.
// A nil action is allowed.
func NewDisposable(action func()) Disposable {
	return &actionDisposable{action: action}
}

func (d *actionDisposable) Dispose() {
	// The flag flips before the action runs so a reentrant Dispose is a no-op.
	if !d.disposed.CompareAndSwap(false, true) {
		return
	}
	if d.action != nil {
		d.action()
	}
}

// SingleAssignmentDisposable holds a Disposable that becomes known only after
// it was needed, e.g. a subscription whose producer terminates synchronously
// while Observe is still running.
type SingleAssignmentDisposable struct {
	mu       sync.Mutex
	current  Disposable
	disposed bool
}

// Set stores d. If the holder was already disposed, d is disposed immediately.
// Calling Set more than once panics.
func (s *SingleAssignmentDisposable) Set(d Disposable) {
	s.mu.Lock()
	if s.current != nil {
		s.mu.Unlock()
		panic("rx: single assignment disposable assigned twice")
	}
	if d == nil {
		d = NopDisposable()
	}
	s.current = d
	disposed := s.disposed
	s.mu.Unlock()

	if disposed {
		d.Dispose()
	}
}

func (s *SingleAssignmentDisposable) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	current := s.current
	s.mu.Unlock()

	if current != nil {
		current.Dispose()
	}
}

func (s *SingleAssignmentDisposable) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// SerialDisposable holds at most one Disposable; replacing it disposes the
// previous one.
type SerialDisposable struct {
	mu       sync.Mutex
	current  Disposable
	disposed bool
}

// Set replaces the held Disposable and disposes the previous one.
// If the holder was already disposed, d is disposed immediately.
func (s *SerialDisposable) Set(d Disposable) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		if d != nil {
			d.Dispose()
		}
		return
	}
	prev := s.current
	s.current = d
	s.mu.Unlock()

	if prev != nil {
		prev.Dispose()
	}
}

func (s *SerialDisposable) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	current := s.current
	s.current = nil
	s.mu.Unlock()

	if current != nil {
		current.Dispose()
	}
}

func (s *SerialDisposable) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Key identifies a Disposable added to a CompositeDisposable.
type Key uint64

// CompositeDisposable disposes every contained Disposable, in insertion order,
// when it is disposed itself.
type CompositeDisposable struct {
	mu       sync.Mutex
	items    map[Key]Disposable
	next     Key
	disposed bool
}

// Bag is the disposal aggregate callers keep for the lifetime of a scope.
type Bag = CompositeDisposable

// NewCompositeDisposable creates a container holding ds.
func NewCompositeDisposable(ds ...Disposable) *CompositeDisposable {
	c := &CompositeDisposable{items: make(map[Key]Disposable, len(ds))}
	for _, d := range ds {
		c.Add(d)
	}
	return c
}

// NewBag creates an empty disposal bag.
func NewBag() *Bag {
	return NewCompositeDisposable()
}

// Add stores d and returns its key. Adding to a disposed container disposes d
// right away and returns the zero key.
func (c *CompositeDisposable) Add(d Disposable) Key {
	if d == nil {
		return 0
	}
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		d.Dispose()
		return 0
	}
	if c.items == nil {
		c.items = make(map[Key]Disposable)
	}
	c.next++
	key := c.next
	c.items[key] = d
	c.mu.Unlock()
	return key
}

// Remove takes the Disposable stored under key out of the container and
// disposes it. Unknown keys are ignored.
func (c *CompositeDisposable) Remove(key Key) {
	c.mu.Lock()
	d, ok := c.items[key]
	delete(c.items, key)
	c.mu.Unlock()

	if ok {
		d.Dispose()
	}
}

// Len returns the number of Disposables currently held.
func (c *CompositeDisposable) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *CompositeDisposable) IsDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

func (c *CompositeDisposable) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	keys := make([]Key, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	items := c.items
	c.items = nil
	c.mu.Unlock()

	slices.Sort(keys)
	for _, k := range keys {
		items[k].Dispose()
	}
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	inner Disposable
}

func newSubscription(d Disposable) *Subscription {
	return &Subscription{inner: d}
}

// Dispose stops delivery to the subscription's callbacks.
func (s *Subscription) Dispose() {
	if s == nil || s.inner == nil {
		return
	}
	s.inner.Dispose()
}

// DisposedBy adds the subscription to bag and returns it.
func (s *Subscription) DisposedBy(bag *CompositeDisposable) *Subscription {
	bag.Add(s)
	return s
}
