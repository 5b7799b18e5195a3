// pattern: Functional Core

// Package event provides a minimal one-to-many notification primitive.
// An Event fans a payload out to subscribed delegates; the Listener token
// returned by Subscribe detaches the delegate when closed, and closing the
// Event detaches everything at once. It is the relationship between the two
// that is managed: a Listener outliving its Event is inert, not dangling.
//
// Events are synchronous and single-threaded. Calling Subscribe or Close
// from inside a delegate invoked by Notify is unsupported.
package event

// Event delivers payloads of type T to its subscribers.
// The zero value is ready to use.
type Event[T any] struct {
	subs   []*subscription[T]
	nextID uint64
	closed bool
}

type subscription[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns a token that detaches it when closed.
func (e *Event[T]) Subscribe(fn func(T)) *Listener {
	if e.closed || fn == nil {
		return &Listener{}
	}
	e.nextID++
	sub := &subscription[T]{id: e.nextID, fn: fn}
	e.subs = append(e.subs, sub)
	return &Listener{detach: func() { e.remove(sub.id) }}
}

// Notify invokes every subscribed delegate with v, in subscription order,
// on the calling goroutine. With no subscribers it is a no-op. A panic in a
// delegate propagates to the caller.
func (e *Event[T]) Notify(v T) {
	for _, sub := range e.subs {
		sub.fn(v)
	}
}

// Close detaches all subscribers. Listeners previously handed out become
// inert; closing them later is a harmless no-op. Further Subscribe calls
// return inert tokens.
func (e *Event[T]) Close() {
	e.closed = true
	e.subs = nil
}

func (e *Event[T]) remove(id uint64) {
	for i, sub := range e.subs {
		if sub.id == id {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return
		}
	}
}

// Listener is a subscription token. Closing it detaches the delegate it
// stands for. The zero value is inert.
type Listener struct {
	detach func()
	merged []*Listener
}

// Close detaches the listener's delegate and any listeners merged into it.
// Safe to call more than once, and terminates even when merges form a cycle.
func (l *Listener) Close() {
	if l.detach != nil {
		l.detach()
		l.detach = nil
	}
	// Detach the merged set before recursing so a cycle finds l already
	// emptied and stops.
	merged := l.merged
	l.merged = nil
	for _, m := range merged {
		m.Close()
	}
}

// Merge absorbs other into l: closing l afterwards closes other too.
// Ownership transfers; the caller should drop its reference to other.
func (l *Listener) Merge(other *Listener) *Listener {
	if other != nil && other != l {
		l.merged = append(l.merged, other)
	}
	return l
}
