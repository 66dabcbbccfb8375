// Package chops drives a pull-style iterator from a goroutine,
// so its items can be consumed with select and timers.
package chops

import (
	"sync"
)

// Iterator describes some iterator over a data structure.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  func()
}

// Items returns a channel on which the items from the iterator
// will be sent. The channel is unbuffered, so the iterator never
// runs more than one item ahead of the receiver.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration and makes the iterating goroutine exit.
// It is safe to call Stop more than once, and from multiple goroutines.
// If the Items channel is closed, this doesn't need to be called.
// After Stop returns, Items may still deliver at most one item
// that was already being handed over; ranging over Items until it
// is closed is always safe.
func (c CoIterator[T]) Stop() {
	c.stop()
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	co := CoIterate[T](x.Iterator())
//	defer co.Stop()
//	tick := time.NewTicker(pace)
//	defer tick.Stop()
//	for i := range co.Items() {
//		... do stuff with i ...
//		select {
//		case <-tick.C:
//		case <-ctx.Done():
//			return ctx.Err()
//		}
//	}
//
// This lets a driver pace or cancel iteration without the data
// structure knowing anything about time.
//
// If you might pass a typed nil pointer into CoIterate,
// make sure your underlying type's methods can handle
// being called with a nil receiver.
//
// Note: CoIterate starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the function.
func CoIterate[T any](iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	var once sync.Once
	co := CoIterator[T]{
		items: out,
		stop: func() {
			once.Do(func() { close(stop) })
		},
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, i Iterator[T]) {
		defer close(out)
		for {
			// check stop first, so a stopped iterator does no more work
			select {
			case <-stop:
				return
			default:
			}

			if !i.Next() {
				return
			}

			select {
			case out <- i.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, iterator)

	return co
}
