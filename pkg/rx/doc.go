// Package rx provides a synchronous, push-based reactive stream core built on
// Go generics: observable sequences, subjects, relays and a set of combinator
// operators, together with the disposal lifecycle that governs them.
//
// An Observable describes how to produce a sequence of events for a single
// subscriber. Every subscription runs the producer again (cold semantics)
// unless the sequence is backed by a subject, in which case all subscribers
// share the producer (hot semantics).
//
// Basic usage:
//
//	bag := rx.NewBag()
//	defer bag.Dispose()
//
//	rx.Map(rx.Of(1, 2, 3), func(v int) string { return strconv.Itoa(v * 10) }).
//		Subscribe(func(s string) { fmt.Println(s) }, nil, nil).
//		DisposedBy(bag)
//
// # Events
//
// Producers push Event values: Next carries an element, Error and Completed are
// terminal. Nothing is delivered to a subscription after a terminal event and
// errors are never raised as panics across the subscribe boundary.
//
// # Subjects and relays
//
// PublishSubject, BehaviorSubject and ReplaySubject are at the same time an
// Observable and an event sink. They deliver to subscribers in subscription
// order and differ only in what a new subscriber receives first. Relays wrap a
// subject and only expose Accept, so they can never terminate.
//
// # Operators
//
// Go methods cannot declare type parameters, so operators that keep the
// element type are methods on Observable (Filter, StartWith, Take, Skip,
// IgnoreElements, Debug) while operators that change it are package functions
// (Map, Scan, FlatMap, CombineLatest2, Zip2, ...). All of them accept any
// Source, which Observable, subjects and relays implement.
//
// # Concurrency
//
// Delivery is synchronous and reentrant: pushing an event runs every
// downstream callback on the caller's stack before the push returns. Disposing
// is idempotent and safe from inside a callback of the same subscription.
// Subjects may be fed from several goroutines, but events from concurrent
// producers are not serialized; callers that need ordering must provide it.
package rx
