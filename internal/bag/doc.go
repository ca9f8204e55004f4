// Package bag defines the in-memory model for bag containment rules: a Bag
// names a colour and lists the bags it directly holds, and a Collection owns
// every parsed Bag together with a colour index.
//
// Edges refer to other bags by colour, never by pointer. A Collection
// resolves those names through its index, so a colour that was never declared
// simply fails to resolve rather than producing a dangling reference.
//
// A Collection is immutable once built. It is safe to share between
// goroutines without locking.
package bag
