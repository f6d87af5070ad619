// Package heap implements an indexed binary min-heap: a priority queue that
// hands back a stable handle on every push and lets the caller lower an
// entry's priority in place (decrease-key) without a linear scan.
//
// Overview:
//
//   - Push(t) inserts a payload and returns a handle usable for the rest of
//     that entry's lifetime (until it is popped).
//   - DecreaseKey(h, t') overwrites the payload at handle h, provided the new
//     value strictly precedes the old one under the heap's comparator, and
//     re-establishes heap order in O(log n).
//   - Contains(h) / Get(h) let callers probe an entry without removing it.
//
// When to use:
//
//   - Dijkstra, A*, and Prim's MST all need to lower a vertex's distance or
//     score once a shorter path is discovered. A plain container/heap forces
//     a "lazy" push-a-duplicate-and-skip-stale-entries dance; IndexedMinHeap
//     keeps the open set bounded by the number of live entries and removes
//     the need for that bookkeeping in the caller, at the cost of carrying a
//     handle-to-index map alongside the heap slice.
//
// Complexity:
//
//   - Push, Pop, DecreaseKey: O(log n)
//   - Top, Contains, Get: O(1)
//   - Clear: O(1) (truncates the slice and replaces the map; handle counter is untouched)
//
// Comparator:
//
//   - A strict weak ordering over T, supplied at construction. Less(a, b)
//     reports whether a must sit closer to the root than b. The zero value
//     comparator is not usable; callers always supply one (there is no
//     meaningful default ordering for an arbitrary T).
//
// Error handling (sentinel errors):
//
//   - ErrEmptyHeap: Top/Pop on an empty heap.
//   - ErrUnknownHandle: Get/DecreaseKey with a handle that was never issued
//     or whose entry has already been popped.
//   - ErrNotSmaller: DecreaseKey where the replacement does not strictly
//     precede the current payload under the comparator.
//
// Handle stability:
//
//   - Handles are drawn from a monotonically increasing counter that is
//     never reset, even by Clear. This keeps handles issued before a Clear
//     from silently aliasing handles issued after it.
package heap
