// Package ptr
// Author: momentics <momentics@gmail.com>
//
// Explicit ownership handles for hioload-mempool.
//
// Unique[T, D] is an exclusive owner: exactly one handle holds a payload and
// its release action D runs exactly once, on Close, Reset or MoveFrom.
// Shared[T] is a reference-counted owner: copies share one control block and
// the payload's release action runs when the last owner lets go. Weak[T]
// observes a Shared payload without keeping it alive.
//
// Release actions decide what "freeing" means. DefaultDelete calls the
// payload's Destroy method (see Destroyer) and drops the reference for the
// garbage collector; pool-aware actions live in package poolptr.
//
// Handles are not safe for concurrent use; counts are plain integers.
package ptr
