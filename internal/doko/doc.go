// Package doko implements the Doppelkopf rules engine: round scoring,
// round and game legality, and the dealer-rotation schedule including the
// mandatory-solo parade.
//
// Everything in this package is a pure function of the records passed in.
// There is no shared state and no I/O; callers that revalidate the same
// Game value concurrently must serialize their own mutations.
package doko
