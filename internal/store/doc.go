// Package store holds the mutable, persisted collections of staff-added
// records. Each store owns one JSON snapshot file and is its sole writer:
// every mutation rewrites the full collection (fine at tens to low hundreds
// of records; an incremental format would be needed well beyond that).
//
// Stores are written for the CLI's single-goroutine mutation model and do
// no internal locking.
package store
