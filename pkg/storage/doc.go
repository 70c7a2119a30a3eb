// Package storage keeps named netlists in memory so they can be analyzed
// repeatedly through the HTTP API without re-uploading the source. Entries
// are keyed by generated UUIDs and returned as defensive copies.
package storage
