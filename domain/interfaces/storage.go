package interfaces

// StateStore persists the storage-state snapshot (cookies/local storage)
// consumed at session-creation time. The snapshot format belongs to the
// automation engine; the store treats it as opaque JSON.
type StateStore interface {
	// SaveState writes the snapshot.
	SaveState(state []byte) error

	// LoadState reads the snapshot. A missing snapshot yields nil, nil.
	LoadState() ([]byte, error)

	// Clear removes the snapshot.
	Clear() error
}
