package storage

// Backend is the durable slot the store serializes into. Implementations
// live in the fs, memory and pg subpackages.
type Backend interface {
	// Load returns the blob stored under key, with ok=false when the
	// slot has never been written.
	Load(key string) (data []byte, ok bool, err error)
	Save(key string, data []byte) error
	// Delete removes a slot; deleting a missing slot is not an error.
	Delete(key string) error
}
