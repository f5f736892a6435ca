package repositories

// Keys under which session state is persisted.
const (
	StorageKeyCart = "cart"
	StorageKeyUser = "user"
)

// Storage is the durable key-value area session state survives restarts in.
// Values are opaque JSON blobs. Get reports found=false for absent keys, and
// callers treat absent or malformed values as empty state, never an error.
type Storage interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
