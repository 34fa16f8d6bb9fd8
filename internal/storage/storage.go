// Package storage provides the key-value durability service used to survive
// process restarts.
package storage

// KV is the abstract durability capability. Get reports ok=false when the
// key is absent; absence is not an error.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error
}
