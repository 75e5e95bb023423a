package merge

import (
	"hash"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash creates a content fingerprint for data
func Hash(data []byte) (uint64, error) {
	h, err := newHasher()
	if err != nil {
		return 0, err
	}
	if _, err = h.Write(data); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

func newHasher() (hash.Hash64, error) {
	return highwayhash.New64(key)
}
