package middleware

import (
	"crypto/rand"
	"io"
	"sync"

	"github.com/oklog/ulid"
)

var (
	entropyMu     sync.Mutex
	entropySource = ulid.Monotonic(rand.Reader, 0)
)

// lockedEntropy 为单调熵源加锁，ulid.Monotonic 本身不是并发安全的.
type lockedEntropy struct{}

func (lockedEntropy) Read(p []byte) (int, error) {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	return entropySource.Read(p)
}

func entropy() io.Reader {
	return lockedEntropy{}
}
