package history

import (
	"context"
	"sync"
)

// MemoryBlob keeps the serialized history in memory. It backs tests
// and can be made to fail on demand to exercise error paths.
type MemoryBlob struct {
	mu   sync.Mutex
	data []byte

	ReadErr  error
	WriteErr error
}

func (b *MemoryBlob) Read(ctx context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ReadErr != nil {
		return nil, b.ReadErr
	}
	if b.data == nil {
		return nil, nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out, nil
}

func (b *MemoryBlob) Write(ctx context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.WriteErr != nil {
		return b.WriteErr
	}
	b.data = make([]byte, len(data))
	copy(b.data, data)
	return nil
}

// Seed replaces the stored bytes directly, bypassing error injection.
func (b *MemoryBlob) Seed(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = data
}

// Bytes returns a copy of the stored bytes, or nil when empty.
func (b *MemoryBlob) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

var _ Blob = (*MemoryBlob)(nil)
