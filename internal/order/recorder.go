package order

import (
	"context"
	"sync"

	"tamstore-bot/internal/storage"
)

type orderLog struct {
	Orders []Order `json:"orders"`
}

// FileRecorder appends finalized orders to a JSON document, rewriting
// the file on every order like the rest of the flat-file state.
type FileRecorder struct {
	path string

	mu  sync.Mutex
	log orderLog
}

func NewFileRecorder(path string) (*FileRecorder, error) {
	r := &FileRecorder{path: path}
	if err := storage.LoadOrSeed(path, &r.log, orderLog{Orders: []Order{}}); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRecorder) Record(_ context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.log.Orders = append(r.log.Orders, *o)
	return storage.Save(r.path, &r.log)
}

// Orders returns a snapshot of all recorded orders.
func (r *FileRecorder) Orders() []Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Order(nil), r.log.Orders...)
}
