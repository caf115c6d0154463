package transfertest

import (
	"context"
	"sync"

	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/google/uuid"
)

// Recorder keeps receipts in memory. With Unique set, a repeated signature is reported as
// already recorded, matching a store with a unique constraint on signature.
type Recorder struct {
	mu sync.Mutex

	Unique   bool
	Err      error
	// Warning is returned with every new record.
	Warning  error
	Receipts []transfer.Receipt
	ids      map[string]uuid.UUID
}

func NewRecorder(unique bool) *Recorder {
	return &Recorder{Unique: unique, ids: make(map[string]uuid.UUID)}
}

func (r *Recorder) Record(_ context.Context, receipt transfer.Receipt) (transfer.RecordResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return transfer.RecordResult{}, r.Err
	}
	if id, ok := r.ids[receipt.Signature]; ok && r.Unique {
		return transfer.RecordResult{RecordID: id, AlreadyRecorded: true}, nil
	}
	id := uuid.New()
	r.ids[receipt.Signature] = id
	r.Receipts = append(r.Receipts, receipt)
	return transfer.RecordResult{RecordID: id, Warning: r.Warning}, nil
}

// Count returns the number of stored receipts.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Receipts)
}

var _ transfer.Recorder = (*Recorder)(nil)
