package transfertest

import (
	"context"
	"fmt"
	"sync"

	"github.com/artvault/artvault-api/internal/transfer"
)

// Wallet signs every transfer unless Reject is set.
type Wallet struct {
	mu sync.Mutex

	ChainID transfer.Chain
	Addr    string
	Reject  bool
	// Gate, when set, is received from before each signature completes.
	Gate chan struct{}

	Signed int
}

func NewWallet(address string) *Wallet {
	return &Wallet{ChainID: transfer.ChainSolana, Addr: address}
}

func (w *Wallet) Chain() transfer.Chain { return w.ChainID }

func (w *Wallet) Address() string { return w.Addr }

func (w *Wallet) Sign(ctx context.Context, tx *transfer.UnsignedTransfer) (*transfer.SignedTransfer, error) {
	if w.Gate != nil {
		select {
		case <-w.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Reject {
		return nil, fmt.Errorf("%w: approval declined", transfer.ErrUserRejected)
	}
	w.Signed++
	return &transfer.SignedTransfer{
		Unsigned:  tx,
		Signature: fmt.Sprintf("sig-%s-%s", tx.BlockRef, w.Addr),
		Payload:   tx.Payload,
	}, nil
}

var _ transfer.Wallet = (*Wallet)(nil)
