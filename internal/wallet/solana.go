package wallet

import (
	"context"
	"fmt"

	"github.com/artvault/artvault-api/internal/transfer"
	solanago "github.com/gagliardetto/solana-go"
)

// SolanaWallet signs system transfers with an ed25519 keypair.
type SolanaWallet struct {
	key solanago.PrivateKey
	pub solanago.PublicKey
}

func NewSolanaWallet(key solanago.PrivateKey) *SolanaWallet {
	return &SolanaWallet{key: key, pub: key.PublicKey()}
}

func (w *SolanaWallet) Chain() transfer.Chain { return transfer.ChainSolana }

func (w *SolanaWallet) Address() string { return w.pub.String() }

func (w *SolanaWallet) Sign(ctx context.Context, unsigned *transfer.UnsignedTransfer) (*transfer.SignedTransfer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tx, ok := unsigned.Payload.(*solanago.Transaction)
	if !ok {
		return nil, fmt.Errorf("unexpected solana payload %T", unsigned.Payload)
	}

	_, err := tx.Sign(func(key solanago.PublicKey) *solanago.PrivateKey {
		if key.Equals(w.pub) {
			return &w.key
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign solana transaction: %w", err)
	}

	return &transfer.SignedTransfer{
		Unsigned:  unsigned,
		Signature: tx.Signatures[0].String(),
		Payload:   tx,
	}, nil
}

var _ transfer.Wallet = (*SolanaWallet)(nil)
