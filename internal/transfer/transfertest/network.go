// Package transfertest provides an in-memory network and wallet for exercising the transfer flow.
package transfertest

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/shopspring/decimal"
)

const Decimals int32 = 9

// Network is an in-memory ledger that settles broadcasts immediately.
type Network struct {
	mu sync.Mutex

	ChainID   transfer.Chain
	balances  map[string]*big.Int
	statuses  map[string]transfer.SignatureStatus
	blockSeq  int
	sigSeq    int
	Fee       *big.Int
	TargetLvl transfer.ConfirmationLevel

	// Hooks let tests inject failures. A nil hook means success.
	BalanceErr    error
	BuildErr      error
	BroadcastErrs []error
	NeverConfirm  bool
	FailOnChain   string
	// CaseInsensitive makes ParseAddress return the lowercase form, like EIP-55 normalisation.
	CaseInsensitive bool

	Broadcasts   int
	StatusChecks int
	NetworkCalls int
}

func NewNetwork() *Network {
	return &Network{
		ChainID:   transfer.ChainSolana,
		balances:  make(map[string]*big.Int),
		statuses:  make(map[string]transfer.SignatureStatus),
		Fee:       big.NewInt(5000),
		TargetLvl: transfer.LevelFinalized,
	}
}

// Fund sets the balance of address in native units.
func (n *Network) Fund(address string, amount string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.balances[address] = transfer.ToBaseUnits(decimal.RequireFromString(amount), Decimals)
}

// NativeBalance returns the balance of address in native units.
func (n *Network) NativeBalance(address string) decimal.Decimal {
	n.mu.Lock()
	defer n.mu.Unlock()
	return transfer.FromBaseUnits(n.balances[address], Decimals)
}

func (n *Network) Chain() transfer.Chain { return n.ChainID }

func (n *Network) Decimals() int32 { return Decimals }

// ParseAddress accepts addresses of the form "addr-<name>".
func (n *Network) ParseAddress(address string) (string, error) {
	if n.CaseInsensitive {
		address = strings.ToLower(address)
	}
	if !strings.HasPrefix(address, "addr-") || len(address) < 6 {
		return "", fmt.Errorf("malformed address %q", address)
	}
	return address, nil
}

func (n *Network) Balance(_ context.Context, address string) (*big.Int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.NetworkCalls++
	if n.BalanceErr != nil {
		return nil, n.BalanceErr
	}
	if b, ok := n.balances[address]; ok {
		return new(big.Int).Set(b), nil
	}
	return big.NewInt(0), nil
}

type payload struct {
	from, to string
	units    *big.Int
}

func (n *Network) BuildTransfer(_ context.Context, from, to string, baseUnits *big.Int, _ string) (*transfer.UnsignedTransfer, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.NetworkCalls++
	if n.BuildErr != nil {
		return nil, n.BuildErr
	}
	n.blockSeq++
	return &transfer.UnsignedTransfer{
		Chain:     n.ChainID,
		From:      from,
		To:        to,
		BaseUnits: new(big.Int).Set(baseUnits),
		BlockRef:  fmt.Sprintf("block-%d", n.blockSeq),
		Payload:   payload{from: from, to: to, units: new(big.Int).Set(baseUnits)},
	}, nil
}

func (n *Network) Broadcast(_ context.Context, tx *transfer.SignedTransfer) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.NetworkCalls++
	n.Broadcasts++
	if len(n.BroadcastErrs) > 0 {
		err := n.BroadcastErrs[0]
		n.BroadcastErrs = n.BroadcastErrs[1:]
		if err != nil {
			return "", err
		}
	}
	p, ok := tx.Payload.(payload)
	if !ok {
		return "", fmt.Errorf("%w: unexpected payload %T", transfer.ErrSubmissionFailed, tx.Payload)
	}

	sig := tx.Signature
	if sig == "" {
		n.sigSeq++
		sig = fmt.Sprintf("sig-%d", n.sigSeq)
	}

	if n.FailOnChain != "" {
		n.statuses[sig] = transfer.SignatureStatus{Level: transfer.LevelConfirmed, OnChainErr: n.FailOnChain}
		return sig, nil
	}

	debit := new(big.Int).Add(p.units, n.Fee)
	from := n.balances[p.from]
	if from == nil || from.Cmp(debit) < 0 {
		return "", errors.New("insufficient funds for transfer")
	}
	n.balances[p.from] = new(big.Int).Sub(from, debit)
	to := n.balances[p.to]
	if to == nil {
		to = big.NewInt(0)
	}
	n.balances[p.to] = new(big.Int).Add(to, p.units)

	level := n.TargetLvl
	if n.NeverConfirm {
		level = transfer.LevelPending
	}
	n.statuses[sig] = transfer.SignatureStatus{Level: level}
	return sig, nil
}

func (n *Network) SignatureStatus(_ context.Context, signature string) (transfer.SignatureStatus, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.NetworkCalls++
	n.StatusChecks++
	return n.statuses[signature], nil
}

var _ transfer.Network = (*Network)(nil)
