package transfer

import (
	"context"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// ToBaseUnits converts a native amount to the chain's smallest unit, flooring any remainder.
func ToBaseUnits(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Floor().BigInt()
}

// FromBaseUnits converts smallest units back to the native unit.
func FromBaseUnits(units *big.Int, decimals int32) decimal.Decimal {
	if units == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(units, -decimals)
}

// BalanceReader reads spendable balances in native units.
type BalanceReader struct {
	networks map[Chain]Network
}

func NewBalanceReader(networks ...Network) *BalanceReader {
	m := make(map[Chain]Network, len(networks))
	for _, n := range networks {
		m[n.Chain()] = n
	}
	return &BalanceReader{networks: m}
}

// Network returns the client registered for chain.
func (r *BalanceReader) Network(chain Chain) (Network, error) {
	n, ok := r.networks[chain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedChain, chain)
	}
	return n, nil
}

// Chains lists the chains with a registered client.
func (r *BalanceReader) Chains() []Chain {
	out := make([]Chain, 0, len(r.networks))
	for _, c := range []Chain{ChainSolana, ChainEthereum} {
		if _, ok := r.networks[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Balance returns the balance of address. Any RPC failure is reported as ErrBalanceUnavailable.
func (r *BalanceReader) Balance(ctx context.Context, chain Chain, address string) (decimal.Decimal, error) {
	n, err := r.Network(chain)
	if err != nil {
		return decimal.Zero, err
	}
	units, err := n.Balance(ctx, address)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrBalanceUnavailable, err)
	}
	return FromBaseUnits(units, n.Decimals()), nil
}
