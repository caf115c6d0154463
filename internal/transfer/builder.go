package transfer

import (
	"context"
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a decimal string amount. Malformed input is ErrInvalidAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &Error{Reason: ErrInvalidAmount, State: StateValidating, Err: err}
	}
	return d, nil
}

// AmountFromFloat converts a float amount, rejecting NaN and infinities.
func AmountFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, &Error{Reason: ErrInvalidAmount, State: StateValidating}
	}
	return decimal.NewFromFloat(f), nil
}

// Builder validates requests and builds unsigned transfers for one network.
type Builder struct {
	network   Network
	balances  *BalanceReader
	feeBuffer decimal.Decimal
}

func NewBuilder(network Network, feeBuffer decimal.Decimal) *Builder {
	return &Builder{
		network:   network,
		balances:  NewBalanceReader(network),
		feeBuffer: feeBuffer,
	}
}

// FeeBuffer is the amount reserved for network fees on top of the transfer amount.
func (b *Builder) FeeBuffer() decimal.Decimal { return b.feeBuffer }

// CheckInputs validates the recipient and amount without touching the network.
// It returns the canonical recipient address.
func (b *Builder) CheckInputs(req Request) (string, *Error) {
	recipient, err := b.network.ParseAddress(req.Recipient)
	if err != nil {
		return "", &Error{Reason: ErrInvalidRecipient, Err: err}
	}
	if !req.Amount.IsPositive() {
		return "", &Error{Reason: ErrInvalidAmount}
	}
	if ToBaseUnits(req.Amount, b.network.Decimals()).Sign() <= 0 {
		return "", &Error{Reason: ErrInvalidAmount, Err: errors.New("amount is below the smallest unit")}
	}
	return recipient, nil
}

// CheckBalance verifies that amount plus the fee buffer fits in the sender's balance.
// An unreadable balance is treated as insufficient.
func (b *Builder) CheckBalance(ctx context.Context, req Request) *Error {
	required := req.Amount.Add(b.feeBuffer)
	balance, err := b.balances.Balance(ctx, b.network.Chain(), req.Sender)
	if err != nil {
		return &Error{Reason: ErrInsufficientBalance, Err: err, Shortfall: required, BalanceKnown: false}
	}
	if required.GreaterThan(balance) {
		return &Error{Reason: ErrInsufficientBalance, Shortfall: required.Sub(balance), BalanceKnown: true}
	}
	return nil
}

// Build constructs the unsigned transfer with the network's latest block reference.
// The sender pays the fee.
func (b *Builder) Build(ctx context.Context, req Request, recipient string) (*UnsignedTransfer, error) {
	tx, err := b.network.BuildTransfer(ctx, req.Sender, recipient, ToBaseUnits(req.Amount, b.network.Decimals()), req.Memo)
	if err != nil {
		return nil, err
	}
	return tx, nil
}
