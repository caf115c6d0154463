package transfer

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRecipient    = errors.New("invalid recipient address")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUserRejected        = errors.New("user rejected the request")
	ErrSubmissionFailed    = errors.New("transaction submission failed")
	ErrTransport           = errors.New("wallet or network transport error")
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out")
	ErrOnChain             = errors.New("transaction failed on chain")
	ErrRecordWriteFailed   = errors.New("transfer confirmed but the receipt could not be saved")
	ErrListingUnavailable  = errors.New("transfer recorded but the listing was already sold, refund needed")

	ErrBalanceUnavailable = errors.New("balance unavailable")
	ErrAttemptInFlight    = errors.New("a transfer for this request is already in flight")
	ErrUnsupportedChain   = errors.New("unsupported chain")
)

// Error is the failure of a transfer attempt. Reason is one of the Err* sentinels above.
type Error struct {
	Reason error
	// State is where the attempt was when it failed.
	State State
	Err   error

	// Shortfall is set for ErrInsufficientBalance.
	Shortfall decimal.Decimal
	// BalanceKnown is false when the balance could not be read and the attempt was refused conservatively.
	BalanceKnown bool
	// Signature is set once the transaction was broadcast.
	Signature string
}

func (e *Error) Error() string {
	msg := e.Reason.Error()
	if errors.Is(e.Reason, ErrInsufficientBalance) {
		if e.BalanceKnown {
			msg = fmt.Sprintf("%s: short by %s", msg, e.Shortfall.String())
		} else {
			msg += ": balance could not be read"
		}
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

// IsValidation reports whether err is one of the pre-flight validation failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidRecipient) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInsufficientBalance)
}

// ReasonCode is the stable machine readable name of a failure.
func ReasonCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRecipient):
		return "invalid_recipient"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ErrUserRejected):
		return "user_rejected"
	case errors.Is(err, ErrSubmissionFailed):
		return "submission_failed"
	case errors.Is(err, ErrConfirmationTimeout):
		return "confirmation_timeout"
	case errors.Is(err, ErrOnChain):
		return "on_chain_error"
	case errors.Is(err, ErrRecordWriteFailed):
		return "record_write_failed"
	case errors.Is(err, ErrListingUnavailable):
		return "listing_already_sold"
	case errors.Is(err, ErrAttemptInFlight):
		return "attempt_in_flight"
	case errors.Is(err, ErrTransport):
		return "transport_error"
	case errors.Is(err, ErrBalanceUnavailable):
		return "balance_unavailable"
	case errors.Is(err, ErrUnsupportedChain):
		return "unsupported_chain"
	}
	return "unknown"
}
