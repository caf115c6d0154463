package transfer

import (
	"context"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Chain identifies the network a wallet lives on.
type Chain string

const (
	ChainSolana   Chain = "solana"
	ChainEthereum Chain = "ethereum"
)

// ParseChain accepts the chain names used in URLs and payloads.
func ParseChain(s string) (Chain, bool) {
	switch Chain(s) {
	case ChainSolana, ChainEthereum:
		return Chain(s), true
	case "sol":
		return ChainSolana, true
	case "eth":
		return ChainEthereum, true
	}
	return "", false
}

// Symbol returns the ticker of the chain's native currency.
func (c Chain) Symbol() string {
	switch c {
	case ChainSolana:
		return "SOL"
	case ChainEthereum:
		return "ETH"
	}
	return ""
}

// Kind is the kind of a recorded transfer.
type Kind string

const (
	KindTransfer Kind = "transfer"
	KindPurchase Kind = "purchase"
)

// Initiator is the authenticated identity behind a request.
type Initiator struct {
	UserID uuid.UUID
	Email  string
}

// Request is the in-memory description of a single send action. It is never persisted.
type Request struct {
	// Key identifies the pending request for the single-flight guard.
	// A key derived from the request fields is used when empty.
	Key       string
	Chain     Chain
	Sender    string
	Recipient string
	Amount    decimal.Decimal
	Kind      Kind
	ItemRef   uuid.UUID
	Memo      string
	Initiator Initiator
}

// UnsignedTransfer is a built transfer waiting for a wallet signature.
type UnsignedTransfer struct {
	Chain     Chain
	From      string
	To        string
	BaseUnits *big.Int
	// BlockRef is the recent blockhash (solana) or nonce (ethereum) the transfer is bound to.
	BlockRef string
	// Payload carries the chain specific transaction value.
	Payload any
}

// SignedTransfer is a transfer signed by the wallet and ready to broadcast.
type SignedTransfer struct {
	Unsigned  *UnsignedTransfer
	Signature string
	Payload   any
}

// ConfirmationLevel is the degree of consensus a signature has reached.
type ConfirmationLevel int

const (
	LevelPending ConfirmationLevel = iota
	LevelProcessed
	LevelConfirmed
	LevelFinalized
)

func (l ConfirmationLevel) String() string {
	switch l {
	case LevelProcessed:
		return "processed"
	case LevelConfirmed:
		return "confirmed"
	case LevelFinalized:
		return "finalized"
	}
	return "pending"
}

// ParseConfirmationLevel parses processed, confirmed or finalized.
func ParseConfirmationLevel(s string) (ConfirmationLevel, bool) {
	switch s {
	case "processed":
		return LevelProcessed, true
	case "confirmed":
		return LevelConfirmed, true
	case "finalized":
		return LevelFinalized, true
	}
	return LevelPending, false
}

// SignatureStatus is one observation of a submitted signature.
type SignatureStatus struct {
	Level ConfirmationLevel
	// OnChainErr is the network's error payload when the transaction itself failed.
	OnChainErr string
}

// Receipt is handed to the Recorder once a signature is confirmed.
type Receipt struct {
	Request     Request
	Signature   string
	Level       ConfirmationLevel
	ConfirmedAt time.Time
}

// RecordResult describes a persisted Transfer Record.
type RecordResult struct {
	RecordID        uuid.UUID
	AlreadyRecorded bool
	// Warning is set when the record was saved but a side effect of it was not applied.
	Warning error
}

// Network is the wallet/network client for a single chain.
type Network interface {
	Chain() Chain
	// Decimals is the power of ten between the native unit and the smallest unit.
	Decimals() int32
	// ParseAddress returns the canonical form of address or an error when malformed.
	// It must not perform network I/O.
	ParseAddress(address string) (string, error)
	Balance(ctx context.Context, address string) (*big.Int, error)
	BuildTransfer(ctx context.Context, from, to string, baseUnits *big.Int, memo string) (*UnsignedTransfer, error)
	// Broadcast returns an error wrapping ErrSubmissionFailed when the network rejects the transaction.
	Broadcast(ctx context.Context, tx *SignedTransfer) (string, error)
	SignatureStatus(ctx context.Context, signature string) (SignatureStatus, error)
}

// Wallet signs transfers for one address.
type Wallet interface {
	Chain() Chain
	Address() string
	// Sign returns an error wrapping ErrUserRejected when the owner declines.
	Sign(ctx context.Context, tx *UnsignedTransfer) (*SignedTransfer, error)
}

// Recorder persists confirmed transfers.
type Recorder interface {
	Record(ctx context.Context, receipt Receipt) (RecordResult, error)
}
