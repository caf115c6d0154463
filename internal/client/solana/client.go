package solana

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/transfer"
	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"go.uber.org/zap"
)

const (
	// Decimals is the lamport to SOL exponent.
	Decimals int32 = 9

	DefaultEndpoint = rpc.DevNet_RPC
)

// rpcAPI is the subset of *rpc.Client used here.
type rpcAPI interface {
	GetBalance(ctx context.Context, account solanago.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error)
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, transaction *solanago.Transaction, opts rpc.TransactionOpts) (solanago.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solanago.Signature) (*rpc.GetSignatureStatusesResult, error)
}

// Config holds the endpoint and commitment settings.
type Config struct {
	Endpoint   string
	Commitment rpc.CommitmentType
	// Cluster is the explorer cluster name (devnet, testnet, mainnet-beta).
	Cluster string
}

// Client implements transfer.Network for Solana.
type Client struct {
	rpc    rpcAPI
	config Config
	logger *zap.Logger
}

// NewClient creates a client that talks to config.Endpoint.
func NewClient(config Config) *Client {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	return newClient(rpc.New(config.Endpoint), config)
}

func newClient(api rpcAPI, config Config) *Client {
	if config.Commitment == "" {
		config.Commitment = rpc.CommitmentConfirmed
	}
	if config.Cluster == "" {
		config.Cluster = "devnet"
	}
	return &Client{rpc: api, config: config, logger: logger.Log}
}

func (c *Client) Chain() transfer.Chain { return transfer.ChainSolana }

func (c *Client) Decimals() int32 { return Decimals }

// Cluster returns the explorer cluster name.
func (c *Client) Cluster() string { return c.config.Cluster }

func (c *Client) ParseAddress(address string) (string, error) {
	pk, err := solanago.PublicKeyFromBase58(address)
	if err != nil {
		return "", fmt.Errorf("invalid solana address: %w", err)
	}
	return pk.String(), nil
}

func (c *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	pk, err := solanago.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid solana address: %w", err)
	}
	out, err := c.rpc.GetBalance(ctx, pk, c.config.Commitment)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return new(big.Int).SetUint64(out.Value), nil
}

// BuildTransfer builds a system transfer bound to the latest blockhash with from as fee payer.
// Memos are kept in the transfer record only.
func (c *Client) BuildTransfer(ctx context.Context, from, to string, baseUnits *big.Int, _ string) (*transfer.UnsignedTransfer, error) {
	fromKey, err := solanago.PublicKeyFromBase58(from)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	toKey, err := solanago.PublicKeyFromBase58(to)
	if err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	if baseUnits == nil || baseUnits.Sign() <= 0 || !baseUnits.IsUint64() {
		return nil, fmt.Errorf("lamports out of range: %v", baseUnits)
	}

	latest, err := c.rpc.GetLatestBlockhash(ctx, c.config.Commitment)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest blockhash: %w", err)
	}
	if latest == nil || latest.Value == nil {
		return nil, errors.New("empty latest blockhash response")
	}

	tx, err := solanago.NewTransaction(
		[]solanago.Instruction{
			system.NewTransferInstruction(baseUnits.Uint64(), fromKey, toKey).Build(),
		},
		latest.Value.Blockhash,
		solanago.TransactionPayer(fromKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}

	return &transfer.UnsignedTransfer{
		Chain:     transfer.ChainSolana,
		From:      fromKey.String(),
		To:        toKey.String(),
		BaseUnits: new(big.Int).Set(baseUnits),
		BlockRef:  latest.Value.Blockhash.String(),
		Payload:   tx,
	}, nil
}

// Broadcast sends the signed transaction. Errors returned by the node itself, such as a failed
// preflight or an expired blockhash, wrap transfer.ErrSubmissionFailed.
func (c *Client) Broadcast(ctx context.Context, signed *transfer.SignedTransfer) (string, error) {
	tx, ok := signed.Payload.(*solanago.Transaction)
	if !ok {
		return "", fmt.Errorf("%w: unexpected payload %T", transfer.ErrSubmissionFailed, signed.Payload)
	}

	sig, err := c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: c.config.Commitment,
	})
	if err != nil {
		var rpcErr *jsonrpc.RPCError
		if errors.As(err, &rpcErr) {
			c.logger.Warn("Solana node rejected transaction",
				zap.Int("code", rpcErr.Code),
				zap.String("message", rpcErr.Message),
			)
			return "", fmt.Errorf("%w: %s", transfer.ErrSubmissionFailed, rpcErr.Message)
		}
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}
	return sig.String(), nil
}

func (c *Client) SignatureStatus(ctx context.Context, signature string) (transfer.SignatureStatus, error) {
	sig, err := solanago.SignatureFromBase58(signature)
	if err != nil {
		return transfer.SignatureStatus{}, fmt.Errorf("invalid signature: %w", err)
	}
	out, err := c.rpc.GetSignatureStatuses(ctx, true, sig)
	if err != nil {
		return transfer.SignatureStatus{}, fmt.Errorf("failed to get signature status: %w", err)
	}
	if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		return transfer.SignatureStatus{Level: transfer.LevelPending}, nil
	}

	st := out.Value[0]
	status := transfer.SignatureStatus{Level: levelOf(st.ConfirmationStatus)}
	if st.Err != nil {
		status.OnChainErr = describe(st.Err)
	}
	return status, nil
}

func levelOf(s rpc.ConfirmationStatusType) transfer.ConfirmationLevel {
	switch s {
	case rpc.ConfirmationStatusProcessed:
		return transfer.LevelProcessed
	case rpc.ConfirmationStatusConfirmed:
		return transfer.LevelConfirmed
	case rpc.ConfirmationStatusFinalized:
		return transfer.LevelFinalized
	}
	return transfer.LevelPending
}

func describe(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

// CommitmentFromLevel maps a confirmation level to the matching RPC commitment.
func CommitmentFromLevel(level transfer.ConfirmationLevel) rpc.CommitmentType {
	switch level {
	case transfer.LevelProcessed:
		return rpc.CommitmentProcessed
	case transfer.LevelFinalized:
		return rpc.CommitmentFinalized
	}
	return rpc.CommitmentConfirmed
}

var _ transfer.Network = (*Client)(nil)
