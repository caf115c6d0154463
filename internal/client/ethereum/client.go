package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/transfer"
	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// Decimals is the wei to ether exponent.
const Decimals int32 = 18

// ethAPI is the subset of *ethclient.Client used here.
type ethAPI interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Config holds the endpoint and confirmation depth settings.
type Config struct {
	RPCURL  string
	ChainID *big.Int
	// Confirmations is the block depth treated as confirmed.
	Confirmations uint64
	// FinalizedDepth is the block depth treated as finalized.
	FinalizedDepth uint64
	// ExplorerURL is the block explorer base, e.g. https://sepolia.etherscan.io
	ExplorerURL string
}

// Client implements transfer.Network for Ethereum value transfers.
type Client struct {
	eth    ethAPI
	config Config
	logger *zap.Logger
}

// Dial connects to config.RPCURL. The chain id is fetched when not configured.
func Dial(ctx context.Context, config Config) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, config.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ethereum rpc: %w", err)
	}
	if config.ChainID == nil {
		id, err := ec.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get chain id: %w", err)
		}
		config.ChainID = id
	}
	c := newClient(ec, config)
	c.logger.Info("Connected to ethereum RPC", zap.String("chain_id", config.ChainID.String()))
	return c, nil
}

func newClient(api ethAPI, config Config) *Client {
	if config.Confirmations == 0 {
		config.Confirmations = 2
	}
	if config.FinalizedDepth < config.Confirmations {
		config.FinalizedDepth = 64
	}
	if config.ExplorerURL == "" {
		config.ExplorerURL = "https://sepolia.etherscan.io"
	}
	return &Client{eth: api, config: config, logger: logger.Log}
}

func (c *Client) Chain() transfer.Chain { return transfer.ChainEthereum }

func (c *Client) Decimals() int32 { return Decimals }

// ChainID returns the EIP-155 chain id.
func (c *Client) ChainID() *big.Int { return c.config.ChainID }

// ExplorerURL returns the configured block explorer base URL.
func (c *Client) ExplorerURL() string { return c.config.ExplorerURL }

// ParseAddress returns the EIP-55 checksummed form of address.
func (c *Client) ParseAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("invalid ethereum address %q", address)
	}
	return common.HexToAddress(address).Hex(), nil
}

func (c *Client) Balance(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid ethereum address %q", address)
	}
	wei, err := c.eth.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return wei, nil
}

// BuildTransfer builds an EIP-1559 value transfer using the sender's pending nonce and the
// head block's base fee.
func (c *Client) BuildTransfer(ctx context.Context, from, to string, baseUnits *big.Int, _ string) (*transfer.UnsignedTransfer, error) {
	if !common.IsHexAddress(from) || !common.IsHexAddress(to) {
		return nil, errors.New("invalid ethereum address")
	}
	fromAddr, toAddr := common.HexToAddress(from), common.HexToAddress(to)

	nonce, err := c.eth.PendingNonceAt(ctx, fromAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}
	tip, err := c.eth.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas tip: %w", err)
	}
	head, err := c.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get head block: %w", err)
	}

	feeCap := new(big.Int).Set(tip)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   c.config.ChainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       params.TxGas,
		To:        &toAddr,
		Value:     new(big.Int).Set(baseUnits),
	})

	return &transfer.UnsignedTransfer{
		Chain:     transfer.ChainEthereum,
		From:      fromAddr.Hex(),
		To:        toAddr.Hex(),
		BaseUnits: new(big.Int).Set(baseUnits),
		BlockRef:  strconv.FormatUint(nonce, 10),
		Payload:   tx,
	}, nil
}

// Broadcast submits the signed transaction. JSON-RPC errors from the node wrap
// transfer.ErrSubmissionFailed.
func (c *Client) Broadcast(ctx context.Context, signed *transfer.SignedTransfer) (string, error) {
	tx, ok := signed.Payload.(*types.Transaction)
	if !ok {
		return "", fmt.Errorf("%w: unexpected payload %T", transfer.ErrSubmissionFailed, signed.Payload)
	}
	if err := c.eth.SendTransaction(ctx, tx); err != nil {
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			c.logger.Warn("Ethereum node rejected transaction",
				zap.Int("code", rpcErr.ErrorCode()),
				zap.String("message", rpcErr.Error()),
			)
			return "", fmt.Errorf("%w: %s", transfer.ErrSubmissionFailed, rpcErr.Error())
		}
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}
	return tx.Hash().Hex(), nil
}

func (c *Client) SignatureStatus(ctx context.Context, signature string) (transfer.SignatureStatus, error) {
	receipt, err := c.eth.TransactionReceipt(ctx, common.HexToHash(signature))
	if errors.Is(err, geth.NotFound) {
		return transfer.SignatureStatus{Level: transfer.LevelPending}, nil
	}
	if err != nil {
		return transfer.SignatureStatus{}, fmt.Errorf("failed to get receipt: %w", err)
	}

	head, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return transfer.SignatureStatus{}, fmt.Errorf("failed to get block number: %w", err)
	}

	var depth uint64
	if receipt.BlockNumber != nil && head >= receipt.BlockNumber.Uint64() {
		depth = head - receipt.BlockNumber.Uint64() + 1
	}

	status := transfer.SignatureStatus{Level: transfer.LevelProcessed}
	switch {
	case depth >= c.config.FinalizedDepth:
		status.Level = transfer.LevelFinalized
	case depth >= c.config.Confirmations:
		status.Level = transfer.LevelConfirmed
	}
	if receipt.Status == types.ReceiptStatusFailed {
		status.OnChainErr = "execution reverted"
	}
	return status, nil
}

var _ transfer.Network = (*Client)(nil)
