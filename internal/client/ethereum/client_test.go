package ethereum

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/transfer"
	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

type rpcError struct {
	code int
	msg  string
}

func (e rpcError) Error() string  { return e.msg }
func (e rpcError) ErrorCode() int { return e.code }

type fakeEth struct {
	balance *big.Int
	nonce   uint64
	sendErr error
	sent    *types.Transaction
	receipt *types.Receipt
	head    uint64
}

func (f *fakeEth) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return f.balance, nil
}

func (f *fakeEth) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return f.nonce, nil
}

func (f *fakeEth) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(2_000_000_000), nil
}

func (f *fakeEth) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{BaseFee: big.NewInt(10_000_000_000)}, nil
}

func (f *fakeEth) SendTransaction(_ context.Context, tx *types.Transaction) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = tx
	return nil
}

func (f *fakeEth) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	if f.receipt == nil {
		return nil, geth.NotFound
	}
	return f.receipt, nil
}

func (f *fakeEth) BlockNumber(context.Context) (uint64, error) {
	return f.head, nil
}

const (
	fromAddr = "0x00000000000000000000000000000000000000a1"
	toAddr   = "0x00000000000000000000000000000000000000b2"
)

func TestClient_ParseAddress(t *testing.T) {
	c := newClient(&fakeEth{}, Config{ChainID: big.NewInt(11155111)})

	got, err := c.ParseAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", got)

	_, err = c.ParseAddress("not-an-address")
	assert.Error(t, err)
}

func TestClient_BuildTransfer(t *testing.T) {
	fake := &fakeEth{nonce: 7}
	c := newClient(fake, Config{ChainID: big.NewInt(11155111)})

	unsigned, err := c.BuildTransfer(context.Background(), fromAddr, toAddr, big.NewInt(1e15), "")
	require.NoError(t, err)
	assert.Equal(t, "7", unsigned.BlockRef)

	tx := unsigned.Payload.(*types.Transaction)
	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, params.TxGas, tx.Gas())
	assert.Equal(t, big.NewInt(1e15), tx.Value())
	assert.Equal(t, common.HexToAddress(toAddr), *tx.To())
	assert.Equal(t, big.NewInt(22_000_000_000), tx.GasFeeCap())
}

func TestClient_BroadcastClassifiesErrors(t *testing.T) {
	tx := types.NewTx(&types.DynamicFeeTx{ChainID: big.NewInt(1), Gas: params.TxGas})

	c := newClient(&fakeEth{sendErr: rpcError{code: -32000, msg: "nonce too low"}}, Config{ChainID: big.NewInt(1)})
	_, err := c.Broadcast(context.Background(), &transfer.SignedTransfer{Payload: tx})
	assert.ErrorIs(t, err, transfer.ErrSubmissionFailed)

	c = newClient(&fakeEth{sendErr: errors.New("connection refused")}, Config{ChainID: big.NewInt(1)})
	_, err = c.Broadcast(context.Background(), &transfer.SignedTransfer{Payload: tx})
	require.Error(t, err)
	assert.NotErrorIs(t, err, transfer.ErrSubmissionFailed)

	fake := &fakeEth{}
	c = newClient(fake, Config{ChainID: big.NewInt(1)})
	hash, err := c.Broadcast(context.Background(), &transfer.SignedTransfer{Payload: tx})
	require.NoError(t, err)
	assert.Equal(t, tx.Hash().Hex(), hash)
}

func TestClient_SignatureStatus(t *testing.T) {
	tests := []struct {
		name      string
		receipt   *types.Receipt
		head      uint64
		wantLevel transfer.ConfirmationLevel
		wantErr   bool
	}{
		{name: "pending", wantLevel: transfer.LevelPending},
		{name: "mined one block", receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(100)}, head: 100, wantLevel: transfer.LevelProcessed},
		{name: "confirmed depth", receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(100)}, head: 101, wantLevel: transfer.LevelConfirmed},
		{name: "finalized depth", receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(100)}, head: 200, wantLevel: transfer.LevelFinalized},
		{name: "reverted", receipt: &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(100)}, head: 105, wantLevel: transfer.LevelConfirmed, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(&fakeEth{receipt: tt.receipt, head: tt.head}, Config{ChainID: big.NewInt(1)})
			status, err := c.SignatureStatus(context.Background(), "0xabc")
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, status.Level)
			assert.Equal(t, tt.wantErr, status.OnChainErr != "")
		})
	}
}
