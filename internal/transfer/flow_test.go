package transfer_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/mocks"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/artvault/artvault-api/internal/transfer/transfertest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

const (
	sender    = "addr-sender"
	recipient = "addr-recipient"
)

func fastWaiter(network transfer.Network) *transfer.ConfirmationWaiter {
	return transfer.NewConfirmationWaiter(network, transfer.WaiterConfig{
		Level:           transfer.LevelConfirmed,
		Timeout:         50 * time.Millisecond,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
	})
}

func newFlow(network transfer.Network, recorder transfer.Recorder, feeBuffer string) *transfer.Flow {
	builder := transfer.NewBuilder(network, decimal.RequireFromString(feeBuffer))
	return transfer.NewFlow(builder, fastWaiter(network), recorder, transfer.NewMemoryGuard(), transfer.FlowConfig{SubmitRetries: 1})
}

func request(amount string) transfer.Request {
	return transfer.Request{
		Chain:     transfer.ChainSolana,
		Sender:    sender,
		Recipient: recipient,
		Amount:    decimal.RequireFromString(amount),
		Kind:      transfer.KindTransfer,
	}
}

func TestFlow_BalanceValidation(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		wantErr bool
	}{
		{name: "amount plus fee exceeds balance", balance: "1.0", amount: "1.0", wantErr: true},
		{name: "amount plus fee equals balance", balance: "1.001", amount: "1.0", wantErr: false},
		{name: "amount plus fee below balance", balance: "5", amount: "1.0", wantErr: false},
		{name: "tiny balance", balance: "0.0005", amount: "0.0001", wantErr: true},
		{name: "amount far above balance", balance: "0.1", amount: "100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network := transfertest.NewNetwork()
			network.Fee.SetInt64(0)
			network.Fund(sender, tt.balance)
			recorder := transfertest.NewRecorder(true)
			flow := newFlow(network, recorder, "0.001")

			outcome, err := flow.Execute(context.Background(), transfertest.NewWallet(sender), request(tt.amount))

			if tt.wantErr {
				assert.ErrorIs(t, err, transfer.ErrInsufficientBalance)
				assert.Equal(t, transfer.StateFailed, outcome.State)
				assert.Zero(t, network.Broadcasts)
			} else {
				require.NoError(t, err)
				assert.Equal(t, transfer.StateDone, outcome.State)
				assert.Equal(t, 1, recorder.Count())
			}
		})
	}
}

func TestFlow_InsufficientBalanceReportsShortfall(t *testing.T) {
	network := transfertest.NewNetwork()
	network.Fund(sender, "0.5")
	recorder := transfertest.NewRecorder(true)
	flow := newFlow(network, recorder, "0")

	outcome, err := flow.Execute(context.Background(), transfertest.NewWallet(sender), request("1.0"))

	require.Error(t, err)
	var terr *transfer.Error
	require.True(t, errors.As(err, &terr))
	assert.ErrorIs(t, err, transfer.ErrInsufficientBalance)
	assert.True(t, terr.BalanceKnown)
	assert.True(t, decimal.RequireFromString("0.5").Equal(terr.Shortfall), "shortfall was %s", terr.Shortfall)
	assert.Equal(t, transfer.StateValidating, terr.State)
	assert.Equal(t, transfer.StateFailed, outcome.State)
	assert.Zero(t, network.Broadcasts)
	assert.Zero(t, recorder.Count())
}

func TestFlow_UnreadableBalanceIsTreatedAsInsufficient(t *testing.T) {
	network := transfertest.NewNetwork()
	network.BalanceErr = errors.New("rpc unavailable")
	flow := newFlow(network, transfertest.NewRecorder(true), "0.001")

	_, err := flow.Execute(context.Background(), transfertest.NewWallet(sender), request("0.1"))

	var terr *transfer.Error
	require.True(t, errors.As(err, &terr))
	assert.ErrorIs(t, err, transfer.ErrInsufficientBalance)
	assert.ErrorIs(t, err, transfer.ErrBalanceUnavailable)
	assert.False(t, terr.BalanceKnown)
	assert.Zero(t, network.Broadcasts)
}

func TestFlow_MalformedRecipientRejectedBeforeNetwork(t *testing.T) {
	recipients := []string{"not-an-address", "", "addr-", "ADDR-x", " addr-x"}

	for _, r := range recipients {
		t.Run(fmt.Sprintf("recipient %q", r), func(t *testing.T) {
			network := transfertest.NewNetwork()
			network.Fund(sender, "10")
			recorder := transfertest.NewRecorder(true)
			flow := newFlow(network, recorder, "0.001")

			req := request("0.1")
			req.Recipient = r
			outcome, err := flow.Execute(context.Background(), transfertest.NewWallet(sender), req)

			assert.ErrorIs(t, err, transfer.ErrInvalidRecipient)
			assert.Equal(t, transfer.StateFailed, outcome.State)
			assert.Zero(t, network.NetworkCalls)
			assert.Zero(t, recorder.Count())
		})
	}
}

func TestFlow_InvalidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{name: "zero", amount: "0"},
		{name: "negative", amount: "-1"},
		{name: "below one lamport", amount: "0.0000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network := transfertest.NewNetwork()
			network.Fund(sender, "10")
			flow := newFlow(network, transfertest.NewRecorder(true), "0.001")

			_, err := flow.Execute(context.Background(), transfertest.NewWallet(sender), request(tt.amount))

			assert.ErrorIs(t, err, transfer.ErrInvalidAmount)
			assert.Zero(t, network.NetworkCalls)
		})
	}
}

func TestFlow_SuccessfulTransferWritesOneRecord(t *testing.T) {
	network := transfertest.NewNetwork()
	network.Fund(sender, "2.0")
	recorder := transfertest.NewRecorder(true)
	flow := newFlow(network, recorder, "0.001")
	wallet := transfertest.NewWallet(sender)

	outcome, err := flow.Execute(context.Background(), wallet, request("1.0"))

	require.NoError(t, err)
	assert.Equal(t, transfer.StateDone, outcome.State)
	assert.Nil(t, outcome.Warning)
	assert.NotEmpty(t, outcome.Signature)
	assert.Equal(t, 1, outcome.Submissions)

	require.Equal(t, 1, recorder.Count())
	receipt := recorder.Receipts[0]
	assert.Equal(t, outcome.Signature, receipt.Signature)
	assert.True(t, decimal.RequireFromString("1.0").Equal(receipt.Request.Amount))
	assert.Equal(t, recipient, receipt.Request.Recipient)

	// 2.0 - 1.0 - 0.000005 network fee
	assert.Equal(t, "0.999995", network.NativeBalance(sender).String())
	assert.Equal(t, "1", network.NativeBalance(recipient).String())

	wantStates := []transfer.State{
		transfer.StateValidating,
		transfer.StateBuilding,
		transfer.StateAwaitingSignature,
		transfer.StateBroadcasting,
		transfer.StateConfirming,
		transfer.StateRecording,
		transfer.StateDone,
	}
	require.Len(t, outcome.Transitions, len(wantStates))
	assert.Equal(t, transfer.StateIdle, outcome.Transitions[0].From)
	for i, want := range wantStates {
		assert.Equal(t, want, outcome.Transitions[i].To)
	}
}

func TestFlow_UserRejectsSigning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	network := transfertest.NewNetwork()
	network.Fund(sender, "2.0")
	recorder := mocks.NewMockRecorder(ctrl)
	wallet := mocks.NewMockWallet(ctrl)
	guard := transfer.NewMemoryGuard()

	wallet.EXPECT().Chain().Return(transfer.ChainSolana).AnyTimes()
	wallet.EXPECT().Address().Return(sender).AnyTimes()
	wallet.EXPECT().Sign(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: closed the approval popup", transfer.ErrUserRejected)).
		Times(1)
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).Times(0)

	builder := transfer.NewBuilder(network, decimal.RequireFromString("0.001"))
	flow := transfer.NewFlow(builder, fastWaiter(network), recorder, guard, transfer.FlowConfig{SubmitRetries: 1})
	req := request("1.0")

	outcome, err := flow.Execute(context.Background(), wallet, req)

	assert.ErrorIs(t, err, transfer.ErrUserRejected)
	assert.Equal(t, transfer.StateFailed, outcome.State)
	assert.Equal(t, transfer.StateAwaitingSignature, outcome.Err.State)
	assert.Zero(t, network.Broadcasts)
	assert.False(t, guard.Held(transfer.RequestKey(req)), "guard must be released so the form returns to idle")

	// a fresh attempt for the same request starts from Idle again
	wallet.EXPECT().Sign(gomock.Any(), gomock.Any()).
		Return(nil, transfer.ErrUserRejected).
		Times(1)
	outcome, err = flow.Execute(context.Background(), wallet, req)
	assert.ErrorIs(t, err, transfer.ErrUserRejected)
	assert.Equal(t, transfer.StateIdle, outcome.Transitions[0].From)
}

func TestFlow_ConfirmationTimeoutWritesNoRecord(t *testing.T) {
	network := transfertest.NewNetwork()
	network.Fund(sender, "2.0")
	network.NeverConfirm = true
	recorder := transfertest.NewRecorder(true)
	flow := newFlow(network, recorder, "0.001")

	outcome, err := flow.Execute(context.Background(), transfertest.NewWallet(sender), request("1.0"))

	assert.ErrorIs(t, err, transfer.ErrConfirmationTimeout)
	assert.Equal(t, transfer.StateFailed, outcome.State)
	assert.NotEqual(t, transfer.StateDone, outcome.State)
	assert.Equal(t, transfer.StateConfirming, outcome.Err.State)
	assert.NotEmpty(t, outcome.Err.Signature, "signature is reported so the user can check it later")
	assert.Zero(t, recorder.Count())
	assert.Greater(t, network.StatusChecks, 1)
}

func TestFlow_OnChainError(t *testing.T) {
	network := transfertest.NewNetwork()
	network.Fund(sender, "2.0")
	network.FailOnChain = `{"InstructionError":[0,"Custom"]}`
	recorder := transfertest.NewRecorder(true)
	flow := newFlow(network, recorder, "0.001")

	outcome, err := flow.Execute(context.Background(), transfertest.NewWallet(sender), request("1.0"))

	assert.ErrorIs(t, err, transfer.ErrOnChain)
	assert.Contains(t, err.Error(), "InstructionError")
	assert.Equal(t, transfer.StateFailed, outcome.State)
	assert.Zero(t, recorder.Count())
}

func TestFlow_SubmissionRetry(t *testing.T) {
	rejected := fmt.Errorf("%w: blockhash not found", transfer.ErrSubmissionFailed)

	tests := []struct {
		name           string
		broadcastErrs  []error
		wantErr        error
		wantSubmits    int
		wantSignatures int
	}{
		{
			name:           "rejected once then accepted",
			broadcastErrs:  []error{rejected},
			wantSubmits:    2,
			wantSignatures: 2,
		},
		{
			name:           "rejected twice gives up",
			broadcastErrs:  []error{rejected, rejected},
			wantErr:        transfer.ErrSubmissionFailed,
			wantSubmits:    2,
			wantSignatures: 2,
		},
		{
			name:           "transport error is not retried",
			broadcastErrs:  []error{errors.New("connection reset by peer")},
			wantErr:        transfer.ErrTransport,
			wantSubmits:    1,
			wantSignatures: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			network := transfertest.NewNetwork()
			network.Fund(sender, "2.0")
			network.BroadcastErrs = tt.broadcastErrs
			recorder := transfertest.NewRecorder(true)
			wallet := transfertest.NewWallet(sender)
			flow := newFlow(network, recorder, "0.001")

			outcome, err := flow.Execute(context.Background(), wallet, request("1.0"))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, recorder.Count())
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1, recorder.Count())
			}
			assert.Equal(t, tt.wantSubmits, outcome.Submissions)
			assert.Equal(t, tt.wantSignatures, wallet.Signed)
		})
	}
}

func TestFlow_RecordWriteFailureIsSoftWarning(t *testing.T) {
	network := transfertest.NewNetwork()
	network.Fund(sender, "2.0")
	recorder := transfertest.NewRecorder(true)
	recorder.Err = errors.New("connection refused")
	flow := newFlow(network, recorder, "0.001")

	outcome, err := flow.Execute(context.Background(), transfertest.NewWallet(sender), request("1.0"))

	require.NoError(t, err)
	assert.Equal(t, transfer.StateDone, outcome.State)
	require.Error(t, outcome.Warning)
	assert.ErrorIs(t, outcome.Warning, transfer.ErrRecordWriteFailed)
	assert.NotEmpty(t, outcome.Signature)
}

func TestFlow_RecordedWithListingWarning(t *testing.T) {
	network := transfertest.NewNetwork()
	network.Fund(sender, "2.0")
	recorder := transfertest.NewRecorder(true)
	recorder.Warning = fmt.Errorf("%w: artwork 42", transfer.ErrListingUnavailable)
	flow := newFlow(network, recorder, "0.001")

	outcome, err := flow.Execute(context.Background(), transfertest.NewWallet(sender), request("1.0"))

	require.NoError(t, err)
	assert.Equal(t, transfer.StateDone, outcome.State)
	assert.NotEmpty(t, outcome.RecordID)
	assert.Equal(t, 1, recorder.Count())
	assert.ErrorIs(t, outcome.Warning, transfer.ErrListingUnavailable)
	assert.NotErrorIs(t, outcome.Warning, transfer.ErrRecordWriteFailed)
	assert.Equal(t, "listing_already_sold", transfer.ReasonCode(outcome.Warning))
}

func TestFlow_SingleFlightPerRequest(t *testing.T) {
	network := transfertest.NewNetwork()
	network.Fund(sender, "5.0")
	recorder := transfertest.NewRecorder(true)
	guard := transfer.NewMemoryGuard()
	builder := transfer.NewBuilder(network, decimal.RequireFromString("0.001"))
	flow := transfer.NewFlow(builder, fastWaiter(network), recorder, guard, transfer.FlowConfig{})

	blocked := transfertest.NewWallet(sender)
	blocked.Gate = make(chan struct{})

	req := request("1.0")
	req.Key = "form-1"

	done := make(chan error, 1)
	go func() {
		_, err := flow.Execute(context.Background(), blocked, req)
		done <- err
	}()

	require.Eventually(t, func() bool { return guard.Held("form-1") }, time.Second, time.Millisecond)

	outcome, err := flow.Execute(context.Background(), transfertest.NewWallet(sender), req)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, transfer.ErrAttemptInFlight)

	other := request("0.5")
	other.Key = "form-2"
	_, err = flow.Execute(context.Background(), transfertest.NewWallet(sender), other)
	require.NoError(t, err, "a different request is not blocked")

	close(blocked.Gate)
	require.NoError(t, <-done)
	assert.Equal(t, 2, recorder.Count())
	assert.False(t, guard.Held("form-1"))
}

func TestFlow_RejectsWalletOnOtherChain(t *testing.T) {
	network := transfertest.NewNetwork()
	flow := newFlow(network, transfertest.NewRecorder(true), "0.001")
	wallet := transfertest.NewWallet(sender)
	wallet.ChainID = transfer.ChainEthereum

	outcome, err := flow.Execute(context.Background(), wallet, transfer.Request{Recipient: recipient, Amount: decimal.NewFromInt(1)})

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, transfer.ErrUnsupportedChain)
}

// A confirmed signature handed to the recorder twice. Only a store with a unique constraint
// on signature collapses the second write.
func TestRecorder_SameSignatureTwice(t *testing.T) {
	tests := []struct {
		name        string
		unique      bool
		wantRecords int
		wantAlready bool
	}{
		{name: "unique constraint", unique: true, wantRecords: 1, wantAlready: true},
		{name: "no constraint duplicates", unique: false, wantRecords: 2, wantAlready: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := transfertest.NewRecorder(tt.unique)
			receipt := transfer.Receipt{Request: request("1.0"), Signature: "sig-dup", Level: transfer.LevelConfirmed}

			first, err := recorder.Record(context.Background(), receipt)
			require.NoError(t, err)
			second, err := recorder.Record(context.Background(), receipt)
			require.NoError(t, err)

			assert.False(t, first.AlreadyRecorded)
			assert.Equal(t, tt.wantAlready, second.AlreadyRecorded)
			assert.Equal(t, tt.wantRecords, recorder.Count())
			if tt.unique {
				assert.Equal(t, first.RecordID, second.RecordID)
			}
		})
	}
}

func TestFlow_RecipientIsCanonicalised(t *testing.T) {
	network := transfertest.NewNetwork()
	network.CaseInsensitive = true
	network.Fund(sender, "5.0")
	recorder := transfertest.NewRecorder(true)
	guard := transfer.NewMemoryGuard()
	builder := transfer.NewBuilder(network, decimal.RequireFromString("0.001"))
	flow := transfer.NewFlow(builder, fastWaiter(network), recorder, guard, transfer.FlowConfig{})

	mixed := request("1.0")
	mixed.Recipient = "ADDR-Recipient"

	blocked := transfertest.NewWallet(sender)
	blocked.Gate = make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := flow.Execute(context.Background(), blocked, mixed)
		done <- err
	}()

	canonicalKey := transfer.RequestKey(request("1.0"))
	require.Eventually(t, func() bool { return guard.Held(canonicalKey) }, time.Second, time.Millisecond)

	// The same send written in another casing is the same request.
	outcome, err := flow.Execute(context.Background(), transfertest.NewWallet(sender), request("1.0"))
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, transfer.ErrAttemptInFlight)

	close(blocked.Gate)
	require.NoError(t, <-done)

	require.Equal(t, 1, recorder.Count())
	assert.Equal(t, recipient, recorder.Receipts[0].Request.Recipient)
	assert.Equal(t, "1", network.NativeBalance(recipient).String())
}
