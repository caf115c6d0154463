package transfer

import (
	"context"
	"errors"
	"time"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FlowConfig configures a Flow.
type FlowConfig struct {
	// SubmitRetries is how many times a rejected broadcast is rebuilt and resubmitted.
	SubmitRetries int
	Observer      Observer
	Now           func() time.Time
}

// Outcome is the result of one attempt, successful or not.
type Outcome struct {
	AttemptID       uuid.UUID
	State           State
	Signature       string
	Level           ConfirmationLevel
	RecordID        uuid.UUID
	AlreadyRecorded bool
	// Warning is set when the funds moved but recording was incomplete. It wraps
	// ErrRecordWriteFailed when no record was written, or ErrListingUnavailable when the
	// record was written but the listing could not be marked sold.
	Warning     error
	Err         *Error
	Submissions int
	Transitions []Transition
}

// Flow runs transfer attempts on one network:
// validate, build, sign, broadcast, confirm and record.
type Flow struct {
	network  Network
	builder  *Builder
	waiter   *ConfirmationWaiter
	recorder Recorder
	guard    Guard
	config   FlowConfig
	logger   *zap.Logger
}

func NewFlow(builder *Builder, waiter *ConfirmationWaiter, recorder Recorder, guard Guard, config FlowConfig) *Flow {
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.SubmitRetries < 0 {
		config.SubmitRetries = 0
	}
	if guard == nil {
		guard = NewMemoryGuard()
	}
	return &Flow{
		network:  builder.network,
		builder:  builder,
		waiter:   waiter,
		recorder: recorder,
		guard:    guard,
		config:   config,
		logger:   logger.Log,
	}
}

// Chain returns the chain this flow transfers on.
func (f *Flow) Chain() Chain { return f.network.Chain() }

// Builder exposes the flow's builder.
func (f *Flow) Builder() *Builder { return f.builder }

// Execute runs one attempt for req using wallet.
// It returns ErrAttemptInFlight without starting an attempt when the request key is held.
// Otherwise the Outcome is always non-nil, and the returned error is Outcome.Err.
func (f *Flow) Execute(ctx context.Context, wallet Wallet, req Request) (*Outcome, error) {
	if req.Chain == "" {
		req.Chain = f.network.Chain()
	}
	if req.Kind == "" {
		req.Kind = KindTransfer
	}
	if req.Chain != f.network.Chain() || wallet.Chain() != f.network.Chain() {
		return nil, ErrUnsupportedChain
	}
	if req.Sender == "" {
		req.Sender = wallet.Address()
	}
	// Parsing is local. A malformed recipient is kept as given and rejected during validation.
	if canonical, err := f.network.ParseAddress(req.Recipient); err == nil {
		req.Recipient = canonical
	}

	key := RequestKey(req)
	release, err := f.guard.Acquire(ctx, key)
	if err != nil {
		return nil, err
	}
	defer release()

	attempt := newAttempt(req, f.observer(), f.config.Now)
	outcome := f.run(ctx, attempt, wallet)
	outcome.AttemptID = attempt.ID
	outcome.State = attempt.State()
	outcome.Transitions = attempt.History()
	if outcome.Err != nil {
		return outcome, outcome.Err
	}
	return outcome, nil
}

func (f *Flow) run(ctx context.Context, a *Attempt, wallet Wallet) *Outcome {
	out := &Outcome{}
	req := a.Request

	a.advance(StateValidating)
	recipient, verr := f.builder.CheckInputs(req)
	if verr != nil {
		out.Err = a.failWith(verr)
		return out
	}
	req.Recipient = recipient
	if verr := f.builder.CheckBalance(ctx, req); verr != nil {
		out.Err = a.failWith(verr)
		return out
	}

	var signature string
	for {
		a.advance(StateBuilding)
		unsigned, err := f.builder.Build(ctx, req, recipient)
		if err != nil {
			out.Err = a.fail(ErrTransport, err)
			return out
		}

		a.advance(StateAwaitingSignature)
		signed, err := wallet.Sign(ctx, unsigned)
		if err != nil {
			out.Err = a.fail(classifyWalletError(err), err)
			return out
		}

		a.advance(StateBroadcasting)
		out.Submissions++
		signature, err = f.network.Broadcast(ctx, signed)
		if err == nil {
			break
		}
		if errors.Is(err, ErrSubmissionFailed) && out.Submissions <= f.config.SubmitRetries {
			f.logger.Warn("Broadcast rejected, rebuilding transfer",
				zap.String("attempt_id", a.ID.String()),
				zap.Int("submission", out.Submissions),
				zap.Error(err),
			)
			continue
		}
		out.Err = a.fail(classifyBroadcastError(err), err)
		return out
	}
	out.Signature = signature

	a.advance(StateConfirming)
	status, err := f.waiter.Wait(ctx, signature)
	if err != nil {
		reason := ErrTransport
		switch {
		case errors.Is(err, ErrConfirmationTimeout):
			reason = ErrConfirmationTimeout
		case errors.Is(err, ErrOnChain):
			reason = ErrOnChain
		}
		e := &Error{Reason: reason, Err: err, Signature: signature}
		out.Err = a.failWith(e)
		return out
	}
	out.Level = status.Level

	a.advance(StateRecording)
	result, err := f.recorder.Record(ctx, Receipt{
		Request:     req,
		Signature:   signature,
		Level:       status.Level,
		ConfirmedAt: f.config.Now(),
	})
	if err != nil {
		out.Warning = &Error{Reason: ErrRecordWriteFailed, State: StateRecording, Err: err, Signature: signature}
		f.logger.Error("Transfer confirmed but record write failed",
			zap.String("attempt_id", a.ID.String()),
			zap.String("signature", signature),
			zap.Error(err),
		)
	} else {
		out.RecordID = result.RecordID
		out.AlreadyRecorded = result.AlreadyRecorded
		if result.Warning != nil {
			reason := ErrRecordWriteFailed
			if errors.Is(result.Warning, ErrListingUnavailable) {
				reason = ErrListingUnavailable
			}
			out.Warning = &Error{Reason: reason, State: StateRecording, Err: result.Warning, Signature: signature}
			f.logger.Error("Transfer recorded with warning",
				zap.String("attempt_id", a.ID.String()),
				zap.String("signature", signature),
				zap.Error(result.Warning),
			)
		}
	}

	a.advance(StateDone)
	return out
}

func (f *Flow) observer() Observer {
	return ObserverFunc(func(attemptID uuid.UUID, t Transition, err error) {
		fields := []zap.Field{
			zap.String("attempt_id", attemptID.String()),
			zap.String("chain", string(f.network.Chain())),
			zap.String("from", string(t.From)),
			zap.String("to", string(t.To)),
		}
		if err != nil {
			f.logger.Info("Transfer attempt failed", append(fields, zap.String("reason", ReasonCode(err)), zap.Error(err))...)
		} else {
			f.logger.Debug("Transfer attempt transition", fields...)
		}
		if f.config.Observer != nil {
			f.config.Observer.OnTransition(attemptID, t, err)
		}
	})
}

func classifyWalletError(err error) error {
	if errors.Is(err, ErrUserRejected) {
		return ErrUserRejected
	}
	return ErrTransport
}

func classifyBroadcastError(err error) error {
	if errors.Is(err, ErrSubmissionFailed) {
		return ErrSubmissionFailed
	}
	return ErrTransport
}
