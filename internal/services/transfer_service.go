package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WalletProvider returns a signer for an address the caller controls.
type WalletProvider interface {
	Wallet(chain transfer.Chain, address string) (transfer.Wallet, error)
}

// SendParams describes a transfer initiated by an authenticated user.
type SendParams struct {
	Chain         transfer.Chain
	SenderAddress string
	Recipient     string
	Amount        decimal.Decimal
	Memo          string
	RequestKey    string
	Kind          transfer.Kind
	ArtworkID     uuid.UUID
	UserID        uuid.UUID
	Email         string
}

// TransferService runs transfer attempts for the chain of each request.
type TransferService struct {
	flows    map[transfer.Chain]*transfer.Flow
	wallets  WalletProvider
	balances *BalanceService
	logger   *zap.Logger
}

// NewTransferService registers one flow per chain. balances may be nil.
func NewTransferService(wallets WalletProvider, balances *BalanceService, flows ...*transfer.Flow) *TransferService {
	m := make(map[transfer.Chain]*transfer.Flow, len(flows))
	for _, f := range flows {
		m[f.Chain()] = f
	}
	return &TransferService{flows: m, wallets: wallets, balances: balances, logger: logger.Log}
}

// FeeBuffer returns the fee reserve the chain's builder requires on top of the amount.
func (s *TransferService) FeeBuffer(chain transfer.Chain) (decimal.Decimal, error) {
	flow, ok := s.flows[chain]
	if !ok {
		return decimal.Zero, transfer.ErrUnsupportedChain
	}
	return flow.Builder().FeeBuffer(), nil
}

// Send runs one attempt. The attempt is detached from ctx cancellation: once started it runs to
// a terminal state so a broadcast transfer still gets confirmed and recorded.
func (s *TransferService) Send(ctx context.Context, params SendParams) (*transfer.Outcome, error) {
	flow, ok := s.flows[params.Chain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", transfer.ErrUnsupportedChain, params.Chain)
	}

	wallet, err := s.wallets.Wallet(params.Chain, params.SenderAddress)
	if err != nil {
		s.logger.Warn("No signer for sender wallet",
			zap.String("chain", string(params.Chain)),
			zap.String("address", params.SenderAddress),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrSigningUnavailable, err)
	}

	kind := params.Kind
	if kind == "" {
		kind = transfer.KindTransfer
	}

	outcome, err := flow.Execute(context.WithoutCancel(ctx), wallet, transfer.Request{
		Key:       params.RequestKey,
		Chain:     params.Chain,
		Sender:    wallet.Address(),
		Recipient: params.Recipient,
		Amount:    params.Amount,
		Kind:      kind,
		ItemRef:   params.ArtworkID,
		Memo:      params.Memo,
		Initiator: transfer.Initiator{UserID: params.UserID, Email: params.Email},
	})
	if outcome == nil {
		return nil, err
	}

	if outcome.Signature != "" && s.balances != nil {
		s.balances.Invalidate(params.Chain, wallet.Address(), params.Recipient)
	}

	fields := []zap.Field{
		zap.String("attempt_id", outcome.AttemptID.String()),
		zap.String("chain", string(params.Chain)),
		zap.String("kind", string(kind)),
		zap.String("state", string(outcome.State)),
		zap.String("signature", outcome.Signature),
	}
	var terr *transfer.Error
	switch {
	case errors.As(err, &terr):
		s.logger.Info("Transfer failed", append(fields, zap.String("reason", transfer.ReasonCode(terr)))...)
	case outcome.Warning != nil:
		s.logger.Warn("Transfer confirmed with warning", append(fields,
			zap.String("warning", transfer.ReasonCode(outcome.Warning)),
			zap.Error(outcome.Warning),
		)...)
	default:
		s.logger.Info("Transfer completed", fields...)
	}

	return outcome, err
}
