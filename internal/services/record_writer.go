package services

import (
	"context"
	"fmt"
	"time"

	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/helpers"
	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/transfer"
	"go.uber.org/zap"
)

// TransferRecordedEvent is the payload published after a new record is written.
const TransferRecordedEvent = "transfer.recorded"

// EventPublisher delivers domain events. Publish failures never fail the caller.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// TransferRecordedPayload is the JSON body of a transfer.recorded event.
type TransferRecordedPayload struct {
	RecordID         string `json:"record_id"`
	Signature        string `json:"signature"`
	Chain            string `json:"chain"`
	Kind             string `json:"kind"`
	SenderEmail      string `json:"sender_email"`
	SenderAddress    string `json:"sender_address"`
	RecipientAddress string `json:"recipient_address"`
	Amount           string `json:"amount"`
	ArtworkID        string `json:"artwork_id,omitempty"`
	ConfirmedAt      string `json:"confirmed_at"`
}

// RecordWriter persists confirmed transfers. It implements transfer.Recorder.
type RecordWriter struct {
	store     db.Store
	publisher EventPublisher
	logger    *zap.Logger
}

// NewRecordWriter builds a writer. publisher may be nil.
func NewRecordWriter(store db.Store, publisher EventPublisher) *RecordWriter {
	return &RecordWriter{store: store, publisher: publisher, logger: logger.Log}
}

// Record inserts one Transfer Record. A purchase also marks the listing sold in the same
// database transaction. A duplicate signature reports AlreadyRecorded.
func (w *RecordWriter) Record(ctx context.Context, receipt transfer.Receipt) (transfer.RecordResult, error) {
	req := receipt.Request
	params := db.InsertTransferRecordParams{
		Signature:        receipt.Signature,
		Chain:            string(req.Chain),
		Kind:             string(req.Kind),
		SenderID:         helpers.UUIDToPgtype(req.Initiator.UserID),
		SenderEmail:      req.Initiator.Email,
		SenderAddress:    req.Sender,
		RecipientAddress: req.Recipient,
		Amount:           helpers.DecimalToNumeric(req.Amount),
		ArtworkID:        helpers.UUIDToPgtype(req.ItemRef),
		Memo:             helpers.StringToNullableText(req.Memo),
	}

	var (
		record      db.TransferRecord
		err         error
		listingSold bool
	)
	if req.Kind == transfer.KindPurchase {
		err = w.store.ExecTx(ctx, func(q db.Querier) error {
			var txErr error
			record, txErr = q.InsertTransferRecord(ctx, params)
			if txErr != nil {
				return txErr
			}
			_, txErr = q.MarkArtworkSold(ctx, db.MarkArtworkSoldParams{
				ID:           req.ItemRef,
				BuyerID:      helpers.UUIDToPgtype(req.Initiator.UserID),
				PurchaseDate: helpers.TimeToNullableTimestamptz(receipt.ConfirmedAt),
			})
			// Sold to someone else meanwhile. The payment is confirmed, so the record is kept.
			if db.IsNotFound(txErr) {
				listingSold = true
				return nil
			}
			return txErr
		})
	} else {
		record, err = w.store.InsertTransferRecord(ctx, params)
	}

	if db.IsUniqueViolation(err, db.TransferSignatureConstraint) {
		return w.alreadyRecorded(ctx, receipt.Signature)
	}
	if err != nil {
		return transfer.RecordResult{}, fmt.Errorf("failed to insert transfer record: %w", err)
	}

	w.logger.Info("Transfer recorded",
		zap.String("record_id", record.ID.String()),
		zap.String("signature", record.Signature),
		zap.String("kind", record.Kind),
	)
	w.publish(ctx, record, receipt)

	result := transfer.RecordResult{RecordID: record.ID}
	if listingSold {
		result.Warning = fmt.Errorf("%w: artwork %s", transfer.ErrListingUnavailable, req.ItemRef)
		w.logger.Error("Purchase recorded for a listing that was already sold",
			zap.String("record_id", record.ID.String()),
			zap.String("signature", record.Signature),
			zap.String("artwork_id", req.ItemRef.String()),
		)
	}
	return result, nil
}

func (w *RecordWriter) alreadyRecorded(ctx context.Context, signature string) (transfer.RecordResult, error) {
	w.logger.Info("Transfer already recorded", zap.String("signature", signature))

	existing, err := w.store.GetTransferRecordBySignature(ctx, signature)
	if err != nil {
		w.logger.Warn("Existing transfer record could not be read",
			zap.String("signature", signature),
			zap.Error(err),
		)
		return transfer.RecordResult{AlreadyRecorded: true}, nil
	}
	return transfer.RecordResult{RecordID: existing.ID, AlreadyRecorded: true}, nil
}

func (w *RecordWriter) publish(ctx context.Context, record db.TransferRecord, receipt transfer.Receipt) {
	if w.publisher == nil {
		return
	}

	payload := TransferRecordedPayload{
		RecordID:         record.ID.String(),
		Signature:        record.Signature,
		Chain:            record.Chain,
		Kind:             record.Kind,
		SenderEmail:      record.SenderEmail,
		SenderAddress:    record.SenderAddress,
		RecipientAddress: record.RecipientAddress,
		Amount:           helpers.NumericToDecimal(record.Amount).String(),
		ConfirmedAt:      receipt.ConfirmedAt.UTC().Format(time.RFC3339),
	}
	if record.ArtworkID.Valid {
		payload.ArtworkID = helpers.PgtypeToUUID(record.ArtworkID).String()
	}

	if err := w.publisher.Publish(ctx, TransferRecordedEvent, payload); err != nil {
		w.logger.Warn("Failed to publish transfer event",
			zap.String("signature", record.Signature),
			zap.Error(err),
		)
	}
}

var _ transfer.Recorder = (*RecordWriter)(nil)
