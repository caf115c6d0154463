package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/mocks"
	"github.com/artvault/artvault-api/internal/services"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

type publishedEvent struct {
	eventType string
	payload   any
}

type fakePublisher struct {
	events []publishedEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, eventType string, payload any) error {
	p.events = append(p.events, publishedEvent{eventType: eventType, payload: payload})
	return p.err
}

func duplicateSignatureErr() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: db.TransferSignatureConstraint}
}

func testReceipt(kind transfer.Kind, itemRef uuid.UUID) transfer.Receipt {
	return transfer.Receipt{
		Request: transfer.Request{
			Chain:     transfer.ChainSolana,
			Sender:    "SenderAddr",
			Recipient: "RecipientAddr",
			Amount:    decimal.RequireFromString("1.5"),
			Kind:      kind,
			ItemRef:   itemRef,
			Memo:      "thanks",
			Initiator: transfer.Initiator{UserID: uuid.New(), Email: "ada@example.com"},
		},
		Signature:   "sig-1",
		Level:       transfer.LevelConfirmed,
		ConfirmedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRecordWriter_Record(t *testing.T) {
	ctx := context.Background()
	recordID := uuid.New()
	artworkID := uuid.New()

	tests := []struct {
		name          string
		receipt       transfer.Receipt
		setupMocks    func(store *mocks.MockStore, tx *mocks.MockQuerier)
		wantErr       bool
		wantAlready   bool
		wantRecordID  uuid.UUID
		wantPublished int
		wantWarning   error
	}{
		{
			name:    "inserts a plain transfer",
			receipt: testReceipt(transfer.KindTransfer, uuid.Nil),
			setupMocks: func(store *mocks.MockStore, _ *mocks.MockQuerier) {
				store.EXPECT().InsertTransferRecord(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, p db.InsertTransferRecordParams) (db.TransferRecord, error) {
						assert.Equal(t, "sig-1", p.Signature)
						assert.Equal(t, "transfer", p.Kind)
						assert.False(t, p.ArtworkID.Valid)
						assert.Equal(t, "thanks", p.Memo.String)
						assert.Equal(t, "ada@example.com", p.SenderEmail)
						return db.TransferRecord{ID: recordID, Signature: p.Signature, Kind: p.Kind, Amount: p.Amount}, nil
					})
			},
			wantRecordID:  recordID,
			wantPublished: 1,
		},
		{
			name:    "duplicate signature is already recorded",
			receipt: testReceipt(transfer.KindTransfer, uuid.Nil),
			setupMocks: func(store *mocks.MockStore, _ *mocks.MockQuerier) {
				store.EXPECT().InsertTransferRecord(ctx, gomock.Any()).Return(db.TransferRecord{}, duplicateSignatureErr())
				store.EXPECT().GetTransferRecordBySignature(ctx, "sig-1").Return(db.TransferRecord{ID: recordID}, nil)
			},
			wantAlready:  true,
			wantRecordID: recordID,
		},
		{
			name:    "duplicate signature with unreadable existing row",
			receipt: testReceipt(transfer.KindTransfer, uuid.Nil),
			setupMocks: func(store *mocks.MockStore, _ *mocks.MockQuerier) {
				store.EXPECT().InsertTransferRecord(ctx, gomock.Any()).Return(db.TransferRecord{}, duplicateSignatureErr())
				store.EXPECT().GetTransferRecordBySignature(ctx, "sig-1").Return(db.TransferRecord{}, errors.New("timeout"))
			},
			wantAlready: true,
		},
		{
			name:    "other database error",
			receipt: testReceipt(transfer.KindTransfer, uuid.Nil),
			setupMocks: func(store *mocks.MockStore, _ *mocks.MockQuerier) {
				store.EXPECT().InsertTransferRecord(ctx, gomock.Any()).Return(db.TransferRecord{}, errors.New("connection reset"))
			},
			wantErr: true,
		},
		{
			name:    "other unique violation is an error",
			receipt: testReceipt(transfer.KindTransfer, uuid.Nil),
			setupMocks: func(store *mocks.MockStore, _ *mocks.MockQuerier) {
				store.EXPECT().InsertTransferRecord(ctx, gomock.Any()).
					Return(db.TransferRecord{}, &pgconn.PgError{Code: "23505", ConstraintName: "transfer_records_pkey"})
			},
			wantErr: true,
		},
		{
			name:    "purchase records and marks sold in one transaction",
			receipt: testReceipt(transfer.KindPurchase, artworkID),
			setupMocks: func(store *mocks.MockStore, tx *mocks.MockQuerier) {
				store.EXPECT().ExecTx(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, fn func(db.Querier) error) error { return fn(tx) })
				tx.EXPECT().InsertTransferRecord(ctx, gomock.Any()).
					Return(db.TransferRecord{ID: recordID, Kind: "purchase"}, nil)
				tx.EXPECT().MarkArtworkSold(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, p db.MarkArtworkSoldParams) (db.Artwork, error) {
						assert.Equal(t, artworkID, p.ID)
						assert.True(t, p.BuyerID.Valid)
						assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), p.PurchaseDate.Time)
						return db.Artwork{ID: artworkID, Sold: true}, nil
					})
			},
			wantRecordID:  recordID,
			wantPublished: 1,
		},
		{
			name:    "purchase of a listing sold meanwhile keeps the record",
			receipt: testReceipt(transfer.KindPurchase, artworkID),
			setupMocks: func(store *mocks.MockStore, tx *mocks.MockQuerier) {
				store.EXPECT().ExecTx(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, fn func(db.Querier) error) error {
						txErr := fn(tx)
						assert.NoError(t, txErr, "transaction must commit the record")
						return txErr
					})
				tx.EXPECT().InsertTransferRecord(ctx, gomock.Any()).Return(db.TransferRecord{ID: recordID, Kind: "purchase"}, nil)
				tx.EXPECT().MarkArtworkSold(ctx, gomock.Any()).Return(db.Artwork{}, pgx.ErrNoRows)
			},
			wantRecordID:  recordID,
			wantPublished: 1,
			wantWarning:   transfer.ErrListingUnavailable,
		},
		{
			name:    "purchase with duplicate signature",
			receipt: testReceipt(transfer.KindPurchase, artworkID),
			setupMocks: func(store *mocks.MockStore, tx *mocks.MockQuerier) {
				store.EXPECT().ExecTx(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, fn func(db.Querier) error) error { return fn(tx) })
				tx.EXPECT().InsertTransferRecord(ctx, gomock.Any()).Return(db.TransferRecord{}, duplicateSignatureErr())
				store.EXPECT().GetTransferRecordBySignature(ctx, "sig-1").Return(db.TransferRecord{ID: recordID}, nil)
			},
			wantAlready:  true,
			wantRecordID: recordID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockStore(ctrl)
			tx := mocks.NewMockQuerier(ctrl)
			publisher := &fakePublisher{}
			tt.setupMocks(store, tx)

			writer := services.NewRecordWriter(store, publisher)
			result, err := writer.Record(ctx, tt.receipt)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, publisher.events)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAlready, result.AlreadyRecorded)
			assert.Equal(t, tt.wantRecordID, result.RecordID)
			assert.Len(t, publisher.events, tt.wantPublished)
			if tt.wantWarning != nil {
				assert.ErrorIs(t, result.Warning, tt.wantWarning)
				assert.Equal(t, "listing_already_sold", transfer.ReasonCode(result.Warning))
			} else {
				assert.NoError(t, result.Warning)
			}
		})
	}
}

func TestRecordWriter_PublishFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ctx := context.Background()
	recordID := uuid.New()

	store.EXPECT().InsertTransferRecord(ctx, gomock.Any()).Return(db.TransferRecord{ID: recordID, Signature: "sig-1"}, nil)

	publisher := &fakePublisher{err: errors.New("queue unavailable")}
	result, err := services.NewRecordWriter(store, publisher).Record(ctx, testReceipt(transfer.KindTransfer, uuid.Nil))
	require.NoError(t, err)
	assert.Equal(t, recordID, result.RecordID)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, services.TransferRecordedEvent, publisher.events[0].eventType)
	payload := publisher.events[0].payload.(services.TransferRecordedPayload)
	assert.Equal(t, "sig-1", payload.Signature)
}

// Without the unique constraint nothing stops a second row for the same signature.
func TestRecordWriter_StoreWithoutUniqueConstraintDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	ctx := context.Background()

	var rows []db.InsertTransferRecordParams
	store.EXPECT().InsertTransferRecord(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p db.InsertTransferRecordParams) (db.TransferRecord, error) {
			rows = append(rows, p)
			return db.TransferRecord{ID: uuid.New(), Signature: p.Signature}, nil
		}).Times(2)

	writer := services.NewRecordWriter(store, nil)
	receipt := testReceipt(transfer.KindTransfer, uuid.Nil)

	first, err := writer.Record(ctx, receipt)
	require.NoError(t, err)
	second, err := writer.Record(ctx, receipt)
	require.NoError(t, err)

	assert.False(t, first.AlreadyRecorded)
	assert.False(t, second.AlreadyRecorded)
	assert.NotEqual(t, first.RecordID, second.RecordID)
	require.Len(t, rows, 2)
	assert.Equal(t, rows[0].Signature, rows[1].Signature)
}
