package services

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/transfer"
)

type HistoryService struct {
	queries db.Querier
}

func NewHistoryService(queries db.Querier) *HistoryService {
	return &HistoryService{queries: queries}
}

// List returns records sent by email or received by any of wallets, newest first.
func (s *HistoryService) List(ctx context.Context, email string, wallets map[transfer.Chain]string, limit int32) ([]db.TransferRecord, error) {
	addresses := slices.Sorted(maps.Values(wallets))

	records, err := s.queries.ListTransferHistory(ctx, db.ListTransferHistoryParams{
		SenderEmail:     email,
		Limit:           limit,
		WalletAddresses: addresses,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transfer history: %w", err)
	}
	return records, nil
}

func (s *HistoryService) GetBySignature(ctx context.Context, signature string) (db.TransferRecord, error) {
	record, err := s.queries.GetTransferRecordBySignature(ctx, signature)
	if err != nil {
		if db.IsNotFound(err) {
			return db.TransferRecord{}, ErrRecordNotFound
		}
		return db.TransferRecord{}, fmt.Errorf("failed to get transfer record: %w", err)
	}
	return record, nil
}
