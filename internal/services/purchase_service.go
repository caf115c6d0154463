package services

import (
	"context"
	"fmt"

	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/helpers"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/google/uuid"
)

// PurchaseParams identifies the buyer and the listing.
type PurchaseParams struct {
	ArtworkID    uuid.UUID
	BuyerID      uuid.UUID
	BuyerEmail   string
	BuyerWallets map[transfer.Chain]string
}

// PurchaseService pays a listing's price to its seller and records the sale.
type PurchaseService struct {
	queries   db.Querier
	transfers *TransferService
}

func NewPurchaseService(queries db.Querier, transfers *TransferService) *PurchaseService {
	return &PurchaseService{queries: queries, transfers: transfers}
}

// Purchase validates the listing and runs a purchase transfer. The listing is marked sold by the
// record writer once the payment is confirmed.
func (s *PurchaseService) Purchase(ctx context.Context, params PurchaseParams) (*transfer.Outcome, db.GetArtworkRow, error) {
	artwork, err := s.queries.GetArtwork(ctx, params.ArtworkID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, db.GetArtworkRow{}, ErrArtworkNotFound
		}
		return nil, db.GetArtworkRow{}, fmt.Errorf("failed to get artwork: %w", err)
	}
	if artwork.Sold {
		return nil, artwork, ErrArtworkSold
	}
	if artwork.CreatorID == params.BuyerID {
		return nil, artwork, ErrOwnArtwork
	}

	chain, ok := transfer.ParseChain(artwork.Chain)
	if !ok {
		return nil, artwork, fmt.Errorf("%w: %s", transfer.ErrUnsupportedChain, artwork.Chain)
	}
	buyerAddress, ok := params.BuyerWallets[chain]
	if !ok {
		return nil, artwork, ErrWalletRequired
	}
	if buyerAddress == artwork.WalletAddress {
		return nil, artwork, ErrOwnArtwork
	}

	outcome, err := s.transfers.Send(ctx, SendParams{
		Chain:         chain,
		SenderAddress: buyerAddress,
		Recipient:     artwork.WalletAddress,
		Amount:        helpers.NumericToDecimal(artwork.Price),
		RequestKey:    "purchase:" + artwork.ID.String(),
		Kind:          transfer.KindPurchase,
		ArtworkID:     artwork.ID,
		UserID:        params.BuyerID,
		Email:         params.BuyerEmail,
	})
	return outcome, artwork, err
}
