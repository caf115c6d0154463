package services

import (
	"context"
	"fmt"

	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/helpers"
	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ArtworkService struct {
	queries db.Querier
	logger  *zap.Logger
}

func NewArtworkService(queries db.Querier) *ArtworkService {
	return &ArtworkService{queries: queries, logger: logger.Log}
}

// CreateArtworkParams is a new listing. The seller wallet comes from the creator's session.
type CreateArtworkParams struct {
	Title         string
	Description   string
	Price         decimal.Decimal
	Chain         transfer.Chain
	ImageURL      string
	Category      string
	CreatorID     uuid.UUID
	CreatorEmail  string
	WalletAddress string
}

func (s *ArtworkService) CreateArtwork(ctx context.Context, params CreateArtworkParams) (db.Artwork, error) {
	if !params.Price.IsPositive() {
		return db.Artwork{}, ErrInvalidPrice
	}
	if params.WalletAddress == "" {
		return db.Artwork{}, ErrWalletRequired
	}
	if params.Title == "" {
		return db.Artwork{}, fmt.Errorf("title is required")
	}

	artwork, err := s.queries.CreateArtwork(ctx, db.CreateArtworkParams{
		Title:         params.Title,
		Description:   helpers.StringToNullableText(params.Description),
		Price:         helpers.DecimalToNumeric(params.Price),
		Chain:         string(params.Chain),
		ImageUrl:      helpers.StringToNullableText(params.ImageURL),
		Category:      helpers.StringToNullableText(params.Category),
		CreatorID:     params.CreatorID,
		CreatorEmail:  params.CreatorEmail,
		WalletAddress: params.WalletAddress,
	})
	if err != nil {
		return db.Artwork{}, fmt.Errorf("failed to create artwork: %w", err)
	}

	s.logger.Info("Artwork listed",
		zap.String("artwork_id", artwork.ID.String()),
		zap.String("creator_id", params.CreatorID.String()),
	)
	return artwork, nil
}

func (s *ArtworkService) GetArtwork(ctx context.Context, id uuid.UUID) (db.GetArtworkRow, error) {
	artwork, err := s.queries.GetArtwork(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return db.GetArtworkRow{}, ErrArtworkNotFound
		}
		return db.GetArtworkRow{}, fmt.Errorf("failed to get artwork: %w", err)
	}
	return artwork, nil
}

// ListArtworks returns the newest listings first. An empty category matches all.
func (s *ArtworkService) ListArtworks(ctx context.Context, category string, limit, offset int32) ([]db.Artwork, error) {
	artworks, err := s.queries.ListArtworks(ctx, db.ListArtworksParams{
		Limit:    limit,
		Offset:   offset,
		Category: helpers.StringToNullableText(category),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}
	return artworks, nil
}

func (s *ArtworkService) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]db.Artwork, error) {
	artworks, err := s.queries.ListArtworksByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks by creator: %w", err)
	}
	return artworks, nil
}

func (s *ArtworkService) ListPurchased(ctx context.Context, buyerID uuid.UUID) ([]db.Artwork, error) {
	artworks, err := s.queries.ListArtworksByBuyer(ctx, helpers.UUIDToPgtype(buyerID))
	if err != nil {
		return nil, fmt.Errorf("failed to list purchased artworks: %w", err)
	}
	return artworks, nil
}
