package handlers

import (
	"net/http"

	"github.com/artvault/artvault-api/internal/auth"
	"github.com/artvault/artvault-api/internal/constants"
	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/helpers"
	"github.com/artvault/artvault-api/internal/services"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/gin-gonic/gin"
)

// ArtworkHandler handles listing and purchasing artworks
type ArtworkHandler struct {
	common *CommonServices
}

func NewArtworkHandler(common *CommonServices) *ArtworkHandler {
	return &ArtworkHandler{common: common}
}

// ArtworkResponse represents an artwork listing
type ArtworkResponse struct {
	ID            string          `json:"id"`
	Object        string          `json:"object"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Price         string          `json:"price"`
	Symbol        string          `json:"symbol"`
	Chain         string          `json:"chain"`
	ImageURL      string          `json:"image_url,omitempty"`
	Category      string          `json:"category,omitempty"`
	CreatorID     string          `json:"creator_id"`
	WalletAddress string          `json:"wallet_address"`
	Sold          bool            `json:"sold"`
	BuyerID       string          `json:"buyer_id,omitempty"`
	PurchaseDate  int64           `json:"purchase_date,omitempty"`
	Creator       *CreatorSummary `json:"creator,omitempty"`
	CreatedAt     int64           `json:"created_at"`
	UpdatedAt     int64           `json:"updated_at"`
}

type CreatorSummary struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// CreateArtworkRequest represents the request body for listing an artwork
type CreateArtworkRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	// Chain defaults to solana.
	Chain    string `json:"chain"`
	// ImageURL points at an image the client already hosts.
	ImageURL string `json:"image_url" binding:"omitempty,http_url"`
	Category string `json:"category"`
}

// PurchaseResponse is the outcome of a purchase attempt
type PurchaseResponse struct {
	TransferResponse
	Artwork ArtworkResponse `json:"artwork"`
}

func toArtworkResponse(a db.Artwork) ArtworkResponse {
	resp := ArtworkResponse{
		ID:            a.ID.String(),
		Object:        "artwork",
		Title:         a.Title,
		Description:   a.Description.String,
		Price:         helpers.NumericToDecimal(a.Price).String(),
		Symbol:        transfer.Chain(a.Chain).Symbol(),
		Chain:         a.Chain,
		ImageURL:      a.ImageUrl.String,
		Category:      a.Category.String,
		CreatorID:     a.CreatorID.String(),
		WalletAddress: a.WalletAddress,
		Sold:          a.Sold,
		PurchaseDate:  unixOrZero(a.PurchaseDate.Time),
		CreatedAt:     unixOrZero(a.CreatedAt.Time),
		UpdatedAt:     unixOrZero(a.UpdatedAt.Time),
	}
	if a.BuyerID.Valid {
		resp.BuyerID = helpers.PgtypeToUUID(a.BuyerID).String()
	}
	return resp
}

func toArtworkDetailResponse(a db.GetArtworkRow) ArtworkResponse {
	resp := toArtworkResponse(db.Artwork{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		Price:         a.Price,
		Chain:         a.Chain,
		ImageUrl:      a.ImageUrl,
		Category:      a.Category,
		CreatorID:     a.CreatorID,
		CreatorEmail:  a.CreatorEmail,
		WalletAddress: a.WalletAddress,
		Sold:          a.Sold,
		BuyerID:       a.BuyerID,
		PurchaseDate:  a.PurchaseDate,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	})
	resp.Creator = &CreatorSummary{
		Name:      a.CreatorName.String,
		Email:     a.CreatorEmail,
		AvatarURL: a.CreatorAvatarUrl.String,
	}
	return resp
}

func toArtworkResponses(artworks []db.Artwork) []ArtworkResponse {
	resp := make([]ArtworkResponse, 0, len(artworks))
	for _, a := range artworks {
		resp = append(resp, toArtworkResponse(a))
	}
	return resp
}

// ListArtworks returns listings newest first, optionally filtered by ?category=
func (h *ArtworkHandler) ListArtworks(c *gin.Context) {
	params, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	artworks, err := h.common.artworks.ListArtworks(c.Request.Context(), c.Query("category"), params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendList(c, toArtworkResponses(artworks))
}

func (h *ArtworkHandler) GetArtwork(c *gin.Context) {
	id, err := parseUUIDParam(c, "artwork_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidArtworkID, err)
		return
	}

	artwork, err := h.common.artworks.GetArtwork(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, toArtworkDetailResponse(artwork))
}

// CreateArtwork lists an artwork for sale, paid to the creator's wallet on the chosen chain
func (h *ArtworkHandler) CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidRequestBody, err)
		return
	}

	chain := transfer.ChainSolana
	if req.Chain != "" {
		parsed, err := parseChain(req.Chain)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		chain = parsed
	}
	price, err := parseAmount(req.Price)
	if err != nil {
		handleServiceError(c, services.ErrInvalidPrice)
		return
	}

	user, session, err := h.common.currentUser(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	_, wallet, err := auth.WalletOf(session, chain)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	artwork, err := h.common.artworks.CreateArtwork(c.Request.Context(), services.CreateArtworkParams{
		Title:         req.Title,
		Description:   req.Description,
		Price:         price,
		Chain:         chain,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		CreatorID:     user.ID,
		CreatorEmail:  user.Email,
		WalletAddress: wallet,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, toArtworkResponse(artwork))
}

// ListCreatorArtworks returns the listings of one creator
func (h *ArtworkHandler) ListCreatorArtworks(c *gin.Context) {
	id, err := parseUUIDParam(c, "user_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidUserID, err)
		return
	}

	artworks, err := h.common.artworks.ListByCreator(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendList(c, toArtworkResponses(artworks))
}

// ListPurchasedArtworks returns the artworks the caller bought
func (h *ArtworkHandler) ListPurchasedArtworks(c *gin.Context) {
	user, _, err := h.common.currentUser(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	artworks, err := h.common.artworks.ListPurchased(c.Request.Context(), user.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendList(c, toArtworkResponses(artworks))
}

// PurchaseArtwork pays the listing price from the caller's wallet to the seller
func (h *ArtworkHandler) PurchaseArtwork(c *gin.Context) {
	id, err := parseUUIDParam(c, "artwork_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidArtworkID, err)
		return
	}

	user, session, err := h.common.currentUser(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	outcome, artwork, err := h.common.purchases.Purchase(c.Request.Context(), services.PurchaseParams{
		ArtworkID:    id,
		BuyerID:      user.ID,
		BuyerEmail:   user.Email,
		BuyerWallets: walletsOf(session),
	})
	if outcome == nil || err != nil {
		h.common.respondOutcome(c, transfer.Chain(artwork.Chain), outcome, err)
		return
	}

	resp := PurchaseResponse{
		TransferResponse: h.common.toTransferResponse(transfer.Chain(artwork.Chain), outcome),
		Artwork:          toArtworkDetailResponse(artwork),
	}
	resp.Object = "purchase"
	if outcome.Warning == nil {
		resp.Artwork.Sold = true
		resp.Artwork.BuyerID = user.ID.String()
	}
	sendSuccess(c, http.StatusOK, resp)
}
