package handlers

import (
	"net/http"

	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	common *CommonServices
}

func NewUserHandler(common *CommonServices) *UserHandler {
	return &UserHandler{common: common}
}

// UserResponse represents the signed in user
type UserResponse struct {
	ID        string            `json:"id"`
	Object    string            `json:"object"`
	Email     string            `json:"email,omitempty"`
	Name      string            `json:"name,omitempty"`
	AvatarURL string            `json:"avatar_url,omitempty"`
	Wallets   map[string]string `json:"wallets"`
	CreatedAt int64             `json:"created_at"`
	UpdatedAt int64             `json:"updated_at"`
}

func toUserResponse(u db.User) UserResponse {
	wallets := make(map[string]string, 2)
	if u.WalletAddress.Valid {
		wallets[string(transfer.ChainSolana)] = u.WalletAddress.String
	}
	if u.EthWalletAddress.Valid {
		wallets[string(transfer.ChainEthereum)] = u.EthWalletAddress.String
	}
	return UserResponse{
		ID:        u.ID.String(),
		Object:    "user",
		Email:     u.Email,
		Name:      u.Name.String,
		AvatarURL: u.AvatarUrl.String,
		Wallets:   wallets,
		CreatedAt: unixOrZero(u.CreatedAt.Time),
		UpdatedAt: unixOrZero(u.UpdatedAt.Time),
	}
}

// GetMe syncs the session claims into the users table and returns the stored user
func (h *UserHandler) GetMe(c *gin.Context) {
	user, _, err := h.common.currentUser(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, toUserResponse(user))
}

// GetUserByWallet looks up the owner of a Solana or Ethereum address
func (h *UserHandler) GetUserByWallet(c *gin.Context) {
	user, err := h.common.users.GetUserByWallet(c.Request.Context(), c.Param("address"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp := toUserResponse(user)
	resp.Email = ""
	sendSuccess(c, http.StatusOK, resp)
}
