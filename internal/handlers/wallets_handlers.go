package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/artvault/artvault-api/internal/auth"
	"github.com/artvault/artvault-api/internal/middleware"
	"github.com/artvault/artvault-api/internal/services"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const (
	defaultStreamInterval = 15 * time.Second
	minStreamInterval     = 5 * time.Second
	maxStreamInterval     = 5 * time.Minute
	defaultQRSize         = 256
	maxQRSize             = 1024
)

// WalletHandler serves balances and receive codes for the session's wallets
type WalletHandler struct {
	common *CommonServices
	// streamIntervalFloor is lowered in tests.
	streamIntervalFloor time.Duration
}

func NewWalletHandler(common *CommonServices) *WalletHandler {
	return &WalletHandler{common: common, streamIntervalFloor: minStreamInterval}
}

type BalancesResponse struct {
	Object string                   `json:"object"`
	Data   []services.WalletBalance `json:"data"`
}

func (h *WalletHandler) sessionWallets(c *gin.Context) (map[transfer.Chain]string, bool) {
	session := auth.GetSession(c)
	if _, err := auth.IdentityOf(session); err != nil {
		handleServiceError(c, err)
		return nil, false
	}
	wallets := walletsOf(session)
	if len(wallets) == 0 {
		handleServiceError(c, auth.ErrNoWallet)
		return nil, false
	}
	return wallets, true
}

// GetBalances reads every connected wallet, serving recently cached values
func (h *WalletHandler) GetBalances(c *gin.Context) {
	wallets, ok := h.sessionWallets(c)
	if !ok {
		return
	}
	balances := h.common.balances.Balances(c.Request.Context(), wallets)
	sendSuccess(c, http.StatusOK, BalancesResponse{Object: "list", Data: balances})
}

// RefreshBalances rereads every connected wallet from the network
func (h *WalletHandler) RefreshBalances(c *gin.Context) {
	wallets, ok := h.sessionWallets(c)
	if !ok {
		return
	}
	balances := h.common.balances.Refresh(c.Request.Context(), wallets)
	sendSuccess(c, http.StatusOK, BalancesResponse{Object: "list", Data: balances})
}

// StreamBalances pushes fresh balances as server-sent events every ?interval= seconds until the
// client disconnects.
func (h *WalletHandler) StreamBalances(c *gin.Context) {
	wallets, ok := h.sessionWallets(c)
	if !ok {
		return
	}

	interval := defaultStreamInterval
	if raw := c.Query("interval"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			sendErrorCode(c, http.StatusBadRequest, "invalid_interval", "interval must be a positive number of seconds")
			return
		}
		interval = time.Duration(seconds) * time.Second
	}
	interval = min(max(interval, h.streamIntervalFloor), maxStreamInterval)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	ctx := c.Request.Context()
	err := h.common.balances.Watch(ctx, wallets, interval, func(balances []services.WalletBalance) error {
		c.SSEvent("balances", balances)
		c.Writer.Flush()
		return ctx.Err()
	})

	log := middleware.LogWithCorrelationID(ctx)
	if err != nil && !errors.Is(err, ctx.Err()) {
		log.Warn("Balance stream ended", zap.Error(err))
		return
	}
	log.Debug("Balance stream closed by client")
}

// GetWalletQR renders the session's address on :chain as a PNG QR code
func (h *WalletHandler) GetWalletQR(c *gin.Context) {
	chain, err := parseChain(c.Param("chain"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	_, address, err := auth.WalletOf(auth.GetSession(c), chain)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	size := defaultQRSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxQRSize {
			sendErrorCode(c, http.StatusBadRequest, "invalid_size", "size must be between 1 and 1024")
			return
		}
		size = parsed
	}

	png, err := qrcode.Encode(address, qrcode.Medium, size)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "failed to render qr code", err)
		return
	}
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, "image/png", png)
}
