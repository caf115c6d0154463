package handlers

import (
	"errors"
	"net/http"

	"github.com/artvault/artvault-api/internal/auth"
	"github.com/artvault/artvault-api/internal/constants"
	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/middleware"
	"github.com/artvault/artvault-api/internal/services"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommonServices holds the services shared by the handlers
type CommonServices struct {
	transfers *services.TransferService
	purchases *services.PurchaseService
	artworks  *services.ArtworkService
	users     *services.UserService
	history   *services.HistoryService
	receipts  *services.ReceiptService
	balances  *services.BalanceService
	prices    *services.PriceService
	mailer    *services.ReceiptMailer
}

// CommonServicesConfig contains all dependencies needed to create CommonServices.
// Prices and Mailer are optional.
type CommonServicesConfig struct {
	Transfers *services.TransferService
	Purchases *services.PurchaseService
	Artworks  *services.ArtworkService
	Users     *services.UserService
	History   *services.HistoryService
	Receipts  *services.ReceiptService
	Balances  *services.BalanceService
	Prices    *services.PriceService
	Mailer    *services.ReceiptMailer
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	return &CommonServices{
		transfers: config.Transfers,
		purchases: config.Purchases,
		artworks:  config.Artworks,
		users:     config.Users,
		history:   config.History,
		receipts:  config.Receipts,
		balances:  config.Balances,
		prices:    config.Prices,
		mailer:    config.Mailer,
	}
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	// Code is the machine readable failure reason, e.g. insufficient_balance.
	Code string `json:"code,omitempty"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// sendError logs the error with the request's correlation id and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	log := middleware.LogWithCorrelationID(c.Request.Context())
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Info(message, fields...)
	}
	c.JSON(statusCode, ErrorResponse{Error: message})
}

func sendErrorCode(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message, Code: code})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}

// handleServiceError maps service and database errors to HTTP status codes
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		sendErrorCode(c, http.StatusUnauthorized, "not_authenticated", constants.NotAuthenticated)
	case errors.Is(err, auth.ErrNoWallet), errors.Is(err, services.ErrWalletRequired):
		sendErrorCode(c, http.StatusBadRequest, "wallet_required", constants.WalletRequired)
	case errors.Is(err, services.ErrArtworkNotFound):
		sendErrorCode(c, http.StatusNotFound, "artwork_not_found", constants.ArtworkNotFound)
	case errors.Is(err, services.ErrUserNotFound):
		sendErrorCode(c, http.StatusNotFound, "user_not_found", constants.UserNotFound)
	case errors.Is(err, services.ErrRecordNotFound), db.IsNotFound(err):
		sendErrorCode(c, http.StatusNotFound, "record_not_found", constants.RecordNotFound)
	case errors.Is(err, services.ErrArtworkSold):
		sendErrorCode(c, http.StatusConflict, "artwork_sold", err.Error())
	case errors.Is(err, services.ErrOwnArtwork):
		sendErrorCode(c, http.StatusForbidden, "own_artwork", err.Error())
	case errors.Is(err, services.ErrInvalidPrice):
		sendErrorCode(c, http.StatusBadRequest, "invalid_price", err.Error())
	case errors.Is(err, services.ErrPriceUnavailable):
		sendErrorCode(c, http.StatusServiceUnavailable, "price_unavailable", err.Error())
	case errors.Is(err, services.ErrSigningUnavailable):
		sendErrorCode(c, http.StatusForbidden, "signing_unavailable", err.Error())
	case errors.Is(err, transfer.ErrUnsupportedChain):
		sendErrorCode(c, http.StatusBadRequest, "unsupported_chain", constants.InvalidChain)
	default:
		sendError(c, http.StatusInternalServerError, constants.InternalServerError, err)
	}
}

// transferStatus is the HTTP status reported for a failed transfer attempt.
func transferStatus(err error) int {
	switch {
	case errors.Is(err, transfer.ErrInvalidRecipient),
		errors.Is(err, transfer.ErrInvalidAmount),
		errors.Is(err, transfer.ErrUnsupportedChain):
		return http.StatusBadRequest
	case errors.Is(err, transfer.ErrInsufficientBalance),
		errors.Is(err, transfer.ErrOnChain):
		return http.StatusUnprocessableEntity
	case errors.Is(err, transfer.ErrUserRejected),
		errors.Is(err, transfer.ErrAttemptInFlight):
		return http.StatusConflict
	case errors.Is(err, transfer.ErrSubmissionFailed),
		errors.Is(err, transfer.ErrTransport):
		return http.StatusBadGateway
	case errors.Is(err, transfer.ErrConfirmationTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, transfer.ErrBalanceUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// walletsOf returns the session's connected wallets, nil when there are none.
func walletsOf(s auth.Session) map[transfer.Chain]string {
	if withWallet, ok := s.(auth.AuthenticatedWithWallet); ok {
		return withWallet.Wallets
	}
	return nil
}

// currentUser upserts and returns the user behind the request's session.
func (s *CommonServices) currentUser(c *gin.Context) (db.User, auth.Session, error) {
	session := auth.GetSession(c)
	user, err := s.users.SyncSession(c.Request.Context(), session)
	if err != nil {
		return db.User{}, session, err
	}
	return user, session, nil
}
