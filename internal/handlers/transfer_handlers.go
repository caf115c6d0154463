package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/artvault/artvault-api/internal/auth"
	"github.com/artvault/artvault-api/internal/constants"
	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/helpers"
	"github.com/artvault/artvault-api/internal/middleware"
	"github.com/artvault/artvault-api/internal/services"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransferHandler sends native currency between wallets and serves the transfer history
type TransferHandler struct {
	common *CommonServices
}

func NewTransferHandler(common *CommonServices) *TransferHandler {
	return &TransferHandler{common: common}
}

// CreateTransferRequest is the body of POST /transfers
type CreateTransferRequest struct {
	Chain     string `json:"chain" binding:"required"`
	Recipient string `json:"recipient" binding:"required"`
	// Amount is a decimal string in the chain's native unit, e.g. "0.25".
	Amount string `json:"amount" binding:"required"`
	Memo   string `json:"memo"`
	// RequestKey identifies a form submission. Resubmitting the same key while the first attempt
	// is running is refused.
	RequestKey string `json:"request_key"`
}

// TransferResponse is the outcome of one transfer attempt
type TransferResponse struct {
	Object            string                `json:"object"`
	AttemptID         string                `json:"attempt_id"`
	State             string                `json:"state"`
	Signature         string                `json:"signature,omitempty"`
	ShortSignature    string                `json:"short_signature,omitempty"`
	ConfirmationLevel string                `json:"confirmation_level,omitempty"`
	ExplorerURL       string                `json:"explorer_url,omitempty"`
	RecordID          string                `json:"record_id,omitempty"`
	AlreadyRecorded   bool                  `json:"already_recorded"`
	Warning           string                `json:"warning,omitempty"`
	WarningCode       string                `json:"warning_code,omitempty"`
	Submissions       int                   `json:"submissions"`
	Transitions       []transfer.Transition `json:"transitions"`
}

// TransferErrorResponse is returned when an attempt ends in Failed
type TransferErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	// Shortfall is set for insufficient_balance when the balance was readable.
	Shortfall    string            `json:"shortfall,omitempty"`
	BalanceKnown *bool             `json:"balance_known,omitempty"`
	FailedIn     string            `json:"failed_in,omitempty"`
	Attempt      *TransferResponse `json:"attempt,omitempty"`
}

// TransferRecordResponse is one row of the transfer history
type TransferRecordResponse struct {
	ID               string `json:"id"`
	Object           string `json:"object"`
	Signature        string `json:"signature"`
	ShortSignature   string `json:"short_signature"`
	Chain            string `json:"chain"`
	Kind             string `json:"kind"`
	Direction        string `json:"direction"`
	SenderEmail      string `json:"sender_email"`
	SenderAddress    string `json:"sender_address"`
	RecipientAddress string `json:"recipient_address"`
	Amount           string `json:"amount"`
	Symbol           string `json:"symbol"`
	ArtworkID        string `json:"artwork_id,omitempty"`
	Memo             string `json:"memo,omitempty"`
	ExplorerURL      string `json:"explorer_url"`
	CreatedAt        int64  `json:"created_at"`
}

// CreateTransfer sends Amount from the session wallet on Chain to Recipient and waits for confirmation
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidRequestBody, err)
		return
	}

	chain, err := parseChain(req.Chain)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		sendErrorCode(c, http.StatusBadRequest, transfer.ReasonCode(transfer.ErrInvalidAmount), constants.InvalidAmount)
		return
	}

	user, session, err := h.common.currentUser(c)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	_, sender, err := auth.WalletOf(session, chain)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	outcome, err := h.common.transfers.Send(c.Request.Context(), services.SendParams{
		Chain:         chain,
		SenderAddress: sender,
		Recipient:     req.Recipient,
		Amount:        amount,
		Memo:          req.Memo,
		RequestKey:    req.RequestKey,
		Kind:          transfer.KindTransfer,
		UserID:        user.ID,
		Email:         user.Email,
	})
	h.common.respondOutcome(c, chain, outcome, err)
}

// respondOutcome writes the result of a transfer attempt. A confirmed transfer whose record
// could not be written is still a success and carries a warning.
func (s *CommonServices) respondOutcome(c *gin.Context, chain transfer.Chain, outcome *transfer.Outcome, err error) {
	if outcome == nil {
		if errors.Is(err, transfer.ErrAttemptInFlight) {
			sendErrorCode(c, http.StatusConflict, transfer.ReasonCode(err), err.Error())
			return
		}
		handleServiceError(c, err)
		return
	}

	resp := s.toTransferResponse(chain, outcome)
	if err == nil {
		sendSuccess(c, http.StatusOK, resp)
		return
	}

	body := TransferErrorResponse{
		Error:   err.Error(),
		Code:    transfer.ReasonCode(err),
		Attempt: &resp,
	}
	var terr *transfer.Error
	if errors.As(err, &terr) {
		body.FailedIn = string(terr.State)
		if errors.Is(terr, transfer.ErrInsufficientBalance) {
			known := terr.BalanceKnown
			body.BalanceKnown = &known
			if known {
				body.Shortfall = terr.Shortfall.String()
			}
		}
	}

	status := transferStatus(err)
	middleware.LogWithCorrelationID(c.Request.Context()).Info("Transfer attempt failed",
		zap.String("attempt_id", outcome.AttemptID.String()),
		zap.String("code", body.Code),
		zap.Int("status", status),
	)
	c.JSON(status, body)
}

func (s *CommonServices) toTransferResponse(chain transfer.Chain, outcome *transfer.Outcome) TransferResponse {
	resp := TransferResponse{
		Object:          "transfer",
		AttemptID:       outcome.AttemptID.String(),
		State:           string(outcome.State),
		Signature:       outcome.Signature,
		AlreadyRecorded: outcome.AlreadyRecorded,
		Submissions:     outcome.Submissions,
		Transitions:     outcome.Transitions,
	}
	if outcome.Signature != "" {
		resp.ShortSignature = services.ShortSignature(outcome.Signature)
		resp.ExplorerURL = s.receipts.ExplorerURL(chain, outcome.Signature)
	}
	if outcome.Level != transfer.LevelPending {
		resp.ConfirmationLevel = outcome.Level.String()
	}
	if outcome.RecordID != uuid.Nil {
		resp.RecordID = outcome.RecordID.String()
	}
	if outcome.Warning != nil {
		resp.Warning = outcome.Warning.Error()
		resp.WarningCode = transfer.ReasonCode(outcome.Warning)
	}
	return resp
}

// ListTransfers returns the caller's sent and received transfers, newest first
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	params, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	session := auth.GetSession(c)
	identity, err := auth.IdentityOf(session)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	wallets := walletsOf(session)

	records, err := h.common.history.List(c.Request.Context(), identity.Email, wallets, params.Limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	resp := make([]TransferRecordResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, h.common.toTransferRecordResponse(record, identity.Email))
	}
	sendList(c, resp)
}

// GetTransfer returns the record for a signature when the caller sent or received it
func (h *TransferHandler) GetTransfer(c *gin.Context) {
	session := auth.GetSession(c)
	identity, err := auth.IdentityOf(session)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	record, err := h.common.history.GetBySignature(c.Request.Context(), c.Param("signature"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if !canView(record.SenderEmail, record.RecipientAddress, identity.Email, walletsOf(session)) {
		handleServiceError(c, services.ErrRecordNotFound)
		return
	}

	sendSuccess(c, http.StatusOK, h.common.toTransferRecordResponse(record, identity.Email))
}

// canView reports whether the caller is the sender or the recipient of a record.
func canView(senderEmail, recipientAddress, email string, wallets map[transfer.Chain]string) bool {
	if senderEmail == email {
		return true
	}
	for _, address := range wallets {
		if address == recipientAddress {
			return true
		}
	}
	return false
}

func (s *CommonServices) toTransferRecordResponse(record db.TransferRecord, email string) TransferRecordResponse {
	chain := transfer.Chain(record.Chain)
	direction := "received"
	if record.SenderEmail == email {
		direction = "sent"
	}
	resp := TransferRecordResponse{
		ID:               record.ID.String(),
		Object:           "transfer_record",
		Signature:        record.Signature,
		ShortSignature:   services.ShortSignature(record.Signature),
		Chain:            record.Chain,
		Kind:             record.Kind,
		Direction:        direction,
		SenderEmail:      record.SenderEmail,
		SenderAddress:    record.SenderAddress,
		RecipientAddress: record.RecipientAddress,
		Amount:           helpers.NumericToDecimal(record.Amount).String(),
		Symbol:           chain.Symbol(),
		Memo:             record.Memo.String,
		ExplorerURL:      s.receipts.ExplorerURL(chain, record.Signature),
		CreatedAt:        unixOrZero(record.CreatedAt.Time),
	}
	if record.ArtworkID.Valid {
		resp.ArtworkID = helpers.PgtypeToUUID(record.ArtworkID).String()
	}
	return resp
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
