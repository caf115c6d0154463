package handlers

import (
	"fmt"
	"net/http"

	"github.com/artvault/artvault-api/internal/auth"
	"github.com/artvault/artvault-api/internal/constants"
	"github.com/artvault/artvault-api/internal/services"
	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	common *CommonServices
}

func NewReceiptHandler(common *CommonServices) *ReceiptHandler {
	return &ReceiptHandler{common: common}
}

// EmailReceiptRequest overrides the destination address. The session email is used otherwise.
type EmailReceiptRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

func (h *ReceiptHandler) loadReceipt(c *gin.Context) (services.Receipt, auth.Identity, bool) {
	session := auth.GetSession(c)
	identity, err := auth.IdentityOf(session)
	if err != nil {
		handleServiceError(c, err)
		return services.Receipt{}, auth.Identity{}, false
	}

	receipt, record, err := h.common.receipts.ForSignature(c.Request.Context(), c.Param("signature"))
	if err != nil {
		handleServiceError(c, err)
		return services.Receipt{}, auth.Identity{}, false
	}
	if !canView(record.SenderEmail, record.RecipientAddress, identity.Email, walletsOf(session)) {
		handleServiceError(c, services.ErrRecordNotFound)
		return services.Receipt{}, auth.Identity{}, false
	}
	return receipt, identity, true
}

// GetReceipt downloads the plain text receipt, or returns it as JSON with ?format=json
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	receipt, _, ok := h.loadReceipt(c)
	if !ok {
		return
	}

	if c.Query("format") == "json" {
		sendSuccess(c, http.StatusOK, receipt)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.ReceiptFilename(receipt.Signature)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(receipt.Text()))
}

// EmailReceipt sends a copy of the receipt through the configured mail provider
func (h *ReceiptHandler) EmailReceipt(c *gin.Context) {
	if h.common.mailer == nil {
		sendErrorCode(c, http.StatusServiceUnavailable, "email_unavailable", "email receipts are not configured")
		return
	}

	var req EmailReceiptRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, constants.InvalidRequestBody, err)
			return
		}
	}

	receipt, identity, ok := h.loadReceipt(c)
	if !ok {
		return
	}
	to := req.Email
	if to == "" {
		to = identity.Email
	}

	if err := h.common.mailer.Send(c.Request.Context(), receipt, to); err != nil {
		sendError(c, http.StatusBadGateway, "failed to send receipt email", err)
		return
	}
	sendSuccess(c, http.StatusAccepted, SuccessResponse{Message: "receipt sent to " + to})
}
