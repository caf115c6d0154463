package handlers

import (
	"sort"

	"github.com/artvault/artvault-api/internal/services"
	"github.com/gin-gonic/gin"
)

type PriceHandler struct {
	common *CommonServices
}

func NewPriceHandler(common *CommonServices) *PriceHandler {
	return &PriceHandler{common: common}
}

// GetPrices returns display-only USD prices for SOL and ETH
func (h *PriceHandler) GetPrices(c *gin.Context) {
	if h.common.prices == nil {
		handleServiceError(c, services.ErrPriceUnavailable)
		return
	}

	quotes, err := h.common.prices.Prices(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	data := make([]services.PriceQuote, 0, len(quotes))
	for _, q := range quotes {
		data = append(data, q)
	}
	sort.Slice(data, func(i, j int) bool { return data[i].Symbol > data[j].Symbol })
	sendList(c, data)
}

