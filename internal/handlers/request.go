package handlers

import (
	"strings"

	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid %s", name)
	}
	return id, nil
}

func parseChain(value string) (transfer.Chain, error) {
	chain, ok := transfer.ParseChain(value)
	if !ok {
		return "", errors.Wrapf(transfer.ErrUnsupportedChain, "chain %q", value)
	}
	return chain, nil
}

// parseAmount accepts plain decimal notation only.
func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to parse amount")
	}
	return amount, nil
}
