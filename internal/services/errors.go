package services

import "errors"

var (
	ErrArtworkNotFound    = errors.New("artwork not found")
	ErrArtworkSold        = errors.New("artwork already sold")
	ErrOwnArtwork         = errors.New("cannot purchase your own artwork")
	ErrInvalidPrice       = errors.New("price must be greater than zero")
	ErrWalletRequired     = errors.New("a connected wallet is required")
	ErrSigningUnavailable = errors.New("no signer available for wallet")
	ErrUserNotFound       = errors.New("user not found")
	ErrRecordNotFound     = errors.New("transfer record not found")
	ErrPriceUnavailable   = errors.New("price unavailable")
)
