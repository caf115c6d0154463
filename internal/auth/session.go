package auth

import (
	"errors"

	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/gin-gonic/gin"
)

var (
	ErrNotAuthenticated = errors.New("authentication required")
	ErrNoWallet         = errors.New("no wallet connected")
)

const sessionKey = "session"

// Identity is the verified user behind a session.
type Identity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

// Session is one of Unauthenticated, AuthenticatedNoWallet or AuthenticatedWithWallet.
type Session interface {
	session()
}

type Unauthenticated struct{}

type AuthenticatedNoWallet struct {
	Identity Identity
}

// AuthenticatedWithWallet holds at least one wallet address, keyed by chain.
type AuthenticatedWithWallet struct {
	Identity Identity
	Wallets  map[transfer.Chain]string
}

func (Unauthenticated) session()         {}
func (AuthenticatedNoWallet) session()   {}
func (AuthenticatedWithWallet) session() {}

// NewSession picks the variant from identity and the non-empty wallet addresses.
func NewSession(identity Identity, wallets map[transfer.Chain]string) Session {
	connected := make(map[transfer.Chain]string, len(wallets))
	for chain, address := range wallets {
		if address != "" {
			connected[chain] = address
		}
	}
	if len(connected) == 0 {
		return AuthenticatedNoWallet{Identity: identity}
	}
	return AuthenticatedWithWallet{Identity: identity, Wallets: connected}
}

// IdentityOf returns the identity of an authenticated session.
func IdentityOf(s Session) (Identity, error) {
	switch s := s.(type) {
	case AuthenticatedNoWallet:
		return s.Identity, nil
	case AuthenticatedWithWallet:
		return s.Identity, nil
	default:
		return Identity{}, ErrNotAuthenticated
	}
}

// WalletOf returns the session's address on chain.
func WalletOf(s Session, chain transfer.Chain) (Identity, string, error) {
	switch s := s.(type) {
	case AuthenticatedWithWallet:
		if address, ok := s.Wallets[chain]; ok {
			return s.Identity, address, nil
		}
		return s.Identity, "", ErrNoWallet
	case AuthenticatedNoWallet:
		return s.Identity, "", ErrNoWallet
	default:
		return Identity{}, "", ErrNotAuthenticated
	}
}

// SetSession stores s on the gin context.
func SetSession(c *gin.Context, s Session) {
	c.Set(sessionKey, s)
}

// GetSession returns the request's session, Unauthenticated when none was set.
func GetSession(c *gin.Context) Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(Session); ok {
			return s
		}
	}
	return Unauthenticated{}
}
