package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/middleware"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var ErrInvalidToken = errors.New("invalid token")

// CivicWallet is an embedded wallet entry in a Civic ID token.
type CivicWallet struct {
	Address string `json:"address"`
}

// CivicClaims are the ID token claims issued by Civic Auth with web3 wallets enabled.
type CivicClaims struct {
	jwt.RegisteredClaims
	Email    string       `json:"email"`
	Name     string       `json:"name"`
	Picture  string       `json:"picture"`
	Solana   *CivicWallet `json:"solana,omitempty"`
	Ethereum *CivicWallet `json:"ethereum,omitempty"`
}

// Session converts verified claims to a session variant.
func (c *CivicClaims) Session() Session {
	wallets := map[transfer.Chain]string{}
	if c.Solana != nil {
		wallets[transfer.ChainSolana] = c.Solana.Address
	}
	if c.Ethereum != nil {
		wallets[transfer.ChainEthereum] = c.Ethereum.Address
	}
	return NewSession(Identity{
		Subject: c.Subject,
		Email:   c.Email,
		Name:    c.Name,
		Picture: c.Picture,
	}, wallets)
}

type Config struct {
	JWKSURL  string
	Issuer   string
	ClientID string
}

// AuthClient verifies Civic ID tokens against the provider's JWKS.
type AuthClient struct {
	config  Config
	keyfunc jwt.Keyfunc
}

func NewAuthClient(config Config) (*AuthClient, error) {
	if config.JWKSURL == "" {
		return nil, fmt.Errorf("CIVIC_JWKS_URL not set")
	}

	jwks, err := keyfunc.Get(config.JWKSURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: time.Minute,
		RefreshTimeout:   10 * time.Second,
		RefreshErrorHandler: func(err error) {
			logger.Log.Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS: %w", err)
	}

	logger.Log.Info("Civic JWKS initialized", zap.String("jwks_url", config.JWKSURL))
	return newAuthClient(config, jwks.Keyfunc), nil
}

func newAuthClient(config Config, kf jwt.Keyfunc) *AuthClient {
	return &AuthClient{config: config, keyfunc: kf}
}

// ParseToken verifies the signature, expiry, issuer and audience of a bearer token.
func (ac *AuthClient) ParseToken(tokenString string) (*CivicClaims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if ac.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(ac.config.Issuer))
	}
	if ac.config.ClientID != "" {
		opts = append(opts, jwt.WithAudience(ac.config.ClientID))
	}

	claims := &CivicClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, ac.keyfunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authenticate resolves the session for every request. A missing Authorization header yields
// Unauthenticated. A header with a bad token is rejected with 401.
func (ac *AuthClient) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			SetSession(c, Unauthenticated{})
			c.Next()
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be a bearer token"})
			return
		}

		claims, err := ac.ParseToken(tokenString)
		if err != nil {
			middleware.LogWithCorrelationID(c.Request.Context()).Info("Token validation failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken.Error()})
			return
		}

		SetSession(c, claims.Session())
		c.Set(middleware.SubjectKey, claims.Subject)
		c.Next()
	}
}

// RequireAuth rejects Unauthenticated sessions.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := IdentityOf(GetSession(c)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}
