package services

import (
	"context"
	"fmt"

	"github.com/artvault/artvault-api/internal/auth"
	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/helpers"
	"github.com/artvault/artvault-api/internal/transfer"
)

type UserService struct {
	queries db.Querier
}

func NewUserService(queries db.Querier) *UserService {
	return &UserService{queries: queries}
}

// SyncSession upserts the user behind an authenticated session. Wallet addresses present in the
// session overwrite the stored ones; absent ones are kept.
func (s *UserService) SyncSession(ctx context.Context, session auth.Session) (db.User, error) {
	identity, err := auth.IdentityOf(session)
	if err != nil {
		return db.User{}, err
	}

	var wallets map[transfer.Chain]string
	if withWallet, ok := session.(auth.AuthenticatedWithWallet); ok {
		wallets = withWallet.Wallets
	}

	user, err := s.queries.UpsertUser(ctx, db.UpsertUserParams{
		Email:            identity.Email,
		Name:             helpers.StringToNullableText(identity.Name),
		AvatarUrl:        helpers.StringToNullableText(identity.Picture),
		WalletAddress:    helpers.StringToNullableText(wallets[transfer.ChainSolana]),
		EthWalletAddress: helpers.StringToNullableText(wallets[transfer.ChainEthereum]),
	})
	if err != nil {
		return db.User{}, fmt.Errorf("failed to upsert user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (db.User, error) {
	user, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if db.IsNotFound(err) {
			return db.User{}, ErrUserNotFound
		}
		return db.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByWallet matches either the Solana or the Ethereum address.
func (s *UserService) GetUserByWallet(ctx context.Context, address string) (db.User, error) {
	user, err := s.queries.GetUserByWalletAddress(ctx, helpers.StringToNullableText(address))
	if err != nil {
		if db.IsNotFound(err) {
			return db.User{}, ErrUserNotFound
		}
		return db.User{}, fmt.Errorf("failed to get user by wallet: %w", err)
	}
	return user, nil
}
