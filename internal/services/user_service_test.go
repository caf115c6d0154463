package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/artvault/artvault-api/internal/auth"
	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/helpers"
	"github.com/artvault/artvault-api/internal/mocks"
	"github.com/artvault/artvault-api/internal/services"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_SyncSession(t *testing.T) {
	ctx := context.Background()
	identity := auth.Identity{Subject: "civic|1", Email: "ada@example.com", Name: "Ada"}

	tests := []struct {
		name        string
		session     auth.Session
		setupMocks  func(q *mocks.MockQuerier)
		wantErr     error
		errorString string
	}{
		{
			name: "with wallets",
			session: auth.NewSession(identity, map[transfer.Chain]string{
				transfer.ChainSolana:   "SolWallet",
				transfer.ChainEthereum: "0xEthWallet",
			}),
			setupMocks: func(q *mocks.MockQuerier) {
				q.EXPECT().UpsertUser(ctx, db.UpsertUserParams{
					Email:            "ada@example.com",
					Name:             helpers.StringToNullableText("Ada"),
					AvatarUrl:        helpers.StringToNullableText(""),
					WalletAddress:    helpers.StringToNullableText("SolWallet"),
					EthWalletAddress: helpers.StringToNullableText("0xEthWallet"),
				}).Return(db.User{ID: uuid.New(), Email: "ada@example.com"}, nil)
			},
		},
		{
			name:    "without wallets keeps stored addresses",
			session: auth.NewSession(identity, nil),
			setupMocks: func(q *mocks.MockQuerier) {
				q.EXPECT().UpsertUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.UpsertUserParams) (db.User, error) {
						assert.False(t, arg.WalletAddress.Valid)
						assert.False(t, arg.EthWalletAddress.Valid)
						return db.User{ID: uuid.New(), Email: arg.Email}, nil
					})
			},
		},
		{
			name:       "unauthenticated",
			session:    auth.Unauthenticated{},
			setupMocks: func(q *mocks.MockQuerier) {},
			wantErr:    auth.ErrNotAuthenticated,
		},
		{
			name:    "database error",
			session: auth.NewSession(identity, nil),
			setupMocks: func(q *mocks.MockQuerier) {
				q.EXPECT().UpsertUser(ctx, gomock.Any()).Return(db.User{}, errors.New("deadlock"))
			},
			errorString: "failed to upsert user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := mocks.NewMockQuerier(ctrl)
			tt.setupMocks(q)

			user, err := services.NewUserService(q).SyncSession(ctx, tt.session)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errorString != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
			default:
				require.NoError(t, err)
				assert.Equal(t, "ada@example.com", user.Email)
			}
		})
	}
}

func TestUserService_Lookups(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	svc := services.NewUserService(q)

	q.EXPECT().GetUserByEmail(ctx, "ada@example.com").Return(db.User{Email: "ada@example.com"}, nil)
	user, err := svc.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	q.EXPECT().GetUserByEmail(ctx, "nobody@example.com").Return(db.User{}, pgx.ErrNoRows)
	_, err = svc.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	q.EXPECT().GetUserByWalletAddress(ctx, helpers.StringToNullableText("SolWallet")).Return(db.User{Email: "ada@example.com"}, nil)
	user, err = svc.GetUserByWallet(ctx, "SolWallet")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	q.EXPECT().GetUserByWalletAddress(ctx, gomock.Any()).Return(db.User{}, pgx.ErrNoRows)
	_, err = svc.GetUserByWallet(ctx, "Unknown")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}
