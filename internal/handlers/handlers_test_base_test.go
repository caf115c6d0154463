package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/artvault/artvault-api/internal/auth"
	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/logger"
	"github.com/artvault/artvault-api/internal/mocks"
	"github.com/artvault/artvault-api/internal/services"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/artvault/artvault-api/internal/transfer/transfertest"
	"github.com/artvault/artvault-api/internal/wallet"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

const (
	testSender    = "addr-sender"
	testRecipient = "addr-recipient"
	testEmail     = "ada@example.com"
)

var testUserID = uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")

var (
	testIdentity = auth.Identity{Subject: "civic|ada", Email: testEmail, Name: "Ada"}
	// walletSession is connected on Solana only.
	walletSession   = auth.NewSession(testIdentity, map[transfer.Chain]string{transfer.ChainSolana: testSender})
	noWalletSession = auth.NewSession(testIdentity, nil)
)

type testEnv struct {
	queries  *mocks.MockQuerier
	network  *transfertest.Network
	recorder *transfertest.Recorder
	common   *CommonServices
}

// newTestEnv wires real services over a mocked Querier and an in-memory Solana network.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	queries := mocks.NewMockQuerier(ctrl)
	network := transfertest.NewNetwork()
	recorder := transfertest.NewRecorder(true)

	keyring := wallet.NewKeyring()
	keyring.Add(transfertest.NewWallet(testSender))

	flow := transfer.NewFlow(
		transfer.NewBuilder(network, decimal.RequireFromString("0.001")),
		transfer.NewConfirmationWaiter(network, transfer.WaiterConfig{
			Level:           transfer.LevelConfirmed,
			Timeout:         50 * time.Millisecond,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
		}),
		recorder,
		transfer.NewMemoryGuard(),
		transfer.FlowConfig{SubmitRetries: 1},
	)

	balances := services.NewBalanceService(transfer.NewBalanceReader(network), nil, time.Minute)
	transfers := services.NewTransferService(keyring, balances, flow)

	common := NewCommonServices(CommonServicesConfig{
		Transfers: transfers,
		Purchases: services.NewPurchaseService(queries, transfers),
		Artworks:  services.NewArtworkService(queries),
		Users:     services.NewUserService(queries),
		History:   services.NewHistoryService(queries),
		Receipts:  services.NewReceiptService(queries, "devnet", ""),
		Balances:  balances,
	})

	return &testEnv{queries: queries, network: network, recorder: recorder, common: common}
}

// expectUser lets every UpsertUser call return the test user.
func (e *testEnv) expectUser() {
	e.queries.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(db.User{ID: testUserID, Email: testEmail}, nil).AnyTimes()
}

// serve runs one request through a router that registers only h on route.
func serve(session auth.Session, method, route, path string, body interface{}, h gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if session != nil {
			auth.SetSession(c, session)
		}
		c.Next()
	})
	r.Handle(method, route, h)

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type listEnvelope[T any] struct {
	Object string `json:"object"`
	Data   []T    `json:"data"`
}

