package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/burakdemirtas/credit-purchase-system/internal/app"
	"github.com/burakdemirtas/credit-purchase-system/internal/mailer"
	"github.com/burakdemirtas/credit-purchase-system/internal/payment"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App             *app.Application
	DB              *pgxpool.Pool
	RedisClient     *redis.Client
	SessionManager  *scs.SessionManager
	Mailer          *mailer.MockMailer
	PaymentProvider *payment.MockPaymentProvider
	Cleanup         func()
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})

	sessionManager := scs.New()
	sessionManager.Store = goredisstore.New(redisClient)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	mockMailer := mailer.NewMockMailer()
	mockProvider := payment.NewMockPaymentProvider()

	application, cleanup, err := app.New(
		cfg,
		logger,
		app.WithPaymentProvider(mockProvider),
		app.WithMailer(mockMailer),
		app.WithSessionManager(sessionManager),
	)
	if err != nil {
		redisClient.Close()
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		cleanup()
		redisClient.Close()
		return nil, err
	}

	return &TestApp{
		App:             application,
		DB:              db,
		RedisClient:     redisClient,
		SessionManager:  sessionManager,
		Mailer:          mockMailer,
		PaymentProvider: mockProvider,
		Cleanup: func() {
			db.Close()
			cleanup()
			redisClient.Close()
		},
	}, nil
}

// authenticatedUserCookies commits a session holding the test user id and
// returns the cookie that binds requests to it.
func (app *TestApp) authenticatedUserCookies(t testing.TB) []http.Cookie {
	ctx, err := app.SessionManager.Load(context.Background(), "")
	require.NoError(t, err)

	app.SessionManager.Put(ctx, "userID", TestUserId)

	token, _, err := app.SessionManager.Commit(ctx)
	require.NoError(t, err)

	return []http.Cookie{{Name: "session_id", Value: token}}
}
