package server

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/feastkeeper/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "secret"
	cfg.EndpointAddrGRPC = "127.0.0.1:0"
	cfg.LogLevel = "debug"
	return cfg
}

func TestNewApp_Memory(t *testing.T) {
	var buf bytes.Buffer
	app, err := newApp(context.Background(), testConfig(), &buf)
	require.NoError(t, err)
	assert.Nil(t, app.db)
	assert.NotNil(t, app.userService)
	assert.Contains(t, buf.String(), `"driver":"memory"`)
}

func TestNewApp_UnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.StoreDriver = "mongo"

	_, err := newApp(context.Background(), cfg, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNewApp_SQLiteRoundTrip(t *testing.T) {
	cfg := testConfig()
	cfg.StoreDriver = config.StoreSQLite
	cfg.DatabaseDSN = filepath.Join(t.TempDir(), "users.db")
	ctx := context.Background()

	app, err := newApp(ctx, cfg, &bytes.Buffer{})
	require.NoError(t, err)
	require.NotNil(t, app.db)

	_, err = app.userService.Register(ctx, "alice", "a@x.io", "pw", "")
	require.NoError(t, err)
	tok, err := app.userService.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	u, err := app.userService.Authenticate(ctx, tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserName)

	runCtx, cancel := context.WithCancel(ctx)
	cancel()
	require.NoError(t, app.Run(runCtx))
	assert.Error(t, app.db.Ping(), "db should be closed after Run")
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := newApp(context.Background(), testConfig(), &bytes.Buffer{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
}
