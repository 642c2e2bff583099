package pg

import (
	"context"
	"log"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/suraksha-dev/suraksha/shared/config"
)

var backend *Backend

func TestMain(m *testing.M) {
	if os.Getenv("SKIP_INTEGRATION") != "" {
		os.Exit(0)
	}

	ctx := context.Background()
	var container *postgres.PostgresContainer
	backend, container = mustSetup(ctx)
	defer teardown(ctx, backend, container)

	exitCode := m.Run()
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Backend, *postgres.PostgresContainer) {
	dbName := "suraksha"
	dbUser := "user"
	dbPassword := "password"
	container, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			// The container restarts itself after first startup, so
			// wait for the readiness log twice.
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}
	containerPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to obtain container port: %s", err)
	}
	port, err := strconv.Atoi(containerPort.Port())
	if err != nil {
		log.Fatalf("failed to obtain int container port: %s", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to obtain container host: %s", err)
	}

	cfg := &config.Config{Private: config.Private{Pg: config.Pg{
		Host:     host,
		Port:     port,
		User:     dbUser,
		Password: dbPassword,
		Dbname:   dbName,
	}}}
	b, err := New(cfg)
	if err != nil {
		log.Fatalf("failed to create backend: %s", err)
	}
	return b, container
}

func teardown(ctx context.Context, b *Backend, container *postgres.PostgresContainer) {
	if b != nil {
		b.Cleanup()
	}
	if container != nil {
		if err := container.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

func TestLoadMissingSlot(t *testing.T) {
	_, ok, err := backend.Load("integration-missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	key := "integration-roundtrip"
	payload := []byte(`{"forums":[]}`)

	require.NoError(t, backend.Save(key, payload))

	got, ok, err := backend.Load(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestSaveOverwrites(t *testing.T) {
	key := "integration-overwrite"

	require.NoError(t, backend.Save(key, []byte("old")))
	require.NoError(t, backend.Save(key, []byte("new")))

	got, ok, err := backend.Load(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestDelete(t *testing.T) {
	key := "integration-delete"

	require.NoError(t, backend.Save(key, []byte("data")))
	require.NoError(t, backend.Delete(key))

	_, ok, err := backend.Load(key)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing slot is not an error.
	assert.NoError(t, backend.Delete(key))
}
