// Package pg stores slots in a postgres table, for deployments where
// the service does not own its filesystem.
package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/suraksha-dev/suraksha/internal/storage"
	"github.com/suraksha-dev/suraksha/shared/config"
	"github.com/suraksha-dev/suraksha/shared/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS slots (
    key  TEXT PRIMARY KEY,
    data BYTEA NOT NULL
)`

type Backend struct {
	db *sql.DB
}

var _ storage.Backend = (*Backend)(nil)

func New(cfg *config.Config) (*Backend, error) {
	logger.Log.Info("connecting to postgres")
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	logger.Log.Info("connected to postgres")
	return &Backend{db: db}, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (b *Backend) Cleanup() error {
	return b.db.Close()
}

func (b *Backend) Load(key string) ([]byte, bool, error) {
	var data []byte
	err := b.db.QueryRow(`SELECT data FROM slots WHERE key = $1`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot %s: %w", key, err)
	}
	return data, true, nil
}

func (b *Backend) Save(key string, data []byte) error {
	_, err := b.db.Exec(`
        INSERT INTO slots (key, data) VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data`, key, data)
	if err != nil {
		return fmt.Errorf("save slot %s: %w", key, err)
	}
	return nil
}

func (b *Backend) Delete(key string) error {
	_, err := b.db.Exec(`DELETE FROM slots WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete slot %s: %w", key, err)
	}
	return nil
}
