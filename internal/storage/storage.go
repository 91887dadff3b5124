package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/bankbuddy/internal/config"
)

// Storage owns the database handle. Reads go through Reader; writes go
// through a per-call Writer wrapping one SQL transaction.
type Storage struct {
	DB     *sql.DB
	bdb    bob.DB
	Reader *Reader
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logrus.WithError(err).Fatal("Storage.Open")
	}

	bdb := bob.NewDB(db)
	return &Storage{
		DB:     db,
		bdb:    bdb,
		Reader: NewReader(bdb),
	}
}

// Write begins a transaction and returns a Writer bound to it. The caller
// must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	w := NewWriter(tx)
	return &w, nil
}
