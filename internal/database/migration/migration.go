package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// gooseLogger routes goose's progress lines through zap.
type gooseLogger struct {
	*zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.Infof(strings.TrimSuffix(format, "\n"), v...)
}

// Up applies the embedded SQL migrations with goose. A nil db is a no-op,
// which lets the memory and redis store drivers skip migration entirely.
func Up(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	if db == nil {
		return nil
	}
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	start := time.Now()
	log.Info("db migration starting")

	goose.SetBaseFS(migrationFiles)
	goose.SetLogger(gooseLogger{log.Sugar()})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		log.Error("db migration failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return fmt.Errorf("migrate: %w", err)
	}

	log.Info("db migration finished", zap.Duration("duration", time.Since(start)))
	return nil
}
