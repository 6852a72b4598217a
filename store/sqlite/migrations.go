package sqlite

import (
	"context"

	"github.com/xraph/grove/migrate"
)

// Migrations is the grove migration group for the Tycoon store (SQLite).
var Migrations = migrate.NewGroup("tycoon")

func init() {
	Migrations.MustRegister(
		&migrate.Migration{
			Name:    "create_tycoon_accounts",
			Version: "20240101000001",
			Up: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `
CREATE TABLE IF NOT EXISTS tycoon_accounts (
    owner            TEXT PRIMARY KEY,
    record           TEXT NOT NULL DEFAULT '{}',
    next_earnings_at TEXT,
    created_at       TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at       TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_tycoon_accounts_next_earnings ON tycoon_accounts (next_earnings_at) WHERE next_earnings_at IS NOT NULL;
CREATE INDEX IF NOT EXISTS idx_tycoon_accounts_created ON tycoon_accounts (created_at);
`)
				return err
			},
			Down: func(ctx context.Context, exec migrate.Executor) error {
				_, err := exec.Exec(ctx, `DROP TABLE IF EXISTS tycoon_accounts`)
				return err
			},
		},
	)
}
