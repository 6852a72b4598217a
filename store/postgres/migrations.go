package postgres

import (
	"context"

	"github.com/xraph/grove/migrate"
)

// Migrations is the grove migration group for the Tycoon store (PostgreSQL).
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
    record           JSONB NOT NULL DEFAULT '{}',
    next_earnings_at TIMESTAMPTZ,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
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
