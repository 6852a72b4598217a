package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/xraph/grove"
	"github.com/xraph/grove/drivers/mongodriver"

	tycoon "github.com/xraph/tycoon"
	"github.com/xraph/tycoon/account"
	tycoonstore "github.com/xraph/tycoon/store"
)

// colAccounts is the collection for account records.
const colAccounts = "tycoon_accounts"

// compile-time interface check
var _ tycoonstore.Store = (*Store)(nil)

// Store implements store.Store using MongoDB via Grove ORM.
type Store struct {
	db  *grove.DB
	mdb *mongodriver.MongoDB
}

// New creates a new MongoDB store backed by Grove ORM.
func New(db *grove.DB) *Store {
	return &Store{
		db:  db,
		mdb: mongodriver.Unwrap(db),
	}
}

// DB returns the underlying grove database for direct access.
func (s *Store) DB() *grove.DB { return s.db }

// Migrate creates indexes for the account collection.
func (s *Store) Migrate(ctx context.Context) error {
	indexes := migrationIndexes()

	for col, models := range indexes {
		if len(models) == 0 {
			continue
		}
		_, err := s.mdb.Collection(col).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("tycoon/mongo: migrate %s indexes: %w", col, err)
		}
	}
	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) CreateAccount(ctx context.Context, a *account.Account) error {
	m, err := toAccountModel(a)
	if err != nil {
		return err
	}
	if _, err := s.mdb.NewInsert(m).Exec(ctx); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return tycoon.ErrAccountExists
		}
		return fmt.Errorf("tycoon/mongo: create account: %w", err)
	}
	return nil
}

func (s *Store) GetAccount(ctx context.Context, owner string) (*account.Account, error) {
	var m accountModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": owner}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, tycoon.ErrAccountNotFound
		}
		return nil, fmt.Errorf("tycoon/mongo: get account: %w", err)
	}
	return fromAccountModel(&m)
}

func (s *Store) UpdateAccount(ctx context.Context, a *account.Account) error {
	m, err := toAccountModel(a)
	if err != nil {
		return err
	}
	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.Owner}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("tycoon/mongo: update account: %w", err)
	}
	if res.MatchedCount() == 0 {
		return tycoon.ErrAccountNotFound
	}
	return nil
}

func (s *Store) ListAccounts(ctx context.Context, opts tycoonstore.ListOpts) ([]*account.Account, error) {
	var models []accountModel
	q := s.mdb.NewFind(&models).
		Filter(bson.M{}).
		Sort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	if opts.Limit > 0 {
		q = q.Limit(int64(opts.Limit))
	}
	if opts.Offset > 0 {
		q = q.Skip(int64(opts.Offset))
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("tycoon/mongo: list accounts: %w", err)
	}

	result := make([]*account.Account, len(models))
	for i := range models {
		a, err := fromAccountModel(&models[i])
		if err != nil {
			return nil, err
		}
		result[i] = a
	}
	return result, nil
}

func (s *Store) ListDueAccounts(ctx context.Context, now time.Time, limit int) ([]string, error) {
	var models []accountModel
	q := s.mdb.NewFind(&models).
		Filter(bson.M{"next_earnings_at": bson.M{"$ne": nil, "$lte": now}}).
		Sort(bson.D{{Key: "next_earnings_at", Value: 1}})
	if limit > 0 {
		q = q.Limit(int64(limit))
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("tycoon/mongo: list due accounts: %w", err)
	}

	owners := make([]string, len(models))
	for i := range models {
		owners[i] = models[i].Owner
	}
	return owners, nil
}

// isNoDocuments checks for the mongo no-documents sentinel.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// migrationIndexes returns the index definitions for the account collection.
func migrationIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		colAccounts: {
			{Keys: bson.D{{Key: "next_earnings_at", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: 1}}},
		},
	}
}
