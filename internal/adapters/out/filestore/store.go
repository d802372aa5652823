package filestore

import (
	"context"
	"log/slog"
	"sync"

	"station/internal/adapters/out/filestore/ledgerrepo"
	"station/internal/adapters/out/filestore/parcelrepo"
	"station/internal/adapters/out/filestore/table"
	"station/internal/adapters/out/filestore/userrepo"
	"station/internal/core/domain/model/finance"
	"station/internal/core/domain/model/parcel"
	"station/internal/core/domain/model/user"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// Blob keys.
const (
	UsersKey    = "users.csv"
	PackagesKey = "packages.csv"
	FinancesKey = "finances.csv"
	MaxIDsKey   = "max_ids.csv"
)

// Store owns the three record collections. The mutex is the single mutual
// exclusion boundary for mutations and flushes.
type Store struct {
	mu       sync.Mutex
	bucket   *blob.Bucket
	logger   *slog.Logger
	users    *userrepo.Table
	packages *parcelrepo.Table
	ledger   *ledgerrepo.Table
}

// NewStore returns an empty store backed by bucket. Call Load to read the
// persisted state.
func NewStore(bucket *blob.Bucket, logger *slog.Logger) *Store {
	return &Store{
		bucket:   bucket,
		logger:   logger.With("component", "filestore"),
		users:    userrepo.NewTable(),
		packages: parcelrepo.NewTable(),
		ledger:   ledgerrepo.NewTable(),
	}
}

// Load replaces the in-memory collections with the persisted ones. Nothing
// changes if any document fails to load.
func (s *Store) Load(ctx context.Context) error {
	users, err := load(ctx, s.bucket, UsersKey, userrepo.Schema)
	if err != nil {
		return err
	}
	packages, err := load(ctx, s.bucket, PackagesKey, parcelrepo.Schema)
	if err != nil {
		return err
	}
	ledger, err := load(ctx, s.bucket, FinancesKey, ledgerrepo.Schema)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users, s.packages, s.ledger = users, packages, ledger
	s.logger.Info("records loaded",
		"users", users.Len(), "packages", packages.Len(), "finance_entries", ledger.Len())
	return nil
}

// Flush writes every collection to the bucket.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := save(ctx, s.bucket, UsersKey, userrepo.Schema, s.users); err != nil {
		return err
	}
	if err := save(ctx, s.bucket, PackagesKey, parcelrepo.Schema, s.packages); err != nil {
		return err
	}
	if err := save(ctx, s.bucket, FinancesKey, ledgerrepo.Schema, s.ledger); err != nil {
		return err
	}

	s.logger.Debug("records flushed",
		"users", s.users.Len(), "packages", s.packages.Len(), "finance_entries", s.ledger.Len())
	return nil
}

// MaxIDs returns the highest stored user and package IDs, 0 when empty.
func (s *Store) MaxIDs() (maxUser, maxPackage int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users.All() {
		maxUser = max(maxUser, u.ID)
	}
	for _, p := range s.packages.All() {
		maxPackage = max(maxPackage, p.ID)
	}
	return maxUser, maxPackage
}

// Users returns a copy of every user, newest first.
func (s *Store) Users(ctx context.Context) ([]*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return userrepo.NewRepository(s.users, nil).GetAll(ctx)
}

// Packages returns a copy of every package, newest first.
func (s *Store) Packages(ctx context.Context) ([]*parcel.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return parcelrepo.NewRepository(s.packages, nil).GetAll(ctx)
}

// FinanceEntries returns a copy of the ledger, newest first.
func (s *Store) FinanceEntries(ctx context.Context) ([]*finance.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return ledgerrepo.NewRepository(s.ledger, nil).GetAll(ctx)
}

func load[K comparable, R table.Record[K]](
	ctx context.Context,
	bucket *blob.Bucket,
	key string,
	schema table.Schema[K, R],
) (*table.Table[K, R], error) {
	data, err := bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return table.New[K, R](schema.Name), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}

	t, err := schema.Unmarshal(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "load %s", key)
	}
	return t, nil
}

func save[K comparable, R table.Record[K]](
	ctx context.Context,
	bucket *blob.Bucket,
	key string,
	schema table.Schema[K, R],
	t *table.Table[K, R],
) error {
	data, err := schema.Marshal(t)
	if err != nil {
		return err
	}

	return errors.Wrapf(
		bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: "text/csv"}),
		"write %s", key,
	)
}
