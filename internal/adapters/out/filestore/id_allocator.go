package filestore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"station/internal/adapters/out/filestore/table"
	"station/internal/pkg/errs"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
)

const (
	userCounter    = "user"
	packageCounter = "package"
)

// CounterDTO is one row of max_ids.csv: the next ID a counter will issue.
type CounterDTO struct {
	Name string
	Next int
}

func (d CounterDTO) Key() string {
	return d.Name
}

func (d CounterDTO) Fields() []string {
	return []string{d.Name, table.FormatInt(d.Next)}
}

var countersSchema = table.Schema[string, CounterDTO]{
	Name:    "max_ids",
	Version: 1,
	Columns: []string{"counter", "next"},
	Decode: func(fields []string) (CounterDTO, error) {
		next, err := table.ParseInt(fields[1])
		if err != nil {
			return CounterDTO{}, err
		}
		if next < 1 {
			return CounterDTO{}, errs.NewValueIsInvalidErrorWithCause(fields[0]+" counter", fmt.Errorf("%d is not positive", next))
		}
		return CounterDTO{Name: fields[0], Next: next}, nil
	},
}

// IDAllocator implements ports.IDAllocator with two counters persisted in
// max_ids.csv. The counters are loaded on first use; every issued ID is
// written back before it is returned, so a restart never reissues one.
type IDAllocator struct {
	mu           sync.Mutex
	bucket       *blob.Bucket
	logger       *slog.Logger
	userStart    int
	packageStart int
	loaded       bool
	nextUser     int
	nextPackage  int
}

// NewIDAllocator uses userStart and packageStart when no counters were
// persisted yet.
func NewIDAllocator(bucket *blob.Bucket, userStart, packageStart int, logger *slog.Logger) (*IDAllocator, error) {
	if userStart < 1 || packageStart < 1 {
		return nil, errs.NewValueIsOutOfRangeError("id start", min(userStart, packageStart), 1, "unbounded")
	}

	return &IDAllocator{
		bucket:       bucket,
		logger:       logger.With("component", "id_allocator"),
		userStart:    userStart,
		packageStart: packageStart,
	}, nil
}

func (a *IDAllocator) NextUserID(ctx context.Context) (int, error) {
	return a.next(ctx, userCounter)
}

func (a *IDAllocator) NextPackageID(ctx context.Context) (int, error) {
	return a.next(ctx, packageCounter)
}

// EnsureAbove raises the counters past the highest IDs found in the store,
// which covers a counters file lost or older than the records.
func (a *IDAllocator) EnsureAbove(ctx context.Context, maxUser, maxPackage int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.ensureLoaded(ctx); err != nil {
		return err
	}
	if a.nextUser > maxUser && a.nextPackage > maxPackage {
		return nil
	}

	prevUser, prevPackage := a.nextUser, a.nextPackage
	a.nextUser = max(a.nextUser, maxUser+1)
	a.nextPackage = max(a.nextPackage, maxPackage+1)
	if err := a.persist(ctx); err != nil {
		a.nextUser, a.nextPackage = prevUser, prevPackage
		return err
	}

	a.logger.Warn("counters raised above stored records", "next_user", a.nextUser, "next_package", a.nextPackage)
	return nil
}

func (a *IDAllocator) next(ctx context.Context, counter string) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.ensureLoaded(ctx); err != nil {
		return 0, err
	}

	slot := &a.nextUser
	if counter == packageCounter {
		slot = &a.nextPackage
	}

	id := *slot
	*slot++
	if err := a.persist(ctx); err != nil {
		*slot--
		return 0, err
	}
	return id, nil
}

func (a *IDAllocator) ensureLoaded(ctx context.Context) error {
	if a.loaded {
		return nil
	}

	counters, err := load(ctx, a.bucket, MaxIDsKey, countersSchema)
	if err != nil {
		return err
	}

	a.nextUser, a.nextPackage = a.userStart, a.packageStart
	if c, ok := counters.Get(userCounter); ok {
		a.nextUser = c.Next
	}
	if c, ok := counters.Get(packageCounter); ok {
		a.nextPackage = c.Next
	}
	a.loaded = true
	return nil
}

func (a *IDAllocator) persist(ctx context.Context) error {
	counters := table.New[string, CounterDTO](countersSchema.Name)
	for _, c := range []CounterDTO{
		{Name: packageCounter, Next: a.nextPackage},
		{Name: userCounter, Next: a.nextUser},
	} {
		if err := counters.Insert(c); err != nil {
			return errors.WithStack(err)
		}
	}

	return save(ctx, a.bucket, MaxIDsKey, countersSchema, counters)
}
