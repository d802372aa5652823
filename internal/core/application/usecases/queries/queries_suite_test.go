package queries_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"station/internal/adapters/out/filestore"
	"station/internal/core/domain/model/finance"
	"station/internal/core/domain/model/parcel"
	"station/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const day = 24 * time.Hour

var now = time.Date(2025, time.April, 20, 10, 0, 0, 0, time.UTC)

func clock() time.Time {
	return now
}

// RecordsSuite runs every query against a filestore seeded with:
//
//	users    1000 alice Gold, 1001 bob New, 1002 alice Silver
//	packages 1 Large InStock (2h ago), 2 Large InStock (3 days ago),
//	         3 Small PickedUp (10 days ago), 4 Tiny Exception (40 days ago),
//	         5 Medium InStock (exactly one day ago)
//	ledger   handling 7.231 (March), compensation 25 (April 1),
//	         delivery 5 (2024-12-31 23:00 UTC), handling 0.105 (April 2)
type RecordsSuite struct {
	suite.Suite
	bucket *blob.Bucket
	store  *filestore.Store
}

func TestRecordsSuite(t *testing.T) {
	suite.Run(t, new(RecordsSuite))
}

func (s *RecordsSuite) SetupTest() {
	s.bucket = memblob.OpenBucket(nil)
	s.store = filestore.NewStore(s.bucket, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.seed()
}

func (s *RecordsSuite) TearDownTest() {
	s.Require().NoError(s.bucket.Close())
}

func (s *RecordsSuite) seed() {
	ctx := s.T().Context()

	uow := filestore.NewUnitOfWorkFactory(s.store).Create()
	s.Require().NoError(uow.Begin(ctx))

	for _, u := range []*user.User{
		s.user(1000, "alice", "555-0100", user.TierGold, "6000", 5*day, 10),
		s.user(1001, "bob", "555-0101", user.TierNew, "100", 9*day, 1),
		s.user(1002, "alice", "555-0102", user.TierSilver, "1500.555", 20*day, 4),
	} {
		s.Require().NoError(uow.UserRepository().Add(ctx, u))
	}

	for _, p := range []*parcel.Package{
		s.pkg(1, 1000, parcel.Large, now.Add(-2*time.Hour), parcel.InStock),
		s.pkg(2, 1000, parcel.Large, now.Add(-3*day), parcel.InStock),
		s.pkg(3, 1001, parcel.Small, now.Add(-10*day), parcel.PickedUp),
		s.pkg(4, 1001, parcel.Tiny, now.Add(-40*day), parcel.Exception),
		s.pkg(5, 1002, parcel.Medium, now.Add(-day), parcel.InStock),
	} {
		s.Require().NoError(uow.PackageRepository().Add(ctx, p))
	}

	march, err := finance.NewHandlingFee(decimal.RequireFromString("10.33"),
		time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC), 3)
	s.Require().NoError(err)
	compensation, err := finance.NewStorageCompensation(decimal.RequireFromString("12.5"),
		time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC), 4)
	s.Require().NoError(err)
	lastYear, err := finance.NewEntry(finance.DeliveryFee, decimal.NewFromInt(5),
		time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC), 0)
	s.Require().NoError(err)
	small, err := finance.NewHandlingFee(decimal.RequireFromString("0.15"),
		time.Date(2025, time.April, 2, 12, 0, 0, 0, time.UTC), 0)
	s.Require().NoError(err)

	for _, e := range []*finance.Entry{march, compensation, lastYear, small} {
		s.Require().NoError(uow.LedgerRepository().Append(ctx, e))
	}

	s.Require().NoError(uow.Commit(ctx))
}

func (s *RecordsSuite) user(id int, name, phone string, tier user.Tier, spent string, idle time.Duration, count int) *user.User {
	u, err := user.RestoreUser(id, name, phone, tier, decimal.RequireFromString(spent), now.Add(-idle), count)
	s.Require().NoError(err)
	return u
}

func (s *RecordsSuite) pkg(id, userID int, size parcel.Size, arrival time.Time, status parcel.Status) *parcel.Package {
	var pickup time.Time
	if status == parcel.PickedUp {
		pickup = arrival.Add(day)
	}

	attrs := parcel.Attributes{
		ContentValue:   decimal.NewFromInt(80),
		Size:           size,
		WeightTier:     parcel.UpTo10kg,
		SpecialFlag:    parcel.Fragile,
		ShippingMethod: parcel.ExpressAir,
	}
	p, err := parcel.RestorePackage(id, userID, attrs, "SH12", "PK00011000", arrival, pickup, status,
		decimal.RequireFromString("14.40"))
	s.Require().NoError(err)
	return p
}
