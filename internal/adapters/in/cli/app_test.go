package cli_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"station/cmd"
	"station/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

var fixedNow = time.Date(2025, time.April, 20, 10, 0, 0, 0, time.UTC)

type fixedShelf string

func (f fixedShelf) Assign() string {
	return string(f)
}

func testConfig() cmd.Config {
	return cmd.Config{
		DataDir:          "unused",
		ShelfCapacity:    50,
		WarningThreshold: 0.8,
		UserIDStart:      1000,
		PackageIDStart:   1,
		Log:              cmd.LogConfig{Level: "warn"},
		Labels:           cmd.LabelsConfig{Size: 256, Level: "M"},
	}
}

func newRoot(t *testing.T, bucket *blob.Bucket) *cmd.CompositionRoot {
	t.Helper()

	root, err := cmd.NewCompositionRoot(testConfig(), bucket, slog.New(slog.NewTextHandler(io.Discard, nil)),
		cmd.WithClock(func() time.Time { return fixedNow }),
		cmd.WithShelfAssigner(fixedShelf("SH07")),
	)
	require.NoError(t, err)
	require.NoError(t, root.Load(t.Context()))
	return root
}

func session(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestApp_Run_FullSession(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	in := session(
		"1", "1", "alice", "555-0100", "0", // register
		"2",
		"1", "4242", "1000", "abc", "50", "9", "3", "0", "0", "0", // intake, one unknown user, one bad amount, one bad size
		"2", "1", "WRONG", // wrong code
		"2", "1", "PK32001000", // pickup
		"4", "1", "2", // exception after pickup
		"3", "1", // lookup
		"0",
		"4", // financial report
		"3", // inventory
		"0",
	)
	var out bytes.Buffer

	code := newRoot(t, bucket).CreateApp(in, &out).Run(t.Context())

	require.Equal(t, 0, code)
	text := out.String()
	assert.Contains(t, text, "User added. ID: 1000")
	assert.Contains(t, text, "User 4242 not found.")
	assert.Contains(t, text, "Please enter a non-negative amount.")
	assert.Contains(t, text, "Choose a number from 0 to 4.")
	assert.Contains(t, text, "Package 1 stored on shelf SH07. Pickup code: PK32001000. Storage fee: 9.00")
	assert.Contains(t, text, "Error: value is invalid: pickup code does not match")
	assert.Contains(t, text, "Package 1 released. Storage fee charged: 9.00")
	assert.Contains(t, text, "PickedUp is not a valid status to report an exception")
	assert.Contains(t, text, "status:        PickedUp")
	assert.NotContains(t, text, "  pickup code")
	assert.Contains(t, text, "Total income: 6.30")
	assert.Contains(t, text, "Small        0 (0.0%)")
	assert.Contains(t, text, "Data saved. Goodbye!")

	reloaded := newRoot(t, bucket)
	query, err := queries.NewFindUsersQuery(queries.SearchByID, "1000")
	require.NoError(t, err)
	found, err := reloaded.CreateFindUsersQueryHandler().Handle(t.Context(), query)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "59.00", found[0].TotalSpent.StringFixed(2))
	assert.Equal(t, 1, found[0].PurchaseCount)
}

func TestApp_Run_IntakeRegistersRecipient(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	in := session("2", "1", "0", "bob", "555-0101", "10", "0", "0", "1", "3", "0", "0")
	var out bytes.Buffer

	code := newRoot(t, bucket).CreateApp(in, &out).Run(t.Context())

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "User added. ID: 1000")
	// first-order price of 9, fragile +8, super express +20
	assert.Contains(t, out.String(), "Storage fee: 37.00")
}

func TestApp_Run_AbortsAfterThreeOutOfRangeChoices(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	in := session("1", "1", "alice", "1", "0",
		"2", "1", "1000", "5", "7", "8", "9", "0", "0")
	var out bytes.Buffer

	code := newRoot(t, bucket).CreateApp(in, &out).Run(t.Context())

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Error: value is out of range: size is 9, min value is 0, max value is 4")
	assert.NotContains(t, out.String(), "stored on shelf")
}

func TestApp_Run_EndOfInputFlushes(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	// input ends in the middle of a registration
	in := strings.NewReader("1\n1\nalice\n555-0100\n0\n2\n1\n1000\n")
	var out bytes.Buffer

	code := newRoot(t, bucket).CreateApp(in, &out).Run(t.Context())

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Data saved. Goodbye!")

	ok, err := bucket.Exists(t.Context(), "users.csv")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestApp_Run_FailedFlushExitsWithOne(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	root := newRoot(t, bucket)
	require.NoError(t, bucket.Close())

	var out bytes.Buffer
	code := root.CreateApp(session("0"), &out).Run(t.Context())

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Saving failed:")
}

func TestApp_Run_InvalidMenuChoice(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	var out bytes.Buffer
	code := newRoot(t, bucket).CreateApp(session("x", "7", "0"), &out).Run(t.Context())

	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "Please enter a whole number.")
	assert.Contains(t, out.String(), "Invalid choice!")
}
