package ports

import (
	"context"

	"station/internal/core/domain/model/finance"
)

// LedgerRepository appends finance entries. Entries are never changed.
type LedgerRepository interface {
	Append(ctx context.Context, e *finance.Entry) error
}
