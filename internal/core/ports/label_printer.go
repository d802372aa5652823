package ports

import "context"

// LabelPrinter renders the pickup label handed to the recipient.
type LabelPrinter interface {
	Print(ctx context.Context, packageID int, pickupCode string) error
}

// Flusher writes the in-memory state to durable storage.
type Flusher interface {
	Flush(ctx context.Context) error
}
