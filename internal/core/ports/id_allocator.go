package ports

import "context"

// IDAllocator issues user and package IDs. Every returned ID is greater than
// any ID issued before, including in earlier runs, and is durable before it
// is returned.
type IDAllocator interface {
	NextUserID(ctx context.Context) (int, error)
	NextPackageID(ctx context.Context) (int, error)
}
