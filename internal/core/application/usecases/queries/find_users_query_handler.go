package queries

import (
	"context"
)

type FindUsersQueryHandler struct {
	source UserSource
	now    Clock
}

func NewFindUsersQueryHandler(source UserSource, now Clock) FindUsersQueryHandler {
	return FindUsersQueryHandler{source: source, now: now}
}

// Handle returns every matching user, newest registration first. No match
// is an empty slice, not an error.
func (h FindUsersQueryHandler) Handle(ctx context.Context, query FindUsersQuery) ([]FindUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users, err := h.source.Users(ctx)
	if err != nil {
		return nil, err
	}

	now := h.now()
	found := make([]FindUsersQueryResponse, 0)
	for _, u := range users {
		if !query.matches(u) {
			continue
		}
		found = append(found, FindUsersQueryResponse{
			ID:                    u.ID(),
			Name:                  u.Name(),
			Phone:                 u.Phone(),
			Tier:                  u.Tier(),
			TotalSpent:            u.TotalSpent(),
			DaysSinceLastPurchase: u.DaysSinceLastPurchase(now),
			PurchaseCount:         u.PurchaseCount(),
		})
	}

	return found, nil
}
