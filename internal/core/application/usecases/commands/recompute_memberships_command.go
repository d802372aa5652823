package commands

import (
	"errors"

	"station/internal/pkg/guard"
)

var ErrRecomputeMembershipsCommandIsNotConstructed = errors.New(
	"RecomputeMembershipsCommand must be created via NewRecomputeMembershipsCommand constructor",
)

// RecomputeMembershipsCommand runs one membership pass over every user.
type RecomputeMembershipsCommand struct {
	guard guard.ConstructorGuard
}

func NewRecomputeMembershipsCommand() RecomputeMembershipsCommand {
	return RecomputeMembershipsCommand{guard: guard.NewConstructorGuard()}
}

func (c RecomputeMembershipsCommand) Validate() error {
	return c.guard.Validate(ErrRecomputeMembershipsCommandIsNotConstructed)
}
