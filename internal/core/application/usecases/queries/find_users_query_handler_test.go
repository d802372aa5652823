package queries_test

import (
	"station/internal/core/application/usecases/queries"
	"station/internal/core/domain/model/user"
	"station/internal/pkg/errs"
)

func (s *RecordsSuite) TestFindUsers_ByID() {
	query, err := queries.NewFindUsersQuery(queries.SearchByID, " 1000 ")
	s.Require().NoError(err)

	found, err := queries.NewFindUsersQueryHandler(s.store, clock).Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal("555-0100", found[0].Phone)
	s.Equal(user.TierGold, found[0].Tier)
	s.Equal("6000.00", found[0].TotalSpent.StringFixed(2))
	s.InDelta(5.0, found[0].DaysSinceLastPurchase, 1e-9)
	s.Equal(10, found[0].PurchaseCount)
}

func (s *RecordsSuite) TestFindUsers_ByNameReturnsEveryMatch() {
	query, err := queries.NewFindUsersQuery(queries.SearchByName, "alice")
	s.Require().NoError(err)

	found, err := queries.NewFindUsersQueryHandler(s.store, clock).Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.Require().Len(found, 2)
	s.Equal(1002, found[0].ID)
	s.Equal(1000, found[1].ID)
}

func (s *RecordsSuite) TestFindUsers_ByPhoneIsExact() {
	query, err := queries.NewFindUsersQuery(queries.SearchByPhone, "555-010")
	s.Require().NoError(err)

	found, err := queries.NewFindUsersQueryHandler(s.store, clock).Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.NotNil(found)
	s.Empty(found)
}

func (s *RecordsSuite) TestFindUsers_BadInput() {
	_, err := queries.NewFindUsersQuery(queries.SearchByID, "abc")
	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)

	_, err = queries.NewFindUsersQuery(queries.SearchByName, "   ")
	s.Require().ErrorIs(err, errs.ErrValueIsRequired)

	_, err = queries.NewFindUsersQuery(queries.UserSearchField(9), "x")
	s.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewFindUsersQueryHandler(s.store, clock).Handle(s.T().Context(), queries.FindUsersQuery{})
	s.Require().ErrorIs(err, queries.ErrFindUsersQueryIsNotConstructed)
}
