// Package userrepo persists user aggregates in a filestore table.
package userrepo

import (
	"errors"

	"station/internal/adapters/out/filestore/table"
	"station/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// UserDTO is the stored form of a user. The tier is kept by name.
type UserDTO struct {
	ID            int
	Name          string
	Phone         string
	Tier          string
	TotalSpent    decimal.Decimal
	LastPurchase  string
	PurchaseCount int
}

// Table is the user collection keyed by user ID.
type Table = table.Table[int, UserDTO]

// Schema describes users.csv.
var Schema = table.Schema[int, UserDTO]{
	Name:    "users",
	Version: 1,
	Columns: []string{"id", "name", "phone", "tier", "total_spent", "last_purchase", "purchase_count"},
	Decode:  decode,
}

// NewTable returns an empty user table.
func NewTable() *Table {
	return table.New[int, UserDTO](Schema.Name)
}

func (d UserDTO) Key() int {
	return d.ID
}

func (d UserDTO) Fields() []string {
	return []string{
		table.FormatInt(d.ID),
		d.Name,
		d.Phone,
		d.Tier,
		d.TotalSpent.String(),
		d.LastPurchase,
		table.FormatInt(d.PurchaseCount),
	}
}

func decode(fields []string) (UserDTO, error) {
	id, idErr := table.ParseInt(fields[0])
	spent, spentErr := table.ParseDecimal(fields[4])
	count, countErr := table.ParseInt(fields[6])
	if err := errors.Join(idErr, spentErr, countErr); err != nil {
		return UserDTO{}, err
	}

	dto := UserDTO{
		ID:            id,
		Name:          fields[1],
		Phone:         fields[2],
		Tier:          fields[3],
		TotalSpent:    spent,
		LastPurchase:  fields[5],
		PurchaseCount: count,
	}

	// Reject rows the domain would refuse now rather than on first access.
	if _, err := toDomain(dto); err != nil {
		return UserDTO{}, err
	}
	return dto, nil
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:            u.ID(),
		Name:          u.Name(),
		Phone:         u.Phone(),
		Tier:          u.Tier().String(),
		TotalSpent:    u.TotalSpent(),
		LastPurchase:  table.FormatTime(u.LastPurchase()),
		PurchaseCount: u.PurchaseCount(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	tier, err := user.ParseTier(dto.Tier)
	if err != nil {
		return nil, err
	}

	lastPurchase, err := table.ParseTime(dto.LastPurchase)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(dto.ID, dto.Name, dto.Phone, tier, dto.TotalSpent, lastPurchase, dto.PurchaseCount)
}
