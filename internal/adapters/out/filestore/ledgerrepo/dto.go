// Package ledgerrepo persists finance entries in a filestore table.
package ledgerrepo

import (
	"errors"

	"station/internal/adapters/out/filestore/table"
	"station/internal/core/domain/model/finance"
	"station/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// EntryDTO is the stored form of a ledger line. PackageID 0 means none.
type EntryDTO struct {
	ID        string
	Type      string
	Amount    decimal.Decimal
	Timestamp string
	PackageID int
}

// Table is the ledger keyed by entry UUID.
type Table = table.Table[string, EntryDTO]

// Schema describes finances.csv.
var Schema = table.Schema[string, EntryDTO]{
	Name:    "finances",
	Version: 1,
	Columns: []string{"id", "type", "amount", "timestamp", "package_id"},
	Decode:  decode,
}

// NewTable returns an empty ledger.
func NewTable() *Table {
	return table.New[string, EntryDTO](Schema.Name)
}

func (d EntryDTO) Key() string {
	return d.ID
}

func (d EntryDTO) Fields() []string {
	return []string{d.ID, d.Type, d.Amount.String(), d.Timestamp, table.FormatInt(d.PackageID)}
}

func decode(fields []string) (EntryDTO, error) {
	amount, amountErr := table.ParseDecimal(fields[2])
	packageID, packageErr := table.ParseInt(fields[4])
	if err := errors.Join(amountErr, packageErr); err != nil {
		return EntryDTO{}, err
	}

	dto := EntryDTO{
		ID:        fields[0],
		Type:      fields[1],
		Amount:    amount,
		Timestamp: fields[3],
		PackageID: packageID,
	}

	if _, err := toDomain(dto); err != nil {
		return EntryDTO{}, err
	}
	return dto, nil
}

func fromDomain(e *finance.Entry) EntryDTO {
	packageID, _ := e.PackageID()

	return EntryDTO{
		ID:        e.ID().String(),
		Type:      e.Type().String(),
		Amount:    e.Amount(),
		Timestamp: table.FormatTime(e.Timestamp()),
		PackageID: packageID,
	}
}

func toDomain(dto EntryDTO) (*finance.Entry, error) {
	id, idErr := kernel.UUIDFromString(dto.ID)
	entryType, typeErr := finance.ParseEntryType(dto.Type)
	at, timeErr := table.ParseTime(dto.Timestamp)
	if err := errors.Join(idErr, typeErr, timeErr); err != nil {
		return nil, err
	}

	return finance.RestoreEntry(id, entryType, dto.Amount, at, dto.PackageID)
}
