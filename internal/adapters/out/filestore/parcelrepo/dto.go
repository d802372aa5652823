// Package parcelrepo persists package aggregates in a filestore table.
package parcelrepo

import (
	"errors"

	"station/internal/adapters/out/filestore/table"
	"station/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
)

// PackageDTO is the stored form of a package. Enumerations are kept by name
// and times in the table time format; Pickup is empty until release.
type PackageDTO struct {
	ID             int
	UserID         int
	ContentValue   decimal.Decimal
	Size           string
	WeightTier     string
	SpecialFlag    string
	ShippingMethod string
	ShelfCode      string
	PickupCode     string
	Arrival        string
	Pickup         string
	Status         string
	StorageFee     decimal.Decimal
}

// Table is the package collection keyed by package ID.
type Table = table.Table[int, PackageDTO]

// Schema describes packages.csv.
var Schema = table.Schema[int, PackageDTO]{
	Name:    "packages",
	Version: 1,
	Columns: []string{
		"id", "user_id", "content_value", "size", "weight_tier", "special_flag", "shipping_method",
		"shelf_code", "pickup_code", "arrival", "pickup", "status", "storage_fee",
	},
	Decode: decode,
}

// NewTable returns an empty package table.
func NewTable() *Table {
	return table.New[int, PackageDTO](Schema.Name)
}

func (d PackageDTO) Key() int {
	return d.ID
}

func (d PackageDTO) Fields() []string {
	return []string{
		table.FormatInt(d.ID),
		table.FormatInt(d.UserID),
		d.ContentValue.String(),
		d.Size,
		d.WeightTier,
		d.SpecialFlag,
		d.ShippingMethod,
		d.ShelfCode,
		d.PickupCode,
		d.Arrival,
		d.Pickup,
		d.Status,
		d.StorageFee.String(),
	}
}

func decode(fields []string) (PackageDTO, error) {
	id, idErr := table.ParseInt(fields[0])
	userID, userErr := table.ParseInt(fields[1])
	value, valueErr := table.ParseDecimal(fields[2])
	fee, feeErr := table.ParseDecimal(fields[12])
	if err := errors.Join(idErr, userErr, valueErr, feeErr); err != nil {
		return PackageDTO{}, err
	}

	dto := PackageDTO{
		ID:             id,
		UserID:         userID,
		ContentValue:   value,
		Size:           fields[3],
		WeightTier:     fields[4],
		SpecialFlag:    fields[5],
		ShippingMethod: fields[6],
		ShelfCode:      fields[7],
		PickupCode:     fields[8],
		Arrival:        fields[9],
		Pickup:         fields[10],
		Status:         fields[11],
		StorageFee:     fee,
	}

	if _, err := toDomain(dto); err != nil {
		return PackageDTO{}, err
	}
	return dto, nil
}

func fromDomain(p *parcel.Package) PackageDTO {
	attrs := p.Attributes()
	pickup, _ := p.Pickup()

	return PackageDTO{
		ID:             p.ID(),
		UserID:         p.UserID(),
		ContentValue:   attrs.ContentValue,
		Size:           attrs.Size.String(),
		WeightTier:     attrs.WeightTier.String(),
		SpecialFlag:    attrs.SpecialFlag.String(),
		ShippingMethod: attrs.ShippingMethod.String(),
		ShelfCode:      p.ShelfCode(),
		PickupCode:     p.PickupCode(),
		Arrival:        table.FormatTime(p.Arrival()),
		Pickup:         table.FormatTime(pickup),
		Status:         p.Status().String(),
		StorageFee:     p.StorageFee(),
	}
}

func toDomain(dto PackageDTO) (*parcel.Package, error) {
	size, sizeErr := parcel.ParseSize(dto.Size)
	weight, weightErr := parcel.ParseWeightTier(dto.WeightTier)
	flag, flagErr := parcel.ParseSpecialFlag(dto.SpecialFlag)
	method, methodErr := parcel.ParseShippingMethod(dto.ShippingMethod)
	status, statusErr := parcel.ParseStatus(dto.Status)
	arrival, arrivalErr := table.ParseTime(dto.Arrival)
	pickup, pickupErr := table.ParseTime(dto.Pickup)

	if err := errors.Join(sizeErr, weightErr, flagErr, methodErr, statusErr, arrivalErr, pickupErr); err != nil {
		return nil, err
	}

	attrs := parcel.Attributes{
		ContentValue:   dto.ContentValue,
		Size:           size,
		WeightTier:     weight,
		SpecialFlag:    flag,
		ShippingMethod: method,
	}

	return parcel.RestorePackage(dto.ID, dto.UserID, attrs, dto.ShelfCode, dto.PickupCode,
		arrival, pickup, status, dto.StorageFee)
}
