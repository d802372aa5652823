package parcel_test

import (
	"testing"

	"station/internal/core/domain/model/parcel"
	"station/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeNames(t *testing.T) {
	t.Run("sizes follow the intake menu codes", func(t *testing.T) {
		assert.Equal(t, "ExtraLarge", parcel.Size(0).String())
		assert.Equal(t, "Tiny", parcel.Size(4).String())
		assert.Equal(t, "Unknown", parcel.Size(5).String())
		assert.Len(t, parcel.Sizes(), 5)
	})

	t.Run("lists are in code order", func(t *testing.T) {
		for i, w := range parcel.WeightTiers() {
			assert.Equal(t, i, int(w))
		}
		for i, f := range parcel.SpecialFlags() {
			assert.Equal(t, i, int(f))
		}
		for i, m := range parcel.ShippingMethods() {
			assert.Equal(t, i, int(m))
		}
		assert.Len(t, parcel.SpecialFlags(), 6)
		assert.Len(t, parcel.ShippingMethods(), 4)
	})

	t.Run("names parse back to the same code", func(t *testing.T) {
		size, err := parcel.ParseSize("Small")
		require.NoError(t, err)
		assert.Equal(t, parcel.Small, size)

		weight, err := parcel.ParseWeightTier("UpTo50kg")
		require.NoError(t, err)
		assert.Equal(t, parcel.UpTo50kg, weight)

		flag, err := parcel.ParseSpecialFlag("Refrigerated")
		require.NoError(t, err)
		assert.Equal(t, parcel.Refrigerated, flag)

		method, err := parcel.ParseShippingMethod("SuperExpress")
		require.NoError(t, err)
		assert.Equal(t, parcel.SuperExpress, method)
	})

	t.Run("unknown names are rejected", func(t *testing.T) {
		_, err := parcel.ParseSpecialFlag("Explosive")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAttributesValidate(t *testing.T) {
	t.Run("should accept in-range codes and a zero value", func(t *testing.T) {
		attrs := parcel.Attributes{ContentValue: decimal.Zero}
		require.NoError(t, attrs.Validate())
	})

	t.Run("should report every out-of-range code", func(t *testing.T) {
		attrs := parcel.Attributes{
			ContentValue:   decimal.Zero,
			Size:           parcel.Size(-1),
			WeightTier:     parcel.WeightTier(5),
			SpecialFlag:    parcel.SpecialFlag(6),
			ShippingMethod: parcel.ShippingMethod(4),
		}

		err := attrs.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "size is -1, min value is 0, max value is 4")
		assert.Contains(t, err.Error(), "weight tier is 5")
		assert.Contains(t, err.Error(), "special flag is 6, min value is 0, max value is 5")
		assert.Contains(t, err.Error(), "shipping method is 4, min value is 0, max value is 3")
	})
}

func TestIncidentCategory(t *testing.T) {
	assert.Equal(t, []parcel.IncidentCategory{parcel.Damaged, parcel.Lost, parcel.Misdelivered, parcel.Refused},
		parcel.IncidentCategories())
	require.NoError(t, parcel.Lost.Validate())
	require.ErrorIs(t, parcel.IncidentCategory(0).Validate(), errs.ErrValueIsOutOfRange)
	assert.Equal(t, "Misdelivered", parcel.Misdelivered.String())
}
