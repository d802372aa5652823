package parcel

import (
	"errors"
	"fmt"

	"station/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Size is the shelf size class. Codes follow the intake menu (0..4).
type Size int

const (
	ExtraLarge Size = iota
	Large
	Medium
	Small
	Tiny
)

// WeightTier is the weight class of a package.
type WeightTier int

const (
	UpTo5kg WeightTier = iota
	UpTo10kg
	UpTo20kg
	UpTo30kg
	UpTo50kg
)

// SpecialFlag marks handling requirements that carry a surcharge.
type SpecialFlag int

const (
	None SpecialFlag = iota
	Fragile
	UprightOnly
	Hazardous
	LightSensitive
	Refrigerated
)

// ShippingMethod is the inbound transport used for the package.
type ShippingMethod int

const (
	StandardTruck ShippingMethod = iota
	ExpressRoad
	ExpressAir
	SuperExpress
)

var (
	sizeNames     = []string{"ExtraLarge", "Large", "Medium", "Small", "Tiny"}
	weightNames   = []string{"UpTo5kg", "UpTo10kg", "UpTo20kg", "UpTo30kg", "UpTo50kg"}
	flagNames     = []string{"None", "Fragile", "UprightOnly", "Hazardous", "LightSensitive", "Refrigerated"}
	shippingNames = []string{"StandardTruck", "ExpressRoad", "ExpressAir", "SuperExpress"}
)

// Sizes lists every size in code order.
func Sizes() []Size {
	return []Size{ExtraLarge, Large, Medium, Small, Tiny}
}

func WeightTiers() []WeightTier {
	return []WeightTier{UpTo5kg, UpTo10kg, UpTo20kg, UpTo30kg, UpTo50kg}
}

func SpecialFlags() []SpecialFlag {
	return []SpecialFlag{None, Fragile, UprightOnly, Hazardous, LightSensitive, Refrigerated}
}

func ShippingMethods() []ShippingMethod {
	return []ShippingMethod{StandardTruck, ExpressRoad, ExpressAir, SuperExpress}
}

func (s Size) String() string { return enumName(sizeNames, int(s)) }
func (w WeightTier) String() string { return enumName(weightNames, int(w)) }
func (f SpecialFlag) String() string { return enumName(flagNames, int(f)) }
func (m ShippingMethod) String() string { return enumName(shippingNames, int(m)) }

func (s Size) Validate() error { return enumValidate("size", sizeNames, int(s)) }
func (w WeightTier) Validate() error { return enumValidate("weight tier", weightNames, int(w)) }
func (f SpecialFlag) Validate() error { return enumValidate("special flag", flagNames, int(f)) }
func (m ShippingMethod) Validate() error { return enumValidate("shipping method", shippingNames, int(m)) }

// ParseSize and its siblings are the inverses of String.
func ParseSize(name string) (Size, error) {
	code, err := enumParse("size", sizeNames, name)
	return Size(code), err
}

func ParseWeightTier(name string) (WeightTier, error) {
	code, err := enumParse("weight tier", weightNames, name)
	return WeightTier(code), err
}

func ParseSpecialFlag(name string) (SpecialFlag, error) {
	code, err := enumParse("special flag", flagNames, name)
	return SpecialFlag(code), err
}

func ParseShippingMethod(name string) (ShippingMethod, error) {
	code, err := enumParse("shipping method", shippingNames, name)
	return ShippingMethod(code), err
}

// Attributes are the properties recorded at intake.
type Attributes struct {
	ContentValue   decimal.Decimal
	Size           Size
	WeightTier     WeightTier
	SpecialFlag    SpecialFlag
	ShippingMethod ShippingMethod
}

// Validate joins every invalid field into one error.
func (a Attributes) Validate() error {
	var valueErr error
	if a.ContentValue.IsNegative() {
		valueErr = errs.NewValueIsInvalidErrorWithCause("content value", fmt.Errorf("%s is negative", a.ContentValue))
	}

	return errors.Join(
		valueErr,
		a.Size.Validate(),
		a.WeightTier.Validate(),
		a.SpecialFlag.Validate(),
		a.ShippingMethod.Validate(),
	)
}

func enumName(names []string, code int) string {
	if code < 0 || code >= len(names) {
		return "Unknown"
	}
	return names[code]
}

func enumValidate(param string, names []string, code int) error {
	if code < 0 || code >= len(names) {
		return errs.NewValueIsOutOfRangeError(param, code, 0, len(names)-1)
	}
	return nil
}

func enumParse(param string, names []string, name string) (int, error) {
	for code, n := range names {
		if n == name {
			return code, nil
		}
	}
	return -1, errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%q is not a known name", name))
}
