package offers

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jakechorley/skip-hire/pkg/core/model"
)

const bagsPerYard = 10

// ErrInvalidHirePeriod is returned for hire periods that are not a positive number of days
var ErrInvalidHirePeriod = errors.New("hire period must be a positive number of days")

var namedPeriods = map[int]string{
	7:  "week",
	14: "2 weeks",
	21: "3 weeks",
	28: "4 weeks",
}

// maxCapacitySize is the largest size whose bag range fits in an int
const maxCapacitySize = (math.MaxInt - 20) / bagsPerYard

var (
	hundred  = decimal.NewFromInt(100)
	maxPrice = decimal.NewFromInt(math.MaxInt)
)

// ComputeFinalPrice applies VAT to a pre-tax price and rounds half away from zero
// to the nearest whole currency unit. Negative and NaN inputs are treated as zero,
// and totals beyond the int range saturate at math.MaxInt.
func ComputeFinalPrice(priceBeforeVat, vatPercent float64) int {
	price := clampedDecimal(priceBeforeVat)
	vat := clampedDecimal(vatPercent)

	multiplier := decimal.NewFromInt(1).Add(vat.Div(hundred))
	total := price.Mul(multiplier).Round(0)
	if total.GreaterThan(maxPrice) {
		return math.MaxInt
	}
	return int(total.IntPart())
}

// clampedDecimal maps v into [0, maxPrice]
func clampedDecimal(v float64) decimal.Decimal {
	switch {
	case math.IsNaN(v) || v <= 0:
		return decimal.Zero
	case math.IsInf(v, 1):
		return maxPrice
	}
	return decimal.NewFromFloat(v)
}

// FormatPeriod renders a hire period in days as a human label
func FormatPeriod(days int) (string, error) {
	if days <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidHirePeriod, days)
	}
	if label, ok := namedPeriods[days]; ok {
		return label, nil
	}
	return fmt.Sprintf("%d days", days), nil
}

// GenerateDescription builds the offer description from the skip's size and placement rules
func GenerateDescription(size int, allowedOnRoad, allowsHeavyWaste bool) string {
	description := fmt.Sprintf("Perfect for %d yard capacity projects. ", size)

	if allowedOnRoad {
		description += "Can be placed on road with permit. "
	} else {
		description += "Must be placed on private property. "
	}

	if allowsHeavyWaste {
		description += "Suitable for heavy construction waste."
	} else {
		description += "Ideal for general household and light construction waste."
	}

	return description
}

// GenerateCapacity estimates how many bin bags a skip of the given size holds.
// Sizes are clamped to the range the bag count can represent.
func GenerateCapacity(size int) string {
	size = max(0, min(size, maxCapacitySize))
	lower := size * bagsPerYard
	return fmt.Sprintf("%d-%d bin bags", lower, lower+20)
}

// ToOffer converts a raw API record into a display-ready offer
func ToOffer(raw model.RawSkipRecord) (model.SkipOffer, error) {
	period, err := FormatPeriod(raw.HirePeriodDays)
	if err != nil {
		return model.SkipOffer{}, fmt.Errorf("skip %d: %w", raw.ID, err)
	}

	return model.SkipOffer{
		ID:          strconv.Itoa(raw.ID),
		Size:        strconv.Itoa(raw.Size),
		Price:       ComputeFinalPrice(raw.PriceBeforeVAT, raw.VAT),
		Period:      period,
		Description: GenerateDescription(raw.Size, raw.AllowedOnRoad, raw.AllowsHeavyWaste),
		Capacity:    GenerateCapacity(raw.Size),
	}, nil
}

// ToOffers converts raw records to offers, preserving order
func ToOffers(raw []model.RawSkipRecord) ([]model.SkipOffer, error) {
	result := make([]model.SkipOffer, 0, len(raw))
	for _, r := range raw {
		offer, err := ToOffer(r)
		if err != nil {
			return nil, err
		}
		result = append(result, offer)
	}
	return result, nil
}
