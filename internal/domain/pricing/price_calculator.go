package pricing

import "equipment-rental/internal/domain/equipment"

type PriceCalculator interface {
	Price(class equipment.Class, days int) int
	LoyaltyBonus(class equipment.Class) int
}

// TieredPriceCalculator charges a premium daily fee for the first days of a
// rental and a regular fee afterwards; Heavy stays at the premium fee.
type TieredPriceCalculator struct {
	OneTimeFee             int
	PremiumDailyFee        int
	RegularDailyFee        int
	RegularPremiumDays     int
	SpecializedPremiumDays int
	HeavyBonus             int
	StandardBonus          int
}

func NewDefaultPriceCalculator() *TieredPriceCalculator {
	return &TieredPriceCalculator{
		OneTimeFee:             100,
		PremiumDailyFee:        60,
		RegularDailyFee:        40,
		RegularPremiumDays:     2,
		SpecializedPremiumDays: 3,
		HeavyBonus:             2,
		StandardBonus:          1,
	}
}

func (pc *TieredPriceCalculator) Price(class equipment.Class, days int) int {
	if days <= 0 {
		return 0
	}

	switch class {
	case equipment.ClassHeavy:
		return pc.OneTimeFee + pc.PremiumDailyFee*days
	case equipment.ClassRegular:
		return pc.OneTimeFee + pc.tiered(days, pc.RegularPremiumDays)
	case equipment.ClassSpecialized:
		return pc.tiered(days, pc.SpecializedPremiumDays)
	default:
		return 0
	}
}

func (pc *TieredPriceCalculator) LoyaltyBonus(class equipment.Class) int {
	if class == equipment.ClassHeavy {
		return pc.HeavyBonus
	}
	return pc.StandardBonus
}

func (pc *TieredPriceCalculator) tiered(days, premiumDays int) int {
	premium := min(days, premiumDays)
	regular := max(days-premiumDays, 0)
	return premium*pc.PremiumDailyFee + regular*pc.RegularDailyFee
}
