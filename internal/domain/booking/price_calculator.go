package booking

type PriceCalculator interface {
	CalculateTotal(room RoomSpec, stay StayRange) Money
}

// NightlyPriceCalculator charges nights x nightly price, with at least one night.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (NightlyPriceCalculator) CalculateTotal(room RoomSpec, stay StayRange) Money {
	nights := stay.Nights()
	if nights < 1 {
		nights = 1
	}
	return room.NightlyPrice.Times(nights)
}
