package flights

import (
	"math"

	"atrika/internal/models"
)

var classMultipliers = map[models.FareClass]float64{
	models.ClassEconomy:  1.0,
	models.ClassPremium:  1.4,
	models.ClassBusiness: 2.2,
	models.ClassFirst:    3.5,
}

// Multiplier returns the price factor for class; unknown classes get 1.0.
func Multiplier(class models.FareClass) float64 {
	if m, ok := classMultipliers[class]; ok {
		return m
	}
	return 1.0
}

// PriceForClass is floor(base * multiplier). The same value is shown before
// booking and stored on the booking.
func PriceForClass(base int, class models.FareClass) int {
	return int(math.Floor(float64(base) * Multiplier(class)))
}

// Price attaches the class price to every offer, keeping order.
func Price(offers []models.Offer, class models.FareClass) []models.PricedOffer {
	out := make([]models.PricedOffer, len(offers))
	for i, o := range offers {
		out[i] = models.PricedOffer{Offer: o, Class: class, Price: PriceForClass(o.BasePrice, class)}
	}
	return out
}
