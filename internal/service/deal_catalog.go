package service

import (
	"time"

	"atrika/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultDeals is the catalog used when no deals file is configured.
func DefaultDeals() []models.Deal {
	return []models.Deal{
		{ID: "deal1", Title: "Singapore Special", Route: "Delhi → Singapore", OriginalPrice: 55999, DiscountedPrice: 41999, Discount: 25, Airline: "Singapore Airlines", ValidUntil: date(2024, time.June, 20), Category: "International", IsTrending: true},
		{ID: "deal2", Title: "Tokyo Flash Sale", Route: "Mumbai → Tokyo", OriginalPrice: 84999, DiscountedPrice: 67999, Discount: 20, Airline: "Air India", ValidUntil: date(2024, time.June, 18), Category: "International", IsFlashSale: true},
		{ID: "deal3", Title: "Dubai Delight", Route: "Chennai → Dubai", OriginalPrice: 41999, DiscountedPrice: 28999, Discount: 30, Airline: "Emirates", ValidUntil: date(2024, time.June, 25), Category: "International", IsNew: true},
		{ID: "deal4", Title: "Goa Beach Vibes", Route: "Delhi → Goa", OriginalPrice: 12999, DiscountedPrice: 8999, Discount: 30, Airline: "IndiGo", ValidUntil: date(2024, time.June, 22), Category: "Domestic", IsTrending: true},
		{ID: "deal5", Title: "Kerala Backwaters", Route: "Mumbai → Kochi", OriginalPrice: 15999, DiscountedPrice: 11999, Discount: 25, Airline: "Vistara", ValidUntil: date(2024, time.June, 30), Category: "Domestic"},
		{ID: "deal6", Title: "Rajasthan Heritage", Route: "Delhi → Jaipur", OriginalPrice: 8999, DiscountedPrice: 6299, Discount: 30, Airline: "SpiceJet", ValidUntil: date(2024, time.June, 28), Category: "Domestic", IsNew: true},
		{ID: "deal7", Title: "London Explorer", Route: "Delhi → London", OriginalPrice: 89999, DiscountedPrice: 67999, Discount: 24, Airline: "British Airways", ValidUntil: date(2024, time.July, 5), Category: "International"},
		{ID: "deal8", Title: "Paris Romance", Route: "Mumbai → Paris", OriginalPrice: 79999, DiscountedPrice: 59999, Discount: 25, Airline: "Air France", ValidUntil: date(2024, time.July, 10), Category: "International", IsTrending: true},
	}
}

func DefaultBanners() []models.Banner {
	return []models.Banner{
		{ID: "banner1", Title: "Monsoon Madness", Subtitle: "Fly to Kerala during monsoon season", Route: "Delhi → Kochi", Price: "₹15,999", Validity: "5 days left"},
		{ID: "banner2", Title: "Weekend Getaways", Subtitle: "Perfect 2-day escapes", Route: "Mumbai → Goa", Price: "₹8,999", Validity: "2 days left"},
		{ID: "banner3", Title: "Mountain Adventures", Subtitle: "Explore the Himalayas", Route: "Delhi → Leh", Price: "₹22,999", Validity: "7 days left"},
	}
}
