package flights

import (
	"strings"

	"atrika/internal/models"
)

var popularDestinations = []models.Destination{
	{Code: "DEL", Name: "Delhi", Country: "India"},
	{Code: "BOM", Name: "Mumbai", Country: "India"},
	{Code: "BLR", Name: "Bangalore", Country: "India"},
	{Code: "MAA", Name: "Chennai", Country: "India"},
	{Code: "CCU", Name: "Kolkata", Country: "India"},
	{Code: "HYD", Name: "Hyderabad", Country: "India"},
	{Code: "AMD", Name: "Ahmedabad", Country: "India"},
	{Code: "PNQ", Name: "Pune", Country: "India"},
	{Code: "COK", Name: "Kochi", Country: "India"},
	{Code: "GOI", Name: "Goa", Country: "India"},
	{Code: "JAI", Name: "Jaipur", Country: "India"},
	{Code: "LKO", Name: "Lucknow", Country: "India"},
	{Code: "IXC", Name: "Chandigarh", Country: "India"},
	{Code: "VNS", Name: "Varanasi", Country: "India"},
	{Code: "IXB", Name: "Bagdogra", Country: "India"},
	{Code: "GAU", Name: "Guwahati", Country: "India"},
	{Code: "IMP", Name: "Imphal", Country: "India"},
	{Code: "SXR", Name: "Srinagar", Country: "India"},
	{Code: "LEH", Name: "Leh", Country: "India"},
	{Code: "IXM", Name: "Madurai", Country: "India"},

	{Code: "LHR", Name: "London", Country: "UK"},
	{Code: "CDG", Name: "Paris", Country: "France"},
	{Code: "NRT", Name: "Tokyo", Country: "Japan"},
	{Code: "SIN", Name: "Singapore", Country: "Singapore"},
	{Code: "DXB", Name: "Dubai", Country: "UAE"},
	{Code: "SYD", Name: "Sydney", Country: "Australia"},
	{Code: "JFK", Name: "New York", Country: "USA"},
	{Code: "LAX", Name: "Los Angeles", Country: "USA"},
	{Code: "BKK", Name: "Bangkok", Country: "Thailand"},
	{Code: "KUL", Name: "Kuala Lumpur", Country: "Malaysia"},
	{Code: "ICN", Name: "Seoul", Country: "South Korea"},
	{Code: "HKG", Name: "Hong Kong", Country: "Hong Kong"},
	{Code: "FRA", Name: "Frankfurt", Country: "Germany"},
	{Code: "AMS", Name: "Amsterdam", Country: "Netherlands"},
	{Code: "ZUR", Name: "Zurich", Country: "Switzerland"},
	{Code: "YYZ", Name: "Toronto", Country: "Canada"},
	{Code: "MEL", Name: "Melbourne", Country: "Australia"},
	{Code: "DOH", Name: "Doha", Country: "Qatar"},
	{Code: "IST", Name: "Istanbul", Country: "Turkey"},
	{Code: "CAI", Name: "Cairo", Country: "Egypt"},
}

// Label renders a destination the way search fields carry it: "Delhi (DEL)".
func Label(d models.Destination) string {
	return d.Name + " (" + d.Code + ")"
}

// Suggest matches query case-insensitively anywhere in the name or code.
// An empty query returns every destination.
func Suggest(query string) []models.Destination {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Destination, 0, len(popularDestinations))
	for _, d := range popularDestinations {
		if strings.Contains(strings.ToLower(d.Name), needle) || strings.Contains(strings.ToLower(d.Code), needle) {
			out = append(out, d)
		}
	}
	return out
}
