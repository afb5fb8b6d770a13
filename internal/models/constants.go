package models

// FareClass is the cabin class a search or booking is priced for.
type FareClass string

const (
	ClassEconomy  FareClass = "economy"
	ClassPremium  FareClass = "premium"
	ClassBusiness FareClass = "business"
	ClassFirst    FareClass = "first"
)

// FareClasses lists every known class in display order.
var FareClasses = []FareClass{ClassEconomy, ClassPremium, ClassBusiness, ClassFirst}

const (
	TripOneWay    = "oneway"
	TripRoundTrip = "roundtrip"
)

const (
	StatusUpcoming  = "Upcoming"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Session store keys.
const (
	KeyUserData      = "userData"
	KeyUserProfile   = "userProfile"
	KeySearchHistory = "flightSearchHistory"
	KeyBookings      = "flightBookings"
	KeyRememberLogin = "rememberLogin"
)

const (
	// DefaultOfferCount количество предложений на один поиск
	DefaultOfferCount = 15

	// MaxSearchHistory сколько последних поисков хранится
	MaxSearchHistory = 10

	// DefaultFrom и DefaultTo подставляются, если в запросе нет маршрута
	DefaultFrom = "Delhi (DEL)"
	DefaultTo   = "Mumbai (BOM)"

	// GuestEmail и GuestName идентичность гостевого входа
	GuestEmail = "guest@atrika.com"
	GuestName  = "Guest User"

	DefaultCurrency = "USD"
	DefaultTheme    = "light"

	// DefaultBannerInterval период смены баннера в секундах
	DefaultBannerInterval = 4
)
