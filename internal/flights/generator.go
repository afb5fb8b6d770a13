// Package flights generates mock flight offers and prices them by fare class.
package flights

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"atrika/internal/models"
)

var airlines = []string{
	"Air India", "IndiGo", "SpiceJet", "Vistara", "GoAir", "AirAsia India",
	"Emirates", "Qatar Airways", "Singapore Airlines", "Swiss International",
	"Lufthansa", "British Airways", "Thai Airways", "Cathay Pacific",
}

var aircraft = []string{
	"Boeing 737", "Boeing 777", "Boeing 787", "Airbus A320", "Airbus A330",
	"Airbus A350", "Boeing 747", "Airbus A380", "Embraer E190", "ATR 72",
}

const (
	minBasePrice   = 15000
	basePriceRange = 50000
	stopSurcharge  = 5000
	minFlightHours = 2
	flightHourSpan = 8
)

// Generator produces offers from a seedable random source. It is safe for
// concurrent use.
type Generator struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	count int
}

// NewGenerator uses src for every random draw. A nil src seeds from the
// clock; count <= 0 means models.DefaultOfferCount.
func NewGenerator(src rand.Source, count int) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	if count <= 0 {
		count = models.DefaultOfferCount
	}
	return &Generator{rnd: rand.New(src), count: count}
}

// Generate returns fresh offers for q sorted by base price. Only the route
// is read from the query; a nil query or empty route uses the default pair.
func (g *Generator) Generate(q *models.SearchQuery) []models.Offer {
	from, to := models.DefaultFrom, models.DefaultTo
	if q != nil {
		if q.From != "" {
			from = q.From
		}
		if q.To != "" {
			to = q.To
		}
	}

	g.mu.Lock()
	offers := make([]models.Offer, 0, g.count)
	for i := 0; i < g.count; i++ {
		offers = append(offers, g.offer(i+1, from, to))
	}
	g.mu.Unlock()

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].BasePrice < offers[j].BasePrice
	})
	return offers
}

// offer draws in a fixed order so a seeded source reproduces the same list.
func (g *Generator) offer(n int, from, to string) models.Offer {
	airline := airlines[g.rnd.Intn(len(airlines))]
	flightNum := g.rnd.Intn(900) + 100
	stops := g.stops()
	basePrice := g.rnd.Intn(basePriceRange) + minBasePrice + stops*stopSurcharge

	depart := models.Clock{Hour: g.rnd.Intn(24), Minute: g.rnd.Intn(4) * 15}
	duration := models.Duration{
		Hours:   g.rnd.Intn(flightHourSpan) + minFlightHours + stops,
		Minutes: g.rnd.Intn(4) * 15,
	}

	return models.Offer{
		ID:           fmt.Sprintf("flight-%d", n),
		Airline:      airline,
		FlightNumber: fmt.Sprintf("%s%d", carrierCode(airline), flightNum),
		From:         from,
		To:           to,
		DepartTime:   depart,
		ArriveTime:   depart.Add(duration),
		Duration:     duration,
		BasePrice:    basePrice,
		Stops:        stops,
		Aircraft:     aircraft[g.rnd.Intn(len(aircraft))],
	}
}

// stops is 0 with p=0.6, otherwise 2 with p=0.2 and 1 with p=0.8.
func (g *Generator) stops() int {
	if g.rnd.Float64() <= 0.6 {
		return 0
	}
	if g.rnd.Float64() > 0.8 {
		return 2
	}
	return 1
}

// carrierCode is the first two letters of the airline's first word.
func carrierCode(airline string) string {
	word, _, _ := strings.Cut(airline, " ")
	if len(word) > 2 {
		word = word[:2]
	}
	return strings.ToUpper(word)
}
