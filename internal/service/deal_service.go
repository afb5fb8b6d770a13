package service

import (
	"time"

	"atrika/internal/display"
	"atrika/internal/models"

	"github.com/rs/zerolog"
)

// DefaultBudget is the slider position the deals page opens with.
const DefaultBudget = 50000

type DealService struct {
	deals   []models.Deal
	banners []models.Banner
	rotator *display.Rotator
	logger  *zerolog.Logger
	now     func() time.Time
}

// NewDealService falls back to the built-in catalog for an empty deals or
// banners list.
func NewDealService(deals []models.Deal, banners []models.Banner, bannerInterval time.Duration, logger *zerolog.Logger) *DealService {
	if len(deals) == 0 {
		deals = DefaultDeals()
	}
	if len(banners) == 0 {
		banners = DefaultBanners()
	}
	return &DealService{
		deals:   deals,
		banners: banners,
		rotator: display.NewRotator(len(banners), bannerInterval, logger),
		logger:  logger,
		now:     time.Now,
	}
}

// Deals keeps the deals whose discounted price fits budget. A budget of
// zero or less means no limit.
func (s *DealService) Deals(budget int) []models.Deal {
	out := make([]models.Deal, 0, len(s.deals))
	for _, d := range s.deals {
		if budget <= 0 || d.DiscountedPrice <= budget {
			out = append(out, d)
		}
	}
	return out
}

func (s *DealService) Countdowns() []models.DealCountdown {
	now := s.now()
	out := make([]models.DealCountdown, 0, len(s.deals))
	for _, d := range s.deals {
		left := display.TimeLeft(now, d.ValidUntil)
		out = append(out, models.DealCountdown{
			DealID:    d.ID,
			Remaining: left,
			Label:     display.FormatTimeLeft(left),
		})
	}
	return out
}

func (s *DealService) CurrentBanner() models.Banner {
	return s.banners[s.rotator.Current()%len(s.banners)]
}

// Rotator drives the banner; the caller starts it.
func (s *DealService) Rotator() *display.Rotator {
	return s.rotator
}
