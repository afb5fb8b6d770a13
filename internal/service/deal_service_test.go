package service

import (
	"testing"
	"time"

	"atrika/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealService_Deals(t *testing.T) {
	svc := NewDealService(nil, nil, 4*time.Second, testLogger())

	tests := []struct {
		budget int
		want   int
	}{
		{DefaultBudget, 5},
		{10000, 2},
		{6299, 1},
		{6000, 0},
		{0, 8},
		{100000, 8},
	}
	for _, tt := range tests {
		got := svc.Deals(tt.budget)
		assert.Len(t, got, tt.want, "budget %d", tt.budget)
		for _, d := range got {
			if tt.budget > 0 {
				assert.LessOrEqual(t, d.DiscountedPrice, tt.budget)
			}
		}
	}
}

func TestDealService_Countdowns(t *testing.T) {
	until := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	deals := []models.Deal{
		{ID: "live", DiscountedPrice: 100, ValidUntil: until},
		{ID: "expired", DiscountedPrice: 100, ValidUntil: until.AddDate(0, -1, 0)},
	}
	svc := NewDealService(deals, nil, time.Second, testLogger())
	svc.now = fixedClock(time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC))

	got := svc.Countdowns()
	require.Len(t, got, 2)
	assert.Equal(t, models.DealCountdown{DealID: "live", Remaining: 52 * time.Hour, Label: "2d 4h"}, got[0])
	assert.Equal(t, models.DealCountdown{DealID: "expired", Remaining: 0, Label: "0m 0s"}, got[1])
}

func TestDealService_Banner(t *testing.T) {
	svc := NewDealService(nil, nil, time.Second, testLogger())

	assert.Equal(t, "banner1", svc.CurrentBanner().ID)
	svc.Rotator().Advance()
	assert.Equal(t, "banner2", svc.CurrentBanner().ID)
	svc.Rotator().Advance()
	svc.Rotator().Advance()
	assert.Equal(t, "banner1", svc.CurrentBanner().ID)
}

func TestDefaultCatalog(t *testing.T) {
	deals := DefaultDeals()
	require.Len(t, deals, 8)
	seen := map[string]bool{}
	for _, d := range deals {
		assert.False(t, seen[d.ID], d.ID)
		seen[d.ID] = true
		assert.Less(t, d.DiscountedPrice, d.OriginalPrice, d.ID)
	}
	assert.Len(t, DefaultBanners(), 3)
}
