package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"atrika/internal/events"
	"atrika/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBookingService(t *testing.T) (*BookingService, *mockPublisher) {
	t.Helper()
	store, _ := newTestSession(t)
	pub := new(mockPublisher)
	svc := NewBookingService(store, fixedSeats{}, pub, testLogger())
	return svc, pub
}

func TestBookingService_Book(t *testing.T) {
	ctx := context.Background()
	svc, pub := newTestBookingService(t)
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)
	svc.newID = func() string { return "b1" }

	pub.On("PublishJSON", events.EventBookingCreated, mock.MatchedBy(func(p events.BookingEventPayload) bool {
		return p.BookingID == "b1" && p.Price == 70000 && p.Status == models.StatusUpcoming
	})).Return(nil).Once()

	booking, err := svc.Book(ctx, sampleOffer(), models.ClassFirst, 2)
	require.NoError(t, err)

	assert.Equal(t, "b1", booking.ID)
	assert.Equal(t, 70000, booking.Price)
	assert.Equal(t, models.ClassFirst, booking.Class)
	assert.Equal(t, 2, booking.Passengers)
	assert.Equal(t, models.StatusUpcoming, booking.Status)
	assert.Equal(t, now, booking.BookingDate)
	assert.Equal(t, "12C", booking.SeatNumber)
	assert.Equal(t, "A7", booking.Gate)
	assert.Equal(t, "VI512", booking.FlightNumber)

	stored := svc.List(ctx, models.BookingFilter{})
	require.Len(t, stored, 1)
	assert.Equal(t, *booking, stored[0])
	pub.AssertExpectations(t)
}

func TestBookingService_BookDefaults(t *testing.T) {
	svc, pub := newTestBookingService(t)
	pub.On("PublishJSON", mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Book(context.Background(), sampleOffer(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, models.ClassEconomy, booking.Class)
	assert.Equal(t, 1, booking.Passengers)
	assert.Equal(t, 20000, booking.Price)
	assert.NotEmpty(t, booking.ID)
}

func TestBookingService_BookInvalidOffer(t *testing.T) {
	svc, pub := newTestBookingService(t)

	_, err := svc.Book(context.Background(), models.Offer{}, models.ClassEconomy, 1)
	assert.ErrorIs(t, err, ErrInvalidOffer)
	assert.Empty(t, svc.List(context.Background(), models.BookingFilter{}))
	pub.AssertNotCalled(t, "PublishJSON", mock.Anything, mock.Anything)
}

func TestBookingService_PublishErrorDoesNotFail(t *testing.T) {
	svc, pub := newTestBookingService(t)
	pub.On("PublishJSON", mock.Anything, mock.Anything).Return(fmt.Errorf("bus closed"))

	_, err := svc.Book(context.Background(), sampleOffer(), models.ClassEconomy, 1)
	assert.NoError(t, err)
}

func TestBookingService_NilEventBus(t *testing.T) {
	store, _ := newTestSession(t)
	svc := NewBookingService(store, fixedSeats{}, nil, testLogger())

	_, err := svc.Book(context.Background(), sampleOffer(), models.ClassPremium, 1)
	assert.NoError(t, err)
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()
	svc, pub := newTestBookingService(t)
	pub.On("PublishJSON", mock.Anything, mock.Anything).Return(nil)

	ids := []string{"b1", "b2"}
	i := 0
	svc.newID = func() string { id := ids[i]; i++; return id }
	_, err := svc.Book(ctx, sampleOffer(), models.ClassEconomy, 1)
	require.NoError(t, err)
	_, err = svc.Book(ctx, sampleOffer(), models.ClassBusiness, 1)
	require.NoError(t, err)

	t.Run("CancelsOnlyTarget", func(t *testing.T) {
		require.NoError(t, svc.Cancel(ctx, "b1"))

		b1, err := svc.Get(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, b1.Status)

		b2, err := svc.Get(ctx, "b2")
		require.NoError(t, err)
		assert.Equal(t, models.StatusUpcoming, b2.Status)
		assert.Equal(t, 44000, b2.Price)
	})

	t.Run("SecondCancelIsNoop", func(t *testing.T) {
		assert.NoError(t, svc.Cancel(ctx, "b1"))
	})

	t.Run("UnknownID", func(t *testing.T) {
		assert.ErrorIs(t, svc.Cancel(ctx, "missing"), ErrBookingNotFound)
		assert.True(t, IsNotFound(svc.Cancel(ctx, "missing")))
	})

	pub.AssertNumberOfCalls(t, "PublishJSON", 3)
}

func TestBookingService_CancelCompleted(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestBookingService(t)

	svc.store.AppendBooking(ctx, models.Booking{ID: "old", Offer: sampleOffer(), Status: models.StatusCompleted})

	assert.ErrorIs(t, svc.Cancel(ctx, "old"), ErrBookingNotCancellable)
	b, err := svc.Get(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, b.Status)
}

func TestBookingService_List(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestBookingService(t)

	day1 := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 2, 7, 0, 0, 0, time.UTC)
	for _, b := range []models.Booking{
		{ID: "a", Price: 15000, Status: models.StatusUpcoming, BookingDate: day1},
		{ID: "b", Price: 90000, Status: models.StatusCancelled, BookingDate: day2},
		{ID: "c", Price: 30000, Status: models.StatusUpcoming, BookingDate: day1.Add(3 * time.Hour)},
	} {
		svc.store.AppendBooking(ctx, b)
	}

	idsOf := func(bs []models.Booking) []string {
		out := make([]string, len(bs))
		for i, b := range bs {
			out[i] = b.ID
		}
		return out
	}

	tests := []struct {
		name   string
		filter models.BookingFilter
		want   []string
	}{
		{"newest", models.BookingFilter{SortBy: SortNewest}, []string{"b", "c", "a"}},
		{"price", models.BookingFilter{SortBy: SortPrice}, []string{"b", "c", "a"}},
		{"date keeps same-day order", models.BookingFilter{SortBy: SortDate}, []string{"b", "a", "c"}},
		{"unknown sort is newest", models.BookingFilter{SortBy: "airline"}, []string{"b", "c", "a"}},
		{"status filter", models.BookingFilter{Status: models.StatusUpcoming, SortBy: SortPrice}, []string{"c", "a"}},
		{"all", models.BookingFilter{Status: StatusAll}, []string{"b", "c", "a"}},
		{"no match", models.BookingFilter{Status: models.StatusCompleted}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, idsOf(svc.List(ctx, tt.filter)))
		})
	}
}

func TestBookingService_SeatAndGateStable(t *testing.T) {
	ctx := context.Background()
	svc, pub := newTestBookingService(t)
	pub.On("PublishJSON", mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Book(ctx, sampleOffer(), models.ClassEconomy, 1)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := svc.Get(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.SeatNumber, got.SeatNumber)
		assert.Equal(t, booking.Gate, got.Gate)
	}
}
