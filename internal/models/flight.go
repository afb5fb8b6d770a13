package models

import "fmt"

// Clock is a time of day without a date. Date rollover is not tracked.
type Clock struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Add shifts the clock by d, wrapping hours mod 24 and minutes mod 60
// independently. A minute overflow does not carry into the hour.
func (c Clock) Add(d Duration) Clock {
	return Clock{
		Hour:   (c.Hour + d.Hours) % 24,
		Minute: (c.Minute + d.Minutes) % 60,
	}
}

type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

func (d Duration) String() string {
	return fmt.Sprintf("%dh %dm", d.Hours, d.Minutes)
}

// Offer is a single generated flight option.
type Offer struct {
	ID           string   `json:"id"`
	Airline      string   `json:"airline"`
	FlightNumber string   `json:"flight_number"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	DepartTime   Clock    `json:"depart_time"`
	ArriveTime   Clock    `json:"arrive_time"`
	Duration     Duration `json:"duration"`
	BasePrice    int      `json:"base_price"`
	Stops        int      `json:"stops"`
	Aircraft     string   `json:"aircraft"`
}

// PricedOffer pairs an offer with the price for the searched class.
type PricedOffer struct {
	Offer Offer     `json:"offer"`
	Class FareClass `json:"class"`
	Price int       `json:"price"`
}

type Destination struct {
	Code    string `json:"code" yaml:"code"`
	Name    string `json:"name" yaml:"name"`
	Country string `json:"country" yaml:"country"`
}
