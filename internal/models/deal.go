package models

import "time"

type Deal struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title" yaml:"title"`
	Route           string    `json:"route" yaml:"route"`
	OriginalPrice   int       `json:"original_price" yaml:"original_price"`
	DiscountedPrice int       `json:"discounted_price" yaml:"discounted_price"`
	Discount        int       `json:"discount" yaml:"discount"`
	Airline         string    `json:"airline" yaml:"airline"`
	ValidUntil      time.Time `json:"valid_until" yaml:"valid_until"`
	Category        string    `json:"category" yaml:"category"`
	IsFlashSale     bool      `json:"is_flash_sale,omitempty" yaml:"is_flash_sale"`
	IsTrending      bool      `json:"is_trending,omitempty" yaml:"is_trending"`
	IsNew           bool      `json:"is_new,omitempty" yaml:"is_new"`
}

type Banner struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Route    string `json:"route" yaml:"route"`
	Price    string `json:"price" yaml:"price"`
	Validity string `json:"validity" yaml:"validity"`
}

// DealCountdown is the remaining time on a deal at some instant.
type DealCountdown struct {
	DealID    string        `json:"deal_id"`
	Remaining time.Duration `json:"remaining"`
	Label     string        `json:"label"`
}
