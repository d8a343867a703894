package shop

import (
	"time"

	"example.com/shop/billing"
)

// Status tracks an order through fulfilment.
type Status int

const (
	// StatusOpen orders can still change.
	StatusOpen Status = iota
	StatusShipped
	StatusCancelled
)

type Priority uint8

const (
	PriorityLow Priority = iota + 1
	PriorityHigh
)

// Line is a single article of an order.
type Line struct {
	Sku string
	Qty int
}

// Order is a customer purchase.
type Order struct {
	// ID is assigned on checkout.
	ID       int64
	Status   Status
	Priority Priority
	Placed   time.Time
	Lines    []Line
	Tags     map[string]string
	Invoice  *billing.Invoice
	Notify   chan string
	Internal string  `json:"-"`
	Total    float64 `csforge:"Amount"`
	secret   string
}

type Audited struct {
	Order
	By string
}

type Page[T any] struct {
	Items []T
	Next  *int
}

type helper struct{ X int }

func unused() helper {
	type Local struct{ A int }
	return helper{X: Local{}.A}
}
