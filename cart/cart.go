// Package cart holds the order-entry cart and the pricing rules applied to
// its line items. The same arithmetic runs on the client form; this package
// is the authoritative server-side copy used when an order is persisted.
package cart

import "errors"

var ErrInsufficientCash = errors.New("cash received is less than the order total")

// LineItem is one product entry in the cart with its own quantity and
// discount. Price is the unit price at the time the item was added.
type LineItem struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount"`
}

// Total is the line total for this item.
func (li LineItem) Total() float64 {
	return LineTotal(li.Price, li.Discount, li.Quantity)
}

// Cart is an ordered sequence of line items. Adding the same product twice
// yields two separate lines; there is no capacity limit.
type Cart struct {
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

// Add appends a line item to the end of the cart.
func (c *Cart) Add(item LineItem) {
	c.items = append(c.items, item)
}

// Remove deletes the line item at the given position. Out-of-range indexes
// are ignored.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// SetAll replaces the whole sequence, used to clear the cart after a
// submission or to rehydrate it when viewing an existing order.
func (c *Cart) SetAll(items []LineItem) {
	c.items = items
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []LineItem {
	return c.items
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Total is the sum of all line totals.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Total()
	}
	return total
}

// Change returns the change due for the tendered cash amount, or
// ErrInsufficientCash when the cash does not cover the total.
func (c *Cart) Change(cashReceived float64) (float64, error) {
	total := c.Total()
	if cashReceived < total {
		return 0, ErrInsufficientCash
	}
	return cashReceived - total, nil
}
