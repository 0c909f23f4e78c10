package cart

// LineTotal computes price * (1 - discount/100) * quantity. A discount of
// 100 yields a zero-price line, which is accepted rather than rejected.
func LineTotal(price, discount float64, quantity int) float64 {
	final := price - (price * discount / 100)
	return final * float64(quantity)
}

// ValidDiscount reports whether a discount percent is within [0, 100].
func ValidDiscount(discount float64) bool {
	return discount >= 0 && discount <= 100
}

// ValidQuantity reports whether a quantity is a positive integer.
func ValidQuantity(quantity int) bool {
	return quantity >= 1
}
