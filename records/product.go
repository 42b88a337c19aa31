package records

import (
	"fmt"
	"io"
)

// Product is an inventory record keyed by product code.
type Product struct {
	ID       int64
	Name     string
	Category string
	Brand    string
	Price    float64
	Stock    int
}

// NewProduct creates a product record. Negative price or stock are taken
// as zero.
func NewProduct(id int64, name, category, brand string, price float64, stock int) *Product {
	return &Product{ID: id, Name: name, Category: category, Brand: brand,
		Price: max(price, 0), Stock: max(stock, 0)}
}

// Key returns the product code.
func (p *Product) Key() int64 { return p.ID }

// SetPrice replaces the unit price. Negative prices are ignored.
func (p *Product) SetPrice(price float64) {
	if price >= 0 {
		p.Price = price
	}
}

// AddStock increases the stock by n. Non-positive n is ignored.
func (p *Product) AddStock(n int) {
	if n > 0 {
		p.Stock += n
	}
}

// RemoveStock decreases the stock by n. It returns false, leaving the stock
// unchanged, if n is not positive or exceeds the stock.
func (p *Product) RemoveStock(n int) bool {
	if n <= 0 || n > p.Stock {
		return false
	}
	p.Stock -= n
	return true
}

// Available reports whether the product is in stock.
func (p *Product) Available() bool { return p.Stock > 0 }

// StockValue is price times stock.
func (p *Product) StockValue() float64 {
	return p.Price * float64(p.Stock)
}

// Display writes p on a single line.
func (p *Product) Display(w io.Writer) {
	status := "available"
	if !p.Available() {
		status = "sold out"
	}
	fmt.Fprintf(w, "Product %6d  %s %s / %s  %s × %s = %s  %s", p.ID, pad(p.Name, NameWidth),
		p.Brand, p.Category, units(p.Stock), Money(p.Price), Money(p.StockValue()), status)
}
