// Package stock derives a pseudo-random daily stock figure per product so the
// storefront can show scarcity without tracking real inventory. The number is
// stable for a given product and calendar day and changes at UTC midnight.
package stock

import (
	"go.uber.org/fx"

	"github.com/itechperu/storefront/internal/clock"
)

type Calculator struct {
	clock clock.Clock
}

func NewCalculator(c clock.Clock) *Calculator {
	return &Calculator{clock: c}
}

// hashID folds the product id into a 32-bit value with wrapping arithmetic,
// matching the h = h*31 + c accumulator the storefront has always used so
// displayed stock stays identical across releases.
func hashID(id string) int64 {
	var h int32
	for _, c := range id {
		h = (h << 5) - h + int32(c)
	}
	v := int64(h)
	if v < 0 {
		return -v
	}
	return v
}

// Simulated returns today's displayed stock for a product. baseStock caps the
// figure; the result never drops below 1.
func (c *Calculator) Simulated(productID string, baseStock int) int {
	now := c.clock.Now().UTC()
	daySeed := int64(now.Year()*1000 + int(now.Month())*50 + now.Day())

	variation := int((daySeed + hashID(productID)) % 3)

	stock := baseStock - variation
	if stock < 1 {
		stock = 1
	}
	return stock
}

var Module = fx.Module("stock",
	fx.Provide(NewCalculator),
)
