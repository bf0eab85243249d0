package stock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/itechperu/storefront/internal/clock"
)

func TestSimulatedIsStableWithinADay(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC))
	calc := NewCalculator(fc)

	first := calc.Simulated("iphone-15-pro", 8)
	fc.Advance(6 * time.Hour)
	second := calc.Simulated("iphone-15-pro", 8)

	assert.Equal(t, first, second)
}

func TestSimulatedVariesWithin3OfBase(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC))
	calc := NewCalculator(fc)

	ids := []string{"iphone-15-pro", "galaxy-s24-ultra", "macbook-air-m3", "ipad-pro-13"}
	for _, id := range ids {
		got := calc.Simulated(id, 10)
		assert.GreaterOrEqual(t, got, 8, id)
		assert.LessOrEqual(t, got, 10, id)
	}
}

func TestSimulatedNeverBelowOne(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC))
	calc := NewCalculator(fc)

	for day := 0; day < 10; day++ {
		got := calc.Simulated("low-stock-item", 1)
		assert.Equal(t, 1, got)
		fc.Advance(24 * time.Hour)
	}
}

func TestSimulatedChangesAtUTCMidnight(t *testing.T) {
	fc := clock.NewFakeClock(time.Date(2026, time.March, 14, 23, 30, 0, 0, time.UTC))
	calc := NewCalculator(fc)

	// Day seeds for consecutive days differ by 1, so over three days the
	// adjustment cycles through all residues mod 3.
	seen := map[int]bool{}
	for day := 0; day < 3; day++ {
		seen[calc.Simulated("iphone-15-pro", 10)] = true
		fc.Advance(24 * time.Hour)
	}
	assert.Len(t, seen, 3)
}

func TestHashIDIsNonNegative(t *testing.T) {
	for _, id := range []string{"", "a", "iphone-15-pro", "producto-con-ñ"} {
		assert.GreaterOrEqual(t, hashID(id), int64(0), id)
	}
}
