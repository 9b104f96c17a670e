package allowance

import (
	"math"

	"github.com/shopspring/decimal"
)

// VehicleAllowance pays the per-km rate for private vehicle use, but only
// when departing from an approved location (EA 7.4.1).
func (c *Calculator) VehicleAllowance(usePrivateVehicle bool, estimatedKm float64, departingFromApprovedLocation bool) decimal.Decimal {
	if !usePrivateVehicle || !departingFromApprovedLocation {
		return decimal.Zero
	}
	if estimatedKm <= 0 || math.IsNaN(estimatedKm) || math.IsInf(estimatedKm, 0) {
		return decimal.Zero
	}
	return roundCents(decimal.NewFromFloat(estimatedKm).Mul(c.table.VehicleKmRate))
}
