package allowance

import (
	"github.com/shopspring/decimal"

	"allowance-engine/internal/model"
)

// FBTApplicable reports whether fringe benefits tax applies: every
// classification except short stay, and never on Aboriginal Land.
func FBTApplicable(travelType model.TravelType, isAboriginalLand bool) bool {
	return travelType != model.TravelShortStay &&
		travelType != model.TravelAboriginalLand &&
		!isAboriginalLand
}

// ReceiptRequired reports whether receipts must accompany the claim.
// Self-booked accommodation always needs them.
func (c *Calculator) ReceiptRequired(accType model.AccommodationType, total decimal.Decimal) bool {
	if accType == model.AccommodationSelfBooked {
		return true
	}
	return total.GreaterThan(c.table.ReceiptThreshold)
}
