package allowance

import (
	"github.com/shopspring/decimal"

	"allowance-engine/internal/model"
)

// BaseRate resolves the un-uplifted nightly rate. Aboriginal Land short
// circuits to the fixed daily rate; unknown accommodation types price at 0.
func (c *Calculator) BaseRate(travelType model.TravelType, accType model.AccommodationType, approved bool) decimal.Decimal {
	if travelType == model.TravelAboriginalLand {
		return c.table.AboriginalLandDailyRate
	}

	rates := c.table.Accommodation
	switch accType {
	case model.AccommodationCTM:
		return rates.CTM.For(travelType)
	case model.AccommodationPrivate:
		return rates.Private.For(travelType)
	case model.AccommodationSelfBooked:
		if approved {
			return rates.SelfBookedApproved.For(travelType)
		}
		return rates.SelfBookedUnapproved.For(travelType)
	default:
		return decimal.Zero
	}
}

// ApplyUplifts compounds the remote, substandard and (optionally)
// short-notice multipliers onto base and rounds to cents.
func (c *Calculator) ApplyUplifts(base decimal.Decimal, spec model.AccommodationSpec, withShortNotice bool) decimal.Decimal {
	up := c.table.Uplifts
	rate := base
	if spec.IsRemote {
		rate = rate.Mul(up.Remote)
	}
	if spec.IsSubstandard {
		rate = rate.Mul(up.Substandard)
	}
	if withShortNotice && spec.IsShortNotice {
		rate = rate.Mul(up.ShortNotice)
	}
	return roundCents(rate)
}

// NightlyRates returns the rate for the first night and for every other
// night. They differ only when short notice is limited to the first night.
func (c *Calculator) NightlyRates(travelType model.TravelType, spec model.AccommodationSpec) (first, rest decimal.Decimal) {
	base := c.BaseRate(travelType, spec.Type, spec.Approved)
	if travelType == model.TravelAboriginalLand {
		rate := roundCents(base)
		return rate, rate
	}

	if spec.IsShortNotice && spec.ShortNoticeFirstNightOnly {
		return c.ApplyUplifts(base, spec, true), c.ApplyUplifts(base, spec, false)
	}
	rate := c.ApplyUplifts(base, spec, true)
	return rate, rate
}

// AccommodationTotal prices the stay. Aboriginal Land is paid per day
// (nights + 1) whether or not accommodation was booked.
func (c *Calculator) AccommodationTotal(travelType model.TravelType, spec model.AccommodationSpec, businessNights int) decimal.Decimal {
	if travelType == model.TravelAboriginalLand {
		days := decimal.NewFromInt(int64(max(businessNights, 0) + 1))
		return roundCents(c.table.AboriginalLandDailyRate.Mul(days))
	}

	nights := max(spec.Nights, 0)
	if !spec.Required || nights == 0 {
		return decimal.Zero
	}

	first, rest := c.NightlyRates(travelType, spec)
	total := first.Add(rest.Mul(decimal.NewFromInt(int64(nights - 1))))
	return roundCents(total)
}

func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
