package allowance

import "allowance-engine/internal/model"

// Classify returns the travel type for a trip. cumulativeDays must already
// include the nights of the trip being classified. Aboriginal Land takes
// precedence over every duration rule.
func (c *Calculator) Classify(nights, cumulativeDays int, isAboriginalLand bool) model.TravelType {
	if isAboriginalLand {
		return model.TravelAboriginalLand
	}

	nights = max(nights, 0)
	cumulativeDays = max(cumulativeDays, 0)
	th := c.table.Classification

	switch {
	case nights >= th.ReportableNights:
		return model.TravelReportableLAFHA
	case nights >= th.LongStayNights || cumulativeDays >= th.LongStayCumulativeDays:
		return model.TravelLongStay
	default:
		return model.TravelShortStay
	}
}

// BusinessNights counts the calendar nights between departure and return
// dates, less the declared personal travel dates. Only distinct, well formed
// personal dates inside the trip window are deducted. Missing or malformed
// trip dates yield 0.
func BusinessNights(w model.TripWindow) int {
	dep, ok := ParseDate(w.DepartureDate)
	if !ok {
		return 0
	}
	ret, ok := ParseDate(w.ReturnDate)
	if !ok {
		return 0
	}

	nights := daysBetween(dep, ret)
	if nights <= 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(w.PersonalTravelDates))
	for _, raw := range w.PersonalTravelDates {
		d, ok := ParseDate(raw)
		if !ok || d.Before(dep) || d.After(ret) {
			continue
		}
		key := d.Format("2006-01-02")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
	}

	return max(nights-len(seen), 0)
}
