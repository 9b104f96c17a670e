package allowance

import (
	"github.com/shopspring/decimal"

	"allowance-engine/internal/model"
)

// SAPInput is the slice of a calculation the code selector looks at.
type SAPInput struct {
	TravelType        model.TravelType
	IsAboriginalLand  bool
	Meals             decimal.Decimal
	BreakfastEligible bool
	IsRemote          bool
	Vehicle           decimal.Decimal
}

// SAPCodes selects the payroll line items for a calculation, in emission
// order and without duplicates. Aboriginal Land trips are paid only under
// OR12/OR13.
func (c *Calculator) SAPCodes(in SAPInput) []model.SAPCode {
	if in.IsAboriginalLand || in.TravelType == model.TravelAboriginalLand {
		return []model.SAPCode{model.SAPAboriginalLandsAllowance, model.SAPAboriginalLandsBonus}
	}

	var codes codeList
	switch in.TravelType {
	case model.TravelShortStay:
		codes.add(model.SAPTravelAllowance)
	case model.TravelLongStay:
		codes.add(model.SAPLAFHAStandard)
	case model.TravelReportableLAFHA:
		codes.add(model.SAPReportableLAFHA)
	}

	if in.Meals.IsPositive() {
		codes.add(model.SAPStandardMeals)
		if in.BreakfastEligible {
			codes.add(model.SAPBreakfastSupplement)
		}
		if in.IsRemote && c.table.Meals.RemoteSupplement {
			codes.add(model.SAPRemoteMealSupplement)
		}
	}

	if in.Vehicle.IsPositive() {
		codes.add(model.SAPVehicleAllowance)
	}

	if codes == nil {
		return []model.SAPCode{}
	}
	return codes
}

type codeList []model.SAPCode

func (l *codeList) add(code model.SAPCode) {
	for _, c := range *l {
		if c == code {
			return
		}
	}
	*l = append(*l, code)
}
