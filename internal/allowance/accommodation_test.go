package allowance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"allowance-engine/internal/model"
)

func TestBaseRate(t *testing.T) {
	c := Default()
	tests := []struct {
		name     string
		travel   model.TravelType
		accType  model.AccommodationType
		approved bool
		want     string
	}{
		{"ctm short stay", model.TravelShortStay, model.AccommodationCTM, false, "148.70"},
		{"ctm long stay", model.TravelLongStay, model.AccommodationCTM, false, "268.34"},
		{"ctm reportable", model.TravelReportableLAFHA, model.AccommodationCTM, false, "289.70"},
		{"private is flat", model.TravelLongStay, model.AccommodationPrivate, false, "95.00"},
		{"private reportable", model.TravelReportableLAFHA, model.AccommodationPrivate, true, "95.00"},
		{"self booked approved short", model.TravelShortStay, model.AccommodationSelfBooked, true, "159.50"},
		{"self booked approved long", model.TravelLongStay, model.AccommodationSelfBooked, true, "285.00"},
		{"self booked approved reportable", model.TravelReportableLAFHA, model.AccommodationSelfBooked, true, "285.00"},
		{"self booked unapproved short", model.TravelShortStay, model.AccommodationSelfBooked, false, "148.70"},
		{"self booked unapproved reportable", model.TravelReportableLAFHA, model.AccommodationSelfBooked, false, "289.70"},
		{"aboriginal land ignores type", model.TravelAboriginalLand, model.AccommodationPrivate, false, "280.00"},
		{"aboriginal land with no accommodation", model.TravelAboriginalLand, model.AccommodationNone, false, "280.00"},
		{"none", model.TravelShortStay, model.AccommodationNone, false, "0"},
		{"unknown type", model.TravelShortStay, model.AccommodationType("hotel"), true, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAmount(t, tt.want, c.BaseRate(tt.travel, tt.accType, tt.approved))
		})
	}
}

func TestApplyUplifts(t *testing.T) {
	c := flatRateCalculator("100.00")
	base := c.BaseRate(model.TravelShortStay, model.AccommodationCTM, false)

	assertAmount(t, "120.00", c.ApplyUplifts(base, model.AccommodationSpec{IsRemote: true}, true))
	assertAmount(t, "138.00", c.ApplyUplifts(base, model.AccommodationSpec{IsRemote: true, IsSubstandard: true}, true))
	assertAmount(t, "151.80", c.ApplyUplifts(base, model.AccommodationSpec{IsRemote: true, IsSubstandard: true, IsShortNotice: true}, true))
	assertAmount(t, "138.00", c.ApplyUplifts(base, model.AccommodationSpec{IsRemote: true, IsSubstandard: true, IsShortNotice: true}, false))

	// 148.70 x 1.2 x 1.15 = 205.206
	d := Default()
	assertAmount(t, "205.21", d.ApplyUplifts(d.BaseRate(model.TravelShortStay, model.AccommodationCTM, false),
		model.AccommodationSpec{IsRemote: true, IsSubstandard: true}, true))
}

func TestAccommodationTotal(t *testing.T) {
	c := flatRateCalculator("100.00")
	stay := func(nights int, mutate func(*model.AccommodationSpec)) model.AccommodationSpec {
		spec := model.AccommodationSpec{Required: true, Type: model.AccommodationCTM, Nights: nights}
		if mutate != nil {
			mutate(&spec)
		}
		return spec
	}

	tests := []struct {
		name   string
		travel model.TravelType
		spec   model.AccommodationSpec
		nights int
		want   string
	}{
		{
			name:   "no uplifts",
			travel: model.TravelShortStay,
			spec:   stay(3, nil),
			nights: 3,
			want:   "300.00",
		},
		{
			name:   "short notice on first night only",
			travel: model.TravelShortStay,
			spec: stay(3, func(s *model.AccommodationSpec) {
				s.IsShortNotice = true
				s.ShortNoticeFirstNightOnly = true
			}),
			nights: 3,
			want:   "310.00",
		},
		{
			name:   "short notice on every night",
			travel: model.TravelShortStay,
			spec:   stay(3, func(s *model.AccommodationSpec) { s.IsShortNotice = true }),
			nights: 3,
			want:   "330.00",
		},
		{
			name:   "first night only stacks with remote",
			travel: model.TravelShortStay,
			spec: stay(2, func(s *model.AccommodationSpec) {
				s.IsRemote = true
				s.IsShortNotice = true
				s.ShortNoticeFirstNightOnly = true
			}),
			nights: 2,
			want:   "252.00",
		},
		{
			name:   "first night only policy without short notice",
			travel: model.TravelShortStay,
			spec:   stay(2, func(s *model.AccommodationSpec) { s.ShortNoticeFirstNightOnly = true }),
			nights: 2,
			want:   "200.00",
		},
		{
			name:   "single night short notice first night only",
			travel: model.TravelShortStay,
			spec: stay(1, func(s *model.AccommodationSpec) {
				s.IsShortNotice = true
				s.ShortNoticeFirstNightOnly = true
			}),
			nights: 1,
			want:   "110.00",
		},
		{
			name:   "zero nights",
			travel: model.TravelShortStay,
			spec:   stay(0, func(s *model.AccommodationSpec) { s.IsShortNotice = true; s.ShortNoticeFirstNightOnly = true }),
			nights: 0,
			want:   "0",
		},
		{
			name:   "negative nights",
			travel: model.TravelShortStay,
			spec:   stay(-2, nil),
			nights: 0,
			want:   "0",
		},
		{
			name:   "not required",
			travel: model.TravelShortStay,
			spec:   stay(4, func(s *model.AccommodationSpec) { s.Required = false }),
			nights: 4,
			want:   "0",
		},
		{
			name:   "unknown accommodation type",
			travel: model.TravelShortStay,
			spec:   stay(4, func(s *model.AccommodationSpec) { s.Type = "hotel" }),
			nights: 4,
			want:   "0",
		},
		{
			name:   "aboriginal land is paid per day without uplifts",
			travel: model.TravelAboriginalLand,
			spec: stay(3, func(s *model.AccommodationSpec) {
				s.IsRemote = true
				s.IsSubstandard = true
				s.IsShortNotice = true
			}),
			nights: 3,
			want:   "1120.00",
		},
		{
			name:   "aboriginal land without booked accommodation",
			travel: model.TravelAboriginalLand,
			spec:   model.AccommodationSpec{},
			nights: 0,
			want:   "280.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertAmount(t, tt.want, c.AccommodationTotal(tt.travel, tt.spec, tt.nights))
		})
	}
}

func TestNightlyRates(t *testing.T) {
	c := flatRateCalculator("100.00")

	first, rest := c.NightlyRates(model.TravelShortStay, model.AccommodationSpec{
		Type:                      model.AccommodationCTM,
		IsShortNotice:             true,
		ShortNoticeFirstNightOnly: true,
	})
	assertAmount(t, "110.00", first)
	assertAmount(t, "100.00", rest)

	first, rest = c.NightlyRates(model.TravelAboriginalLand, model.AccommodationSpec{IsRemote: true})
	assertAmount(t, "280.00", first)
	assert.True(t, first.Equal(rest))
}
