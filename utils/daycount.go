package utils

import (
	"time"
)

// Day count conventions accepted by YearFraction.
const (
	Act360  = "ACT/360"
	Act365F = "ACT/365F"
	ActAct  = "ACT/ACT"
	Dc30360 = "30/360"
	DcE360  = "30E/360"
)

// YearFraction computes the accrual fraction between two dates under the
// given day count convention. Unrecognized conventions fall back to
// ACT/365F.
func YearFraction(start, end time.Time, convention string) float64 {
	switch convention {
	case Act360:
		return Days(start, end) / 360.0
	case Act365F:
		return Days(start, end) / 365.0
	case ActAct:
		// ACT/ACT ISDA: split the accrual at year boundaries, weighting
		// each piece by its own year length.
		if !start.Before(end) {
			return 0
		}
		frac := 0.0
		for y := start.Year(); y <= end.Year(); y++ {
			s := time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
			e := time.Date(y+1, 1, 1, 0, 0, 0, 0, time.UTC)
			if s.Before(start) {
				s = start
			}
			if e.After(end) {
				e = end
			}
			if !s.Before(e) {
				continue
			}
			frac += Days(s, e) / yearLength(y)
		}
		return frac
	case DcE360, Dc30360:
		// 30E/360 ISDA (Eurobond basis): D1 and D2 are capped at 30.
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
	default:
		return Days(start, end) / 365.0
	}
}

func yearLength(y int) float64 {
	if (y%4 == 0 && y%100 != 0) || y%400 == 0 {
		return 366.0
	}
	return 365.0
}
