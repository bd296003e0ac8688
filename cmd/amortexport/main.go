package main

import (
	"flag"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/zuoliang/QuantLib/bond"
	"github.com/zuoliang/QuantLib/calendar"
	"github.com/zuoliang/QuantLib/cashflow"
	"github.com/zuoliang/QuantLib/period"
	"github.com/zuoliang/QuantLib/utils"
)

const sheet = "Amortization"

func main() {
	face := flag.Float64("face", 1_000_000, "Initial face amount")
	start := flag.String("start", "", "Start date (YYYY-MM-DD)")
	tenor := flag.String("tenor", "5Y", "Bond tenor (e.g. 5Y, 18M)")
	freq := flag.String("freq", "semiannual", "Sinking frequency")
	coupon := flag.Float64("coupon", 0.05, "Annual coupon rate as a decimal")
	dayCount := flag.String("daycount", utils.Dc30360, "Day count convention")
	cal := flag.String("calendar", string(calendar.TARGET), "Payment calendar")
	out := flag.String("o", "schedule.xlsx", "Output spreadsheet path")
	flag.Parse()

	logger := logrus.New()
	if *start == "" {
		logger.Fatal("start date is required (-start YYYY-MM-DD)")
	}

	bondTenor, err := period.Parse(*tenor)
	if err != nil {
		logger.WithError(err).Fatal("parse tenor")
	}
	frequency, err := period.ParseFrequency(*freq)
	if err != nil {
		logger.WithError(err).Fatal("parse frequency")
	}

	b, err := bond.NewSinkingFundBond(bond.SinkingFundInput{
		SettlementDays:    2,
		Calendar:          calendar.CalendarID(*cal),
		InitialFaceAmount: *face,
		StartDate:         utils.DateParser(*start),
		BondTenor:         bondTenor,
		SinkingFrequency:  frequency,
		CouponRate:        *coupon,
		DayCount:          *dayCount,
		PaymentConvention: calendar.Following,
		IssueDate:         utils.DateParser(*start),
	})
	if err != nil {
		logger.WithError(err).Fatal("build bond")
	}

	if err := writeWorkbook(b, *out); err != nil {
		logger.WithError(err).Fatal("write workbook")
	}
	logger.WithFields(logrus.Fields{
		"path": *out,
		"rows": len(b.Cashflows()),
	}).Info("amortization schedule exported")
}

// writeWorkbook emits one row per payment date with coupon and principal
// in exact cents, plus running outstanding notional.
func writeWorkbook(b *bond.AmortizingFixedRateBond, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []any{"Pay date", "Coupon", "Principal", "Total", "Outstanding"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	rows := cashflow.ToCents(b.Cashflows())
	outstanding := decimal.NewFromFloat(0)
	if n, err := cashflow.InitialNotional(b.Cashflows()); err == nil {
		outstanding = decimal.NewFromFloat(n).Round(2)
	}

	for i, row := range rows {
		couponAmt := decimal.New(row.CouponCents, -2)
		principal := decimal.New(row.PrincipalCents, -2)
		outstanding = outstanding.Sub(principal)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			row.Date.Format("2006-01-02"),
			couponAmt.InexactFloat64(),
			principal.InexactFloat64(),
			couponAmt.Add(principal).InexactFloat64(),
			outstanding.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
