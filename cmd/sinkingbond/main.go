package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/zuoliang/QuantLib/bond"
	"github.com/zuoliang/QuantLib/calendar"
	"github.com/zuoliang/QuantLib/marketdata/holidays"
	"github.com/zuoliang/QuantLib/period"
	"github.com/zuoliang/QuantLib/utils"
)

func main() {
	face := flag.Float64("face", 1_000_000, "Initial face amount")
	start := flag.String("start", "", "Start date (YYYY-MM-DD)")
	tenor := flag.String("tenor", "5Y", "Bond tenor (e.g. 5Y, 18M)")
	freq := flag.String("freq", "semiannual", "Sinking frequency (annual|semiannual|quarterly|bimonthly|monthly|weekly)")
	coupon := flag.Float64("coupon", 0.05, "Annual coupon rate as a decimal (0.05 = 5%)")
	dayCount := flag.String("daycount", utils.Dc30360, "Day count convention")
	cal := flag.String("calendar", string(calendar.TARGET), "Payment calendar")
	settle := flag.Int("settle", 2, "Settlement days")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *start == "" {
		logger.Fatal("start date is required (-start YYYY-MM-DD)")
	}

	// Optional holiday DB: HOLIDAY_DB_DSN in the environment or a .env file.
	_ = godotenv.Load()
	if dsn := os.Getenv("HOLIDAY_DB_DSN"); dsn != "" {
		ctx := context.Background()
		feed, err := holidays.OpenPostgres(ctx, dsn)
		if err != nil {
			logger.WithError(err).Fatal("connect holiday database")
		}
		defer feed.Close()
		if err := holidays.Install(ctx, feed, calendar.CalendarID(*cal)); err != nil {
			logger.WithError(err).Fatal("load holidays")
		}
		logger.WithField("calendar", *cal).Info("holidays loaded from database")
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
		SettlementDays:    *settle,
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

	logger.WithFields(logrus.Fields{
		"maturity":  b.MaturityDate().Format("2006-01-02"),
		"frequency": b.Frequency().String(),
		"periods":   len(b.AmortizationTable()),
	}).Info("sinking fund bond built")

	fmt.Printf("%-8s %-12s %16s %14s %14s %14s\n",
		"Period", "Pay date", "Notional", "Interest", "Principal", "Total")
	for _, row := range b.AmortizationTable() {
		fmt.Printf("%-8d %-12s %16.2f %14.2f %14.2f %14.2f\n",
			row.Period,
			row.PaymentDate.Format("2006-01-02"),
			row.Notional,
			row.Interest,
			row.Principal,
			row.Total(),
		)
	}
}
