package main

import (
	"fmt"
	"time"

	"github.com/zuoliang/QuantLib/bond"
	"github.com/zuoliang/QuantLib/calendar"
	"github.com/zuoliang/QuantLib/period"
	"github.com/zuoliang/QuantLib/utils"
)

func main() {
	b, err := bond.NewSinkingFundBond(bond.SinkingFundInput{
		SettlementDays:    2,
		Calendar:          calendar.TARGET,
		InitialFaceAmount: 1_000_000,
		StartDate:         time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		BondTenor:         period.New(5, period.Years),
		SinkingFrequency:  period.Semiannual,
		CouponRate:        0.05,
		DayCount:          utils.Dc30360,
		PaymentConvention: calendar.Following,
		IssueDate:         time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("Maturity: %s\n", b.MaturityDate().Format("2006-01-02"))
	for _, row := range b.AmortizationTable() {
		fmt.Printf("%2d  %s  notional %12.2f  interest %10.2f  principal %10.2f  total %10.2f\n",
			row.Period,
			row.PaymentDate.Format("2006-01-02"),
			row.Notional,
			row.Interest,
			row.Principal,
			row.Total(),
		)
	}
}
