package rental

import (
	"time"

	"github.com/shopspring/decimal"
)

// GracePeriod is the window after the scheduled return during which no
// overtime fee accrues.
const GracePeriod = 6 * time.Hour

// moneyScale is the fixed-point scale for all monetary amounts.
const moneyScale = 2

var (
	hoursPerDay     = decimal.NewFromInt(24)
	overtimeFactor  = decimal.NewFromInt(2)
	dailyFeeCapRate = decimal.RequireFromString("1.5")
)

// BaseCharge prices the requested interval: daily price times the truncated
// number of 24-hour periods, with a partial day charged as one full day.
func BaseCharge(p Period, dailyPrice decimal.Decimal) decimal.Decimal {
	days := int64(p.Duration() / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return dailyPrice.Mul(decimal.NewFromInt(days)).Round(moneyScale)
}

// OvertimeFee computes the penalty for returning after the scheduled end.
//
// Overdue time within the grace period is waived entirely. Past it, every
// started hour is billed at twice the hourly base rate (daily price / 24,
// rounded half-up to cents), capped at 1.5 times the daily price per
// started overdue day.
func OvertimeFee(endTime, actualReturnTime time.Time, dailyPrice decimal.Decimal) decimal.Decimal {
	if !actualReturnTime.After(endTime) {
		return decimal.Zero
	}

	overdue := actualReturnTime.Sub(endTime)
	overdueHours := int64(overdue / time.Hour)
	if overdueHours <= int64(GracePeriod/time.Hour) {
		return decimal.Zero
	}

	chargeable := overdue - GracePeriod
	chargeableHours := int64((chargeable + time.Hour - 1) / time.Hour)

	hourlyBase := dailyPrice.DivRound(hoursPerDay, moneyScale)
	hourlyOvertimeRate := hourlyBase.Mul(overtimeFactor)
	rawFee := hourlyOvertimeRate.Mul(decimal.NewFromInt(chargeableHours))

	overdueDays := (chargeableHours + 23) / 24
	feeCap := dailyPrice.Mul(dailyFeeCapRate).Mul(decimal.NewFromInt(overdueDays))

	if rawFee.GreaterThan(feeCap) {
		return feeCap.Round(moneyScale)
	}
	return rawFee.Round(moneyScale)
}
