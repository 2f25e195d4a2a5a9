package service

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Growth 环比增长百分比，保留一位小数（四舍五入，远离零）
// 上期为 0 时：本期也为 0 返回 0，否则返回 100
func Growth(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).Mul(hundred).DivRound(previous, 1)
}
