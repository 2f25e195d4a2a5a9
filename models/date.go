package models

import "time"

// DateLayout 日期格式
const DateLayout = "2006-01-02"

// DateOf 截取日期部分（UTC 零点），账目日期、到期日、支付日都按日期存储
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate 解析 YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// MonthRange 返回某月的 [start, end) 区间
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
