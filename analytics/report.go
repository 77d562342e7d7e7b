package analytics

import (
	"time"

	"github.com/neelammkw/elearning-client/models"
)

// Records are attributed to the calendar month of their createdAt, joined on
// integer (year, month) keys in UTC. Month labels are a rendering concern
// only; joining on label strings breaks across locales and is deliberately
// not done here.

type monthKey struct {
	year  int
	month time.Month
}

func keyOf(t time.Time) monthKey {
	utc := t.UTC()
	return monthKey{year: utc.Year(), month: utc.Month()}
}

// LastTwelveMonths buckets creation timestamps into the trailing 12 calendar
// months ending at now. Months with no records appear with a zero count.
func LastTwelveMonths(now time.Time, createdAt []time.Time) []models.MonthPoint {
	points, index := emptyWindow(now)
	for _, t := range createdAt {
		if i, ok := index[keyOf(t)]; ok {
			points[i].Count++
		}
	}
	return points
}

// RevenueByMonth attributes order revenue per calendar month of createdAt.
func RevenueByMonth(now time.Time, orders []models.Order) []models.MonthPoint {
	points, index := emptyWindow(now)
	for _, o := range orders {
		i, ok := index[keyOf(o.CreatedAt)]
		if !ok {
			continue
		}
		points[i].Count++
		points[i].Revenue += o.TotalAmount
	}
	return points
}

func emptyWindow(now time.Time) ([]models.MonthPoint, map[monthKey]int) {
	utc := now.UTC()
	first := time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	points := make([]models.MonthPoint, 12)
	index := make(map[monthKey]int, 12)
	for i := 0; i < 12; i++ {
		month := first.AddDate(0, i, 0)
		points[i] = models.MonthPoint{Year: month.Year(), Month: month.Month()}
		index[monthKey{year: month.Year(), month: month.Month()}] = i
	}
	return points, index
}
