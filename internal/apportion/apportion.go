package apportion

import (
	"time"

	"kdtboard/internal/model"
)

// OccupiedMonths 과정 기간이 해당 연도에 걸치는 월 목록
// 시작 연도면 시작 월부터, 아니면 1월부터. 종료 연도면 종료 월까지, 아니면 12월까지.
// 월 구간 [월초, 월말]과 과정 기간 [시작, 종료]의 교집합(양끝 포함)으로 판정한다.
func OccupiedMonths(start, end time.Time, year int) []int {
	if end.Before(start) {
		return nil
	}
	if start.Year() > year || end.Year() < year {
		return nil
	}

	from := 1
	if start.Year() == year {
		from = int(start.Month())
	}
	to := 12
	if end.Year() == year {
		to = int(end.Month())
	}

	var months []int
	for m := from; m <= to; m++ {
		monthStart := time.Date(year, time.Month(m), 1, 0, 0, 0, 0, start.Location())
		monthEnd := monthStart.AddDate(0, 1, -1)
		if !monthEnd.Before(start) && !monthStart.After(end) {
			months = append(months, m)
		}
	}
	return months
}

// SplitYearRevenue 한 연도의 매출을 걸치는 월에 균등 배분
// 배분 대상 월이 없으면 빈 맵. 합계는 yearRevenue와 같다 (부동소수 오차 내).
func SplitYearRevenue(c *model.Course, year int, yearRevenue float64) map[int]float64 {
	months := OccupiedMonths(c.StartDate, c.EndDate, year)
	if len(months) == 0 {
		return map[int]float64{}
	}

	perMonth := yearRevenue / float64(len(months))
	result := make(map[int]float64, len(months))
	for _, m := range months {
		result[m] = perMonth
	}
	return result
}

// monthAccumulator 월별 집계 누산기
// 인원은 개강 월에만 1회 계상, 수료율은 모두 접은 뒤 재계산한다.
type monthAccumulator struct {
	revenue       float64
	courseCount   int
	enrolled      int
	completed     int
	rateEnrolled  int // 수료율 분모 (수료 0건 제외)
	rateCompleted int
}

// MonthlyStats 해당 연도의 월별 통계
// 각 과정의 조정 연 매출을 걸치는 월에 배분하고,
// 인원/과정 수는 개강 월 기준으로 계상한다.
func MonthlyStats(courses []*model.Course, year int) []model.MonthlyStat {
	accs := make([]monthAccumulator, 13) // 1~12 사용

	for _, c := range courses {
		for m, rev := range SplitYearRevenue(c, year, c.AdjustedYearRevenue(year)) {
			accs[m].revenue += rev
		}

		// 인원·과정 수는 개강 월에만
		if c.StartDate.Year() == year {
			m := int(c.StartDate.Month())
			accs[m].courseCount++
			accs[m].enrolled += c.Enrolled
			accs[m].completed += c.Completed
			if c.Enrolled > 0 && c.Completed > 0 {
				accs[m].rateEnrolled += c.Enrolled
				accs[m].rateCompleted += c.Completed
			}
		}
	}

	stats := make([]model.MonthlyStat, 0, 12)
	for m := 1; m <= 12; m++ {
		a := accs[m]
		rate := 0.0
		if a.rateEnrolled > 0 {
			rate = float64(a.rateCompleted) / float64(a.rateEnrolled) * 100
		}
		stats = append(stats, model.MonthlyStat{
			Year:           year,
			Month:          m,
			Revenue:        a.revenue,
			CourseCount:    a.courseCount,
			Enrolled:       a.enrolled,
			Completed:      a.completed,
			CompletionRate: rate,
		})
	}
	return stats
}
