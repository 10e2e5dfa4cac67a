package adjust

import (
	"kdtboard/internal/model"
)

// Engine 매출 보정 엔진
// 수료율 기반 보정계수를 과정별 매출(누적·연도별)에 적용해
// Adjusted* 필드를 채운다. 원본 필드는 건드리지 않는다.
type Engine struct {
	curve Curve
}

// NewEngine 보정 엔진 생성
func NewEngine(curve Curve) *Engine {
	return &Engine{curve: curve}
}

// Apply 전체 과정 목록에 보정 적용
// 매 호출마다 평균/초회차 판정을 처음부터 다시 계산한다. 호출 간 상태 없음.
func (e *Engine) Apply(courses []*model.Course) {
	first := FirstOfferings(courses)
	courseAvg := averageRateByKey(courses, func(c *model.Course) string { return c.TrainingID })
	instAvg := averageRateByKey(courses, institutionKey)
	overall := OverallCompletionRate(courses)

	for _, c := range courses {
		// 매출 0 또는 수강인원 0 → 보정 불가, 원본 유지
		if c.CumulativeRevenue == 0 || c.Enrolled == 0 {
			e.copyRaw(c)
			continue
		}

		rate := e.effectiveRate(c, first[c.ID], courseAvg, instAvg, overall)
		factor := e.curve.Factor(rate)

		c.AdjustedCumulativeRevenue = c.CumulativeRevenue * factor
		for _, year := range model.RevenueYears() {
			c.SetAdjustedYearRevenue(year, c.YearRevenue(year)*factor)
		}
	}
}

// effectiveRate 보정에 사용할 수료율 결정
// 실제 수료 실적이 있고 초회차가 아니면 실제 수료율,
// 아니면 과정 ID 평균 → 기관 평균 → 전체 평균 순으로 추정한다.
func (e *Engine) effectiveRate(c *model.Course, isFirst bool, courseAvg, instAvg map[string]float64, overall float64) float64 {
	if c.Completed > 0 && !isFirst {
		return c.ActualCompletionRate()
	}

	if avg, ok := courseAvg[c.TrainingID]; ok && c.TrainingID != "" {
		return avg
	}
	if avg, ok := instAvg[institutionKey(c)]; ok {
		return avg
	}
	return overall
}

// copyRaw 보정 불가 시 원본 값을 그대로 복사
func (e *Engine) copyRaw(c *model.Course) {
	c.AdjustedCumulativeRevenue = c.CumulativeRevenue
	for _, year := range model.RevenueYears() {
		c.SetAdjustedYearRevenue(year, c.YearRevenue(year))
	}
}

// FirstOfferings 초회차 판정
// 훈련과정 ID별로 개강일이 가장 빠른 회차가 초회차.
// 개강일이 같으면 행 번호가 작은 쪽 (결정적 동률 처리).
func FirstOfferings(courses []*model.Course) map[string]bool {
	earliest := make(map[string]*model.Course)
	for _, c := range courses {
		if c.TrainingID == "" {
			continue
		}
		cur, ok := earliest[c.TrainingID]
		if !ok {
			earliest[c.TrainingID] = c
			continue
		}
		if c.StartDate.Before(cur.StartDate) ||
			(c.StartDate.Equal(cur.StartDate) && c.RowNo < cur.RowNo) {
			earliest[c.TrainingID] = c
		}
	}

	result := make(map[string]bool, len(earliest))
	for _, c := range earliest {
		result[c.ID] = true
	}
	return result
}

// OverallCompletionRate 전체 평균 수료율 (가중)
// 수료 0건 과정은 분자·분모 모두에서 제외
func OverallCompletionRate(courses []*model.Course) float64 {
	var enrolled, completed int
	for _, c := range courses {
		if c.Completed > 0 && c.Enrolled > 0 {
			enrolled += c.Enrolled
			completed += c.Completed
		}
	}
	if enrolled == 0 {
		return 0
	}
	return float64(completed) / float64(enrolled) * 100
}

// averageRateByKey 키별 평균 수료율 (수료 0건 회차 제외, 단순 평균)
func averageRateByKey(courses []*model.Course, key func(*model.Course) string) map[string]float64 {
	type acc struct {
		sum   float64
		count int
	}
	accs := make(map[string]*acc)

	for _, c := range courses {
		k := key(c)
		if k == "" || c.Completed == 0 || c.Enrolled == 0 {
			continue
		}
		a, ok := accs[k]
		if !ok {
			a = &acc{}
			accs[k] = a
		}
		a.sum += c.ActualCompletionRate()
		a.count++
	}

	result := make(map[string]float64, len(accs))
	for k, a := range accs {
		result[k] = a.sum / float64(a.count)
	}
	return result
}

// institutionKey 기관 평균 집계 키 (정제된 기관명 우선)
func institutionKey(c *model.Course) string {
	if c.InstitutionGroup != "" {
		return c.InstitutionGroup
	}
	return c.Institution
}
