package adjust

import (
	"math"
	"testing"
	"time"

	"kdtboard/internal/model"
)

func floatEquals(a, b float64) bool {
	const epsilon = 1e-9
	return math.Abs(a-b) < epsilon
}

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// TestCurveFactorBounds 보정계수 범위와 단조성
// 수료율 0~100 전 구간에서 [MinFactor, MaxFactor] 안에 있고 비감소
func TestCurveFactorBounds(t *testing.T) {
	curves := []Curve{DefaultCurve(), {MinFactor: 0.5, MaxFactor: 1.25, Base: 2, Slope: 2, Linear: true}}

	for _, cv := range curves {
		prev := -1.0
		for rate := 0.0; rate <= 100.0; rate += 0.5 {
			f := cv.Factor(rate)
			if f < cv.MinFactor || f > cv.MaxFactor {
				t.Fatalf("Factor(%v) = %v, 범위 [%v, %v] 이탈", rate, f, cv.MinFactor, cv.MaxFactor)
			}
			if f < prev {
				t.Fatalf("Factor(%v) = %v < 직전값 %v, 단조성 위반", rate, f, prev)
			}
			prev = f
		}
	}
}

// TestCurveFactorValues 지수 곡선의 대표값
func TestCurveFactorValues(t *testing.T) {
	cv := DefaultCurve()

	tests := []struct {
		rate     float64
		expected float64
	}{
		{0, 0.5},
		{50, 0.5 + 0.75*(1-math.Pow(2, -1))},  // 0.875
		{100, 0.5 + 0.75*(1-math.Pow(2, -2))}, // 1.0625
	}

	for _, tt := range tests {
		if got := cv.Factor(tt.rate); !floatEquals(got, tt.expected) {
			t.Errorf("Factor(%v) = %v, want %v", tt.rate, got, tt.expected)
		}
	}

	// 범위 밖 입력은 양끝으로 고정
	if got := cv.Factor(-10); !floatEquals(got, 0.5) {
		t.Errorf("Factor(-10) = %v, want 0.5", got)
	}
	if got := cv.Factor(150); !floatEquals(got, cv.Factor(100)) {
		t.Errorf("Factor(150) = %v, want Factor(100)", got)
	}
}

// TestLinearCurveReachesMax 선형 변형은 100%에서 MaxFactor에 정확히 도달
func TestLinearCurveReachesMax(t *testing.T) {
	cv := Curve{MinFactor: 0.5, MaxFactor: 1.25, Base: 2, Slope: 2, Linear: true}
	if got := cv.Factor(100); !floatEquals(got, 1.25) {
		t.Errorf("선형 Factor(100) = %v, want 1.25", got)
	}
}

// TestCurveBand 최소~최대 매출 구간 변형
func TestCurveBand(t *testing.T) {
	cv := DefaultCurve()

	if got := cv.Band(100, 200, 0); !floatEquals(got, 100) {
		t.Errorf("Band(100,200,0) = %v, want 100", got)
	}
	expected := 100 + 100*(1-math.Pow(2, -2))
	if got := cv.Band(100, 200, 100); !floatEquals(got, expected) {
		t.Errorf("Band(100,200,100) = %v, want %v", got, expected)
	}
}

// TestApplyActualRate 실적 있는 비초회차는 실제 수료율 사용
func TestApplyActualRate(t *testing.T) {
	e := NewEngine(DefaultCurve())

	courses := []*model.Course{
		{ID: "a", RowNo: 1, TrainingID: "T1", Enrolled: 20, Completed: 10,
			StartDate: day(2023, 1, 1), CumulativeRevenue: 1000, Revenue2023: 1000},
		{ID: "b", RowNo: 2, TrainingID: "T1", Enrolled: 20, Completed: 18,
			StartDate: day(2024, 1, 1), CumulativeRevenue: 1000, Revenue2024: 1000},
	}
	e.Apply(courses)

	// b는 비초회차 + 실적 있음 → 실제 수료율 90% 사용
	factor := DefaultCurve().Factor(90)
	if !floatEquals(courses[1].AdjustedCumulativeRevenue, 1000*factor) {
		t.Errorf("AdjustedCumulativeRevenue = %v, want %v", courses[1].AdjustedCumulativeRevenue, 1000*factor)
	}
	// 연도별 필드도 같은 계수
	if !floatEquals(courses[1].AdjustedRevenue2024, 1000*factor) {
		t.Errorf("AdjustedRevenue2024 = %v, want %v", courses[1].AdjustedRevenue2024, 1000*factor)
	}
}

// TestApplyFactorIndependentOfOtherFields 계수는 수료율에만 의존
func TestApplyFactorIndependentOfOtherFields(t *testing.T) {
	e := NewEngine(DefaultCurve())

	build := func(name string) []*model.Course {
		return []*model.Course{
			{ID: "a", RowNo: 1, TrainingID: "T1", Name: name, Enrolled: 20, Completed: 10,
				StartDate: day(2023, 1, 1), CumulativeRevenue: 500},
			{ID: "b", RowNo: 2, TrainingID: "T1", Name: name, Enrolled: 20, Completed: 18,
				StartDate: day(2024, 1, 1), CumulativeRevenue: 1000},
		}
	}

	first := build("원래 이름")
	second := build("바뀐 이름")
	e.Apply(first)
	e.Apply(second)

	if !floatEquals(first[1].AdjustedCumulativeRevenue, second[1].AdjustedCumulativeRevenue) {
		t.Errorf("과정명 변경이 보정계수에 영향: %v vs %v",
			first[1].AdjustedCumulativeRevenue, second[1].AdjustedCumulativeRevenue)
	}
}

// TestApplyNoAdjustment 매출 0 또는 수강인원 0은 원본 유지
func TestApplyNoAdjustment(t *testing.T) {
	e := NewEngine(DefaultCurve())

	courses := []*model.Course{
		{ID: "a", RowNo: 1, TrainingID: "T1", Enrolled: 0, Completed: 0,
			StartDate: day(2023, 1, 1), CumulativeRevenue: 1000, Revenue2023: 1000},
		{ID: "b", RowNo: 2, TrainingID: "T2", Enrolled: 20, Completed: 15,
			StartDate: day(2023, 1, 1), CumulativeRevenue: 0},
	}
	e.Apply(courses)

	if courses[0].AdjustedCumulativeRevenue != 1000 {
		t.Errorf("수강인원 0: AdjustedCumulativeRevenue = %v, want 1000", courses[0].AdjustedCumulativeRevenue)
	}
	if courses[0].AdjustedRevenue2023 != 1000 {
		t.Errorf("수강인원 0: AdjustedRevenue2023 = %v, want 1000", courses[0].AdjustedRevenue2023)
	}
	if courses[1].AdjustedCumulativeRevenue != 0 {
		t.Errorf("매출 0: AdjustedCumulativeRevenue = %v, want 0", courses[1].AdjustedCumulativeRevenue)
	}
}

// TestApplyEstimationTiers 수료 실적 없는 과정의 3단계 추정
func TestApplyEstimationTiers(t *testing.T) {
	e := NewEngine(DefaultCurve())
	cv := DefaultCurve()

	// (a) 같은 훈련과정 ID의 평균 사용
	courses := []*model.Course{
		{ID: "a", RowNo: 1, TrainingID: "T1", InstitutionGroup: "기관A", Enrolled: 10, Completed: 8,
			StartDate: day(2022, 1, 1), CumulativeRevenue: 100},
		{ID: "b", RowNo: 2, TrainingID: "T1", InstitutionGroup: "기관A", Enrolled: 10, Completed: 0,
			StartDate: day(2023, 1, 1), CumulativeRevenue: 1000},
	}
	e.Apply(courses)
	want := 1000 * cv.Factor(80) // T1 평균 = 80%
	if !floatEquals(courses[1].AdjustedCumulativeRevenue, want) {
		t.Errorf("과정 평균 추정: got %v, want %v", courses[1].AdjustedCumulativeRevenue, want)
	}

	// (b) 과정 평균이 없으면 기관 평균
	courses = []*model.Course{
		{ID: "a", RowNo: 1, TrainingID: "T1", InstitutionGroup: "기관A", Enrolled: 10, Completed: 6,
			StartDate: day(2022, 1, 1), CumulativeRevenue: 100},
		{ID: "b", RowNo: 2, TrainingID: "T2", InstitutionGroup: "기관A", Enrolled: 10, Completed: 0,
			StartDate: day(2023, 1, 1), CumulativeRevenue: 1000},
	}
	e.Apply(courses)
	want = 1000 * cv.Factor(60) // 기관A 평균 = 60%
	if !floatEquals(courses[1].AdjustedCumulativeRevenue, want) {
		t.Errorf("기관 평균 추정: got %v, want %v", courses[1].AdjustedCumulativeRevenue, want)
	}

	// (c) 기관 평균도 없으면 전체 평균
	courses = []*model.Course{
		{ID: "a", RowNo: 1, TrainingID: "T1", InstitutionGroup: "기관A", Enrolled: 20, Completed: 10,
			StartDate: day(2022, 1, 1), CumulativeRevenue: 100},
		{ID: "b", RowNo: 2, TrainingID: "T2", InstitutionGroup: "기관B", Enrolled: 10, Completed: 0,
			StartDate: day(2023, 1, 1), CumulativeRevenue: 1000},
	}
	e.Apply(courses)
	want = 1000 * cv.Factor(50) // 전체 가중 평균 = 10/20
	if !floatEquals(courses[1].AdjustedCumulativeRevenue, want) {
		t.Errorf("전체 평균 추정: got %v, want %v", courses[1].AdjustedCumulativeRevenue, want)
	}
}

// TestFirstOfferings 초회차 판정과 동률 처리
func TestFirstOfferings(t *testing.T) {
	courses := []*model.Course{
		{ID: "a", RowNo: 3, TrainingID: "T1", StartDate: day(2023, 1, 1)},
		{ID: "b", RowNo: 1, TrainingID: "T1", StartDate: day(2023, 1, 1)}, // 동일 개강일, 행 번호 작음
		{ID: "c", RowNo: 2, TrainingID: "T1", StartDate: day(2024, 1, 1)},
		{ID: "d", RowNo: 4, TrainingID: "T2", StartDate: day(2022, 5, 1)},
	}

	first := FirstOfferings(courses)

	if !first["b"] {
		t.Error("동률 시 행 번호가 작은 b가 초회차여야 함")
	}
	if first["a"] || first["c"] {
		t.Error("a/c는 초회차가 아님")
	}
	if !first["d"] {
		t.Error("T2의 유일 회차 d는 초회차")
	}
}

// TestFirstOfferingUsesEstimate 초회차는 실적이 있어도 추정 사용
func TestFirstOfferingUsesEstimate(t *testing.T) {
	e := NewEngine(DefaultCurve())
	cv := DefaultCurve()

	courses := []*model.Course{
		{ID: "a", RowNo: 1, TrainingID: "T1", Enrolled: 20, Completed: 18,
			StartDate: day(2023, 1, 1), CumulativeRevenue: 1000},
		{ID: "b", RowNo: 2, TrainingID: "T1", Enrolled: 10, Completed: 7,
			StartDate: day(2024, 1, 1), CumulativeRevenue: 1000},
	}
	e.Apply(courses)

	// 초회차 a: T1 평균 (90 + 70)/2 = 80% 로 추정
	want := 1000 * cv.Factor(80)
	if !floatEquals(courses[0].AdjustedCumulativeRevenue, want) {
		t.Errorf("초회차 추정: got %v, want %v", courses[0].AdjustedCumulativeRevenue, want)
	}
}

// TestOverallCompletionRate 수료 0건 제외 가중 평균
func TestOverallCompletionRate(t *testing.T) {
	courses := []*model.Course{
		{Enrolled: 10, Completed: 8},
		{Enrolled: 10, Completed: 0}, // 분모에서도 제외
		{Enrolled: 20, Completed: 10},
	}

	// (8+10) / (10+20) × 100 = 60
	if got := OverallCompletionRate(courses); !floatEquals(got, 60) {
		t.Errorf("OverallCompletionRate = %v, want 60", got)
	}

	if got := OverallCompletionRate(nil); got != 0 {
		t.Errorf("빈 목록 = %v, want 0", got)
	}
}
