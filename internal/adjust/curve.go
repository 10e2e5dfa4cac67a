package adjust

import "math"

// Curve 수료율 → 매출 보정계수 곡선 파라미터
// factor = MinFactor + (MaxFactor-MinFactor) × (1 - Base^(-Slope×r)), r = 수료율/100
// r=0 → MinFactor, r=1 → 점근적으로 MaxFactor에 접근 (기본 파라미터에서 약 1.1875)
type Curve struct {
	MinFactor float64
	MaxFactor float64
	Base      float64
	Slope     float64
	Linear    bool // 선형 변형 (100% → MaxFactor 정확히 도달). 기본 꺼짐.
}

// DefaultCurve 기본 곡선 (지수형)
func DefaultCurve() Curve {
	return Curve{
		MinFactor: 0.5,
		MaxFactor: 1.25,
		Base:      2,
		Slope:     2,
	}
}

// Factor 수료율(0~100)에 대한 보정계수
// 항상 [MinFactor, MaxFactor] 범위, 단조 비감소
func (cv Curve) Factor(rate float64) float64 {
	r := rate / 100
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}

	if cv.Linear {
		return cv.MinFactor + (cv.MaxFactor-cv.MinFactor)*r
	}
	return cv.MinFactor + (cv.MaxFactor-cv.MinFactor)*cv.expComponent(r)
}

// Band 최소~최대 매출 구간에 지수 성분을 적용한 변형
// minRevenue + (maxRevenue-minRevenue) × (1 - Base^(-Slope×r))
func (cv Curve) Band(minRevenue, maxRevenue, rate float64) float64 {
	r := rate / 100
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	return minRevenue + (maxRevenue-minRevenue)*cv.expComponent(r)
}

// expComponent 1 - Base^(-Slope×r), r ∈ [0,1]
func (cv Curve) expComponent(r float64) float64 {
	return 1 - math.Pow(cv.Base, -cv.Slope*r)
}
