package api

import (
	"kdtboard/internal/adjust"
	"kdtboard/internal/aggregate"
	"kdtboard/internal/store"
)

// curve 현재 설정의 보정 곡선
func (h *Handler) curve() adjust.Curve {
	b := h.cfg.Business
	cv := adjust.Curve{
		MinFactor: b.MinFactor,
		MaxFactor: b.MaxFactor,
		Base:      b.CurveBase,
		Slope:     b.CurveSlope,
		Linear:    b.LinearCurve,
	}
	if cv.MaxFactor <= cv.MinFactor || cv.Base <= 1 || cv.Slope <= 0 {
		return adjust.DefaultCurve()
	}
	return cv
}

// loadSnapshot 과정 조회 + 매출 보정 + 집계 스냅샷 생성
// 조정 매출은 저장하지 않으므로 매 요청 재계산한다.
func (h *Handler) loadSnapshot(opts store.CourseQueryOptions) (*aggregate.Snapshot, error) {
	courses, err := h.store.GetCourses(opts)
	if err != nil {
		return nil, err
	}

	adjust.NewEngine(h.curve()).Apply(courses)

	return aggregate.NewSnapshot(courses), nil
}
