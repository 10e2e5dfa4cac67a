package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kdtboard/internal/config"
)

// AdjustmentResponse 보정 곡선 설정 응답
type AdjustmentResponse struct {
	MinFactor   float64            `json:"minFactor"`
	MaxFactor   float64            `json:"maxFactor"`
	CurveBase   float64            `json:"curveBase"`
	CurveSlope  float64            `json:"curveSlope"`
	LinearCurve bool               `json:"linearCurve"`
	Samples     map[string]float64 `json:"samples"` // 수료율별 계수 미리보기
}

// GetAdjustment 보정 곡선 설정 조회
// GET /api/config/adjustment
func (h *Handler) GetAdjustment(c *gin.Context) {
	cv := h.curve()

	samples := make(map[string]float64)
	for _, rate := range []float64{0, 25, 50, 75, 100} {
		samples[strconv.Itoa(int(rate))] = cv.Factor(rate)
	}

	c.JSON(http.StatusOK, AdjustmentResponse{
		MinFactor:   cv.MinFactor,
		MaxFactor:   cv.MaxFactor,
		CurveBase:   cv.Base,
		CurveSlope:  cv.Slope,
		LinearCurve: cv.Linear,
		Samples:     samples,
	})
}

// UpdateAdjustmentRequest 보정 곡선 설정 변경 요청
// 포함된 필드만 변경한다.
type UpdateAdjustmentRequest struct {
	MinFactor   *float64 `json:"minFactor"`
	MaxFactor   *float64 `json:"maxFactor"`
	CurveBase   *float64 `json:"curveBase"`
	CurveSlope  *float64 `json:"curveSlope"`
	LinearCurve *bool    `json:"linearCurve"`
}

// UpdateAdjustment 보정 곡선 설정 변경
// PATCH /api/config/adjustment
func (h *Handler) UpdateAdjustment(c *gin.Context) {
	var req UpdateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청 본문입니다"})
		return
	}

	b := h.cfg.Business
	if req.MinFactor != nil {
		b.MinFactor = *req.MinFactor
	}
	if req.MaxFactor != nil {
		b.MaxFactor = *req.MaxFactor
	}
	if req.CurveBase != nil {
		b.CurveBase = *req.CurveBase
	}
	if req.CurveSlope != nil {
		b.CurveSlope = *req.CurveSlope
	}
	if req.LinearCurve != nil {
		b.LinearCurve = *req.LinearCurve
	}

	if b.MinFactor < 0 || b.MaxFactor <= b.MinFactor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "계수 범위가 올바르지 않습니다"})
		return
	}
	if b.CurveBase <= 1 || b.CurveSlope <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "곡선 파라미터가 올바르지 않습니다"})
		return
	}

	h.cfg.Business = b
	if err := config.SaveConfig(h.cfg); err != nil {
		h.log.WithComponent("api").WithError(err).Warn("설정 저장 실패")
	}

	h.GetAdjustment(c)
}
