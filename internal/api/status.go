package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kdtboard/internal/store"
)

// StatusResponse 시스템 상태 응답
type StatusResponse struct {
	Initialized    bool   `json:"initialized"`    // 데이터 존재 여부
	TotalCourses   int    `json:"totalCourses"`   // 전체 과정 수
	LeadingCount   int    `json:"leadingCount"`   // 선도기업형 과정 수
	LastImportAt   string `json:"lastImportAt"`   // 마지막 임포트 시각
	LastImportFile string `json:"lastImportFile"` // 마지막 임포트 파일
}

// GetStatus 시스템 상태
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	total, err := h.store.CountCourses(store.CourseQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	leading := true
	leadingCount, err := h.store.CountCourses(store.CourseQueryOptions{IsLeadingCompany: &leading})
	if err != nil {
		leadingCount = 0
	}

	lastAt, _ := h.store.GetConfig("last_import_at")
	lastFile, _ := h.store.GetConfig("last_import_file")

	c.JSON(http.StatusOK, StatusResponse{
		Initialized:    total > 0,
		TotalCourses:   total,
		LeadingCount:   leadingCount,
		LastImportAt:   lastAt,
		LastImportFile: lastFile,
	})
}
