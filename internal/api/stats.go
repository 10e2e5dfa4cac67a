package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kdtboard/internal/model"
	"kdtboard/internal/store"
)

// StatsInstitutions 기관별 통계
// GET /api/stats/institutions
func (h *Handler) StatsInstitutions(c *gin.Context) {
	snapshot, err := h.loadSnapshot(store.CourseQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"institutions": snapshot.Institutions()})
}

// StatsCourses 훈련과정 ID별 통계
// GET /api/stats/courses
func (h *Handler) StatsCourses(c *gin.Context) {
	snapshot, err := h.loadSnapshot(store.CourseQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": snapshot.ByCourse()})
}

// StatsYearly 연도별 통계
// GET /api/stats/yearly
func (h *Handler) StatsYearly(c *gin.Context) {
	snapshot, err := h.loadSnapshot(store.CourseQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"years": snapshot.Yearly()})
}

// StatsMonthly 월별 통계
// GET /api/stats/monthly?year=2024
func (h *Handler) StatsMonthly(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
	if err != nil || year < model.FirstRevenueYear || year > model.LastRevenueYear {
		c.JSON(http.StatusBadRequest, gin.H{"error": "유효하지 않은 연도입니다"})
		return
	}

	snapshot, err := h.loadSnapshot(store.CourseQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "months": snapshot.Monthly(year)})
}

// StatsNcs NCS 분류별 통계
// GET /api/stats/ncs
func (h *Handler) StatsNcs(c *gin.Context) {
	snapshot, err := h.loadSnapshot(store.CourseQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ncs": snapshot.ByNcs()})
}

// StatsLeadingCompanies 선도기업별 통계
// GET /api/stats/leading-companies
func (h *Handler) StatsLeadingCompanies(c *gin.Context) {
	snapshot, err := h.loadSnapshot(store.CourseQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leadingCompanies": snapshot.ByLeadingCompany()})
}
