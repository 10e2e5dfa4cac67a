package api

import (
	"github.com/gin-gonic/gin"

	"kdtboard/internal/config"
	"kdtboard/internal/logger"
	"kdtboard/internal/store"
)

// Handler API 처리기
type Handler struct {
	store     *store.Store
	cfg       *config.AppConfig
	log       *logger.Logger
	downloads *exportDownloadStore
}

// NewHandler API 처리기 생성
func NewHandler(st *store.Store, cfg *config.AppConfig, log *logger.Logger) *Handler {
	return &Handler{
		store:     st,
		cfg:       cfg,
		log:       log,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 라우트 등록
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 시스템 상태
	router.GET("/status", h.GetStatus)

	// 데이터 임포트
	router.POST("/import", h.Import)

	// 과정 조회
	router.GET("/courses", h.ListCourses)
	router.GET("/courses/:id", h.GetCourse)

	// 통계
	router.GET("/stats/institutions", h.StatsInstitutions)
	router.GET("/stats/courses", h.StatsCourses)
	router.GET("/stats/yearly", h.StatsYearly)
	router.GET("/stats/monthly", h.StatsMonthly)
	router.GET("/stats/ncs", h.StatsNcs)
	router.GET("/stats/leading-companies", h.StatsLeadingCompanies)

	// 보정 설정
	router.GET("/config/adjustment", h.GetAdjustment)
	router.PATCH("/config/adjustment", h.UpdateAdjustment)

	// 내보내기
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)

	// 게시판
	router.GET("/posts", h.ListPosts)
	router.POST("/posts", h.CreatePost)
	router.GET("/posts/:id", h.GetPost)
	router.PATCH("/posts/:id", h.UpdatePost)
	router.DELETE("/posts/:id", h.DeletePost)
}
