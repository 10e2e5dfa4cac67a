package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kdtboard/internal/exporter"
	"kdtboard/internal/model"
	"kdtboard/internal/store"
)

const downloadTTL = 10 * time.Minute

// Export 통계 워크북 생성
// POST /api/export?year=2024
// 파일을 임시 디렉터리에 쓰고 다운로드 토큰을 돌려준다.
func (h *Handler) Export(c *gin.Context) {
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

	f, err := exporter.NewExporter().Export(snapshot, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	fileName := fmt.Sprintf("kdt_통계_%s.xlsx", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(os.TempDir(), fmt.Sprintf("kdtboard_export_%d_%s", time.Now().UnixNano(), fileName))

	if err := f.SaveAs(filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "파일 저장에 실패했습니다"})
		return
	}

	token := h.downloads.put(filePath, fileName, downloadTTL)

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"fileName": fileName,
	})
}

// DownloadExport 생성된 워크북 다운로드
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	dl, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "만료되었거나 존재하지 않는 토큰입니다"})
		return
	}

	if _, err := os.Stat(dl.filePath); err != nil {
		h.downloads.delete(token)
		c.JSON(http.StatusNotFound, gin.H{"error": "파일을 찾을 수 없습니다"})
		return
	}

	c.FileAttachment(dl.filePath, dl.fileName)

	// 1회성 토큰: 전송 후 정리
	h.downloads.delete(token)
	os.Remove(dl.filePath)
}
