package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kdtboard/internal/importer"
)

// Import 스프레드시트 업로드 및 적재
// POST /api/import (multipart, 필드명 file)
func (h *Handler) Import(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 폼 데이터입니다"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "업로드 파일이 없습니다"})
		return
	}

	uploaded := files[0]
	src, err := uploaded.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "파일을 열 수 없습니다"})
		return
	}
	defer src.Close()

	replaceAll := c.DefaultPostForm("replaceAll", "false") == "true"

	coordinator := importer.New(h.store, h.log)
	report, err := coordinator.ImportFile(src, uploaded.Filename, importer.Options{
		ReplaceAll: replaceAll,
	})
	if err != nil {
		h.log.WithComponent("api").WithError(err).Error("임포트 실패")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
