package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kdtboard/internal/model"
	"kdtboard/internal/store"
)

// ListCourses 과정 목록 (보정 매출 포함)
// GET /api/courses?institutionGroup=&trainingType=&ncsCode=&startYear=&leading=&limit=&offset=
// 수료율 추정 풀이 전체 데이터 기준이어야 하므로 보정은 전체에 적용 후 필터링한다.
func (h *Handler) ListCourses(c *gin.Context) {
	snapshot, err := h.loadSnapshot(store.CourseQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filtered := filterCourses(snapshot.Courses(), c)
	total := len(filtered)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	if offset > len(filtered) {
		offset = len(filtered)
	}
	filtered = filtered[offset:]
	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}

	c.JSON(http.StatusOK, gin.H{
		"total":   total,
		"courses": filtered,
	})
}

// GetCourse 과정 단건 (보정 매출 포함)
// GET /api/courses/:id
func (h *Handler) GetCourse(c *gin.Context) {
	id := c.Param("id")

	snapshot, err := h.loadSnapshot(store.CourseQueryOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	for _, course := range snapshot.Courses() {
		if course.ID == id {
			c.JSON(http.StatusOK, course)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "과정을 찾을 수 없습니다"})
}

func filterCourses(courses []*model.Course, c *gin.Context) []*model.Course {
	group := c.Query("institutionGroup")
	trainingType := c.Query("trainingType")
	ncsCode := c.Query("ncsCode")
	startYear, _ := strconv.Atoi(c.Query("startYear"))
	leading := c.Query("leading")

	out := make([]*model.Course, 0, len(courses))
	for _, course := range courses {
		if group != "" && course.InstitutionGroup != group {
			continue
		}
		if trainingType != "" && course.TrainingType != trainingType {
			continue
		}
		if ncsCode != "" && course.NcsCode != ncsCode {
			continue
		}
		if startYear > 0 && course.StartDate.Year() != startYear {
			continue
		}
		if leading == "true" && !course.IsLeadingCompany {
			continue
		}
		if leading == "false" && course.IsLeadingCompany {
			continue
		}
		out = append(out, course)
	}
	return out
}
