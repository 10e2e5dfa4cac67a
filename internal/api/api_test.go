package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"kdtboard/internal/config"
	"kdtboard/internal/logger"
	"kdtboard/internal/model"
	"kdtboard/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	cfg := config.DefaultConfig()
	cfg.Board.MasterPassword = "master-secret"

	h := NewHandler(st, cfg, logger.New())
	router := gin.New()
	h.RegisterRoutes(router.Group("/api"))

	return router, st
}

func seedCourses(t *testing.T, st *store.Store) {
	t.Helper()
	courses := []*model.Course{
		{
			ID: "a", RowNo: 1, TrainingID: "T1", Name: "백엔드 과정",
			Institution: "기관A", InstitutionGroup: "기관A",
			StartDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC),
			Enrolled:  25, Completed: 20, CompletionRate: 80,
			Revenue2024: 150000000, CumulativeRevenue: 150000000,
		},
		{
			ID: "b", RowNo: 2, TrainingID: "T2", Name: "클라우드 과정",
			Institution: "기관B", InstitutionGroup: "기관B",
			StartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
			Enrolled:  30, Completed: 27, CompletionRate: 90,
			Revenue2024: 200000000, CumulativeRevenue: 200000000,
		},
	}
	if err := st.BatchInsertCourses(courses); err != nil {
		t.Fatalf("BatchInsertCourses: %v", err)
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestStatusEmpty 데이터 없는 초기 상태
func TestStatusEmpty(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Initialized {
		t.Error("빈 저장소는 Initialized=false여야 함")
	}
}

// TestStatsInstitutions 기관별 통계 응답
func TestStatsInstitutions(t *testing.T) {
	router, st := newTestRouter(t)
	seedCourses(t, st)

	w := doJSON(t, router, http.MethodGet, "/api/stats/institutions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Institutions []model.InstitutionStat `json:"institutions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(resp.Institutions) != 2 {
		t.Fatalf("기관 수 = %d, want 2", len(resp.Institutions))
	}
	// 매출 내림차순: 수료율이 높은 기관B가 1위
	if resp.Institutions[0].Institution != "기관B" {
		t.Errorf("1위 = %q, want 기관B", resp.Institutions[0].Institution)
	}
	// 보정 매출이 계산되어 있어야 함
	if resp.Institutions[0].TotalRevenue <= 0 {
		t.Error("조정 매출이 계산되지 않음")
	}
}

// TestListCoursesAdjusted 과정 목록에 보정 매출 포함
func TestListCoursesAdjusted(t *testing.T) {
	router, st := newTestRouter(t)
	seedCourses(t, st)

	w := doJSON(t, router, http.MethodGet, "/api/courses", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Total   int             `json:"total"`
		Courses []*model.Course `json:"courses"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("Total = %d, want 2", resp.Total)
	}
	for _, c := range resp.Courses {
		if c.AdjustedCumulativeRevenue <= 0 {
			t.Errorf("과정 %s의 조정 매출이 없음", c.ID)
		}
		// 원본 매출은 보존
		if c.CumulativeRevenue <= 0 {
			t.Errorf("과정 %s의 원본 매출이 사라짐", c.ID)
		}
	}
}

// TestListCoursesPagination limit/offset 경계값 처리
// 음수나 범위 밖 값도 500 없이 기본 동작으로 처리해야 한다.
func TestListCoursesPagination(t *testing.T) {
	router, st := newTestRouter(t)
	seedCourses(t, st)

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{"기본", "", 2},
		{"limit 1", "?limit=1", 1},
		{"offset 1", "?offset=1", 1},
		{"offset 초과", "?offset=10", 0},
		{"음수 offset", "?offset=-1", 2},
		{"음수 limit", "?limit=-5", 2},
		{"음수 offset과 limit", "?offset=-3&limit=-1", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, "/api/courses"+tt.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
			}

			var resp struct {
				Total   int             `json:"total"`
				Courses []*model.Course `json:"courses"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.Total != 2 {
				t.Errorf("Total = %d, want 2", resp.Total)
			}
			if len(resp.Courses) != tt.wantCount {
				t.Errorf("목록 길이 = %d, want %d", len(resp.Courses), tt.wantCount)
			}
		})
	}
}

// TestPostLifecycle 게시글 작성/수정/삭제 (비밀번호 보호)
func TestPostLifecycle(t *testing.T) {
	router, _ := newTestRouter(t)

	// 작성
	w := doJSON(t, router, http.MethodPost, "/api/posts", gin.H{
		"title":    "공지",
		"content":  "첫 공지입니다",
		"author":   "관리자",
		"password": "pw1234",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("작성 status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var created model.Post
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.PasswordHash != "" {
		t.Error("응답에 비밀번호 해시가 노출됨")
	}

	path := fmt.Sprintf("/api/posts/%d", created.ID)

	// 틀린 비밀번호로 수정 시도
	w = doJSON(t, router, http.MethodPatch, path, gin.H{
		"title": "수정", "password": "wrong",
	})
	if w.Code != http.StatusForbidden {
		t.Errorf("틀린 비밀번호 수정 status = %d, want 403", w.Code)
	}

	// 행 비밀번호로 수정
	w = doJSON(t, router, http.MethodPatch, path, gin.H{
		"title": "수정된 공지", "content": "수정 본문", "password": "pw1234",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("수정 status = %d, want 200: %s", w.Code, w.Body.String())
	}

	// 마스터 비밀번호로 삭제
	w = doJSON(t, router, http.MethodDelete, path, gin.H{
		"password": "master-secret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("삭제 status = %d, want 200: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, path, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("삭제 후 조회 status = %d, want 404", w.Code)
	}
}

// TestMonthlyInvalidYear 범위 밖 연도는 400
func TestMonthlyInvalidYear(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/stats/monthly?year=2019", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
