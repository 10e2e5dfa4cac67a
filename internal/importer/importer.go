package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"kdtboard/internal/canonical"
	"kdtboard/internal/logger"
	"kdtboard/internal/model"
	"kdtboard/internal/parser"
	"kdtboard/internal/service/excel"
	"kdtboard/internal/store"
)

// RowIssue 행 단위 검증 결과
type RowIssue struct {
	RowNo    int    `json:"rowNo"`
	Sheet    string `json:"sheet"`
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Report 임포트 결과 요약
type Report struct {
	File      string     `json:"file"`
	TotalRows int        `json:"totalRows"`
	Imported  int        `json:"imported"`
	Errors    int        `json:"errors"`
	Warnings  int        `json:"warnings"`
	Issues    []RowIssue `json:"issues"`
	Elapsed   string     `json:"elapsed"`
}

// Coordinator 임포트 조정자
// 파일 읽기 → 정규화 → 기관명 정제 → 검증 → 저장을 한 호출로 처리한다.
type Coordinator struct {
	store *store.Store
	log   *logger.Logger
}

// New 조정자 생성
func New(st *store.Store, log *logger.Logger) *Coordinator {
	return &Coordinator{store: st, log: log}
}

// Options 임포트 옵션
type Options struct {
	ReplaceAll bool // 기존 데이터 전체 삭제 후 적재
}

// ImportFile 파일 하나를 적재
// 검증 오류가 있는 행도 버리지 않고 적재하며 리포트에만 남긴다.
func (c *Coordinator) ImportFile(reader io.Reader, fileName string, opts Options) (*Report, error) {
	started := time.Now()

	rows, err := c.readRows(reader, fileName)
	if err != nil {
		return nil, err
	}

	normalizer := parser.NewRowNormalizer(started)
	courses := make([]*model.Course, 0, len(rows))
	report := &Report{File: fileName, TotalRows: len(rows)}

	for _, row := range rows {
		raw := row.Cells
		raw["__source_file"] = row.File
		raw["__source_sheet"] = row.Sheet

		course := normalizer.Normalize(raw, row.RowNo)
		course.InstitutionGroup = canonical.Canonicalize(course.Institution)

		for _, ve := range course.Validate() {
			report.Issues = append(report.Issues, RowIssue{
				RowNo:    row.RowNo,
				Sheet:    row.Sheet,
				Field:    ve.Field,
				Message:  ve.Message,
				Severity: ve.Severity,
			})
			if ve.Severity == "error" {
				report.Errors++
			} else {
				report.Warnings++
			}
		}

		courses = append(courses, course)
	}

	if opts.ReplaceAll {
		if err := c.store.DeleteAllCourses(); err != nil {
			return nil, fmt.Errorf("failed to clear courses: %w", err)
		}
	} else {
		// 같은 파일 재업로드 시 중복 적재 방지
		if err := c.store.DeleteCoursesBySourceFile(fileName); err != nil {
			return nil, fmt.Errorf("failed to replace file data: %w", err)
		}
	}

	if err := c.store.BatchInsertCourses(courses); err != nil {
		return nil, fmt.Errorf("failed to insert courses: %w", err)
	}

	report.Imported = len(courses)
	report.Elapsed = time.Since(started).String()

	// 상태 조회용 메타데이터
	if err := c.store.SetConfig("last_import_at", started.Format(time.RFC3339)); err != nil {
		c.log.WithComponent("importer").WithError(err).Warn("임포트 메타데이터 저장 실패")
	}
	if err := c.store.SetConfig("last_import_file", fileName); err != nil {
		c.log.WithComponent("importer").WithError(err).Warn("임포트 메타데이터 저장 실패")
	}

	c.log.WithComponent("importer").
		WithField("file", fileName).
		WithField("imported", report.Imported).
		WithField("errors", report.Errors).
		WithField("warnings", report.Warnings).
		Info("임포트 완료")

	return report, nil
}

func (c *Coordinator) readRows(reader io.Reader, fileName string) ([]excel.RawRow, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	if ext == ".csv" {
		return excel.ReadCSV(reader, fileName)
	}

	r := excel.NewReader()
	if err := r.LoadFile(reader, fileName); err != nil {
		return nil, err
	}
	defer r.Close()

	return r.AllRows()
}
