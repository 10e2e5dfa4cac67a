package excel

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// RawRow 시트에서 읽은 한 행 (헤더명 → 셀 값)
type RawRow struct {
	RowNo int // 시트상의 행 번호 (헤더 다음 행 = 헤더행+1)
	Cells map[string]string
	Sheet string
	File  string
}

// SheetInfo 시트 요약
type SheetInfo struct {
	Name     string `json:"name"`
	RowCount int    `json:"rowCount"`
}

// Reader 업로드된 엑셀 파일 리더
type Reader struct {
	file     *excelize.File
	fileID   string
	fileName string
}

// NewReader 리더 생성
func NewReader() *Reader {
	return &Reader{
		fileID: uuid.New().String(),
	}
}

// LoadFile 엑셀 파일 로드
func (r *Reader) LoadFile(reader io.Reader, fileName string) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	r.file = file
	r.fileName = fileName
	return nil
}

// FileID 파일 식별자
func (r *Reader) FileID() string {
	return r.fileID
}

// Sheets 시트 목록
func (r *Reader) Sheets() ([]SheetInfo, error) {
	if r.file == nil {
		return nil, errors.New("no file loaded")
	}

	sheets := r.file.GetSheetList()
	result := make([]SheetInfo, 0, len(sheets))

	for _, name := range sheets {
		rows, err := r.file.GetRows(name)
		if err != nil {
			continue
		}
		result = append(result, SheetInfo{
			Name:     name,
			RowCount: len(rows),
		})
	}

	return result, nil
}

// Rows 시트의 데이터 행 읽기
// 헤더 행은 상단 몇 줄 안에서 찾는다. 제목·빈 줄이 섞인 시트가 흔하다.
func (r *Reader) Rows(sheet string) ([]RawRow, error) {
	if r.file == nil {
		return nil, errors.New("no file loaded")
	}

	rows, err := r.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	headerIdx := findHeaderRow(rows)
	if headerIdx < 0 {
		return nil, fmt.Errorf("no header row found in sheet %s", sheet)
	}

	header := rows[headerIdx]
	out := make([]RawRow, 0, len(rows)-headerIdx-1)

	for i, row := range rows[headerIdx+1:] {
		if isEmptyRow(row) {
			continue
		}
		cells := make(map[string]string, len(header))
		for j, h := range header {
			h = strings.TrimSpace(h)
			if h == "" || j >= len(row) {
				continue
			}
			cells[h] = strings.TrimSpace(row[j])
		}
		out = append(out, RawRow{
			RowNo: headerIdx + i + 2, // 1-based 시트 행 번호
			Cells: cells,
			Sheet: sheet,
			File:  r.fileName,
		})
	}

	return out, nil
}

// AllRows 전체 시트의 데이터 행
// 헤더를 못 찾는 시트(표지·요약 등)는 건너뛴다.
func (r *Reader) AllRows() ([]RawRow, error) {
	if r.file == nil {
		return nil, errors.New("no file loaded")
	}

	var out []RawRow
	for _, sheet := range r.file.GetSheetList() {
		rows, err := r.Rows(sheet)
		if err != nil {
			continue
		}
		out = append(out, rows...)
	}

	if len(out) == 0 {
		return nil, errors.New("no data rows found in workbook")
	}

	return out, nil
}

// Close 파일 닫기
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// 헤더 행 판별용 표식. 둘 이상 나타나는 행을 헤더로 본다.
var headerMarkers = []string{
	"과정명", "훈련과정", "훈련기관", "개강일", "종강일", "회차",
	"수강신청", "수료인원", "수료율", "매출", "NCS",
}

const headerScanLimit = 10

func findHeaderRow(rows [][]string) int {
	limit := headerScanLimit
	if limit > len(rows) {
		limit = len(rows)
	}

	for i := 0; i < limit; i++ {
		hits := 0
		for _, cell := range rows[i] {
			cell = strings.TrimSpace(cell)
			for _, marker := range headerMarkers {
				if strings.Contains(cell, marker) {
					hits++
					break
				}
			}
		}
		if hits >= 2 {
			return i
		}
	}
	return -1
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
