package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// TestFindHeaderRow 제목·빈 줄 아래의 헤더 행 탐지
func TestFindHeaderRow(t *testing.T) {
	rows := [][]string{
		{"KDT 과정 현황"},
		{},
		{"연번", "과정명", "훈련기관", "개강일", "종강일"},
		{"1", "클라우드 엔지니어링", "기관A", "2024-01-02", "2024-06-28"},
	}

	if got := findHeaderRow(rows); got != 2 {
		t.Errorf("findHeaderRow = %d, want 2", got)
	}
}

// TestFindHeaderRowNotFound 표식이 없으면 -1
func TestFindHeaderRowNotFound(t *testing.T) {
	rows := [][]string{
		{"요약"},
		{"합계", "123"},
	}

	if got := findHeaderRow(rows); got != -1 {
		t.Errorf("findHeaderRow = %d, want -1", got)
	}
}

// TestReaderRows 워크북에서 데이터 행 읽기
func TestReaderRows(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	data := [][]interface{}{
		{"과정명", "훈련기관", "수강신청 인원", "수료인원"},
		{"백엔드 과정", "기관A", "25", "20"},
		{},
		{"프론트엔드 과정", "기관B", "30", "24"},
	}
	for i, row := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	r := NewReader()
	if err := r.LoadFile(&buf, "test.xlsx"); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	defer r.Close()

	rows, err := r.Rows(sheet)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}

	// 빈 행은 건너뛰고 2건
	if len(rows) != 2 {
		t.Fatalf("행 수 = %d, want 2", len(rows))
	}
	if rows[0].Cells["과정명"] != "백엔드 과정" {
		t.Errorf("과정명 = %q, want 백엔드 과정", rows[0].Cells["과정명"])
	}
	if rows[0].RowNo != 2 {
		t.Errorf("RowNo = %d, want 2", rows[0].RowNo)
	}
	if rows[1].Cells["훈련기관"] != "기관B" {
		t.Errorf("훈련기관 = %q, want 기관B", rows[1].Cells["훈련기관"])
	}
	if rows[0].File != "test.xlsx" {
		t.Errorf("File = %q, want test.xlsx", rows[0].File)
	}
}

// TestReadCSV CSV 읽기 (BOM 포함)
func TestReadCSV(t *testing.T) {
	input := "\uFEFF과정명,훈련기관,수강신청 인원\n" +
		"데이터 분석 과정,기관A,20\n" +
		",,\n" +
		"AI 과정,기관B,30\n"

	rows, err := ReadCSV(strings.NewReader(input), "test.csv")
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("행 수 = %d, want 2", len(rows))
	}
	if rows[0].Cells["과정명"] != "데이터 분석 과정" {
		t.Errorf("과정명 = %q, want 데이터 분석 과정", rows[0].Cells["과정명"])
	}
	if rows[1].Cells["훈련기관"] != "기관B" {
		t.Errorf("훈련기관 = %q, want 기관B", rows[1].Cells["훈련기관"])
	}
}
