package exporter

import (
	"testing"
	"time"

	"kdtboard/internal/aggregate"
	"kdtboard/internal/model"
)

// TestExportSheets 통계 워크북 시트 구성과 기관별 시트 내용
func TestExportSheets(t *testing.T) {
	courses := []*model.Course{
		{
			ID: "a", RowNo: 1, TrainingID: "T1", Name: "백엔드 과정",
			Institution: "기관A", InstitutionGroup: "기관A",
			StartDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 6, 28, 0, 0, 0, 0, time.UTC),
			Enrolled:  25, Completed: 20,
			CumulativeRevenue: 150000000, AdjustedCumulativeRevenue: 160000000,
			AdjustedRevenue2024: 160000000,
		},
	}
	snapshot := aggregate.NewSnapshot(courses)

	f, err := NewExporter().Export(snapshot, 2024)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	defer f.Close()

	want := []string{"과정 목록", "기관별", "과정별", "연도별", "월별(2024)", "NCS별", "선도기업별"}
	sheets := f.GetSheetList()
	has := make(map[string]bool, len(sheets))
	for _, s := range sheets {
		has[s] = true
	}
	for _, name := range want {
		if !has[name] {
			t.Errorf("시트 %q 누락 (전체: %v)", name, sheets)
		}
	}

	// 기관별 시트 첫 데이터 행
	name, err := f.GetCellValue("기관별", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if name != "기관A" {
		t.Errorf("기관별 A2 = %q, want 기관A", name)
	}
}
