package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"kdtboard/internal/aggregate"
)

// Exporter 통계 워크북 생성기
type Exporter struct{}

// NewExporter 생성
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export 집계 스냅샷을 엑셀 워크북으로 변환
// 시트: 과정 목록 + 기관별/과정별/연도별/월별/NCS별/선도기업별 통계.
func (e *Exporter) Export(snapshot *aggregate.Snapshot, monthlyYear int) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	if err := e.writeCourseSheet(f, snapshot, headerStyle); err != nil {
		return nil, err
	}
	e.writeInstitutionSheet(f, snapshot, headerStyle)
	e.writeCourseStatSheet(f, snapshot, headerStyle)
	e.writeYearlySheet(f, snapshot, headerStyle)
	e.writeMonthlySheet(f, snapshot, monthlyYear, headerStyle)
	e.writeNcsSheet(f, snapshot, headerStyle)
	e.writeLeadingCompanySheet(f, snapshot, headerStyle)

	return f, nil
}

func (e *Exporter) writeCourseSheet(f *excelize.File, snapshot *aggregate.Snapshot, headerStyle int) error {
	sheet := "과정 목록"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"연번", "훈련과정 ID", "과정명", "회차", "훈련기관", "기관 그룹",
		"파트너기관", "선도기업", "훈련유형", "NCS코드",
		"개강일", "종강일", "수강신청 인원", "수료인원", "수료율", "만족도",
		"누적매출", "조정 누적매출",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetRowStyle(sheet, 1, 1, headerStyle)

	for i, c := range snapshot.Courses() {
		row := i + 2
		values := []interface{}{
			c.RowNo, c.TrainingID, c.Name, c.Round, c.Institution, c.InstitutionGroup,
			c.PartnerInstitution, c.LeadingCompany, c.TrainingType, c.NcsCode,
			c.StartDate.Format("2006-01-02"), c.EndDate.Format("2006-01-02"),
			c.Enrolled, c.Completed,
			fmt.Sprintf("%.1f%%", c.CompletionRate), fmt.Sprintf("%.1f", c.Satisfaction),
			c.CumulativeRevenue, c.AdjustedCumulativeRevenue,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "B", "C", 30)
	f.SetColWidth(sheet, "E", "H", 22)
	return nil
}

// 통계 시트 공통 레이아웃: 라벨 + 과정 수 + 매출 + 인원 + 비율
func writeStatRows(f *excelize.File, sheet string, headerStyle int, headers []string, rows [][]interface{}) {
	f.NewSheet(sheet)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetRowStyle(sheet, 1, 1, headerStyle)

	for i, row := range rows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "A", 30)
}

func (e *Exporter) writeInstitutionSheet(f *excelize.File, snapshot *aggregate.Snapshot, headerStyle int) {
	rows := [][]interface{}{}
	for _, s := range snapshot.Institutions() {
		rows = append(rows, []interface{}{
			s.Institution, s.CourseCount, s.TotalRevenue, s.Enrolled, s.Completed,
			fmt.Sprintf("%.1f%%", s.CompletionRate), fmt.Sprintf("%.1f", s.Satisfaction),
		})
	}
	writeStatRows(f, "기관별", headerStyle,
		[]string{"기관", "과정 수", "조정 매출", "수강신청 인원", "수료인원", "수료율", "만족도"},
		rows)
}

func (e *Exporter) writeCourseStatSheet(f *excelize.File, snapshot *aggregate.Snapshot, headerStyle int) {
	rows := [][]interface{}{}
	for _, s := range snapshot.ByCourse() {
		rows = append(rows, []interface{}{
			s.Name, s.Institution, s.RoundCount, s.TotalRevenue, s.Enrolled, s.Completed,
			fmt.Sprintf("%.1f%%", s.CompletionRate), fmt.Sprintf("%.1f", s.Satisfaction),
		})
	}
	writeStatRows(f, "과정별", headerStyle,
		[]string{"과정명", "기관", "회차 수", "조정 매출", "수강신청 인원", "수료인원", "수료율", "만족도"},
		rows)
}

func (e *Exporter) writeYearlySheet(f *excelize.File, snapshot *aggregate.Snapshot, headerStyle int) {
	rows := [][]interface{}{}
	for _, s := range snapshot.Yearly() {
		rows = append(rows, []interface{}{
			s.Year, s.CourseCount, s.PrevYearStarted, s.TotalRevenue, s.Enrolled, s.Completed,
			fmt.Sprintf("%.1f%%", s.CompletionRate), fmt.Sprintf("%.1f", s.Satisfaction),
		})
	}
	writeStatRows(f, "연도별", headerStyle,
		[]string{"연도", "개강 과정 수", "전년도 이월", "조정 매출", "수강신청 인원", "수료인원", "수료율", "만족도"},
		rows)
}

func (e *Exporter) writeMonthlySheet(f *excelize.File, snapshot *aggregate.Snapshot, year int, headerStyle int) {
	rows := [][]interface{}{}
	for _, s := range snapshot.Monthly(year) {
		rows = append(rows, []interface{}{
			fmt.Sprintf("%d월", s.Month), s.CourseCount, s.Revenue, s.Enrolled, s.Completed,
			fmt.Sprintf("%.1f%%", s.CompletionRate),
		})
	}
	writeStatRows(f, fmt.Sprintf("월별(%d)", year), headerStyle,
		[]string{"월", "개강 과정 수", "조정 매출", "수강신청 인원", "수료인원", "수료율"},
		rows)
}

func (e *Exporter) writeNcsSheet(f *excelize.File, snapshot *aggregate.Snapshot, headerStyle int) {
	rows := [][]interface{}{}
	for _, s := range snapshot.ByNcs() {
		rows = append(rows, []interface{}{
			s.NcsCode, s.NcsName, s.CourseCount, s.TotalRevenue, s.Enrolled, s.Completed,
			fmt.Sprintf("%.1f%%", s.CompletionRate),
		})
	}
	writeStatRows(f, "NCS별", headerStyle,
		[]string{"NCS코드", "NCS명", "과정 수", "조정 매출", "수강신청 인원", "수료인원", "수료율"},
		rows)
}

func (e *Exporter) writeLeadingCompanySheet(f *excelize.File, snapshot *aggregate.Snapshot, headerStyle int) {
	rows := [][]interface{}{}
	for _, s := range snapshot.ByLeadingCompany() {
		rows = append(rows, []interface{}{
			s.LeadingCompany, s.CourseCount, s.TotalRevenue, s.Enrolled, s.Completed,
			fmt.Sprintf("%.1f%%", s.CompletionRate), fmt.Sprintf("%.1f", s.Satisfaction),
		})
	}
	writeStatRows(f, "선도기업별", headerStyle,
		[]string{"선도기업", "과정 수", "조정 매출", "수강신청 인원", "수료인원", "수료율", "만족도"},
		rows)
}
