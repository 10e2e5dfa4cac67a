package excel

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadCSV CSV 파일을 RawRow 목록으로 읽기
// 엑셀과 같은 헤더 탐지 규칙을 쓴다. BOM은 제거한다.
func ReadCSV(reader io.Reader, fileName string) ([]RawRow, error) {
	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1 // 행마다 열 수가 다를 수 있음

	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		rows = append(rows, record)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\uFEFF")
	}

	headerIdx := findHeaderRow(rows)
	if headerIdx < 0 {
		return nil, errors.New("no header row found in csv")
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
			RowNo: headerIdx + i + 2,
			Cells: cells,
			Sheet: "csv",
			File:  fileName,
		})
	}

	return out, nil
}
