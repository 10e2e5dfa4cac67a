package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	numberStripRe = regexp.MustCompile(`[,\s%]`)
	currencyRe    = regexp.MustCompile(`(억원|만원|천원|원)$`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// ParseNumber 느슨한 숫자 문자열을 파싱
// 천단위 구분자/공백/%/통화 단위를 제거한다.
// 빈 문자열, "-", "N/A", 파싱 불가 값은 모두 0으로 처리. 이 함수는 실패하지 않는다.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" || strings.EqualFold(s, "N/A") {
		return 0
	}
	s = currencyRe.ReplaceAllString(s, "")
	s = numberStripRe.ReplaceAllString(s, "")
	if s == "" || s == "-" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParsePercent 퍼센트 문자열을 파싱 ("85%" → 85)
// %와 공백만 제거한다. 파싱 불가 값은 0.
func ParsePercent(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" || strings.EqualFold(s, "N/A") {
		return 0
	}
	s = strings.ReplaceAll(s, "%", "")
	s = whitespaceRe.ReplaceAllString(s, "")
	if s == "" || s == "-" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// 지원하는 날짜 형식 (순서대로 시도)
var dateLayouts = []string{
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"2006-1-2",
	"2006.1.2",
	"2006/1/2",
	"20060102",
	"2006년 1월 2일",
	"2006년1월2일",
	time.RFC3339,
}

// ParseDate 날짜 문자열을 파싱
// 파싱 불가 시 오류 대신 now를 반환한다. 호출측은 잘못된 입력이
// 조용히 현재 시각이 될 수 있음을 감수해야 한다.
func ParseDate(raw string, now time.Time) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return now
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	// Excel 직렬값 (1900-01-01 기준 일수)
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 20000 && serial < 80000 {
		base := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
		return base.AddDate(0, 0, int(serial))
	}
	return now
}

// CalendarDays 시작일~종료일 달력 일수 (양끝 포함)
func CalendarDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// IsBlank 값이 비어 있거나 0 표기인지 판단
func IsBlank(raw string) bool {
	s := strings.TrimSpace(raw)
	return s == "" || s == "-" || s == "0" || strings.EqualFold(s, "N/A")
}
