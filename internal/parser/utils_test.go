package parser

import (
	"testing"
	"time"
)

// TestParseNumber 숫자 파싱
func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"천단위 구분자", "1,234,567", 1234567},
		{"공백 포함", " 1 234 ", 1234},
		{"퍼센트 기호", "85%", 85},
		{"통화 단위", "3000만원", 3000},
		{"원 단위", "1,000,000원", 1000000},
		{"빈 문자열", "", 0},
		{"하이픈", "-", 0},
		{"N/A", "N/A", 0},
		{"소문자 n/a", "n/a", 0},
		{"숫자 아님", "abc", 0},
		{"소수", "12.5", 12.5},
		{"음수", "-42", -42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseNumber(tt.input)
			if result != tt.expected {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestParsePercent 퍼센트 파싱
func TestParsePercent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"기호 포함", "92.5%", 92.5},
		{"기호 없음", "88", 88},
		{"공백", " 75 % ", 75},
		{"빈 문자열", "", 0},
		{"숫자 아님", "높음", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParsePercent(tt.input)
			if result != tt.expected {
				t.Errorf("ParsePercent(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestParseDate 날짜 파싱
func TestParseDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"ISO 형식", "2023-11-01", time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)},
		{"점 구분", "2023.11.01", time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)},
		{"슬래시 구분", "2023/11/01", time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)},
		{"한글 형식", "2023년 11월 1일", time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)},
		{"한자리 월일", "2023-1-2", time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseDate(tt.input, now)
			if !result.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestParseDateFallback 파싱 실패 시 now 반환
func TestParseDateFallback(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"", "미정", "2023-13-45"} {
		result := ParseDate(input, now)
		if !result.Equal(now) {
			t.Errorf("ParseDate(%q) = %v, want fallback %v", input, result, now)
		}
	}
}

// TestCalendarDays 달력 일수 계산
func TestCalendarDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	if got := CalendarDays(start, end); got != 31 {
		t.Errorf("CalendarDays = %d, want 31", got)
	}
	if got := CalendarDays(start, start); got != 1 {
		t.Errorf("같은 날 CalendarDays = %d, want 1", got)
	}
	if got := CalendarDays(end, start); got != 0 {
		t.Errorf("역순 CalendarDays = %d, want 0", got)
	}
}
