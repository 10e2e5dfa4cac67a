package model

import "time"

// 연도별 매출 컬럼 범위 (2021년 ~ 2026년)
const (
	FirstRevenueYear = 2021
	LastRevenueYear  = 2026
)

// Course KDT 훈련과정 (한 행 = 한 회차)
type Course struct {
	ID    string `json:"id"`
	RowNo int    `json:"rowNo"`

	// 식별 정보
	TrainingID string `json:"trainingId"` // 훈련과정 ID (동일 과정의 반복 개설에서 공유)
	Name       string `json:"name"`       // 과정명
	Round      int    `json:"round"`      // 회차

	// 기관 정보
	Institution        string `json:"institution"`        // 훈련기관 (원본)
	InstitutionGroup   string `json:"institutionGroup"`   // 정제된 기관명
	PartnerInstitution string `json:"partnerInstitution"` // 파트너기관
	LeadingCompany     string `json:"leadingCompany"`     // 선도기업
	IsLeadingCompany   bool   `json:"isLeadingCompany"`   // 선도기업형 과정 여부
	TrainingType       string `json:"trainingType"`       // 훈련유형

	// NCS 분류
	NcsCode string `json:"ncsCode"`
	NcsName string `json:"ncsName"`

	// 기간
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	InvalidPeriod bool      `json:"invalidPeriod"` // 종료일 < 시작일 (버리지 않고 표시만)
	TotalDays     int       `json:"totalDays"`
	TotalHours    int       `json:"totalHours"`

	// 인원
	Enrolled  int `json:"enrolled"`  // 수강신청 인원
	Completed int `json:"completed"` // 수료인원

	// 비율
	CompletionRate float64 `json:"completionRate"` // 수료율 (0~100)
	Satisfaction   float64 `json:"satisfaction"`   // 만족도 (0~100, 0이면 데이터 없음)

	// 매출 (원본)
	Revenue2021       float64 `json:"revenue2021"`
	Revenue2022       float64 `json:"revenue2022"`
	Revenue2023       float64 `json:"revenue2023"`
	Revenue2024       float64 `json:"revenue2024"`
	Revenue2025       float64 `json:"revenue2025"`
	Revenue2026       float64 `json:"revenue2026"`
	CumulativeRevenue float64 `json:"cumulativeRevenue"`
	RevenueVsTarget   float64 `json:"revenueVsTarget"` // 실 매출 대비 (%)

	// 조정 매출 (수료율 보정 후, 원본과 별도 유지)
	AdjustedRevenue2021       float64 `json:"adjustedRevenue2021"`
	AdjustedRevenue2022       float64 `json:"adjustedRevenue2022"`
	AdjustedRevenue2023       float64 `json:"adjustedRevenue2023"`
	AdjustedRevenue2024       float64 `json:"adjustedRevenue2024"`
	AdjustedRevenue2025       float64 `json:"adjustedRevenue2025"`
	AdjustedRevenue2026       float64 `json:"adjustedRevenue2026"`
	AdjustedCumulativeRevenue float64 `json:"adjustedCumulativeRevenue"`

	// 메타데이터
	SourceSheet string    `json:"sourceSheet"`
	SourceFile  string    `json:"sourceFile"`
	CreatedAt   time.Time `json:"createdAt"`
}

// YearRevenue 해당 연도의 원본 매출
func (c *Course) YearRevenue(year int) float64 {
	switch year {
	case 2021:
		return c.Revenue2021
	case 2022:
		return c.Revenue2022
	case 2023:
		return c.Revenue2023
	case 2024:
		return c.Revenue2024
	case 2025:
		return c.Revenue2025
	case 2026:
		return c.Revenue2026
	}
	return 0
}

// AdjustedYearRevenue 해당 연도의 조정 매출
func (c *Course) AdjustedYearRevenue(year int) float64 {
	switch year {
	case 2021:
		return c.AdjustedRevenue2021
	case 2022:
		return c.AdjustedRevenue2022
	case 2023:
		return c.AdjustedRevenue2023
	case 2024:
		return c.AdjustedRevenue2024
	case 2025:
		return c.AdjustedRevenue2025
	case 2026:
		return c.AdjustedRevenue2026
	}
	return 0
}

// SetAdjustedYearRevenue 해당 연도의 조정 매출 기록
func (c *Course) SetAdjustedYearRevenue(year int, value float64) {
	switch year {
	case 2021:
		c.AdjustedRevenue2021 = value
	case 2022:
		c.AdjustedRevenue2022 = value
	case 2023:
		c.AdjustedRevenue2023 = value
	case 2024:
		c.AdjustedRevenue2024 = value
	case 2025:
		c.AdjustedRevenue2025 = value
	case 2026:
		c.AdjustedRevenue2026 = value
	}
}

// ActualCompletionRate 실제 수료율 (수료인원/수강신청 인원 × 100)
func (c *Course) ActualCompletionRate() float64 {
	if c.Enrolled == 0 {
		return 0
	}
	return float64(c.Completed) / float64(c.Enrolled) * 100
}

// RevenueYears 연도 컬럼 목록
func RevenueYears() []int {
	years := make([]int, 0, LastRevenueYear-FirstRevenueYear+1)
	for y := FirstRevenueYear; y <= LastRevenueYear; y++ {
		years = append(years, y)
	}
	return years
}

// ValidationError 구조 검증 오류
type ValidationError struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // error or warning
}

// Validate 과정 데이터 구조 검증
// 오류가 있어도 레코드는 버리지 않는다. 판단은 호출측 몫이다.
func (c *Course) Validate() []ValidationError {
	var errors []ValidationError

	if c.Name == "" {
		errors = append(errors, ValidationError{
			Field:    "name",
			Message:  "과정명이 비어 있습니다",
			Severity: "error",
		})
	}
	if c.Institution == "" {
		errors = append(errors, ValidationError{
			Field:    "institution",
			Message:  "훈련기관이 비어 있습니다",
			Severity: "error",
		})
	}
	if c.Enrolled < 0 {
		errors = append(errors, ValidationError{
			Field:    "enrolled",
			Message:  "수강신청 인원은 음수일 수 없습니다",
			Severity: "error",
		})
	}
	if c.Completed < 0 {
		errors = append(errors, ValidationError{
			Field:    "completed",
			Message:  "수료인원은 음수일 수 없습니다",
			Severity: "error",
		})
	}
	if c.CumulativeRevenue < 0 {
		errors = append(errors, ValidationError{
			Field:    "cumulativeRevenue",
			Message:  "누적 매출은 음수일 수 없습니다",
			Severity: "error",
		})
	}
	if c.InvalidPeriod {
		errors = append(errors, ValidationError{
			Field:    "endDate",
			Message:  "종료일이 시작일보다 빠릅니다",
			Severity: "warning",
		})
	}
	if c.Completed > c.Enrolled && c.Enrolled > 0 {
		errors = append(errors, ValidationError{
			Field:    "completed",
			Message:  "수료인원이 수강신청 인원을 초과합니다",
			Severity: "warning",
		})
	}

	return errors
}
