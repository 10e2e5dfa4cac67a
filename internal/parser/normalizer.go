package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"kdtboard/internal/model"
)

// 원본 컬럼명 → 후보 키 목록
// 연도별로 시트 서식이 조금씩 달라 컬럼명 변형을 순서대로 조회한다.
var headerAliases = map[string][]string{
	"trainingId":   {"훈련과정 ID", "훈련과정ID", "과정ID", "고유값"},
	"name":         {"과정명", "훈련과정명", "과정 이름"},
	"round":        {"회차", "기수"},
	"institution":  {"훈련기관", "훈련기관명", "기관명"},
	"partner":      {"파트너기관", "파트너 기관", "협약기관"},
	"leading":      {"선도기업", "선도 기업", "참여기업"},
	"ncsCode":      {"NCS코드", "NCS 코드"},
	"ncsName":      {"NCS명", "NCS 분류명"},
	"startDate":    {"과정시작일", "훈련시작일", "시작일"},
	"endDate":      {"과정종료일", "훈련종료일", "종료일"},
	"totalDays":    {"총 훈련일수", "총훈련일수", "훈련일수"},
	"totalHours":   {"총 훈련시간", "총훈련시간", "훈련시간"},
	"enrolled":     {"수강신청 인원", "수강신청인원", "신청인원", "정원"},
	"completed":    {"수료인원", "수료 인원"},
	"complRate":    {"수료율"},
	"satisfaction": {"만족도", "만족도 점수"},
	"cumulative":   {"누적매출", "누적 매출", "매출 최대"},
	"vsTarget":     {"실 매출 대비", "실매출대비"},
	"trainingType": {"훈련유형", "훈련 유형"},
}

// RowNormalizer 원본 행 정규화기
// 스프레드시트의 느슨한 문자열 행을 타입이 있는 Course로 바꾼다.
type RowNormalizer struct {
	now time.Time
}

// NewRowNormalizer 정규화기 생성
// now는 날짜 파싱 실패 시의 대체값이자 처리 기준 시각이다.
func NewRowNormalizer(now time.Time) *RowNormalizer {
	return &RowNormalizer{now: now}
}

// Normalize 원본 행 하나를 Course로 변환
// 모든 비정상 입력은 0/빈값으로 강등되며 이 함수는 실패하지 않는다.
func (n *RowNormalizer) Normalize(raw map[string]string, rowNo int) *model.Course {
	get := func(field string) string {
		for _, key := range headerAliases[field] {
			if v, ok := raw[key]; ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
		return ""
	}

	c := &model.Course{
		ID:                 uuid.New().String(),
		RowNo:              rowNo,
		TrainingID:         get("trainingId"),
		Name:               get("name"),
		Institution:        get("institution"),
		PartnerInstitution: cleanParty(get("partner")),
		LeadingCompany:     cleanParty(get("leading")),
		NcsCode:            get("ncsCode"),
		NcsName:            get("ncsName"),
		SourceFile:         raw["__source_file"],
		SourceSheet:        raw["__source_sheet"],
		CreatedAt:          n.now,
	}

	c.Round = int(ParseNumber(get("round")))
	if c.Round == 0 {
		c.Round = 1
	}

	c.StartDate = ParseDate(get("startDate"), n.now)
	c.EndDate = ParseDate(get("endDate"), n.now)
	if c.EndDate.Before(c.StartDate) {
		c.InvalidPeriod = true
	}

	// 훈련일수: 명시 값이 있으면 우선, 없으면 달력 일수 계산
	if v := get("totalDays"); !IsBlank(v) {
		c.TotalDays = int(ParseNumber(v))
	} else {
		c.TotalDays = CalendarDays(c.StartDate, c.EndDate)
	}
	// 훈련시간: 명시 값이 없으면 일수 × 8
	if v := get("totalHours"); !IsBlank(v) {
		c.TotalHours = int(ParseNumber(v))
	} else {
		c.TotalHours = c.TotalDays * 8
	}

	c.Enrolled = int(ParseNumber(get("enrolled")))
	c.Completed = int(ParseNumber(get("completed")))
	c.CompletionRate = ParsePercent(get("complRate"))
	if c.CompletionRate == 0 {
		c.CompletionRate = c.ActualCompletionRate()
	}
	c.Satisfaction = ParsePercent(get("satisfaction"))
	c.RevenueVsTarget = ParsePercent(get("vsTarget"))

	// 연도별 매출 컬럼 ("2021년" ~ "2026년")
	var yearSum float64
	for _, year := range model.RevenueYears() {
		key := strconv.Itoa(year) + "년"
		v := ParseNumber(raw[key])
		switch year {
		case 2021:
			c.Revenue2021 = v
		case 2022:
			c.Revenue2022 = v
		case 2023:
			c.Revenue2023 = v
		case 2024:
			c.Revenue2024 = v
		case 2025:
			c.Revenue2025 = v
		case 2026:
			c.Revenue2026 = v
		}
		yearSum += v
	}

	c.CumulativeRevenue = ParseNumber(get("cumulative"))
	if c.CumulativeRevenue == 0 {
		c.CumulativeRevenue = yearSum
	}

	c.IsLeadingCompany = IsLeadingCompanyCourse(c.PartnerInstitution, c.LeadingCompany)
	c.TrainingType = get("trainingType")
	if c.TrainingType == "" {
		c.TrainingType = ClassifyTrainingType(c.Name, c.Institution, c.PartnerInstitution)
	}

	return c
}

// cleanParty 기관 필드 정리
// "0", "-" 등 빈 값 표기는 빈 문자열로 강등
func cleanParty(v string) string {
	if IsBlank(v) {
		return ""
	}
	return v
}
