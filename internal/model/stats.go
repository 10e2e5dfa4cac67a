package model

// InstitutionStat 기관별 통계
// 선도기업형 과정은 파트너기관/훈련기관 분배 규칙 적용 후 집계된다.
type InstitutionStat struct {
	Institution    string  `json:"institution"`    // 정제된 기관명
	CourseCount    int     `json:"courseCount"`    // 과정 수 (분배 후 기여 기준)
	TotalRevenue   float64 `json:"totalRevenue"`   // 조정 매출 합계
	Enrolled       int     `json:"enrolled"`       // 수강신청 인원 합계
	Completed      int     `json:"completed"`      // 수료인원 합계
	CompletionRate float64 `json:"completionRate"` // 가중 수료율 (수료 0건 제외)
	Satisfaction   float64 `json:"satisfaction"`   // 수료인원 가중 만족도 (0점 제외)
}

// CourseStat 훈련과정 ID별 통계
type CourseStat struct {
	TrainingID     string  `json:"trainingId"`
	Name           string  `json:"name"` // 가장 최근 개강 회차의 과정명
	Institution    string  `json:"institution"`
	RoundCount     int     `json:"roundCount"` // 회차 수
	TotalRevenue   float64 `json:"totalRevenue"`
	Enrolled       int     `json:"enrolled"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
	Satisfaction   float64 `json:"satisfaction"`
}

// YearlyStat 연도별 통계
type YearlyStat struct {
	Year            int     `json:"year"`
	CourseCount     int     `json:"courseCount"`     // 해당 연도 개강 과정 수
	PrevYearStarted int     `json:"prevYearStarted"` // 전년도 개강 · 당해 종료 과정 수 (괄호 표기용)
	TotalRevenue    float64 `json:"totalRevenue"`    // 해당 연도 조정 매출 합계
	Enrolled        int     `json:"enrolled"`
	Completed       int     `json:"completed"`
	CompletionRate  float64 `json:"completionRate"`
	Satisfaction    float64 `json:"satisfaction"`
}

// MonthlyStat 월별 통계
// 매출은 과정 기간이 걸치는 월에 균등 배분, 인원은 개강 월에만 계상.
type MonthlyStat struct {
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	Revenue        float64 `json:"revenue"`
	CourseCount    int     `json:"courseCount"` // 해당 월 개강 과정 수
	Enrolled       int     `json:"enrolled"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

// NcsStat NCS 분류별 통계
type NcsStat struct {
	NcsCode        string  `json:"ncsCode"`
	NcsName        string  `json:"ncsName"`
	CourseCount    int     `json:"courseCount"`
	TotalRevenue   float64 `json:"totalRevenue"`
	Enrolled       int     `json:"enrolled"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
	Satisfaction   float64 `json:"satisfaction"`
}

// LeadingCompanyStat 선도기업별 통계
type LeadingCompanyStat struct {
	LeadingCompany string  `json:"leadingCompany"`
	CourseCount    int     `json:"courseCount"`
	TotalRevenue   float64 `json:"totalRevenue"`
	Enrolled       int     `json:"enrolled"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
	Satisfaction   float64 `json:"satisfaction"`
}
