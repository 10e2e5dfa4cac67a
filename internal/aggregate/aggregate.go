package aggregate

import (
	"sort"
	"time"

	"kdtboard/internal/allocate"
	"kdtboard/internal/apportion"
	"kdtboard/internal/model"
)

// Snapshot 집계 입력 스냅샷
// 보정이 끝난 과정 목록의 읽기 전용 묶음. 집계는 매 요청 새로 계산한다.
type Snapshot struct {
	courses []*model.Course
}

// NewSnapshot 스냅샷 생성
func NewSnapshot(courses []*model.Course) *Snapshot {
	return &Snapshot{courses: courses}
}

// Courses 원본 과정 목록
func (s *Snapshot) Courses() []*model.Course {
	return s.courses
}

// statAccumulator 키별 누산기
// 문자열 키 조합 대신 필드로 분리해 들고 다닌다.
type statAccumulator struct {
	courseCount   int
	revenue       float64
	enrolled      int
	completed     int
	rateEnrolled  int // 수료율 분모: 수료 0건 과정 제외
	rateCompleted int
	satWeightSum  float64 // 만족도 가중치(수료인원) 합, 만족도 0점 과정 제외
	satSum        float64
}

func (a *statAccumulator) addShare(sh allocate.Share, satisfaction float64) {
	a.revenue += sh.Revenue
	a.enrolled += sh.Enrolled
	a.completed += sh.Completed
	if sh.CountsOwner {
		a.courseCount++
		if sh.Enrolled > 0 && sh.Completed > 0 {
			a.rateEnrolled += sh.Enrolled
			a.rateCompleted += sh.Completed
			if satisfaction > 0 {
				a.satSum += satisfaction * float64(sh.Completed)
				a.satWeightSum += float64(sh.Completed)
			}
		}
	}
}

func (a *statAccumulator) addCourse(c *model.Course, revenue float64) {
	a.courseCount++
	a.revenue += revenue
	a.enrolled += c.Enrolled
	a.completed += c.Completed
	if c.Enrolled > 0 && c.Completed > 0 {
		a.rateEnrolled += c.Enrolled
		a.rateCompleted += c.Completed
		if c.Satisfaction > 0 {
			a.satSum += c.Satisfaction * float64(c.Completed)
			a.satWeightSum += float64(c.Completed)
		}
	}
}

func (a *statAccumulator) completionRate() float64 {
	if a.rateEnrolled == 0 {
		return 0
	}
	return float64(a.rateCompleted) / float64(a.rateEnrolled) * 100
}

func (a *statAccumulator) satisfaction() float64 {
	if a.satWeightSum == 0 {
		return 0
	}
	return a.satSum / a.satWeightSum
}

// Institutions 기관별 통계
// 선도기업형 과정은 분배 규칙을 거쳐 파트너/훈련기관 양쪽에 기여한다.
// 정렬: 조정 매출 내림차순, 동률은 기존 순서 유지.
func (s *Snapshot) Institutions() []model.InstitutionStat {
	accs := make(map[string]*statAccumulator)
	var order []string

	for _, c := range s.courses {
		for _, sh := range allocate.Split(c, c.AdjustedCumulativeRevenue) {
			a, ok := accs[sh.Institution]
			if !ok {
				a = &statAccumulator{}
				accs[sh.Institution] = a
				order = append(order, sh.Institution)
			}
			a.addShare(sh, c.Satisfaction)
		}
	}

	stats := make([]model.InstitutionStat, 0, len(order))
	for _, name := range order {
		a := accs[name]
		stats = append(stats, model.InstitutionStat{
			Institution:    name,
			CourseCount:    a.courseCount,
			TotalRevenue:   a.revenue,
			Enrolled:       a.enrolled,
			Completed:      a.completed,
			CompletionRate: a.completionRate(),
			Satisfaction:   a.satisfaction(),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalRevenue > stats[j].TotalRevenue
	})
	return stats
}

// courseAccumulator 훈련과정 ID별 누산기 (최신 과정명 추적 포함)
type courseAccumulator struct {
	statAccumulator
	latestStart time.Time
	latestName  string
	institution string
}

// ByCourse 훈련과정 ID별 통계
// 표시 과정명은 가장 최근 개강 회차의 이름을 쓴다.
func (s *Snapshot) ByCourse() []model.CourseStat {
	accs := make(map[string]*courseAccumulator)
	var order []string

	for _, c := range s.courses {
		key := c.TrainingID
		if key == "" {
			key = c.Name
		}
		a, ok := accs[key]
		if !ok {
			a = &courseAccumulator{}
			accs[key] = a
			order = append(order, key)
		}
		a.addCourse(c, c.AdjustedCumulativeRevenue)
		// 과정명이 빈 회차는 표시명 후보에서 제외한다
		if c.Name != "" && (a.latestName == "" || c.StartDate.After(a.latestStart)) {
			a.latestStart = c.StartDate
			a.latestName = c.Name
			a.institution = c.InstitutionGroup
			if a.institution == "" {
				a.institution = c.Institution
			}
		}
	}

	stats := make([]model.CourseStat, 0, len(order))
	for _, key := range order {
		a := accs[key]
		stats = append(stats, model.CourseStat{
			TrainingID:     key,
			Name:           a.latestName,
			Institution:    a.institution,
			RoundCount:     a.courseCount,
			TotalRevenue:   a.revenue,
			Enrolled:       a.enrolled,
			Completed:      a.completed,
			CompletionRate: a.completionRate(),
			Satisfaction:   a.satisfaction(),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalRevenue > stats[j].TotalRevenue
	})
	return stats
}

// Yearly 연도별 통계
// 매출은 연도 컬럼의 조정값 합계. 인원·수료율은 당해 개강 과정과
// 전년도 개강·당해 종료 과정을 모두 포함하되, 후자는 별도 버킷으로도 센다.
func (s *Snapshot) Yearly() []model.YearlyStat {
	stats := make([]model.YearlyStat, 0, len(model.RevenueYears()))

	for _, year := range model.RevenueYears() {
		a := &statAccumulator{}
		prevYearStarted := 0

		for _, c := range s.courses {
			a.revenue += c.AdjustedYearRevenue(year)

			startedThisYear := c.StartDate.Year() == year
			carriedOver := c.StartDate.Year() == year-1 && c.EndDate.Year() == year
			if !startedThisYear && !carriedOver {
				continue
			}
			if carriedOver {
				prevYearStarted++
			} else {
				a.courseCount++
			}
			a.enrolled += c.Enrolled
			a.completed += c.Completed
			if c.Enrolled > 0 && c.Completed > 0 {
				a.rateEnrolled += c.Enrolled
				a.rateCompleted += c.Completed
				if c.Satisfaction > 0 {
					a.satSum += c.Satisfaction * float64(c.Completed)
					a.satWeightSum += float64(c.Completed)
				}
			}
		}

		stats = append(stats, model.YearlyStat{
			Year:            year,
			CourseCount:     a.courseCount,
			PrevYearStarted: prevYearStarted,
			TotalRevenue:    a.revenue,
			Enrolled:        a.enrolled,
			Completed:       a.completed,
			CompletionRate:  a.completionRate(),
			Satisfaction:    a.satisfaction(),
		})
	}

	return stats
}

// Monthly 월별 통계 (해당 연도)
func (s *Snapshot) Monthly(year int) []model.MonthlyStat {
	return apportion.MonthlyStats(s.courses, year)
}

// ByNcs NCS 분류별 통계
func (s *Snapshot) ByNcs() []model.NcsStat {
	type ncsAccumulator struct {
		statAccumulator
		name string
	}
	accs := make(map[string]*ncsAccumulator)
	var order []string

	for _, c := range s.courses {
		if c.NcsCode == "" {
			continue
		}
		a, ok := accs[c.NcsCode]
		if !ok {
			a = &ncsAccumulator{name: c.NcsName}
			accs[c.NcsCode] = a
			order = append(order, c.NcsCode)
		}
		if a.name == "" {
			a.name = c.NcsName
		}
		a.addCourse(c, c.AdjustedCumulativeRevenue)
	}

	stats := make([]model.NcsStat, 0, len(order))
	for _, code := range order {
		a := accs[code]
		stats = append(stats, model.NcsStat{
			NcsCode:        code,
			NcsName:        a.name,
			CourseCount:    a.courseCount,
			TotalRevenue:   a.revenue,
			Enrolled:       a.enrolled,
			Completed:      a.completed,
			CompletionRate: a.completionRate(),
			Satisfaction:   a.satisfaction(),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalRevenue > stats[j].TotalRevenue
	})
	return stats
}

// ByLeadingCompany 선도기업별 통계
// 선도기업형 과정만 대상. 매출은 과정 전체 조정 매출 기준.
func (s *Snapshot) ByLeadingCompany() []model.LeadingCompanyStat {
	accs := make(map[string]*statAccumulator)
	var order []string

	for _, c := range s.courses {
		if !c.IsLeadingCompany || c.LeadingCompany == "" {
			continue
		}
		a, ok := accs[c.LeadingCompany]
		if !ok {
			a = &statAccumulator{}
			accs[c.LeadingCompany] = a
			order = append(order, c.LeadingCompany)
		}
		a.addCourse(c, c.AdjustedCumulativeRevenue)
	}

	stats := make([]model.LeadingCompanyStat, 0, len(order))
	for _, name := range order {
		a := accs[name]
		stats = append(stats, model.LeadingCompanyStat{
			LeadingCompany: name,
			CourseCount:    a.courseCount,
			TotalRevenue:   a.revenue,
			Enrolled:       a.enrolled,
			Completed:      a.completed,
			CompletionRate: a.completionRate(),
			Satisfaction:   a.satisfaction(),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalRevenue > stats[j].TotalRevenue
	})
	return stats
}
