package allocate

import (
	"kdtboard/internal/canonical"
	"kdtboard/internal/model"
)

// 선도기업형 과정의 매출 분배 비율
// 파트너기관(실제 훈련 수행)이 90%, 훈련기관이 10%.
// 인원은 전부 파트너기관에 계상된다.
const (
	PartnerRevenueShare     = 0.9
	InstitutionRevenueShare = 0.1
)

// Share 과정 하나가 특정 기관에 기여하는 몫
type Share struct {
	Institution string  // 정제된 기관명
	Revenue     float64 // 매출 몫
	Enrolled    int     // 수강신청 인원 몫
	Completed   int     // 수료인원 몫
	CountsOwner bool    // 인원·만족도 계상 주체 여부
}

// Split 과정의 매출·인원을 기관별 몫으로 분배
// 선도기업형이 아니면 훈련기관이 전부 가져간다.
// 선도기업형이고 파트너기관이 별개 주체면 매출 90/10, 인원 100/0.
// 정제 후 동일 주체면 분배하지 않는다 (100/100).
// 모든 집계 경로가 이 함수 하나를 거쳐야 이중 계상이 없다.
func Split(c *model.Course, revenue float64) []Share {
	institution := canonical.Canonicalize(c.Institution)

	if !c.IsLeadingCompany || c.PartnerInstitution == "" {
		return []Share{{
			Institution: institution,
			Revenue:     revenue,
			Enrolled:    c.Enrolled,
			Completed:   c.Completed,
			CountsOwner: true,
		}}
	}

	partner := canonical.Canonicalize(c.PartnerInstitution)
	if partner == institution {
		// 같은 주체가 양쪽에 올라 있는 경우: 분배 없음
		return []Share{{
			Institution: institution,
			Revenue:     revenue,
			Enrolled:    c.Enrolled,
			Completed:   c.Completed,
			CountsOwner: true,
		}}
	}

	return []Share{
		{
			Institution: partner,
			Revenue:     revenue * PartnerRevenueShare,
			Enrolled:    c.Enrolled,
			Completed:   c.Completed,
			CountsOwner: true,
		},
		{
			Institution: institution,
			Revenue:     revenue * InstitutionRevenueShare,
		},
	}
}
