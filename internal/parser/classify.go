package parser

import "strings"

// 훈련유형 라벨
const (
	TypeLeadingCompany = "선도기업형 훈련"
	TypeIncumbent      = "재직자 훈련"
	TypeUniversity     = "대학주도형 훈련"
	TypeAdvanced       = "심화 훈련"
	TypeConvergence    = "융합 훈련"
	TypeNewTech        = "신기술 훈련"
)

// ClassifyTrainingType 훈련유형 분류
// 규칙은 고정 순서로 검사하며 복수 매칭 시 "&"로 연결한다.
// 아무 규칙에도 걸리지 않으면 신기술 훈련.
func ClassifyTrainingType(courseName, institution, partnerInstitution string) string {
	var labels []string

	if !IsBlank(partnerInstitution) {
		labels = append(labels, TypeLeadingCompany)
	}
	if strings.Contains(courseName, "재직자") {
		labels = append(labels, TypeIncumbent)
	}
	if strings.Contains(institution, "학교") {
		labels = append(labels, TypeUniversity)
	}
	if strings.Contains(courseName, "심화") {
		labels = append(labels, TypeAdvanced)
	}
	if strings.Contains(courseName, "융합") {
		labels = append(labels, TypeConvergence)
	}

	if len(labels) == 0 {
		return TypeNewTech
	}
	return strings.Join(labels, "&")
}

// IsLeadingCompanyCourse 선도기업형 과정 여부
// 파트너기관과 선도기업이 모두 유효할 때만 true
func IsLeadingCompanyCourse(partnerInstitution, leadingCompany string) bool {
	return !IsBlank(partnerInstitution) && !IsBlank(leadingCompany)
}
