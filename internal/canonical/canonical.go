package canonical

import (
	"regexp"
	"strings"
)

// 한글/영문/숫자/공백/괄호 이외의 문자는 매칭 전에 제거한다.
var (
	invalidCharRe = regexp.MustCompile(`[^가-힣a-zA-Z0-9\s()]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// NormalizeName 기관명 정규화
// 특수문자 제거, 연속 공백 압축, 양끝 공백 제거, 대문자화
func NormalizeName(name string) string {
	s := invalidCharRe.ReplaceAllString(name, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return strings.ToUpper(s)
}

// Canonicalize 원본 기관명을 대표 그룹명으로 변환
// 별칭 테이블을 선언 순서대로 검사해 첫 매칭 그룹을 반환하고,
// 아무 그룹에도 걸리지 않으면 원본을 그대로 돌려준다.
func Canonicalize(institution string) string {
	normalized := NormalizeName(institution)
	if normalized == "" {
		return institution
	}

	for _, group := range aliasGroups {
		for _, keyword := range group.Keywords {
			if strings.Contains(normalized, strings.ToUpper(keyword)) {
				return group.Canonical
			}
		}
	}

	return institution
}
