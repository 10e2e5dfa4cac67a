package canonical

// AliasGroup 기관 그룹 별칭 정의
// Keywords 중 하나가 정규화된 기관명의 부분 문자열이면 해당 그룹으로 묶인다.
type AliasGroup struct {
	Canonical string
	Keywords  []string
}

// aliasGroups 선언 순서가 곧 매칭 우선순위다. 순서를 바꾸면 안 된다.
// 두 그룹의 키워드가 모두 걸리는 이름은 먼저 선언된 그룹이 이긴다.
var aliasGroups = []AliasGroup{
	{"그린컴퓨터아카데미", []string{"그린컴퓨터", "그린아카데미", "그린"}},
	{"이젠아카데미", []string{"이젠컴퓨터", "이젠아카데미", "이젠"}},
	{"코리아IT아카데미", []string{"코리아IT", "KIT아카데미", "코리아아이티"}},
	{"비트교육센터", []string{"비트교육", "비트캠프", "비트"}},
	{"하이미디어아카데미", []string{"하이미디어"}},
	{"아이티윌", []string{"아이티윌", "ITWILL", "IT윌"}},
	{"메가스터디", []string{"메가스터디", "메가IT"}},
	{"에이콘아카데미", []string{"에이콘"}},
	{"한국소프트웨어인재개발원", []string{"한국소프트웨어인재개발원", "KOSMO", "코스모"}},
	{"쌍용교육센터", []string{"쌍용"}},
	{"KH정보교육원", []string{"KH정보", "KH교육"}},
	{"더조은아카데미", []string{"더조은"}},
	{"중앙정보처리학원", []string{"중앙정보처리", "중앙정보기술인재개발원", "중앙HTA"}},
	{"솔데스크", []string{"솔데스크"}},
	{"패스트캠퍼스", []string{"패스트캠퍼스", "FASTCAMPUS"}},
	{"멋쟁이사자처럼", []string{"멋쟁이사자", "멋사"}},
	{"팀스파르타", []string{"스파르타코딩", "팀스파르타"}},
	{"엘리스", []string{"엘리스"}},
	{"코드스테이츠", []string{"코드스테이츠", "CODESTATES"}},
	{"플레이데이터", []string{"플레이데이터", "엔코아플레이데이터", "엔코아"}},
	{"코드랩", []string{"코드랩아카데미", "코드랩"}},
	{"래피드케이스", []string{"래피드케이스"}},
	{"유데미", []string{"유데미", "UDEMY", "웅진씽크빅"}},
	{"아이비김영", []string{"아이비김영", "김앤장"}},
	{"하코", []string{"하코", "한국능력교육개발원"}},
	{"휴먼교육센터", []string{"휴먼교육센터", "휴먼IT"}},
	{"한국표준협회", []string{"한국표준협회", "KSA"}},
	{"제주한라대학교", []string{"제주한라"}},
	{"한국폴리텍대학", []string{"폴리텍"}},
}

// Groups 별칭 테이블 사본 (표시/디버깅용)
func Groups() []AliasGroup {
	out := make([]AliasGroup, len(aliasGroups))
	copy(out, aliasGroups)
	return out
}
