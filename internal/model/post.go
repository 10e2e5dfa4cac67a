package model

import "time"

// Post 게시글 (공지/메모)
// 수정·삭제는 행별 비밀번호 또는 마스터 비밀번호로 보호된다.
type Post struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	PasswordHash string    `json:"-"` // bcrypt 해시, 응답에 노출하지 않음
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
