package store

import (
	"database/sql"
	"fmt"

	"kdtboard/internal/model"
)

// CreatePost 게시글 작성
func (s *Store) CreatePost(p *model.Post) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO posts (title, content, author, password_hash)
		VALUES (?, ?, ?, ?)
	`, p.Title, p.Content, p.Author, p.PasswordHash)
	if err != nil {
		return 0, fmt.Errorf("failed to insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get insert id: %w", err)
	}

	return id, nil
}

// GetPosts 게시글 목록 (최신순)
func (s *Store) GetPosts(limit, offset int) ([]*model.Post, error) {
	query := `
		SELECT id, title, content, author, password_hash, created_at, updated_at
		FROM posts ORDER BY id DESC`
	args := []interface{}{}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
		if offset > 0 {
			query += " OFFSET ?"
			args = append(args, offset)
		}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		p := &model.Post{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author,
			&p.PasswordHash, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

// GetPostByID 게시글 단건 조회
func (s *Store) GetPostByID(id int64) (*model.Post, error) {
	p := &model.Post{}
	err := s.db.QueryRow(`
		SELECT id, title, content, author, password_hash, created_at, updated_at
		FROM posts WHERE id = ?
	`, id).Scan(&p.ID, &p.Title, &p.Content, &p.Author,
		&p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("post not found: %d", id)
		}
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}
	return p, nil
}

// UpdatePost 게시글 수정
func (s *Store) UpdatePost(id int64, title, content string) error {
	_, err := s.db.Exec(`
		UPDATE posts SET title = ?, content = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, title, content, id)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// DeletePost 게시글 삭제
func (s *Store) DeletePost(id int64) error {
	if _, err := s.db.Exec("DELETE FROM posts WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
