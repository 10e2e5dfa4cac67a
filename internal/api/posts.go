package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"kdtboard/internal/model"
)

// CreatePostRequest 게시글 작성 요청
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Password string `json:"password" binding:"required"`
}

// CreatePost 게시글 작성
// POST /api/posts
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "제목과 비밀번호는 필수입니다"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "비밀번호 처리에 실패했습니다"})
		return
	}

	post := &model.Post{
		Title:        req.Title,
		Content:      req.Content,
		Author:       req.Author,
		PasswordHash: string(hash),
	}

	id, err := h.store.CreatePost(post)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	created, err := h.store.GetPostByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListPosts 게시글 목록
// GET /api/posts?limit=&offset=
func (h *Handler) ListPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	posts, err := h.store.GetPosts(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost 게시글 단건
// GET /api/posts/:id
func (h *Handler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 게시글 ID입니다"})
		return
	}

	post, err := h.store.GetPostByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "게시글을 찾을 수 없습니다"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePostRequest 게시글 수정 요청
type UpdatePostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	Password string `json:"password" binding:"required"`
}

// UpdatePost 게시글 수정
// PATCH /api/posts/:id
func (h *Handler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 게시글 ID입니다"})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "제목과 비밀번호는 필수입니다"})
		return
	}

	post, err := h.store.GetPostByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "게시글을 찾을 수 없습니다"})
		return
	}

	if !h.authorizePost(post, req.Password) {
		c.JSON(http.StatusForbidden, gin.H{"error": "비밀번호가 일치하지 않습니다"})
		return
	}

	if err := h.store.UpdatePost(id, req.Title, req.Content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.store.GetPostByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePostRequest 게시글 삭제 요청
type DeletePostRequest struct {
	Password string `json:"password" binding:"required"`
}

// DeletePost 게시글 삭제
// DELETE /api/posts/:id
func (h *Handler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 게시글 ID입니다"})
		return
	}

	var req DeletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "비밀번호는 필수입니다"})
		return
	}

	post, err := h.store.GetPostByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "게시글을 찾을 수 없습니다"})
		return
	}

	if !h.authorizePost(post, req.Password) {
		c.JSON(http.StatusForbidden, gin.H{"error": "비밀번호가 일치하지 않습니다"})
		return
	}

	if err := h.store.DeletePost(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// authorizePost 행 비밀번호 또는 마스터 비밀번호 검증
func (h *Handler) authorizePost(post *model.Post, password string) bool {
	master := h.cfg.Board.MasterPassword
	if master != "" && password == master {
		return true
	}
	return bcrypt.CompareHashAndPassword([]byte(post.PasswordHash), []byte(password)) == nil
}
