package service

import (
	"errors"

	"Blogicum/internal/model"
	"Blogicum/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrCommentEmpty    = errors.New("comment text required")
)

type CommentService struct {
	repo     *mysql.CommentRepository
	postRepo *mysql.PostRepository
}

func NewCommentService() *CommentService {
	return &CommentService{
		repo:     &mysql.CommentRepository{DB: mysql.DB},
		postRepo: &mysql.PostRepository{DB: mysql.DB},
	}
}

// Add 评论挂在帖子下，作者是当前请求用户
func (s *CommentService) Add(userID, postID uint64, text string) (*model.Comment, error) {
	if text == "" {
		return nil, ErrCommentEmpty
	}

	if _, err := s.postRepo.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		Text:     text,
		PostID:   postID,
		AuthorID: userID,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetOwned 编辑/删除前的归属检查。评论必须属于给定帖子
func (s *CommentService) GetOwned(userID, postID, commentID uint64) (*model.Comment, error) {
	comment, err := s.repo.FindByID(commentID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.AuthorID != userID {
		return comment, ErrNotAuthor
	}
	return comment, nil
}

func (s *CommentService) Update(userID, postID, commentID uint64, text string) error {
	comment, err := s.GetOwned(userID, postID, commentID)
	if err != nil {
		return err
	}
	if text == "" {
		return ErrCommentEmpty
	}
	comment.Text = text
	return s.repo.Update(comment)
}

func (s *CommentService) Delete(userID, postID, commentID uint64) error {
	if _, err := s.GetOwned(userID, postID, commentID); err != nil {
		return err
	}
	return s.repo.Delete(commentID)
}
