package service

import (
	"errors"
	"time"

	"Blogicum/internal/model"
	"Blogicum/internal/pkg"
	"Blogicum/internal/repository/mysql"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotAuthor    = errors.New("not the author")
	ErrTitleEmpty   = errors.New("title required")
	ErrTextEmpty    = errors.New("text required")
)

type PostService struct {
	repo         *mysql.PostRepository
	commentRepo  *mysql.CommentRepository
	categoryRepo *mysql.CategoryRepository
}

// PostInput 建帖/编辑表单字段
type PostInput struct {
	Title       string
	Text        string
	PubDate     time.Time
	CategoryID  uint64
	LocationID  *uint64
	IsPublished bool
}

func NewPostService() *PostService {
	return &PostService{
		repo:         &mysql.PostRepository{DB: mysql.DB},
		commentRepo:  &mysql.CommentRepository{DB: mysql.DB},
		categoryRepo: &mysql.CategoryRepository{DB: mysql.DB},
	}
}

// paginate 统一的页码收敛：越界页取末页，只在收敛后才重查一次
func (s *PostService) paginate(page int, fetch func(offset int) ([]model.Post, int64, error)) ([]model.Post, pkg.PaginationData, error) {
	fetchPage := page
	if fetchPage < 1 {
		fetchPage = 1
	}
	list, total, err := fetch((fetchPage - 1) * pkg.PageSize)
	if err != nil {
		return nil, pkg.PaginationData{}, err
	}
	clamped, totalPages := pkg.ClampPage(page, total, pkg.PageSize)
	if clamped != fetchPage {
		list, _, err = fetch((clamped - 1) * pkg.PageSize)
		if err != nil {
			return nil, pkg.PaginationData{}, err
		}
	}
	return list, pkg.NewPaginationData(clamped, totalPages), nil
}

// Index 首页：公开可见的帖子，按发布时间倒序
func (s *PostService) Index(page int) ([]model.Post, pkg.PaginationData, error) {
	now := time.Now()
	return s.paginate(page, func(offset int) ([]model.Post, int64, error) {
		return s.repo.ListVisible(now, offset, pkg.PageSize)
	})
}

// CategoryPosts 分类页。分类未发布或不存在时返回 ErrPostNotFound 级别的 404 由调用方处理
func (s *PostService) CategoryPosts(categoryID uint64, page int) ([]model.Post, pkg.PaginationData, error) {
	now := time.Now()
	return s.paginate(page, func(offset int) ([]model.Post, int64, error) {
		return s.repo.ListByCategory(categoryID, now, offset, pkg.PageSize)
	})
}

// ProfilePosts 用户主页。本人看全部，其他人只看公开可见
func (s *PostService) ProfilePosts(authorID, viewerID uint64, page int) ([]model.Post, pkg.PaginationData, error) {
	now := time.Now()
	onlyVisible := viewerID != authorID
	return s.paginate(page, func(offset int) ([]model.Post, int64, error) {
		return s.repo.ListByAuthor(authorID, onlyVisible, now, offset, pkg.PageSize)
	})
}

// Detail 详情页。viewerID=0 表示未登录；登录用户额外能看到自己的未发布帖
func (s *PostService) Detail(postID, viewerID uint64) (*model.Post, []model.Comment, error) {
	now := time.Now()

	var post *model.Post
	var err error
	if viewerID == 0 {
		post, err = s.repo.FindVisibleByID(postID, now)
	} else {
		post, err = s.repo.FindByIDForViewer(postID, viewerID, now)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPostNotFound
		}
		return nil, nil, err
	}

	comments, err := s.commentRepo.ListByPost(post.ID)
	if err != nil {
		return nil, nil, err
	}
	post.CommentCount = int64(len(comments))
	return post, comments, nil
}

func (s *PostService) validate(in *PostInput) error {
	if in.Title == "" {
		return ErrTitleEmpty
	}
	if in.Text == "" {
		return ErrTextEmpty
	}
	if in.PubDate.IsZero() {
		in.PubDate = time.Now()
	}
	return nil
}

func (s *PostService) Create(authorID uint64, in PostInput) (*model.Post, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:       in.Title,
		Text:        in.Text,
		PubDate:     in.PubDate,
		AuthorID:    authorID,
		CategoryID:  in.CategoryID,
		LocationID:  in.LocationID,
		IsPublished: in.IsPublished,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetOwned 编辑/删除前的归属检查。非作者返回 ErrNotAuthor，由 handler 静默重定向
func (s *PostService) GetOwned(userID, postID uint64) (*model.Post, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.AuthorID != userID {
		return post, ErrNotAuthor
	}
	return post, nil
}

func (s *PostService) Update(userID, postID uint64, in PostInput) (*model.Post, error) {
	post, err := s.GetOwned(userID, postID)
	if err != nil {
		return post, err
	}
	if err := s.validate(&in); err != nil {
		return post, err
	}

	post.Title = in.Title
	post.Text = in.Text
	post.PubDate = in.PubDate
	post.CategoryID = in.CategoryID
	post.LocationID = in.LocationID
	post.IsPublished = in.IsPublished
	if err := s.repo.Update(post); err != nil {
		return post, err
	}
	return post, nil
}

func (s *PostService) Delete(userID, postID uint64) error {
	if _, err := s.GetOwned(userID, postID); err != nil {
		return err
	}
	return s.repo.Delete(postID)
}

// FormChoices 表单里的分类/位置下拉项
func (s *PostService) FormChoices() ([]model.Category, []model.Location, error) {
	categories, err := s.categoryRepo.ListPublished()
	if err != nil {
		return nil, nil, err
	}
	locations, err := s.categoryRepo.ListLocationsPublished()
	if err != nil {
		return nil, nil, err
	}
	return categories, locations, nil
}
