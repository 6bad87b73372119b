package service

import (
	"time"

	"github.com/fabre752/multidiary/database"
	"github.com/fabre752/multidiary/database/model"
	"github.com/fabre752/multidiary/logger"
)

// PostService handles post creation and listing.
type PostService struct{}

// AddPost creates a post authored by the given actor. Anonymous actors are
// rejected before any write is attempted.
func (s *PostService) AddPost(content string, author *model.User) (*model.Post, error) {
	if !author.IsAuthenticated() {
		return nil, ErrUnauthorized
	}

	db := database.GetDB()
	post := &model.Post{
		Content:      content,
		CreationDate: time.Now().UTC(),
		AuthorId:     author.Id,
	}
	if err := db.Create(post).Error; err != nil {
		return nil, err
	}
	if err := incrementUserCounter(db, author.Id, "num_posts"); err != nil {
		logger.Warning("increment post counter err:", err)
	}
	return post, nil
}

// GetAllPosts returns every post, newest first.
func (s *PostService) GetAllPosts() ([]model.Post, error) {
	db := database.GetDB()

	var posts []model.Post
	err := db.Model(model.Post{}).
		Order("creation_date desc").
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches a post by id. Returns gorm.ErrRecordNotFound when the id
// does not exist.
func (s *PostService) GetPost(id int) (*model.Post, error) {
	db := database.GetDB()

	post := &model.Post{}
	err := db.Model(model.Post{}).
		Where("id = ?", id).
		First(post).
		Error
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetPostsByAuthor returns the posts authored by the given user, newest
// first.
func (s *PostService) GetPostsByAuthor(authorId int) ([]model.Post, error) {
	db := database.GetDB()

	var posts []model.Post
	err := db.Model(model.Post{}).
		Where("author_id = ?", authorId).
		Order("creation_date desc").
		Find(&posts).
		Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
