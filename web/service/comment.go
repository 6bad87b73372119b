package service

import (
	"time"

	"github.com/fabre752/multidiary/database"
	"github.com/fabre752/multidiary/database/model"
	"github.com/fabre752/multidiary/logger"

	"gorm.io/gorm"
)

// CommentService handles comment creation and lookups.
type CommentService struct {
	postService PostService
}

// AddComment creates a comment on the given post authored by the actor.
// Anonymous actors are rejected before any write; the parent post must
// exist.
func (s *CommentService) AddComment(postId int, content string, author *model.User) (*model.Comment, error) {
	if !author.IsAuthenticated() {
		return nil, ErrUnauthorized
	}

	post, err := s.postService.GetPost(postId)
	if err != nil {
		return nil, err
	}

	db := database.GetDB()
	comment := &model.Comment{
		Content:      content,
		CreationDate: time.Now().UTC(),
		AuthorId:     author.Id,
		PostId:       post.Id,
	}
	if err := db.Create(comment).Error; err != nil {
		return nil, err
	}

	if err := incrementUserCounter(db, author.Id, "num_comments"); err != nil {
		logger.Warning("increment comment counter err:", err)
	}
	err = db.Model(model.Post{}).
		Where("id = ?", post.Id).
		UpdateColumn("num_comments", gorm.Expr("num_comments + 1")).
		Error
	if err != nil {
		logger.Warning("increment post comment counter err:", err)
	}
	return comment, nil
}

// GetCommentsByPost returns the comments on a post, oldest first.
func (s *CommentService) GetCommentsByPost(postId int) ([]model.Comment, error) {
	db := database.GetDB()

	var comments []model.Comment
	err := db.Model(model.Comment{}).
		Where("post_id = ?", postId).
		Order("creation_date asc").
		Find(&comments).
		Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// GetCommentsByAuthor returns the comments authored by a user, newest
// first.
func (s *CommentService) GetCommentsByAuthor(authorId int) ([]model.Comment, error) {
	db := database.GetDB()

	var comments []model.Comment
	err := db.Model(model.Comment{}).
		Where("author_id = ?", authorId).
		Order("creation_date desc").
		Find(&comments).
		Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
