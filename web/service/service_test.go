package service

import (
	"os"
	"testing"
	"time"

	"github.com/fabre752/multidiary/database"
	"github.com/fabre752/multidiary/database/model"
	"github.com/fabre752/multidiary/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	os.Setenv("MULTIDIARY_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.ERROR)
	os.Exit(m.Run())
}

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestRegisterAndCheckUser(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}

	user, err := userService.Register("alice", "p1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
	assert.Equal(t, model.DefaultRoleId, user.RoleId)
	assert.NotZero(t, user.Id)

	// correct credentials
	checked, err := userService.CheckUser("alice", "p1")
	assert.NoError(t, err)
	assert.Equal(t, user.Id, checked.Id)

	// wrong password
	_, err = userService.CheckUser("alice", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)

	// unknown login
	_, err = userService.CheckUser("nobody", "p1")
	assert.True(t, database.IsNotFound(err))
}

func TestRegisterDuplicateLogin(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}

	_, err := userService.Register("bob", "pw")
	assert.NoError(t, err)

	_, err = userService.Register("bob", "other")
	assert.ErrorIs(t, err, ErrLoginTaken)
}

func TestAddPostRequiresAuthentication(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	postService := PostService{}

	// anonymous placeholder actor
	anonymous := &model.User{}
	_, err := postService.AddPost("should not persist", anonymous)
	assert.ErrorIs(t, err, ErrUnauthorized)

	posts, err := postService.GetAllPosts()
	assert.NoError(t, err)
	assert.Empty(t, posts)

	author, err := userService.Register("carol", "pw")
	assert.NoError(t, err)

	post, err := postService.AddPost("hello from carol", author)
	assert.NoError(t, err)
	assert.Equal(t, author.Id, post.AuthorId)

	// write-time counter increment
	stored, err := userService.GetUserByLogin("carol")
	assert.NoError(t, err)
	assert.Equal(t, 1, stored.NumPosts)
}

func TestGetAllPostsNewestFirst(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	postService := PostService{}

	author, err := userService.Register("dave", "pw")
	assert.NoError(t, err)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	db := database.GetDB()
	for i, content := range []string{"oldest", "middle", "newest"} {
		post := &model.Post{
			Content:      content,
			CreationDate: base.Add(time.Duration(i) * time.Hour),
			AuthorId:     author.Id,
		}
		assert.NoError(t, db.Create(post).Error)
	}

	posts, err := postService.GetAllPosts()
	assert.NoError(t, err)
	assert.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Content)
	assert.Equal(t, "middle", posts[1].Content)
	assert.Equal(t, "oldest", posts[2].Content)
}

func TestAddComment(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	postService := PostService{}
	commentService := CommentService{}

	author, err := userService.Register("erin", "pw")
	assert.NoError(t, err)
	commenter, err := userService.Register("frank", "pw")
	assert.NoError(t, err)

	post, err := postService.AddPost("a post worth commenting on", author)
	assert.NoError(t, err)

	// anonymous actors are rejected before any write
	_, err = commentService.AddComment(post.Id, "drive-by", &model.User{})
	assert.ErrorIs(t, err, ErrUnauthorized)

	comment, err := commentService.AddComment(post.Id, "nice post", commenter)
	assert.NoError(t, err)
	assert.Equal(t, post.Id, comment.PostId)
	assert.Equal(t, commenter.Id, comment.AuthorId)

	comments, err := commentService.GetCommentsByPost(post.Id)
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, "nice post", comments[0].Content)

	// counters
	storedPost, err := postService.GetPost(post.Id)
	assert.NoError(t, err)
	assert.Equal(t, 1, storedPost.NumComments)
	storedUser, err := userService.GetUserByLogin("frank")
	assert.NoError(t, err)
	assert.Equal(t, 1, storedUser.NumComments)
}

func TestAddCommentMissingPost(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	commentService := CommentService{}

	commenter, err := userService.Register("gina", "pw")
	assert.NoError(t, err)

	_, err = commentService.AddComment(12345, "into the void", commenter)
	assert.True(t, database.IsNotFound(err))
}

func TestGetRole(t *testing.T) {
	setup()
	defer teardown()

	roleService := RoleService{}

	role, err := roleService.GetRole(model.DefaultRoleId)
	assert.NoError(t, err)
	assert.Equal(t, "normal", role.Name)

	_, err = roleService.GetRole(999)
	assert.True(t, database.IsNotFound(err))
}
