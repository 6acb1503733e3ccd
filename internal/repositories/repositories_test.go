package repositories

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mpetrov/yatube/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
		&models.Session{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestPostOrderingNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	user := createUser(t, db, "test_user")

	for i := 1; i <= 3; i++ {
		require.NoError(t, repo.CreatePost(&models.Post{Text: fmt.Sprintf("post %d", i), AuthorID: user.ID}))
	}

	posts, err := repo.PostsAll(0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	// Same-instant posts fall back to primary key order
	assert.Equal(t, "post 3", posts[0].Text)
	assert.Equal(t, "post 1", posts[2].Text)
}

func TestGetPostByAuthorAndIDMismatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := createUser(t, db, "author")
	other := createUser(t, db, "other")

	post := &models.Post{Text: "Текст", AuthorID: author.ID}
	require.NoError(t, repo.CreatePost(post))

	got, err := repo.GetPostByAuthorAndID(author.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, "author", got.Author.Username)

	_, err = repo.GetPostByAuthorAndID(other.ID, post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeletingAuthorCascadesPostsAndComments(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "test_user")
	commenter := createUser(t, db, "commenter")

	post := &models.Post{Text: "Текст", AuthorID: user.ID}
	require.NoError(t, db.Create(post).Error)
	require.NoError(t, db.Create(&models.Comment{PostID: post.ID, AuthorID: commenter.ID, Text: "Комментарий"}).Error)

	require.NoError(t, db.Delete(&models.User{}, user.ID).Error)

	var posts, comments int64
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.Zero(t, posts)
	assert.Zero(t, comments)
}

func TestDeletingGroupNullsPostGroup(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "test_user")
	group := &models.Group{Title: "Группа1", Slug: "test-slug", Description: "Текст"}
	require.NoError(t, db.Create(group).Error)

	post := &models.Post{Text: "Текст", AuthorID: user.ID, GroupID: &group.ID}
	require.NoError(t, db.Create(post).Error)

	require.NoError(t, db.Delete(&models.Group{}, group.ID).Error)

	var got models.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Nil(t, got.GroupID)
}

func TestFollowUniqueIndex(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)
	follower := createUser(t, db, "follower")
	author := createUser(t, db, "author")

	require.NoError(t, repo.CreateFollow(&models.Follow{UserID: follower.ID, AuthorID: author.ID}))

	// A concurrent duplicate hits the storage-layer constraint
	err := repo.CreateFollow(&models.Follow{UserID: follower.ID, AuthorID: author.ID})
	assert.Error(t, err)

	count, err := repo.GetFollowingCount(follower.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteFollowMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)
	follower := createUser(t, db, "follower")
	author := createUser(t, db, "author")

	err := repo.DeleteFollow(follower.ID, author.ID)
	assert.ErrorIs(t, err, ErrFollowNotFound)

	require.NoError(t, repo.CreateFollow(&models.Follow{UserID: follower.ID, AuthorID: author.ID}))
	require.NoError(t, repo.DeleteFollow(follower.ID, author.ID))

	following, err := repo.IsFollowing(follower.ID, author.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestPostsByFollowedAuthors(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	followRepo := NewPostgresFollowRepository(db)

	reader := createUser(t, db, "reader")
	followed := createUser(t, db, "followed")
	stranger := createUser(t, db, "stranger")

	require.NoError(t, postRepo.CreatePost(&models.Post{Text: "от подписки", AuthorID: followed.ID}))
	require.NoError(t, postRepo.CreatePost(&models.Post{Text: "чужой пост", AuthorID: stranger.ID}))
	require.NoError(t, followRepo.CreateFollow(&models.Follow{UserID: reader.ID, AuthorID: followed.ID}))

	feed, err := postRepo.PostsByFollowedAuthors(reader.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "от подписки", feed[0].Text)
	assert.Equal(t, "followed", feed[0].Author.Username)

	total, err := postRepo.CountByFollowedAuthors(reader.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// The stranger follows nobody, their feed is empty
	feed, err = postRepo.PostsByFollowedAuthors(stranger.ID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestPostsByGroupScoping(t *testing.T) {
	db := newTestDB(t)
	postRepo := NewPostgresPostRepository(db)
	groupRepo := NewPostgresGroupRepository(db)
	user := createUser(t, db, "test_user")

	group := &models.Group{Title: "Группа1", Slug: "test-slug", Description: "Текст"}
	group2 := &models.Group{Title: "Группа2", Slug: "test-slug2", Description: "Текст"}
	require.NoError(t, groupRepo.CreateGroup(group))
	require.NoError(t, groupRepo.CreateGroup(group2))
	require.NoError(t, postRepo.CreatePost(&models.Post{Text: "Текст", AuthorID: user.ID, GroupID: &group.ID}))

	posts, err := postRepo.PostsByGroup(group2.ID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, posts)

	posts, err = postRepo.PostsByGroup(group.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
