package repositories

import (
	"github.com/mpetrov/yatube/internal/models"
	"gorm.io/gorm"
)

// Listing order for every post query: newest first, ties by primary key.
const postOrder = "created DESC, id DESC"

// PostRepository defines the interface for post data operations.
// Listing methods are explicit per source (all / group / author /
// followed authors) rather than traversed through relations.
type PostRepository interface {
	CreatePost(post *models.Post) error
	UpdatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostByAuthorAndID(authorID, id uint) (*models.Post, error)
	CountAll() (int64, error)
	PostsAll(offset, limit int) ([]models.Post, error)
	CountByGroup(groupID uint) (int64, error)
	PostsByGroup(groupID uint, offset, limit int) ([]models.Post, error)
	CountByAuthor(authorID uint) (int64, error)
	PostsByAuthor(authorID uint, offset, limit int) ([]models.Post, error)
	CountByFollowedAuthors(userID uint) (int64, error)
	PostsByFollowedAuthors(userID uint, offset, limit int) ([]models.Post, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// UpdatePost persists changes to an existing post
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// GetPostByID retrieves a post by ID with its author and group loaded
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostByAuthorAndID retrieves a post by ID only when it belongs to the
// given author. A mismatched author behaves like a missing post.
func (r *PostgresPostRepository) GetPostByAuthorAndID(authorID, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Group").
		Where("id = ? AND author_id = ?", id, authorID).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CountAll returns the total number of posts
func (r *PostgresPostRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

// PostsAll retrieves a page of all posts, newest first
func (r *PostgresPostRepository) PostsAll(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Preload("Group").
		Order(postOrder).Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// CountByGroup returns the number of posts in a group
func (r *PostgresPostRepository) CountByGroup(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// PostsByGroup retrieves a page of a group's posts, newest first
func (r *PostgresPostRepository) PostsByGroup(groupID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Preload("Group").
		Where("group_id = ?", groupID).
		Order(postOrder).Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// CountByAuthor returns the number of posts by an author
func (r *PostgresPostRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// PostsByAuthor retrieves a page of an author's posts, newest first
func (r *PostgresPostRepository) PostsByAuthor(authorID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Preload("Group").
		Where("author_id = ?", authorID).
		Order(postOrder).Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}

// CountByFollowedAuthors returns the number of posts in a user's feed
func (r *PostgresPostRepository) CountByFollowedAuthors(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// PostsByFollowedAuthors retrieves a page of posts authored by anyone the
// user follows, newest first. Computed per request, no materialized feed.
func (r *PostgresPostRepository) PostsByFollowedAuthors(userID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Preload("Group").
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID).
		Order("posts.created DESC, posts.id DESC").Offset(offset).Limit(limit).
		Find(&posts).Error
	return posts, err
}
