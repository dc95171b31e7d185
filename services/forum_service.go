package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"recipehub-api/models"
	"recipehub-api/repositories"
)

const frontPageLimit = 35

// ForumService owns the forum mutation paths: sequential ID allocation,
// counter maintenance and the cascading deletion chains
// (category -> posts -> comments).
//
// Counter bookkeeping lives only in the per-entity create/delete methods.
// Higher-level deletes call the lower-level delete for each dependent row,
// so deleting a whole category produces exactly the same counter deltas as
// deleting each comment and post one by one. None of the multi-step
// sequences run in a transaction; a failed step leaves the earlier steps
// in place (recalculation is the ratings-only repair path, counters have
// no sweep).
type ForumService struct {
	db        *gorm.DB
	counters  *repositories.CounterRepository
	sequences *repositories.SequenceRepository
}

func NewForumService(db *gorm.DB) *ForumService {
	return &ForumService{
		db:        db,
		counters:  repositories.NewCounterRepository(db),
		sequences: repositories.NewSequenceRepository(db),
	}
}

// CreateCategory allocates the next category ID and inserts the row.
func (s *ForumService) CreateCategory(title, subtitle string) (*models.Category, error) {
	id, err := s.sequences.NextCategoryID()
	if err != nil {
		return nil, fmt.Errorf("allocating category id: %w", err)
	}

	category := models.Category{
		CategoryID: id,
		Title:      title,
		Subtitle:   subtitle,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	slog.Info("category created", "category_id", category.CategoryID)
	return &category, nil
}

// DeleteCategory removes the category and cascades into every post that
// references it. Returns the deleted category and the posts that were
// removed, each already counter-adjusted through DeletePost.
func (s *ForumService) DeleteCategory(categoryID int) (*models.Category, []models.Post, error) {
	var category models.Category
	if err := s.db.First(&category, "category_id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("loading category: %w", err)
	}

	if err := s.db.Delete(&category).Error; err != nil {
		return nil, nil, fmt.Errorf("deleting category: %w", err)
	}

	var posts []models.Post
	if err := s.db.Where("category_id = ?", categoryID).Find(&posts).Error; err != nil {
		return &category, nil, fmt.Errorf("listing category posts: %w", err)
	}

	deleted := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if _, err := s.DeletePost(post.PostID); err != nil {
			// A post already removed by a concurrent delete is a no-op,
			// anything else aborts the cascade with partial completion.
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return &category, deleted, err
		}
		deleted = append(deleted, post)
	}

	slog.Info("category deleted", "category_id", categoryID, "posts_removed", len(deleted))
	return &category, deleted, nil
}

// CreatePost allocates the next post ID, inserts the row and increments
// the author's post counter followed by the category's.
func (s *ForumService) CreatePost(categoryID int, authorID, title, content string) (*models.Post, error) {
	var author models.User
	if err := s.db.First(&author, "id = ?", authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("author %s: %w", authorID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading author: %w", err)
	}

	id, err := s.sequences.NextPostID()
	if err != nil {
		return nil, fmt.Errorf("allocating post id: %w", err)
	}

	post := models.Post{
		PostID:     id,
		CategoryID: categoryID,
		AuthorID:   authorID,
		Title:      title,
		Content:    content,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	if err := s.counters.Adjust(&models.User{}, "number_of_posts", 1, "id = ?", authorID); err != nil {
		return &post, fmt.Errorf("incrementing author post count: %w", err)
	}
	if err := s.counters.Adjust(&models.Category{}, "number_of_posts", 1, "category_id = ?", categoryID); err != nil {
		return &post, fmt.Errorf("incrementing category post count: %w", err)
	}

	slog.Info("post created", "post_id", post.PostID, "category_id", categoryID)
	return &post, nil
}

// DeletePost is the canonical post deletion path: decrement the author's
// and the owning category's post counters, cascade into the post's
// comments, then remove the row.
func (s *ForumService) DeletePost(postID int) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading post: %w", err)
	}

	if err := s.counters.Adjust(&models.User{}, "number_of_posts", -1, "id = ?", post.AuthorID); err != nil {
		return nil, fmt.Errorf("decrementing author post count: %w", err)
	}
	if err := s.counters.Adjust(&models.Category{}, "number_of_posts", -1, "category_id = ?", post.CategoryID); err != nil {
		return nil, fmt.Errorf("decrementing category post count: %w", err)
	}

	var comments []models.Comment
	if err := s.db.Where("post_id = ?", postID).Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("listing post comments: %w", err)
	}
	for _, comment := range comments {
		if _, err := s.DeleteComment(comment.CommentID); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
	}

	if err := s.db.Delete(&post).Error; err != nil {
		return nil, fmt.Errorf("deleting post: %w", err)
	}

	slog.Info("post deleted", "post_id", postID, "comments_removed", len(comments))
	return &post, nil
}

// CreateComment allocates the next comment ID, inserts the row and
// increments the author's comment counter, the post's and the owning
// category's, in that order.
func (s *ForumService) CreateComment(postID int, authorID, content string) (*models.Comment, error) {
	var post models.Post
	if err := s.db.First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading post: %w", err)
	}
	var author models.User
	if err := s.db.First(&author, "id = ?", authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("author %s: %w", authorID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading author: %w", err)
	}

	id, err := s.sequences.NextCommentID()
	if err != nil {
		return nil, fmt.Errorf("allocating comment id: %w", err)
	}

	comment := models.Comment{
		CommentID: id,
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	if err := s.counters.Adjust(&models.User{}, "number_of_comments", 1, "id = ?", authorID); err != nil {
		return &comment, fmt.Errorf("incrementing author comment count: %w", err)
	}
	if err := s.counters.Adjust(&models.Post{}, "number_of_comments", 1, "post_id = ?", postID); err != nil {
		return &comment, fmt.Errorf("incrementing post comment count: %w", err)
	}
	if err := s.counters.Adjust(&models.Category{}, "number_of_comments", 1, "category_id = ?", post.CategoryID); err != nil {
		return &comment, fmt.Errorf("incrementing category comment count: %w", err)
	}

	slog.Info("comment created", "comment_id", comment.CommentID, "post_id", postID)
	return &comment, nil
}

// DeleteComment is the canonical comment deletion path: decrement the
// post's comment counter, the author's, and the owning category's, then
// remove the row. The category is resolved through the comment's post;
// comment rows do not carry a category ID. If the post is already gone
// the post and category decrements match no rows and drop out.
func (s *ForumService) DeleteComment(commentID int) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, "comment_id = ?", commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading comment: %w", err)
	}

	if err := s.counters.Adjust(&models.Post{}, "number_of_comments", -1, "post_id = ?", comment.PostID); err != nil {
		return nil, fmt.Errorf("decrementing post comment count: %w", err)
	}
	if err := s.counters.Adjust(&models.User{}, "number_of_comments", -1, "id = ?", comment.AuthorID); err != nil {
		return nil, fmt.Errorf("decrementing author comment count: %w", err)
	}

	var post models.Post
	if err := s.db.First(&post, "post_id = ?", comment.PostID).Error; err == nil {
		if err := s.counters.Adjust(&models.Category{}, "number_of_comments", -1, "category_id = ?", post.CategoryID); err != nil {
			return nil, fmt.Errorf("decrementing category comment count: %w", err)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("resolving comment category: %w", err)
	}

	if err := s.db.Delete(&comment).Error; err != nil {
		return nil, fmt.Errorf("deleting comment: %w", err)
	}

	slog.Info("comment deleted", "comment_id", commentID)
	return &comment, nil
}

// Query paths.

func (s *ForumService) Categories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("category_id ASC").Find(&categories).Error
	return categories, err
}

func (s *ForumService) GetPost(postID int) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %d: %w", postID, ErrNotFound)
		}
		return nil, err
	}
	return &post, nil
}

// SearchPosts finds posts in a category whose title contains the query,
// case-insensitively. LIKE wildcards in the query match literally; the
// explicit ESCAPE clause keeps that true on drivers without a default
// escape character.
func (s *ForumService) SearchPosts(query string, categoryID int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.
		Where("category_id = ?", categoryID).
		Where(`LOWER(title) LIKE ? ESCAPE '\'`, "%"+escapeLike(query)+"%").
		Find(&posts).Error
	return posts, err
}

func (s *ForumService) PostsByCategory(categoryID int) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Where("category_id = ?", categoryID).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (s *ForumService) AllPosts() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Find(&posts).Error
	return posts, err
}

func (s *ForumService) LatestPosts() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Order("created_at DESC").Limit(frontPageLimit).Find(&posts).Error
	return posts, err
}

func (s *ForumService) MostCommentedPosts() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Order("number_of_comments DESC").Limit(frontPageLimit).Find(&posts).Error
	return posts, err
}

func (s *ForumService) CommentsByPost(postID int) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func (s *ForumService) AllComments() ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Find(&comments).Error
	return comments, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(strings.ToLower(s))
}
