package services

import (
	"fmt"
	"log"

	"blog/internal/models"
	"blog/internal/repositories"
	"blog/pkg/rabbitmq"

	"github.com/gosimple/slug"
)

// ErrForbidden is returned when a user tries to mutate a post they do
// not own.
var ErrForbidden = fmt.Errorf("forbidden")

// PostService handles business logic related to blog posts.
type PostService struct {
	repo     repositories.PostRepository
	mqClient *rabbitmq.Client // nil disables event publishing
}

// NewPostService creates a new PostService.
func NewPostService(repo repositories.PostRepository, mqClient *rabbitmq.Client) *PostService {
	return &PostService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllPosts retrieves all posts.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	return s.repo.GetAll()
}

// GetPostByID retrieves a single post by its ID.
func (s *PostService) GetPostByID(id string) (*models.Post, error) {
	return s.repo.GetByID(id)
}

// CreatePost stores a new post on behalf of authorID. The author always
// comes from the authenticated user, never from the request body. A missing
// slug is derived from the title.
func (s *PostService) CreatePost(post *models.Post, authorID string) error {
	post.Author = authorID
	if post.Slug == "" {
		post.Slug = slug.Make(post.Title)
	}
	if err := s.repo.Create(post); err != nil {
		return err
	}
	s.publish("created", post)
	return nil
}

// UpdatePost applies title/content/category/slug changes to an existing
// post. Only the post's author may update it.
func (s *PostService) UpdatePost(id string, updates *models.Post, actorID string) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post.Author != actorID {
		return nil, ErrForbidden
	}

	if updates.Title != "" {
		post.Title = updates.Title
	}
	if updates.Content != "" {
		post.Content = updates.Content
	}
	if updates.Category != "" {
		post.Category = updates.Category
	}
	if updates.Slug != "" {
		post.Slug = updates.Slug
	}

	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	s.publish("updated", post)
	return post, nil
}

// DeletePost removes a post. Only the post's author may delete it.
func (s *PostService) DeletePost(id string, actorID string) error {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if post.Author != actorID {
		return ErrForbidden
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish("deleted", post)
	return nil
}

// publish emits a post lifecycle event. Publishing is best-effort: a broker
// failure logs a warning but does not fail the request.
func (s *PostService) publish(action string, post *models.Post) {
	if s.mqClient == nil {
		return
	}
	event := rabbitmq.PostEvent{
		Action: action,
		PostID: post.ID,
		Author: post.Author,
		Slug:   post.Slug,
	}
	if err := s.mqClient.PublishPostEvent(event); err != nil {
		log.Printf("Failed to publish post %s event: %v", action, err)
	}
}
