package services_test

import (
	"fmt"
	"testing"

	"blog/internal/models"
	"blog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of repositories.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) GetAll() ([]models.Post, error) {
	args := m.Called()
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(id string) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Create(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Update(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestPostService_CreatePost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := services.NewPostService(mockRepo, nil) // nil for RabbitMQ client

	post := &models.Post{Title: "Hello, World!", Content: "First post."}
	mockRepo.On("Create", post).Return(nil).Once()

	err := service.CreatePost(post, "user-123")
	assert.NoError(t, err)
	// Author always comes from the authenticated user
	assert.Equal(t, "user-123", post.Author)
	// Slug is derived from the title when omitted
	assert.Equal(t, "hello-world", post.Slug)
	mockRepo.AssertExpectations(t)

	// A client-supplied slug is kept
	post2 := &models.Post{Title: "Another", Content: "x", Slug: "custom-slug"}
	mockRepo.On("Create", post2).Return(nil).Once()
	err = service.CreatePost(post2, "user-123")
	assert.NoError(t, err)
	assert.Equal(t, "custom-slug", post2.Slug)
	mockRepo.AssertExpectations(t)
}

func TestPostService_UpdatePost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := services.NewPostService(mockRepo, nil)

	existing := &models.Post{ID: "post-1", Title: "Old", Content: "Old content", Author: "user-123"}

	// Author can update; empty fields keep their old values
	mockRepo.On("GetByID", "post-1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Post")).Return(nil).Once()
	updated, err := service.UpdatePost("post-1", &models.Post{Title: "New"}, "user-123")
	assert.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "Old content", updated.Content)
	mockRepo.AssertExpectations(t)

	// A non-author is rejected before the repository is touched
	mockRepo.On("GetByID", "post-1").Return(existing, nil).Once()
	_, err = service.UpdatePost("post-1", &models.Post{Title: "Hijack"}, "user-999")
	assert.ErrorIs(t, err, services.ErrForbidden)
	mockRepo.AssertExpectations(t)

	// Unknown post
	mockRepo.On("GetByID", "post-404").Return(nil, fmt.Errorf("post with ID post-404 not found")).Once()
	_, err = service.UpdatePost("post-404", &models.Post{Title: "X"}, "user-123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestPostService_DeletePost(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := services.NewPostService(mockRepo, nil)

	existing := &models.Post{ID: "post-1", Title: "Old", Content: "Old content", Author: "user-123"}

	// Author can delete
	mockRepo.On("GetByID", "post-1").Return(existing, nil).Once()
	mockRepo.On("Delete", "post-1").Return(nil).Once()
	err := service.DeletePost("post-1", "user-123")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// A non-author is rejected
	mockRepo.On("GetByID", "post-1").Return(existing, nil).Once()
	err = service.DeletePost("post-1", "user-999")
	assert.ErrorIs(t, err, services.ErrForbidden)
	mockRepo.AssertExpectations(t)
}

func TestPostService_GetPosts(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := services.NewPostService(mockRepo, nil)

	expected := []models.Post{
		{ID: "1", Title: "Post A", Content: "a", Author: "user-1"},
		{ID: "2", Title: "Post B", Content: "b", Author: "user-2"},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()
	posts, err := service.GetAllPosts()
	assert.NoError(t, err)
	assert.Equal(t, expected, posts)

	mockRepo.On("GetByID", "1").Return(&expected[0], nil).Once()
	post, err := service.GetPostByID("1")
	assert.NoError(t, err)
	assert.Equal(t, "Post A", post.Title)
	mockRepo.AssertExpectations(t)
}
