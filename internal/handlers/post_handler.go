package handlers

import (
	"log"
	"strings"

	"blog/internal/middleware"
	"blog/internal/models"
	"blog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PostHandler handles HTTP requests for blog posts.
type PostHandler struct {
	service  *services.PostService
	validate *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service *services.PostService) *PostHandler {
	return &PostHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers post routes. Reads are public; mutations go
// through the auth middleware and require the acting user to be the author.
func (h *PostHandler) RegisterRoutes(router fiber.Router, authService *services.AuthService) {
	postRoutes := router.Group("/posts")
	postRoutes.Get("/", h.HandleGetPosts)
	postRoutes.Get("/:id", h.HandleGetPostByID)

	protected := postRoutes.Group("", middleware.AuthRequired(authService))
	protected.Post("/", h.HandleCreatePost)
	protected.Put("/:id", h.HandleUpdatePost)
	protected.Delete("/:id", h.HandleDeletePost)
}

// HandleGetPosts retrieves all posts.
func (h *PostHandler) HandleGetPosts(c *fiber.Ctx) error {
	posts, err := h.service.GetAllPosts()
	if err != nil {
		log.Printf("Error getting all posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve posts",
		})
	}
	return c.JSON(posts)
}

// HandleGetPostByID retrieves a single post by its ID.
func (h *PostHandler) HandleGetPostByID(c *fiber.Ctx) error {
	postID := c.Params("id")
	post, err := h.service.GetPostByID(postID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Post not found",
			})
		}
		log.Printf("Error getting post by ID %s: %v", postID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve post",
		})
	}
	return c.JSON(post)
}

// HandleCreatePost creates a new post authored by the authenticated user.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var post models.Post
	if err := c.BodyParser(&post); err != nil {
		log.Printf("Error parsing create post request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and content are required",
		})
	}

	user := c.Locals(middleware.UserKey).(*models.User)
	if err := h.service.CreatePost(&post, user.ID); err != nil {
		log.Printf("Error creating post: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not create post",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleUpdatePost updates an existing post owned by the authenticated user.
func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	var updates models.Post
	if err := c.BodyParser(&updates); err != nil {
		log.Printf("Error parsing update post request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user := c.Locals(middleware.UserKey).(*models.User)
	post, err := h.service.UpdatePost(c.Params("id"), &updates, user.ID)
	if err != nil {
		return postMutationError(c, err)
	}
	return c.JSON(post)
}

// HandleDeletePost deletes a post owned by the authenticated user.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserKey).(*models.User)
	if err := h.service.DeletePost(c.Params("id"), user.ID); err != nil {
		return postMutationError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted",
	})
}

func postMutationError(c *fiber.Ctx, err error) error {
	switch {
	case err == services.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden",
		})
	case strings.Contains(err.Error(), "not found"):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	default:
		log.Printf("Post mutation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not modify post",
		})
	}
}
