package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "user-api/internal/common/errors"
	"user-api/internal/common/middleware"
	"user-api/internal/features/user/models"
	"user-api/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes mounts the /user routes. Static segments are registered next
// to /:name; gin prefers them over the parameter.
func (h *UserHandler) RegisterRoutes(router gin.IRouter) {
	users := router.Group("/user")
	{
		users.POST("", h.CreateUser)
		users.POST("/createWithArray", h.CreateWithArray)
		users.POST("/createWithList", h.CreateWithList)
		users.GET("/login", h.LoginUser)
		users.GET("/logout", middleware.SessionToken(), h.LogoutUser)
		users.GET("/:name", h.GetUserByName)
		users.PUT("/:name", h.UpdateUser)
		users.DELETE("/:name", h.DeleteUser)
	}
}

// @Summary Create user
// @Description Creates one user. username, email, password and phone are required and trimmed.
// @Tags user
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param body body models.CreateUserRequest true "Created user object"
// @Success 200 {object} models.CreateResult "Stored user"
// @Failure 400 {object} models.CreateResult "Malformed body"
// @Failure 409 {object} models.CreateResult "Conflicts with stored data"
// @Failure 422 {object} models.CreateResult "Missing required field"
// @Failure 500 {object} models.CreateResult "Database failure"
// @Router /user [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		h.createFailed(c, apperrors.NewBadRequestError(err))
		return
	}

	result, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.createFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// createFailed keeps the {result: 0, message} shape of the create endpoint.
func (h *UserHandler) createFailed(c *gin.Context, err error) {
	appErr := middleware.ToAppError(err)
	_ = c.Error(appErr)
	c.AbortWithStatusJSON(middleware.StatusCode(appErr), models.CreateResult{
		Result:  0,
		Message: appErr.Message,
	})
}

// @Summary Create users with array
// @Description Creates users from an array. The whole batch is validated before anything is stored.
// @Tags user
// @Accept json
// @Produce json
// @Param body body []models.CreateUserRequest true "List of user objects"
// @Success 200 {object} models.BatchResult "Stored users"
// @Failure 400 {object} models.ErrorResponse "Malformed body"
// @Failure 422 {object} models.ErrorResponse "Invalid element"
// @Failure 500 {object} models.ErrorResponse "Database failure"
// @Router /user/createWithArray [post]
func (h *UserHandler) CreateWithArray(c *gin.Context) {
	h.createMany(c, h.service.CreateWithArray)
}

// @Summary Create users with list
// @Description Creates users from a list. The whole batch is validated before anything is stored.
// @Tags user
// @Accept json
// @Produce json
// @Param body body []models.CreateUserRequest true "List of user objects"
// @Success 200 {object} models.BatchResult "Stored users"
// @Failure 400 {object} models.ErrorResponse "Malformed body"
// @Failure 422 {object} models.ErrorResponse "Invalid element"
// @Failure 500 {object} models.ErrorResponse "Database failure"
// @Router /user/createWithList [post]
func (h *UserHandler) CreateWithList(c *gin.Context) {
	h.createMany(c, h.service.CreateWithList)
}

func (h *UserHandler) createMany(c *gin.Context, create func(ctx context.Context, reqs []models.CreateUserRequest) (*models.BatchResult, error)) {
	var reqs []models.CreateUserRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		_ = c.Error(apperrors.NewBadRequestError(err))
		return
	}

	result, err := create(c.Request.Context(), reqs)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Log user into the system
// @Description Checks the credentials and issues a session token.
// @Tags user
// @Produce json
// @Param username query string true "The user name for login"
// @Param password query string true "The password for login in clear text"
// @Success 200 {object} models.LoginResponse "Session token"
// @Header 200 {string} X-Expires-After "date in UTC when token expires"
// @Failure 400 {object} models.ErrorResponse "Missing username or password"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Router /user/login [get]
func (h *UserHandler) LoginUser(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError(err))
		return
	}

	result, err := h.service.LoginUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("X-Expires-After", result.ExpiresAt.Format(time.RFC3339))
	c.JSON(http.StatusOK, result)
}

// @Summary Log out current session
// @Description Ends the session given as a bearer token or token query parameter. Unknown tokens are ignored.
// @Tags user
// @Param token query string false "Session token, alternative to the Authorization header"
// @Success 200 "Logged out"
// @Failure 503 {object} models.ErrorResponse "Session store failure"
// @Router /user/logout [get]
func (h *UserHandler) LogoutUser(c *gin.Context) {
	if err := h.service.LogoutUser(c.Request.Context(), middleware.GetSessionToken(c)); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusOK)
}

// @Summary Get user by user name
// @Tags user
// @Produce json
// @Param name path string true "The name that needs to be fetched"
// @Success 200 {object} models.User "User data"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Database failure"
// @Router /user/{name} [get]
func (h *UserHandler) GetUserByName(c *gin.Context) {
	user, err := h.service.GetUserByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Update user
// @Description Merges the given fields into every user with this name. Absent fields are left unchanged.
// @Tags user
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name path string true "Name that needs to be updated"
// @Param body body models.UpdateUserRequest true "Updated user fields"
// @Success 200 {object} models.MessageResponse "Updated"
// @Failure 400 {object} models.ErrorResponse "Malformed body"
// @Failure 404 {object} models.ErrorResponse "Not found"
// @Failure 422 {object} models.ErrorResponse "Empty patch or blank required field"
// @Failure 500 {object} models.ErrorResponse "Database failure"
// @Router /user/{name} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		_ = c.Error(apperrors.NewBadRequestError(err))
		return
	}

	result, err := h.service.UpdateUser(c.Request.Context(), req, c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// @Summary Delete user
// @Description Deletes every user with this name. Deleting an absent user succeeds.
// @Tags user
// @Param name path string true "The name that needs to be deleted"
// @Success 200 "Deleted"
// @Failure 500 {object} models.ErrorResponse "Database failure"
// @Router /user/{name} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), c.Param("name")); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusOK)
}
