package controllers

import (
	"RealEstateAPI/models"
	"RealEstateAPI/services"
	"RealEstateAPI/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService  *services.AuthService
	ImageService *services.ImageService
}

func NewAuthController() *AuthController {
	return &AuthController{
		AuthService:  services.NewAuthService(),
		ImageService: services.NewImageService(),
	}
}

// RegisterUser handles POST /api/auth/register
func (h *AuthController) RegisterUser(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.NewCustomError(http.StatusBadRequest, "Invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	resp, err := h.AuthService.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// LoginUser handles POST /api/auth/login
func (h *AuthController) LoginUser(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(utils.NewCustomError(http.StatusBadRequest, "Invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	resp, err := h.AuthService.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetUserProfile handles GET /api/auth/profile. The auth middleware
// already resolved the live user into the context.
func (h *AuthController) GetUserProfile(c *gin.Context) {
	value, exists := c.Get("user")
	if !exists {
		c.Error(utils.NewCustomError(http.StatusUnauthorized, "Not authorized, no token"))
		return
	}
	user := value.(*models.User)

	c.JSON(http.StatusOK, user)
}

// UpdateUserProfile handles PUT /api/auth/profile (multipart form,
// optional "image" file)
func (h *AuthController) UpdateUserProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.Error(utils.NewCustomError(http.StatusUnauthorized, "Not authorized, no token"))
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(utils.NewCustomError(http.StatusBadRequest, "Invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	// A new profile image is externalized before the patch is applied
	profileImageURL := ""
	if fileHeader, err := c.FormFile("image"); err == nil {
		image, err := h.ImageService.Upload(c.Request.Context(), fileHeader)
		if err != nil {
			c.Error(err)
			return
		}
		profileImageURL = image.URL
	}

	resp, err := h.AuthService.UpdateProfile(c.Request.Context(), userID.(string), req, profileImageURL)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
