package handler

import (
	"errors"
	"log"
	"net/http"

	"bakeapi/internal/model"
	"bakeapi/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the self-scoped routes. No target id is ever read
// from the URL here; every operation uses the id resolved from the token.
type ProfileHandler struct {
	userService    service.UserService
	productService service.ProductService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userService service.UserService, productService service.ProductService) *ProfileHandler {
	return &ProfileHandler{userService: userService, productService: productService}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Error getting profile: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) GetMyProducts(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	products, err := h.productService.GetUserProducts(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error getting profile products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else if errors.Is(err, service.ErrEmailAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error updating profile: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.DeleteProfile(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Error deleting profile: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete profile"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted successfully"})
}

// RegisterProfileRoutes registers profile routes; all require authentication
func (h *ProfileHandler) RegisterProfileRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	profileRoutes := rg.Group("/profile")
	profileRoutes.Use(authMW)
	{
		profileRoutes.GET("", h.GetProfile)
		profileRoutes.GET("/products", h.GetMyProducts)
		profileRoutes.PUT("", h.UpdateProfile)
		profileRoutes.DELETE("", h.DeleteProfile)
	}
}
