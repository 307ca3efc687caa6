package handlers

import (
	"RealEstateAPI/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController, authGate gin.HandlerFunc) {

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.RegisterUser)
		authGroup.POST("/login", authController.LoginUser)
		authGroup.GET("/profile", authGate, authController.GetUserProfile)
		authGroup.PUT("/profile", authGate, authController.UpdateUserProfile)
	}

}
