package controllers

import (
	"net/http"

	"MediSearchAU/services"

	"github.com/gin-gonic/gin"
)

func Health(router *gin.Engine) {
	router.GET("/api/", Root)
	router.GET("/api/health", HealthCheck)
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Medical Search API - Australian Healthcare Database Search",
	})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, services.Health(c))
}
