package controllers

import (
	"net/http"

	"MediSearchAU/models"
	"MediSearchAU/services"
	"MediSearchAU/util"

	"github.com/gin-gonic/gin"
)

func Search(router *gin.Engine) {
	search := router.Group("/api/search")
	{
		search.POST("/pbs", SearchPBS)
		search.POST("/google", SearchGoogle)
		search.POST("/unified", SearchUnified)
		search.GET("/history", FetchHistory)
		search.DELETE("/history", ClearHistory)
		search.GET("/google-info", GoogleInfo)
	}
}

func SearchPBS(c *gin.Context) {
	var data models.MedicationSearchCreate
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	results, err := services.SearchPBS(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(results))
}

func SearchGoogle(c *gin.Context) {
	var data models.MedicationSearchCreate
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	results, err := services.SearchGoogle(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(results))
}

func SearchUnified(c *gin.Context) {
	var data models.MedicationSearchCreate
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.SearchUnified(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

func FetchHistory(c *gin.Context) {
	history, err := services.GetHistory(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(history))
}

func ClearHistory(c *gin.Context) {
	msg, err := services.ClearHistory(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func GoogleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, util.SuccessResponse(services.GoogleInfo()))
}
