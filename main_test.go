package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRun_WiresRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	isTest = true
	defer func() { isTest = false }()

	var captured *gin.Engine

	// intercept the listen call
	startServer = func(r *gin.Engine) {
		captured = r
	}
	defer func() { startServer = startHTTPServer }()

	main()

	assert.NotNil(t, captured)

	registered := map[string]bool{}
	for _, route := range captured.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	assert.True(t, registered["POST /api/search/pbs"])
	assert.True(t, registered["POST /api/search/google"])
	assert.True(t, registered["POST /api/search/unified"])
	assert.True(t, registered["GET /api/search/history"])
	assert.True(t, registered["DELETE /api/search/history"])
	assert.True(t, registered["GET /api/search/google-info"])
	assert.True(t, registered["GET /api/health"])
	assert.True(t, registered["GET /api/"])
}
