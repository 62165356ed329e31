package routes

import (
	"MediSearchAU/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public
	controllers.Health(r)
	controllers.Search(r)
}
