package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ryalynne/hrms/internal/app/controllers"
	"github.com/ryalynne/hrms/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Employee *controllers.EmployeeController
	JobTitle *controllers.JobTitleController
	Position *controllers.PositionController
	Auth     *controllers.AuthController
	Health   *controllers.HealthController
}

// Options tunes route protection
type Options struct {
	// ProtectMutations puts every POST, PATCH and DELETE (and the export)
	// behind the JWT gate. Reads stay public either way.
	ProtectMutations bool
}

// SetupRouter configures all application routes. The paths are unversioned
// because the browser client calls them as-is.
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware, opts Options) {
	router.GET("/", ctrl.Health.Root)
	router.GET("/ping", ctrl.Health.Ping)

	// --- Public Auth routes ---
	auth := router.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	router.GET("/protected-route", authMiddleware.JWTAuth(), ctrl.Auth.Protected)

	guard := func(group *gin.RouterGroup) gin.IRoutes {
		if opts.ProtectMutations {
			return group.Group("", authMiddleware.JWTAuth())
		}
		return group
	}

	// Employee routes
	users := router.Group("/users")
	{
		users.GET("", ctrl.Employee.ListEmployees)
		users.GET("/:id", ctrl.Employee.GetEmployee)

		protected := guard(users)
		protected.GET("/export", ctrl.Employee.ExportEmployees)
		protected.POST("", ctrl.Employee.CreateEmployee)
		protected.PATCH("/:id", ctrl.Employee.UpdateEmployee)
		protected.DELETE("/:id", ctrl.Employee.DeleteEmployee)
	}

	// Job title routes
	jobs := router.Group("/job")
	{
		jobs.GET("", ctrl.JobTitle.ListJobTitles)
		jobs.GET("/getJobTitle/:id", ctrl.JobTitle.GetJobTitle)

		protected := guard(jobs)
		protected.POST("", ctrl.JobTitle.CreateJobTitle)
		protected.PATCH("/:id", ctrl.JobTitle.UpdateJobTitle)
		protected.DELETE("/:id", ctrl.JobTitle.DeleteJobTitle)
	}

	// Position (salary) routes
	salary := router.Group("/salary")
	{
		salary.GET("", ctrl.Position.ListPositions)
		salary.GET("/getPosition/", ctrl.Position.ListPositionsByJob)
		salary.GET("/getPosition/:id", ctrl.Position.ListPositionsByJob)
		salary.GET("/getSalary/:id", ctrl.Position.GetPosition)

		protected := guard(salary)
		protected.POST("", ctrl.Position.CreatePosition)
		protected.PATCH("/:id", ctrl.Position.UpdatePosition)
		protected.DELETE("/:id", ctrl.Position.DeletePosition)
	}
}
