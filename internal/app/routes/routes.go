package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/courseregistry/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	studentController *controllers.StudentController,
	offeringController *controllers.OfferingController,
	registryController *controllers.RegistryController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course catalog routes
	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:name", courseController.GetCourse)
		courses.GET("/:name/describe", courseController.DescribeCourse)
		courses.POST("/:name/prerequisites", courseController.AddPrerequisite)
		courses.DELETE("/:name", courseController.DeleteCourse)
	}

	// Student roster routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:name", studentController.GetStudent)
		students.GET("/:name/describe", studentController.DescribeStudent)
		students.POST("/:name/courses", studentController.AddCompletedCourse)
		students.DELETE("/:name", studentController.DeleteStudent)
	}

	// Offering routes, keyed by course name and start date
	offerings := v1.Group("/offerings")
	{
		offerings.POST("", offeringController.CreateOffering)
		offerings.GET("", offeringController.GetAllOfferings)
		offerings.GET("/:course/:date", offeringController.GetOffering)
		offerings.GET("/:course/:date/describe", offeringController.DescribeOffering)
		offerings.POST("/:course/:date/students", offeringController.EnrollStudent)
		offerings.DELETE("/:course/:date", offeringController.DeleteOffering)
	}

	v1.GET("/stats", registryController.GetStats)
}
