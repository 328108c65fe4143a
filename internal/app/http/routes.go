package routes

import (
	authapi "github.com/Librity/gympoint-back-end/internal/api/auth"
	helpordersapi "github.com/Librity/gympoint-back-end/internal/api/helporders"
	membershipsapi "github.com/Librity/gympoint-back-end/internal/api/memberships"
	plansapi "github.com/Librity/gympoint-back-end/internal/api/plans"
	studentsapi "github.com/Librity/gympoint-back-end/internal/api/students"
	"github.com/Librity/gympoint-back-end/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/sessions", authapi.Login)
	public.GET("/plans", plansapi.Index)

	// Everything below is operated by an authenticated admin.
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeAndCleanInputMiddleware())

	auth.GET("/students", studentsapi.Index)
	auth.POST("/students", studentsapi.Store)
	auth.PUT("/students/:student_id", studentsapi.Update)
	auth.DELETE("/students/:student_id", studentsapi.Destroy)

	auth.POST("/plans", plansapi.Store)
	auth.PUT("/plans/:plan_id", plansapi.Update)
	auth.DELETE("/plans/:plan_id", plansapi.Destroy)

	auth.GET("/memberships", membershipsapi.Index)
	auth.GET("/students/:student_id/memberships", membershipsapi.Show)
	auth.POST("/students/:student_id/memberships", membershipsapi.Store)
	auth.PUT("/students/:student_id/memberships/:membership_id", membershipsapi.Update)
	auth.PUT("/memberships/:membership_id/transfer", membershipsapi.Transfer)
	auth.DELETE("/students/:student_id/memberships/:membership_id", membershipsapi.Destroy)

	auth.GET("/help-orders", helpordersapi.Index)
	auth.GET("/students/:student_id/help-orders", helpordersapi.Show)
	auth.POST("/students/:student_id/help-orders", helpordersapi.Store)
	auth.POST("/help-orders/:help_order_id/answer", helpordersapi.Answer)
}
