package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/controllers"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/middlewares"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/models"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/services"
)

// SetupRouter assembles the full HTTP surface over the given services.
func SetupRouter(log *zap.SugaredLogger, svcs *services.Registry) *gin.Engine {
	models.RegisterValidators()

	r := gin.New()
	middlewares.Setup(r, log)

	moods := controllers.NewMoodController(svcs.Moods)
	gratitude := controllers.NewGratitudeController(svcs.Gratitude)
	screenTime := controllers.NewScreenTimeController(svcs.ScreenTime)
	therapy := controllers.NewTherapyController(svcs.Therapy)
	allergies := controllers.NewAllergyController(svcs.Allergies)
	dashboard := controllers.NewDashboardController(svcs.Dashboard)
	export := controllers.NewExportController(svcs.Export)

	api := r.Group("/api/v1")
	{
		m := api.Group("/moods")
		{
			m.GET("", moods.List)
			m.POST("", moods.Create)
			m.GET("/today", moods.Today)
			m.GET("/trends/weekly", moods.WeeklyTrends)
			m.GET("/trends/monthly", moods.MonthlyTrends)
			m.GET("/:id", moods.Get)
			m.PUT("/:id", moods.Update)
			m.DELETE("/:id", moods.Delete)
		}

		g := api.Group("/gratitude")
		{
			g.GET("", gratitude.List)
			g.POST("", gratitude.Create)
			g.GET("/today", gratitude.Today)
			g.GET("/streak", gratitude.Streak)
			g.GET("/:id", gratitude.Get)
			g.PUT("/:id", gratitude.Update)
			g.DELETE("/:id", gratitude.Delete)
		}

		st := api.Group("/screen-time")
		{
			st.GET("", screenTime.List)
			st.POST("", screenTime.Create)
			st.GET("/today", screenTime.Today)
			st.GET("/trends/weekly", screenTime.WeeklyTrends)
			st.GET("/trends/monthly", screenTime.MonthlyTrends)
			st.GET("/average", screenTime.Average)
			st.GET("/:id", screenTime.Get)
			st.PUT("/:id", screenTime.Update)
			st.DELETE("/:id", screenTime.Delete)
		}

		t := api.Group("/therapy-sessions")
		{
			t.GET("", therapy.List)
			t.POST("", therapy.Create)
			t.GET("/recent", therapy.Recent)
			t.GET("/topics/frequency", therapy.TopicFrequency)
			t.GET("/:id", therapy.Get)
			t.PUT("/:id", therapy.Update)
			t.DELETE("/:id", therapy.Delete)
		}

		a := api.Group("/allergy-episodes")
		{
			a.GET("", allergies.List)
			a.POST("", allergies.Create)
			a.GET("/recent", allergies.Recent)
			a.GET("/triggers/frequency", allergies.TriggerFrequency)
			a.GET("/:id", allergies.Get)
			a.PUT("/:id", allergies.Update)
			a.DELETE("/:id", allergies.Delete)
		}

		api.GET("/dashboard", dashboard.Summary)
		api.GET("/export/counts", export.Counts)
		api.POST("/export", export.Export)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	return r
}
