package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/loydmilligan/leadoff/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	leadHandler *handlers.LeadHandler,
	actionHandler *handlers.LeadActionHandler,
	activityHandler *handlers.ActivityHandler,
	recordsHandler *handlers.LeadRecordsHandler,
	archiveHandler *handlers.ArchiveHandler,
	plannerHandler *handlers.PlannerHandler,
) *gin.Engine {

	api := r.Group("/api/v1")

	// LEADS
	leads := api.Group("/leads")
	{
		leads.POST("", leadHandler.Create)
		leads.GET("", leadHandler.List)
		leads.GET("/similar", leadHandler.SearchSimilar)
		leads.GET("/follow-ups", leadHandler.FollowUps)
		leads.GET("/:id", leadHandler.Get)
		leads.PUT("/:id", leadHandler.Update)
		leads.DELETE("/:id", leadHandler.Delete)

		// stage transitions
		leads.PUT("/:id/stage", leadHandler.UpdateStage)
		leads.GET("/:id/stage/validate", leadHandler.ValidateTransition)
		leads.POST("/:id/close-won", actionHandler.CloseWon)
		leads.POST("/:id/close-lost", actionHandler.CloseLost)
		leads.POST("/:id/nurture", actionHandler.Nurture)

		// activities
		leads.POST("/:id/activities", activityHandler.Create)
		leads.GET("/:id/activities", activityHandler.ListByLead)

		// 1:1 side records
		leads.PUT("/:id/organization", recordsHandler.UpsertOrganization)
		leads.GET("/:id/organization", recordsHandler.GetOrganization)
		leads.PUT("/:id/demo", recordsHandler.UpsertDemo)
		leads.GET("/:id/demo", recordsHandler.GetDemo)
		leads.PUT("/:id/proposal", recordsHandler.UpsertProposal)
		leads.GET("/:id/proposal", recordsHandler.GetProposal)
		leads.PUT("/:id/lost-reason", recordsHandler.UpsertLostReason)
		leads.GET("/:id/lost-reason", recordsHandler.GetLostReason)

		// archive
		leads.POST("/:id/archive", archiveHandler.Archive)
		leads.POST("/:id/restore", archiveHandler.Restore)
	}

	// ACTIVITIES
	activities := api.Group("/activities")
	{
		activities.PUT("/:activityId/complete", activityHandler.Complete)
		activities.DELETE("/:activityId", activityHandler.Delete)
	}

	// DEMOS
	api.GET("/demos/upcoming", recordsHandler.ListUpcomingDemos)

	// ARCHIVE
	archive := api.Group("/archive")
	{
		archive.GET("/leads", archiveHandler.List)
		archive.DELETE("/leads/:id", archiveHandler.Purge)
	}

	// PLANNER
	api.GET("/planner", plannerHandler.Get)

	return r
}
