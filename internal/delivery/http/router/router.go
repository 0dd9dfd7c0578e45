// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medi/config"
	"medi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config           *config.Config
	DirectoryHandler *handler.DirectoryHandler
	LocationHandler  *handler.LocationHandler
	ReminderHandler  *handler.ReminderHandler
	AlarmHandler     *handler.AlarmHandler
	TestHandler      *handler.TestHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg              *config.Config
	directoryHandler *handler.DirectoryHandler
	locationHandler  *handler.LocationHandler
	reminderHandler  *handler.ReminderHandler
	alarmHandler     *handler.AlarmHandler
	testHandler      *handler.TestHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:              params.Config,
		directoryHandler: params.DirectoryHandler,
		locationHandler:  params.LocationHandler,
		reminderHandler:  params.ReminderHandler,
		alarmHandler:     params.AlarmHandler,
		testHandler:      params.TestHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Provider directory
	directoryGroup := e.Group("/directory")
	{
		directoryGroup.GET("", r.directoryHandler.ListGrouped)
		directoryGroup.GET("/providers", r.directoryHandler.ListProviders)
	}

	// Reference location session state
	locationGroup := e.Group("/location")
	{
		locationGroup.GET("", r.locationHandler.Current)
		locationGroup.DELETE("", r.locationHandler.Clear)
		locationGroup.POST("/fix", r.locationHandler.ReportFix)
		locationGroup.POST("/fix/error", r.locationHandler.ReportFixError)
		locationGroup.POST("/query", r.locationHandler.ResolveQuery)
	}

	// Reminder management
	remindersGroup := e.Group("/reminders")
	{
		remindersGroup.GET("", r.reminderHandler.List)
		remindersGroup.POST("/medications", r.reminderHandler.AddMedication)
		remindersGroup.POST("/hydration", r.reminderHandler.AddHydration)
		remindersGroup.POST("/appointments", r.reminderHandler.AddAppointment)
		remindersGroup.DELETE("/appointments/:id", r.reminderHandler.DeleteAppointment)
		remindersGroup.POST("/:id/toggle", r.reminderHandler.ToggleCompleted)
		remindersGroup.DELETE("/:id", r.reminderHandler.DeleteEntry)
	}

	// Alarm state machine
	alarmGroup := e.Group("/alarm")
	{
		alarmGroup.GET("", r.alarmHandler.State)
		alarmGroup.POST("/dismiss", r.alarmHandler.Dismiss)
		alarmGroup.POST("/taken", r.alarmHandler.MarkTaken)
		alarmGroup.PUT("/enabled", r.alarmHandler.SetEnabled)
	}

	// Scheduler test routes, gated by configuration
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.POST("/tick", r.testHandler.TriggerTick)
		}
	}
}
