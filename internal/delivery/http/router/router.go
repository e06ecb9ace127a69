// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wardlink/internal/delivery/http/middleware"
	"wardlink/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	HospitalHandler    *handler.HospitalHandler
	ReservationHandler *handler.ReservationHandler
	PostHandler        *handler.PostHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	hospitalHandler    *handler.HospitalHandler
	reservationHandler *handler.ReservationHandler
	postHandler        *handler.PostHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		hospitalHandler:    params.HospitalHandler,
		reservationHandler: params.ReservationHandler,
		postHandler:        params.PostHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/refresh", r.authHandler.Refresh, r.authMiddleware.RefreshAuthenticate)
	}

	// Hospital routes; registration and id availability are public, the
	// rest require an access token.
	hospitalGroup := e.Group("/hospital")
	{
		hospitalGroup.POST("", r.hospitalHandler.Register)
		hospitalGroup.GET("/idCheck", r.hospitalHandler.IDCheck)

		protected := hospitalGroup.Group("", r.authMiddleware.Authenticate)
		{
			protected.POST("/ward", r.hospitalHandler.CreateWard)
			protected.PUT("/ward", r.hospitalHandler.UpdateWard)
			protected.DELETE("/ward", r.hospitalHandler.DeleteWard)
			protected.GET("/wardList", r.hospitalHandler.GetWardList)

			protected.POST("/room", r.hospitalHandler.CreateRoom)
			protected.PUT("/room", r.hospitalHandler.UpdateRoom)
			protected.DELETE("/room", r.hospitalHandler.DeleteRoom)
			protected.GET("/roomList", r.hospitalHandler.GetRoomList)

			protected.POST("/patient", r.hospitalHandler.CreatePatient)
			protected.PUT("/patient", r.hospitalHandler.UpdatePatient)
			protected.DELETE("/patient", r.hospitalHandler.DeletePatient)
			protected.GET("/patientList", r.hospitalHandler.GetPatients)

			protected.GET("/main", r.hospitalHandler.GetMainData)

			protected.GET("/allReservation", r.reservationHandler.GetAllReservations)
			protected.GET("/reservationList", r.reservationHandler.GetReservationList)
			protected.PUT("/changeReservationState", r.reservationHandler.ChangeState)
		}
	}

	// Video letter routes
	postGroup := e.Group("/post")
	postGroup.Use(r.authMiddleware.Authenticate)
	{
		postGroup.GET("/detail/:postId", r.postHandler.GetPostDetail)
	}
}
