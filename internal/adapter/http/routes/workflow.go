package routes

import (
	"xtagy_banho/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCompanies = "/companies"
	PathOrders    = "/orders"
	PathPieces    = "/pieces"
)

func addWorkflowRoutes(
	rg *gin.RouterGroup,
	companyHandler *handlers.CompanyHandler,
	orderHandler *handlers.OrderHandler,
	pieceHandler *handlers.PieceHandler,
	goldHandler *handlers.GoldHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	companies := rg.Group(PathCompanies)
	{
		companies.POST("/register", companyHandler.Register)
		companies.GET("/me", companyHandler.Me)
		companies.GET("/:id", companyHandler.GetByID)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.Create)
		orders.GET("", orderHandler.List)
		orders.POST("/link", orderHandler.Link)
		orders.GET("/:id", orderHandler.GetByID)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.POST("/:id/pieces", pieceHandler.Create)
		orders.GET("/:id/pieces", pieceHandler.ListByOrder)
	}

	pieces := rg.Group(PathPieces)
	{
		pieces.GET("/:id", pieceHandler.GetByID)
		pieces.PUT("/:id/label", pieceHandler.UpdateLabel)
	}

	rg.GET("/gold/price", goldHandler.CurrentPrice)
	rg.GET("/analytics/stats", analyticsHandler.Stats)
}
