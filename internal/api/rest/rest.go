package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/artledger/content-registry/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Content endpoints (reads are public, mutations require authentication)
		v1.POST("/contents", middleware.Auth(authCfg), handler.RegisterContent)
		v1.GET("/contents", handler.ListContents)
		v1.GET("/contents/:id", handler.GetContent)
		v1.PATCH("/contents/:id", middleware.Auth(authCfg), handler.UpdateContent)

		// Access control endpoints
		v1.POST("/contents/:id/access", middleware.Auth(authCfg), handler.GrantAccess)
		v1.DELETE("/contents/:id/access/:principal", middleware.Auth(authCfg), handler.RevokeAccess)
		v1.GET("/contents/:id/access/:principal", handler.CheckAccess)
		v1.POST("/contents/:id/purchase", middleware.Auth(authCfg), handler.PurchaseAccess)
		v1.GET("/contents/:id/ai-training", handler.CheckAITraining)

		// Dispute endpoints
		v1.POST("/contents/:id/dispute", middleware.Auth(authCfg), handler.ReportDispute)
		v1.POST("/contents/:id/dispute/resolve", middleware.Auth(authCfg), handler.ResolveDispute)
		v1.GET("/contents/:id/dispute", handler.CheckDispute)

		// Fee configuration endpoints (mutations are admin-gated downstream)
		v1.GET("/fees", handler.GetFeeConfig)
		v1.PUT("/fees/basis-points", middleware.Auth(authCfg), handler.SetFeeBasisPoints)
		v1.PUT("/fees/recipient", middleware.Auth(authCfg), handler.SetFeeRecipient)

		// Role assignment (admin-gated downstream)
		v1.PUT("/roles/:principal", middleware.Auth(authCfg), handler.AssignRole)

		// Ledger account administration
		v1.GET("/accounts/:principal", middleware.Auth(authCfg), handler.GetAccount)
		v1.POST("/accounts/:principal/credit", middleware.Auth(authCfg), handler.CreditAccount)
		v1.PUT("/accounts/:principal/frozen", middleware.Auth(authCfg), handler.SetAccountFrozen)

		// Webhook endpoints (requires API key authentication only)
		v1.POST("/webhooks/clients", middleware.APIKeyAuth(authCfg), handler.CreateWebhookClient)
	}
}
