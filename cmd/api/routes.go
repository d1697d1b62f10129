package main

import (
	"crm-platform/internal/httpapi"
	"crm-platform/internal/rbac"
	"crm-platform/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, authMW gin.HandlerFunc) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := r.Group("/v1")

	// AUTH routes (session issuance). Login resolves a seeded roster user.
	v1.POST("/auth/login", h.Login)

	// protected API group
	protected := v1.Group("")
	protected.Use(authMW)
	{
		protected.POST("/auth/logout", h.Logout)
		protected.GET("/me", h.Me)

		// LEADS routes. Visibility scoping happens inside the handlers;
		// any authenticated role may capture and work leads.
		leads := protected.Group("/leads")
		{
			leads.GET("", h.ListLeads)
			leads.POST("", h.CreateLead)
			leads.POST("/:lead_id/stage", h.TransitionStage)
			leads.POST("/:lead_id/notes", h.AddNote)
			leads.GET("/:lead_id/next-action", h.NextAction)
		}

		// STATS routes
		protected.GET("/stats/funnel", h.FunnelStats)
		protected.GET("/stats/summary", h.StatsSummary)
		protected.GET("/pipeline", h.Pipeline)

		// TASKS routes. Anyone can list and advance; creation is a
		// manager surface.
		tasks := protected.Group("/tasks")
		{
			tasks.GET("", h.ListTasks)
			tasks.POST("", rbac.RequireAnyRole(rbac.RoleSalesManager), h.CreateTask)
			tasks.POST("/:task_id/status", h.AdvanceTask)
		}

		// LEAVES routes. Requesting is open; listing and deciding are
		// manager surfaces.
		protected.POST("/leaves", h.RequestLeave)
		leaves := protected.Group("/leaves")
		leaves.Use(rbac.RequireAnyRole(rbac.RoleSalesManager))
		{
			leaves.GET("", h.ListLeaves)
			leaves.POST("/:leave_id/decision", h.DecideLeave)
		}

		// TEAM routes
		teamGroup := protected.Group("/team")
		teamGroup.Use(rbac.RequireAnyRole(rbac.RoleSalesManager))
		{
			teamGroup.GET("/members", h.ListMembers)
		}

		// BILLING routes
		billingGroup := protected.Group("/billing")
		billingGroup.Use(rbac.RequireAnyRole(rbac.RoleSalesManager))
		{
			billingGroup.GET("/quotations", h.ListQuotations)
			billingGroup.GET("/invoices", h.ListInvoices)
			billingGroup.POST("/invoices/:invoice_id/payments", h.RecordPayment)
			billingGroup.GET("/expenses", h.ListExpenses)
			billingGroup.POST("/expenses", h.CreateExpense)
			billingGroup.GET("/expenses/totals", h.ExpenseTotals)
		}

		// ADMIN routes. RequireAnyRole with only the admin role listed
		// keeps managers out; the admin bypass lets admins in.
		admin := protected.Group("/admin")
		admin.Use(rbac.RequireAnyRole(rbac.RoleAdmin))
		{
			admin.POST("/reseed", h.Reseed)
			admin.GET("/activity", h.ActivityTrail)
		}
	}
}
