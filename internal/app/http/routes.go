package routes

import (
	adminapi "guide-app/internal/api/admin"
	authapi "guide-app/internal/api/auth"
	"guide-app/internal/api/billing"
	contentapi "guide-app/internal/api/content"
	packagesapi "guide-app/internal/api/packages"
	reviewsapi "guide-app/internal/api/reviews"
	stripewebhooks "guide-app/internal/api/stripewebhook"
	teamapi "guide-app/internal/api/team"
	"guide-app/internal/api/users"
	"guide-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/packages", packagesapi.ListPackages)
	r.GET("/packages/:key", packagesapi.GetPackage)
	r.GET("/teams/:token", teamapi.GetTeam)

	// paywall decision: anonymous allowed, token honored when present
	r.GET("/content/decision/*path", middleware.OptionalAuth(), contentapi.GetDecision)
	r.GET("/reviews", middleware.OptionalAuth(), reviewsapi.ListReviews)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)

	public.GET("/auth/github", authapi.GithubStart)
	public.GET("/auth/github/callback", authapi.GithubCallback)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/associate-session", billing.AssociateSession)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.POST("/teams/:token/join", middleware.SanitizeAndCleanInputMiddleware(), teamapi.JoinTeam)

	auth.PUT("/reviews/:id", middleware.SanitizeAndCleanInputMiddleware(), reviewsapi.UpdateReview)
	auth.DELETE("/reviews/:id", reviewsapi.DeleteReview)
	auth.POST("/reviews/:id/favorite", reviewsapi.FavoriteReview)

	// Buyers only
	purchased := auth.Group("/")
	purchased.Use(middleware.RequirePurchase())
	purchased.POST("/reviews", middleware.SanitizeAndCleanInputMiddleware(), reviewsapi.CreateReview)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.GET("/user/:id", adminapi.GetUserDetails)
}
