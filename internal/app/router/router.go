// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "calorie_backend/internal/feature/auth/transport/handler"
	creditshandler "calorie_backend/internal/feature/credits/transport/handler"
	diaryhandler "calorie_backend/internal/feature/diary/transport/handler"
	foodshandler "calorie_backend/internal/feature/foods/transport/handler"
	mealshandler "calorie_backend/internal/feature/meals/transport/handler"
	newsletterhandler "calorie_backend/internal/feature/newsletter/transport/handler"
	"calorie_backend/internal/platform/http/handler"
	jwtmw "calorie_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with all routes registered. Everything
// except health, auth, and newsletter enrollment sits behind the JWT
// middleware.
func NewRouter(
	authH *authhandler.AuthHandler,
	otpH *authhandler.OTPHandler,
	newsletterH *newsletterhandler.NewsletterHandler,
	foodsH *foodshandler.FoodsHandler,
	mealsH *mealshandler.MealsHandler,
	creditsH *creditshandler.CreditsHandler,
	diaryH *diaryhandler.DiaryHandler,
) *gin.Engine {
	r := gin.Default()

	// Browser clients call the API cross-origin.
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)

	// Password login is kept alongside the code flow for API clients.
	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)

	// Email-code login
	r.POST("/auth/otp/request", otpH.RequestCode)
	r.POST("/auth/otp/verify", otpH.VerifyCode)

	r.POST("/newsletter/subscribe", newsletterH.Subscribe)

	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/foods/search", foodsH.Search)
		auth.POST("/foods/recognize", foodsH.Recognize)

		auth.POST("/meals/generate", mealsH.Generate)
		auth.GET("/credits", creditsH.Remaining)

		auth.GET("/entries", diaryH.ListDay)
		auth.POST("/entries", diaryH.AddEntry)
		auth.PATCH("/entries/:id/servings", diaryH.AdjustServings)
		auth.DELETE("/entries/:id", diaryH.Remove)
	}

	return r
}
