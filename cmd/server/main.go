package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"calorie_backend/internal/app/di"
	"calorie_backend/internal/app/router"
	authadapters "calorie_backend/internal/feature/auth/adapters"
	authhandler "calorie_backend/internal/feature/auth/transport/handler"
	authusecase "calorie_backend/internal/feature/auth/usecase"
	creditsadapters "calorie_backend/internal/feature/credits/adapters"
	creditshandler "calorie_backend/internal/feature/credits/transport/handler"
	creditsusecase "calorie_backend/internal/feature/credits/usecase"
	diaryadapters "calorie_backend/internal/feature/diary/adapters"
	diaryhandler "calorie_backend/internal/feature/diary/transport/handler"
	diaryusecase "calorie_backend/internal/feature/diary/usecase"
	foodshandler "calorie_backend/internal/feature/foods/transport/handler"
	foodsusecase "calorie_backend/internal/feature/foods/usecase"
	mealshandler "calorie_backend/internal/feature/meals/transport/handler"
	mealsusecase "calorie_backend/internal/feature/meals/usecase"
	newsletterhandler "calorie_backend/internal/feature/newsletter/transport/handler"
	newsletterusecase "calorie_backend/internal/feature/newsletter/usecase"
	infradb "calorie_backend/internal/platform/db"
	jwtmw "calorie_backend/internal/platform/jwt"
	infraredis "calorie_backend/internal/platform/redis"
)

const tokenLifetime = 24 * time.Hour

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), tokenLifetime)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	otpRepo := authadapters.NewOTPPostgres(db)
	creditRepo := creditsadapters.NewCreditPostgres(db)
	entryRepo := diaryadapters.NewEntryPostgres(db)
	foodRepo := di.NewFoodRepository(rdb)

	// External services
	newsletterClient := di.NewNewsletter()
	var authNewsletter authusecase.Newsletter
	var subscriber newsletterusecase.Subscriber
	if newsletterClient != nil {
		authNewsletter = newsletterClient
		subscriber = newsletterClient
	}
	mailer := di.NewCodeMailer()
	recognizer := di.NewFoodRecognizer(ctx)
	generator := di.NewMealGenerator(ctx)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	otpUC := authusecase.NewOTPUsecase(otpRepo, userRepo, authNewsletter, mailer, jwtGen)
	newsletterUC := newsletterusecase.NewNewsletterUsecase(subscriber)
	foodsUC := foodsusecase.NewFoodsUsecase(foodRepo, recognizer)
	creditsUC := creditsusecase.NewCreditsUsecase(creditRepo)
	mealsUC := mealsusecase.NewMealsUsecase(creditsUC, generator)
	diaryUC := diaryusecase.NewDiaryUsecase(entryRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	otpH := authhandler.NewOTPHandler(otpUC)
	newsletterH := newsletterhandler.NewNewsletterHandler(newsletterUC)
	foodsH := foodshandler.NewFoodsHandler(foodsUC)
	mealsH := mealshandler.NewMealsHandler(mealsUC)
	creditsH := creditshandler.NewCreditsHandler(creditsUC)
	diaryH := diaryhandler.NewDiaryHandler(diaryUC)

	r := router.NewRouter(authH, otpH, newsletterH, foodsH, mealsH, creditsH, diaryH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
