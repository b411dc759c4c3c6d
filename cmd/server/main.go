package main

import (
	"log"
	"os"
	"time"

	controller "travel-pack/internal/controllers/http"
	mmysql "travel-pack/internal/infra/mysql"
	"travel-pack/internal/infra/paypal"
	"travel-pack/internal/infra/rabbitmq"
	mysqlrepo "travel-pack/internal/repository/mysql"
	"travel-pack/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
)

func main() {
	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	orderRepo := mysqlrepo.NewOrderRepository(db)
	packageRepo := mysqlrepo.NewPackageRepository(db)
	hotelRepo := mysqlrepo.NewHotelRepository(db)
	userRepo := mysqlrepo.NewUserRepository(db)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "booking.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	orderService := services.NewOrderService(orderRepo, publisher)
	packageService := services.NewPackageService(packageRepo)
	hotelService := services.NewHotelService(hotelRepo)
	userService := services.NewUserService(userRepo)

	paypalClient := paypal.NewClient(
		envOrDefault("PAYPAL_API_URL", "https://api-m.sandbox.paypal.com"),
		os.Getenv("PAYPAL_CLIENT_ID"),
		os.Getenv("PAYPAL_SECRET"),
		5*time.Second,
	)
	if os.Getenv("PAYPAL_VERIFY") == "1" {
		orderService.SetVerifier(paypalClient)
		log.Println("Server-side PayPal capture verification enabled")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:         envOrDefault("REDIS_HOST", "localhost") + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	auth := controller.NewAuth(userService, os.Getenv("JWT_SECRET"))
	handler := controller.NewHandler(
		orderService,
		packageService,
		hotelService,
		userService,
		redisClient,
		auth,
		paypalClient.ClientID(),
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{envOrDefault("FRONTEND_ORIGIN", "http://localhost:5173")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	handler.RegisterRoutes(r)

	port := envOrDefault("PORT", "5002")

	log.Printf("Starting travel-pack API on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
