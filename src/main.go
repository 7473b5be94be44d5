package main

import (
	_ "Backend-Recruit-Console/docs"
	"Backend-Recruit-Console/src/database"
	"Backend-Recruit-Console/src/jobs"
	"Backend-Recruit-Console/src/routes"
	"Backend-Recruit-Console/src/seeder"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis and Asynq are optional; without them caching and the
	// auto-close job are disabled.
	database.InitRedis()
	database.InitAsynq()
	jobs.StartWorker()

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		if err := seeder.SeedSampleForms(); err != nil {
			log.Println("⚠️ Seeding failed:", err)
		}
	}

	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded file answers are served back by path.
	app.Static("/uploads/answers", "./uploads/answers")

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
