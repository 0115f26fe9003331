package app

import (
	"os"

	"github.com/appdotbuilder/simple-todo-app-a8eb/config"
	"github.com/appdotbuilder/simple-todo-app-a8eb/database"
	"github.com/appdotbuilder/simple-todo-app-a8eb/handlers"
	"github.com/appdotbuilder/simple-todo-app-a8eb/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupAndRunApp wires the application together and blocks serving HTTP.
func SetupAndRunApp() error {
	err := config.LoadENV()
	if err != nil {
		return err
	}

	err = database.StartPostgreSQL()
	if err != nil {
		return err
	}

	// the connection is long-lived and shared by every request
	defer database.ClosePostgreSQL()

	handlers.Todos = database.NewPostgresTodoStore(database.GetDB())

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	router.SetupRoutes(app)

	config.AddSwaggerRoutes(app)

	// browser UI
	app.Static("/", "./static")

	// optional event fan-out to an MQTT broker, enabled by MQTT_URL
	go handlers.InitMQTTPublisher()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	return app.Listen(":" + port)
}
