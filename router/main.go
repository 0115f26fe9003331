package router

import (
	"github.com/appdotbuilder/simple-todo-app-a8eb/handlers"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/health", handlers.HandleHealthCheck)

	api := app.Group("/api")

	api.Get("/todos", handlers.HandleAllTodos)
	api.Post("/todos", handlers.HandleCreateTodo)
	api.Get("/todos/:id", handlers.HandleGetOneTodo)
	api.Put("/todos/:id", handlers.HandleUpdateTodo)
	api.Delete("/todos/:id", handlers.HandleDeleteTodo)

	app.Get("/events", handlers.HandleEvents)
}
