package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/appdotbuilder/simple-todo-app-a8eb/database"
	"github.com/appdotbuilder/simple-todo-app-a8eb/models"
	"github.com/gofiber/fiber/v2"
)

// Todos is the store behind the handlers. Assigned at startup; tests swap
// in a stub.
var Todos database.TodoStore

// HandleAllTodos godoc
// @Summary  List all todos, newest first
// @Tags     todos
// @Produce  json
// @Success  200  {array}  models.Todo
// @Failure  500  {object}  map[string]string
// @Router   /api/todos [get]
func HandleAllTodos(c *fiber.Ctx) error {
	todos, err := Todos.GetAll(c.Context())
	if err != nil {
		log.Printf("list todos: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(200).JSON(todos)
}

// HandleCreateTodo godoc
// @Summary  Create a todo
// @Tags     todos
// @Accept   json
// @Produce  json
// @Param    body  body      models.CreateTodoRequest  true  "Todo body"
// @Success  201   {object}  models.Todo
// @Failure  400   {object}  map[string]string
// @Failure  500   {object}  map[string]string
// @Router   /api/todos [post]
func HandleCreateTodo(c *fiber.Ctx) error {
	req := new(models.CreateTodoRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return c.Status(400).JSON(fiber.Map{"error": "title is required"})
	}

	todo, err := Todos.Create(c.Context(), title, req.Description)
	if err != nil {
		log.Printf("create todo: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	publishTodoEvent(TodoEvent{Type: EventCreated, ID: todo.ID, Todo: &todo})

	return c.Status(201).JSON(todo)
}

// HandleGetOneTodo godoc
// @Summary  Get a todo by id
// @Tags     todos
// @Produce  json
// @Param    id   path      int  true  "Todo ID"
// @Success  200  {object}  models.Todo
// @Failure  400  {object}  map[string]string
// @Failure  404  {object}  map[string]string
// @Failure  500  {object}  map[string]string
// @Router   /api/todos/{id} [get]
func HandleGetOneTodo(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}

	todo, err := Todos.GetOne(c.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "todo not found"})
	} else if err != nil {
		log.Printf("get todo %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(200).JSON(todo)
}

// HandleUpdateTodo godoc
// @Summary  Partially update a todo
// @Tags     todos
// @Accept   json
// @Produce  json
// @Param    id    path      int                       true  "Todo ID"
// @Param    body  body      models.UpdateTodoRequest  true  "Fields to change; description:null clears it"
// @Success  200   {object}  models.Todo
// @Failure  400   {object}  map[string]string
// @Failure  404   {object}  map[string]string
// @Failure  500   {object}  map[string]string
// @Router   /api/todos/{id} [put]
func HandleUpdateTodo(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}

	req := new(models.UpdateTodoRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return c.Status(400).JSON(fiber.Map{"error": "title must not be empty"})
		}
		req.Title = &title
	}

	todo, err := Todos.Update(c.Context(), id, *req)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "todo not found"})
	} else if err != nil {
		log.Printf("update todo %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	publishTodoEvent(TodoEvent{Type: EventUpdated, ID: todo.ID, Todo: &todo})

	return c.Status(200).JSON(todo)
}

// HandleDeleteTodo godoc
// @Summary  Delete a todo
// @Tags     todos
// @Produce  json
// @Param    id   path      int  true  "Todo ID"
// @Success  200  {object}  map[string]bool
// @Failure  400  {object}  map[string]string
// @Failure  500  {object}  map[string]string
// @Router   /api/todos/{id} [delete]
func HandleDeleteTodo(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}

	deleted, err := Todos.Delete(c.Context(), id)
	if err != nil {
		log.Printf("delete todo %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	if deleted {
		publishTodoEvent(TodoEvent{Type: EventDeleted, ID: id})
	}

	// "deleted": false is a normal outcome, not an error
	return c.Status(200).JSON(fiber.Map{"deleted": deleted})
}

// parseID rejects only non-numeric ids. Numbers that match no row,
// zero and negatives included, take the normal not-found path.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		_ = c.Status(400).JSON(fiber.Map{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
