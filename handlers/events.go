package handlers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/appdotbuilder/simple-todo-app-a8eb/models"
	"github.com/appdotbuilder/simple-todo-app-a8eb/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// Todo change event types sent to SSE and MQTT subscribers.
const (
	EventCreated = "todo.created"
	EventUpdated = "todo.updated"
	EventDeleted = "todo.deleted"
)

// TodoEvent describes one mutation. Todo is nil for deletions.
type TodoEvent struct {
	Type string       `json:"type"`
	ID   int64        `json:"id"`
	Todo *models.Todo `json:"todo,omitempty"`
}

type session struct {
	id           string
	eventChannel chan TodoEvent
}

type sessionsLock struct {
	MU       sync.Mutex
	sessions []*session
}

func (sl *sessionsLock) addSession(s *session) {
	sl.MU.Lock()
	sl.sessions = append(sl.sessions, s)
	sl.MU.Unlock()
}

func (sl *sessionsLock) removeSession(s *session) {
	sl.MU.Lock()
	idx := slices.Index(sl.sessions, s)
	if idx != -1 {
		sl.sessions[idx] = nil
		sl.sessions = slices.Delete(sl.sessions, idx, idx+1)
	}
	sl.MU.Unlock()
}

// broadcast delivers ev to every connected session. Slow consumers are
// skipped rather than blocking the mutating request.
func (sl *sessionsLock) broadcast(ev TodoEvent) {
	sl.MU.Lock()
	defer sl.MU.Unlock()
	for _, s := range sl.sessions {
		select {
		case s.eventChannel <- ev:
		default:
		}
	}
}

var currentSessions sessionsLock

// publishTodoEvent fans a mutation out to SSE clients and, when
// configured, the MQTT broker. It never fails the request.
func publishTodoEvent(ev TodoEvent) {
	currentSessions.broadcast(ev)
	publishMQTT(ev)
}

func formatSSEMessage(eventType string, data any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	err := enc.Encode(data)
	if err != nil {
		return "", err
	}
	sb := strings.Builder{}

	sb.WriteString(fmt.Sprintf("event: %s\n", eventType))
	sb.WriteString(fmt.Sprintf("retry: %d\n", 15000))
	sb.WriteString(fmt.Sprintf("data: %v\n\n", buf.String()))

	return sb.String(), nil
}

// HandleEvents godoc
// @Summary  Stream todo change events over SSE
// @Tags     events
// @Produce  text/event-stream
// @Success  200
// @Router   /events [get]
func HandleEvents(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("Transfer-Encoding", "chunked")

	sessionID, err := utils.GenerateRandomID()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to create session"})
	}

	s := session{
		id:           sessionID,
		eventChannel: make(chan TodoEvent, 16),
	}

	currentSessions.addSession(&s)
	log.Printf("SSE session %s connected", s.id)

	notify := c.Context().Done()

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		keepAliveTickler := time.NewTicker(15 * time.Second)
		keepAliveMsg := ":keepalive\n\n"

		go func() {
			<-notify
			currentSessions.removeSession(&s)
			keepAliveTickler.Stop()
		}()

		for loop := true; loop; {
			select {
			case ev := <-s.eventChannel:
				sseMessage, err := formatSSEMessage(ev.Type, ev)
				if err != nil {
					log.Printf("Error formatting sse message: %v", err)
					continue
				}

				_, err = fmt.Fprint(w, sseMessage)
				if err != nil {
					log.Printf("Error while writing Data: %v", err)
					continue
				}

				err = w.Flush()
				if err != nil {
					currentSessions.removeSession(&s)
					keepAliveTickler.Stop()
					loop = false
					break
				}
			case <-keepAliveTickler.C:
				fmt.Fprint(w, keepAliveMsg)
				err := w.Flush()
				if err != nil {
					currentSessions.removeSession(&s)
					keepAliveTickler.Stop()
					loop = false
					break
				}
			}
		}

		log.Printf("SSE session %s closed", s.id)
	}))

	return nil
}
