package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Dosada05/fixture-system/brackets"
	"github.com/Dosada05/fixture-system/services"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Источники ограничивает CORS на HTTP-маршрутах; экран подключается с того же хоста.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	hub            *brackets.Hub
	fixtureService services.FixtureService
}

func NewWebSocketHandler(hub *brackets.Hub, fs services.FixtureService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:            hub,
		fixtureService: fs,
	}
}

// ServeWs подключает экран к комнате сессии.
// Клиент должен подключаться к /ws/sessions/{sessionID}
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	sessionID, err := urlParam(r, "sessionID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	session, err := h.fixtureService.GetSession(r.Context(), sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту ошибкой.
		log.Printf("Failed to upgrade connection for session %s: %v", sessionID, err)
		return
	}

	roomID := brackets.RoomForSession(sessionID)
	client := &brackets.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: roomID,
	}

	// Текущее состояние уходит первым сообщением, дальше только обновления.
	snapshot, err := json.Marshal(brackets.WebSocketMessage{
		Type:    brackets.MessageSessionSnapshot,
		Payload: session,
		RoomID:  roomID,
	})
	if err == nil {
		client.Send <- snapshot
	}

	if !h.hub.Join(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()

	log.Printf("Client successfully registered and pumps started for room %s.", roomID)
}
