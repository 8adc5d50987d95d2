package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Dosada05/family-games/brackets"
	"github.com/Dosada05/family-games/services"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origins are already restricted by the CORS middleware.
		return true
	},
}

type WebSocketHandler struct {
	hub         *brackets.Hub
	competition services.CompetitionService
}

func NewWebSocketHandler(hub *brackets.Hub, cs services.CompetitionService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		competition: cs,
	}
}

// ServeGameWs subscribes a client to the updates of one game.
// Clients connect to /ws/games/{gameID}.
func (h *WebSocketHandler) ServeGameWs(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.competition.GetGame(r.Context(), gameID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	var initial interface{}
	if result, err := h.competition.GetResult(r.Context(), gameID); err == nil {
		initial = services.BracketUpdatePayload{GameID: gameID, Result: result}
	}
	h.serve(w, r, brackets.GameRoom(gameID), brackets.WebSocketMessage{
		Type:    services.EventBracketUpdated,
		Payload: initial,
		RoomID:  brackets.GameRoom(gameID),
	})
}

// ServeCompetitionWs subscribes a client to every change of the competition.
func (h *WebSocketHandler) ServeCompetitionWs(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, brackets.CompetitionRoom, brackets.WebSocketMessage{
		Type:    services.EventLeaderboardUpdated,
		Payload: h.competition.Leaderboard(r.Context()),
		RoomID:  brackets.CompetitionRoom,
	})
}

// serve upgrades the connection, queues the current state as the first
// message and joins the client to roomID.
func (h *WebSocketHandler) serve(w http.ResponseWriter, r *http.Request, roomID string, initial brackets.WebSocketMessage) {
	snapshot, err := json.Marshal(initial)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		log.Printf("Failed to upgrade connection for room %s: %v", roomID, err)
		return
	}

	client := &brackets.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: roomID,
	}
	client.Send <- snapshot
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	log.Printf("Client registered and pumps started for room %s.", roomID)
}
