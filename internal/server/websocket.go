package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/FocuswithJustin/LaurelLatin/internal/logging"
)

const (
	wsWriteWait  = 10 * time.Second
	wsReadWait   = 60 * time.Second
	wsMaxMessage = maxRequestBytes
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins; restrict behind a reverse proxy
	},
}

// StreamMessage is one message on the segmentation stream.
type StreamMessage struct {
	// Type is "sentence", "complete", or "error".
	Type string `json:"type"`

	// Sentence is set for "sentence" messages.
	Sentence *SentenceResult `json:"sentence,omitempty"`

	// Count is the total number of sentences, set on "complete".
	Count int `json:"count,omitempty"`

	// Message is the error description, set on "error".
	Message string `json:"message,omitempty"`

	// RequestID ties the message to the request that produced it.
	RequestID string `json:"request_id,omitempty"`
}

// handleWSSegment upgrades the connection and serves segmentation requests
// over it: the client sends one SegmentRequest per message, the server
// streams one message per sentence followed by a completion marker.
func (s *Server) handleWSSegment(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsMaxMessage)
	logging.WebSocketEvent("client_connected", "remote_addr", r.RemoteAddr)

	for {
		conn.SetReadDeadline(time.Now().Add(wsReadWait))

		var req SegmentRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logging.Error("websocket unexpected close", "error", err)
			}
			logging.WebSocketEvent("client_disconnected", "remote_addr", r.RemoteAddr)
			return
		}

		requestID := uuid.New().String()
		result, _, apiErr := s.segmentRequest(requestID, req)
		if apiErr != nil {
			if !writeStream(conn, StreamMessage{
				Type:      "error",
				Message:   apiErr.Message,
				RequestID: requestID,
			}) {
				return
			}
			continue
		}

		for i := range result.Sentences {
			msg := StreamMessage{
				Type:      "sentence",
				Sentence:  &result.Sentences[i],
				RequestID: requestID,
			}
			if !writeStream(conn, msg) {
				return
			}
		}

		if !writeStream(conn, StreamMessage{
			Type:      "complete",
			Count:     result.Count,
			RequestID: requestID,
		}) {
			return
		}
	}
}

func writeStream(conn *websocket.Conn, msg StreamMessage) bool {
	conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := conn.WriteJSON(msg); err != nil {
		logging.Error("websocket write failed", "error", err)
		return false
	}
	return true
}
