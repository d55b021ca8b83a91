package server

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"vitalog/internal/coach"
)

const (
	chatWSWriteWait = 10 * time.Second
	chatWSPongWait  = 60 * time.Second
	chatWSPingEvery = (chatWSPongWait * 9) / 10
)

var chatWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type chatWSInbound struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type chatWSOutbound struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId,omitempty"`
	Mode      string `json:"mode,omitempty"`
	Role      string `json:"role,omitempty"`
	Text      string `json:"text,omitempty"`
	Message   string `json:"message,omitempty"`
}

// HandleChatWS runs one chat session per websocket connection. The mode
// comes from the query string; the session is closed when the socket
// goes away.
func (s *Service) HandleChatWS(w http.ResponseWriter, r *http.Request) {
	mode := coach.ChatMode(strings.TrimSpace(r.URL.Query().Get("mode")))
	if mode == "" {
		mode = coach.ChatGeneral
	}

	session, welcome, err := s.coach.StartChat(mode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer s.coach.EndChat(session.ID)

	conn, err := chatWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(chatWSPongWait)); err != nil {
		log.Printf("chat ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(chatWSPongWait))
	})

	writeCh := make(chan chatWSOutbound, 32)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(chatWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(chatWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(chatWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	pushChatWS(ctx, writeCh, chatWSOutbound{
		Type:      "session",
		SessionID: session.ID,
		Mode:      string(session.Mode),
	})
	pushChatWS(ctx, writeCh, chatWSOutbound{
		Type: "message",
		Role: string(welcome.Role),
		Text: welcome.Text,
	})

	for {
		var in chatWSInbound
		if err := conn.ReadJSON(&in); err != nil {
			cancel()
			<-writerDone
			return
		}
		if in.Type != "message" || strings.TrimSpace(in.Text) == "" {
			continue
		}
		// Replies are produced off the read loop so pings keep flowing
		// while the model is thinking. The session serializes turns
		// internally.
		go func(text string) {
			reply, err := session.Send(ctx, text)
			if err != nil {
				pushChatWS(ctx, writeCh, chatWSOutbound{
					Type:    "error",
					Message: coach.UnavailableMessage,
				})
				return
			}
			pushChatWS(ctx, writeCh, chatWSOutbound{
				Type: "message",
				Role: string(reply.Role),
				Text: reply.Text,
			})
		}(in.Text)
	}
}

func pushChatWS(ctx context.Context, ch chan<- chatWSOutbound, out chatWSOutbound) {
	select {
	case <-ctx.Done():
	case ch <- out:
	}
}
