package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coder/websocket"
)

// wsFrame is one websocket chat frame, in either direction.
type wsFrame struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// handleChatSocket runs a chat session over a websocket. Each inbound text
// frame is answered with one model frame; the exchange stays one-shot
// upstream, but the full transcript is recorded for the session.
func (h *Handler) handleChatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	session := h.transcripts.Begin()
	defer h.transcripts.End(session)

	ctx := r.Context()
	for {
		frame, err := readFrame(ctx, conn)
		if err != nil {
			// Client went away or sent garbage; either way the session ends.
			conn.Close(websocket.StatusNormalClosure, "")
			return
		}

		text := strings.TrimSpace(frame.Text)
		if text == "" {
			continue
		}

		h.transcripts.Append(session, "user", text)
		reply := h.chain.Reply(ctx, text)
		h.transcripts.Append(session, "model", reply)

		if err := writeFrame(ctx, conn, wsFrame{Role: "model", Text: reply}); err != nil {
			slog.Debug("websocket write failed", "error", err)
			return
		}
	}
}

func readFrame(ctx context.Context, conn *websocket.Conn) (wsFrame, error) {
	var frame wsFrame
	typ, data, err := conn.Read(ctx)
	if err != nil {
		return frame, err
	}
	if typ != websocket.MessageText {
		return frame, nil // ignore binary frames
	}
	// A bare text frame is accepted as the message itself.
	if err := json.Unmarshal(data, &frame); err != nil {
		frame = wsFrame{Role: "user", Text: string(data)}
	}
	return frame, nil
}

func writeFrame(ctx context.Context, conn *websocket.Conn, frame wsFrame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}
