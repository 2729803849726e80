// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preview

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/gogpu/isovt"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  512,
	WriteBufferSize: 512,
}

// revisionEvent is sent to websocket clients when the working set changes.
type revisionEvent struct {
	Revision uint64 `json:"revision"`
}

// handleEvents streams the working set revision over a websocket: once on
// connect, then every time it changes. Clients reload their images on
// each message.
func (p *Preview) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		isovt.Logger().Warn("preview: websocket upgrade", "err", err)
		return
	}
	defer conn.Close()

	// Incoming messages are ignored; a read error means the client is gone.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	poll := time.NewTicker(p.pollInterval)
	defer poll.Stop()
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	last := p.ws.Revision()
	if err := writeEvent(conn, last); err != nil {
		return
	}
	for {
		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case <-poll.C:
			rev := p.ws.Revision()
			if rev == last {
				continue
			}
			last = rev
			if err := writeEvent(conn, rev); err != nil {
				isovt.Logger().Debug("preview: websocket write", "err", err)
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func writeEvent(conn *websocket.Conn, rev uint64) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(revisionEvent{Revision: rev})
}
