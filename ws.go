/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"log"
	"net/http"
	"time"

	"github.com/Seednode/clapboard/games/clapboard"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Messages coming from clients
type ClientMessage struct {
	Type       string `json:"type"`                 // "daily", "guess", "hint"
	Guess      string `json:"guess,omitempty"`      // guess
	GuessCount int    `json:"guessCount,omitempty"` // guess
	Round      int    `json:"round,omitempty"`      // guess / hint
	HintType   string `json:"hintType,omitempty"`   // hint
}

// DailyMessage answers "daily".
type DailyMessage struct {
	Type string `json:"type"` // "daily"
	clapboard.Daily
}

// GuessResultMessage answers "guess".
type GuessResultMessage struct {
	Type  string `json:"type"`  // "guess_result"
	Round int    `json:"round"` // round the guess was scored against
	clapboard.GuessResult
}

// HintMessage answers "hint".
type HintMessage struct {
	Type  string `json:"type"` // "hint"
	Round int    `json:"round"`
	clapboard.Hint
}

// ErrorMessage is sent to the offending client only.
type ErrorMessage struct {
	Type    string `json:"type"`    // "error"
	Message string `json:"message"` // user-facing text
}

type Client struct {
	id   string
	conn *websocket.Conn
	send chan any
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func serveWS(cfg *Config, game *clapboard.Game) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			id:   uuid.New().String(),
			conn: conn,
			send: make(chan any, 8),
		}

		logf(cfg, "SERVE: WebSocket %s opened by %s", client.id, realIP(r))

		go client.writePump()
		client.readPump(cfg, game)

		logf(cfg, "SERVE: WebSocket %s closed by %s", client.id, realIP(r))
	}
}

// handle answers one client message. Every reply is derived from the same
// Game calls the HTTP API uses.
func handle(cfg *Config, game *clapboard.Game, msg ClientMessage) any {
	date := cfg.puzzleDate()

	switch msg.Type {
	case "daily":
		daily, err := game.Daily(date)
		if err != nil {
			return errorMessage(err, msgInvalidRequest)
		}
		return DailyMessage{Type: "daily", Daily: daily}
	case "guess":
		result, err := game.Guess(date, msg.Round, msg.Guess, msg.GuessCount)
		if err != nil {
			return errorMessage(err, msgInvalidGuess)
		}
		return GuessResultMessage{Type: "guess_result", Round: msg.Round, GuessResult: result}
	case "hint":
		hint, err := game.Hint(date, msg.Round, clapboard.HintKind(msg.HintType))
		if err != nil {
			return errorMessage(err, msgInvalidHint)
		}
		return HintMessage{Type: "hint", Round: msg.Round, Hint: hint}
	default:
		return ErrorMessage{Type: "error", Message: msgInvalidRequest}
	}
}

func errorMessage(err error, invalid string) ErrorMessage {
	_, body := apiError(err, invalid)

	return ErrorMessage{Type: "error", Message: body.Error}
}

func (c *Client) readPump(cfg *Config, game *clapboard.Game) {
	defer func() {
		close(c.send)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxBodySize)

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		startTime := time.Now()

		c.send <- handle(cfg, game, msg)

		logf(cfg, "SERVE: WebSocket %q to %s [%s] in %s",
			msg.Type,
			c.conn.RemoteAddr(),
			c.id,
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}
