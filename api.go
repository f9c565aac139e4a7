/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Seednode/clapboard/games/clapboard"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

const maxBodySize = 1 << 20

// requestID returns the caller's X-Request-ID, or a fresh one.
func requestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}

	return uuid.New().String()
}

type guessRequest struct {
	Guess      string `json:"guess"`
	GuessCount int    `json:"guessCount"`
	Round      int    `json:"round"`
}

type hintRequest struct {
	Round    int    `json:"round"`
	HintType string `json:"hintType"`
}

type shareRequest struct {
	PuzzleNumber int                  `json:"puzzleNumber"`
	Guesses      []clapboard.Feedback `json:"guesses"`
	Solved       bool                 `json:"solved"`
}

type shareResponse struct {
	Text string `json:"text"`
}

type titlesResponse struct {
	Titles []string `json:"titles"`
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v)
}

// writeJSON encodes v as the response body and logs the request under label.
func writeJSON(cfg *Config, w http.ResponseWriter, r *http.Request, status int, v any, label string, startTime time.Time, errs chan<- error) {
	data, err := json.Marshal(v)
	if err != nil {
		errs <- err

		status = http.StatusInternalServerError
		data = []byte(`{"error":"` + msgServerError + `"}`)
	}

	reqID := requestID(r)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Request-ID", reqID)
	securityHeaders(cfg, w)
	w.WriteHeader(status)

	written, err := w.Write(data)
	if err != nil {
		errs <- err

		return
	}

	logf(cfg, "SERVE: %s %d (%s) to %s [%s] in %s",
		label,
		status,
		humanReadableSize(int64(written)),
		realIP(r),
		reqID,
		time.Since(startTime).Round(time.Microsecond),
	)
}

func serveDaily(cfg *Config, game *clapboard.Game, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		daily, err := game.Daily(cfg.puzzleDate())
		if err != nil {
			status, body := apiError(err, msgInvalidRequest)
			writeJSON(cfg, w, r, status, body, "Daily", startTime, errs)

			return
		}

		writeJSON(cfg, w, r, http.StatusOK, daily, "Daily", startTime, errs)
	}
}

func serveGuess(cfg *Config, game *clapboard.Game, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		var req guessRequest
		if err := decodeBody(r, &req); err != nil {
			writeJSON(cfg, w, r, http.StatusBadRequest, errorResponse{Error: msgInvalidRequest}, "Guess", startTime, errs)

			return
		}

		result, err := game.Guess(cfg.puzzleDate(), req.Round, req.Guess, req.GuessCount)
		if err != nil {
			status, body := apiError(err, msgInvalidGuess)
			writeJSON(cfg, w, r, status, body, "Guess", startTime, errs)

			return
		}

		writeJSON(cfg, w, r, http.StatusOK, result, "Guess", startTime, errs)
	}
}

func serveHint(cfg *Config, game *clapboard.Game, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		var req hintRequest
		if err := decodeBody(r, &req); err != nil {
			writeJSON(cfg, w, r, http.StatusBadRequest, errorResponse{Error: msgInvalidRequest}, "Hint", startTime, errs)

			return
		}

		hint, err := game.Hint(cfg.puzzleDate(), req.Round, clapboard.HintKind(req.HintType))
		if err != nil {
			status, body := apiError(err, msgInvalidHint)
			writeJSON(cfg, w, r, status, body, "Hint", startTime, errs)

			return
		}

		writeJSON(cfg, w, r, http.StatusOK, hint, "Hint", startTime, errs)
	}
}

func serveTitles(cfg *Config, game *clapboard.Game, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		writeJSON(cfg, w, r, http.StatusOK, titlesResponse{Titles: game.Titles()}, "Titles", startTime, errs)
	}
}

func serveShare(cfg *Config, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		var req shareRequest
		if err := decodeBody(r, &req); err != nil {
			writeJSON(cfg, w, r, http.StatusBadRequest, errorResponse{Error: msgInvalidRequest}, "Share", startTime, errs)

			return
		}

		if req.PuzzleNumber < 1 || len(req.Guesses) > clapboard.MaxGuesses {
			writeJSON(cfg, w, r, http.StatusBadRequest, errorResponse{Error: msgInvalidRequest}, "Share", startTime, errs)

			return
		}

		text := clapboard.ShareText(req.PuzzleNumber, req.Guesses, req.Solved, siteURL(cfg, r))

		writeJSON(cfg, w, r, http.StatusOK, shareResponse{Text: text}, "Share", startTime, errs)
	}
}

func registerAPI(cfg *Config, game *clapboard.Game, mux *httprouter.Router, errs chan<- error) {
	mux.GET(cfg.prefix+"/api/daily", serveDaily(cfg, game, errs))
	mux.POST(cfg.prefix+"/api/guess", serveGuess(cfg, game, errs))
	mux.POST(cfg.prefix+"/api/hint", serveHint(cfg, game, errs))
	mux.GET(cfg.prefix+"/api/titles", serveTitles(cfg, game, errs))
	mux.POST(cfg.prefix+"/api/share", serveShare(cfg, errs))
	mux.GET(cfg.prefix+"/api/ws", serveWS(cfg, game))
}
