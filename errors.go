/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Seednode/clapboard/games/clapboard"
)

const (
	msgInvalidRequest = "Invalid request"
	msgInvalidGuess   = "Missing or invalid guess"
	msgInvalidHint    = "Invalid hint type"
	msgNotFound       = "Movie not found in our database. Try again!"
	msgServerError    = "An error has occurred. Please try again."
)

type errorResponse struct {
	Error string `json:"error"`
}

func logf(cfg *Config, format string, args ...any) {
	if !cfg.verbose {
		return
	}

	log.Printf("%s | "+format, append([]any{time.Now().Format(logDate)}, args...)...)
}

// apiError maps a core error onto a status code and a player-facing message.
// invalid is the message used for clapboard.ErrInvalidInput.
func apiError(err error, invalid string) (int, errorResponse) {
	switch {
	case errors.Is(err, clapboard.ErrNotFound):
		return http.StatusNotFound, errorResponse{Error: msgNotFound}
	case errors.Is(err, clapboard.ErrInvalidInput):
		return http.StatusBadRequest, errorResponse{Error: invalid}
	default:
		return http.StatusInternalServerError, errorResponse{Error: msgServerError}
	}
}

func newPage(title, body string) string {
	var htmlBody strings.Builder

	htmlBody.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	htmlBody.WriteString(getFavicon())
	htmlBody.WriteString(`<style>`)
	htmlBody.WriteString(`html,body,a{display:block;height:100%;width:100%;text-decoration:none;color:inherit;cursor:auto;}</style>`)
	htmlBody.WriteString(fmt.Sprintf("<title>%s</title></head>", title))
	htmlBody.WriteString(fmt.Sprintf("<body><a href=\"/\">%s</a></body></html>", body))

	return htmlBody.String()
}
