package web

import (
	"encoding/base64"
	"net/http"

	"github.com/goccy/go-json"
)

const (
	flashCookieName = "fyyur_flash"
	flashMaxAge     = 60 // seconds
)

// FlashMessage represents a temporary notification message.
type FlashMessage struct {
	Type    string `json:"type"` // "success" or "error"
	Message string `json:"message"`
}

func successFlash(msg string) FlashMessage { return FlashMessage{Type: "success", Message: msg} }
func errorFlash(msg string) FlashMessage   { return FlashMessage{Type: "error", Message: msg} }

// setFlash stores a message to be shown on the next rendered page.
func setFlash(w http.ResponseWriter, flash FlashMessage) {
	payload, err := json.Marshal(flash)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   flashMaxAge,
	})
}

// popFlash returns the pending message, if any, and clears it.
func popFlash(w http.ResponseWriter, r *http.Request) *FlashMessage {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	clearFlash(w)

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flash FlashMessage
	if err := json.Unmarshal(payload, &flash); err != nil || flash.Message == "" {
		return nil
	}
	return &flash
}

// clearFlash removes the flash cookie from the client.
func clearFlash(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
