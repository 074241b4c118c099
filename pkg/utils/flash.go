package utils

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookieName = "flash"

// Flash categories, used as CSS classes by the templates.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
	FlashWarning = "warning"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

// SetFlash queues a notice for the next page. Notices queued earlier in the
// same request are kept.
func SetFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	flashes := readFlashes(r)
	flashes = append(flashes, Flash{Category: category, Message: message})

	raw, err := json.Marshal(flashes)
	if err != nil {
		return
	}

	cookie := &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	// make the notice visible to a render later in this same request
	r.AddCookie(cookie)
}

// PopFlashes returns the queued notices and clears the cookie.
func PopFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	flashes := readFlashes(r)
	if len(flashes) == 0 {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return flashes
}

func readFlashes(r *http.Request) []Flash {
	var cookie *http.Cookie
	// the last cookie wins when SetFlash has appended to the request
	for _, c := range r.Cookies() {
		if c.Name == flashCookieName {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var flashes []Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}
