// internal/handlers/flash.go
package handlers

import (
	"net/http"
	"strings"
)

type Flash struct {
	Kind string // "ok" or "error"
	Text string
}

var okText = map[string]string{
	"registered":  "Account created.",
	"entry_added": "Entry added.",
}

// MakeFlash reads ?ok= after a redirect and otherwise falls back to
// handler-provided messages. Unknown keys are not echoed back.
func MakeFlash(r *http.Request, errStr, msgStr string) *Flash {
	if errStr != "" {
		return &Flash{Kind: "error", Text: errStr}
	}
	if key := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("ok"))); key != "" {
		if t, ok := okText[key]; ok {
			return &Flash{Kind: "ok", Text: t}
		}
	}
	if msgStr != "" {
		return &Flash{Kind: "ok", Text: msgStr}
	}
	return nil
}
