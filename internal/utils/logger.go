package utils

import (
	"log"
	"strings"
)

// LogEvent prints one standardized line per domain event. Messages carry
// identifiers only; record payloads and credentials stay out of the log.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] request_id=%s action=%s msg=%s", strings.ToUpper(strings.TrimSpace(module)), req, action, message)
}
