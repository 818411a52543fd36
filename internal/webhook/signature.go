package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// GenerateSignedPayload serializes the event and signs it with HMAC-SHA256.
// The signature covers "{timestamp}.{event_id}.{json_body}" so that clients
// can verify integrity, deduplicate by event ID, and reject replays by
// timestamp. The returned signature is formatted as "sha256=<hex>".
func GenerateSignedPayload(secret string, event WebhookEvent) (payload []byte, signature string, timestamp int64, err error) {
	payload, err = json.Marshal(event)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to marshal event: %w", err)
	}

	timestamp = time.Now().Unix()
	signature = sign(secret, timestamp, event.EventID, payload)

	return payload, signature, timestamp, nil
}

// VerifySignedPayload checks a received payload against its signature header
func VerifySignedPayload(secret string, timestamp int64, eventID string, payload []byte, signature string) bool {
	expected := sign(secret, timestamp, eventID, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func sign(secret string, timestamp int64, eventID string, payload []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(h, "%d.%s.%s", timestamp, eventID, payload)
	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}
