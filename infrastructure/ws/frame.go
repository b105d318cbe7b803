package ws

import (
	"chat-presence/domain"
	"encoding/json"
	"fmt"
	"strings"
)

// Frame is the envelope exchanged in both directions over a text message.
type Frame struct {
	Event string          `json:"event" validate:"required,max=64"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outboundFrame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// ErrorPayload is the data of an error frame sent back to the requesting connection only.
type ErrorPayload struct {
	Request string `json:"request"`
	Message string `json:"message"`
}

func encodeEvent(evt domain.OutboundEvent) ([]byte, error) {
	return json.Marshal(outboundFrame{Event: evt.Name, Data: evt.Payload})
}

func decodeFrame(raw []byte) (Frame, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return Frame{}, err
	}
	if err := validate.Struct(frame); err != nil {
		return Frame{}, err
	}
	return frame, nil
}

// identityFromData accepts both a bare string and an object carrying userId,
// the two shapes web clients send with userConnected.
func identityFromData(data json.RawMessage) (string, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		return raw, nil
	}
	var obj struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("unsupported userConnected payload: %w", err)
	}
	if strings.TrimSpace(obj.UserID) == "" {
		return "", fmt.Errorf("userConnected payload without userId")
	}
	return obj.UserID, nil
}
