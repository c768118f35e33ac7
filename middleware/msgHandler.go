package middleware

import (
	"encoding/json"

	"github.com/Gauravvedi19/LUCID--Collaborative-Canvas/config"
)

func DecodeEnvelope(msg []byte) (config.Envelope, error) {
	var env config.Envelope

	if err := json.Unmarshal(msg, &env); err != nil {
		return config.Envelope{}, err
	}

	return env, nil
}

// EncodeEvent frames an outbound event. Returns nil when the payload
// cannot be marshaled; callers treat nil as "nothing to send".
func EncodeEvent(event string, payload any) []byte {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}

	b, err := json.Marshal(config.Envelope{Event: event, Payload: raw})
	if err != nil {
		return nil
	}
	return b
}
