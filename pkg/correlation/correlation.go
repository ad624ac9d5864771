// Package correlation threads a trace token through every asynchronous
// message exchanged with the saga/stock boundary, linking the steps of one
// business flow across process borders.
//
// The token lives in a context.Context value. Installing a token on a derived
// context shadows whatever the parent carried; dropping back to the parent
// context restores the previous token (or its absence) exactly, which gives
// the nested push/restore semantics the flow needs. Isolation between
// concurrent flows falls out of each flow owning its own context chain.
package correlation

import (
	"context"
	"reflect"
	"strings"

	"github.com/google/uuid"
)

// Header is the transport header carrying the token on Kafka messages.
const Header = "X-Correlation-Id"

// payloadField is the payload field consulted by inbound resolution when
// neither the transport header nor the envelope carries a token.
const payloadField = "CorrelationId"

type ctxKey struct{}

// With returns a child context scoped to token.
func With(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// FromContext reports the token installed on ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ctxKey{}).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// NewToken mints a fresh correlation token.
func NewToken() string {
	return uuid.NewString()
}

// Outbound resolves the token to stamp on an outgoing message: the current
// context token when present, a fresh one otherwise. The returned uuid is
// valid only when the token is identifier-shaped; callers skip the envelope's
// native correlation field when ok is false.
func Outbound(ctx context.Context) (token string, id uuid.UUID, ok bool) {
	token, found := FromContext(ctx)
	if !found {
		token = NewToken()
	}
	id, err := uuid.Parse(token)
	if err != nil {
		return token, uuid.Nil, false
	}
	return token, id, true
}

// Resolve applies the inbound precedence rules:
//  1. the transport header, when non-blank;
//  2. the envelope's native correlation field, when set;
//  3. a "CorrelationId" field on the decoded payload, string or uuid valued;
//  4. otherwise a freshly generated token.
func Resolve(header string, envelopeID uuid.UUID, payload any) string {
	if v := strings.TrimSpace(header); v != "" {
		return v
	}
	if envelopeID != uuid.Nil {
		return envelopeID.String()
	}
	if v := fromPayload(payload); v != "" {
		return v
	}
	return NewToken()
}

// fromPayload introspects payload for a CorrelationId field. Decoded JSON
// comes in either as a map or as a typed event struct, so both are handled.
// An absent, empty or nil field yields "".
func fromPayload(payload any) string {
	if payload == nil {
		return ""
	}

	if m, ok := payload.(map[string]any); ok {
		return tokenValue(m[payloadField])
	}

	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}
	f := v.FieldByName(payloadField)
	if !f.IsValid() || !f.CanInterface() {
		return ""
	}
	return tokenValue(f.Interface())
}

func tokenValue(raw any) string {
	switch t := raw.(type) {
	case string:
		return strings.TrimSpace(t)
	case uuid.UUID:
		if t == uuid.Nil {
			return ""
		}
		return t.String()
	case *uuid.UUID:
		if t == nil || *t == uuid.Nil {
			return ""
		}
		return t.String()
	default:
		return ""
	}
}
