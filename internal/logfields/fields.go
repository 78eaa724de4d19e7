/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAdditionalMessage = "additionalMessage"
	FieldCanisterID        = "canisterID"
	FieldCommand           = "command"
	FieldCredentialID      = "credentialID"
	FieldDuration          = "duration"
	FieldHostURL           = "hostURL"
	FieldMethod            = "method"
	FieldPrincipal         = "principal"
	FieldService           = "service"
	FieldSessionState      = "sessionState"
	FieldSleep             = "sleep"
	FieldTokenID           = "tokenID"
	FieldTotal             = "total"
	FieldUserLogLevel      = "userLogLevel"
	FieldEvent             = "event"
)

// WithAdditionalMessage sets the AdditionalMessage field.
func WithAdditionalMessage(value string) zap.Field {
	return zap.Any(FieldAdditionalMessage, value)
}

// WithCanisterID sets the CanisterID field.
func WithCanisterID(canisterID string) zap.Field {
	return zap.String(FieldCanisterID, canisterID)
}

// WithCommand sets the Command field.
func WithCommand(command string) zap.Field {
	return zap.String(FieldCommand, command)
}

// WithCredentialID sets the CredentialID field.
func WithCredentialID(credentialID string) zap.Field {
	return zap.String(FieldCredentialID, credentialID)
}

// WithDuration sets the Duration field.
func WithDuration(value time.Duration) zap.Field {
	return zap.Duration(FieldDuration, value)
}

// WithHostURL sets the HostURL field.
func WithHostURL(hostURL string) zap.Field {
	return zap.String(FieldHostURL, hostURL)
}

// WithMethod sets the Method field.
func WithMethod(method string) zap.Field {
	return zap.String(FieldMethod, method)
}

// WithPrincipal sets the Principal field.
func WithPrincipal(principal string) zap.Field {
	return zap.String(FieldPrincipal, principal)
}

// WithService sets the Service field.
func WithService(service string) zap.Field {
	return zap.String(FieldService, service)
}

// WithSessionState sets the SessionState field.
func WithSessionState(state string) zap.Field {
	return zap.String(FieldSessionState, state)
}

// WithSleep sets the sleep field.
func WithSleep(sleep time.Duration) zap.Field {
	return zap.Duration(FieldSleep, sleep)
}

// WithTokenID sets the TokenID field.
func WithTokenID(tokenID string) zap.Field {
	return zap.String(FieldTokenID, tokenID)
}

// WithTotal sets the Total field.
func WithTotal(total int) zap.Field {
	return zap.Int(FieldTotal, total)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// WithEvent sets the Event field.
func WithEvent(event interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldEvent, event))
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
