/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package canister

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIErrorKind enumerates the error variants returned by the remote services.
type APIErrorKind int

const (
	InvalidInput APIErrorKind = iota + 1
	NotFound
	Unauthorized
	AlreadyExists
	InternalError
)

var apiErrorKindNames = map[APIErrorKind]string{
	InvalidInput:  "InvalidInput",
	NotFound:      "NotFound",
	Unauthorized:  "Unauthorized",
	AlreadyExists: "AlreadyExists",
	InternalError: "InternalError",
}

func (k APIErrorKind) String() string {
	if name, ok := apiErrorKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("APIErrorKind(%d)", int(k))
}

// hasDetail reports whether the variant carries a string payload.
func (k APIErrorKind) hasDetail() bool {
	return k == InvalidInput || k == InternalError
}

// APIError is the error half of a remote Result.
type APIError struct {
	Kind   APIErrorKind
	Detail string
}

// NewAPIError creates an APIError. Detail is kept only for kinds that carry one.
func NewAPIError(kind APIErrorKind, detail string) *APIError {
	if !kind.hasDetail() {
		detail = ""
	}

	return &APIError{Kind: kind, Detail: detail}
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Is matches another *APIError of the same kind, so errors.Is(err, &APIError{Kind: NotFound}) works.
func (e *APIError) Is(target error) bool {
	var other *APIError

	if !errors.As(target, &other) {
		return false
	}

	return other.Kind == e.Kind
}

// IsNotFound reports whether err carries a NotFound remote result.
func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Kind == NotFound
}

// MarshalJSON encodes the error as a single-key variant object.
func (e APIError) MarshalJSON() ([]byte, error) {
	name, ok := apiErrorKindNames[e.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, e.Kind)
	}

	if e.Kind.hasDetail() {
		return json.Marshal(map[string]string{name: e.Detail})
	}

	return json.Marshal(map[string]interface{}{name: nil})
}

// UnmarshalJSON decodes a single-key variant object.
func (e *APIError) UnmarshalJSON(data []byte) error {
	tag, payload, err := decodeVariant(data)
	if err != nil {
		return err
	}

	for kind, name := range apiErrorKindNames {
		if name != tag {
			continue
		}

		var detail string

		if kind.hasDetail() {
			if err = json.Unmarshal(payload, &detail); err != nil {
				return fmt.Errorf("decode %s detail: %w", name, err)
			}
		}

		*e = APIError{Kind: kind, Detail: detail}

		return nil
	}

	return fmt.Errorf("%w: api error %q", ErrUnknownVariant, tag)
}
