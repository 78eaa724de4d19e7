/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package agent

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dresume/credit/pkg/canister"
)

// ErrMalformedResult is returned for a reply that is neither {"ok":…} nor {"err":…}.
var ErrMalformedResult = errors.New("malformed result")

// Result holds a raw Result reply.
type Result json.RawMessage

func (r *Result) UnmarshalJSON(data []byte) error {
	*r = append((*r)[:0], data...)

	return nil
}

// Decode stores the ok payload into out or returns the remote *canister.APIError.
func (r Result) Decode(out interface{}) error {
	if !gjson.ValidBytes(r) {
		return ErrMalformedResult
	}

	if ok := gjson.GetBytes(r, "ok"); ok.Exists() {
		if out == nil {
			return nil
		}

		if err := json.Unmarshal([]byte(ok.Raw), out); err != nil {
			return fmt.Errorf("decode ok value: %w", err)
		}

		return nil
	}

	if e := gjson.GetBytes(r, "err"); e.Exists() {
		apiErr := &canister.APIError{}

		if err := json.Unmarshal([]byte(e.Raw), apiErr); err != nil {
			return fmt.Errorf("decode err value: %w", err)
		}

		return apiErr
	}

	return ErrMalformedResult
}
