/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package actor

import (
	"context"
	"fmt"

	"github.com/dresume/credit/pkg/canister/agent"
	"github.com/dresume/credit/pkg/principal"
)

type invoker interface {
	Query(ctx context.Context, canisterID principal.Principal, method string, args []interface{}, result interface{}) error
	Call(ctx context.Context, canisterID principal.Principal, method string, args []interface{}, result interface{}) error
}

var _ invoker = (*agent.Agent)(nil)

type base struct {
	invoker    invoker
	canisterID principal.Principal
}

func (b *base) query(ctx context.Context, method string, out interface{}, args ...interface{}) error {
	return b.invoker.Query(ctx, b.canisterID, method, args, out)
}

func (b *base) queryResult(ctx context.Context, method string, out interface{}, args ...interface{}) error {
	var res agent.Result

	if err := b.invoker.Query(ctx, b.canisterID, method, args, &res); err != nil {
		return err
	}

	return decode(method, res, out)
}

func (b *base) callResult(ctx context.Context, method string, out interface{}, args ...interface{}) error {
	var res agent.Result

	if err := b.invoker.Call(ctx, b.canisterID, method, args, &res); err != nil {
		return err
	}

	return decode(method, res, out)
}

func decode(method string, res agent.Result, out interface{}) error {
	if err := res.Decode(out); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// opt encodes an optional argument as null when absent.
func opt[T any](v *T) interface{} {
	if v == nil {
		return nil
	}

	return *v
}
