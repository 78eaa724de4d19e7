/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dresume/credit/pkg/session"
)

type sessionView struct {
	State     string  `json:"state"`
	Principal *string `json:"principal"`
	DemoMode  bool    `json:"demoMode"`
}

func newSessionView(s session.Session) *sessionView {
	v := &sessionView{
		State:    s.State.String(),
		DemoMode: s.IsDemoMode,
	}

	if s.IsAuthenticated() {
		p := s.Principal.String()
		v.Principal = &p
	}

	return v
}

func NewLoginCommand() *cobra.Command {
	return newServiceCommand("login", "Log in through the identity provider in a browser", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			if err := svc.sessions.Login(ctx); err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), newSessionView(svc.sessions.Session()))
		})
}

func NewLoginDemoCommand() *cobra.Command {
	return newServiceCommand("login-demo <principal>", "Log in as a principal against simulated services",
		cobra.ExactArgs(1),
		func(ctx context.Context, cmd *cobra.Command, svc *services, args []string) error {
			if err := svc.sessions.LoginDemo(ctx, args[0]); err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), newSessionView(svc.sessions.Session()))
		})
}

func NewLogoutCommand() *cobra.Command {
	return newServiceCommand("logout", "End the current session", cobra.NoArgs,
		func(ctx context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			if err := svc.sessions.Logout(ctx); err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), newSessionView(svc.sessions.Session()))
		})
}

func NewWhoAmICommand() *cobra.Command {
	return newServiceCommand("whoami", "Show the current session", cobra.NoArgs,
		func(_ context.Context, cmd *cobra.Command, svc *services, _ []string) error {
			return printJSON(cmd.OutOrStdout(), newSessionView(svc.sessions.Session()))
		})
}
