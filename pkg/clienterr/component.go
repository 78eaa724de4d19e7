/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package clienterr

type Component = string

const (
	SessionManager     Component = "session-manager"
	IdentityProvider   Component = "identity-provider"
	CredentialService  Component = "credential-service"
	UserProfileService Component = "user-profile-service"
	DocumentService    Component = "document-service"
	CanisterAgent      Component = "canister-agent"
	ClientFactory      Component = "client-factory"
)
