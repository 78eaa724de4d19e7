/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package canister

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownVariant is returned when a tagged variant carries an unknown or ambiguous tag.
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrMissingLabel is returned for an Other credential type without a label.
	ErrMissingLabel = errors.New("credential type Other requires a label, as Other:<label>")
)

// CredentialKind enumerates the credential type tags.
type CredentialKind int

const (
	CredentialSkill CredentialKind = iota + 1
	CredentialAcademic
	CredentialAchievement
	CredentialProfessional
	CredentialCertification
	CredentialWorkExperience
	CredentialOther
)

var credentialKindNames = map[CredentialKind]string{
	CredentialSkill:          "Skill",
	CredentialAcademic:       "Academic",
	CredentialAchievement:    "Achievement",
	CredentialProfessional:   "Professional",
	CredentialCertification:  "Certification",
	CredentialWorkExperience: "WorkExperience",
	CredentialOther:          "Other",
}

// String returns the wire tag of the kind.
func (k CredentialKind) String() string {
	if name, ok := credentialKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("CredentialKind(%d)", int(k))
}

// CredentialType is the credential type variant. Other carries a free-form label.
type CredentialType struct {
	Kind  CredentialKind
	Other string
}

// NewCredentialType returns the type for kind. Use OtherCredentialType for free-form labels.
func NewCredentialType(kind CredentialKind) CredentialType {
	return CredentialType{Kind: kind}
}

// OtherCredentialType returns the Other(label) variant.
func OtherCredentialType(label string) CredentialType {
	return CredentialType{Kind: CredentialOther, Other: label}
}

// ParseCredentialType parses a tag such as "Certification" or "Other:Volunteering".
func ParseCredentialType(s string) (CredentialType, error) {
	if label, ok := strings.CutPrefix(s, "Other:"); ok || s == "Other" {
		if strings.TrimSpace(label) == "" {
			return CredentialType{}, ErrMissingLabel
		}

		return OtherCredentialType(label), nil
	}

	for kind, name := range credentialKindNames {
		if name == s && kind != CredentialOther {
			return NewCredentialType(kind), nil
		}
	}

	return CredentialType{}, fmt.Errorf("%w: credential type %q", ErrUnknownVariant, s)
}

// Valid reports whether t is a known variant. Other needs a non-blank label.
func (t CredentialType) Valid() bool {
	if _, ok := credentialKindNames[t.Kind]; !ok {
		return false
	}

	return t.Kind != CredentialOther || strings.TrimSpace(t.Other) != ""
}

// String returns a readable form of the type.
func (t CredentialType) String() string {
	if t.Kind == CredentialOther {
		return "Other:" + t.Other
	}

	return t.Kind.String()
}

// TokenPrefix returns the two-letter token id prefix of the type.
func (t CredentialType) TokenPrefix() string {
	switch t.Kind {
	case CredentialSkill:
		return "SK"
	case CredentialAcademic:
		return "ED"
	case CredentialAchievement:
		return "AC"
	case CredentialProfessional:
		return "PR"
	case CredentialCertification:
		return "CE"
	case CredentialWorkExperience:
		return "WE"
	case CredentialOther:
		return "OT"
	default:
		return "XX"
	}
}

// Equal reports whether both types are the same variant with the same payload.
func (t CredentialType) Equal(other CredentialType) bool {
	if t.Kind != other.Kind {
		return false
	}

	return t.Kind != CredentialOther || t.Other == other.Other
}

// MarshalJSON encodes the variant as a single-key object.
func (t CredentialType) MarshalJSON() ([]byte, error) {
	if _, ok := credentialKindNames[t.Kind]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, t.Kind)
	}

	if t.Kind == CredentialOther {
		return json.Marshal(map[string]string{"Other": t.Other})
	}

	return json.Marshal(map[string]interface{}{t.Kind.String(): nil})
}

// UnmarshalJSON decodes a single-key variant object.
func (t *CredentialType) UnmarshalJSON(data []byte) error {
	tag, payload, err := decodeVariant(data)
	if err != nil {
		return err
	}

	for kind, name := range credentialKindNames {
		if name != tag {
			continue
		}

		if kind == CredentialOther {
			var label string

			if err = json.Unmarshal(payload, &label); err != nil {
				return fmt.Errorf("decode Other label: %w", err)
			}

			*t = OtherCredentialType(label)

			return nil
		}

		*t = NewCredentialType(kind)

		return nil
	}

	return fmt.Errorf("%w: credential type %q", ErrUnknownVariant, tag)
}

// UserRole is the role a user registers with.
type UserRole int

const (
	RoleIndividual UserRole = iota + 1
	RoleEducational
	RoleCompany
	RoleCertificationBody
	RoleNGO
	RolePlatform
)

var userRoleNames = map[UserRole]string{
	RoleIndividual:        "Individual",
	RoleEducational:       "Educational",
	RoleCompany:           "Company",
	RoleCertificationBody: "CertificationBody",
	RoleNGO:               "NGO",
	RolePlatform:          "Platform",
}

// String returns the wire tag of the role.
func (r UserRole) String() string {
	if name, ok := userRoleNames[r]; ok {
		return name
	}

	return fmt.Sprintf("UserRole(%d)", int(r))
}

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	_, ok := userRoleNames[r]

	return ok
}

// IsIssuer reports whether the role issues credentials to others.
func (r UserRole) IsIssuer() bool {
	switch r {
	case RoleEducational, RoleCompany, RoleCertificationBody, RoleNGO, RolePlatform:
		return true
	case RoleIndividual:
		return false
	default:
		return false
	}
}

// ParseUserRole parses a role tag.
func ParseUserRole(s string) (UserRole, error) {
	for role, name := range userRoleNames {
		if name == s {
			return role, nil
		}
	}

	return 0, fmt.Errorf("%w: user role %q", ErrUnknownVariant, s)
}

// MarshalJSON encodes the role as a single-key object.
func (r UserRole) MarshalJSON() ([]byte, error) {
	name, ok := userRoleNames[r]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, r)
	}

	return json.Marshal(map[string]interface{}{name: nil})
}

// UnmarshalJSON decodes a single-key role object.
func (r *UserRole) UnmarshalJSON(data []byte) error {
	tag, _, err := decodeVariant(data)
	if err != nil {
		return err
	}

	role, err := ParseUserRole(tag)
	if err != nil {
		return err
	}

	*r = role

	return nil
}

// VerificationStatus is the admin-driven verification state of a user.
type VerificationStatus int

const (
	StatusPending VerificationStatus = iota + 1
	StatusUnderReview
	StatusApproved
	StatusRejected
)

var verificationStatusNames = map[VerificationStatus]string{
	StatusPending:     "Pending",
	StatusUnderReview: "UnderReview",
	StatusApproved:    "Approved",
	StatusRejected:    "Rejected",
}

// String returns the wire tag of the status.
func (s VerificationStatus) String() string {
	if name, ok := verificationStatusNames[s]; ok {
		return name
	}

	return fmt.Sprintf("VerificationStatus(%d)", int(s))
}

// Valid reports whether s is a known status.
func (s VerificationStatus) Valid() bool {
	_, ok := verificationStatusNames[s]

	return ok
}

// IsFinal reports whether the status is a review outcome.
func (s VerificationStatus) IsFinal() bool {
	switch s {
	case StatusApproved, StatusRejected:
		return true
	case StatusPending, StatusUnderReview:
		return false
	default:
		return false
	}
}

// ParseVerificationStatus parses a status tag.
func ParseVerificationStatus(s string) (VerificationStatus, error) {
	for status, name := range verificationStatusNames {
		if name == s {
			return status, nil
		}
	}

	return 0, fmt.Errorf("%w: verification status %q", ErrUnknownVariant, s)
}

// MarshalJSON encodes the status as a single-key object.
func (s VerificationStatus) MarshalJSON() ([]byte, error) {
	name, ok := verificationStatusNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, s)
	}

	return json.Marshal(map[string]interface{}{name: nil})
}

// UnmarshalJSON decodes a single-key status object.
func (s *VerificationStatus) UnmarshalJSON(data []byte) error {
	tag, _, err := decodeVariant(data)
	if err != nil {
		return err
	}

	status, err := ParseVerificationStatus(tag)
	if err != nil {
		return err
	}

	*s = status

	return nil
}

func decodeVariant(data []byte) (string, json.RawMessage, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return "", nil, fmt.Errorf("%w: null variant", ErrUnknownVariant)
	}

	var obj map[string]json.RawMessage

	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, fmt.Errorf("decode variant: %w", err)
	}

	if len(obj) != 1 {
		return "", nil, fmt.Errorf("%w: expected exactly one tag, got %d", ErrUnknownVariant, len(obj))
	}

	for tag, payload := range obj {
		return tag, payload, nil
	}

	return "", nil, ErrUnknownVariant
}
