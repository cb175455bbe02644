package models

import (
	"errors"
	"time"
)

// Known status values with dedicated presentation in the UI.
// Status is an open set: anything else is rendered with the default style.
const (
	StatusOnline  = "En ligne"
	StatusLocal   = "Local"
	StatusOffline = "Hors ligne"
)

var (
	ErrMachineRequired = errors.New("machine is required")
	ErrServiceRequired = errors.New("service is required")
)

// Credential is a single stored access record: which machine/service it
// grants access to and how to reach it. Only machine and service are
// mandatory; every other descriptive field may be empty.
//
// ID, UserID, CreatedAt and UpdatedAt are assigned by the store and never
// set by a client. The password is stored as the user typed it: the card
// view reveals and copies it verbatim, so no hashing is applied here.
type Credential struct {
	// ID is the store-assigned UUID of the record. Immutable.
	ID string `json:"id"`

	// UserID is the owning account. Records are always scoped per owner
	// and the owner never changes.
	UserID int64 `json:"user_id"`

	// Machine is the host or machine name. Required.
	Machine string `json:"machine"`

	// Service is the service running on the machine. Required.
	Service string `json:"service"`

	// Person is the contact or owner of the access. Optional.
	Person string `json:"person,omitempty"`

	// Username used to log into the service. Optional.
	Username string `json:"username,omitempty"`

	// Password in plain text. Optional.
	Password string `json:"password,omitempty"`

	// IPAddress of the machine. Optional, free-form.
	IPAddress string `json:"ip_address,omitempty"`

	// Port as text. Optional and deliberately not validated as numeric:
	// users store values like "8080-8090" or "dynamic".
	Port string `json:"port,omitempty"`

	// URL of the service. Optional.
	URL string `json:"url,omitempty"`

	// Status is one of the Status* constants or any free-form string.
	Status string `json:"status,omitempty"`

	// CreatedAt and UpdatedAt are owned by the store.
	// UpdatedAt >= CreatedAt always holds.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "credentials"
}

// CredentialDraft is an in-progress, possibly invalid copy of a record's
// editable fields. It excludes the store-owned fields (id, owner,
// timestamps) and lives only inside the editing form; it is discarded on
// cancel or after a successful submit.
type CredentialDraft struct {
	Machine   string `json:"machine"`
	Service   string `json:"service"`
	Person    string `json:"person,omitempty"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	IPAddress string `json:"ip_address,omitempty"`
	Port      string `json:"port,omitempty"`
	URL       string `json:"url,omitempty"`
	Status    string `json:"status,omitempty"`
}

// NewCredentialDraft returns an empty draft for the creation form.
// Status defaults to "Local", matching the most common record kind.
func NewCredentialDraft() CredentialDraft {
	return CredentialDraft{Status: StatusLocal}
}

// DraftFrom copies the editable fields of an existing record into a draft
// for the editing form. Store-owned fields are intentionally left behind.
func DraftFrom(c Credential) CredentialDraft {
	return CredentialDraft{
		Machine:   c.Machine,
		Service:   c.Service,
		Person:    c.Person,
		Username:  c.Username,
		Password:  c.Password,
		IPAddress: c.IPAddress,
		Port:      c.Port,
		URL:       c.URL,
		Status:    c.Status,
	}
}

// Validate enforces the required-field invariant: machine and service must
// be non-empty. All other fields are free-form and always valid.
func (d CredentialDraft) Validate() error {
	if d.Machine == "" {
		return ErrMachineRequired
	}
	if d.Service == "" {
		return ErrServiceRequired
	}
	return nil
}

// CredentialPatch is a partial update: only non-nil fields are sent to the
// store and applied to the record. The id, owner and timestamps cannot be
// patched.
type CredentialPatch struct {
	Machine   *string `json:"machine,omitempty"`
	Service   *string `json:"service,omitempty"`
	Person    *string `json:"person,omitempty"`
	Username  *string `json:"username,omitempty"`
	Password  *string `json:"password,omitempty"`
	IPAddress *string `json:"ip_address,omitempty"`
	Port      *string `json:"port,omitempty"`
	URL       *string `json:"url,omitempty"`
	Status    *string `json:"status,omitempty"`
}

// Patch converts the draft into a full patch touching every editable field.
// The form always submits the whole field set, so each field is present.
func (d CredentialDraft) Patch() CredentialPatch {
	return CredentialPatch{
		Machine:   &d.Machine,
		Service:   &d.Service,
		Person:    &d.Person,
		Username:  &d.Username,
		Password:  &d.Password,
		IPAddress: &d.IPAddress,
		Port:      &d.Port,
		URL:       &d.URL,
		Status:    &d.Status,
	}
}

// IsEmpty reports whether the patch carries no fields at all.
func (p CredentialPatch) IsEmpty() bool {
	return p.Machine == nil && p.Service == nil && p.Person == nil &&
		p.Username == nil && p.Password == nil && p.IPAddress == nil &&
		p.Port == nil && p.URL == nil && p.Status == nil
}
