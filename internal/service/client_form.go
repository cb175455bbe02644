package service

import (
	"context"

	"github.com/azgeda96/secure-pass-vault/models"
)

// FormSession is the draft-editing state machine: either closed with no
// draft, or open with a draft that is created fresh or copied from an
// existing record. Field edits touch only the draft; the underlying record
// is never mutated in place.
//
// FormSession lives on the UI event loop and is not safe for concurrent
// use. BeginSubmit hands the remote call a detached value copy of the draft
// state, so the call itself may run on another goroutine while the session
// stays on the loop.
type FormSession struct {
	draft     models.CredentialDraft
	editingID string
	open      bool
	busy      bool
}

func NewFormSession() *FormSession {
	return &FormSession{}
}

// OpenForCreate opens the form with an empty draft. Status defaults to
// "Local".
func (s *FormSession) OpenForCreate() {
	s.draft = models.NewCredentialDraft()
	s.editingID = ""
	s.open = true
	s.busy = false
}

// OpenForEdit opens the form with a draft copied field by field from the
// record.
func (s *FormSession) OpenForEdit(record models.Credential) {
	s.draft = models.DraftFrom(record)
	s.editingID = record.ID
	s.open = true
	s.busy = false
}

// Open reports whether a draft is present.
func (s *FormSession) Open() bool {
	return s.open
}

// IsEdit reports whether the draft originated from an existing record.
func (s *FormSession) IsEdit() bool {
	return s.editingID != ""
}

// EditingID returns the id of the record being edited, or an empty string
// for a create draft.
func (s *FormSession) EditingID() string {
	return s.editingID
}

// Draft exposes the in-session draft for field edits.
func (s *FormSession) Draft() *models.CredentialDraft {
	return &s.draft
}

// Busy reports whether a submit is in flight.
func (s *FormSession) Busy() bool {
	return s.busy
}

// BeginSubmit marks the session busy and returns a detached copy of the
// draft state for the remote call. ok is false when no draft is open or a
// submit is already in flight. The caller closes the session with Cancel
// once the call has finished, back on the event loop.
func (s *FormSession) BeginSubmit() (Submission, bool) {
	if !s.open || s.busy {
		return Submission{}, false
	}
	s.busy = true
	return Submission{draft: s.draft, editingID: s.editingID}, true
}

// Cancel discards the draft unconditionally and closes the form.
func (s *FormSession) Cancel() {
	s.draft = models.CredentialDraft{}
	s.editingID = ""
	s.open = false
	s.busy = false
}

// Submission is the value copy of the draft state taken by BeginSubmit. It
// shares nothing with the session it came from.
type Submission struct {
	draft     models.CredentialDraft
	editingID string
}

// Run performs the remote call: create when the draft was fresh, a
// full-field patch update when it was opened from an existing record.
// Error reporting is the repository's job.
func (sub Submission) Run(ctx context.Context, repo ClientCredentialService) error {
	if sub.editingID == "" {
		return repo.Create(ctx, sub.draft)
	}
	return repo.Update(ctx, sub.editingID, sub.draft.Patch())
}
