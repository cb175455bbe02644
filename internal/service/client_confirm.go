package service

// DeleteConfirmation implements the two-step delete: the delete action only
// stages a record id, and the repository is called only after an explicit
// confirmation. Declining clears the staged id with no side effect.
//
// Like FormSession it lives on the UI event loop and is not safe for
// concurrent use. Confirm only hands the staged id back; the repository
// call itself runs wherever the caller wants.
type DeleteConfirmation struct {
	stagedID string
}

func NewDeleteConfirmation() *DeleteConfirmation {
	return &DeleteConfirmation{}
}

// Stage records the id awaiting confirmation.
func (d *DeleteConfirmation) Stage(id string) {
	d.stagedID = id
}

// Pending reports whether a delete is awaiting confirmation.
func (d *DeleteConfirmation) Pending() bool {
	return d.stagedID != ""
}

// StagedID returns the id awaiting confirmation, or an empty string.
func (d *DeleteConfirmation) StagedID() string {
	return d.stagedID
}

// Confirm clears the stage and returns the id for the repository delete.
// ok is false when nothing is staged.
func (d *DeleteConfirmation) Confirm() (id string, ok bool) {
	if d.stagedID == "" {
		return "", false
	}

	id = d.stagedID
	d.stagedID = ""
	return id, true
}

// Decline clears the staged id without calling the repository.
func (d *DeleteConfirmation) Decline() {
	d.stagedID = ""
}
