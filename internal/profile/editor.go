package profile

// Editor edits a copy of the profile and publishes it only on Commit.
type Editor struct {
	current Profile
	draft   Profile
	editing bool
}

func NewEditor(p Profile) *Editor {
	return &Editor{current: p}
}

// Current is the committed profile.
func (e *Editor) Current() Profile { return e.current }

// Draft is the profile being edited. Outside an edit it equals Current.
func (e *Editor) Draft() Profile {
	if !e.editing {
		return e.current
	}
	return e.draft
}

func (e *Editor) Editing() bool { return e.editing }

// Begin starts an edit from the committed profile, discarding any
// uncommitted draft.
func (e *Editor) Begin() {
	e.draft = e.current
	e.editing = true
}

// Set changes a draft field. It is ignored outside an edit.
func (e *Editor) Set(f Field, v string) {
	if !e.editing {
		return
	}
	e.draft.set(f, v)
}

// Commit publishes the draft and reports whether anything changed.
func (e *Editor) Commit() bool {
	if !e.editing {
		return false
	}
	changed := e.draft != e.current
	e.current = e.draft
	e.editing = false
	return changed
}

// Cancel drops the draft.
func (e *Editor) Cancel() {
	e.draft = Profile{}
	e.editing = false
}
