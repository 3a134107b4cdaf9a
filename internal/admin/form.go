package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
)

// FormController holds one draft record per entity type and submits it. An
// empty draft ID submits a create; a non-empty ID submits an update. Failed
// submits leave the draft intact so the user can correct and resubmit.
type FormController[D draftRecord] struct {
	session  *SessionStore
	client   *Client
	notifier Notifier
	path     string

	// retry, when set, wraps submits in the bounded retry policy. Applied
	// where a duplicated side effect is user-correctable.
	retry *RetryPolicy

	// refresh re-fetches the owning list after a successful mutation.
	refresh func(ctx context.Context)

	// Confirm guards the delete action when set; returning false aborts.
	Confirm func() bool

	empty D
	draft D
}

// FormControllerOptions groups dependencies for NewFormController.
type FormControllerOptions struct {
	Session  *SessionStore
	Client   *Client
	Notifier Notifier
	Path     string
	Retry    *RetryPolicy
	Refresh  func(ctx context.Context)
}

// NewFormController constructs a form controller for the entity at the given
// API path.
func NewFormController[D draftRecord](opts FormControllerOptions) *FormController[D] {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &FormController[D]{
		session:  opts.Session,
		client:   opts.Client,
		notifier: notifier,
		path:     opts.Path,
		retry:    opts.Retry,
		refresh:  opts.Refresh,
	}
}

// Draft returns the mutable draft for field edits.
func (f *FormController[D]) Draft() *D {
	return &f.draft
}

// Editing reports whether the controller is in edit mode.
func (f *FormController[D]) Editing() bool {
	return f.draft.RecordID() != ""
}

// LoadForEdit replaces the draft, switching into edit mode when the record
// carries an ID.
func (f *FormController[D]) LoadForEdit(draft D) {
	f.draft = draft
}

// Clear resets the draft to the empty template without any network call.
func (f *FormController[D]) Clear() {
	f.draft = f.empty
}

// Submit sends the draft: create when the draft ID is empty, update
// otherwise. On success the draft resets and the owning list refreshes.
func (f *FormController[D]) Submit(ctx context.Context) bool {
	if !f.session.RequireToken() {
		return false
	}

	params := RequestParams{
		Method: http.MethodPost,
		Path:   f.path,
		Token:  f.session.Token(),
		Body:   f.draft.payload(),
	}
	if id := f.draft.RecordID(); id != "" {
		params.Method = http.MethodPut
		params.Path = f.path + "/" + id
	}

	action := func() error {
		_, err := f.client.Do(ctx, params)
		return err
	}

	var err error
	if f.retry != nil {
		err = f.retry.Do(ctx, action)
	} else {
		err = action()
	}
	if err != nil {
		if !f.session.HandleError(err) {
			f.notifier.Notify(err.Error())
		}
		return false
	}

	f.draft = f.empty
	if f.refresh != nil {
		f.refresh(ctx)
	}
	return true
}

// Delete removes a record after the confirmation step. List state is only
// touched on success.
func (f *FormController[D]) Delete(ctx context.Context, id string) bool {
	if !f.session.RequireToken() {
		return false
	}
	if f.Confirm != nil && !f.Confirm() {
		return false
	}

	_, err := f.client.Do(ctx, RequestParams{
		Method: http.MethodDelete,
		Path:   f.path + "/" + id,
		Token:  f.session.Token(),
	})
	if err != nil {
		if !f.session.HandleError(err) {
			f.notifier.Notify(err.Error())
		}
		return false
	}

	if f.refresh != nil {
		f.refresh(ctx)
	}
	return true
}

// ProfileForm is the upsert form for the singleton owner profile. It has no
// create/edit branch and no owning list; success reloads the draft from the
// server response.
type ProfileForm struct {
	session  *SessionStore
	client   *Client
	notifier Notifier

	draft ProfileDraft
}

// NewProfileForm constructs the profile form.
func NewProfileForm(session *SessionStore, client *Client, notifier Notifier) *ProfileForm {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &ProfileForm{session: session, client: client, notifier: notifier}
}

// Draft returns the mutable profile draft.
func (f *ProfileForm) Draft() *ProfileDraft {
	return &f.draft
}

// Load fetches the current profile into the draft. A missing profile leaves
// the draft empty; that is the first-write case.
func (f *ProfileForm) Load(ctx context.Context) {
	profile, err := DoJSON[model.Profile](ctx, f.client, RequestParams{
		Method: http.MethodGet,
		Path:   "/api/profile",
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			f.draft = ProfileDraft{}
			return
		}
		if !f.session.HandleError(err) {
			f.notifier.Notify(err.Error())
		}
		return
	}
	f.draft = NewProfileDraft(profile)
}

// Submit upserts the profile from the draft.
func (f *ProfileForm) Submit(ctx context.Context) bool {
	if !f.session.RequireToken() {
		return false
	}

	profile, err := DoJSON[model.Profile](ctx, f.client, RequestParams{
		Method: http.MethodPut,
		Path:   "/api/profile",
		Token:  f.session.Token(),
		Body:   f.draft.payload(),
	})
	if err != nil {
		if !f.session.HandleError(err) {
			f.notifier.Notify(err.Error())
		}
		return false
	}

	f.draft = NewProfileDraft(profile)
	return true
}
