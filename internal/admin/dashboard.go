package admin

import (
	"context"
	"io"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
)

// Dashboard wires the session, list controllers, and form controllers into
// one coordinated unit. A successful login or restore triggers a full data
// refresh across every collection.
type Dashboard struct {
	Session *SessionStore

	client   *Client
	notifier Notifier

	Projects     *ListController[model.Project]
	Certificates *ListController[model.Certificate]
	Media        *ListController[model.MediaAsset]
	Resumes      *ListController[model.ResumeAsset]

	ProjectForm     *FormController[ProjectDraft]
	CertificateForm *FormController[CertificateDraft]
	MediaForm       *FormController[MediaDraft]
	ResumeForm      *FormController[ResumeDraft]
	Profile         *ProfileForm
}

// DashboardOptions groups dependencies for NewDashboard.
type DashboardOptions struct {
	Client   *Client
	Tokens   TokenStore
	Notifier Notifier
}

// NewDashboard builds the full admin control layer. The bounded retry policy
// is applied to resume writes, where a duplicated record is easy for the
// single admin to spot and correct.
func NewDashboard(opts DashboardOptions) *Dashboard {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = discardNotifier{}
	}

	session := NewSessionStore(opts.Client, opts.Tokens, notifier)

	d := &Dashboard{Session: session, client: opts.Client, notifier: notifier}

	d.Projects = NewListController[model.Project](opts.Client, session, "/api/projects")
	d.Certificates = NewListController[model.Certificate](opts.Client, session, "/api/certificates")
	d.Media = NewListController[model.MediaAsset](opts.Client, session, "/api/media")
	d.Resumes = NewListController[model.ResumeAsset](opts.Client, session, "/api/resumes")
	for _, set := range []interface{ SetNotifier(Notifier) }{
		d.Projects, d.Certificates, d.Media, d.Resumes,
	} {
		set.SetNotifier(notifier)
	}

	d.ProjectForm = NewFormController[ProjectDraft](FormControllerOptions{
		Session:  session,
		Client:   opts.Client,
		Notifier: notifier,
		Path:     "/api/projects",
		Refresh:  d.Projects.Refresh,
	})
	d.CertificateForm = NewFormController[CertificateDraft](FormControllerOptions{
		Session:  session,
		Client:   opts.Client,
		Notifier: notifier,
		Path:     "/api/certificates",
		Refresh:  d.Certificates.Refresh,
	})
	d.MediaForm = NewFormController[MediaDraft](FormControllerOptions{
		Session:  session,
		Client:   opts.Client,
		Notifier: notifier,
		Path:     "/api/media",
		Refresh:  d.Media.Refresh,
	})
	d.ResumeForm = NewFormController[ResumeDraft](FormControllerOptions{
		Session:  session,
		Client:   opts.Client,
		Notifier: notifier,
		Path:     "/api/resumes",
		Retry:    NewRetryPolicy(notifier),
		Refresh:  d.Resumes.Refresh,
	})
	d.Profile = NewProfileForm(session, opts.Client, notifier)

	session.OnAuthenticated = d.RefreshAll
	return d
}

// Upload stores one file through the authenticated upload endpoint and
// returns its stored name and public URL. Requires an active session.
func (d *Dashboard) Upload(ctx context.Context, fileName string, r io.Reader) (*UploadResult, bool) {
	if !d.Session.RequireToken() {
		return nil, false
	}

	result, err := d.client.Upload(ctx, d.Session.Token(), fileName, r)
	if err != nil {
		if !d.Session.HandleError(err) {
			d.notifier.Notify(err.Error())
		}
		return nil, false
	}
	return result, true
}

// RefreshAll re-fetches every collection and the profile draft.
func (d *Dashboard) RefreshAll(ctx context.Context) {
	d.Projects.Refresh(ctx)
	d.Certificates.Refresh(ctx)
	d.Media.Refresh(ctx)
	d.Resumes.Refresh(ctx)
	d.Profile.Load(ctx)
}
