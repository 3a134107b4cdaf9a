package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/admin"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// findByID scans a collection page by page for the record with the given ID.
// The entity list endpoints have no detail route; this mirrors how the
// dashboard picks a row out of the table it already fetched.
func findByID[T any](ctx context.Context, list *admin.ListController[T], idOf func(T) string, id string) (T, error) {
	list.SetPageSize(ctx, 50)
	for {
		for _, item := range list.Items() {
			if idOf(item) == id {
				return item, nil
			}
		}
		if !list.HasNext() {
			break
		}
		list.SetPage(ctx, list.Page()+1)
	}
	var zero T
	return zero, fmt.Errorf("no record with id %s", id)
}

// Flag binding uses the draft's current values as defaults, so parsing the
// same arguments over a loaded draft overwrites exactly the fields the user
// provided.

func bindProjectFlags(fs *flag.FlagSet, d *admin.ProjectDraft) {
	fs.StringVar(&d.Title, "title", d.Title, "Project title")
	fs.StringVar(&d.Slug, "slug", d.Slug, "URL slug (derived from the title when empty)")
	fs.StringVar(&d.Summary, "summary", d.Summary, "Short summary")
	fs.StringVar(&d.Problem, "problem", d.Problem, "Problem the project solved")
	fs.StringVar(&d.ActionTaken, "action", d.ActionTaken, "Action taken")
	fs.StringVar(&d.Result, "result", d.Result, "Result achieved")
	fs.StringVar(&d.TechStack, "tech", d.TechStack, "Comma-separated tech stack")
	fs.StringVar(&d.ImageURL, "image-url", d.ImageURL, "Cover image URL")
	fs.StringVar(&d.LiveURL, "live-url", d.LiveURL, "Live site URL")
	fs.StringVar(&d.RepoURL, "repo-url", d.RepoURL, "Repository URL")
	fs.StringVar(&d.HostingFrontend, "hosting-frontend", d.HostingFrontend, "Frontend hosting provider")
	fs.StringVar(&d.HostingBackend, "hosting-backend", d.HostingBackend, "Backend hosting provider")
	fs.StringVar(&d.DatabaseStorage, "database-storage", d.DatabaseStorage, "Database/storage provider")
	fs.BoolVar(&d.Featured, "featured", d.Featured, "Feature the project on the landing page")
	fs.IntVar(&d.DisplayOrder, "order", d.DisplayOrder, "Display order among featured projects")
}

func bindCertificateFlags(fs *flag.FlagSet, d *admin.CertificateDraft) {
	fs.StringVar(&d.Title, "title", d.Title, "Certificate title")
	fs.StringVar(&d.Issuer, "issuer", d.Issuer, "Issuing organization")
	fs.StringVar(&d.IssuedDate, "issued", d.IssuedDate, "Issue date")
	fs.StringVar(&d.CredentialURL, "credential-url", d.CredentialURL, "Credential verification URL")
	fs.StringVar(&d.ImageURL, "image-url", d.ImageURL, "Certificate image URL")
}

func bindMediaFlags(fs *flag.FlagSet, d *admin.MediaDraft) {
	fs.StringVar(&d.Title, "title", d.Title, "Photo title")
	fs.StringVar(&d.ImageURL, "image-url", d.ImageURL, "Image URL")
	fs.StringVar(&d.Category, "category", d.Category, "Category (profile, graduation, or personal)")
	fs.StringVar(&d.Description, "description", d.Description, "Photo description")
}

func bindResumeFlags(fs *flag.FlagSet, d *admin.ResumeDraft) {
	fs.StringVar(&d.Title, "title", d.Title, "Document title")
	fs.StringVar(&d.Type, "type", d.Type, "Document type (resume or cv)")
	fs.StringVar(&d.FileURL, "file-url", d.FileURL, "Uploaded file URL")
	fs.StringVar(&d.LinkURL, "link-url", d.LinkURL, "External document URL")
	fs.BoolVar(&d.IsPrimary, "primary", d.IsPrimary, "Mark as the primary document")
}

func bindProfileFlags(fs *flag.FlagSet, d *admin.ProfileDraft) {
	fs.StringVar(&d.FullName, "full-name", d.FullName, "Full name")
	fs.StringVar(&d.Title, "title", d.Title, "Professional title")
	fs.StringVar(&d.Headline, "headline", d.Headline, "Landing page headline")
	fs.StringVar(&d.Bio, "bio", d.Bio, "Biography")
	fs.StringVar(&d.Email, "email", d.Email, "Contact email")
	fs.StringVar(&d.LinkedInURL, "linkedin", d.LinkedInURL, "LinkedIn profile URL")
	fs.StringVar(&d.GithubURL, "github", d.GithubURL, "GitHub profile URL")
	fs.StringVar(&d.Location, "location", d.Location, "Location")
	fs.StringVar(&d.HeroImageURL, "hero-image", d.HeroImageURL, "Hero image URL")
	fs.StringVar(&d.CurrentRole, "current-role", d.CurrentRole, "Current role")
	fs.StringVar(&d.FirstDegree, "first-degree", d.FirstDegree, "First degree")
	fs.StringVar(&d.FirstDegreeDate, "first-degree-date", d.FirstDegreeDate, "First degree completion date")
	fs.StringVar(&d.SecondDegree, "second-degree", d.SecondDegree, "Second degree")
	fs.StringVar(&d.SecondDegreeEta, "second-degree-eta", d.SecondDegreeEta, "Second degree expected completion")
}

// parseEditID validates the shared -id flag of the edit commands. The full
// flag set is bound to a scratch draft so unknown flags fail here, before any
// network call.
func parseEditID[D any](name string, args []string, bind func(*flag.FlagSet, *D)) (string, error) {
	fs := newFlagSet(name)
	id := fs.String("id", "", "Record ID to edit (required)")
	var scratch D
	bind(fs, &scratch)
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if strings.TrimSpace(*id) == "" {
		return "", errors.New("--id is required")
	}
	return strings.TrimSpace(*id), nil
}

func runAddProject(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("add-project")
	var draft admin.ProjectDraft
	bindProjectFlags(fs, &draft)
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	d.ProjectForm.LoadForEdit(draft)
	if !d.ProjectForm.Submit(ctx) {
		return errors.New("create project failed")
	}
	return writeln(os.Stdout, "Created project")
}

func runEditProject(cmdCtx *commandContext, args []string) error {
	id, err := parseEditID("edit-project", args, bindProjectFlags)
	if err != nil {
		return err
	}

	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	project, err := findByID(ctx, d.Projects, func(p model.Project) string { return p.ID }, id)
	if err != nil {
		return err
	}

	// Re-parse over the loaded draft: provided flags overwrite, the rest
	// keep their stored values.
	draft := admin.NewProjectDraft(project)
	fs := newFlagSet("edit-project")
	fs.String("id", "", "Record ID to edit (required)")
	bindProjectFlags(fs, &draft)
	if err := fs.Parse(args); err != nil {
		return err
	}

	d.ProjectForm.LoadForEdit(draft)
	if !d.ProjectForm.Submit(ctx) {
		return errors.New("update project failed")
	}
	return writef(os.Stdout, "Updated %s\n", id)
}

func runAddCertificate(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("add-certificate")
	var draft admin.CertificateDraft
	bindCertificateFlags(fs, &draft)
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	d.CertificateForm.LoadForEdit(draft)
	if !d.CertificateForm.Submit(ctx) {
		return errors.New("create certificate failed")
	}
	return writeln(os.Stdout, "Created certificate")
}

func runEditCertificate(cmdCtx *commandContext, args []string) error {
	id, err := parseEditID("edit-certificate", args, bindCertificateFlags)
	if err != nil {
		return err
	}

	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	cert, err := findByID(ctx, d.Certificates, func(c model.Certificate) string { return c.ID }, id)
	if err != nil {
		return err
	}

	draft := admin.NewCertificateDraft(cert)
	fs := newFlagSet("edit-certificate")
	fs.String("id", "", "Record ID to edit (required)")
	bindCertificateFlags(fs, &draft)
	if err := fs.Parse(args); err != nil {
		return err
	}

	d.CertificateForm.LoadForEdit(draft)
	if !d.CertificateForm.Submit(ctx) {
		return errors.New("update certificate failed")
	}
	return writef(os.Stdout, "Updated %s\n", id)
}

func runAddMedia(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("add-media")
	var draft admin.MediaDraft
	bindMediaFlags(fs, &draft)
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	d.MediaForm.LoadForEdit(draft)
	if !d.MediaForm.Submit(ctx) {
		return errors.New("create media asset failed")
	}
	return writeln(os.Stdout, "Created media asset")
}

func runEditMedia(cmdCtx *commandContext, args []string) error {
	id, err := parseEditID("edit-media", args, bindMediaFlags)
	if err != nil {
		return err
	}

	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	asset, err := findByID(ctx, d.Media, func(m model.MediaAsset) string { return m.ID }, id)
	if err != nil {
		return err
	}

	draft := admin.NewMediaDraft(asset)
	fs := newFlagSet("edit-media")
	fs.String("id", "", "Record ID to edit (required)")
	bindMediaFlags(fs, &draft)
	if err := fs.Parse(args); err != nil {
		return err
	}

	d.MediaForm.LoadForEdit(draft)
	if !d.MediaForm.Submit(ctx) {
		return errors.New("update media asset failed")
	}
	return writef(os.Stdout, "Updated %s\n", id)
}

func runAddResume(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("add-resume")
	var draft admin.ResumeDraft
	bindResumeFlags(fs, &draft)
	if err := fs.Parse(args); err != nil {
		return err
	}

	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	d.ResumeForm.LoadForEdit(draft)
	if !d.ResumeForm.Submit(ctx) {
		return errors.New("create resume asset failed")
	}
	return writeln(os.Stdout, "Created resume asset")
}

func runEditResume(cmdCtx *commandContext, args []string) error {
	id, err := parseEditID("edit-resume", args, bindResumeFlags)
	if err != nil {
		return err
	}

	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	asset, err := findByID(ctx, d.Resumes, func(a model.ResumeAsset) string { return a.ID }, id)
	if err != nil {
		return err
	}

	draft := admin.NewResumeDraft(asset)
	fs := newFlagSet("edit-resume")
	fs.String("id", "", "Record ID to edit (required)")
	bindResumeFlags(fs, &draft)
	if err := fs.Parse(args); err != nil {
		return err
	}

	d.ResumeForm.LoadForEdit(draft)
	if !d.ResumeForm.Submit(ctx) {
		return errors.New("update resume asset failed")
	}
	return writef(os.Stdout, "Updated %s\n", id)
}

func runEditProfile(cmdCtx *commandContext, args []string) error {
	// Validate flags before any network call.
	check := newFlagSet("edit-profile")
	var scratch admin.ProfileDraft
	bindProfileFlags(check, &scratch)
	if err := check.Parse(args); err != nil {
		return err
	}

	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	d.Profile.Load(ctx)

	fs := newFlagSet("edit-profile")
	bindProfileFlags(fs, d.Profile.Draft())
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !d.Profile.Submit(ctx) {
		return errors.New("update profile failed")
	}
	return writeln(os.Stdout, "Profile updated")
}

func runUpload(cmdCtx *commandContext, args []string) error {
	fs := newFlagSet("upload")
	var file string
	fs.StringVar(&file, "file", "", "Path of the file to upload (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	file = strings.TrimSpace(file)
	if file == "" {
		return errors.New("--file is required")
	}

	d, err := restoredDashboard(cmdCtx)
	if err != nil {
		return err
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open upload file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			cmdCtx.Logger.Warn("close upload file failed", "error", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, time.Minute)
	defer cancel()

	result, ok := d.Upload(ctx, filepath.Base(file), f)
	if !ok {
		return errors.New("upload failed")
	}
	return writef(os.Stdout, "Uploaded %s -> %s\n", result.FileName, result.FileURL)
}
