package admin

import (
	"strings"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
)

// A draft is the client-held, not-yet-persisted shadow of an entity being
// created or edited. An empty ID marks create mode; a non-empty ID marks
// edit mode. Server-managed fields (id on the wire, timestamps) are excluded
// from payloads by construction: the payload structs simply cannot carry
// them.
type draftRecord interface {
	RecordID() string
	payload() any
}

// SplitTechStack converts the comma-authored tech stack field into the wire
// list: split on commas, trimmed, empty entries dropped.
func SplitTechStack(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinTechStack rejoins the wire list for editing.
func JoinTechStack(items []string) string {
	return strings.Join(items, ", ")
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ProjectDraft is the editable form state for a project. TechStack is
// authored as a comma-separated string and converted on submit.
type ProjectDraft struct {
	ID              string
	Title           string
	Slug            string
	Summary         string
	Problem         string
	ActionTaken     string
	Result          string
	TechStack       string
	ImageURL        string
	LiveURL         string
	RepoURL         string
	HostingFrontend string
	HostingBackend  string
	DatabaseStorage string
	Featured        bool
	DisplayOrder    int
}

// NewProjectDraft copies a project's editable fields into a draft for edit
// mode. Timestamps are never round-tripped.
func NewProjectDraft(p model.Project) ProjectDraft {
	return ProjectDraft{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Summary:         p.Summary,
		Problem:         p.Problem,
		ActionTaken:     p.ActionTaken,
		Result:          p.Result,
		TechStack:       JoinTechStack(p.TechStack),
		ImageURL:        p.ImageURL,
		LiveURL:         p.LiveURL,
		RepoURL:         strOf(p.RepoURL),
		HostingFrontend: strOf(p.HostingFrontend),
		HostingBackend:  strOf(p.HostingBackend),
		DatabaseStorage: strOf(p.DatabaseStorage),
		Featured:        p.Featured,
		DisplayOrder:    p.DisplayOrder,
	}
}

// RecordID implements draftRecord.
func (d ProjectDraft) RecordID() string { return d.ID }

func (d ProjectDraft) payload() any {
	featured := d.Featured
	displayOrder := d.DisplayOrder
	return model.CreateProjectRequest{
		Title:           d.Title,
		Slug:            d.Slug,
		Summary:         d.Summary,
		Problem:         d.Problem,
		ActionTaken:     d.ActionTaken,
		Result:          d.Result,
		TechStack:       SplitTechStack(d.TechStack),
		ImageURL:        d.ImageURL,
		LiveURL:         d.LiveURL,
		RepoURL:         optStr(d.RepoURL),
		HostingFrontend: optStr(d.HostingFrontend),
		HostingBackend:  optStr(d.HostingBackend),
		DatabaseStorage: optStr(d.DatabaseStorage),
		Featured:        &featured,
		DisplayOrder:    &displayOrder,
	}
}

// CertificateDraft is the editable form state for a certificate.
type CertificateDraft struct {
	ID            string
	Title         string
	Issuer        string
	IssuedDate    string
	CredentialURL string
	ImageURL      string
}

// NewCertificateDraft copies a certificate's editable fields into a draft.
func NewCertificateDraft(c model.Certificate) CertificateDraft {
	return CertificateDraft{
		ID:            c.ID,
		Title:         c.Title,
		Issuer:        c.Issuer,
		IssuedDate:    strOf(c.IssuedDate),
		CredentialURL: strOf(c.CredentialURL),
		ImageURL:      strOf(c.ImageURL),
	}
}

// RecordID implements draftRecord.
func (d CertificateDraft) RecordID() string { return d.ID }

func (d CertificateDraft) payload() any {
	return model.CreateCertificateRequest{
		Title:         d.Title,
		Issuer:        d.Issuer,
		IssuedDate:    optStr(d.IssuedDate),
		CredentialURL: optStr(d.CredentialURL),
		ImageURL:      optStr(d.ImageURL),
	}
}

// MediaDraft is the editable form state for a gallery photo.
type MediaDraft struct {
	ID          string
	Title       string
	ImageURL    string
	Category    string
	Description string
}

// NewMediaDraft copies a media asset's editable fields into a draft.
func NewMediaDraft(m model.MediaAsset) MediaDraft {
	return MediaDraft{
		ID:          m.ID,
		Title:       m.Title,
		ImageURL:    m.ImageURL,
		Category:    m.Category,
		Description: strOf(m.Description),
	}
}

// RecordID implements draftRecord.
func (d MediaDraft) RecordID() string { return d.ID }

func (d MediaDraft) payload() any {
	return model.CreateMediaRequest{
		Title:       d.Title,
		ImageURL:    d.ImageURL,
		Category:    d.Category,
		Description: optStr(d.Description),
	}
}

// ResumeDraft is the editable form state for a resume or CV document.
// IsPrimary is sent faithfully; demoting sibling primary flags is the
// server's responsibility.
type ResumeDraft struct {
	ID        string
	Title     string
	Type      string
	FileURL   string
	LinkURL   string
	IsPrimary bool
}

// NewResumeDraft copies a resume asset's editable fields into a draft.
func NewResumeDraft(a model.ResumeAsset) ResumeDraft {
	return ResumeDraft{
		ID:        a.ID,
		Title:     a.Title,
		Type:      a.Type,
		FileURL:   strOf(a.FileURL),
		LinkURL:   strOf(a.LinkURL),
		IsPrimary: a.IsPrimary,
	}
}

// RecordID implements draftRecord.
func (d ResumeDraft) RecordID() string { return d.ID }

func (d ResumeDraft) payload() any {
	return model.CreateResumeRequest{
		Title:     d.Title,
		Type:      d.Type,
		FileURL:   optStr(d.FileURL),
		LinkURL:   optStr(d.LinkURL),
		IsPrimary: d.IsPrimary,
	}
}

// ProfileDraft is the editable form state for the owner profile. The profile
// is a singleton upsert; it has no create/edit branch.
type ProfileDraft struct {
	FullName        string
	Title           string
	Headline        string
	Bio             string
	Email           string
	LinkedInURL     string
	GithubURL       string
	Location        string
	HeroImageURL    string
	CurrentRole     string
	FirstDegree     string
	FirstDegreeDate string
	SecondDegree    string
	SecondDegreeEta string
}

// NewProfileDraft copies the profile's editable fields into a draft.
func NewProfileDraft(p model.Profile) ProfileDraft {
	return ProfileDraft{
		FullName:        p.FullName,
		Title:           p.Title,
		Headline:        p.Headline,
		Bio:             p.Bio,
		Email:           p.Email,
		LinkedInURL:     strOf(p.LinkedInURL),
		GithubURL:       strOf(p.GithubURL),
		Location:        strOf(p.Location),
		HeroImageURL:    strOf(p.HeroImageURL),
		CurrentRole:     strOf(p.CurrentRole),
		FirstDegree:     p.FirstDegree,
		FirstDegreeDate: p.FirstDegreeDate,
		SecondDegree:    p.SecondDegree,
		SecondDegreeEta: p.SecondDegreeEta,
	}
}

func (d ProfileDraft) payload() model.UpdateProfileRequest {
	return model.UpdateProfileRequest{
		FullName:        optStr(d.FullName),
		Title:           optStr(d.Title),
		Headline:        optStr(d.Headline),
		Bio:             optStr(d.Bio),
		Email:           optStr(d.Email),
		LinkedInURL:     optStr(d.LinkedInURL),
		GithubURL:       optStr(d.GithubURL),
		Location:        optStr(d.Location),
		HeroImageURL:    optStr(d.HeroImageURL),
		CurrentRole:     optStr(d.CurrentRole),
		FirstDegree:     optStr(d.FirstDegree),
		FirstDegreeDate: optStr(d.FirstDegreeDate),
		SecondDegree:    optStr(d.SecondDegree),
		SecondDegreeEta: optStr(d.SecondDegreeEta),
	}
}
