package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestCreateProjectRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := func() CreateProjectRequest {
		return CreateProjectRequest{Title: "Demo", Summary: "A demo project"}
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("blank title", func(t *testing.T) {
		t.Parallel()
		req := valid()
		req.Title = "   "
		assert.Error(t, req.Validate())
	})

	t.Run("title too long", func(t *testing.T) {
		t.Parallel()
		req := valid()
		req.Title = strings.Repeat("x", 201)
		assert.Error(t, req.Validate())
	})

	t.Run("missing summary", func(t *testing.T) {
		t.Parallel()
		req := valid()
		req.Summary = ""
		assert.Error(t, req.Validate())
	})

	t.Run("empty tech stack entry", func(t *testing.T) {
		t.Parallel()
		req := valid()
		req.TechStack = []string{"Go", " "}
		assert.Error(t, req.Validate())
	})
}

func TestUpdateProjectRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()
		req := UpdateProjectRequest{}
		require.Error(t, req.Validate())
	})

	t.Run("single field ok", func(t *testing.T) {
		t.Parallel()
		req := UpdateProjectRequest{Summary: strptr("Updated")}
		assert.NoError(t, req.Validate())
	})

	t.Run("blank title rejected", func(t *testing.T) {
		t.Parallel()
		req := UpdateProjectRequest{Title: strptr("  ")}
		assert.Error(t, req.Validate())
	})
}

func TestCreateCertificateRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&CreateCertificateRequest{Title: "Cert", Issuer: "School"}).Validate())
	assert.Error(t, (&CreateCertificateRequest{Title: "", Issuer: "School"}).Validate())
	assert.Error(t, (&CreateCertificateRequest{Title: "Cert", Issuer: " "}).Validate())
}

func TestUpdateCertificateRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&UpdateCertificateRequest{}).Validate())
	assert.NoError(t, (&UpdateCertificateRequest{Issuer: strptr("New School")}).Validate())
	assert.Error(t, (&UpdateCertificateRequest{Issuer: strptr("")}).Validate())
}

func TestCreateMediaRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateMediaRequest{Title: "Photo", ImageURL: "https://x/y.png", Category: MediaCategoryProfile}
	assert.NoError(t, valid.Validate())

	for _, category := range []string{MediaCategoryProfile, MediaCategoryGraduation, MediaCategoryPersonal} {
		req := valid
		req.Category = category
		assert.NoError(t, req.Validate(), "category %s", category)
	}

	bad := valid
	bad.Category = "vacation"
	assert.Error(t, bad.Validate())

	noURL := valid
	noURL.ImageURL = ""
	assert.Error(t, noURL.Validate())
}

func TestUpdateMediaRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&UpdateMediaRequest{}).Validate())
	assert.NoError(t, (&UpdateMediaRequest{Category: strptr(MediaCategoryPersonal)}).Validate())
	assert.Error(t, (&UpdateMediaRequest{Category: strptr("other")}).Validate())
	assert.Error(t, (&UpdateMediaRequest{ImageURL: strptr(" ")}).Validate())
}

func TestCreateResumeRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&CreateResumeRequest{Title: "Resume", Type: ResumeTypeResume}).Validate())
	assert.NoError(t, (&CreateResumeRequest{Title: "CV", Type: ResumeTypeCV}).Validate())
	assert.Error(t, (&CreateResumeRequest{Title: "", Type: ResumeTypeResume}).Validate())
	assert.Error(t, (&CreateResumeRequest{Title: "Resume", Type: "portfolio"}).Validate())
}

func TestUpdateResumeRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&UpdateResumeRequest{}).Validate())
	assert.NoError(t, (&UpdateResumeRequest{Type: strptr(ResumeTypeCV)}).Validate())
	assert.Error(t, (&UpdateResumeRequest{Type: strptr("doc")}).Validate())
	assert.Error(t, (&UpdateResumeRequest{Title: strptr("  ")}).Validate())
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&UpdateProfileRequest{}).Validate())
	assert.NoError(t, (&UpdateProfileRequest{Bio: strptr("Hello")}).Validate())
	assert.Error(t, (&UpdateProfileRequest{FullName: strptr("")}).Validate())
	assert.Error(t, (&UpdateProfileRequest{Email: strptr("")}).Validate())
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&LoginRequest{Email: "a@b.c", Password: "pw"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "", Password: "pw"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "a@b.c", Password: ""}).Validate())
}
