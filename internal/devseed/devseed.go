// Package devseed loads sample portfolio content for local development.
package devseed

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data/pgxutil"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

// Run wipes all portfolio content and loads the sample data set. Development
// only; it is destructive by design.
func Run(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := truncateContent(ctx, db); err != nil {
		return err
	}

	if err := seedProfile(ctx, db); err != nil {
		return err
	}
	if err := seedProjects(ctx, db); err != nil {
		return err
	}
	if err := seedCertificates(ctx, db); err != nil {
		return err
	}
	if err := seedMedia(ctx, db); err != nil {
		return err
	}
	if err := seedResumes(ctx, db); err != nil {
		return err
	}

	if logger != nil {
		logger.InfoContext(ctx, "development seed data loaded")
	}
	return nil
}

func truncateContent(ctx context.Context, db *sql.DB) error {
	return pgxutil.WithPgxConn(ctx, db, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx,
			`TRUNCATE profiles, projects, certificates, media_assets, resume_assets`)
		return err
	})
}

func seedProfile(ctx context.Context, db *sql.DB) error {
	repo := data.NewProfileRepo(db)
	_, err := repo.Upsert(ctx, model.UpdateProfileRequest{
		FullName:        strPtr("Henry M. Ugochukwu"),
		Title:           strPtr("Full Stack Developer"),
		Headline:        strPtr("Building production-ready web products with clean UX and scalable architecture."),
		Bio:             strPtr("I am a full stack developer focused on product engineering, clean architecture, and modern user experiences. I build complete solutions from frontend interfaces to backend APIs, databases, and cloud deployment."),
		Email:           strPtr("henry@example.com"),
		LinkedInURL:     strPtr("https://linkedin.com"),
		GithubURL:       strPtr("https://github.com"),
		Location:        strPtr("Nigeria"),
		HeroImageURL:    strPtr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800"),
		CurrentRole:     strPtr("Full Stack Developer"),
		FirstDegree:     strPtr("B.Sc. Marriage and Family Studies (BYU-Idaho)"),
		FirstDegreeDate: strPtr("August 2025"),
		SecondDegree:    strPtr("Software Development Engineering"),
		SecondDegreeEta: strPtr("April 2026"),
	})
	return err
}

func seedProjects(ctx context.Context, db *sql.DB) error {
	repo := data.NewProjectRepo(db)
	projects := []struct {
		req  model.CreateProjectRequest
		slug string
	}{
		{
			slug: "charity-operations-dashboard",
			req: model.CreateProjectRequest{
				Title:           "Charity Operations Dashboard",
				Summary:         "A full-stack dashboard for managing donations, beneficiaries, and impact reporting.",
				Problem:         "Small charities needed a central dashboard to track donations and beneficiary records.",
				ActionTaken:     "Built a React + Node.js platform with role-based access, secure APIs, and PostgreSQL reporting.",
				Result:          "Reduced manual reporting effort by over 60% and improved visibility for stakeholders.",
				TechStack:       []string{"Next.js", "TypeScript", "Node.js", "Express", "PostgreSQL", "Prisma", "Railway", "Vercel"},
				HostingFrontend: strPtr("Vercel"),
				HostingBackend:  strPtr("Railway"),
				DatabaseStorage: strPtr("PostgreSQL"),
				ImageURL:        "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=1200",
				LiveURL:         "https://example.com",
				RepoURL:         strPtr("https://github.com"),
				Featured:        boolPtr(true),
				DisplayOrder:    intPtr(1),
			},
		},
		{
			slug: "appointment-booking-system",
			req: model.CreateProjectRequest{
				Title:           "Appointment Booking System",
				Summary:         "A responsive booking platform with reminders and analytics.",
				Problem:         "Service businesses struggled with no-shows and fragmented scheduling tools.",
				ActionTaken:     "Implemented end-to-end booking flow, async notifications, and admin analytics.",
				Result:          "Improved booking completion and reduced no-show rates with automated reminders.",
				TechStack:       []string{"React", "Tailwind CSS", "Node.js", "PostgreSQL", "JWT", "Railway"},
				HostingFrontend: strPtr("Vercel"),
				HostingBackend:  strPtr("Railway"),
				DatabaseStorage: strPtr("PostgreSQL"),
				ImageURL:        "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=1200",
				LiveURL:         "https://example.com",
				RepoURL:         strPtr("https://github.com"),
				Featured:        boolPtr(true),
				DisplayOrder:    intPtr(2),
			},
		},
	}

	for i := range projects {
		if _, err := repo.Create(ctx, &projects[i].req, projects[i].slug); err != nil {
			return err
		}
	}
	return nil
}

func seedCertificates(ctx context.Context, db *sql.DB) error {
	repo := data.NewCertificateRepo(db)
	_, err := repo.Create(ctx, &model.CreateCertificateRequest{
		Title:         "Full Stack Web Development",
		Issuer:        "BYU-Idaho",
		IssuedDate:    strPtr("2025"),
		CredentialURL: strPtr("https://example.com/certificate"),
		ImageURL:      strPtr("https://images.unsplash.com/photo-1521791136064-7986c2920216?w=1200"),
	})
	return err
}

func seedMedia(ctx context.Context, db *sql.DB) error {
	repo := data.NewMediaRepo(db)
	assets := []model.CreateMediaRequest{
		{
			Title:       "Professional Portrait",
			ImageURL:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=1200",
			Category:    model.MediaCategoryProfile,
			Description: strPtr("Main profile photo"),
		},
		{
			Title:       "Graduation Photo",
			ImageURL:    "https://images.unsplash.com/photo-1523050854058-8df90110c9f1?w=1200",
			Category:    model.MediaCategoryGraduation,
			Description: strPtr("Graduation memory"),
		},
	}
	for i := range assets {
		if _, err := repo.Create(ctx, &assets[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedResumes(ctx context.Context, db *sql.DB) error {
	repo := data.NewResumeRepo(db)
	assets := []model.CreateResumeRequest{
		{
			Title:     "Resume",
			Type:      model.ResumeTypeResume,
			LinkURL:   strPtr("https://example.com/resume.pdf"),
			IsPrimary: true,
		},
		{
			Title:     "Curriculum Vitae",
			Type:      model.ResumeTypeCV,
			LinkURL:   strPtr("https://example.com/cv.pdf"),
			IsPrimary: false,
		},
	}
	for i := range assets {
		if _, err := repo.Create(ctx, &assets[i]); err != nil {
			return err
		}
	}
	return nil
}
