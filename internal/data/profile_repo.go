package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data/pgxutil"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
)

// ProfileRepo provides database operations for the singleton owner profile.
type ProfileRepo struct {
	DB *sql.DB
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{DB: db}
}

// current_role is quoted because it collides with a reserved SQL keyword.
const profileColumns = `id, full_name, title, headline, bio, email, linkedin_url,
	github_url, location, hero_image_url, "current_role", first_degree,
	first_degree_date, second_degree, second_degree_eta, created_at, updated_at`

// Get returns the profile row, or ErrProfileNotFound when none exists yet.
func (r *ProfileRepo) Get(ctx context.Context) (*model.Profile, error) {
	var out model.Profile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+profileColumns+` FROM profiles LIMIT 1`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Profile])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &out, nil
}

// Upsert updates the existing profile row or creates it on first write.
func (r *ProfileRepo) Upsert(ctx context.Context, req model.UpdateProfileRequest) (*model.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx)
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}
	if existing == nil {
		return r.create(ctx, req)
	}
	return r.update(ctx, existing.ID, req)
}

func (r *ProfileRepo) create(ctx context.Context, req model.UpdateProfileRequest) (*model.Profile, error) {
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	var out model.Profile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO profiles (
				full_name, title, headline, bio, email, linkedin_url, github_url,
				location, hero_image_url, "current_role", first_degree,
				first_degree_date, second_degree, second_degree_eta
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
			) RETURNING `+profileColumns,
			str(req.FullName),
			str(req.Title),
			str(req.Headline),
			str(req.Bio),
			str(req.Email),
			req.LinkedInURL,
			req.GithubURL,
			req.Location,
			req.HeroImageURL,
			req.CurrentRole,
			str(req.FirstDegree),
			str(req.FirstDegreeDate),
			str(req.SecondDegree),
			str(req.SecondDegreeEta),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Profile])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &out, nil
}

func (r *ProfileRepo) update(ctx context.Context, id string, req model.UpdateProfileRequest) (*model.Profile, error) {
	setParts := make([]string, 0, 15)
	args := make([]any, 0, 15)
	set := func(col string, val any) {
		args = append(args, val)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.FullName != nil {
		set("full_name", *req.FullName)
	}
	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Headline != nil {
		set("headline", *req.Headline)
	}
	if req.Bio != nil {
		set("bio", *req.Bio)
	}
	if req.Email != nil {
		set("email", *req.Email)
	}
	if req.LinkedInURL != nil {
		set("linkedin_url", *req.LinkedInURL)
	}
	if req.GithubURL != nil {
		set("github_url", *req.GithubURL)
	}
	if req.Location != nil {
		set("location", *req.Location)
	}
	if req.HeroImageURL != nil {
		set("hero_image_url", *req.HeroImageURL)
	}
	if req.CurrentRole != nil {
		set(`"current_role"`, *req.CurrentRole)
	}
	if req.FirstDegree != nil {
		set("first_degree", *req.FirstDegree)
	}
	if req.FirstDegreeDate != nil {
		set("first_degree_date", *req.FirstDegreeDate)
	}
	if req.SecondDegree != nil {
		set("second_degree", *req.SecondDegree)
	}
	if req.SecondDegreeEta != nil {
		set("second_degree_eta", *req.SecondDegreeEta)
	}
	setParts = append(setParts, "updated_at = now()")

	args = append(args, id)
	query := `UPDATE profiles SET ` + strings.Join(setParts, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) + ` RETURNING ` + profileColumns

	var out model.Profile
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Profile])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &out, nil
}
