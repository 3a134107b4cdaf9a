package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/data/pgxutil"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
)

// ProjectRepo provides database operations for projects.
type ProjectRepo struct {
	DB *sql.DB
}

// NewProjectRepo creates a new ProjectRepo.
func NewProjectRepo(db *sql.DB) *ProjectRepo {
	return &ProjectRepo{DB: db}
}

const projectColumns = `id, title, slug, summary, problem, action_taken, result,
	tech_stack, gallery_images, hosting_frontend, hosting_backend, database_storage,
	image_url, live_url, repo_url, featured, display_order, created_at, updated_at`

// Create inserts a new project with the given slug (already derived by the
// service layer when the request carried none).
func (r *ProjectRepo) Create(ctx context.Context, req *model.CreateProjectRequest, slug string) (*model.Project, error) {
	if req == nil {
		return nil, errors.New("create project request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	featured := req.Featured != nil && *req.Featured
	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	}
	techStack := req.TechStack
	if techStack == nil {
		techStack = []string{}
	}
	gallery := req.GalleryImages
	if gallery == nil {
		gallery = []string{}
	}

	var out model.Project
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO projects (
				title, slug, summary, problem, action_taken, result, tech_stack,
				gallery_images, hosting_frontend, hosting_backend, database_storage,
				image_url, live_url, repo_url, featured, display_order
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
			) RETURNING `+projectColumns,
			strings.TrimSpace(req.Title),
			slug,
			req.Summary,
			req.Problem,
			req.ActionTaken,
			req.Result,
			techStack,
			gallery,
			req.HostingFrontend,
			req.HostingBackend,
			req.DatabaseStorage,
			req.ImageURL,
			req.LiveURL,
			req.RepoURL,
			featured,
			displayOrder,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Project])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err, false)
	}
	return &out, nil
}

// GetByIDOrSlug retrieves a project by UUID or by slug.
func (r *ProjectRepo) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*model.Project, error) {
	var out model.Project
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+projectColumns+` FROM projects WHERE id::text = $1 OR slug = $1`,
			idOrSlug,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Project])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &out, nil
}

// List retrieves one page of projects plus the total count. Default order is
// featured first, then display order, then newest first. A non-empty search
// matches title or summary case-insensitively.
func (r *ProjectRepo) List(ctx context.Context, q model.PageQuery) ([]model.Project, int, error) {
	q = q.Normalize()

	where := ""
	args := []any{}
	if q.HasSearch() {
		where = ` WHERE title ILIKE $1 OR summary ILIKE $1`
		args = append(args, "%"+q.Search+"%")
	}

	var (
		items []model.Project
		total int
	)
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM projects`+where, args...).Scan(&total); err != nil {
			return err
		}

		limitIdx := len(args) + 1
		pageArgs := append(args, q.PageSize, q.Offset())
		rows, err := conn.Query(ctx, `SELECT `+projectColumns+` FROM projects`+where+`
			ORDER BY featured DESC, display_order ASC, created_at DESC
			LIMIT $`+strconv.Itoa(limitIdx)+` OFFSET $`+strconv.Itoa(limitIdx+1),
			pageArgs...,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		items, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Project])
		return err
	}); err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return items, total, nil
}

// Update updates fields of a project. The slug pointer in the request is
// expected to be normalized by the service layer; it is written verbatim.
func (r *ProjectRepo) Update(ctx context.Context, id string, req model.UpdateProjectRequest) (*model.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setClause, args := r.buildUpdateClause(req)
	args = append(args, id)
	query := `UPDATE projects SET ` + setClause + ` WHERE id::text = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + projectColumns

	var out model.Project
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Project])
		return err
	})
	if err != nil {
		return nil, r.mapWriteErr(err, true)
	}
	return &out, nil
}

// buildUpdateClause builds the SQL SET clause and args for updating a project.
func (r *ProjectRepo) buildUpdateClause(req model.UpdateProjectRequest) (string, []any) {
	setParts := make([]string, 0, 16)
	args := make([]any, 0, 16)
	set := func(col string, val any) {
		args = append(args, val)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Title != nil {
		set("title", strings.TrimSpace(*req.Title))
	}
	if req.Slug != nil {
		set("slug", *req.Slug)
	}
	if req.Summary != nil {
		set("summary", *req.Summary)
	}
	if req.Problem != nil {
		set("problem", *req.Problem)
	}
	if req.ActionTaken != nil {
		set("action_taken", *req.ActionTaken)
	}
	if req.Result != nil {
		set("result", *req.Result)
	}
	if req.TechStack != nil {
		set("tech_stack", *req.TechStack)
	}
	if req.GalleryImages != nil {
		set("gallery_images", *req.GalleryImages)
	}
	if req.HostingFrontend != nil {
		set("hosting_frontend", *req.HostingFrontend)
	}
	if req.HostingBackend != nil {
		set("hosting_backend", *req.HostingBackend)
	}
	if req.DatabaseStorage != nil {
		set("database_storage", *req.DatabaseStorage)
	}
	if req.ImageURL != nil {
		set("image_url", *req.ImageURL)
	}
	if req.LiveURL != nil {
		set("live_url", *req.LiveURL)
	}
	if req.RepoURL != nil {
		set("repo_url", *req.RepoURL)
	}
	if req.Featured != nil {
		set("featured", *req.Featured)
	}
	if req.DisplayOrder != nil {
		set("display_order", *req.DisplayOrder)
	}

	setParts = append(setParts, "updated_at = now()")
	return strings.Join(setParts, ", "), args
}

// Delete deletes a project by ID.
func (r *ProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM projects WHERE id::text = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return rows > 0, nil
}

func (r *ProjectRepo) mapWriteErr(err error, includeNotFound bool) error {
	if err == nil {
		return nil
	}
	if includeNotFound && errors.Is(err, pgx.ErrNoRows) {
		return ErrProjectNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrProjectSlugExists
	}
	return err
}
