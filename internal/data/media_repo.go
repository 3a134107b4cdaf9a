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

// MediaRepo provides database operations for gallery media assets.
type MediaRepo struct {
	DB *sql.DB
}

// NewMediaRepo creates a new MediaRepo.
func NewMediaRepo(db *sql.DB) *MediaRepo {
	return &MediaRepo{DB: db}
}

const mediaColumns = `id, title, image_url, category, description, created_at, updated_at`

// Create inserts a new media asset.
func (r *MediaRepo) Create(ctx context.Context, req *model.CreateMediaRequest) (*model.MediaAsset, error) {
	if req == nil {
		return nil, errors.New("create media request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.MediaAsset
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO media_assets (title, image_url, category, description)
			VALUES ($1, $2, $3, $4)
			RETURNING `+mediaColumns,
			strings.TrimSpace(req.Title),
			req.ImageURL,
			req.Category,
			req.Description,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.MediaAsset])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create media asset: %w", err)
	}
	return &out, nil
}

// List retrieves one page of media assets plus the total count, newest first.
// A non-empty search matches title or description case-insensitively.
func (r *MediaRepo) List(ctx context.Context, q model.PageQuery) ([]model.MediaAsset, int, error) {
	q = q.Normalize()

	where := ""
	args := []any{}
	if q.HasSearch() {
		where = ` WHERE title ILIKE $1 OR description ILIKE $1`
		args = append(args, "%"+q.Search+"%")
	}

	var (
		items []model.MediaAsset
		total int
	)
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM media_assets`+where, args...).Scan(&total); err != nil {
			return err
		}

		limitIdx := len(args) + 1
		pageArgs := append(args, q.PageSize, q.Offset())
		rows, err := conn.Query(ctx, `SELECT `+mediaColumns+` FROM media_assets`+where+`
			ORDER BY created_at DESC
			LIMIT $`+strconv.Itoa(limitIdx)+` OFFSET $`+strconv.Itoa(limitIdx+1),
			pageArgs...,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		items, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.MediaAsset])
		return err
	}); err != nil {
		return nil, 0, fmt.Errorf("failed to list media assets: %w", err)
	}
	return items, total, nil
}

// Update updates fields of a media asset.
func (r *MediaRepo) Update(ctx context.Context, id string, req model.UpdateMediaRequest) (*model.MediaAsset, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 5)
	args := make([]any, 0, 5)
	set := func(col string, val any) {
		args = append(args, val)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Title != nil {
		set("title", strings.TrimSpace(*req.Title))
	}
	if req.ImageURL != nil {
		set("image_url", *req.ImageURL)
	}
	if req.Category != nil {
		set("category", *req.Category)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	setParts = append(setParts, "updated_at = now()")

	args = append(args, id)
	query := `UPDATE media_assets SET ` + strings.Join(setParts, ", ") +
		` WHERE id::text = $` + strconv.Itoa(len(args)) + ` RETURNING ` + mediaColumns

	var out model.MediaAsset
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.MediaAsset])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to update media asset: %w", err)
	}
	return &out, nil
}

// Delete deletes a media asset by ID.
func (r *MediaRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM media_assets WHERE id::text = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete media asset: %w", err)
	}
	return rows > 0, nil
}
