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

// ResumeRepo provides database operations for resume and CV documents.
type ResumeRepo struct {
	DB *sql.DB
}

// NewResumeRepo creates a new ResumeRepo.
func NewResumeRepo(db *sql.DB) *ResumeRepo {
	return &ResumeRepo{DB: db}
}

const resumeColumns = `id, title, type, file_url, link_url, is_primary, created_at, updated_at`

// Create inserts a new resume asset. When the request marks it primary, all
// existing primary flags are cleared in the same transaction so at most one
// document stays primary.
func (r *ResumeRepo) Create(ctx context.Context, req *model.CreateResumeRequest) (*model.ResumeAsset, error) {
	if req == nil {
		return nil, errors.New("create resume request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.ResumeAsset
	if err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		if req.IsPrimary {
			if _, err := tx.Exec(ctx, `UPDATE resume_assets SET is_primary = false WHERE is_primary`); err != nil {
				return err
			}
		}
		rows, err := tx.Query(ctx, `
			INSERT INTO resume_assets (title, type, file_url, link_url, is_primary)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+resumeColumns,
			strings.TrimSpace(req.Title),
			req.Type,
			req.FileURL,
			req.LinkURL,
			req.IsPrimary,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ResumeAsset])
		return err
	}}); err != nil {
		return nil, fmt.Errorf("failed to create resume asset: %w", err)
	}
	return &out, nil
}

// List retrieves one page of resume assets plus the total count, primary
// document first. A non-empty search matches the title case-insensitively.
func (r *ResumeRepo) List(ctx context.Context, q model.PageQuery) ([]model.ResumeAsset, int, error) {
	q = q.Normalize()

	where := ""
	args := []any{}
	if q.HasSearch() {
		where = ` WHERE title ILIKE $1`
		args = append(args, "%"+q.Search+"%")
	}

	var (
		items []model.ResumeAsset
		total int
	)
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM resume_assets`+where, args...).Scan(&total); err != nil {
			return err
		}

		limitIdx := len(args) + 1
		pageArgs := append(args, q.PageSize, q.Offset())
		rows, err := conn.Query(ctx, `SELECT `+resumeColumns+` FROM resume_assets`+where+`
			ORDER BY is_primary DESC, created_at DESC
			LIMIT $`+strconv.Itoa(limitIdx)+` OFFSET $`+strconv.Itoa(limitIdx+1),
			pageArgs...,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		items, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ResumeAsset])
		return err
	}); err != nil {
		return nil, 0, fmt.Errorf("failed to list resume assets: %w", err)
	}
	return items, total, nil
}

// GetPrimary returns the current primary resume asset, if any.
func (r *ResumeRepo) GetPrimary(ctx context.Context) (*model.ResumeAsset, error) {
	var out model.ResumeAsset
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+resumeColumns+` FROM resume_assets WHERE is_primary ORDER BY created_at DESC LIMIT 1`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ResumeAsset])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to get primary resume: %w", err)
	}
	return &out, nil
}

// Update updates fields of a resume asset. Promoting a document to primary
// demotes every other document in the same transaction.
func (r *ResumeRepo) Update(ctx context.Context, id string, req model.UpdateResumeRequest) (*model.ResumeAsset, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 4)
	args := make([]any, 0, 4)
	set := func(col string, val any) {
		args = append(args, val)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Title != nil {
		set("title", strings.TrimSpace(*req.Title))
	}
	if req.Type != nil {
		set("type", *req.Type)
	}
	if req.FileURL != nil {
		set("file_url", *req.FileURL)
	}
	if req.LinkURL != nil {
		set("link_url", *req.LinkURL)
	}
	if req.IsPrimary != nil {
		set("is_primary", *req.IsPrimary)
	}
	setParts = append(setParts, "updated_at = now()")

	args = append(args, id)
	query := `UPDATE resume_assets SET ` + strings.Join(setParts, ", ") +
		` WHERE id::text = $` + strconv.Itoa(len(args)) + ` RETURNING ` + resumeColumns

	promote := req.IsPrimary != nil && *req.IsPrimary

	var out model.ResumeAsset
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		if promote {
			if _, err := tx.Exec(ctx,
				`UPDATE resume_assets SET is_primary = false WHERE is_primary AND id::text <> $1`, id); err != nil {
				return err
			}
		}
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ResumeAsset])
		return err
	}})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to update resume asset: %w", err)
	}
	return &out, nil
}

// Delete deletes a resume asset by ID.
func (r *ResumeRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM resume_assets WHERE id::text = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete resume asset: %w", err)
	}
	return rows > 0, nil
}
