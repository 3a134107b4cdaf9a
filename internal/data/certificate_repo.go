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

// CertificateRepo provides database operations for certificates.
type CertificateRepo struct {
	DB *sql.DB
}

// NewCertificateRepo creates a new CertificateRepo.
func NewCertificateRepo(db *sql.DB) *CertificateRepo {
	return &CertificateRepo{DB: db}
}

const certificateColumns = `id, title, issuer, issued_date, credential_url, image_url, created_at, updated_at`

// Create inserts a new certificate.
func (r *CertificateRepo) Create(ctx context.Context, req *model.CreateCertificateRequest) (*model.Certificate, error) {
	if req == nil {
		return nil, errors.New("create certificate request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Certificate
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO certificates (title, issuer, issued_date, credential_url, image_url)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+certificateColumns,
			strings.TrimSpace(req.Title),
			strings.TrimSpace(req.Issuer),
			req.IssuedDate,
			req.CredentialURL,
			req.ImageURL,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Certificate])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}
	return &out, nil
}

// List retrieves one page of certificates plus the total count, newest first.
// A non-empty search matches title or issuer case-insensitively.
func (r *CertificateRepo) List(ctx context.Context, q model.PageQuery) ([]model.Certificate, int, error) {
	q = q.Normalize()

	where := ""
	args := []any{}
	if q.HasSearch() {
		where = ` WHERE title ILIKE $1 OR issuer ILIKE $1`
		args = append(args, "%"+q.Search+"%")
	}

	var (
		items []model.Certificate
		total int
	)
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM certificates`+where, args...).Scan(&total); err != nil {
			return err
		}

		limitIdx := len(args) + 1
		pageArgs := append(args, q.PageSize, q.Offset())
		rows, err := conn.Query(ctx, `SELECT `+certificateColumns+` FROM certificates`+where+`
			ORDER BY created_at DESC
			LIMIT $`+strconv.Itoa(limitIdx)+` OFFSET $`+strconv.Itoa(limitIdx+1),
			pageArgs...,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		items, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Certificate])
		return err
	}); err != nil {
		return nil, 0, fmt.Errorf("failed to list certificates: %w", err)
	}
	return items, total, nil
}

// Update updates fields of a certificate.
func (r *CertificateRepo) Update(ctx context.Context, id string, req model.UpdateCertificateRequest) (*model.Certificate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 6)
	args := make([]any, 0, 6)
	set := func(col string, val any) {
		args = append(args, val)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Title != nil {
		set("title", strings.TrimSpace(*req.Title))
	}
	if req.Issuer != nil {
		set("issuer", strings.TrimSpace(*req.Issuer))
	}
	if req.IssuedDate != nil {
		set("issued_date", *req.IssuedDate)
	}
	if req.CredentialURL != nil {
		set("credential_url", *req.CredentialURL)
	}
	if req.ImageURL != nil {
		set("image_url", *req.ImageURL)
	}
	setParts = append(setParts, "updated_at = now()")

	args = append(args, id)
	query := `UPDATE certificates SET ` + strings.Join(setParts, ", ") +
		` WHERE id::text = $` + strconv.Itoa(len(args)) + ` RETURNING ` + certificateColumns

	var out model.Certificate
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Certificate])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to update certificate: %w", err)
	}
	return &out, nil
}

// Delete deletes a certificate by ID.
func (r *CertificateRepo) Delete(ctx context.Context, id string) (bool, error) {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM certificates WHERE id::text = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete certificate: %w", err)
	}
	return rows > 0, nil
}
