package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/domain/model"
	"github.com/ugochukwu16henry/henryUgochukwu-Porfolio/internal/testutil"
)

func newProjectRequest(title string) *model.CreateProjectRequest {
	return &model.CreateProjectRequest{
		Title:     title,
		Summary:   "A short summary of " + title,
		TechStack: []string{"Go", "PostgreSQL"},
	}
}

func mustCreateProject(t *testing.T, repo *ProjectRepo, req *model.CreateProjectRequest, slug string) *model.Project {
	t.Helper()
	p, err := repo.Create(context.Background(), req, slug)
	require.NoError(t, err)
	return p
}

func TestProjectRepo_CreateAndGet(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewProjectRepo(db)
		ctx := context.Background()

		created := mustCreateProject(t, repo, newProjectRequest("Charity Operations Dashboard"), "charity-operations-dashboard")
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Charity Operations Dashboard", created.Title)
		assert.Equal(t, "charity-operations-dashboard", created.Slug)
		assert.Equal(t, []string{"Go", "PostgreSQL"}, created.TechStack)
		assert.False(t, created.Featured)
		assert.False(t, created.CreatedAt.IsZero())

		byID, err := repo.GetByIDOrSlug(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, byID.ID)

		bySlug, err := repo.GetByIDOrSlug(ctx, "charity-operations-dashboard")
		require.NoError(t, err)
		assert.Equal(t, created.ID, bySlug.ID)
	})
}

func TestProjectRepo_Get_NotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewProjectRepo(db)

		_, err := repo.GetByIDOrSlug(context.Background(), "no-such-slug")
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestProjectRepo_Create_DuplicateSlug(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewProjectRepo(db)

		mustCreateProject(t, repo, newProjectRequest("First"), "shared-slug")

		_, err := repo.Create(context.Background(), newProjectRequest("Second"), "shared-slug")
		assert.ErrorIs(t, err, ErrProjectSlugExists)
	})
}

func TestProjectRepo_List_OrderAndPaging(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewProjectRepo(db)
		ctx := context.Background()

		featured := true
		one, two := 1, 2
		mustCreateProject(t, repo, newProjectRequest("Plain Project"), "plain-project")
		reqA := newProjectRequest("Featured Second")
		reqA.Featured = &featured
		reqA.DisplayOrder = &two
		a := mustCreateProject(t, repo, reqA, "featured-second")
		reqB := newProjectRequest("Featured First")
		reqB.Featured = &featured
		reqB.DisplayOrder = &one
		b := mustCreateProject(t, repo, reqB, "featured-first")

		items, total, err := repo.List(ctx, model.PageQuery{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, items, 3)
		// Featured first, then display order.
		assert.Equal(t, b.ID, items[0].ID)
		assert.Equal(t, a.ID, items[1].ID)

		items, total, err = repo.List(ctx, model.PageQuery{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, items, 1)
	})
}

func TestProjectRepo_List_Search(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewProjectRepo(db)
		ctx := context.Background()

		mustCreateProject(t, repo, newProjectRequest("Charity Dashboard"), "charity-dashboard")
		mustCreateProject(t, repo, newProjectRequest("Booking System"), "booking-system")

		items, total, err := repo.List(ctx, model.PageQuery{Page: 1, PageSize: 10, Search: "dashboard"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, items, 1)
		assert.Equal(t, "Charity Dashboard", items[0].Title)

		_, total, err = repo.List(ctx, model.PageQuery{Page: 1, PageSize: 10, Search: "nothing-matches"})
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestProjectRepo_Update(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewProjectRepo(db)
		ctx := context.Background()

		created := mustCreateProject(t, repo, newProjectRequest("Original Title"), "original-title")

		newTitle := "Renamed Title"
		stack := []string{"Next.js", "TypeScript"}
		updated, err := repo.Update(ctx, created.ID, model.UpdateProjectRequest{
			Title:     &newTitle,
			TechStack: &stack,
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Title", updated.Title)
		assert.Equal(t, stack, updated.TechStack)
		// Slug stays put unless explicitly changed.
		assert.Equal(t, "original-title", updated.Slug)
	})
}

func TestProjectRepo_Update_NotFound(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewProjectRepo(db)

		title := "Anything"
		_, err := repo.Update(context.Background(), "00000000-0000-0000-0000-000000000000",
			model.UpdateProjectRequest{Title: &title})
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestProjectRepo_Update_MalformedID(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewProjectRepo(db)

		// A non-UUID id must read as "no such record", not a query error.
		title := "Anything"
		_, err := repo.Update(context.Background(), "not-a-uuid",
			model.UpdateProjectRequest{Title: &title})
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestProjectRepo_Delete_MalformedID(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewProjectRepo(db)

		deleted, err := repo.Delete(context.Background(), "not-a-uuid")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestProjectRepo_Delete(t *testing.T) {
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewProjectRepo(db)
		ctx := context.Background()

		created := mustCreateProject(t, repo, newProjectRequest("Doomed"), "doomed")

		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		_, err = repo.GetByIDOrSlug(ctx, created.ID)
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}
