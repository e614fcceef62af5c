package repositories_test

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"zenithmed/internal/models"
	"zenithmed/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var gormDBSeq int64

// newGORMRepo opens a fresh in-memory SQLite database per test.
func newGORMRepo(t *testing.T) *repositories.GORMProductRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_test_%d?mode=memory&cache=shared", atomic.AddInt64(&gormDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return repositories.NewGORMProductRepository(db)
}

func TestGORMRepo_UpdateUnknownIDDoesNotInsert(t *testing.T) {
	repo := newGORMRepo(t)

	ghost := &models.Product{
		ID: "3b241101-e2bb-4255-8caf-4136c566a962", Name: "Ghost 1mg",
		Category: models.CategoryGeneral, Composition: "Nothing", Packaging: "0 Tablets",
	}
	assert.ErrorIs(t, repo.Update(ghost), models.ErrProductNotFound)

	// The failed update must not have written a row.
	_, err := repo.GetByID(ghost.ID)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestGORMRepo_UpdateAfterDeleteDoesNotResurrect(t *testing.T) {
	repo := newGORMRepo(t)

	p := models.Product{Name: "Concor 5mg", Category: models.CategoryCardiology,
		Composition: "Bisoprolol Fumarate", Packaging: "10x10 Tablets", Price: 112}
	require.NoError(t, repo.Create(&p))
	require.NoError(t, repo.Delete(p.ID))

	// An update racing a delete errors instead of re-inserting the row.
	p.Price = 120
	assert.ErrorIs(t, repo.Update(&p), models.ErrProductNotFound)
	_, err := repo.GetByID(p.ID)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
}

func TestGORMRepo_UpdatePreservesCreationTime(t *testing.T) {
	repo := newGORMRepo(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	p := models.Product{Name: "Concor 5mg", Category: models.CategoryCardiology,
		Composition: "Bisoprolol Fumarate", Packaging: "10x10 Tablets"}
	p.CreatedAt = created
	require.NoError(t, repo.Create(&p))

	updated := p
	updated.Price = 99
	updated.CreatedAt = time.Now()
	require.NoError(t, repo.Update(&updated))

	got, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, created, got.CreatedAt, time.Second)
	assert.Equal(t, 99.0, got.Price)
}

func TestGORMRepo_SearchTrimsTerm(t *testing.T) {
	repo := newGORMRepo(t)
	require.NoError(t, repo.Create(&models.Product{
		Name: "Amoxicillin 500mg", Category: models.CategoryAntibiotics,
		Composition: "Amoxicillin Trihydrate", Packaging: "1x10 Capsules",
	}))

	products, total, err := repo.Search(repositories.SearchParams{Term: "  amox  "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "Amoxicillin 500mg", products[0].Name)
}
