//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/khohang-api/internal/domain"
	"github.com/jhoicas/khohang-api/internal/domain/entity"
	"github.com/jhoicas/khohang-api/internal/domain/repository"
	"github.com/jhoicas/khohang-api/internal/domain/stock"
	"github.com/jhoicas/khohang-api/internal/infrastructure/postgres"
)

// go test -tags integration ./internal/infrastructure/postgres/...
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("khohang_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "levantar PostgreSQL")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(dsn, "up"))

	pool, err := postgres.NewPoolFromDSN(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func seedProduct(t *testing.T, pool *pgxpool.Pool) *entity.Product {
	t.Helper()
	now := time.Now()
	p := &entity.Product{
		ID:        uuid.NewString(),
		Code:      "AO-" + uuid.NewString()[:8],
		Name:      "Áo thun",
		UnitPrice: decimal.RequireFromString("120000.50"),
		Colors:    []entity.ProductColor{{Color: "#000000", Title: "Đen"}, {Color: "#ffffff", Title: "Trắng"}},
		Sizes:     []string{"S", "M"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, postgres.NewProductRepository(pool).Create(context.Background(), p))
	return p
}

func seedDocument(t *testing.T, pool *pgxpool.Pool, kind entity.DocumentKind) *entity.Document {
	t.Helper()
	ctx := context.Background()
	repo := postgres.NewDocumentRepository(pool)
	code, err := repo.NextCode(ctx, kind)
	require.NoError(t, err)
	now := time.Now()
	d := &entity.Document{
		ID: uuid.NewString(), Kind: kind, Code: code, Status: entity.DocumentStatusDraft,
		Date: now, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, d))
	return d
}

func detail(doc *entity.Document, p *entity.Product, color, size string, qty int64) *entity.DocumentDetail {
	now := time.Now()
	return &entity.DocumentDetail{
		ID: uuid.NewString(), DocumentID: doc.ID, ProductID: p.ID,
		ColorTitle: color, Size: size, Quantity: qty, UnitPrice: p.UnitPrice,
		CreatedAt: now, UpdatedAt: now,
	}
}

func TestIntegration_RepositoriosDeDocumentos(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	details := postgres.NewDetailRepository(pool)

	product := seedProduct(t, pool)
	got, err := postgres.NewProductRepository(pool).GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, product.Colors, got.Colors)
	assert.Equal(t, []string{"S", "M"}, got.Sizes)
	assert.True(t, product.UnitPrice.Equal(got.UnitPrice))

	imp := seedDocument(t, pool, entity.DocumentImport)
	exp := seedDocument(t, pool, entity.DocumentExport)
	tr := seedDocument(t, pool, entity.DocumentTransfer)
	pr := seedDocument(t, pool, entity.DocumentPurchaseRequest)
	assert.Equal(t, "PN000001", imp.Code)
	assert.Equal(t, "PX000001", exp.Code)
	assert.Equal(t, "PC000001", tr.Code)
	assert.Equal(t, "DN000001", pr.Code)
	assert.Equal(t, "PN000002", seedDocument(t, pool, entity.DocumentImport).Code)

	require.NoError(t, details.Create(ctx, detail(imp, product, "Đen", "M", 10)))
	require.NoError(t, details.Create(ctx, detail(exp, product, "Đen", "M", 3)))
	require.NoError(t, details.Create(ctx, detail(tr, product, "Đen", "M", 2)))
	require.NoError(t, details.Create(ctx, detail(pr, product, "Đen", "M", 50)))

	err = details.Create(ctx, detail(imp, product, "Đen", "M", 1))
	assert.ErrorIs(t, err, domain.ErrDuplicateCombination)

	movements, err := details.ListMovements(ctx, product.ID)
	require.NoError(t, err)
	assert.Len(t, movements, 3, "las solicitudes de compra no mueven existencias")
	agg := stock.Reduce(movements).Get(stock.StockKey{ProductID: product.ID, ColorTitle: "Đen", Size: "M"})
	assert.Equal(t, int64(10), agg.ImportedQuantity)
	assert.Equal(t, int64(5), agg.ExportedAndTransferredQuantity)
	assert.Equal(t, int64(5), agg.RemainingQuantity)

	year := time.Now().Year()
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	lines, err := details.ListDated(ctx, entity.DocumentExport, from, from.AddDate(1, 0, 0))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, product.UnitPrice.Mul(decimal.NewFromInt(3)).Equal(lines[0].Amount))

	list, err := details.ListByDocument(ctx, imp.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, product.Code, list[0].ProductCode)
}

func TestIntegration_TxRunnerRevierteAlFallar(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	product := seedProduct(t, pool)
	imp := seedDocument(t, pool, entity.DocumentImport)

	boom := errors.New("boom")
	err := postgres.NewTxRunner(pool).Run(ctx, func(_ repository.DocumentRepository, details repository.DetailRepository) error {
		if err := details.Create(ctx, detail(imp, product, "Trắng", "S", 4)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := postgres.NewDetailRepository(pool).ListByDocument(ctx, imp.ID)
	require.NoError(t, err)
	assert.Empty(t, list, "la línea escrita dentro de la tx no debe persistir")

	err = postgres.NewTxRunner(pool).Run(ctx, func(_ repository.DocumentRepository, details repository.DetailRepository) error {
		return details.Create(ctx, detail(imp, product, "Trắng", "S", 4))
	})
	require.NoError(t, err)
	list, err = postgres.NewDetailRepository(pool).ListByDocument(ctx, imp.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
