package usecase

import (
	"bytes"
	"context"
	"testing"

	"renovation-tracker/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestExportService_EmptyRepository(t *testing.T) {
	svc := NewExportService(newStubCustomerRepo(), zap.NewNop())
	ctx := context.Background()

	xlsx, err := svc.ExportSpreadsheet(ctx)
	require.NoError(t, err)
	assert.Equal(t, "musteri_listesi.xlsx", xlsx.Filename)
	assert.Equal(t, report.SpreadsheetContentType, xlsx.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(xlsx.Data))
	require.NoError(t, err)
	rows, err := f.GetRows("Customers")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	f.Close()

	pdf, err := svc.ExportDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, "musteri_listesi.pdf", pdf.Filename)
	assert.True(t, bytes.HasPrefix(pdf.Data, []byte("%PDF-")))
}

func TestExportService_ReflectsCurrentState(t *testing.T) {
	repo := newStubCustomerRepo()
	customers := NewCustomerService(repo, zap.NewNop())
	exports := NewExportService(repo, zap.NewNop())
	ctx := context.Background()

	countRows := func() int {
		file, err := exports.ExportSpreadsheet(ctx)
		require.NoError(t, err)
		f, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows("Customers")
		require.NoError(t, err)
		return len(rows)
	}

	assert.Equal(t, 1, countRows())

	created, err := customers.CreateCustomer(ctx, aliVeli())
	require.NoError(t, err)
	assert.Equal(t, 2, countRows())

	require.NoError(t, customers.DeleteCustomer(ctx, created.ID))
	assert.Equal(t, 1, countRows())
}
