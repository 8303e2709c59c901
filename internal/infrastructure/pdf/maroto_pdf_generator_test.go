package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/khohang-api/internal/application/ports"
	"github.com/jhoicas/khohang-api/internal/infrastructure/pdf"
)

func TestGenerateDocumentPDF(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator("Kho Hàng")
	doc := ports.DocumentPrint{
		Title:        "BÁO GIÁ",
		Code:         "PX000001",
		Date:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PartnerLabel: "Khách hàng",
		PartnerName:  "Cửa hàng An",
		Lines: []ports.PrintLine{
			{ProductCode: "AO-07", ProductName: "Áo thun", ColorTitle: "Đen", Size: "M", Quantity: 2,
				UnitPrice: decimal.NewFromInt(100000), Amount: decimal.NewFromInt(200000)},
		},
		TotalQuantity: 2,
		TotalAmount:   decimal.NewFromInt(200000),
		ShowPrices:    true,
	}

	for _, showPrices := range []bool{true, false} {
		doc.ShowPrices = showPrices
		out, err := gen.GenerateDocumentPDF(context.Background(), doc)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	}
}
