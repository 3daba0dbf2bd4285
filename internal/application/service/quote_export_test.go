package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/konnekit/orcamentos-api/internal/config"
	"github.com/konnekit/orcamentos-api/internal/domain/entity"
	"github.com/konnekit/orcamentos-api/internal/domain/enum"
)

// 1x1 transparent PNG
const tinyPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func tinyPNGDataURI() string {
	return "data:image/png;base64," + tinyPNGBase64
}

func testCompanyConfig() *config.CompanyConfig {
	return &config.CompanyConfig{
		Name:         "KONNEKIT GESTÃO DE TI",
		City:         "São João da Boa Vista",
		AddressLine1: "Rua Dr. Teófilo Ribeiro de Andrade, 308",
		AddressLine2: "Edifício Trade Center – Sala 13 - Centro",
		AddressLine3: "São João da Boa Vista - SP - CEP 13870-210",
		Phone:        "(19) 3633-5771 | (19) 99119-1186",
		Email:        "contato@konnekit.com.br",
		Website:      "www.konnekit.com.br",
	}
}

func testQuoteConfig() *config.QuoteConfig {
	return &config.QuoteConfig{MinimumWage: 1412.00, ValidityDays: 30}
}

func TestQuoteFileName(t *testing.T) {
	got := QuoteFileName("PANCINI")
	want := "Orçamento de Equipamentos de Rede - PANCINI.pdf"
	if got != want {
		t.Errorf("QuoteFileName() = %q, want %q", got, want)
	}
}

func TestBuildQuoteExportData(t *testing.T) {
	imageURI := tinyPNGDataURI()
	quote := &entity.Quote{
		ClientName:     "PANCINI",
		LaborCost:      500,
		MonthlyService: enum.MonthlyServiceOne,
		Items: []entity.QuoteItem{
			{Description: "Switch 24 portas", ImageURL: &imageURI, Quantity: 2, UnitPrice: 105, Position: 0},
			{Description: "Firewall", Quantity: 1, UnitPrice: 2920, Position: 1},
		},
	}

	now := time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)
	data := BuildQuoteExportData(quote, testCompanyConfig(), testQuoteConfig(), now, DefaultImageLoader(nil))

	if data.Title != "ORÇAMENTO DE EQUIPAMENTOS DE REDE" {
		t.Errorf("Title = %q", data.Title)
	}
	if data.ClientName != "PANCINI" {
		t.Errorf("ClientName = %q", data.ClientName)
	}
	if want := "São João da Boa Vista, 2 de janeiro de 2026"; data.DateLine != want {
		t.Errorf("DateLine = %q, want %q", data.DateLine, want)
	}
	if want := "Este orçamento tem validade de 30 dias."; data.ValidityNote != want {
		t.Errorf("ValidityNote = %q, want %q", data.ValidityNote, want)
	}
	if want := "Monitoramento, suporte e manutenção mensal: 1 salário mínimo"; data.MonthlyServiceNote != want {
		t.Errorf("MonthlyServiceNote = %q, want %q", data.MonthlyServiceNote, want)
	}
	if data.ProductsTotal != "R$ 3.130,00" {
		t.Errorf("ProductsTotal = %q, want %q", data.ProductsTotal, "R$ 3.130,00")
	}
	if data.LaborCost != "R$ 500,00" {
		t.Errorf("LaborCost = %q, want %q", data.LaborCost, "R$ 500,00")
	}
	if data.GrandTotal != "R$ 3.630,00" {
		t.Errorf("GrandTotal = %q, want %q", data.GrandTotal, "R$ 3.630,00")
	}
	if data.FileName != "Orçamento de Equipamentos de Rede - PANCINI.pdf" {
		t.Errorf("FileName = %q", data.FileName)
	}
	if len(data.FooterLines) != 6 {
		t.Fatalf("len(FooterLines) = %d, want 6", len(data.FooterLines))
	}

	if len(data.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(data.Rows))
	}
	if !data.Rows[0].HasImage() {
		t.Error("Rows[0] should carry decoded image bytes")
	}
	if data.Rows[1].HasImage() {
		t.Error("Rows[1] should have no image")
	}
	if data.Rows[0].LineTotal != "R$ 210,00" {
		t.Errorf("Rows[0].LineTotal = %q, want %q", data.Rows[0].LineTotal, "R$ 210,00")
	}
	if data.Rows[1].UnitPrice != "R$ 2.920,00" {
		t.Errorf("Rows[1].UnitPrice = %q, want %q", data.Rows[1].UnitPrice, "R$ 2.920,00")
	}
}

func TestBuildQuoteExportData_NoMonthlyService(t *testing.T) {
	quote := &entity.Quote{
		ClientName:     "ACME",
		MonthlyService: enum.MonthlyServiceNone,
		Items: []entity.QuoteItem{
			{Description: "Roteador", Quantity: 1, UnitPrice: 350},
		},
	}

	data := BuildQuoteExportData(quote, testCompanyConfig(), testQuoteConfig(), time.Now(), nil)

	if want := "Monitoramento, suporte e manutenção mensal: "; data.MonthlyServiceNote != want {
		t.Errorf("MonthlyServiceNote = %q, want %q", data.MonthlyServiceNote, want)
	}
	if data.LaborCost != "R$ 0,00" {
		t.Errorf("LaborCost = %q, want %q", data.LaborCost, "R$ 0,00")
	}
}

func TestDecodeDataURI(t *testing.T) {
	tests := []struct {
		name   string
		uri    string
		wantOK bool
	}{
		{"valid png", tinyPNGDataURI(), true},
		{"valid jpeg header", "data:image/jpeg;base64," + tinyPNGBase64, true},
		{"no comma", "data:image/png;base64", false},
		{"not base64 encoded", "data:image/png,rawdata", false},
		{"unsupported mime", "data:image/webp;base64," + tinyPNGBase64, false},
		{"broken base64", "data:image/png;base64,!!!!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, _, ok := decodeDataURI(tt.uri)
			if ok != tt.wantOK {
				t.Errorf("decodeDataURI(%q) ok = %v, want %v", tt.uri, ok, tt.wantOK)
			}
			if ok && len(data) == 0 {
				t.Error("decodeDataURI() returned empty bytes with ok=true")
			}
		})
	}
}

func TestDefaultImageLoader_UnknownScheme(t *testing.T) {
	load := DefaultImageLoader(nil)
	if _, _, ok := load("ftp://example.com/image.png"); ok {
		t.Error("unknown scheme should not resolve")
	}
	if _, _, ok := load(""); ok {
		t.Error("empty url should not resolve")
	}
}

func TestGenerateQuotePDF(t *testing.T) {
	png, err := base64.StdEncoding.DecodeString(tinyPNGBase64)
	if err != nil {
		t.Fatalf("decoding test image: %v", err)
	}

	data := &QuoteExportData{
		CompanyName: "KONNEKIT GESTÃO DE TI",
		Title:       DocumentTitle,
		ClientName:  "PANCINI",
		DateLine:    "São João da Boa Vista, 2 de janeiro de 2026",
		Rows: []QuoteExportRow{
			{Image: png, ImageExt: "png", Description: "Switch 24 portas", UnitPrice: "R$ 105,00", Quantity: 2, LineTotal: "R$ 210,00"},
			{Description: "Firewall", UnitPrice: "R$ 2.920,00", Quantity: 1, LineTotal: "R$ 2.920,00"},
		},
		ValidityNote:       "Este orçamento tem validade de 30 dias.",
		MonthlyServiceNote: "Monitoramento, suporte e manutenção mensal: 1 salário mínimo",
		ProductsTotal:      "R$ 3.130,00",
		LaborCost:          "R$ 500,00",
		GrandTotal:         "R$ 3.630,00",
		FooterLines:        []string{"Rua Dr. Teófilo Ribeiro de Andrade, 308", "contato@konnekit.com.br"},
		FileName:           "Orçamento de Equipamentos de Rede - PANCINI.pdf",
	}

	result, err := GenerateQuotePDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty bytes")
	}
	if !strings.HasPrefix(string(result[:5]), "%PDF-") {
		t.Error("result does not start with PDF header")
	}
}

func TestGenerateQuotePDF_NoRows(t *testing.T) {
	data := &QuoteExportData{
		CompanyName: "KONNEKIT GESTÃO DE TI",
		Title:       DocumentTitle,
		ClientName:  "ACME",
		Rows:        nil,
	}

	result, err := GenerateQuotePDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty bytes")
	}
}

func TestQuoteExportService_ExportPDF(t *testing.T) {
	quoteRepo := newFakeQuoteRepo()
	quote := &entity.Quote{
		ClientName:     "PANCINI",
		LaborCost:      500,
		MonthlyService: enum.MonthlyServiceOne,
		Items: []entity.QuoteItem{
			{Description: "Switch 24 portas", Quantity: 2, UnitPrice: 105},
		},
	}
	if err := quoteRepo.CreateWithItems(context.Background(), quote); err != nil {
		t.Fatalf("seeding quote: %v", err)
	}

	svc := NewQuoteExportService(quoteRepo, testCompanyConfig(), testQuoteConfig(), nil)
	svc.now = func() time.Time {
		return time.Date(2026, time.January, 2, 12, 0, 0, 0, time.UTC)
	}

	pdf, fileName, err := svc.ExportPDF(context.Background(), quote.ID)
	if err != nil {
		t.Fatalf("ExportPDF() error = %v", err)
	}
	if fileName != "Orçamento de Equipamentos de Rede - PANCINI.pdf" {
		t.Errorf("fileName = %q", fileName)
	}
	if !strings.HasPrefix(string(pdf[:5]), "%PDF-") {
		t.Error("result does not start with PDF header")
	}
}

func TestQuoteExportService_NotFound(t *testing.T) {
	svc := NewQuoteExportService(newFakeQuoteRepo(), testCompanyConfig(), testQuoteConfig(), nil)

	_, _, err := svc.ExportPDF(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("ExportPDF() expected not found error, got nil")
	}
}
