package service

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/konnekit/orcamentos-api/internal/config"
	"github.com/konnekit/orcamentos-api/internal/domain/entity"
	"github.com/konnekit/orcamentos-api/pkg/money"
)

const (
	// DocumentTitle is the fixed heading printed on every quote document.
	DocumentTitle = "ORÇAMENTO DE EQUIPAMENTOS DE REDE"

	// exportBaseName is the title-cased document name used for export files.
	exportBaseName = "Orçamento de Equipamentos de Rede"

	// NoImagePlaceholder is rendered in place of a missing or unloadable
	// product image; a cell is never left blank.
	NoImagePlaceholder = "Sem imagem"
)

// QuoteFileName builds the deterministic export file name for a quote.
func QuoteFileName(clientName string) string {
	return fmt.Sprintf("%s - %s.pdf", exportBaseName, clientName)
}

// QuoteExportRow is one rendered line of the quote item table. All
// monetary fields are pre-formatted strings.
type QuoteExportRow struct {
	Image       []byte
	ImageExt    extension.Type
	Description string
	UnitPrice   string
	Quantity    int
	LineTotal   string
}

// HasImage reports whether the row carries embeddable image bytes.
func (r *QuoteExportRow) HasImage() bool {
	return len(r.Image) > 0
}

// QuoteExportData is the complete content model of a quote document.
// Both the on-screen preview payload and the PDF exporter consume this
// same model so the two targets cannot drift apart.
type QuoteExportData struct {
	CompanyName        string
	Title              string
	ClientName         string
	DateLine           string
	Rows               []QuoteExportRow
	ValidityNote       string
	MonthlyServiceNote string
	ProductsTotal      string
	LaborCost          string
	GrandTotal         string
	FooterLines        []string
	FileName           string
}

// ImageLoader resolves a product image reference into raw bytes and an
// image extension. Returning ok=false renders the placeholder instead.
type ImageLoader func(url string) (data []byte, ext extension.Type, ok bool)

// BuildQuoteExportData flattens a quote snapshot into the document
// content model. It performs no I/O beyond the supplied image loader
// and never mutates the quote.
func BuildQuoteExportData(quote *entity.Quote, company *config.CompanyConfig, quoteCfg *config.QuoteConfig, now time.Time, loadImage ImageLoader) *QuoteExportData {
	rows := make([]QuoteExportRow, 0, len(quote.Items))
	for i := range quote.Items {
		item := &quote.Items[i]
		row := QuoteExportRow{
			Description: item.Description,
			UnitPrice:   money.FormatBRL(item.UnitPrice),
			Quantity:    item.Quantity,
			LineTotal:   money.FormatBRL(item.LineTotal()),
		}
		if item.ImageURL != nil && *item.ImageURL != "" && loadImage != nil {
			if data, ext, ok := loadImage(*item.ImageURL); ok {
				row.Image = data
				row.ImageExt = ext
			}
		}
		rows = append(rows, row)
	}

	return &QuoteExportData{
		CompanyName:        company.Name,
		Title:              DocumentTitle,
		ClientName:         quote.ClientName,
		DateLine:           fmt.Sprintf("%s, %s", company.City, money.FormatLongDate(now)),
		Rows:               rows,
		ValidityNote:       fmt.Sprintf("Este orçamento tem validade de %d dias.", quoteCfg.ValidityDays),
		MonthlyServiceNote: fmt.Sprintf("Monitoramento, suporte e manutenção mensal: %s", quote.MonthlyService.Label()),
		ProductsTotal:      money.FormatBRL(quote.ProductsTotal()),
		LaborCost:          money.FormatBRL(quote.LaborCost),
		GrandTotal:         money.FormatBRL(quote.GrandTotal()),
		FooterLines: []string{
			company.AddressLine1,
			company.AddressLine2,
			company.AddressLine3,
			company.Phone,
			company.Email,
			company.Website,
		},
		FileName: QuoteFileName(quote.ClientName),
	}
}

// DefaultImageLoader decodes embedded data-URI images and fetches
// http(s) image URLs with a short timeout. Any failure degrades to the
// placeholder rather than propagating.
func DefaultImageLoader(client *http.Client) ImageLoader {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return func(url string) ([]byte, extension.Type, bool) {
		switch {
		case strings.HasPrefix(url, "data:image/"):
			return decodeDataURI(url)
		case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
			return fetchImage(client, url)
		}
		return nil, "", false
	}
}

// decodeDataURI decodes a base64 "data:image/...;base64," URI.
func decodeDataURI(uri string) ([]byte, extension.Type, bool) {
	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return nil, "", false
	}
	header := uri[:comma]
	if !strings.Contains(header, ";base64") {
		return nil, "", false
	}

	ext, ok := imageExtension(header)
	if !ok {
		return nil, "", false
	}

	data, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil || len(data) == 0 {
		return nil, "", false
	}
	return data, ext, true
}

func fetchImage(client *http.Client, url string) ([]byte, extension.Type, bool) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", false
	}

	ext, ok := imageExtension(resp.Header.Get("Content-Type"))
	if !ok {
		return nil, "", false
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil || len(data) == 0 {
		return nil, "", false
	}
	return data, ext, true
}

// imageExtension maps a MIME hint to a supported maroto image type.
func imageExtension(mime string) (extension.Type, bool) {
	switch {
	case strings.Contains(mime, "image/png"):
		return extension.Png, true
	case strings.Contains(mime, "image/jpeg"), strings.Contains(mime, "image/jpg"):
		return extension.Jpg, true
	}
	return "", false
}
