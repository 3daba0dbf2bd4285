package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/konnekit/orcamentos-api/internal/application/service"
	"github.com/konnekit/orcamentos-api/internal/domain/enum"
	"github.com/konnekit/orcamentos-api/internal/presentation/http/dto/request"
	"github.com/konnekit/orcamentos-api/internal/presentation/http/dto/response"
	"github.com/konnekit/orcamentos-api/pkg/pagination"
)

// QuoteHandler handles quote-related HTTP requests
type QuoteHandler struct {
	quoteService  *service.QuoteService
	exportService *service.QuoteExportService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService, exportService *service.QuoteExportService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService, exportService: exportService}
}

// List handles listing quotes with optional client filtering
func (h *QuoteHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")

	input := &service.ListQuotesInput{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: search,
	}

	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		input.ClientID = &clientID
	}

	result, err := h.quoteService.ListQuotes(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotes retrieved successfully", result)
}

// Create handles creating a quote with its line items
func (h *QuoteHandler) Create(c *gin.Context) {
	var req request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), &service.CreateQuoteInput{
		ClientID:       req.ClientID,
		Items:          toItemInputs(req.Items),
		LaborCost:      req.LaborCost,
		MonthlyService: enum.MonthlyServiceTier(req.MonthlyService),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote created successfully", quote)
}

// Get handles getting a single quote with its items
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote retrieved successfully", quote)
}

// Update handles replacing a quote's mutable fields and item list
func (h *QuoteHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quote, err := h.quoteService.UpdateQuote(c.Request.Context(), &service.UpdateQuoteInput{
		ID:             id,
		ClientID:       req.ClientID,
		Items:          toItemInputs(req.Items),
		LaborCost:      req.LaborCost,
		MonthlyService: enum.MonthlyServiceTier(req.MonthlyService),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote updated successfully", quote)
}

// Delete handles deleting a quote and its items
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ExportData handles returning the rendered document content model,
// used by clients to preview the quote before downloading.
func (h *QuoteHandler) ExportData(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	data, err := h.exportService.ExportData(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote export data retrieved successfully", data)
}

// ExportPDF handles downloading the quote as a PDF document
func (h *QuoteHandler) ExportPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	pdf, fileName, err := h.exportService.ExportPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(200, "application/pdf", pdf)
}

func toItemInputs(items []request.QuoteItemRequest) []service.QuoteItemInput {
	inputs := make([]service.QuoteItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.QuoteItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return inputs
}
