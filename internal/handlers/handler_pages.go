package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/smart_converter/internal/catalog"
	"github.com/SscSPs/smart_converter/internal/core/domain"
	portssvc "github.com/SscSPs/smart_converter/internal/core/ports/services"
	"github.com/SscSPs/smart_converter/internal/dto"
	"github.com/SscSPs/smart_converter/internal/middleware"
	"github.com/SscSPs/smart_converter/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const (
	unitConverterPath     = "/unit-converter"
	currencyConverterPath = "/currency-converter"
	zakatCalculatorPath   = "/zakat-calculator"
	historyPath           = "/history"

	invalidUnitConversion = "Invalid conversion! Check units."
	emptyHistoryMessage   = "No conversions yet. Start converting!"
)

type navItem struct {
	Label string
	Path  string
}

var navigation = []navItem{
	{Label: "Unit Converter", Path: unitConverterPath},
	{Label: "Currency Converter", Path: currencyConverterPath},
	{Label: "Zakat Calculator", Path: zakatCalculatorPath},
	{Label: "Conversion History", Path: historyPath},
}

// page is the data shared by every HTML page.
type page struct {
	Title   string
	Active  string
	Nav     []navItem
	Success string
	Error   string
	Detail  string
}

func newPage(title, active string) page {
	return page{Title: title, Active: active, Nav: navigation}
}

type unitPage struct {
	page
	Categories []catalog.Category
	Category   catalog.Category
	FromUnit   string
	ToUnit     string
	Value      string
}

type currencyPage struct {
	page
	Currencies   []string
	FromCurrency string
	ToCurrency   string
	Amount       string
}

type zakatPage struct {
	page
	Wealth string
}

type historyPage struct {
	page
	Entries []domain.HistoryEntry
	Empty   string
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.tmpl"))
}

// pageHandler renders the server-side converter pages.
type pageHandler struct {
	units    *unitHandler
	currency *currencyHandler
	zakat    portssvc.ZakatSvc
	history  portssvc.HistorySvcFacade
}

func registerPageRoutes(r *gin.Engine, services *portssvc.ServiceContainer, baseCurrency string) {
	h := &pageHandler{
		units:    newUnitHandler(services.Unit, services.History),
		currency: newCurrencyHandler(services.Currency, services.History, baseCurrency),
		zakat:    services.Zakat,
		history:  services.History,
	}

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, unitConverterPath)
	})
	r.GET(unitConverterPath, h.unitConverter)
	r.POST(unitConverterPath, h.convertUnits)
	r.GET(currencyConverterPath, h.currencyConverter)
	r.POST(currencyConverterPath, h.convertCurrency)
	r.GET(zakatCalculatorPath, h.zakatCalculator)
	r.POST(zakatCalculatorPath, h.calculateZakat)
	r.GET(historyPath, h.conversionHistory)
}

func (h *pageHandler) newUnitPage(c *gin.Context, label string) unitPage {
	p := unitPage{
		page:       newPage("🔁 Unit Converter", unitConverterPath),
		Categories: h.units.unitService.ListCategories(c.Request.Context()),
		Value:      "0",
	}
	if len(p.Categories) > 0 {
		p.Category = p.Categories[0]
	}
	if label != "" {
		if cat, err := h.units.unitService.GetCategory(c.Request.Context(), label); err == nil {
			p.Category = cat
		}
	}
	if len(p.Category.Units) > 0 {
		p.FromUnit = p.Category.Units[0]
		p.ToUnit = p.Category.Units[0]
	}
	return p
}

func (h *pageHandler) unitConverter(c *gin.Context) {
	c.HTML(http.StatusOK, "unit_converter.tmpl", h.newUnitPage(c, c.Query("category")))
}

func (h *pageHandler) convertUnits(c *gin.Context) {
	p := h.newUnitPage(c, c.PostForm("category"))

	var req dto.ConvertUnitsRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind form for ConvertUnits", slog.String("error", err.Error()))
		p.Error = invalidUnitConversion
		p.Detail = "Enter a number and pick both units."
		c.HTML(http.StatusBadRequest, "unit_converter.tmpl", p)
		return
	}
	// req.Category keeps the posted label so an unknown category is rejected
	p.FromUnit = req.FromUnit
	p.ToUnit = req.ToUnit
	p.Value = utils.FormatInput(req.Value)

	conv, err := h.units.convert(c, req)
	if err != nil {
		middleware.GetLoggerFromContext(c).Warn("Unit conversion failed", slog.String("error", err.Error()))
		p.Error = invalidUnitConversion
		p.Detail = errorMessage(err)
		c.HTML(statusForError(err), "unit_converter.tmpl", p)
		return
	}

	p.Success = conv.Text
	c.HTML(http.StatusOK, "unit_converter.tmpl", p)
}

func (h *pageHandler) newCurrencyPage(c *gin.Context) currencyPage {
	currencies := h.currency.currencyService.ListCurrencies(c.Request.Context())
	p := currencyPage{
		page:       newPage("💵 Currency Converter", currencyConverterPath),
		Currencies: currencies,
		Amount:     "0",
	}
	if len(currencies) > 0 {
		p.FromCurrency = currencies[0]
		p.ToCurrency = currencies[0]
	}
	return p
}

func (h *pageHandler) currencyConverter(c *gin.Context) {
	c.HTML(http.StatusOK, "currency_converter.tmpl", h.newCurrencyPage(c))
}

func (h *pageHandler) convertCurrency(c *gin.Context) {
	p := h.newCurrencyPage(c)
	p.FromCurrency = strings.ToUpper(c.PostForm("from_currency"))
	p.ToCurrency = strings.ToUpper(c.PostForm("to_currency"))
	p.Amount = c.PostForm("amount")

	amount, err := parseDecimalField(p.Amount)
	if err != nil {
		p.Error = "Enter a valid amount."
		c.HTML(http.StatusBadRequest, "currency_converter.tmpl", p)
		return
	}

	conv, err := h.currency.convert(c, dto.ConvertCurrencyRequest{
		Amount:           amount,
		FromCurrencyCode: p.FromCurrency,
		ToCurrencyCode:   p.ToCurrency,
	})
	if err != nil {
		middleware.GetLoggerFromContext(c).Warn("Currency conversion failed", slog.String("error", err.Error()))
		p.Error = errorMessage(err)
		c.HTML(statusForError(err), "currency_converter.tmpl", p)
		return
	}

	p.Amount = conv.Amount.String()
	p.Success = conv.Text
	c.HTML(http.StatusOK, "currency_converter.tmpl", p)
}

func (h *pageHandler) zakatCalculator(c *gin.Context) {
	c.HTML(http.StatusOK, "zakat_calculator.tmpl", zakatPage{
		page:   newPage("🕌 Zakat Calculator", zakatCalculatorPath),
		Wealth: "0.00",
	})
}

func (h *pageHandler) calculateZakat(c *gin.Context) {
	p := zakatPage{
		page:   newPage("🕌 Zakat Calculator", zakatCalculatorPath),
		Wealth: c.PostForm("wealth"),
	}

	wealth, err := parseDecimalField(p.Wealth)
	if err != nil {
		p.Error = "Enter a valid amount."
		c.HTML(http.StatusBadRequest, "zakat_calculator.tmpl", p)
		return
	}

	assessment := h.zakat.CalculateZakat(c.Request.Context(), wealth)
	p.Success = dto.ToZakatResponse(assessment).Text
	c.HTML(http.StatusOK, "zakat_calculator.tmpl", p)
}

func (h *pageHandler) conversionHistory(c *gin.Context) {
	sessionID, _ := middleware.GetSessionIDFromContext(c)
	c.HTML(http.StatusOK, "history.tmpl", historyPage{
		page:    newPage("📜 Conversion History", historyPath),
		Entries: h.history.ListHistory(c.Request.Context(), sessionID),
		Empty:   emptyHistoryMessage,
	})
}

// parseDecimalField reads a form number; an empty field is zero.
func parseDecimalField(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}
