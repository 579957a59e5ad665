package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/smart_converter/internal/apperrors"
	"github.com/SscSPs/smart_converter/internal/catalog"
	"github.com/SscSPs/smart_converter/internal/core/domain"
	portssvc "github.com/SscSPs/smart_converter/internal/core/ports/services"
	"github.com/SscSPs/smart_converter/internal/core/services"
	"github.com/SscSPs/smart_converter/internal/dto"
	"github.com/SscSPs/smart_converter/internal/handlers"
	"github.com/SscSPs/smart_converter/internal/middleware"
	"github.com/SscSPs/smart_converter/internal/platform/config"
	"github.com/SscSPs/smart_converter/pkg/units"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockCurrencyService) GetRates(ctx context.Context) (*domain.RateSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}

func (m *MockCurrencyService) ConvertCurrency(ctx context.Context, req dto.ConvertCurrencyRequest) (*domain.CurrencyConversion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyConversion), args.Error(1)
}

func (m *MockCurrencyService) RefreshRates(ctx context.Context) (*domain.RateSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}

// --- Test Suite Setup ---
type HandlersTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCurrencySvc *MockCurrencyService
	history         portssvc.HistorySvcFacade
	cfg             *config.Config
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cat, err := catalog.Default()
	suite.Require().NoError(err)

	suite.cfg = &config.Config{
		IsProduction:       true, // no swagger routes in tests
		RatesBaseCurrency:  "USD",
		SessionCookieName:  "sc_session",
		SessionSecret:      "test-session-secret",
		SessionIdleTimeout: time.Hour,
	}
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.mockCurrencySvc.On("ListCurrencies", mock.Anything).
		Return([]string{"USD", "EUR", "INR", "PKR", "BDT", "CNY"}).Maybe()
	suite.history = services.NewHistoryService(10, 0, time.Hour)

	container := &portssvc.ServiceContainer{
		Unit:     services.NewUnitService(units.Default(), cat),
		Currency: suite.mockCurrencySvc,
		Zakat:    services.NewZakatService(),
		History:  suite.history,
	}

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(logger))
	suite.router.Use(middleware.Session(handlers.SessionConfigFromConfig(suite.cfg))...)
	handlers.RegisterRoutes(suite.router, suite.cfg, container)
}

func (suite *HandlersTestSuite) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)
	return rr
}

func (suite *HandlersTestSuite) postJSON(path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return suite.do(req, cookies...)
}

func (suite *HandlersTestSuite) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return suite.do(req, cookies...)
}

func (suite *HandlersTestSuite) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	return suite.do(req, cookies...)
}

func (suite *HandlersTestSuite) sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == suite.cfg.SessionCookieName {
			return c
		}
	}
	suite.FailNow("session cookie not set")
	return nil
}

// historyOf lists the history of the session carried by cookie.
func (suite *HandlersTestSuite) historyOf(cookie *http.Cookie) []domain.HistoryEntry {
	rr := suite.get("/api/v1/history", cookie)
	suite.Require().Equal(http.StatusOK, rr.Code)
	var resp dto.HistoryResponse
	suite.decode(rr, &resp)
	return resp.Entries
}

func (suite *HandlersTestSuite) decode(rr *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

// --- Test Cases ---

func (suite *HandlersTestSuite) TestHealth() {
	rr := suite.get("/health")
	suite.Equal(http.StatusOK, rr.Code)
	suite.Equal("OK", rr.Body.String())
}

func (suite *HandlersTestSuite) TestCatalog() {
	rr := suite.get("/api/v1/catalog/units")
	suite.Require().Equal(http.StatusOK, rr.Code)
	var categories []dto.CategoryResponse
	suite.decode(rr, &categories)
	suite.Require().Len(categories, 9)
	suite.Equal("Length", categories[0].Label)
	suite.Equal("📏 Length", categories[0].Display)

	rr = suite.get("/api/v1/catalog/currencies")
	suite.Require().Equal(http.StatusOK, rr.Code)
	var currencies dto.ListCurrenciesResponse
	suite.decode(rr, &currencies)
	suite.Equal([]string{"USD", "EUR", "INR", "PKR", "BDT", "CNY"}, currencies.Currencies)
}

func (suite *HandlersTestSuite) TestConvertUnits_RecordsHistory() {
	rr := suite.postJSON("/api/v1/units/convert", gin.H{"value": 1, "fromUnit": "kilometer", "toUnit": "meter"})
	suite.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

	var resp dto.UnitConversionResponse
	suite.decode(rr, &resp)
	suite.Equal("1000", resp.Formatted)
	suite.Equal("1 kilometer = 1000 meter", resp.Text)

	cookie := suite.sessionCookie(rr)
	rr = suite.get("/api/v1/history", cookie)
	suite.Require().Equal(http.StatusOK, rr.Code)
	var history dto.HistoryResponse
	suite.decode(rr, &history)
	suite.Require().Len(history.Entries, 1)
	suite.Equal("1 kilometer = 1000 meter", history.Entries[0].Text)
	suite.Equal(domain.UnitConversionKind, history.Entries[0].Kind)
}

func (suite *HandlersTestSuite) TestConvertUnits_Incompatible() {
	rr := suite.postJSON("/api/v1/units/convert", gin.H{"value": 5, "fromUnit": "meter", "toUnit": "second"})

	suite.Equal(http.StatusUnprocessableEntity, rr.Code)
	var body map[string]string
	suite.decode(rr, &body)
	suite.Equal("Cannot convert from 'meter' ([length]) to 'second' ([time])", body["error"])

	// failures are not recorded
	rr = suite.get("/api/v1/history", suite.sessionCookie(rr))
	var history dto.HistoryResponse
	suite.decode(rr, &history)
	suite.Empty(history.Entries)
}

func (suite *HandlersTestSuite) TestConvertUnits_BadRequest() {
	rr := suite.postJSON("/api/v1/units/convert", gin.H{"value": 5, "fromUnit": "meter"})
	suite.Equal(http.StatusBadRequest, rr.Code)

	rr = suite.postJSON("/api/v1/units/convert", gin.H{"value": 5, "fromUnit": "meter", "toUnit": "gram", "category": "Length"})
	suite.Equal(http.StatusBadRequest, rr.Code)
}

func (suite *HandlersTestSuite) TestConvertCurrency() {
	req := dto.ConvertCurrencyRequest{
		Amount:           decimal.NewFromInt(100),
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "PKR",
	}
	conv := &domain.CurrencyConversion{
		Amount:           req.Amount,
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "PKR",
		FromRate:         1,
		ToRate:           278.5,
		Converted:        decimal.RequireFromString("27850"),
		Text:             "100 USD = 27850 PKR",
	}
	suite.mockCurrencySvc.On("ConvertCurrency", mock.Anything, mock.MatchedBy(func(r dto.ConvertCurrencyRequest) bool {
		return r.Amount.Equal(req.Amount) && r.FromCurrencyCode == "USD" && r.ToCurrencyCode == "PKR"
	})).Return(conv, nil).Once()

	rr := suite.postJSON("/api/v1/currency/convert", gin.H{"amount": 100, "fromCurrency": "USD", "toCurrency": "PKR"})

	suite.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	var resp dto.CurrencyConversionResponse
	suite.decode(rr, &resp)
	suite.Equal("100 USD = 27850 PKR", resp.Text)
	suite.True(decimal.RequireFromString("278.5").Equal(resp.Rate))

	history := suite.historyOf(suite.sessionCookie(rr))
	suite.Require().Len(history, 1)
	suite.Equal(domain.CurrencyConversionKind, history[0].Kind)
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestConvertCurrency_ErrorMapping() {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: conversion not available for USD to JPY", apperrors.ErrUnsupportedPair), http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: failed to fetch latest rates: timeout", apperrors.ErrRatesUnavailable), http.StatusServiceUnavailable},
		{fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		suite.mockCurrencySvc.On("ConvertCurrency", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

		rr := suite.postJSON("/api/v1/currency/convert", gin.H{"amount": 5, "fromCurrency": "USD", "toCurrency": "JPY"})

		suite.Equal(tc.status, rr.Code, tc.err.Error())
	}
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestConvertCurrency_InvalidCode() {
	rr := suite.postJSON("/api/v1/currency/convert", gin.H{"amount": 5, "fromCurrency": "US1", "toCurrency": "EUR"})

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "ConvertCurrency", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestRates() {
	fetched := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	snap := &domain.RateSnapshot{Rates: domain.RateTable{"USD": 1, "EUR": 0.92}, FetchedAt: fetched}
	suite.mockCurrencySvc.On("GetRates", mock.Anything).Return(snap, nil).Once()
	suite.mockCurrencySvc.On("RefreshRates", mock.Anything).
		Return(nil, fmt.Errorf("%w: dial tcp", apperrors.ErrRatesUnavailable)).Once()

	rr := suite.get("/api/v1/currency/rates")
	suite.Require().Equal(http.StatusOK, rr.Code)
	var resp dto.RateTableResponse
	suite.decode(rr, &resp)
	suite.Equal("USD", resp.BaseCurrencyCode)
	suite.Equal(0.92, resp.Rates["EUR"])
	suite.True(fetched.Equal(resp.FetchedAt))

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/currency/rates/refresh", nil)
	rr = suite.do(req)
	suite.Equal(http.StatusServiceUnavailable, rr.Code)
	suite.Contains(rr.Body.String(), "Exchange rates are currently unavailable")
}

func (suite *HandlersTestSuite) TestZakat() {
	rr := suite.postJSON("/api/v1/zakat", gin.H{"wealth": 1000})

	suite.Require().Equal(http.StatusOK, rr.Code)
	var resp dto.ZakatResponse
	suite.decode(rr, &resp)
	suite.Equal("25.00", resp.Obligation)
	suite.Equal("Your zakat obligation is: 25.00", resp.Text)
}

func (suite *HandlersTestSuite) TestClearHistoryAndEndSession() {
	rr := suite.postJSON("/api/v1/units/convert", gin.H{"value": 2, "fromUnit": "hour", "toUnit": "minute"})
	cookie := suite.sessionCookie(rr)

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/history", nil)
	rr = suite.do(req, cookie)
	suite.Equal(http.StatusNoContent, rr.Code)
	suite.Empty(suite.historyOf(cookie))

	suite.postJSON("/api/v1/units/convert", gin.H{"value": 2, "fromUnit": "hour", "toUnit": "minute"}, cookie)
	req, _ = http.NewRequest(http.MethodDelete, "/api/v1/session", nil)
	rr = suite.do(req, cookie)
	suite.Equal(http.StatusNoContent, rr.Code)
	suite.Empty(suite.historyOf(cookie))

	cookies := rr.Result().Cookies()
	suite.Require().NotEmpty(cookies)
	suite.True(cookies[len(cookies)-1].MaxAge < 0, "session cookie should be expired")
}

func (suite *HandlersTestSuite) TestPages_RootRedirects() {
	rr := suite.get("/")
	suite.Equal(http.StatusFound, rr.Code)
	suite.Equal("/unit-converter", rr.Header().Get("Location"))
}

func (suite *HandlersTestSuite) TestPages_UnitConverter() {
	rr := suite.get("/unit-converter?category=Temperature")
	suite.Require().Equal(http.StatusOK, rr.Code)
	body := rr.Body.String()
	suite.Contains(body, "🌟 Navigator")
	suite.Contains(body, "🔁 Unit Converter")
	suite.Contains(body, `<option value="fahrenheit"`)

	rr = suite.postForm("/unit-converter", url.Values{
		"category":  {"Temperature"},
		"from_unit": {"celsius"},
		"to_unit":   {"fahrenheit"},
		"value":     {"100"},
	})
	suite.Require().Equal(http.StatusOK, rr.Code)
	suite.Contains(rr.Body.String(), "100 celsius = 212 fahrenheit")

	rr = suite.get("/history", suite.sessionCookie(rr))
	suite.Require().Equal(http.StatusOK, rr.Code)
	suite.Contains(rr.Body.String(), "100 celsius = 212 fahrenheit")
}

func (suite *HandlersTestSuite) TestPages_UnitConverterRejectsForeignUnit() {
	rr := suite.postForm("/unit-converter", url.Values{
		"category":  {"Length"},
		"from_unit": {"meter"},
		"to_unit":   {"gram"},
		"value":     {"1"},
	})

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.Contains(rr.Body.String(), "Invalid conversion! Check units.")
}

func (suite *HandlersTestSuite) TestPages_UnitConverterRejectsUnknownCategory() {
	rr := suite.postForm("/unit-converter", url.Values{
		"category":  {"Luminosity"},
		"from_unit": {"meter"},
		"to_unit":   {"foot"},
		"value":     {"1"},
	})

	suite.Equal(http.StatusBadRequest, rr.Code)
	body := rr.Body.String()
	suite.Contains(body, "Invalid conversion! Check units.")
	suite.Contains(body, "unknown category")
	suite.NotContains(body, "is not part of category")
	suite.Empty(suite.historyOf(suite.sessionCookie(rr)))
}

func (suite *HandlersTestSuite) TestPages_CurrencyConverter() {
	suite.mockCurrencySvc.On("ConvertCurrency", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: failed to write rate cache", apperrors.ErrRatesUnavailable)).Once()

	rr := suite.get("/currency-converter")
	suite.Require().Equal(http.StatusOK, rr.Code)
	suite.Contains(rr.Body.String(), `<option value="PKR"`)

	rr = suite.postForm("/currency-converter", url.Values{
		"from_currency": {"USD"},
		"to_currency":   {"EUR"},
		"amount":        {"10"},
	})
	suite.Equal(http.StatusServiceUnavailable, rr.Code)
	suite.Contains(rr.Body.String(), "Exchange rates are currently unavailable")

	rr = suite.postForm("/currency-converter", url.Values{"from_currency": {"USD"}, "to_currency": {"EUR"}, "amount": {"ten"}})
	suite.Equal(http.StatusBadRequest, rr.Code)
}

func (suite *HandlersTestSuite) TestPages_Zakat() {
	rr := suite.postForm("/zakat-calculator", url.Values{"wealth": {"1000"}})

	suite.Require().Equal(http.StatusOK, rr.Code)
	suite.Contains(rr.Body.String(), "Your zakat obligation is: 25.00")
}

func (suite *HandlersTestSuite) TestPages_EmptyHistory() {
	rr := suite.get("/history")

	suite.Require().Equal(http.StatusOK, rr.Code)
	suite.Contains(rr.Body.String(), "No conversions yet. Start converting!")
}

// --- Run Suite ---
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
