package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"elective/internal/model"
)

// MockAddressRepository is a mock implementation of repository.AddressRepository.
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) List(ctx context.Context) ([]model.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Address), args.Error(1)
}

func (m *MockAddressRepository) Create(ctx context.Context, address *model.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *MockAddressRepository) Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, columns)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type testValidator struct {
	v *validator.Validate
}

func (t *testValidator) Validate(i interface{}) error {
	return t.v.Struct(i)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e
}

func strptr(s string) *string { return &s }

func sampleAddress(id uint) model.Address {
	return model.Address{
		AddressID:           id,
		NumberBuilding:      strptr("123"),
		Street:              strptr("Main St"),
		City:                strptr("Anytown"),
		ZipPostcode:         strptr("12345"),
		StateProvinceCounty: strptr("State"),
		Country:             strptr("Country"),
	}
}

func TestAddressList_Empty(t *testing.T) {
	e := newEcho()
	repo := new(MockAddressRepository)
	repo.On("List", mock.Anything).Return([]model.Address{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/addresses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAddressHandler(repo, zerolog.Nop())
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No addresses found")
}

func TestAddressList_ReturnsAllRows(t *testing.T) {
	e := newEcho()
	repo := new(MockAddressRepository)
	repo.On("List", mock.Anything).Return([]model.Address{sampleAddress(1), sampleAddress(2)}, nil)

	req := httptest.NewRequest(http.MethodGet, "/addresses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAddressHandler(repo, zerolog.Nop())
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, float64(1), got[0]["address_id"])
	assert.Equal(t, "Main St", got[0]["street"])
	assert.Equal(t, "12345", got[0]["zip_postcode"])
}

func TestAddressList_StoreFailure(t *testing.T) {
	e := newEcho()
	repo := new(MockAddressRepository)
	repo.On("List", mock.Anything).Return(nil, errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/addresses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAddressHandler(repo, zerolog.Nop())
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAddressCreate_Success(t *testing.T) {
	e := newEcho()
	repo := new(MockAddressRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Address")).Return(nil)

	body := `{"number_building":"123","street":"Main St","city":"Anytown","zip_postcode":"12345","state_province_county":"State","country":"Country"}`
	req := httptest.NewRequest(http.MethodPost, "/addresses", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAddressHandler(repo, zerolog.Nop())
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Address added successfully")
	repo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*model.Address"))
}

func TestAddressCreate_MissingField(t *testing.T) {
	e := newEcho()
	repo := new(MockAddressRepository)

	body := `{"number_building":"123","street":"Main St"}`
	req := httptest.NewRequest(http.MethodPost, "/addresses", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAddressHandler(repo, zerolog.Nop())
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddressUpdate_OmittedFieldsOverwriteToNull(t *testing.T) {
	e := newEcho()
	repo := new(MockAddressRepository)

	var captured map[string]interface{}
	repo.On("Update", mock.Anything, uint(1), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(map[string]interface{})
		}).
		Return(int64(1), nil)

	body := `{"street":"Updated St"}`
	req := httptest.NewRequest(http.MethodPut, "/addresses/1", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewAddressHandler(repo, zerolog.Nop())
	require.NoError(t, h.Update(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Address updated successfully")

	// Every column is listed; the supplied one carries its value, the rest
	// are nil pointers that overwrite to NULL.
	require.Len(t, captured, 6)
	assert.Equal(t, "Updated St", *(captured["street"].(*string)))
	assert.Nil(t, captured["city"].(*string))
}

func TestAddressUpdate_NoRowsAffected(t *testing.T) {
	e := newEcho()
	repo := new(MockAddressRepository)
	repo.On("Update", mock.Anything, uint(99), mock.Anything).Return(int64(0), nil)

	req := httptest.NewRequest(http.MethodPut, "/addresses/99", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	h := NewAddressHandler(repo, zerolog.Nop())
	require.NoError(t, h.Update(c))

	// A missing row and a store failure are deliberately indistinguishable.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to update address")
}

func TestAddressDelete_Success(t *testing.T) {
	e := newEcho()
	repo := new(MockAddressRepository)
	repo.On("Delete", mock.Anything, uint(1)).Return(int64(1), nil)

	req := httptest.NewRequest(http.MethodDelete, "/addresses/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewAddressHandler(repo, zerolog.Nop())
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Address deleted successfully")
}

func TestAddressDelete_InvalidID(t *testing.T) {
	e := newEcho()
	repo := new(MockAddressRepository)

	req := httptest.NewRequest(http.MethodDelete, "/addresses/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	h := NewAddressHandler(repo, zerolog.Nop())
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
