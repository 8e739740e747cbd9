package get_addon

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/logger"
)

type stubCatalog struct {
	addOn *domain.AddOn
	err   error
}

func (s stubCatalog) GetAddOn(context.Context, string) (*domain.AddOn, error) {
	return s.addOn, s.err
}

func serve(h *Handler) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/addons/{addOnId}", h.Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/addons/lash-bath", nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	rec := serve(NewHandler(stubCatalog{addOn: &domain.AddOn{ID: "lash-bath", Name: "Lash Bath"}}, logger.NewNop()))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Lash Bath"`)

	rec = serve(NewHandler(stubCatalog{err: domain.ErrAddOnNotFound}, logger.NewNop()))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(NewHandler(stubCatalog{err: errors.New("timeout")}, logger.NewNop()))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"internal_error"`)
}
