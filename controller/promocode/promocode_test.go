package promocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoestore_be/model"
)

type fakeService struct {
	promos    []model.PromoCode
	lastInput model.PromoCodeInput
	lastID    uuid.UUID
	result    model.Result[*model.PromoCode]
	status    model.Status
}

func (f *fakeService) List(ctx context.Context) model.Result[[]model.PromoCode] {
	return model.Ok(f.promos)
}

func (f *fakeService) Get(ctx context.Context, id uuid.UUID) model.Result[*model.PromoCode] {
	f.lastID = id
	return f.result
}

func (f *fakeService) Create(ctx context.Context, in model.PromoCodeInput) model.Result[*model.PromoCode] {
	f.lastInput = in
	return f.result
}

func (f *fakeService) Update(ctx context.Context, id uuid.UUID, in model.PromoCodeInput) model.Result[*model.PromoCode] {
	f.lastID, f.lastInput = id, in
	return f.result
}

func (f *fakeService) Delete(ctx context.Context, id uuid.UUID) model.Status {
	f.lastID = id
	return f.status
}

func (f *fakeService) Options(ctx context.Context) model.Result[[]model.PromoCodeOption] {
	return model.Ok([]model.PromoCodeOption{{Code: "HEMAT", DiscountAmount: 50000}})
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/promo-codes", h.GetAllPromoCodes).Methods("GET")
	r.HandleFunc("/promo-codes", h.CreatePromoCode).Methods("POST")
	r.HandleFunc("/promo-codes/options", h.GetPromoCodeOptions).Methods("GET")
	r.HandleFunc("/promo-codes/{id}", h.GetPromoCodeByID).Methods("GET")
	r.HandleFunc("/promo-codes/{id}", h.UpdatePromoCode).Methods("PUT")
	r.HandleFunc("/promo-codes/{id}", h.DeletePromoCode).Methods("DELETE")
	return r
}

func TestPromoCodeHandlers(t *testing.T) {
	id := uuid.New()
	duplicate := "Promo code already exists"

	testCases := []struct {
		name               string
		svc                *fakeService
		method, path, body string
		expectedStatusCode int
		checkResponse      func(t *testing.T, svc *fakeService, body map[string]any)
	}{
		{
			name:               "list",
			svc:                &fakeService{promos: []model.PromoCode{{ID: id, Code: "HEMAT", DiscountAmount: 50000}}},
			method:             http.MethodGet,
			path:               "/promo-codes",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				data := body["data"].([]any)
				require.Len(t, data, 1)
				assert.Equal(t, "HEMAT", data[0].(map[string]any)["code"])
			},
		},
		{
			name:               "options",
			svc:                &fakeService{},
			method:             http.MethodGet,
			path:               "/promo-codes/options",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				opt := body["data"].([]any)[0].(map[string]any)
				assert.Equal(t, float64(50000), opt["discountAmount"])
			},
		},
		{
			name:               "get",
			svc:                &fakeService{result: model.Ok(&model.PromoCode{ID: id, Code: "HEMAT"})},
			method:             http.MethodGet,
			path:               "/promo-codes/" + id.String(),
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, id, svc.lastID)
				assert.Equal(t, "HEMAT", body["data"].(map[string]any)["code"])
			},
		},
		{
			name:               "create",
			svc:                &fakeService{result: model.Ok(&model.PromoCode{ID: id, Code: "HEMAT", DiscountAmount: 50000})},
			method:             http.MethodPost,
			path:               "/promo-codes",
			body:               `{"code":"hemat","discountAmount":50000}`,
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, model.PromoCodeInput{Code: "hemat", DiscountAmount: 50000}, svc.lastInput)
			},
		},
		{
			name:               "create duplicate",
			svc:                &fakeService{result: model.Invalid[*model.PromoCode](duplicate, map[string]string{"code": duplicate})},
			method:             http.MethodPost,
			path:               "/promo-codes",
			body:               `{"code":"HEMAT","discountAmount":1000}`,
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, duplicate, body["error"])
				assert.Equal(t, duplicate, body["fields"].(map[string]any)["code"])
			},
		},
		{
			name:               "create bad json",
			svc:                &fakeService{},
			method:             http.MethodPost,
			path:               "/promo-codes",
			body:               `[1,2`,
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, "Invalid request payload", body["error"])
			},
		},
		{
			name:               "update",
			svc:                &fakeService{result: model.Ok(&model.PromoCode{ID: id})},
			method:             http.MethodPut,
			path:               "/promo-codes/" + id.String(),
			body:               `{"code":"DISKON","discountAmount":25000}`,
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, id, svc.lastID)
				assert.Equal(t, int64(25000), svc.lastInput.DiscountAmount)
			},
		},
		{
			name:               "update bad id",
			svc:                &fakeService{},
			method:             http.MethodPut,
			path:               "/promo-codes/42",
			body:               `{"code":"DISKON"}`,
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, "Invalid id", body["error"])
				assert.Equal(t, uuid.Nil, svc.lastID)
			},
		},
		{
			name:               "delete still used",
			svc:                &fakeService{status: model.InvalidStatus("Promo code is still used by transactions", nil)},
			method:             http.MethodDelete,
			path:               "/promo-codes/" + id.String(),
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "Promo code is still used by transactions", body["error"])
			},
		},
		{
			name:               "delete not found",
			svc:                &fakeService{status: model.Failure(model.KindNotFound, "Promo code not found")},
			method:             http.MethodDelete,
			path:               "/promo-codes/" + id.String(),
			expectedStatusCode: http.StatusNotFound,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, "Promo code not found", body["error"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			newRouter(NewHandler(tc.svc)).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			var body map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			tc.checkResponse(t, tc.svc, body)
		})
	}
}
