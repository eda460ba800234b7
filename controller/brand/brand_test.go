package brand

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
	brands    []model.Brand
	lastInput model.BrandInput
	lastID    uuid.UUID
	result    model.Result[*model.Brand]
	status    model.Status
}

func (f *fakeService) List(ctx context.Context) model.Result[[]model.Brand] {
	return model.Ok(f.brands)
}

func (f *fakeService) Get(ctx context.Context, id uuid.UUID) model.Result[*model.Brand] {
	f.lastID = id
	return f.result
}

func (f *fakeService) Create(ctx context.Context, in model.BrandInput) model.Result[*model.Brand] {
	f.lastInput = in
	return f.result
}

func (f *fakeService) Update(ctx context.Context, id uuid.UUID, in model.BrandInput) model.Result[*model.Brand] {
	f.lastID, f.lastInput = id, in
	return f.result
}

func (f *fakeService) Delete(ctx context.Context, id uuid.UUID) model.Status {
	f.lastID = id
	return f.status
}

func (f *fakeService) Options(ctx context.Context) model.Result[[]model.Option] {
	return model.Ok([]model.Option{})
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/brands", h.GetAllBrands).Methods("GET")
	r.HandleFunc("/brands", h.CreateBrand).Methods("POST")
	r.HandleFunc("/brands/options", h.GetBrandOptions).Methods("GET")
	r.HandleFunc("/brands/{id}", h.GetBrandByID).Methods("GET")
	r.HandleFunc("/brands/{id}", h.UpdateBrand).Methods("PUT")
	r.HandleFunc("/brands/{id}", h.DeleteBrand).Methods("DELETE")
	return r
}

func TestBrandHandlers(t *testing.T) {
	id := uuid.New()

	testCases := []struct {
		name               string
		svc                *fakeService
		method, path, body string
		expectedStatusCode int
		checkResponse      func(t *testing.T, svc *fakeService, body map[string]any)
	}{
		{
			name:               "list",
			svc:                &fakeService{brands: []model.Brand{{ID: id, Name: "Nike"}}},
			method:             http.MethodGet,
			path:               "/brands",
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				data := body["data"].([]any)
				assert.Len(t, data, 1)
				assert.Nil(t, body["error"])
			},
		},
		{
			name:               "get not found",
			svc:                &fakeService{result: model.Fail[*model.Brand](model.KindNotFound, "Brand not found")},
			method:             http.MethodGet,
			path:               "/brands/" + id.String(),
			expectedStatusCode: http.StatusNotFound,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, "Brand not found", body["error"])
				assert.Equal(t, id, svc.lastID)
			},
		},
		{
			name:               "create",
			svc:                &fakeService{result: model.Ok(&model.Brand{ID: id, Name: "Nike"})},
			method:             http.MethodPost,
			path:               "/brands",
			body:               `{"name":"Nike","logo":"https://cdn/nike.png"}`,
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, model.BrandInput{Name: "Nike", Logo: "https://cdn/nike.png"}, svc.lastInput)
			},
		},
		{
			name:               "create validation",
			svc:                &fakeService{result: model.Invalid[*model.Brand]("Logo is required", map[string]string{"logo": "Logo is required"})},
			method:             http.MethodPost,
			path:               "/brands",
			body:               `{"name":"Nike"}`,
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, "Logo is required", body["fields"].(map[string]any)["logo"])
			},
		},
		{
			name:               "create bad json",
			svc:                &fakeService{},
			method:             http.MethodPost,
			path:               "/brands",
			body:               `{"name":`,
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, "Invalid request payload", body["error"])
			},
		},
		{
			name:               "update",
			svc:                &fakeService{result: model.Ok(&model.Brand{ID: id})},
			method:             http.MethodPut,
			path:               "/brands/" + id.String(),
			body:               `{"name":"Adidas","logo":"l"}`,
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, id, svc.lastID)
				assert.Equal(t, "Adidas", svc.lastInput.Name)
			},
		},
		{
			name:               "delete",
			svc:                &fakeService{status: model.Succeeded()},
			method:             http.MethodDelete,
			path:               "/brands/" + id.String(),
			expectedStatusCode: http.StatusOK,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, true, body["success"])
			},
		},
		{
			name:               "delete bad id",
			svc:                &fakeService{},
			method:             http.MethodDelete,
			path:               "/brands/not-a-uuid",
			expectedStatusCode: http.StatusBadRequest,
			checkResponse: func(t *testing.T, svc *fakeService, body map[string]any) {
				assert.Equal(t, "Invalid id", body["error"])
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
