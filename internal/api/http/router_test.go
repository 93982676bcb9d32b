package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ayudame3d-backend/internal/domain"
	"ayudame3d-backend/internal/repository"
	"ayudame3d-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func bearerFor(t *testing.T, rt *routerMocks, userID int32) string {
	t.Helper()
	token, err := rt.tokens.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return "Bearer " + token
}

func doJSON(router http.Handler, method, path, auth string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.On("Login", mock.Anything, "helper@example.com", "secret").Return("a.jwt.token", nil)

		w := doJSON(router, "POST", "/login", "", map[string]string{"email": "helper@example.com", "password": "secret"})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp["status"])
		assert.Equal(t, "a.jwt.token", resp["access_token"])
	})

	t.Run("MissingEmail", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(router, "POST", "/login", "", map[string]string{"password": "secret"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing email parameter")
	})

	t.Run("BadCredentials", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.auth.On("Login", mock.Anything, "helper@example.com", "wrong").Return("", service.ErrInvalidCredentials)

		w := doJSON(router, "POST", "/login", "", map[string]string{"email": "helper@example.com", "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ko", resp["status"])
		assert.Equal(t, "Bad username or password", resp["msg"])
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("MissingToken", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(router, "GET", "/orders", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(router, "GET", "/orders", "NotBearer xyz", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("BogusToken", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(router, "GET", "/orders", "Bearer not.a.token", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ValidTokenReachesHandler", func(t *testing.T) {
		router, m := newTestRouter(t)
		requester := &domain.User{ID: 7, RoleID: domain.RoleHelper}
		m.users.On("GetUser", mock.Anything, int32(7)).Return(requester, nil)
		m.orders.On("ListOrders", mock.Anything, requester).Return([]domain.Order{}, nil)

		w := doJSON(router, "GET", "/orders", bearerFor(t, m, 7), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCreateOrder(t *testing.T) {
	t.Run("IsPubliclyReachable", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.orders.On("CreateOrder", mock.Anything, int32(7), "Prosthetic hand", "").
			Return(&domain.Order{ID: 42, HelperID: 7, StatusID: domain.StatusPending}, nil)

		w := doJSON(router, "POST", "/orders", "", map[string]any{"helper_id": 7, "description": "Prosthetic hand"})
		assert.Equal(t, http.StatusCreated, w.Code)

		var order domain.Order
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
		assert.Equal(t, int32(42), order.ID)
	})

	t.Run("MissingHelper", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doJSON(router, "POST", "/orders", "", map[string]any{"description": "Prosthetic hand"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing helper_id parameter")
	})

	t.Run("UnknownHelper", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.orders.On("CreateOrder", mock.Anything, int32(99), "Prosthetic hand", "").
			Return(nil, repository.ErrNotFound)

		w := doJSON(router, "POST", "/orders", "", map[string]any{"helper_id": 99, "description": "Prosthetic hand"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("UnknownOrderIs404", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.orders.On("GetOrder", mock.Anything, int32(404)).Return(nil, repository.ErrNotFound)

		w := doJSON(router, "GET", "/orders/404", bearerFor(t, m, 1), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("NonNumericIdIs400", func(t *testing.T) {
		router, m := newTestRouter(t)

		w := doJSON(router, "GET", "/orders/abc", bearerFor(t, m, 1), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderTransitions(t *testing.T) {
	cases := []struct {
		path   string
		method string
		setup  func(m *MockOrderService)
	}{
		{"/orders/5/accept", "AcceptOrder", func(m *MockOrderService) {
			m.On("AcceptOrder", mock.Anything, int32(5)).Return(&domain.Order{ID: 5, StatusID: domain.StatusProcessing}, nil)
		}},
		{"/orders/5/reject", "RejectOrder", func(m *MockOrderService) {
			m.On("RejectOrder", mock.Anything, int32(5)).Return(&domain.Order{ID: 5, StatusID: domain.StatusRejected}, nil)
		}},
		{"/orders/5/set-ready", "SetOrderReady", func(m *MockOrderService) {
			m.On("SetOrderReady", mock.Anything, int32(5)).Return(&domain.Order{ID: 5, StatusID: domain.StatusReady}, nil)
		}},
		{"/orders/5/set-approved", "CompleteOrder", func(m *MockOrderService) {
			m.On("CompleteOrder", mock.Anything, int32(5)).Return(&domain.Order{ID: 5, StatusID: domain.StatusCompleted}, nil)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			router, m := newTestRouter(t)
			tc.setup(m.orders)

			w := doJSON(router, "POST", tc.path, bearerFor(t, m, 1), nil)
			assert.Equal(t, http.StatusOK, w.Code)
			m.orders.AssertCalled(t, tc.method, mock.Anything, int32(5))
		})
	}
}

func TestSaveVideo(t *testing.T) {
	router, m := newTestRouter(t)
	m.orders.On("SaveVideo", mock.Anything, int32(5), int32(7), "video", "https://youtu.be/abc").
		Return(&domain.Document{ID: 3, OrderID: 5}, nil)

	// Name defaults to "video" when omitted.
	w := doJSON(router, "POST", "/orders/5/save-video", bearerFor(t, m, 7), map[string]string{"url": "https://youtu.be/abc"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSaveFiles(t *testing.T) {
	t.Run("MultipartUpload", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.orders.On("SaveFiles", mock.Anything, int32(5), int32(7), mock.MatchedBy(func(files []service.UploadFile) bool {
			return len(files) == 1 && files[0].Name == "photo.jpg"
		})).Return([]domain.Document{{ID: 3, Name: "photo.jpg"}}, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("photo", "photo.jpg")
		assert.NoError(t, err)
		_, _ = fw.Write([]byte("jpeg-bytes"))
		assert.NoError(t, mw.Close())

		req := httptest.NewRequest("POST", "/orders/5/save-files", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", bearerFor(t, m, 7))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("EmptyUploadIs400", func(t *testing.T) {
		router, m := newTestRouter(t)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		assert.NoError(t, mw.Close())

		req := httptest.NewRequest("POST", "/orders/5/save-files", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", bearerFor(t, m, 7))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSaveOrderAddress(t *testing.T) {
	router, m := newTestRouter(t)
	m.orders.On("SaveOrderAddress", mock.Anything, int32(5), int32(7), domain.AddressKindPickup, mock.AnythingOfType("*domain.Address")).
		Return(&domain.Order{ID: 5}, nil)

	w := doJSON(router, "POST", "/orders/5/addresses/save", bearerFor(t, m, 7), map[string]string{
		"kind":        "pickup",
		"address":     "Calle Mayor 1",
		"city":        "Madrid",
		"country":     "Spain",
		"postal_code": "28001",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDocumentEndpoints(t *testing.T) {
	t.Run("ListOrderDocuments", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.documents.On("ListOrderDocuments", mock.Anything, int32(5)).Return([]domain.Document{{ID: 3}}, nil)

		w := doJSON(router, "GET", "/orders/5/documents", bearerFor(t, m, 1), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DeleteMissingDocumentIs404", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.documents.On("DeleteDocument", mock.Anything, int32(404)).Return(repository.ErrNotFound)

		w := doJSON(router, "DELETE", "/documents/404", bearerFor(t, m, 1), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "ok"))
}
