package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"xtagy_banho/internal/adapter/http/handlers/mocks"
	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase"
	mock_interfaces "xtagy_banho/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func banhoProfile() usecase.Profile {
	return usecase.Profile{
		User:    entities.User{ID: "user-1", CompanyID: "banho-1"},
		Company: entities.Company{ID: "banho-1", Role: entities.CompanyRoleBanho},
	}
}

func clienteProfile() usecase.Profile {
	return usecase.Profile{
		User:    entities.User{ID: "user-2", CompanyID: "cliente-1"},
		Company: entities.Company{ID: "cliente-1", Role: entities.CompanyRoleCliente},
	}
}

func TestOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cliente company is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		companies := mocks.NewMockICompanyUseCase(ctrl)
		gold := mock_interfaces.NewMockIGoldQuoteProvider(ctrl)
		h := NewOrderHandler(uc, companies, gold)

		companies.EXPECT().GetProfile(gomock.Any(), "user-2").Return(clienteProfile(), nil)

		r := gin.New()
		r.POST("/v1/orders", authAs("user-2"), h.Create)

		body, _ := json.Marshal(map[string]any{"camadas": 5})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("explicit gold price is used as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		companies := mocks.NewMockICompanyUseCase(ctrl)
		gold := mock_interfaces.NewMockIGoldQuoteProvider(ctrl)
		h := NewOrderHandler(uc, companies, gold)

		companies.EXPECT().GetProfile(gomock.Any(), "user-1").Return(banhoProfile(), nil)
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateOrderInput) (entities.Order, error) {
				if in.BanhoCompanyID != "banho-1" || in.GoldPrice != 360.0 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Order{ID: "order-1", AccessCode: "AB12CD34"}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/orders", authAs("user-1"), h.Create)

		body, _ := json.Marshal(map[string]any{"gold_price": 360.0, "camadas": 5, "mao_de_obra": 2, "default_margin": 2.5})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("omitted gold price snapshots the current quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		companies := mocks.NewMockICompanyUseCase(ctrl)
		gold := mock_interfaces.NewMockIGoldQuoteProvider(ctrl)
		h := NewOrderHandler(uc, companies, gold)

		companies.EXPECT().GetProfile(gomock.Any(), "user-1").Return(banhoProfile(), nil)
		gold.EXPECT().GetCurrentPrice(gomock.Any()).Return(entities.GoldQuote{Price: 345.67}, nil)
		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateOrderInput) (entities.Order, error) {
				if in.GoldPrice != 345.67 {
					t.Fatalf("expected quoted gold price, got %v", in.GoldPrice)
				}
				return entities.Order{ID: "order-1"}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/orders", authAs("user-1"), h.Create)

		body, _ := json.Marshal(map[string]any{"camadas": 5})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestOrderHandler_Link(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing access code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		companies := mocks.NewMockICompanyUseCase(ctrl)
		gold := mock_interfaces.NewMockIGoldQuoteProvider(ctrl)
		h := NewOrderHandler(uc, companies, gold)

		r := gin.New()
		r.POST("/v1/orders/link", authAs("user-2"), h.Link)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/link", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		companies := mocks.NewMockICompanyUseCase(ctrl)
		gold := mock_interfaces.NewMockIGoldQuoteProvider(ctrl)
		h := NewOrderHandler(uc, companies, gold)

		companies.EXPECT().GetProfile(gomock.Any(), "user-2").Return(clienteProfile(), nil)
		uc.EXPECT().LinkByAccessCode(gomock.Any(), "ZZZZZZZZ", "cliente-1").Return(entities.Order{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.POST("/v1/orders/link", authAs("user-2"), h.Link)

		body, _ := json.Marshal(map[string]any{"access_code": "ZZZZZZZZ"})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/link", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		companies := mocks.NewMockICompanyUseCase(ctrl)
		gold := mock_interfaces.NewMockIGoldQuoteProvider(ctrl)
		h := NewOrderHandler(uc, companies, gold)

		companies.EXPECT().GetProfile(gomock.Any(), "user-2").Return(clienteProfile(), nil)
		uc.EXPECT().LinkByAccessCode(gomock.Any(), "AB12CD34", "cliente-1").Return(entities.Order{ID: "order-1", ClienteCompanyID: "cliente-1"}, nil)

		r := gin.New()
		r.POST("/v1/orders/link", authAs("user-2"), h.Link)

		body, _ := json.Marshal(map[string]any{"access_code": "AB12CD34"})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/link", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	companies := mocks.NewMockICompanyUseCase(ctrl)
	gold := mock_interfaces.NewMockIGoldQuoteProvider(ctrl)
	h := NewOrderHandler(uc, companies, gold)

	companies.EXPECT().GetProfile(gomock.Any(), "user-1").Return(banhoProfile(), nil)
	uc.EXPECT().ListByCompany(gomock.Any(), "banho-1", entities.CompanyRoleBanho).Return([]entities.Order{{ID: "order-1"}}, nil)

	r := gin.New()
	r.GET("/v1/orders", authAs("user-1"), h.List)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 order, got %d", len(got))
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		companies := mocks.NewMockICompanyUseCase(ctrl)
		gold := mock_interfaces.NewMockIGoldQuoteProvider(ctrl)
		h := NewOrderHandler(uc, companies, gold)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", authAs("user-1"), h.UpdateStatus)

		body, _ := json.Marshal(map[string]any{"status": "shipped"})
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1/status", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		companies := mocks.NewMockICompanyUseCase(ctrl)
		gold := mock_interfaces.NewMockIGoldQuoteProvider(ctrl)
		h := NewOrderHandler(uc, companies, gold)

		uc.EXPECT().UpdateStatus(gomock.Any(), "order-1", entities.OrderStatusFinished).Return(entities.Order{ID: "order-1", Status: entities.OrderStatusFinished}, nil)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", authAs("user-1"), h.UpdateStatus)

		body, _ := json.Marshal(map[string]any{"status": "finished"})
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/order-1/status", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
