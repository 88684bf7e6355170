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

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPieceHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("parent order missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPieceUseCase(ctrl)
		h := NewPieceHandler(uc, "http://localhost:8080")

		uc.EXPECT().CreatePiece(gomock.Any(), "order-1", gomock.Any()).Return(entities.Piece{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.POST("/v1/orders/:id/pieces", h.Create)

		body, _ := json.Marshal(map[string]any{"peso_peca": 2.5})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/pieces", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success includes qr url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPieceUseCase(ctrl)
		h := NewPieceHandler(uc, "https://app.example.com")

		uc.EXPECT().CreatePiece(gomock.Any(), "order-1", gomock.Any()).Return(entities.Piece{ID: "piece-1", OrderID: "order-1"}, nil)

		r := gin.New()
		r.POST("/v1/orders/:id/pieces", h.Create)

		body, _ := json.Marshal(map[string]any{"peso_peca": 2.5, "valor_peca_bruta": 45.0})
		req := httptest.NewRequest(http.MethodPost, "/v1/orders/order-1/pieces", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["qr_url"] != "https://app.example.com/#/piece/piece-1" {
			t.Fatalf("unexpected qr_url: %v", got["qr_url"])
		}
	})
}

func TestPieceHandler_UpdateLabel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid layout rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPieceUseCase(ctrl)
		h := NewPieceHandler(uc, "http://localhost:8080")

		r := gin.New()
		r.PUT("/v1/pieces/:id/label", h.UpdateLabel)

		body, _ := json.Marshal(map[string]any{"layout": "LETTER"})
		req := httptest.NewRequest(http.MethodPut, "/v1/pieces/piece-1/label", bytes.NewBuffer(body))
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
		uc := mocks.NewMockIPieceUseCase(ctrl)
		h := NewPieceHandler(uc, "http://localhost:8080")

		uc.EXPECT().UpdateLabel(gomock.Any(), "piece-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, label entities.LabelSnapshot) (entities.Piece, error) {
				if label.Layout != entities.LabelLayoutThermal {
					t.Fatalf("expected THERMAL layout, got %s", label.Layout)
				}
				return entities.Piece{ID: "piece-1", Label: &label}, nil
			},
		)

		r := gin.New()
		r.PUT("/v1/pieces/:id/label", h.UpdateLabel)

		body, _ := json.Marshal(map[string]any{"layout": "THERMAL", "peso_peca": 2.5})
		req := httptest.NewRequest(http.MethodPut, "/v1/pieces/piece-1/label", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
