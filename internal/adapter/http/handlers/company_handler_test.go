package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"xtagy_banho/internal/adapter/http/handlers/mocks"
	"xtagy_banho/internal/domain/entities"
	"xtagy_banho/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("caller_user_id", userID)
	}
}

func TestCompanyHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)
		h := NewCompanyHandler(uc)

		r := gin.New()
		r.POST("/v1/companies/register", authAs("user-1"), h.Register)

		req := httptest.NewRequest(http.MethodPost, "/v1/companies/register", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid role rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)
		h := NewCompanyHandler(uc)

		r := gin.New()
		r.POST("/v1/companies/register", authAs("user-1"), h.Register)

		body, _ := json.Marshal(map[string]any{"name": "X", "role": "other", "email": "a@b.com"})
		req := httptest.NewRequest(http.MethodPost, "/v1/companies/register", bytes.NewBuffer(body))
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
		uc := mocks.NewMockICompanyUseCase(ctrl)
		h := NewCompanyHandler(uc)

		uc.EXPECT().Register(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, in usecase.RegisterCompanyInput) (entities.User, error) {
				if in.Role != entities.CompanyRoleBanho || in.Name != "Banhos Ltda" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.User{ID: "user-1", CompanyID: "company-1", Role: entities.UserRoleAdmin}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/companies/register", authAs("user-1"), h.Register)

		body, _ := json.Marshal(map[string]any{"name": "Banhos Ltda", "role": "banho", "email": "dono@banhos.com.br"})
		req := httptest.NewRequest(http.MethodPost, "/v1/companies/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestCompanyHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)
		h := NewCompanyHandler(uc)

		uc.EXPECT().GetProfile(gomock.Any(), "user-1").Return(usecase.Profile{}, usecase.ErrUserNotFound)

		r := gin.New()
		r.GET("/v1/companies/me", authAs("user-1"), h.Me)

		req := httptest.NewRequest(http.MethodGet, "/v1/companies/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)
		h := NewCompanyHandler(uc)

		uc.EXPECT().GetProfile(gomock.Any(), "user-1").Return(usecase.Profile{
			User:    entities.User{ID: "user-1", CompanyID: "company-1"},
			Company: entities.Company{ID: "company-1", Role: entities.CompanyRoleBanho},
		}, nil)

		r := gin.New()
		r.GET("/v1/companies/me", authAs("user-1"), h.Me)

		req := httptest.NewRequest(http.MethodGet, "/v1/companies/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if _, ok := got["company"]; !ok {
			t.Fatalf("expected company in profile response: %s", w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICompanyUseCase(ctrl)
		h := NewCompanyHandler(uc)

		uc.EXPECT().GetProfile(gomock.Any(), "user-1").Return(usecase.Profile{}, errors.New("db"))

		r := gin.New()
		r.GET("/v1/companies/me", authAs("user-1"), h.Me)

		req := httptest.NewRequest(http.MethodGet, "/v1/companies/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
