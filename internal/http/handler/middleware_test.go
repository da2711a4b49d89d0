package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mcandidier/workflow/internal/http/handler"
	"github.com/mcandidier/workflow/internal/model"
	"github.com/mcandidier/workflow/internal/service"
)

var _ = Describe("AuthRequired", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockAuthService{}

		router.GET("/protected", handler.AuthRequired(svc), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	})

	It("admits a request with a valid session header", func() {
		svc.validateSessionFn = func(_ context.Context, sessionID int64) (*model.User, error) {
			Expect(sessionID).To(Equal(int64(123)))
			return &model.User{ID: 1, Email: "a@b.c"}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-Session-ID", "123")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("falls back to the session cookie", func() {
		svc.validateSessionFn = func(_ context.Context, sessionID int64) (*model.User, error) {
			Expect(sessionID).To(Equal(int64(456)))
			return &model.User{ID: 1}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "workflow_session", Value: "456"})
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("rejects a request without credentials", func() {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["kind"]).To(Equal("unauthorized"))
	})

	It("rejects an expired session", func() {
		svc.validateSessionFn = func(_ context.Context, _ int64) (*model.User, error) {
			return nil, service.ErrSessionExpired
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-Session-ID", "123")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects a non-numeric session ID", func() {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("X-Session-ID", "not-a-number")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})
})
