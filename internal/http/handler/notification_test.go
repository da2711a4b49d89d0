package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mcandidier/workflow/internal/http/handler"
	"github.com/mcandidier/workflow/internal/model"
)

var _ = Describe("NotificationHandler", func() {
	var (
		router *gin.Engine
		svc    *mockNotificationService
	)

	pid := func(v int64) *int64 { return &v }

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockNotificationService{}
		h := handler.NewNotificationHandler(svc)

		router.GET("/notifications/events", h.Events)
		router.GET("/notifications/pending", asUser(&model.User{ID: 4}), h.Pending)
		router.GET("/notifications/grouped", asUser(&model.User{ID: 4}), h.Grouped)
		router.GET("/anon/pending", h.Pending)
	})

	It("lists events triggered today", func() {
		svc.eventsTodayFn = func(_ context.Context, _ time.Time) ([]model.Event, error) {
			return []model.Event{{ID: 1, Title: "release"}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/notifications/events", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
		Expect(resp[0]["title"]).To(Equal("release"))
	})

	It("lists the caller's pending blockers", func() {
		svc.pendingFn = func(_ context.Context, userID int64) ([]model.Blocker, error) {
			Expect(userID).To(Equal(int64(4)))
			return []model.Blocker{{ID: 10, ReportID: 2, Description: "ci flaking"}}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/notifications/pending", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
		Expect(resp[0]["id"]).To(Equal("10"))
	})

	It("groups pending blockers per project", func() {
		svc.groupedFn = func(_ context.Context, userID int64) ([]model.PendingIssueGroup, error) {
			Expect(userID).To(Equal(int64(4)))
			return []model.PendingIssueGroup{
				{ProjectID: *pid(1), BlockerIDs: []int64{10, 11}},
				{ProjectID: *pid(2), BlockerIDs: []int64{12}},
			}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/notifications/grouped", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(2))
		Expect(resp[0]["project_id"]).To(Equal("1"))
		Expect(resp[0]["blocker_ids"]).To(Equal([]interface{}{float64(10), float64(11)}))
	})

	It("rejects unauthenticated requests for user-scoped views", func() {
		req := httptest.NewRequest(http.MethodGet, "/anon/pending", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})
})
