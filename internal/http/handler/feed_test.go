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
	"github.com/mcandidier/workflow/internal/service"
)

var _ = Describe("FeedHandler", func() {
	var (
		router *gin.Engine
		svc    *mockFeedService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockFeedService{}
		h := handler.NewFeedHandler(svc)

		router.GET("/feed", asUser(&model.User{ID: 1}), h.List)
		router.GET("/anon/feed", h.List)
	})

	It("returns the caller's feed page", func() {
		createdAt := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
		svc.feedFn = func(_ context.Context, userID int64, _ time.Time, page, pageSize int) (*service.FeedPage, error) {
			Expect(userID).To(Equal(int64(1)))
			Expect(page).To(Equal(2))
			Expect(pageSize).To(Equal(5))
			return &service.FeedPage{
				Items: []model.FeedItem{
					{
						Kind:      model.FeedKindEvent,
						ID:        202,
						CreatedAt: createdAt,
						Event:     &model.Event{ID: 202, OrganizerID: 3, Title: "retro", CreatedAt: createdAt},
					},
				},
				Page:     2,
				PageSize: 5,
				Total:    11,
				HasNext:  true,
			}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/feed?page=2&page_size=5", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["page"]).To(Equal(float64(2)))
		Expect(resp["total"]).To(Equal(float64(11)))
		Expect(resp["has_next"]).To(Equal(true))

		items := resp["items"].([]interface{})
		Expect(items).To(HaveLen(1))
		item := items[0].(map[string]interface{})
		Expect(item["kind"]).To(Equal("event"))
		Expect(item["id"]).To(Equal("202"))
		Expect(item["title"]).To(Equal("retro"))
	})

	It("rejects unauthenticated requests", func() {
		req := httptest.NewRequest(http.MethodGet, "/anon/feed", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["kind"]).To(Equal("unauthorized"))
	})

	It("rejects a non-numeric page parameter", func() {
		req := httptest.NewRequest(http.MethodGet, "/feed?page=abc", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["kind"]).To(Equal("invalid_argument"))
	})

	It("defaults the page to one", func() {
		var gotPage int
		svc.feedFn = func(_ context.Context, _ int64, _ time.Time, page, pageSize int) (*service.FeedPage, error) {
			gotPage = page
			return &service.FeedPage{Items: []model.FeedItem{}, Page: page, PageSize: pageSize}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/feed", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(gotPage).To(Equal(1))
	})
})
