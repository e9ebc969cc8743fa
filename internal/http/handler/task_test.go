package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jacksonlmp/taskflow/internal/http/handler"
	"github.com/jacksonlmp/taskflow/internal/model"
	"github.com/jacksonlmp/taskflow/internal/service"
	"github.com/jacksonlmp/taskflow/internal/store"
)

type mockTaskService struct {
	listFn   func(ctx context.Context, userID int64) ([]service.TaskDetail, error)
	getFn    func(ctx context.Context, taskID, userID int64) (*service.TaskDetail, error)
	createFn func(ctx context.Context, userID int64, params service.CreateTaskParams) (*service.TaskDetail, error)
	updateFn func(ctx context.Context, taskID, userID int64, params service.CreateTaskParams) (*service.TaskDetail, error)
	patchFn  func(ctx context.Context, taskID, userID int64, params service.PatchTaskParams) (*service.TaskDetail, error)
	deleteFn func(ctx context.Context, taskID, userID int64) error
}

func (m *mockTaskService) List(ctx context.Context, userID int64) ([]service.TaskDetail, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTaskService) Get(ctx context.Context, taskID, userID int64) (*service.TaskDetail, error) {
	if m.getFn != nil {
		return m.getFn(ctx, taskID, userID)
	}
	return nil, store.ErrNotFound
}

func (m *mockTaskService) Create(ctx context.Context, userID int64, params service.CreateTaskParams) (*service.TaskDetail, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, params)
	}
	return nil, nil
}

func (m *mockTaskService) Update(ctx context.Context, taskID, userID int64, params service.CreateTaskParams) (*service.TaskDetail, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, taskID, userID, params)
	}
	return nil, store.ErrNotFound
}

func (m *mockTaskService) Patch(ctx context.Context, taskID, userID int64, params service.PatchTaskParams) (*service.TaskDetail, error) {
	if m.patchFn != nil {
		return m.patchFn(ctx, taskID, userID, params)
	}
	return nil, store.ErrNotFound
}

func (m *mockTaskService) Delete(ctx context.Context, taskID, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, taskID, userID)
	}
	return store.ErrNotFound
}

var _ = Describe("TaskHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTaskService
		caller model.User
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		caller = model.User{ID: 7, Username: "ada"}
		svc = &mockTaskService{}
		h := handler.NewTaskHandler(svc)

		router = gin.New()
		router.Use(authAs(&caller))
		router.GET("/tasks", h.List)
		router.POST("/tasks", h.Create)
		router.GET("/tasks/:id", h.Get)
		router.PUT("/tasks/:id", h.Update)
		router.PATCH("/tasks/:id", h.Patch)
		router.DELETE("/tasks/:id", h.Delete)
	})

	It("creates a task from writable fields only", func() {
		orgID := int64(5)
		svc.createFn = func(_ context.Context, userID int64, params service.CreateTaskParams) (*service.TaskDetail, error) {
			Expect(userID).To(Equal(caller.ID))
			Expect(params.Title).To(Equal("ship it"))
			Expect(params.AssignedTo).To(BeNil())
			return &service.TaskDetail{
				Task: model.Task{
					ID:             100,
					Title:          params.Title,
					OrganizationID: &orgID,
					CreatedBy:      &caller.ID,
				},
				Organization:   &model.Organization{ID: orgID, Name: "Acme", Slug: "acme"},
				OrgMemberCount: 3,
				CreatedBy:      &caller,
			}, nil
		}

		// organization, created_by and id are not writable; unknown keys
		// are dropped on the floor.
		body := []byte(`{
			"title": "ship it",
			"organization": {"id": "999"},
			"organization_id": "999",
			"created_by": {"id": "999"},
			"id": "999"
		}`)
		req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["id"]).To(Equal("100"))
		org := resp["organization"].(map[string]interface{})
		Expect(org["id"]).To(Equal("5"))
		createdBy := resp["created_by"].(map[string]interface{})
		Expect(createdBy["username"]).To(Equal("ada"))
	})

	It("passes the assignee reference through as a string id", func() {
		svc.createFn = func(_ context.Context, _ int64, params service.CreateTaskParams) (*service.TaskDetail, error) {
			Expect(params.AssignedTo).To(HaveValue(Equal(int64(42))))
			return &service.TaskDetail{
				Task:       model.Task{ID: 100, Title: params.Title, AssignedTo: params.AssignedTo},
				AssignedTo: &model.User{ID: 42, Username: "bob"},
			}, nil
		}

		body := []byte(`{"title": "review", "assigned_to_id": "42"}`)
		req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		assigned := resp["assigned_to"].(map[string]interface{})
		Expect(assigned["username"]).To(Equal("bob"))
	})

	It("serializes a task without organization as null nested fields", func() {
		svc.listFn = func(_ context.Context, _ int64) ([]service.TaskDetail, error) {
			return []service.TaskDetail{
				{Task: model.Task{ID: 100, Title: "orphan"}},
			}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
		Expect(resp[0]["organization"]).To(BeNil())
		Expect(resp[0]["created_by"]).To(BeNil())
		Expect(resp[0]["assigned_to"]).To(BeNil())
	})

	It("rejects an empty title", func() {
		body := []byte(`{"title": ""}`)
		req := httptest.NewRequest(http.MethodPost, "/tasks", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"title": ["This field is required."]}`))
	})

	It("hides out-of-scope tasks behind 404", func() {
		req := httptest.NewRequest(http.MethodGet, "/tasks/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(MatchJSON(`{"detail": "Not found."}`))
	})

	It("patches only the provided fields", func() {
		svc.patchFn = func(_ context.Context, taskID, userID int64, params service.PatchTaskParams) (*service.TaskDetail, error) {
			Expect(taskID).To(Equal(int64(100)))
			Expect(params.Completed).To(HaveValue(BeTrue()))
			Expect(params.Title).To(BeNil())
			Expect(params.Description).To(BeNil())
			Expect(params.AssignedTo).To(BeNil())
			return &service.TaskDetail{
				Task: model.Task{ID: taskID, Title: "unchanged", Completed: true},
			}, nil
		}

		body := []byte(`{"completed": true}`)
		req := httptest.NewRequest(http.MethodPatch, "/tasks/100", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["completed"]).To(BeTrue())
		Expect(resp["title"]).To(Equal("unchanged"))
	})

	It("replaces the task on PUT", func() {
		svc.updateFn = func(_ context.Context, taskID, userID int64, params service.CreateTaskParams) (*service.TaskDetail, error) {
			Expect(params.Title).To(Equal("final"))
			Expect(params.AssignedTo).To(BeNil())
			return &service.TaskDetail{
				Task: model.Task{ID: taskID, Title: params.Title, Completed: params.Completed},
			}, nil
		}

		body := []byte(`{"title": "final", "completed": true}`)
		req := httptest.NewRequest(http.MethodPut, "/tasks/100", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("deletes with 204", func() {
		svc.deleteFn = func(_ context.Context, taskID, userID int64) error {
			return nil
		}

		req := httptest.NewRequest(http.MethodDelete, "/tasks/100", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNoContent))
		Expect(w.Body.Len()).To(BeZero())
	})
})
