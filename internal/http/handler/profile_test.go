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

type mockProfileService struct {
	listFn   func(ctx context.Context, userID int64) ([]service.ProfileDetail, error)
	getFn    func(ctx context.Context, profileID, userID int64) (*service.ProfileDetail, error)
	createFn func(ctx context.Context, userID, orgID int64, role model.Role) (*service.ProfileDetail, error)
	updateFn func(ctx context.Context, profileID, userID int64, role model.Role) (*service.ProfileDetail, error)
	deleteFn func(ctx context.Context, profileID, userID int64) error
}

func (m *mockProfileService) List(ctx context.Context, userID int64) ([]service.ProfileDetail, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileService) Get(ctx context.Context, profileID, userID int64) (*service.ProfileDetail, error) {
	if m.getFn != nil {
		return m.getFn(ctx, profileID, userID)
	}
	return nil, store.ErrNotFound
}

func (m *mockProfileService) Create(ctx context.Context, userID, orgID int64, role model.Role) (*service.ProfileDetail, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, orgID, role)
	}
	return nil, nil
}

func (m *mockProfileService) UpdateRole(ctx context.Context, profileID, userID int64, role model.Role) (*service.ProfileDetail, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, profileID, userID, role)
	}
	return nil, store.ErrNotFound
}

func (m *mockProfileService) Delete(ctx context.Context, profileID, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, profileID, userID)
	}
	return store.ErrNotFound
}

var _ = Describe("ProfileHandler", func() {
	var (
		router *gin.Engine
		svc    *mockProfileService
		caller model.User
	)

	detailFor := func(profile model.Profile) *service.ProfileDetail {
		return &service.ProfileDetail{
			Profile:        profile,
			User:           caller,
			Organization:   model.Organization{ID: profile.OrganizationID, Name: "Acme", Slug: "acme"},
			OrgMemberCount: 2,
		}
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		caller = model.User{ID: 7, Username: "ada"}
		svc = &mockProfileService{}
		h := handler.NewProfileHandler(svc)

		router = gin.New()
		router.Use(authAs(&caller))
		router.GET("/profiles", h.List)
		router.POST("/profiles", h.Create)
		router.GET("/profiles/:id", h.Get)
		router.PUT("/profiles/:id", h.Update)
		router.DELETE("/profiles/:id", h.Delete)
	})

	It("creates a membership for the caller, not an arbitrary user", func() {
		svc.createFn = func(_ context.Context, userID, orgID int64, role model.Role) (*service.ProfileDetail, error) {
			Expect(userID).To(Equal(caller.ID))
			Expect(orgID).To(Equal(int64(5)))
			Expect(role).To(Equal(model.RoleAdmin))
			return detailFor(model.Profile{ID: 10, UserID: userID, OrganizationID: orgID, Role: role}), nil
		}

		// A user field in the body is ignored; the membership is always
		// the caller's own.
		body := []byte(`{"organization_id": "5", "role": "admin", "user": {"id": "999"}}`)
		req := httptest.NewRequest(http.MethodPost, "/profiles", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["role"]).To(Equal("admin"))
		user := resp["user"].(map[string]interface{})
		Expect(user["id"]).To(Equal("7"))
		org := resp["organization"].(map[string]interface{})
		Expect(org["member_count"]).To(BeNumerically("==", 2))
	})

	It("rejects an unknown role", func() {
		body := []byte(`{"organization_id": "5", "role": "superuser"}`)
		req := httptest.NewRequest(http.MethodPost, "/profiles", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"role": ["\"superuser\" is not a valid choice."]}`))
	})

	It("maps the duplicate membership constraint to non_field_errors", func() {
		svc.createFn = func(_ context.Context, _, _ int64, _ model.Role) (*service.ProfileDetail, error) {
			return nil, &store.DuplicateError{Constraint: "profiles_user_id_organization_id_key"}
		}

		body := []byte(`{"organization_id": "5"}`)
		req := httptest.NewRequest(http.MethodPost, "/profiles", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(MatchJSON(`{"non_field_errors": ["The fields user, organization must make a unique set."]}`))
	})

	It("lists profiles visible to the caller", func() {
		svc.listFn = func(_ context.Context, userID int64) ([]service.ProfileDetail, error) {
			Expect(userID).To(Equal(caller.ID))
			return []service.ProfileDetail{
				*detailFor(model.Profile{ID: 10, UserID: caller.ID, OrganizationID: 5, Role: model.RoleOwner}),
			}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(1))
		Expect(resp[0]["id"]).To(Equal("10"))
	})

	It("updates the role", func() {
		svc.updateFn = func(_ context.Context, profileID, userID int64, role model.Role) (*service.ProfileDetail, error) {
			Expect(profileID).To(Equal(int64(10)))
			Expect(role).To(Equal(model.RoleViewer))
			return detailFor(model.Profile{ID: profileID, UserID: caller.ID, OrganizationID: 5, Role: role}), nil
		}

		body := []byte(`{"role": "viewer"}`)
		req := httptest.NewRequest(http.MethodPut, "/profiles/10", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["role"]).To(Equal("viewer"))
	})

	It("hides out-of-scope profiles behind 404", func() {
		req := httptest.NewRequest(http.MethodGet, "/profiles/999", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(MatchJSON(`{"detail": "Not found."}`))
	})
})
