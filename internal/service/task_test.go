package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jacksonlmp/taskflow/internal/model"
	"github.com/jacksonlmp/taskflow/internal/service"
	"github.com/jacksonlmp/taskflow/internal/store"
)

var _ = Describe("TaskService", func() {
	var (
		ctx    context.Context
		stores *fakeStores
		svc    service.TaskService
		user   model.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		stores = newFakeStores()
		svc = service.NewTaskService(stores)
		user = seedUser(stores, "ada")
	})

	Describe("Create", func() {
		It("assigns the caller's default organization and creator", func() {
			org := seedOrg(stores, "Acme", "acme")
			seedProfile(stores, user.ID, org.ID, model.RoleOwner)

			detail, err := svc.Create(ctx, user.ID, service.CreateTaskParams{Title: "ship it"})
			Expect(err).NotTo(HaveOccurred())

			Expect(detail.Task.OrganizationID).To(HaveValue(Equal(org.ID)))
			Expect(detail.Task.CreatedBy).To(HaveValue(Equal(user.ID)))
			Expect(detail.Organization).NotTo(BeNil())
			Expect(detail.Organization.Slug).To(Equal("acme"))
			Expect(detail.CreatedBy).NotTo(BeNil())
			Expect(detail.CreatedBy.Username).To(Equal("ada"))
		})

		It("creates the task without an organization when the caller has no profile", func() {
			detail, err := svc.Create(ctx, user.ID, service.CreateTaskParams{Title: "orphan"})
			Expect(err).NotTo(HaveOccurred())

			Expect(detail.Task.OrganizationID).To(BeNil())
			Expect(detail.Organization).To(BeNil())
			Expect(detail.Task.CreatedBy).To(HaveValue(Equal(user.ID)))
		})

		It("keeps the requested assignee", func() {
			assignee := seedUser(stores, "bob")
			detail, err := svc.Create(ctx, user.ID, service.CreateTaskParams{
				Title:      "review",
				AssignedTo: &assignee.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(detail.AssignedTo).NotTo(BeNil())
			Expect(detail.AssignedTo.Username).To(Equal("bob"))
		})
	})

	Describe("List", func() {
		It("scopes the listing to organization, creator and assignee", func() {
			orgX := seedOrg(stores, "X", "x")
			orgY := seedOrg(stores, "Y", "y")
			member := seedUser(stores, "bob")
			outsider := seedUser(stores, "eve")
			assignee := seedUser(stores, "carol")
			seedProfile(stores, user.ID, orgX.ID, model.RoleOwner)
			seedProfile(stores, member.ID, orgX.ID, model.RoleMember)
			seedProfile(stores, outsider.ID, orgY.ID, model.RoleOwner)

			created, err := svc.Create(ctx, user.ID, service.CreateTaskParams{
				Title:      "in org x",
				AssignedTo: &assignee.ID,
			})
			Expect(err).NotTo(HaveOccurred())

			// Co-members of the organization see the task.
			visible, err := svc.List(ctx, member.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(visible).To(HaveLen(1))

			// The assignee sees it without any shared organization.
			visible, err = svc.List(ctx, assignee.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(visible).To(HaveLen(1))
			Expect(visible[0].Task.ID).To(Equal(created.Task.ID))

			// Members of other organizations see nothing.
			visible, err = svc.List(ctx, outsider.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(visible).To(BeEmpty())
		})

		It("returns newest tasks first", func() {
			org := seedOrg(stores, "Acme", "acme")
			seedProfile(stores, user.ID, org.ID, model.RoleOwner)

			_, err := svc.Create(ctx, user.ID, service.CreateTaskParams{Title: "first"})
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.Create(ctx, user.ID, service.CreateTaskParams{Title: "second"})
			Expect(err).NotTo(HaveOccurred())

			tasks, err := svc.List(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(tasks).To(HaveLen(2))
			Expect(tasks[0].Task.Title).To(Equal("second"))
			Expect(tasks[1].Task.Title).To(Equal("first"))
		})
	})

	Describe("Get", func() {
		It("hides tasks outside the caller's scope", func() {
			detail, err := svc.Create(ctx, user.ID, service.CreateTaskParams{Title: "mine"})
			Expect(err).NotTo(HaveOccurred())

			outsider := seedUser(stores, "eve")
			_, err = svc.Get(ctx, detail.Task.ID, outsider.ID)
			Expect(err).To(MatchError(store.ErrNotFound))
		})
	})

	Describe("Update", func() {
		It("replaces every writable field, clearing an absent assignee", func() {
			assignee := seedUser(stores, "bob")
			detail, err := svc.Create(ctx, user.ID, service.CreateTaskParams{
				Title:      "draft",
				AssignedTo: &assignee.ID,
			})
			Expect(err).NotTo(HaveOccurred())

			updated, err := svc.Update(ctx, detail.Task.ID, user.ID, service.CreateTaskParams{
				Title:     "final",
				Completed: true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Task.Title).To(Equal("final"))
			Expect(updated.Task.Completed).To(BeTrue())
			Expect(updated.Task.AssignedTo).To(BeNil())
			Expect(updated.AssignedTo).To(BeNil())
		})

		It("never moves the task to another organization", func() {
			org := seedOrg(stores, "Acme", "acme")
			seedProfile(stores, user.ID, org.ID, model.RoleOwner)

			detail, err := svc.Create(ctx, user.ID, service.CreateTaskParams{Title: "pinned"})
			Expect(err).NotTo(HaveOccurred())

			updated, err := svc.Update(ctx, detail.Task.ID, user.ID, service.CreateTaskParams{Title: "renamed"})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Task.OrganizationID).To(HaveValue(Equal(org.ID)))
		})
	})

	Describe("Patch", func() {
		It("applies only the provided fields", func() {
			assignee := seedUser(stores, "bob")
			detail, err := svc.Create(ctx, user.ID, service.CreateTaskParams{
				Title:       "draft",
				Description: "keep me",
				AssignedTo:  &assignee.ID,
			})
			Expect(err).NotTo(HaveOccurred())

			completed := true
			patched, err := svc.Patch(ctx, detail.Task.ID, user.ID, service.PatchTaskParams{
				Completed: &completed,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(patched.Task.Completed).To(BeTrue())
			Expect(patched.Task.Title).To(Equal("draft"))
			Expect(patched.Task.Description).To(Equal("keep me"))
			Expect(patched.Task.AssignedTo).To(HaveValue(Equal(assignee.ID)))
		})
	})

	Describe("Delete", func() {
		It("refuses to delete out-of-scope tasks", func() {
			detail, err := svc.Create(ctx, user.ID, service.CreateTaskParams{Title: "mine"})
			Expect(err).NotTo(HaveOccurred())

			outsider := seedUser(stores, "eve")
			Expect(svc.Delete(ctx, detail.Task.ID, outsider.ID)).To(MatchError(store.ErrNotFound))

			_, err = svc.Get(ctx, detail.Task.ID, user.ID)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
