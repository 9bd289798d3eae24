package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tossaporn/school-budget/internal"
	requestDatamodel "github.com/tossaporn/school-budget/internal/core/datamodel/request"
	"github.com/tossaporn/school-budget/internal/request"
	requestPostgres "github.com/tossaporn/school-budget/internal/request/postgres"
)

func TestRequestPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Request Postgres Suite")
}

var _ = Describe("Request PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo *requestPostgres.RequestRepository
	)

	newRequest := func(id string, amount int64, status request.Status, createdAt time.Time) *request.ExpenseRequest {
		return &request.ExpenseRequest{
			ID:            id,
			ProjectID:     "p1",
			RequesterID:   "u1",
			RequesterName: "Teacher",
			Title:         "Request " + id,
			Category:      request.CategoryMaterials,
			Amount:        amount,
			Date:          createdAt,
			Status:        status,
			FormType:      request.FormActivityBudget,
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		}
	}

	BeforeEach(func() {
		var err error
		// Use SQLite in-memory database for testing
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&requestDatamodel.ExpenseRequest{})
		Expect(err).NotTo(HaveOccurred())

		repo = requestPostgres.NewRequestRepository(db)
	})

	Describe("Create and GetByID", func() {
		It("should round-trip a request", func() {
			req := newRequest("r1", 12000, request.StatusPendingHead, time.Now())

			Expect(repo.Create(req)).To(Succeed())

			loaded, err := repo.GetByID("r1")
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Title).To(Equal(req.Title))
			Expect(loaded.Amount).To(Equal(req.Amount))
			Expect(loaded.Status).To(Equal(request.StatusPendingHead))
		})

		It("should map a missing record to the workflow error", func() {
			_, err := repo.GetByID("missing")

			Expect(err).To(MatchError(internal.ErrRequestNotFound))
		})
	})

	Describe("GetByStatus", func() {
		It("should return the queue oldest first", func() {
			base := time.Now().Add(-time.Hour)
			Expect(repo.Create(newRequest("r2", 1000, request.StatusPendingHead, base.Add(10*time.Minute)))).To(Succeed())
			Expect(repo.Create(newRequest("r1", 1000, request.StatusPendingHead, base))).To(Succeed())
			Expect(repo.Create(newRequest("r3", 1000, request.StatusApproved, base.Add(5*time.Minute)))).To(Succeed())

			queue, err := repo.GetByStatus([]request.Status{request.StatusPendingHead})

			Expect(err).NotTo(HaveOccurred())
			Expect(queue).To(HaveLen(2))
			Expect(queue[0].ID).To(Equal("r1"))
			Expect(queue[1].ID).To(Equal("r2"))
		})

		It("should span multiple stages", func() {
			now := time.Now()
			Expect(repo.Create(newRequest("r1", 1000, request.StatusPendingHead, now))).To(Succeed())
			Expect(repo.Create(newRequest("r2", 1000, request.StatusPendingFinance, now))).To(Succeed())
			Expect(repo.Create(newRequest("r3", 1000, request.StatusRejected, now))).To(Succeed())

			queue, err := repo.GetByStatus([]request.Status{
				request.StatusPendingHead,
				request.StatusPendingFinance,
				request.StatusPendingDirector,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(queue).To(HaveLen(2))
		})
	})

	Describe("UpdateStatus", func() {
		It("should persist the transition and the note", func() {
			Expect(repo.Create(newRequest("r1", 1000, request.StatusPendingHead, time.Now()))).To(Succeed())

			Expect(repo.UpdateStatus("r1", request.StatusRejected, "missing receipts")).To(Succeed())

			loaded, err := repo.GetByID("r1")
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Status).To(Equal(request.StatusRejected))
			Expect(loaded.Note).To(Equal("missing receipts"))
		})

		It("should keep the previous note when none is given", func() {
			Expect(repo.Create(newRequest("r1", 1000, request.StatusPendingFinance, time.Now()))).To(Succeed())
			Expect(repo.UpdateStatus("r1", request.StatusRejected, "first note")).To(Succeed())

			Expect(repo.UpdateStatus("r1", request.StatusRejected, "")).To(Succeed())

			loaded, err := repo.GetByID("r1")
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Note).To(Equal("first note"))
		})
	})

	Describe("ListUsage", func() {
		It("should project every request down to ledger rows", func() {
			now := time.Now()
			Expect(repo.Create(newRequest("r1", 12000, request.StatusApproved, now))).To(Succeed())
			Expect(repo.Create(newRequest("r2", 5000, request.StatusPendingHead, now))).To(Succeed())

			usages, err := repo.ListUsage()

			Expect(err).NotTo(HaveOccurred())
			Expect(usages).To(HaveLen(2))
			Expect(usages[0].ProjectID).To(Equal("p1"))
		})
	})
})
