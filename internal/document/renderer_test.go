package document_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tossaporn/school-budget/internal/document"
	"github.com/tossaporn/school-budget/internal/project"
	"github.com/tossaporn/school-budget/internal/request"
	"github.com/tossaporn/school-budget/internal/user"
)

func TestDocuments(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Documents Suite")
}

var _ = Describe("Renderer", func() {
	var (
		renderer *document.Renderer
		proj     *project.Project
		req      *request.ExpenseRequest
	)

	BeforeEach(func() {
		var err error
		renderer, err = document.NewRenderer()
		Expect(err).ToNot(HaveOccurred())

		proj = &project.Project{
			ID:           "p1",
			Name:         "โครงการยกระดับผลสัมฤทธิ์ทางการเรียน",
			FiscalYear:   "2568",
			Department:   user.DepartmentAcademic,
			OwnerID:      "u1",
			ProposerName: "ครูวิชาการ รักเรียน",
			TotalBudget:  150000,
			Rationale:    "เพื่อยกระดับผลการสอบระดับชาติ",
			Objectives:   []string{"ยกระดับคะแนนเฉลี่ย", "เพิ่มจำนวนผู้สอบผ่าน"},
		}

		req = &request.ExpenseRequest{
			ID:            "r1",
			ProjectID:     "p1",
			RequesterID:   "u1",
			RequesterName: "ครูวิชาการ รักเรียน",
			Title:         "ค่าวิทยากรติว O-NET",
			Category:      request.CategoryRemuneration,
			Amount:        12000,
			Date:          time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
			Status:        request.StatusApproved,
			FormType:      request.FormActivityBudget,
		}
	})

	Describe("RenderProjectProposal", func() {
		It("should produce a printable page with the project fields", func() {
			page, err := renderer.RenderProjectProposal(proj)

			Expect(err).ToNot(HaveOccurred())
			Expect(page).To(ContainSubstring("แบบเสนอโครงการ"))
			Expect(page).To(ContainSubstring(proj.Name))
			Expect(page).To(ContainSubstring("2568"))
			Expect(page).To(ContainSubstring("150,000"))
			Expect(page).To(ContainSubstring(proj.ProposerName))
			for _, objective := range proj.Objectives {
				Expect(page).To(ContainSubstring(objective))
			}
		})
	})

	Describe("RenderRequestDocument", func() {
		It("should render the approval memo for the activity budget form", func() {
			page, err := renderer.RenderRequestDocument(req, proj)

			Expect(err).ToNot(HaveOccurred())
			Expect(page).To(ContainSubstring("แบบ งป.01"))
			Expect(page).To(ContainSubstring("บันทึกข้อความ"))
			Expect(page).To(ContainSubstring(req.Title))
			Expect(page).To(ContainSubstring("12,000"))
			Expect(page).To(ContainSubstring(req.RequesterName))
		})

		It("should render the Thai date in the Buddhist era", func() {
			page, err := renderer.RenderRequestDocument(req, proj)

			Expect(err).ToNot(HaveOccurred())
			Expect(page).To(ContainSubstring("15 กุมภาพันธ์ 2568"))
		})

		It("should render the loan contract form", func() {
			req.FormType = request.FormLoanContract

			page, err := renderer.RenderRequestDocument(req, proj)

			Expect(err).ToNot(HaveOccurred())
			Expect(page).To(ContainSubstring("แบบ งป.03"))
			Expect(page).To(ContainSubstring("ขออนุมัติยืมเงินราชการ"))
		})

		It("should render the payment receipt with payee details", func() {
			req.FormType = request.FormPaymentReceipt
			req.PayeeName = "นายผู้รับเงิน"
			req.PayeeAddress = "99 หมู่ 1"
			req.PayeeIDCard = "1100500000001"

			page, err := renderer.RenderRequestDocument(req, proj)

			Expect(err).ToNot(HaveOccurred())
			Expect(page).To(ContainSubstring("แบบ งป.08"))
			Expect(page).To(ContainSubstring("ใบสำคัญรับเงิน"))
			Expect(page).To(ContainSubstring(req.PayeeName))
			Expect(page).To(ContainSubstring(req.PayeeIDCard))
		})

		It("should fill dotted lines for missing payee details", func() {
			req.FormType = request.FormPaymentReceipt

			page, err := renderer.RenderRequestDocument(req, proj)

			Expect(err).ToNot(HaveOccurred())
			Expect(page).To(ContainSubstring("............"))
		})

		It("should fall back to the approval memo for an unknown form type", func() {
			req.FormType = request.FormType("unknown")

			page, err := renderer.RenderRequestDocument(req, proj)

			Expect(err).ToNot(HaveOccurred())
			Expect(page).To(ContainSubstring("บันทึกข้อความ"))
		})
	})
})
