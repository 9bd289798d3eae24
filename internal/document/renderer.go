package document

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/tossaporn/school-budget/internal/project"
	"github.com/tossaporn/school-budget/internal/request"
)

// Printable document layout per the government correspondence regulation:
// Sarabun 16pt body, A4 with 2.5cm top / 3cm left / 2cm right / 2cm bottom
// margins, 3cm Garuda emblem.
const (
	schoolName = "โรงเรียนเตรียมอุดมศึกษาน้อมเกล้า สมุทรปราการ"
	garudaURL  = "https://i.postimg.cc/RF8dJtqJ/png-clipart-emblem-of-thailand-garuda-coat-of-arms-elephant-god-festival-miscellaneous-legendary-cre.png"

	blankLine = "........................................"
)

var thaiMonths = [...]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

// formatThaiDate renders a date in Thai long form with the Buddhist-era year.
// A zero date renders as a dotted fill-in line.
func formatThaiDate(t time.Time) string {
	if t.IsZero() {
		return blankLine
	}
	return fmt.Sprintf("%d %s %d", t.Day(), thaiMonths[t.Month()-1], t.Year()+543)
}

func formatThaiDatePtr(t *time.Time) string {
	if t == nil {
		return blankLine
	}
	return formatThaiDate(*t)
}

// formatAmount groups digits with commas, e.g. 50000 -> "50,000".
func formatAmount(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// amountText renders the parenthesised baht phrase under an amount table.
func amountText(amount int64) string {
	return fmt.Sprintf("(%s บาทถ้วน)", formatAmount(amount))
}

func orBlank(s, fill string) string {
	if s == "" {
		return fill
	}
	return s
}

var funcMap = template.FuncMap{
	"thaiDate":    formatThaiDate,
	"thaiDatePtr": formatThaiDatePtr,
	"money":       formatAmount,
	"moneyText":   amountText,
	"orBlank":     orBlank,
}

// Renderer produces self-contained printable HTML pages. It performs no I/O;
// callers write the result to the response.
type Renderer struct {
	proposal *template.Template
	forms    map[request.FormType]*template.Template
}

func NewRenderer() (*Renderer, error) {
	proposal, err := template.New("proposal").Funcs(funcMap).Parse(pageFrame)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document frame: %w", err)
	}
	if _, err := proposal.New("body").Parse(proposalBody); err != nil {
		return nil, fmt.Errorf("failed to parse proposal template: %w", err)
	}

	bodies := map[request.FormType]string{
		request.FormActivityBudget:      approvalMemoBody,
		request.FormDisbursement:        approvalMemoBody,
		request.FormLoanContract:        loanContractBody,
		request.FormSpeakerRemuneration: approvalMemoBody,
		request.FormPaymentReceipt:      receiptBody,
	}

	forms := make(map[request.FormType]*template.Template, len(bodies))
	for formType, body := range bodies {
		tmpl, err := template.New(string(formType)).Funcs(funcMap).Parse(pageFrame)
		if err != nil {
			return nil, fmt.Errorf("failed to parse document frame: %w", err)
		}
		if _, err := tmpl.New("body").Parse(body); err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", formType, err)
		}
		forms[formType] = tmpl
	}

	return &Renderer{proposal: proposal, forms: forms}, nil
}

type proposalData struct {
	DocTitle   string
	Project    *project.Project
	SchoolName string
	GarudaURL  string
}

type requestData struct {
	DocTitle   string
	Request    *request.ExpenseRequest
	Project    *project.Project
	FormLabel  string
	SchoolName string
	GarudaURL  string
	Today      time.Time
}

var formLabels = map[request.FormType]string{
	request.FormActivityBudget:      "แบบ งป.01",
	request.FormDisbursement:        "แบบ งป.02",
	request.FormLoanContract:        "แบบ งป.03",
	request.FormSpeakerRemuneration: "แบบ งป.06",
	request.FormPaymentReceipt:      "แบบ งป.08",
}

// RenderProjectProposal renders the project proposal sheet.
func (r *Renderer) RenderProjectProposal(p *project.Project) (string, error) {
	var b strings.Builder
	err := r.proposal.Execute(&b, proposalData{
		DocTitle:   p.Name,
		Project:    p,
		SchoolName: schoolName,
		GarudaURL:  garudaURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render project proposal: %w", err)
	}
	return b.String(), nil
}

// RenderRequestDocument renders the printable form matching the request's
// form type. An unrecognised form type falls back to the approval memo.
func (r *Renderer) RenderRequestDocument(req *request.ExpenseRequest, p *project.Project) (string, error) {
	tmpl, ok := r.forms[req.FormType]
	if !ok {
		tmpl = r.forms[request.FormActivityBudget]
	}

	var b strings.Builder
	err := tmpl.Execute(&b, requestData{
		DocTitle:   req.Title,
		Request:    req,
		Project:    p,
		FormLabel:  formLabels[req.FormType],
		SchoolName: schoolName,
		GarudaURL:  garudaURL,
		Today:      time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render %s document: %w", req.FormType, err)
	}
	return b.String(), nil
}
