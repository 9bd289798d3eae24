package document

// pageFrame wraps a document body in a self-printing A4 page.
const pageFrame = `<!DOCTYPE html><html lang="th"><head><meta charset="UTF-8"><title>{{.DocTitle}}</title>
<style>
  @import url('https://fonts.googleapis.com/css2?family=Sarabun:wght@300;400;700&display=swap');
  @page { size: A4; margin-top: 2.5cm; margin-left: 3cm; margin-right: 2cm; margin-bottom: 2cm; }
  body { font-family: 'TH Sarabun PSK', 'Sarabun', sans-serif; font-size: 16pt; font-weight: 400; line-height: 1.3; color: #000; }
  strong, b { font-weight: 700; }
  .garuda { text-align: center; margin-bottom: 0px; padding-top: 0px; }
  .garuda img { width: 3cm; height: auto; }
  .header { text-align: center; font-weight: bold; font-size: 24pt; margin-top: 10px; margin-bottom: 10px; }
  .doc-num { position: absolute; top: 0; right: 0; font-size: 16pt; }
  .memo-header { font-weight: bold; font-size: 29pt; text-align: center; margin-bottom: 10px; }
  .row { display: flex; margin-bottom: 6px; align-items: baseline; }
  .label { font-weight: bold; width: auto; margin-right: 10px; white-space: nowrap; font-size: 20pt; }
  .value { flex-grow: 1; border-bottom: 1px dotted #000; padding-left: 5px; }
  .content { margin-top: 20px; text-indent: 2.5cm; text-align: justify; font-size: 16pt; }
  .table-bordered { width: 100%; border-collapse: collapse; margin-top: 15px; }
  .table-bordered th, .table-bordered td { border: 1px solid #000; padding: 6px; text-align: center; font-size: 16pt; }
  .table-bordered th { font-weight: bold; }
  .table-bordered td.left { text-align: left; }
  .signature-section { margin-top: 50px; display: flex; justify-content: space-around; flex-wrap: wrap; }
  .signature-box { width: 45%; text-align: center; margin-bottom: 30px; page-break-inside: avoid; }
  .checkbox { display: inline-block; width: 16px; height: 16px; border: 1px solid #000; margin-right: 5px; vertical-align: middle; }
  @media print { body { -webkit-print-color-adjust: exact; } }
</style></head>
<body>{{template "body" .}}<script>window.onload=()=>{window.print();}</script></body></html>`

// proposalBody is the project proposal sheet.
const proposalBody = `<div class="garuda"><img src="{{.GarudaURL}}" alt="Garuda"></div>
<div class="header">แบบเสนอโครงการ<br>ประจำปีงบประมาณ {{.Project.FiscalYear}}</div>
<div class="content" style="text-indent: 0;"><strong>1. ชื่อโครงการ:</strong> {{.Project.Name}}</div>
<div class="content" style="text-indent: 0; margin-top: 5px;"><strong>2. หน่วยงาน:</strong> {{.Project.Department}}</div>
<div class="content" style="text-indent: 0; margin-top: 5px;"><strong>3. หลักการและเหตุผล</strong><br>&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;{{orBlank .Project.Rationale "-"}}</div>
<div class="content" style="text-indent: 0; margin-top: 5px;"><strong>4. วัตถุประสงค์</strong><ul>{{range .Project.Objectives}}<li>{{.}}</li>{{end}}</ul></div>
<div class="content" style="text-indent: 0; margin-top: 5px;"><strong>5. งบประมาณ:</strong> {{money .Project.TotalBudget}} บาท</div>
<div class="signature-section">
  <div class="signature-box">ลงชื่อ..................................................<br>({{orBlank .Project.ProposerName .Project.OwnerID}})<br>ผู้เสนอโครงการ</div>
  <div class="signature-box">ลงชื่อ..................................................<br>(..................................................)<br>ผู้อนุมัติโครงการ</div>
</div>`

// approvalMemoBody is the budget-approval memo used for activity budget,
// disbursement, and speaker remuneration requests.
const approvalMemoBody = `<div class="doc-num">{{.FormLabel}}</div>
<div class="garuda"><img src="{{.GarudaURL}}"></div>
<div class="memo-header">บันทึกข้อความ</div>
<div class="row"><div class="label">ส่วนราชการ</div><div class="value">{{.Project.Department}} {{.SchoolName}}</div></div>
<div class="row"><div class="label">ที่</div><div class="value">-</div><div class="label" style="width:auto; margin-left: 20px;">วันที่</div><div class="value">{{thaiDate .Request.Date}}</div></div>
<div class="row"><div class="label">เรื่อง</div><div class="value">ขออนุมัติงบประมาณดำเนินกิจกรรม: {{.Request.Title}}</div></div>
<hr style="margin: 10px 0; border: none; border-bottom: 1px solid #000;">
<div style="margin-bottom:10px; font-size: 16pt;"><strong>เรียน</strong> ผู้อำนวยการ{{.SchoolName}}</div>
<div class="content">
  ด้วยกลุ่มสาระ/งาน {{.Project.Department}} ได้รับอนุมัติให้ดำเนินการตามแผนปฏิบัติการประจำปีการศึกษา {{.Project.FiscalYear}}
  โครงการ {{.Project.Name}}
  มีความประสงค์ขออนุมัติใช้งบประมาณ เพื่อใช้ในกิจกรรม <strong>&quot;{{.Request.Title}}&quot;</strong>
  ระหว่างวันที่ {{thaiDatePtr .Request.ActivityStartDate}} ถึง {{thaiDatePtr .Request.ActivityEndDate}} ณ {{orBlank .Request.Location .SchoolName}}
</div>
<div class="content">
  โดยมีรายละเอียดค่าใช้จ่ายดังนี้:
  <table class="table-bordered">
    <tr><th style="width:10%">ลำดับ</th><th>รายการ</th><th style="width:25%">จำนวนเงิน (บาท)</th></tr>
    <tr><td>1</td><td class="left">{{.Request.Category}} - {{orBlank .Request.Description .Request.Title}}</td><td>{{money .Request.Amount}}</td></tr>
    <tr><td colspan="2" style="text-align:right; padding-right: 20px;"><strong>รวมเป็นเงินทั้งสิ้น</strong></td><td><strong>{{money .Request.Amount}}</strong></td></tr>
  </table>
  <div style="text-align:right; margin-top:5px">{{moneyText .Request.Amount}}</div>
</div>
<div class="content">จึงเรียนมาเพื่อโปรดพิจารณา</div>
<div class="signature-section">
  <div class="signature-box">ลงชื่อ..................................................<br>({{.Request.RequesterName}})<br>ผู้ขออนุมัติ</div>
  <div class="signature-box">ลงชื่อ..................................................<br>(..................................................)<br>ผู้รับผิดชอบกิจกรรม</div>
</div>
<div style="border:1px solid #000; padding:15px; margin-top:20px; page-break-inside: avoid;">
  <div><strong>ความเห็นของผู้อำนวยการ</strong></div>
  <div style="margin:10px 0">
    <span class="checkbox"></span> อนุมัติ
    <span class="checkbox" style="margin-left:20px"></span> ไม่อนุมัติ เนื่องจาก................................
  </div>
  <div style="text-align:center; margin-top:30px">
    ลงชื่อ..................................................<br>(..................................................)<br>ผู้อำนวยการ{{.SchoolName}}
  </div>
</div>`

// loanContractBody is the government loan contract memo.
const loanContractBody = `<div class="doc-num">{{.FormLabel}}</div>
<div class="garuda"><img src="{{.GarudaURL}}"></div>
<div class="memo-header">บันทึกข้อความ</div>
<div class="row"><div class="label">ส่วนราชการ</div><div class="value">{{.Project.Department}}</div></div>
<div class="row"><div class="label">ที่</div><div class="value">{{orBlank .Request.LoanContractNo "-"}}</div><div class="label" style="width:auto; margin-left: 20px;">วันที่</div><div class="value">{{thaiDate .Request.Date}}</div></div>
<div class="row"><div class="label">เรื่อง</div><div class="value">ขออนุมัติยืมเงินราชการ</div></div>
<hr style="margin: 10px 0; border: none; border-bottom: 1px solid #000;">
<div style="margin-bottom:10px; font-size: 16pt;"><strong>เรียน</strong> ผู้อำนวยการ{{.SchoolName}}</div>
<div class="content">
  ข้าพเจ้า <strong>{{.Request.RequesterName}}</strong> ตำแหน่ง ครูผู้สอน
  มีความประสงค์ขอยืมเงินอุดหนุน โครงการ <strong>{{.Project.Name}}</strong>
  หมวดรายการ <strong>{{.Request.Category}}</strong>
  เพื่อเป็นค่าใช้จ่ายในการ <strong>{{.Request.Title}}</strong>
  ระหว่างวันที่ {{thaiDatePtr .Request.ActivityStartDate}} ณ {{orBlank .Request.Location "-"}}
</div>
<div class="content">
  รวมเป็นเงินทั้งสิ้น <strong>{{money .Request.Amount}} บาท</strong> {{moneyText .Request.Amount}}
  <br>ข้าพเจ้าสัญญาว่าจะปฏิบัติตามระเบียบของทางราชการทุกประการ และจะนำใบสำคัญคู่จ่ายที่ถูกต้องมาส่งใช้ภายในกำหนด
</div>
<div class="signature-section">
  <div class="signature-box">ลงชื่อ..................................................ผู้ยืมเงิน<br>({{.Request.RequesterName}})</div>
  <div class="signature-box">ลงชื่อ..................................................หัวหน้างานการเงิน<br>(..................................................)</div>
</div>
<div style="text-align:center; margin-top:40px">
  <div><strong>คำอนุมัติ</strong></div>
  <div>อนุมัติให้ยืมเงินตามเงื่อนไขข้างต้นได้ เป็นจำนวนเงิน {{money .Request.Amount}} บาท</div>
  <div style="margin-top:40px">ลงชื่อ..................................................<br>(..................................................)<br>ผู้อำนวยการโรงเรียน</div>
</div>`

// receiptBody is the payment receipt voucher.
const receiptBody = `<div class="doc-num">{{.FormLabel}}</div>
<div class="garuda"><img src="{{.GarudaURL}}"></div>
<div class="header" style="margin-top:10px">ใบสำคัญรับเงิน</div>
<div style="text-align:right; font-size: 16pt;">
  ที่ {{.SchoolName}}<br>
  วันที่ {{thaiDate .Today}}
</div>
<div class="content" style="margin-top:30px">
  ข้าพเจ้า <strong>{{orBlank .Request.PayeeName "............................................................"}}</strong>
  <br>อยู่บ้านเลขที่ <strong>{{orBlank .Request.PayeeAddress ".................................................................................................................."}}</strong>
  <br>เลขประจำตัวผู้เสียภาษี/เลขบัตรประชาชน <strong>{{orBlank .Request.PayeeIDCard "............................................."}}</strong>
</div>
<div class="content">ได้รับเงินจาก {{.SchoolName}} ดังรายการต่อไปนี้:</div>
<table class="table-bordered" style="margin-top:20px">
  <tr><th style="width:70%">รายการ</th><th>จำนวนเงิน (บาท)</th></tr>
  <tr>
    <td class="left" style="height:100px; vertical-align:top;">{{.Request.Title}} <br> {{.Request.Description}}</td>
    <td style="vertical-align:top;">{{money .Request.Amount}}</td>
  </tr>
  <tr>
    <td style="text-align:right; padding-right: 10px;"><strong>รวมเป็นเงินทั้งสิ้น</strong></td>
    <td><strong>{{money .Request.Amount}}</strong></td>
  </tr>
</table>
<div style="text-align:center; margin-top:10px">{{moneyText .Request.Amount}}</div>
<div class="signature-section" style="margin-top:60px">
  <div class="signature-box">ลงชื่อ..................................................ผู้รับเงิน<br>({{orBlank .Request.PayeeName ".................................................."}})</div>
  <div class="signature-box">ลงชื่อ..................................................ผู้จ่ายเงิน<br>({{.Request.RequesterName}})</div>
</div>`
