package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	projectDatamodel "github.com/tossaporn/school-budget/internal/core/datamodel/project"
	requestDatamodel "github.com/tossaporn/school-budget/internal/core/datamodel/request"
	userDatamodel "github.com/tossaporn/school-budget/internal/core/datamodel/user"
	"github.com/tossaporn/school-budget/internal/user"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample users, projects, and expense requests for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"expense_requests", "access_requests", "projects", "users"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		seedUsers(db)
		seedProjects(db)
		seedRequests(db)

		fmt.Println("Seed data loaded successfully")
	},
}

func seedUsers(db *gorm.DB) {
	users := []userDatamodel.User{
		{ID: "admin_kru", Name: "Krutossaporn1988", Role: string(user.RoleAdmin), Department: string(user.DepartmentGeneral), Avatar: user.AvatarURL("Krutossaporn1988")},
		{ID: "u1", Name: "ครูวิชาการ รักเรียน", Role: string(user.RoleTeacher), Department: string(user.DepartmentAcademic), Avatar: user.AvatarURL("ครูวิชาการ รักเรียน")},
		{ID: "u2", Name: "หัวหน้าสมรักษ์ (งบประมาณ)", Role: string(user.RoleHeadOfDepartment), Department: string(user.DepartmentBudget), Avatar: user.AvatarURL("หัวหน้าสมรักษ์")},
		{ID: "u3", Name: "ผอ. เกรียงไกร", Role: string(user.RoleDirector), Department: string(user.DepartmentGeneral), Avatar: user.AvatarURL("ผอ. เกรียงไกร")},
		{ID: "u4", Name: "ครูวินัย (ปกครอง)", Role: string(user.RoleTeacher), Department: string(user.DepartmentStudentAffairs), Avatar: user.AvatarURL("ครูวินัย")},
		{ID: "u5", Name: "ครูบุคคล สรรหา", Role: string(user.RoleTeacher), Department: string(user.DepartmentPersonnel), Avatar: user.AvatarURL("ครูบุคคล สรรหา")},
		{ID: "u6", Name: "เจ้าหน้าที่การเงิน", Role: string(user.RoleFinance), Department: string(user.DepartmentBudget), Avatar: user.AvatarURL("เจ้าหน้าที่การเงิน")},
	}

	for _, u := range users {
		var exists int64
		db.Model(&userDatamodel.User{}).Where("id = ?", u.ID).Count(&exists)
		if exists > 0 {
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			log.Fatalf("failed to seed user %s: %v", u.ID, err)
		}
		fmt.Println("Seeded user:", u.Name)
	}
}

func seedProjects(db *gorm.DB) {
	projects := []projectDatamodel.Project{
		{ID: "p1", Name: "โครงการยกระดับผลสัมฤทธิ์ทางการเรียน (O-NET/TGAT)", FiscalYear: "2568", Department: string(user.DepartmentAcademic), OwnerID: "u1", TotalBudget: 150000, Status: "active", Activity: "ติวเข้มเติมเต็มความรู้"},
		{ID: "p2", Name: "โครงการพัฒนาหลักสูตรสถานศึกษาฐานสมรรถนะ", FiscalYear: "2568", Department: string(user.DepartmentAcademic), OwnerID: "u1", TotalBudget: 50000, Status: "active", IsNewActivity: true},
		{ID: "p3", Name: "โครงการพัฒนาระบบบริหารจัดการพัสดุและสินทรัพย์", FiscalYear: "2568", Department: string(user.DepartmentBudget), OwnerID: "u2", TotalBudget: 80000, Status: "active", Activity: "จัดซื้อโปรแกรมและอบรมเจ้าหน้าที่", IsNewActivity: true},
		{ID: "p4", Name: "โครงการปรับปรุงภูมิทัศน์และแหล่งเรียนรู้ในโรงเรียน", FiscalYear: "2568", Department: string(user.DepartmentGeneral), OwnerID: "u3", TotalBudget: 200000, Status: "active", Activity: "ทาสีอาคารและจัดสวนหย่อม"},
		{ID: "p5", Name: "โครงการส่งเสริมระเบียบวินัยและประชาธิปไตยในโรงเรียน", FiscalYear: "2568", Department: string(user.DepartmentStudentAffairs), OwnerID: "u4", TotalBudget: 40000, Status: "active", Activity: "ค่ายผู้นำนักเรียน"},
		{ID: "p6", Name: "โครงการพัฒนาครูและบุคลากรทางการศึกษา (อบรม/สัมมนา)", FiscalYear: "2568", Department: string(user.DepartmentPersonnel), OwnerID: "u5", TotalBudget: 100000, Status: "active", Activity: "ศึกษาดูงานโรงเรียนต้นแบบ"},
	}

	for _, p := range projects {
		var exists int64
		db.Model(&projectDatamodel.Project{}).Where("id = ?", p.ID).Count(&exists)
		if exists > 0 {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Fatalf("failed to seed project %s: %v", p.ID, err)
		}
		fmt.Println("Seeded project:", p.Name)
	}
}

func seedRequests(db *gorm.DB) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	requests := []requestDatamodel.ExpenseRequest{
		{ID: "r1", ProjectID: "p1", RequesterID: "u1", RequesterName: "ครูวิชาการ รักเรียน", Title: "ค่าวิทยากรติว O-NET ภาษาอังกฤษ", Category: "remuneration", Amount: 12000, Date: date(2025, time.February, 15), Status: "approved", FormType: "ngor_por_06"},
		{ID: "r2", ProjectID: "p1", RequesterID: "u1", RequesterName: "ครูวิชาการ รักเรียน", Title: "ค่าถ่ายเอกสารประกอบการติว", Category: "materials", Amount: 5000, Date: date(2025, time.February, 18), Status: "approved", FormType: "ngor_por_01"},
		{ID: "r3", ProjectID: "p4", RequesterID: "u3", RequesterName: "ผอ. เกรียงไกร", Title: "ซื้อสีทาอาคารเรียน 1", Category: "materials", Amount: 45000, Date: date(2025, time.March, 1), Status: "completed", FormType: "ngor_por_01"},
		{ID: "r4", ProjectID: "p5", RequesterID: "u4", RequesterName: "ครูวินัย (ปกครอง)", Title: "ค่าอาหารว่างกิจกรรมเลือกตั้งประธานนักเรียน", Category: "utilities", Amount: 3500, Date: date(2025, time.May, 20), Status: "pending_head", FormType: "ngor_por_01"},
	}

	for _, r := range requests {
		var exists int64
		db.Model(&requestDatamodel.ExpenseRequest{}).Where("id = ?", r.ID).Count(&exists)
		if exists > 0 {
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			log.Fatalf("failed to seed request %s: %v", r.ID, err)
		}
		fmt.Println("Seeded expense request:", r.Title)
	}

	// derive used budgets from the seeded request set
	if err := db.Exec(`
		UPDATE projects SET used_budget = COALESCE((
			SELECT SUM(amount) FROM expense_requests
			WHERE expense_requests.project_id = projects.id
			  AND expense_requests.status IN ('approved', 'completed')
		), 0)`).Error; err != nil {
		log.Fatalf("failed to derive used budgets: %v", err)
	}
	fmt.Println("Derived project used budgets")
}
