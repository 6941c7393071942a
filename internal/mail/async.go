// File: internal/mail/async.go
package mail

import (
	"context"
	"time"

	"go-barber-api/internal/worker"

	"go.uber.org/zap"
)

// AsyncMailer 將寄信工作丟到 worker pool，呼叫端不等待 SMTP。
// 佇列滿且 ctx 結束時丟棄該封信；寄送失敗只記錄警告，不會回傳給呼叫端。
type AsyncMailer struct {
	Mailer  Mailer
	Pool    worker.Pool
	Logger  *zap.Logger
	Timeout time.Duration
}

func (a AsyncMailer) SendCancellation(ctx context.Context, m CancellationMail) error {
	err := a.Pool.TrySubmit(ctx, func() {
		ctx := context.Background()
		if a.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, a.Timeout)
			defer cancel()
		}
		if err := a.Mailer.SendCancellation(ctx, m); err != nil {
			a.Logger.Warn("cancellation mail not delivered",
				zap.String("to", m.ProviderEmail),
				zap.Error(err),
			)
			return
		}
		a.Logger.Info("cancellation mail sent", zap.String("to", m.ProviderEmail))
	})
	if err != nil {
		a.Logger.Warn("cancellation mail dropped",
			zap.String("to", m.ProviderEmail),
			zap.Error(err),
		)
	}
	return nil
}
