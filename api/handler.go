package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"expensewise/events"
	"expensewise/logger"
	"expensewise/models"
	"expensewise/service"
	"expensewise/store"
)

// Deps 各处理器共享的依赖
type Deps struct {
	Store  store.Store
	Events events.Publisher
	Alerts *service.BudgetAlerter
	Logger *logger.Logger
	Now    func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Events == nil {
		d.Events = events.Nop{}
	}
	if d.Logger == nil {
		d.Logger = logger.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// publish 发布变更事件，失败只记录日志
func (d Deps) publish(ctx context.Context, name, id string, payload any) {
	if err := d.Events.Publish(context.WithoutCancel(ctx), events.New(name, id, payload)); err != nil {
		d.Logger.Warn("publish event failed", "event", name, "id", id, "error", err)
	}
}

// checkBudget 后台检查分类预算是否超支
func (d Deps) checkBudget(category string, at time.Time) {
	if d.Alerts == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := d.Alerts.CheckCategory(ctx, category, at); err != nil {
			d.Logger.Warn("budget alert check failed", "category", category, "error", err)
		}
	}()
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04", "2006-01-02"}

// parseDate 解析请求中的日期，无时区信息的格式按本地时间处理
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339Nano {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, models.NewValidationError("date", fmt.Sprintf("date %q is not a valid date", s))
}

// parseMonthQuery 解析 YYYY-MM，为空时取当前月份
func parseMonthQuery(s string, now time.Time) (string, time.Time, error) {
	if strings.TrimSpace(s) == "" {
		month := models.MonthKey(now)
		ref, _ := models.ParseMonth(month, now.Location())
		return month, ref, nil
	}
	ref, err := models.ParseMonth(s, time.Local)
	if err != nil {
		return "", time.Time{}, models.NewValidationError("month", "month must be in YYYY-MM format")
	}
	return models.MonthKey(ref), ref, nil
}
