package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/carvedrock/storefront/internal/logger"
	"github.com/carvedrock/storefront/internal/provider"
	"github.com/carvedrock/storefront/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCartPrune, c.handleCartPrune)
}

func (c *Consumer) handleCartPrune(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_cart_prune_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CartPrunePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_cart_prune_unmarshal_failed", "error", err)
		return err
	}
	retentionDays := payload.RetentionDays
	if retentionDays <= 0 {
		retentionDays = c.Config.Cart.RetentionDays
	}
	if retentionDays <= 0 {
		logger.Debugw("worker_cart_prune_skip_disabled", "retention_days", retentionDays)
		return nil
	}
	removed, err := c.CartService.PruneStale(time.Duration(retentionDays) * 24 * time.Hour)
	if err != nil {
		logger.Warnw("worker_cart_prune_failed", "retention_days", retentionDays, "error", err)
		return err
	}
	logger.Infow("worker_cart_prune_done", "retention_days", retentionDays, "removed", removed)
	return nil
}
