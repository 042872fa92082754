package worker

import (
	"context"
	"errors"
	"time"

	"github.com/carvedrock/storefront/internal/config"
	"github.com/carvedrock/storefront/internal/logger"
	"github.com/carvedrock/storefront/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 异步队列服务。消费 cart:prune 任务，并按固定间隔自行入队
// 下一轮清理，使清理执行获得队列的重试语义
type Service struct {
	name     string
	server   *asynq.Server
	mux      *asynq.ServeMux
	consumer *Consumer
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.Container != nil {
		go s.runPruneSchedulerLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

func (s *Service) runPruneSchedulerLoop(ctx context.Context) {
	if s == nil || s.consumer == nil || s.consumer.Container == nil {
		return
	}
	cfg := s.consumer.Config
	if cfg.Cart.RetentionDays <= 0 {
		logger.Infow("worker_cart_prune_scheduler_disabled", "retention_days", cfg.Cart.RetentionDays)
		return
	}
	interval := time.Duration(cfg.Cart.PruneIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	enqueueOnce := func() {
		err := s.consumer.QueueClient.EnqueueCartPrune(queue.CartPrunePayload{
			RetentionDays: cfg.Cart.RetentionDays,
		})
		if err != nil {
			logger.Warnw("worker_cart_prune_enqueue_failed", "error", err)
		}
	}
	enqueueOnce()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			enqueueOnce()
		}
	}
}
