package queue

import (
	"encoding/json"

	"github.com/carvedrock/storefront/internal/constants"

	"github.com/hibiken/asynq"
)

// TaskCartPrune 购物车保留期清理任务
const TaskCartPrune = constants.TaskCartPrune

// CartPrunePayload 购物车清理任务载荷
type CartPrunePayload struct {
	RetentionDays int `json:"retention_days"`
}

// NewCartPruneTask 创建购物车清理任务
func NewCartPruneTask(payload CartPrunePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCartPrune, body), nil
}
