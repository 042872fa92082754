package service

import (
	"context"
	"sync"
)

// CartObserver 购物车变更观察者回调
type CartObserver func(ctx context.Context) error

type cartObserverEntry struct {
	id uint64
	fn CartObserver
}

// CartEvents 进程级购物车变更广播点。观察者在挂载时订阅、卸载时退订，
// 通知按订阅顺序逐个同步执行，保证 UI 刷新顺序确定且资源占用有界
type CartEvents struct {
	mu        sync.Mutex
	nextID    uint64
	observers []cartObserverEntry
}

// NewCartEvents 创建广播点
func NewCartEvents() *CartEvents {
	return &CartEvents{}
}

// Subscribe 注册观察者，返回用于退订的句柄
func (e *CartEvents) Subscribe(fn CartObserver) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	e.observers = append(e.observers, cartObserverEntry{id: e.nextID, fn: fn})
	return e.nextID
}

// Unsubscribe 退订观察者，句柄无效时为 no-op
func (e *CartEvents) Unsubscribe(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, entry := range e.observers {
		if entry.id == id {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// Publish 按注册顺序依次通知所有观察者，第一个失败的观察者中止通知并返回其错误。
// 没有观察者时为 no-op
func (e *CartEvents) Publish(ctx context.Context) error {
	e.mu.Lock()
	snapshot := make([]cartObserverEntry, len(e.observers))
	copy(snapshot, e.observers)
	e.mu.Unlock()

	for _, entry := range snapshot {
		if entry.fn == nil {
			continue
		}
		if err := entry.fn(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Len 当前观察者数量
func (e *CartEvents) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.observers)
}
