package book

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/booktracker/internal/domain/book"
	"github.com/xiebiao/booktracker/pkg/logger"
	"github.com/xiebiao/booktracker/pkg/metrics"
	"github.com/xiebiao/booktracker/pkg/mq"
)

// 目录事件路由键
const (
	RoutingKeyBookCreated = "book.created"
	RoutingKeyBookUpdated = "book.updated"
	RoutingKeyBookDeleted = "book.deleted"
)

// BookEvent 目录变更事件
// 发往消息队列,供下游系统(搜索索引、推荐等)消费
type BookEvent struct {
	BookID     uint   `json:"book_id"`
	Title      string `json:"title,omitempty"`
	Author     string `json:"author,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// EventPublisher 目录事件发布端口
// 应用层只依赖接口,MQ实现和空实现都在本文件内
type EventPublisher interface {
	PublishBookCreated(ctx context.Context, b *book.Book)
	PublishBookUpdated(ctx context.Context, b *book.Book)
	PublishBookDeleted(ctx context.Context, id uint)
}

// NopPublisher 空实现,MQ未启用时使用
type NopPublisher struct{}

func (NopPublisher) PublishBookCreated(context.Context, *book.Book) {}
func (NopPublisher) PublishBookUpdated(context.Context, *book.Book) {}
func (NopPublisher) PublishBookDeleted(context.Context, uint)       {}

// MQPublisher 基于RabbitMQ的事件发布实现
// 设计说明:
// 1. 事件是尽力而为的通知:发布失败只记日志,不影响主流程的HTTP响应
// 2. 每次成功发布累加messages_published_total指标
type MQPublisher struct {
	publisher *mq.Publisher
}

// NewMQPublisher 创建MQ事件发布器
func NewMQPublisher(publisher *mq.Publisher) *MQPublisher {
	return &MQPublisher{publisher: publisher}
}

func (p *MQPublisher) PublishBookCreated(ctx context.Context, b *book.Book) {
	p.publish(ctx, RoutingKeyBookCreated, BookEvent{
		BookID:     b.ID,
		Title:      b.Title,
		Author:     b.Author,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (p *MQPublisher) PublishBookUpdated(ctx context.Context, b *book.Book) {
	p.publish(ctx, RoutingKeyBookUpdated, BookEvent{
		BookID:     b.ID,
		Title:      b.Title,
		Author:     b.Author,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (p *MQPublisher) PublishBookDeleted(ctx context.Context, id uint) {
	p.publish(ctx, RoutingKeyBookDeleted, BookEvent{
		BookID:     id,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

func (p *MQPublisher) publish(ctx context.Context, routingKey string, event BookEvent) {
	if err := p.publisher.Publish(ctx, routingKey, event); err != nil {
		logger.L().Warn("发布目录事件失败",
			zap.String("routing_key", routingKey),
			zap.Uint("book_id", event.BookID),
			zap.Error(err))
		return
	}
	metrics.IncCounterVec(metrics.MessagesPublishedTotal, routingKey)
}
