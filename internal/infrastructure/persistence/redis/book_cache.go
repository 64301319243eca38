package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xiebiao/booktracker/internal/domain/book"
	"github.com/xiebiao/booktracker/pkg/logger"
	"github.com/xiebiao/booktracker/pkg/metrics"
)

// bookCacheRepository 图书仓储的缓存装饰器
// 设计说明:
// 1. Cache-Aside模式:FindByID先查缓存,未命中回源数据库并回填
// 2. 写操作(Save/DeleteByID)先落库,成功后失效缓存
// 3. Redis故障只记日志不影响主流程,请求退化为直连数据库
// 4. 其余查询方法直接透传给被装饰的仓储(列表类查询命中率低,不缓存)
type bookCacheRepository struct {
	book.Repository

	client *redis.Client
	ttl    time.Duration
}

// NewBookCacheRepository 用Redis缓存包装图书仓储
func NewBookCacheRepository(inner book.Repository, client *redis.Client, ttl time.Duration) book.Repository {
	return &bookCacheRepository{
		Repository: inner,
		client:     client,
		ttl:        ttl,
	}
}

func bookDetailKey(id uint) string {
	return fmt.Sprintf("book:detail:%d", id)
}

// FindByID 带缓存的图书详情查询
func (r *bookCacheRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	key := bookDetailKey(id)

	// 1. 查缓存
	data, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		var b book.Book
		if err := json.Unmarshal(data, &b); err == nil {
			metrics.IncCounter(metrics.CacheHitsTotal)
			return &b, nil
		}
		// 缓存内容损坏,删掉重新回源
		r.client.Del(ctx, key)
	} else if err != redis.Nil {
		logger.L().Warn("读取图书缓存失败", zap.Uint("book_id", id), zap.Error(err))
	}
	metrics.IncCounter(metrics.CacheMissesTotal)

	// 2. 回源数据库
	b, err := r.Repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存
	if payload, err := json.Marshal(b); err == nil {
		if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
			logger.L().Warn("写入图书缓存失败", zap.Uint("book_id", id), zap.Error(err))
		}
	}

	return b, nil
}

// Save 落库后失效缓存
func (r *bookCacheRepository) Save(ctx context.Context, b *book.Book) (*book.Book, error) {
	saved, err := r.Repository.Save(ctx, b)
	if err != nil {
		return nil, err
	}

	if err := r.client.Del(ctx, bookDetailKey(saved.ID)).Err(); err != nil {
		logger.L().Warn("失效图书缓存失败", zap.Uint("book_id", saved.ID), zap.Error(err))
	}
	return saved, nil
}

// DeleteByID 删除后失效缓存
func (r *bookCacheRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.Repository.DeleteByID(ctx, id); err != nil {
		return err
	}

	if err := r.client.Del(ctx, bookDetailKey(id)).Err(); err != nil {
		logger.L().Warn("失效图书缓存失败", zap.Uint("book_id", id), zap.Error(err))
	}
	return nil
}
