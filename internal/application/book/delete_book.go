package book

import (
	"context"

	"github.com/xiebiao/booktracker/internal/domain/book"
	"github.com/xiebiao/booktracker/pkg/metrics"
)

// DeleteBookUseCase 图书删除用例
type DeleteBookUseCase struct {
	bookService book.Service
	events      EventPublisher
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service, events EventPublisher) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		events:      events,
	}
}

// Execute 执行图书删除
// 目标不存在时领域服务返回ErrBookNotFound
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	metrics.IncCounter(metrics.BooksDeletedTotal)
	uc.events.PublishBookDeleted(ctx, id)

	return nil
}
