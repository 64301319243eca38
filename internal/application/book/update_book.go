package book

import (
	"context"

	"github.com/xiebiao/booktracker/internal/domain/book"
	"github.com/xiebiao/booktracker/pkg/metrics"
)

// UpdateBookUseCase 图书信息修改用例
type UpdateBookUseCase struct {
	bookService book.Service
	events      EventPublisher
}

// NewUpdateBookUseCase 创建修改用例
func NewUpdateBookUseCase(bookService book.Service, events EventPublisher) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
		events:      events,
	}
}

// Execute 执行图书修改
// 领域服务负责:目标存在性检查、字段校验、书名+作者改动时的重复检查
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, input *book.Book) (*book.Book, error) {
	updated, err := uc.bookService.UpdateBook(ctx, id, input)
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.BooksUpdatedTotal)
	uc.events.PublishBookUpdated(ctx, updated)

	return updated, nil
}
