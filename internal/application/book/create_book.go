package book

import (
	"context"

	"github.com/xiebiao/booktracker/internal/domain/book"
	"github.com/xiebiao/booktracker/pkg/metrics"
)

// CreateBookUseCase 图书登记用例
// 设计说明:
// 1. 应用层负责用例编排,协调领域服务完成业务流程
// 2. 校验规则(必填、长度、日期、重复)全部由领域服务负责
// 3. 登记成功后发布book.created事件并累加指标
type CreateBookUseCase struct {
	bookService book.Service
	events      EventPublisher
}

// NewCreateBookUseCase 创建登记用例
func NewCreateBookUseCase(bookService book.Service, events EventPublisher) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
		events:      events,
	}
}

// Execute 执行图书登记
func (uc *CreateBookUseCase) Execute(ctx context.Context, input *book.Book) (*book.Book, error) {
	created, err := uc.bookService.CreateBook(ctx, input)
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.BooksCreatedTotal)
	uc.events.PublishBookCreated(ctx, created)

	return created, nil
}
