package book

import (
	"context"
	"strings"

	"github.com/xiebiao/booktracker/internal/domain/book"
	"github.com/xiebiao/booktracker/pkg/metrics"
)

// ListBooksQuery 图书列表查询参数
// 来自HTTP查询串,三个参数同时出现时按 search > genre > author 取第一个生效
type ListBooksQuery struct {
	Search string // 书名或作者的子串搜索(忽略大小写)
	Genre  string // 类型整串匹配(忽略大小写)
	Author string // 作者子串搜索(忽略大小写)
}

// ListBooksUseCase 图书列表/搜索用例
// 设计说明:
// 1. 筛选参数的优先级在应用层裁决,领域服务只提供单一语义的查询
// 2. 参数为空白串时视同未提供,落到下一优先级
// 3. 按筛选方式累加搜索指标,便于观察各入口的使用情况
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context, query ListBooksQuery) ([]*book.Book, error) {
	switch {
	case strings.TrimSpace(query.Search) != "":
		metrics.IncCounterVec(metrics.BookSearchesTotal, "search")
		return uc.bookService.SearchBooks(ctx, query.Search)
	case strings.TrimSpace(query.Genre) != "":
		metrics.IncCounterVec(metrics.BookSearchesTotal, "genre")
		return uc.bookService.GetBooksByGenre(ctx, query.Genre)
	case strings.TrimSpace(query.Author) != "":
		metrics.IncCounterVec(metrics.BookSearchesTotal, "author")
		return uc.bookService.SearchBooksByAuthor(ctx, query.Author)
	default:
		metrics.IncCounterVec(metrics.BookSearchesTotal, "all")
		return uc.bookService.GetAllBooks(ctx)
	}
}

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建详情用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute 按ID查询图书,不存在时返回ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*book.Book, error) {
	return uc.bookService.GetBookByID(ctx, id)
}
