package book

import (
	"context"

	"github.com/xiebiao/booktracker/internal/domain/book"
)

// CatalogStats 目录统计快照
type CatalogStats struct {
	TotalBooks int64    `json:"total_books"`
	Genres     []string `json:"genres"`
}

// StatsUseCase 目录统计用例
// 汇总图书总数与全部类型,供运营侧查看目录概况
type StatsUseCase struct {
	bookService book.Service
}

// NewStatsUseCase 创建统计用例
func NewStatsUseCase(bookService book.Service) *StatsUseCase {
	return &StatsUseCase{bookService: bookService}
}

// Execute 执行统计查询
func (uc *StatsUseCase) Execute(ctx context.Context) (*CatalogStats, error) {
	total, err := uc.bookService.GetTotalBookCount(ctx)
	if err != nil {
		return nil, err
	}

	genres, err := uc.bookService.GetAllGenres(ctx)
	if err != nil {
		return nil, err
	}

	return &CatalogStats{
		TotalBooks: total,
		Genres:     genres,
	}, nil
}

// RecentBooksUseCase 最新出版图书用例
// 返回出版日期最新的至多5本图书,日期为空的不参与
type RecentBooksUseCase struct {
	bookService book.Service
}

// NewRecentBooksUseCase 创建最新图书用例
func NewRecentBooksUseCase(bookService book.Service) *RecentBooksUseCase {
	return &RecentBooksUseCase{bookService: bookService}
}

// Execute 执行查询
func (uc *RecentBooksUseCase) Execute(ctx context.Context) ([]*book.Book, error) {
	return uc.bookService.GetRecentBooks(ctx)
}
