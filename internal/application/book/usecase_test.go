package book_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/booktracker/internal/application/book"
	"github.com/xiebiao/booktracker/internal/domain/book"
	"github.com/xiebiao/booktracker/internal/infrastructure/persistence/memory"
)

// 应用层用例测试
// 覆盖列表筛选的优先级裁决、统计用例、事件发布端口的调用时机

// recordingPublisher 记录收到的事件,用于断言发布时机
type recordingPublisher struct {
	created []uint
	updated []uint
	deleted []uint
}

func (p *recordingPublisher) PublishBookCreated(_ context.Context, b *book.Book) {
	p.created = append(p.created, b.ID)
}

func (p *recordingPublisher) PublishBookUpdated(_ context.Context, b *book.Book) {
	p.updated = append(p.updated, b.ID)
}

func (p *recordingPublisher) PublishBookDeleted(_ context.Context, id uint) {
	p.deleted = append(p.deleted, id)
}

func strPtr(s string) *string {
	return &s
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := book.CivilDate(year, month, day)
	return &d
}

func seed(t *testing.T, svc book.Service, books ...*book.Book) {
	t.Helper()
	for _, b := range books {
		_, err := svc.CreateBook(context.Background(), b)
		require.NoError(t, err)
	}
}

func TestListBooksPrecedence(t *testing.T) {
	ctx := context.Background()
	svc := book.NewService(memory.NewBookRepository())
	uc := appbook.NewListBooksUseCase(svc)

	seed(t, svc,
		&book.Book{Title: "Go Web编程", Author: "谢孟军", Genre: strPtr("计算机")},
		&book.Book{Title: "围城", Author: "钱钟书", Genre: strPtr("小说")},
	)

	t.Run("search优先于genre和author", func(t *testing.T) {
		books, err := uc.Execute(ctx, appbook.ListBooksQuery{
			Search: "围城",
			Genre:  "计算机",
			Author: "谢孟军",
		})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "围城", books[0].Title)
	})

	t.Run("genre优先于author", func(t *testing.T) {
		books, err := uc.Execute(ctx, appbook.ListBooksQuery{
			Genre:  "计算机",
			Author: "钱钟书",
		})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "Go Web编程", books[0].Title)
	})

	t.Run("空白参数落到下一优先级", func(t *testing.T) {
		books, err := uc.Execute(ctx, appbook.ListBooksQuery{
			Search: "   ",
			Author: "钱钟书",
		})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "围城", books[0].Title)
	})

	t.Run("无参数返回全部", func(t *testing.T) {
		books, err := uc.Execute(ctx, appbook.ListBooksQuery{})
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})
}

func TestStatsUseCase(t *testing.T) {
	ctx := context.Background()
	svc := book.NewService(memory.NewBookRepository())
	uc := appbook.NewStatsUseCase(svc)

	seed(t, svc,
		&book.Book{Title: "甲", Author: "a", Genre: strPtr("历史")},
		&book.Book{Title: "乙", Author: "b", Genre: strPtr("历史")},
		&book.Book{Title: "丙", Author: "c", Genre: strPtr("科幻")},
	)

	stats, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalBooks)
	assert.Equal(t, []string{"历史", "科幻"}, stats.Genres)
}

func TestRecentBooksUseCase(t *testing.T) {
	ctx := context.Background()
	svc := book.NewService(memory.NewBookRepository())
	uc := appbook.NewRecentBooksUseCase(svc)

	seed(t, svc,
		&book.Book{Title: "旧", Author: "a", PublishedDate: datePtr(2001, 1, 1)},
		&book.Book{Title: "新", Author: "b", PublishedDate: datePtr(2024, 5, 1)},
		&book.Book{Title: "无日期", Author: "c"},
	)

	books, err := uc.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2, "无日期的不参与")
	assert.Equal(t, "新", books[0].Title)
}

func TestMutationsPublishEvents(t *testing.T) {
	ctx := context.Background()
	svc := book.NewService(memory.NewBookRepository())
	events := &recordingPublisher{}

	createUC := appbook.NewCreateBookUseCase(svc, events)
	updateUC := appbook.NewUpdateBookUseCase(svc, events)
	deleteUC := appbook.NewDeleteBookUseCase(svc, events)

	created, err := createUC.Execute(ctx, &book.Book{Title: "事件源", Author: "作者"})
	require.NoError(t, err)
	assert.Equal(t, []uint{created.ID}, events.created)

	_, err = updateUC.Execute(ctx, created.ID, &book.Book{Title: "改名", Author: "作者"})
	require.NoError(t, err)
	assert.Equal(t, []uint{created.ID}, events.updated)

	require.NoError(t, deleteUC.Execute(ctx, created.ID))
	assert.Equal(t, []uint{created.ID}, events.deleted)
}

func TestFailedMutationDoesNotPublish(t *testing.T) {
	ctx := context.Background()
	svc := book.NewService(memory.NewBookRepository())
	events := &recordingPublisher{}

	createUC := appbook.NewCreateBookUseCase(svc, events)

	_, err := createUC.Execute(ctx, &book.Book{Title: "", Author: "作者"})
	require.Error(t, err)
	assert.Empty(t, events.created, "失败的操作不发布事件")
}
