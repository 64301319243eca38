package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/xiebiao/booktracker/internal/domain/book"
)

// bookRepository 图书仓储的内存实现
// 设计说明:
// 1. 实现与MySQL仓储相同的Repository接口,用于单元测试和本地开发
// 2. 读写锁保护,支持并发访问
// 3. 大小写语义与MySQL实现对齐:
//    - 精确匹配(title,author)区分大小写
//    - 搜索/类型匹配用strings.ToLower做忽略大小写折叠
// 4. 列表按ID升序返回,保证结果稳定
type bookRepository struct {
	mu     sync.RWMutex
	books  map[uint]*book.Book
	nextID uint
}

// NewBookRepository 创建内存图书仓储
func NewBookRepository() book.Repository {
	return &bookRepository{
		books:  make(map[uint]*book.Book),
		nextID: 1,
	}
}

func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(*book.Book) bool { return true }), nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return clone(b), nil
}

func (r *bookRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.books[id]
	return ok, nil
}

func (r *bookRepository) Save(ctx context.Context, b *book.Book) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// (title,author)唯一性兜底,与MySQL唯一索引语义一致
	for _, existing := range r.books {
		if existing.ID != b.ID && existing.Title == b.Title && existing.Author == b.Author {
			return nil, book.ErrDuplicateBook
		}
	}

	now := time.Now()
	saved := clone(b)
	if saved.ID == 0 {
		saved.ID = r.nextID
		r.nextID++
		saved.CreatedAt = now
	} else if existing, ok := r.books[saved.ID]; ok {
		saved.CreatedAt = existing.CreatedAt
	}
	saved.UpdatedAt = now

	r.books[saved.ID] = saved
	return clone(saved), nil
}

func (r *bookRepository) DeleteByID(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.books, id)
	return nil
}

func (r *bookRepository) ExistsByTitleAndAuthor(ctx context.Context, title, author string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.Title == title && b.Author == author {
			return true, nil
		}
	}
	return false, nil
}

func (r *bookRepository) FindByTitleOrAuthorContaining(ctx context.Context, term string) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(term)
	return r.collect(func(b *book.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), lower) ||
			strings.Contains(strings.ToLower(b.Author), lower)
	}), nil
}

func (r *bookRepository) FindByTitleContainingIgnoreCase(ctx context.Context, term string) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(term)
	return r.collect(func(b *book.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), lower)
	}), nil
}

func (r *bookRepository) FindByAuthorContainingIgnoreCase(ctx context.Context, term string) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(term)
	return r.collect(func(b *book.Book) bool {
		return strings.Contains(strings.ToLower(b.Author), lower)
	}), nil
}

func (r *bookRepository) FindByGenreIgnoreCase(ctx context.Context, genre string) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(genre)
	return r.collect(func(b *book.Book) bool {
		return b.Genre != nil && strings.ToLower(*b.Genre) == lower
	}), nil
}

func (r *bookRepository) FindByAuthorContainingIgnoreCaseAndGenreIgnoreCase(ctx context.Context, author, genre string) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowerAuthor := strings.ToLower(author)
	lowerGenre := strings.ToLower(genre)
	return r.collect(func(b *book.Book) bool {
		return strings.Contains(strings.ToLower(b.Author), lowerAuthor) &&
			b.Genre != nil && strings.ToLower(*b.Genre) == lowerGenre
	}), nil
}

func (r *bookRepository) FindByPublishedDateAfter(ctx context.Context, date time.Time) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(b *book.Book) bool {
		return b.PublishedDate != nil && b.PublishedDate.After(date)
	}), nil
}

func (r *bookRepository) FindByPublishedDateBefore(ctx context.Context, date time.Time) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(b *book.Book) bool {
		return b.PublishedDate != nil && b.PublishedDate.Before(date)
	}), nil
}

func (r *bookRepository) FindByPublishedDateBetween(ctx context.Context, start, end time.Time) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(b *book.Book) bool {
		if b.PublishedDate == nil {
			return false
		}
		return !b.PublishedDate.Before(start) && !b.PublishedDate.After(end)
	}), nil
}

func (r *bookRepository) FindTop5ByOrderByPublishedDateDesc(ctx context.Context) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dated := r.collect(func(b *book.Book) bool {
		return b.PublishedDate != nil
	})
	sort.Slice(dated, func(i, j int) bool {
		if dated[i].PublishedDate.Equal(*dated[j].PublishedDate) {
			return dated[i].ID > dated[j].ID
		}
		return dated[i].PublishedDate.After(*dated[j].PublishedDate)
	})
	if len(dated) > 5 {
		dated = dated[:5]
	}
	return dated, nil
}

func (r *bookRepository) FindByPublishedDateIsNull(ctx context.Context) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(b *book.Book) bool {
		return b.PublishedDate == nil
	}), nil
}

func (r *bookRepository) FindDistinctGenres(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	genres := make([]string, 0)
	for _, b := range r.books {
		if b.Genre == nil {
			continue
		}
		if _, ok := seen[*b.Genre]; ok {
			continue
		}
		seen[*b.Genre] = struct{}{}
		genres = append(genres, *b.Genre)
	}
	// 码点升序,与MySQL的ORDER BY BINARY genre一致
	sort.Strings(genres)
	return genres, nil
}

func (r *bookRepository) CountByGenre(ctx context.Context, genre string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(genre)
	var count int64
	for _, b := range r.books {
		if b.Genre != nil && strings.ToLower(*b.Genre) == lower {
			count++
		}
	}
	return count, nil
}

func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.books)), nil
}

// collect 按ID升序收集满足条件的图书副本,调用方须持有读锁
func (r *bookRepository) collect(match func(*book.Book) bool) []*book.Book {
	result := make([]*book.Book, 0)
	for _, b := range r.books {
		if match(b) {
			result = append(result, clone(b))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// clone 深拷贝实体,避免调用方共享内部状态
func clone(b *book.Book) *book.Book {
	copied := *b
	if b.PublishedDate != nil {
		d := *b.PublishedDate
		copied.PublishedDate = &d
	}
	if b.Genre != nil {
		g := *b.Genre
		copied.Genre = &g
	}
	return &copied
}
