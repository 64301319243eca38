package book

import (
	"context"
	"strings"
	"unicode/utf8"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务承载全部业务规则:输入校验、重复预防、默认值策略
// 2. 不依赖具体的Repository实现(依赖倒置),便于用内存仓储做单元测试
// 3. 业务失败以领域错误(errors.go)表达,由HTTP层统一翻译为状态码
type Service interface {
	// GetAllBooks 查询全部图书
	GetAllBooks(ctx context.Context) ([]*Book, error)

	// GetBookByID 根据ID获取图书,不存在返回ErrBookNotFound
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// CreateBook 创建图书
	// 业务规则:
	// - 按固定顺序执行校验(validateBook),第一条违规即失败
	// - (Title, Author)精确重复时拒绝
	// - Genre为空或全空白时填充DefaultGenre
	// - 输入携带的ID被忽略,由存储层分配
	CreateBook(ctx context.Context, input *Book) (*Book, error)

	// UpdateBook 更新图书(全量替换四个可变字段)
	// 业务规则:
	// - 目标不存在返回ErrBookNotFound
	// - Title和Author都未变化时跳过重复检查(允许只改类型/日期)
	// - 不做Genre默认值填充,置空即存空
	UpdateBook(ctx context.Context, id uint, input *Book) (*Book, error)

	// DeleteBook 删除图书,目标不存在返回ErrBookNotFound
	DeleteBook(ctx context.Context, id uint) error

	// SearchBooksByTitle 按书名模糊搜索(忽略大小写),空词返回全部
	SearchBooksByTitle(ctx context.Context, title string) ([]*Book, error)

	// SearchBooksByAuthor 按作者模糊搜索(忽略大小写),空词返回全部
	SearchBooksByAuthor(ctx context.Context, author string) ([]*Book, error)

	// SearchBooks 按书名或作者模糊搜索(忽略大小写),空词返回全部
	SearchBooks(ctx context.Context, term string) ([]*Book, error)

	// GetBooksByGenre 按类型精确筛选(忽略大小写),空词返回全部
	GetBooksByGenre(ctx context.Context, genre string) ([]*Book, error)

	// GetBooksPublishedAfter 查询出版日期晚于year年1月1日的图书
	GetBooksPublishedAfter(ctx context.Context, year int) ([]*Book, error)

	// GetRecentBooks 查询出版日期最新的至多5本图书
	GetRecentBooks(ctx context.Context) ([]*Book, error)

	// GetTotalBookCount 图书总数
	GetTotalBookCount(ctx context.Context) (int64, error)

	// GetAllGenres 全部去重后的类型列表
	GetAllGenres(ctx context.Context) ([]string, error)

	// CountBooksByGenre 统计某类型的图书数,空类型直接返回0
	CountBooksByGenre(ctx context.Context, genre string) (int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetAllBooks 查询全部图书
func (s *service) GetAllBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.FindAll(ctx)
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, input *Book) (*Book, error) {
	// 1. 输入校验
	if err := validateBook(input); err != nil {
		return nil, err
	}

	// 2. 重复预防:同名同作者(区分大小写)已存在则拒绝
	exists, err := s.repo.ExistsByTitleAndAuthor(ctx, input.Title, input.Author)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateBook
	}

	// 3. 默认值策略:类型为空或全空白时填充DefaultGenre
	if input.Genre == nil || strings.TrimSpace(*input.Genre) == "" {
		genre := DefaultGenre
		input.Genre = &genre
	}

	// 4. 持久化
	// ID由存储层分配,输入即使带了ID也忽略
	// 出版日期规范化为民用日期,避免携带时分秒
	input.ID = 0
	input.PublishedDate = NormalizeDate(input.PublishedDate)
	return s.repo.Save(ctx, input)
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, input *Book) (*Book, error) {
	// 1. 查询目标图书
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 输入校验
	if err := validateBook(input); err != nil {
		return nil, err
	}

	// 3. 重复检查:仅当书名或作者发生变化时执行(区分大小写比较)
	// 这样允许对既有(书名,作者)只修改类型或出版日期
	if existing.Title != input.Title || existing.Author != input.Author {
		exists, err := s.repo.ExistsByTitleAndAuthor(ctx, input.Title, input.Author)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicateBook
		}
	}

	// 4. 全量替换可变字段(包括把类型/日期重新置空),ID不变
	existing.ApplyUpdate(input)

	// 5. 持久化
	return s.repo.Save(ctx, existing)
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBookNotFound
	}

	return s.repo.DeleteByID(ctx, id)
}

// SearchBooksByTitle 按书名模糊搜索
func (s *service) SearchBooksByTitle(ctx context.Context, title string) ([]*Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return s.GetAllBooks(ctx)
	}
	return s.repo.FindByTitleContainingIgnoreCase(ctx, title)
}

// SearchBooksByAuthor 按作者模糊搜索
func (s *service) SearchBooksByAuthor(ctx context.Context, author string) ([]*Book, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return s.GetAllBooks(ctx)
	}
	return s.repo.FindByAuthorContainingIgnoreCase(ctx, author)
}

// SearchBooks 按书名或作者模糊搜索
func (s *service) SearchBooks(ctx context.Context, term string) ([]*Book, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.GetAllBooks(ctx)
	}
	return s.repo.FindByTitleOrAuthorContaining(ctx, term)
}

// GetBooksByGenre 按类型筛选
func (s *service) GetBooksByGenre(ctx context.Context, genre string) ([]*Book, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return s.GetAllBooks(ctx)
	}
	return s.repo.FindByGenreIgnoreCase(ctx, genre)
}

// GetBooksPublishedAfter 查询某年之后出版的图书
// 比较基准是year年1月1日,严格晚于(不含当天)
func (s *service) GetBooksPublishedAfter(ctx context.Context, year int) ([]*Book, error) {
	return s.repo.FindByPublishedDateAfter(ctx, CivilDate(year, 1, 1))
}

// GetRecentBooks 查询最新出版的图书
func (s *service) GetRecentBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.FindTop5ByOrderByPublishedDateDesc(ctx)
}

// GetTotalBookCount 图书总数
func (s *service) GetTotalBookCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// GetAllGenres 全部类型列表
func (s *service) GetAllGenres(ctx context.Context) ([]string, error) {
	return s.repo.FindDistinctGenres(ctx)
}

// CountBooksByGenre 统计某类型的图书数
func (s *service) CountBooksByGenre(ctx context.Context, genre string) (int64, error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return 0, nil
	}
	return s.repo.CountByGenre(ctx, genre)
}

// =========================================
// 辅助函数:业务规则校验
// =========================================

// validateBook 校验图书数据
// 校验顺序固定,第一条违规即返回:
// 1. 输入非空
// 2. 书名去空白后非空
// 3. 作者去空白后非空
// 4. 书名原始长度≤255字符
// 5. 作者原始长度≤255字符
// 6. 类型(如有)长度≤100字符
// 7. 出版日期(如有)不晚于今天
//
// 注意:去空白只用于"非空"判断,长度按原始输入(含首尾空白)计算,
// 存储值同样保留原始输入
func validateBook(b *Book) error {
	if b == nil {
		return ErrNilBook
	}

	if strings.TrimSpace(b.Title) == "" {
		return ErrTitleRequired
	}

	if strings.TrimSpace(b.Author) == "" {
		return ErrAuthorRequired
	}

	if utf8.RuneCountInString(b.Title) > 255 {
		return ErrTitleTooLong
	}

	if utf8.RuneCountInString(b.Author) > 255 {
		return ErrAuthorTooLong
	}

	if b.Genre != nil && utf8.RuneCountInString(*b.Genre) > 100 {
		return ErrGenreTooLong
	}

	if b.PublishedDate != nil {
		if NormalizeDate(b.PublishedDate).After(Today()) {
			return ErrFutureDate
		}
	}

	return nil
}
