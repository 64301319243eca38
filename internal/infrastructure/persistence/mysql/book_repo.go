package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/booktracker/internal/domain/book"
	apperrors "github.com/xiebiao/booktracker/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 处理数据库特定的错误((title,author)唯一索引冲突),转换为业务错误
// 4. 大小写语义:
//    - "区分大小写"的精确匹配用BINARY比较(MySQL默认collation不区分大小写)
//    - "忽略大小写"的匹配统一用LOWER(),与内存实现保持一致的ASCII折叠语义
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// FindAll 查询全部图书
func (r *bookRepository) FindAll(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}
	return toBookEntities(models), nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// ExistsByID 判断图书是否存在
func (r *bookRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询图书失败")
	}
	return count > 0, nil
}

// Save 插入或更新(upsert)
func (r *bookRepository) Save(ctx context.Context, b *book.Book) (*book.Book, error) {
	model := toBookModel(b)

	var err error
	if model.ID == 0 {
		// 插入,数据库分配自增ID
		err = r.db.WithContext(ctx).Create(model).Error
	} else {
		// 整体替换既有记录
		err = r.db.WithContext(ctx).Save(model).Error
	}

	if err != nil {
		// (title,author)唯一索引冲突:并发创建时服务层检查可能双双通过,
		// 由存储层兜底并翻译为业务错误
		if isDuplicateError(err) {
			return nil, book.ErrDuplicateBook
		}
		return nil, apperrors.Wrap(err, "保存图书失败")
	}

	return toBookEntity(model), nil
}

// DeleteByID 根据ID删除(幂等,目标不存在也不报错)
func (r *bookRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&BookModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除图书失败")
	}
	return nil
}

// ExistsByTitleAndAuthor 精确匹配书名+作者(区分大小写)
func (r *bookRepository) ExistsByTitleAndAuthor(ctx context.Context, title, author string) (bool, error) {
	var count int64
	// MySQL的utf8mb4默认collation不区分大小写,用BINARY强制区分
	err := r.db.WithContext(ctx).Model(&BookModel{}).
		Where("BINARY title = ? AND BINARY author = ?", title, author).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询图书失败")
	}
	return count > 0, nil
}

// FindByTitleOrAuthorContaining 书名或作者包含term(忽略大小写)
func (r *bookRepository) FindByTitleOrAuthorContaining(ctx context.Context, term string) ([]*book.Book, error) {
	pattern := "%" + term + "%"
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", pattern, pattern).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "搜索图书失败")
	}
	return toBookEntities(models), nil
}

// FindByTitleContainingIgnoreCase 书名包含term(忽略大小写)
func (r *bookRepository) FindByTitleContainingIgnoreCase(ctx context.Context, term string) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE LOWER(?)", "%"+term+"%").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "搜索图书失败")
	}
	return toBookEntities(models), nil
}

// FindByAuthorContainingIgnoreCase 作者包含term(忽略大小写)
func (r *bookRepository) FindByAuthorContainingIgnoreCase(ctx context.Context, term string) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("LOWER(author) LIKE LOWER(?)", "%"+term+"%").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "搜索图书失败")
	}
	return toBookEntities(models), nil
}

// FindByGenreIgnoreCase 类型整串相等(忽略大小写)
func (r *bookRepository) FindByGenreIgnoreCase(ctx context.Context, genre string) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("LOWER(genre) = LOWER(?)", genre).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntities(models), nil
}

// FindByAuthorContainingIgnoreCaseAndGenreIgnoreCase 作者子串+类型整串组合查询
func (r *bookRepository) FindByAuthorContainingIgnoreCaseAndGenreIgnoreCase(ctx context.Context, author, genre string) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("LOWER(author) LIKE LOWER(?) AND LOWER(genre) = LOWER(?)", "%"+author+"%", genre).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntities(models), nil
}

// FindByPublishedDateAfter 出版日期严格晚于date
// SQL比较对NULL返回UNKNOWN,日期为空的记录天然被排除
func (r *bookRepository) FindByPublishedDateAfter(ctx context.Context, date time.Time) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("published_date > ?", date).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntities(models), nil
}

// FindByPublishedDateBefore 出版日期严格早于date
func (r *bookRepository) FindByPublishedDateBefore(ctx context.Context, date time.Time) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("published_date < ?", date).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntities(models), nil
}

// FindByPublishedDateBetween 出版日期在[start,end]闭区间内
func (r *bookRepository) FindByPublishedDateBetween(ctx context.Context, start, end time.Time) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("published_date BETWEEN ? AND ?", start, end).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntities(models), nil
}

// FindTop5ByOrderByPublishedDateDesc 出版日期最新的至多5本
// 日期相同时按ID降序,保证结果稳定
func (r *bookRepository) FindTop5ByOrderByPublishedDateDesc(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("published_date IS NOT NULL").
		Order("published_date DESC, id DESC").
		Limit(5).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntities(models), nil
}

// FindByPublishedDateIsNull 出版日期为空的图书
func (r *bookRepository) FindByPublishedDateIsNull(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("published_date IS NULL").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntities(models), nil
}

// FindDistinctGenres 全部非空类型去重,按码点升序(区分大小写)排列
func (r *bookRepository) FindDistinctGenres(ctx context.Context) ([]string, error) {
	var genres []string
	err := r.db.WithContext(ctx).Model(&BookModel{}).
		Distinct().
		Where("genre IS NOT NULL").
		Order("BINARY genre ASC").
		Pluck("genre", &genres).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询类型列表失败")
	}
	return genres, nil
}

// CountByGenre 统计类型等于genre(忽略大小写)的图书数
func (r *bookRepository) CountByGenre(ctx context.Context, genre string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookModel{}).
		Where("LOWER(genre) = LOWER(?)", genre).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计图书失败")
	}
	return count, nil
}

// Count 图书总数
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&BookModel{}).Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计图书失败")
	}
	return count, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:            model.ID,
		Title:         model.Title,
		Author:        model.Author,
		PublishedDate: book.NormalizeDate(model.PublishedDate),
		Genre:         model.Genre,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

// toBookEntities GORM模型切片 → 领域实体切片
func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		PublishedDate: b.PublishedDate,
		Genre:         b.Genre,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
