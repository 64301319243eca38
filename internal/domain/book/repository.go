package book

import (
	"context"
	"time"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(MySQL生产环境,内存实现用于测试)
// 2. 所有"IgnoreCase"语义均指ASCII大小写折叠(A-Z映射到a-z),
//    非ASCII字符的行为由具体存储决定,但必须是确定性的
// 3. 仓储只做数据访问,不承载业务规则;存储故障统一包装为
//    apperrors.ErrCodeDatabaseError向上传递,不在仓储内吞掉
type Repository interface {
	// FindAll 查询全部图书,顺序不作保证
	FindAll(ctx context.Context) ([]*Book, error)

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// ExistsByID 判断图书是否存在
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// Save 插入或更新(upsert)
	// ID为0时插入并分配新ID,否则整体替换既有记录
	// 返回存储后的形态(含分配的ID);(title,author)唯一索引冲突返回ErrDuplicateBook
	Save(ctx context.Context, b *Book) (*Book, error)

	// DeleteByID 根据ID删除,目标不存在时也不报错(幂等)
	// "不存在即NotFound"的判断由领域服务负责
	DeleteByID(ctx context.Context, id uint) error

	// ExistsByTitleAndAuthor 精确匹配书名+作者(区分大小写)
	ExistsByTitleAndAuthor(ctx context.Context, title, author string) (bool, error)

	// FindByTitleOrAuthorContaining 书名或作者包含term(忽略大小写的子串匹配)
	FindByTitleOrAuthorContaining(ctx context.Context, term string) ([]*Book, error)

	// FindByTitleContainingIgnoreCase 书名包含term(忽略大小写)
	FindByTitleContainingIgnoreCase(ctx context.Context, term string) ([]*Book, error)

	// FindByAuthorContainingIgnoreCase 作者包含term(忽略大小写)
	FindByAuthorContainingIgnoreCase(ctx context.Context, term string) ([]*Book, error)

	// FindByGenreIgnoreCase 类型整串相等(忽略大小写,非子串)
	FindByGenreIgnoreCase(ctx context.Context, genre string) ([]*Book, error)

	// FindByAuthorContainingIgnoreCaseAndGenreIgnoreCase 作者子串+类型整串的组合查询
	FindByAuthorContainingIgnoreCaseAndGenreIgnoreCase(ctx context.Context, author, genre string) ([]*Book, error)

	// FindByPublishedDateAfter 出版日期严格晚于date(排除日期为空的记录)
	FindByPublishedDateAfter(ctx context.Context, date time.Time) ([]*Book, error)

	// FindByPublishedDateBefore 出版日期严格早于date(排除日期为空的记录)
	FindByPublishedDateBefore(ctx context.Context, date time.Time) ([]*Book, error)

	// FindByPublishedDateBetween 出版日期在[start,end]闭区间内(排除日期为空的记录)
	FindByPublishedDateBetween(ctx context.Context, start, end time.Time) ([]*Book, error)

	// FindTop5ByOrderByPublishedDateDesc 出版日期最新的至多5本
	// 排除日期为空的记录;日期相同时按ID降序,保证单进程内结果稳定
	FindTop5ByOrderByPublishedDateDesc(ctx context.Context) ([]*Book, error)

	// FindByPublishedDateIsNull 出版日期为空的图书(数据清理用)
	FindByPublishedDateIsNull(ctx context.Context) ([]*Book, error)

	// FindDistinctGenres 全部非空类型去重,按码点升序(区分大小写)排列
	FindDistinctGenres(ctx context.Context) ([]string, error)

	// CountByGenre 统计类型等于genre(忽略大小写)的图书数
	CountByGenre(ctx context.Context, genre string) (int64, error)

	// Count 图书总数
	Count(ctx context.Context) (int64, error)
}
