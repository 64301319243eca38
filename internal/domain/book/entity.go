package book

import (
	"time"
)

// DefaultGenre 创建图书时未指定类型的默认值
const DefaultGenre = "Unspecified"

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书目录的唯一聚合根,以自增ID作为标识,实体相等性只看ID
// 2. Title/Author按原始输入存储(保留首尾空白),非空校验只用于判断,不修剪存储值
// 3. PublishedDate是民用日期(无时区概念),统一规范化为UTC零点存储,nil表示未知
// 4. Genre可为空(nil),创建时为空会被领域服务填充为DefaultGenre
// 5. (Title, Author)组合在业务上唯一,由领域服务检查并由数据库唯一索引兜底
type Book struct {
	ID            uint       // 存储层分配的自增标识
	Title         string     // 书名(≤255字符)
	Author        string     // 作者(≤255字符)
	PublishedDate *time.Time // 出版日期(民用日期,UTC零点),nil表示未知
	Genre         *string    // 图书类型(≤100字符),nil表示未指定
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBook 创建新图书(工厂方法)
// 参数需先经过领域服务校验,ID由存储层在保存时分配
func NewBook(title, author string, publishedDate *time.Time, genre *string) *Book {
	return &Book{
		Title:         title,
		Author:        author,
		PublishedDate: NormalizeDate(publishedDate),
		Genre:         genre,
	}
}

// ApplyUpdate 用输入整体替换四个可变字段(领域行为)
// 业务规则:更新是全量替换,包括把PublishedDate/Genre重新置空;ID保持不变
func (b *Book) ApplyUpdate(in *Book) {
	b.Title = in.Title
	b.Author = in.Author
	b.PublishedDate = NormalizeDate(in.PublishedDate)
	b.Genre = in.Genre
}

// GenreValue 返回类型值,nil时返回空字符串
func (b *Book) GenreValue() string {
	if b.Genre == nil {
		return ""
	}
	return *b.Genre
}

// CivilDate 构造一个民用日期(UTC零点)
func CivilDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today 返回服务器当前的民用日期(UTC零点表示)
// 注意:取的是服务器本地时区的"今天",再规范化为UTC零点,
// 保证与NormalizeDate处理过的出版日期可直接比较
func Today() time.Time {
	y, m, d := time.Now().Date()
	return CivilDate(y, m, d)
}

// NormalizeDate 将时间规范化为民用日期(UTC零点),nil原样返回
func NormalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	normalized := CivilDate(y, m, d)
	return &normalized
}
