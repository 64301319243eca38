package dto

import (
	"time"

	"github.com/xiebiao/booktracker/internal/domain/book"
	apperrors "github.com/xiebiao/booktracker/pkg/errors"
)

// dateLayout 出版日期的JSON表示,不带时分秒的civil date
const dateLayout = "2006-01-02"

// ErrInvalidDate 出版日期格式非法
var ErrInvalidDate = apperrors.New(apperrors.ErrCodeBindError, "出版日期格式非法,应为YYYY-MM-DD")

// BookRequest HTTP图书请求体
// 设计说明:
// 1. 登记和修改共用同一请求体,全量替换语义
// 2. 不用binding tag做必填/长度校验:校验规则连同报错顺序都在领域服务里,
//    HTTP层只负责格式(JSON语法、日期格式)
// 3. publishedDate/genre可空,缺省与显式null等价
type BookRequest struct {
	Title         string  `json:"title" example:"Go语言实战"`
	Author        string  `json:"author" example:"威廉·肯尼迪"`
	PublishedDate *string `json:"publishedDate" example:"2017-03-01"`
	Genre         *string `json:"genre" example:"计算机"`
}

// ToEntity 请求体 → 领域实体
// 日期串解析失败返回ErrInvalidDate(映射为400)
func (r *BookRequest) ToEntity() (*book.Book, error) {
	var publishedDate *time.Time
	if r.PublishedDate != nil {
		parsed, err := time.ParseInLocation(dateLayout, *r.PublishedDate, time.UTC)
		if err != nil {
			return nil, ErrInvalidDate
		}
		publishedDate = &parsed
	}

	return &book.Book{
		Title:         r.Title,
		Author:        r.Author,
		PublishedDate: publishedDate,
		Genre:         r.Genre,
	}, nil
}

// BookResponse HTTP图书响应
// publishedDate和genre为空时序列化为null,不省略字段
type BookResponse struct {
	ID            uint    `json:"id" example:"1"`
	Title         string  `json:"title" example:"Go语言实战"`
	Author        string  `json:"author" example:"威廉·肯尼迪"`
	PublishedDate *string `json:"publishedDate" example:"2017-03-01"`
	Genre         *string `json:"genre" example:"计算机"`
}

// ToBookResponse 领域实体 → 响应体
func ToBookResponse(b *book.Book) BookResponse {
	var publishedDate *string
	if b.PublishedDate != nil {
		formatted := b.PublishedDate.Format(dateLayout)
		publishedDate = &formatted
	}

	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		PublishedDate: publishedDate,
		Genre:         b.Genre,
	}
}

// ToBookResponses 实体切片 → 响应切片
// 空结果序列化为[]而不是null
func ToBookResponses(books []*book.Book) []BookResponse {
	responses := make([]BookResponse, 0, len(books))
	for _, b := range books {
		responses = append(responses, ToBookResponse(b))
	}
	return responses
}
