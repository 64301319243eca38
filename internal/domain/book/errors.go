package book

import (
	apperrors "github.com/xiebiao/booktracker/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrDuplicateBook 同名同作者的图书已存在
	ErrDuplicateBook = apperrors.New(apperrors.ErrCodeDuplicateBook, "同一书名和作者的图书已存在")

	// ErrNilBook 输入为空
	ErrNilBook = apperrors.New(apperrors.ErrCodeInvalidParams, "图书信息不能为空")

	// ErrTitleRequired 书名为空
	ErrTitleRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")

	// ErrAuthorRequired 作者为空
	ErrAuthorRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "作者不能为空")

	// ErrTitleTooLong 书名超长
	ErrTitleTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能超过255个字符")

	// ErrAuthorTooLong 作者超长
	ErrAuthorTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "作者不能超过255个字符")

	// ErrGenreTooLong 类型超长
	ErrGenreTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "图书类型不能超过100个字符")

	// ErrFutureDate 出版日期在未来
	ErrFutureDate = apperrors.New(apperrors.ErrCodeInvalidParams, "出版日期不能晚于今天")
)
