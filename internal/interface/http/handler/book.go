package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/booktracker/internal/application/book"
	"github.com/xiebiao/booktracker/internal/domain/book"
	"github.com/xiebiao/booktracker/internal/interface/http/dto"
	"github.com/xiebiao/booktracker/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	createBookUseCase *appbook.CreateBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	createBookUseCase *appbook.CreateBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		createBookUseCase: createBookUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// RegisterRoutes 注册图书路由
func (h *BookHandler) RegisterRoutes(r gin.IRouter) {
	books := r.Group("/api/books")
	{
		books.GET("", h.ListBooks)
		books.POST("", h.CreateBook)
		books.GET("/:id", h.GetBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// ListBooks 查询图书列表
// @Summary      图书列表/搜索
// @Description  支持search(书名或作者子串)、genre(类型整串)、author(作者子串)筛选,同时出现时按search>genre>author取第一个生效
// @Tags         图书
// @Produce      json
// @Param        search query string false "书名或作者关键词"
// @Param        genre  query string false "图书类型"
// @Param        author query string false "作者关键词"
// @Success      200 {array} dto.BookResponse
// @Failure      500 "服务器错误"
// @Router       /api/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksQuery{
		Search: c.Query("search"),
		Genre:  c.Query("genre"),
		Author: c.Query("author"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBookResponses(books))
}

// GetBook 查询图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      404 "图书不存在"
// @Router       /api/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	b, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBookResponse(b))
}

// CreateBook 登记新书
// @Summary      登记图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      201 {object} dto.BookResponse
// @Failure      400 "参数错误"
// @Router       /api/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	input, ok := bindBookRequest(c)
	if !ok {
		return
	}

	created, err := h.createBookUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	location := fmt.Sprintf("/api/books/%d", created.ID)
	response.Created(c, location, dto.ToBookResponse(created))
}

// UpdateBook 修改图书
// @Summary      修改图书
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path int             true "图书ID"
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} dto.BookResponse
// @Failure      400 "参数错误"
// @Failure      404 "图书不存在"
// @Router       /api/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	input, ok := bindBookRequest(c)
	if !ok {
		return
	}

	updated, err := h.updateBookUseCase.Execute(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ToBookResponse(updated))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Tags         图书
// @Param        id path int true "图书ID"
// @Success      204 "删除成功"
// @Failure      404 "图书不存在"
// @Router       /api/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	if err := h.deleteBookUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// parseBookID 解析路径中的图书ID
// ID不是正整数说明路径指向的资源不存在,按404处理
func parseBookID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, book.ErrBookNotFound)
		return 0, false
	}
	return uint(id), true
}

// bindBookRequest 绑定并转换请求体
// JSON语法错误或日期格式错误都映射为400
func bindBookRequest(c *gin.Context) (*book.Book, bool) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return nil, false
	}

	input, err := req.ToEntity()
	if err != nil {
		response.Error(c, err)
		return nil, false
	}

	return input, true
}
