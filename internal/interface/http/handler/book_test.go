package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/booktracker/internal/application/book"
	"github.com/xiebiao/booktracker/internal/domain/book"
	"github.com/xiebiao/booktracker/internal/infrastructure/config"
	"github.com/xiebiao/booktracker/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/booktracker/internal/interface/http/dto"
	"github.com/xiebiao/booktracker/internal/interface/http/handler"
	"github.com/xiebiao/booktracker/internal/interface/http/middleware"
)

// 图书HTTP接口测试
// 用内存仓储搭建完整的 handler → use case → service → repository 链路,
// 覆盖REST契约:状态码、Location头、错误无响应体、筛选参数优先级

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	bookService := book.NewService(memory.NewBookRepository())
	events := appbook.NopPublisher{}

	bookHandler := handler.NewBookHandler(
		appbook.NewListBooksUseCase(bookService),
		appbook.NewGetBookUseCase(bookService),
		appbook.NewCreateBookUseCase(bookService, events),
		appbook.NewUpdateBookUseCase(bookService, events),
		appbook.NewDeleteBookUseCase(bookService, events),
	)

	r := gin.New()
	r.Use(middleware.CORS(config.CORSConfig{AllowOrigin: "http://localhost:3000"}))
	bookHandler.RegisterRoutes(r)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createBook(t *testing.T, r *gin.Engine, body string) dto.BookResponse {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/api/books", body)
	require.Equal(t, http.StatusCreated, w.Code, "创建失败: %s", w.Body.String())

	var resp dto.BookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateBookEndpoint(t *testing.T) {
	t.Run("创建成功返回201和Location头", func(t *testing.T) {
		r := setupRouter()

		w := doRequest(r, http.MethodPost, "/api/books",
			`{"title":"Go语言实战","author":"威廉·肯尼迪","publishedDate":"2017-03-01","genre":"计算机"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/books/1", w.Header().Get("Location"))

		var resp dto.BookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint(1), resp.ID)
		assert.Equal(t, "Go语言实战", resp.Title)
		require.NotNil(t, resp.PublishedDate)
		assert.Equal(t, "2017-03-01", *resp.PublishedDate)
	})

	t.Run("类型缺省填充默认值", func(t *testing.T) {
		r := setupRouter()

		resp := createBook(t, r, `{"title":"未分类","author":"作者"}`)
		require.NotNil(t, resp.Genre)
		assert.Equal(t, book.DefaultGenre, *resp.Genre)
		assert.Nil(t, resp.PublishedDate)
	})

	t.Run("校验失败返回400且无响应体", func(t *testing.T) {
		r := setupRouter()

		w := doRequest(r, http.MethodPost, "/api/books", `{"title":"","author":"作者"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String(), "错误响应不携带响应体")
	})

	t.Run("重复图书返回400", func(t *testing.T) {
		r := setupRouter()
		createBook(t, r, `{"title":"重复","author":"作者"}`)

		w := doRequest(r, http.MethodPost, "/api/books", `{"title":"重复","author":"作者"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("JSON语法错误返回400", func(t *testing.T) {
		r := setupRouter()

		w := doRequest(r, http.MethodPost, "/api/books", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("日期格式错误返回400", func(t *testing.T) {
		r := setupRouter()

		w := doRequest(r, http.MethodPost, "/api/books",
			`{"title":"书","author":"作者","publishedDate":"03/01/2017"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("未来日期返回400", func(t *testing.T) {
		r := setupRouter()

		w := doRequest(r, http.MethodPost, "/api/books",
			`{"title":"书","author":"作者","publishedDate":"2999-01-01"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBookEndpoint(t *testing.T) {
	t.Run("查询详情", func(t *testing.T) {
		r := setupRouter()
		created := createBook(t, r, `{"title":"目标图书","author":"作者"}`)

		w := doRequest(r, http.MethodGet, "/api/books/1", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.BookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, "目标图书", resp.Title)
	})

	t.Run("不存在返回404且无响应体", func(t *testing.T) {
		r := setupRouter()

		w := doRequest(r, http.MethodGet, "/api/books/42", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("非数字ID返回404", func(t *testing.T) {
		r := setupRouter()

		w := doRequest(r, http.MethodGet, "/api/books/abc", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListBooksEndpoint(t *testing.T) {
	t.Run("空目录返回空数组而非null", func(t *testing.T) {
		r := setupRouter()

		w := doRequest(r, http.MethodGet, "/api/books", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
	})

	t.Run("筛选参数优先级search>genre>author", func(t *testing.T) {
		r := setupRouter()
		createBook(t, r, `{"title":"Go Web编程","author":"谢孟军","genre":"计算机"}`)
		createBook(t, r, `{"title":"围城","author":"钱钟书","genre":"小说"}`)

		// search与genre同时出现时genre被忽略
		w := doRequest(r, http.MethodGet, "/api/books?search=围城&genre=计算机", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []dto.BookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "围城", resp[0].Title)
	})

	t.Run("按类型筛选", func(t *testing.T) {
		r := setupRouter()
		createBook(t, r, `{"title":"甲","author":"a","genre":"小说"}`)
		createBook(t, r, `{"title":"乙","author":"b","genre":"历史"}`)

		w := doRequest(r, http.MethodGet, "/api/books?genre=小说", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []dto.BookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "甲", resp[0].Title)
	})

	t.Run("按作者筛选", func(t *testing.T) {
		r := setupRouter()
		createBook(t, r, `{"title":"甲","author":"张三"}`)
		createBook(t, r, `{"title":"乙","author":"李四"}`)

		w := doRequest(r, http.MethodGet, "/api/books?author=张", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []dto.BookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
	})

	t.Run("全空白参数视同未提供", func(t *testing.T) {
		r := setupRouter()
		createBook(t, r, `{"title":"甲","author":"a"}`)
		createBook(t, r, `{"title":"乙","author":"b"}`)

		w := doRequest(r, http.MethodGet, "/api/books?search=%20%20", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp []dto.BookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 2, "空白搜索词回退为全部")
	})
}

func TestUpdateBookEndpoint(t *testing.T) {
	t.Run("更新成功返回200", func(t *testing.T) {
		r := setupRouter()
		createBook(t, r, `{"title":"旧书名","author":"作者","genre":"小说"}`)

		w := doRequest(r, http.MethodPut, "/api/books/1",
			`{"title":"新书名","author":"作者"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.BookResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "新书名", resp.Title)
		assert.Nil(t, resp.Genre, "更新是全量替换,类型被置空")
	})

	t.Run("目标不存在返回404", func(t *testing.T) {
		r := setupRouter()

		w := doRequest(r, http.MethodPut, "/api/books/42", `{"title":"书","author":"作者"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("改成既有书名作者返回400", func(t *testing.T) {
		r := setupRouter()
		createBook(t, r, `{"title":"甲书","author":"作者"}`)
		createBook(t, r, `{"title":"乙书","author":"作者"}`)

		w := doRequest(r, http.MethodPut, "/api/books/2", `{"title":"甲书","author":"作者"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteBookEndpoint(t *testing.T) {
	t.Run("删除成功返回204", func(t *testing.T) {
		r := setupRouter()
		createBook(t, r, `{"title":"待删除","author":"作者"}`)

		w := doRequest(r, http.MethodDelete, "/api/books/1", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = doRequest(r, http.MethodGet, "/api/books/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("重复删除返回404", func(t *testing.T) {
		r := setupRouter()
		createBook(t, r, `{"title":"删两次","author":"作者"}`)

		doRequest(r, http.MethodDelete, "/api/books/1", "")
		w := doRequest(r, http.MethodDelete, "/api/books/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCORSHeaders(t *testing.T) {
	t.Run("普通请求携带CORS头", func(t *testing.T) {
		r := setupRouter()

		w := doRequest(r, http.MethodGet, "/api/books", "")
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("预检请求返回204", func(t *testing.T) {
		r := setupRouter()

		w := doRequest(r, http.MethodOptions, "/api/books", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
	})
}
