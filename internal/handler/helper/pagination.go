package helper

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Pagination содержит нормализованные параметры страницы
type Pagination struct {
	Page     int
	PageSize int
}

// Offset возвращает смещение для запроса к хранилищу
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePagination читает параметры page и page_size из query.
// Некорректные значения заменяются значениями по умолчанию,
// page_size ограничивается сверху.
func ParsePagination(c *gin.Context) Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	} else if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}
