package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/monthvault/pkg/internal/types"
	"github.com/yeisme/monthvault/pkg/log"
)

// LoadMonth 读取月份目录下的全部文件.
//
//	@Summary		加载月份目录
//	@Description	读取 base path 下 month 子目录中的全部文件，按文件名返回逐行内容. 错误同样以 200 返回，写在 error 字段中
//	@Tags			月份
//	@Produce		json
//	@Param			month	query		string				false	"月份目录名，缺省为配置的默认月份"	default(may)
//	@Success		200		{object}	types.MonthResponse	"success、可选 error 以及 文件名 -> 行数组"
//	@Router			/load_month [get]
func LoadMonth(c *gin.Context) {
	var req types.MonthRequest
	if err := c.ShouldBind(&req); err != nil {
		l := log.Logger()
		l.Warn().Err(err).Msg("invalid month request, falling back to query")

		req.Month = c.Query("month")
	}

	loadMonth(c, req.Month)
}

// LoadMonthByPath 与 LoadMonth 相同，月份取自路径参数.
//
//	@Summary	加载月份目录（路径参数）
//	@Tags		月份
//	@Produce	json
//	@Param		month	path		string				true	"月份目录名"
//	@Success	200		{object}	types.MonthResponse	"success、可选 error 以及 文件名 -> 行数组"
//	@Router		/api/v1/months/{month} [get]
func LoadMonthByPath(c *gin.Context) {
	loadMonth(c, c.Param("month"))
}

func loadMonth(c *gin.Context, month string) {
	svc := monthService(c)
	resp := svc.Load(c.Request.Context(), month)

	c.JSON(http.StatusOK, resp)
	publishMonthLoaded(c, svc.Month(month), resp)
}

// ListMonths 列出 base path 下的月份目录.
//
//	@Summary	月份列表
//	@Tags		月份
//	@Produce	json
//	@Success	200	{object}	types.MonthsResponse	"月份目录名"
//	@Failure	404	{object}	map[string]string		"base path 不存在"
//	@Router		/api/v1/months [get]
func ListMonths(c *gin.Context) {
	months, err := monthService(c).AvailableMonths(c.Request.Context())
	if err != nil {
		l := log.Logger()
		l.Warn().Err(err).Msg("list months failed")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, types.MonthsResponse{Months: months, Count: len(months)})
}
