package handle

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/monthvault/pkg/internal/service"
	"github.com/yeisme/monthvault/pkg/internal/types"
	"github.com/yeisme/monthvault/pkg/log"
	"github.com/yeisme/monthvault/pkg/rule"
)

// SearchDay 在月份目录中查找某一天的条目.
//
//	@Summary		按日查询
//	@Description	加载月份目录，返回每个文件中以 "<Mon> <day>" 开头的行
//	@Tags			月份
//	@Produce		json
//	@Param			month	query		string					true	"月份目录名"
//	@Param			day		query		string					false	"日期，缺省为今天"
//	@Success		200		{object}	types.SearchResponse	"匹配结果"
//	@Failure		400		{object}	map[string]any			"缺少 month 或 day 非法"
//	@Router			/api/v1/search [get]
func SearchDay(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if req.Month == "" {
		badRequest(c, "Month parameter is required")
		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		l := log.Logger()
		l.Warn().Err(err).Msg("invalid search request")
		badRequest(c, "Invalid day parameter")

		return
	}

	if req.Day == "" {
		req.Day = service.DayOf(now())
	}

	c.JSON(http.StatusOK, monthService(c).Search(c.Request.Context(), req.Month, req.Day))
}

// RedirectToday 重定向到今天的按日查询.
//
//	@Summary	今日条目
//	@Tags		月份
//	@Success	302	{string}	string	"重定向到 /api/v1/search"
//	@Router		/ [get]
func RedirectToday(c *gin.Context) {
	month, day := service.TodayQuery(now())

	q := url.Values{}
	q.Set("month", month)
	q.Set("day", day)

	c.Redirect(http.StatusFound, "/api/v1/search?"+q.Encode())
}
