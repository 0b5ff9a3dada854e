package api

import (
	"strconv"

	"ArenaRevenue/internal/analytics"
	"ArenaRevenue/internal/service"

	"github.com/gin-gonic/gin"
)

// emptySubset 单独出现时表示该维度什么都不选
const emptySubset = "-"

// parseSelection 每个维度一个可重复的参数，缺省为不限
func parseSelection(c *gin.Context) analytics.FilterSelection {
	var sel analytics.FilterSelection
	for _, d := range analytics.Dimensions {
		values, ok := c.GetQueryArray(string(d))
		if !ok {
			continue
		}
		if len(values) == 1 && values[0] == emptySubset {
			sel = sel.With(d, analytics.Only())
			continue
		}
		sel = sel.With(d, analytics.Only(values...))
	}
	return sel
}

func queryBool(c *gin.Context, key string) bool {
	b, _ := strconv.ParseBool(c.Query(key))
	return b
}

// parseQuery 解析筛选、视图与开关参数；视图名不合法时返回 ErrUnknownViewMode
func parseQuery(c *gin.Context) (service.Query, error) {
	mode, err := analytics.ParseViewMode(c.Query("view"))
	if err != nil {
		return service.Query{}, err
	}
	return service.Query{
		Selection:        parseSelection(c),
		Mode:             mode,
		ExcludeGuest:     queryBool(c, "exclude_guest"),
		IncludeTicketing: queryBool(c, "include_ticketing"),
	}, nil
}
