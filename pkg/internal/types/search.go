package types

// SearchRequest 按日查询请求，day 缺省为当天.
type SearchRequest struct {
	Month string `form:"month" json:"month" rule:"omitempty,max=64"`
	Day   string `form:"day"   json:"day"   rule:"omitempty,numeric,max=2"`
}

// SearchResult 单条匹配.
type SearchResult struct {
	File        string   `json:"file"`
	Matches     []string `json:"matches"`
	LineNumber  int      `json:"lineNumber"`
	LineContent string   `json:"lineContent"`
}

// SearchResponse 按日查询响应.
type SearchResponse struct {
	Success     bool           `json:"success"`
	Error       string         `json:"error,omitempty"`
	Month       string         `json:"month"`
	Day         string         `json:"day"`
	Results     []SearchResult `json:"results"`
	LoadedFiles []string       `json:"loadedFiles"`
}

// MonthsResponse 可用月份列表.
type MonthsResponse struct {
	Months []string `json:"months"`
	Count  int      `json:"count"`
}
