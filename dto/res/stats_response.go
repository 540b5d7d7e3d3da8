package res

type StatsResponse struct {
	TotalUsers   int            `json:"totalUsers"`
	ByZodiac     map[string]int `json:"byZodiac"`
	ByMonth      [12]int        `json:"byMonth"`
	ByGeneration map[string]int `json:"byGeneration"`
}
