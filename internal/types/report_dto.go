package types

type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

type DailyStat struct {
	Date   string  `json:"date"`
	Count  int64   `json:"count"`
	Volume float64 `json:"volume"`
}

type AnalyticsResp struct {
	TotalUsers        int64       `json:"total_users"`
	TotalTransactions int64       `json:"total_transactions"`
	TotalVolume       float64     `json:"total_volume"`
	ActiveUsers       int64       `json:"active_users"`
	TransactionTypes  []TypeCount `json:"transaction_types"`
	DailyStats        []DailyStat `json:"daily_stats"`
	LastUpdated       string      `json:"last_updated"`
}

type GrowthPoint struct {
	Date     string `json:"date"`
	NewUsers int64  `json:"new_users"`
}

type NetworkStatsResp struct {
	TotalValueLocked       float64       `json:"total_value_locked"`
	AverageTransactionSize float64       `json:"average_transaction_size"`
	SuccessRate            float64       `json:"success_rate"`
	NetworkGrowth          []GrowthPoint `json:"network_growth"`
	LastUpdated            string        `json:"last_updated"`
}
