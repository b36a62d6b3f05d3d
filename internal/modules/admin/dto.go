package admin

type StatisticsResponse struct {
	TotalCustomers   int64 `json:"total_customers"`
	TotalOrders      int64 `json:"total_orders"`
	ActiveServices   int64 `json:"active_services"`
	ActiveCategories int64 `json:"active_categories"`
}
