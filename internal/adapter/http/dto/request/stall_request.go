package request

type ListStallsQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize" binding:"omitempty,min=1"`
}

type LinkStallQuery struct {
	PurchaseID string `form:"purchaseId"`
}
