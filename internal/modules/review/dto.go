package review

type CreateReviewRequest struct {
	ServiceID int64  `json:"service_id" binding:"required,gt=0"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
}
