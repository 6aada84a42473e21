package request

// Days outside the allowed range are clamped by the usecase, so only the type
// is checked here.
type ReserveRequest struct {
	Name string `uri:"name" binding:"required"`
	Days int    `uri:"days"`
}
