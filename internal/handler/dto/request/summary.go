package request

type ShowSummaryForm struct {
	Email string `form:"email"`
}
