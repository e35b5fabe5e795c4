package user

// Principal identifies an authenticated coach on a request.
type Principal struct {
	UserID string
	Email  string
}
