package domain

// Window selects a contiguous slice of an ordered result set.
type Window struct {
	Offset int64
	Limit  int64
}
