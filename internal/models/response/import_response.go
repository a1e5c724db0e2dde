package response

// ImportResult summarizes a bulk menu import
type ImportResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}
