package dto

// DatasetResponse describes the loaded dataset, used by clients to bound
// their date pickers.
type DatasetResponse struct {
	Source  string `json:"source" example:"dashboard/df_day.csv"`
	Records int    `json:"records" example:"731"`
	Start   string `json:"start" example:"2011-01-01"`
	End     string `json:"end" example:"2012-12-31"`
}
