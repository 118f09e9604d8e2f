package queries

// ExportFlowQuery asks for a downloadable rendition of the current flow.
type ExportFlowQuery struct{}

// Validate validates the query
func (q ExportFlowQuery) Validate() error {
	return nil
}
