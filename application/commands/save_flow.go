package commands

// SaveFlowCommand persists the current canvas state as the canonical tree.
type SaveFlowCommand struct{}

// Validate validates the command
func (cmd SaveFlowCommand) Validate() error {
	return nil
}
