package ports

// ProgressRenderer displays batch progress. Render calls are already
// throttled by the tracker; implementations only draw.
type ProgressRenderer interface {
	// Render draws the current progress state.
	Render(completed, total int64)

	// Done draws the final 100% line and terminates the progress display.
	Done(total int64)
}
