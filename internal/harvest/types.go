package harvest

// RunStats tracks statistics about one extraction run.
type RunStats struct {
	// FilesProcessed is the number of eligible corpus files read.
	FilesProcessed int

	// SamplesWritten is the total number of sample files persisted.
	SamplesWritten int

	// SamplesByType counts persisted samples per diagram type.
	SamplesByType map[DiagramType]int

	// ProcessingTimeSeconds is the wall-clock duration of the run.
	ProcessingTimeSeconds float64
}
