package harvest

// ProgressReporter provides callbacks for reporting extraction progress.
// Implementations can display progress bars, log messages, or remain silent.
type ProgressReporter interface {
	// OnDiscoveryStart is called when corpus discovery begins.
	OnDiscoveryStart()

	// OnDiscoveryComplete is called when corpus discovery finishes.
	OnDiscoveryComplete(totalFiles int)

	// OnFileProcessed is called after each file is processed, with the
	// running file and sample counts.
	OnFileProcessed(fileName string, processedFiles, totalSamples int)

	// OnComplete is called when the run completes successfully.
	OnComplete(stats *RunStats)
}

// NoOpProgressReporter is a progress reporter that does nothing.
// Used when progress reporting is disabled (e.g., --quiet flag).
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnDiscoveryStart()                                            {}
func (n *NoOpProgressReporter) OnDiscoveryComplete(totalFiles int)                           {}
func (n *NoOpProgressReporter) OnFileProcessed(fileName string, processedFiles, samples int) {}
func (n *NoOpProgressReporter) OnComplete(stats *RunStats)                                   {}
