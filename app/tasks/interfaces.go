package tasks

// SweepSchedulerInterface defines the lifecycle surface for the background
// feed sweep. The process entry point owns it: started exactly once after
// bootstrap, stopped during graceful shutdown.
// Example usage:
//
//	scheduler := NewScheduler(orchestrator, provider, feeds, interval, pause)
//	scheduler.Start()
//	defer scheduler.Stop()
type SweepSchedulerInterface interface {
	Start()
	Stop()
}
