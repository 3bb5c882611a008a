// Package jobs implements background job processing for the Reserve API.
//
// The jobs package contains scheduled tasks that run independently of HTTP
// request handling.
//
// # Job Types
//
// Available background jobs:
//
//   - RetentionSweeper: Removes reservations past the retention horizon
//
// # Job Pattern
//
// Jobs follow a consistent Start/Stop pattern:
//
//	sweeper := jobs.NewRetentionSweeper(reservationService, time.Hour, 90*24*time.Hour)
//	sweeper.Start()
//	defer sweeper.Stop()
//
// Start launches a ticker goroutine; Stop closes the stop channel and waits
// for the current run to finish.
//
// # Error Handling
//
// Jobs log errors but don't crash the application. A failed sweep is retried
// on the next tick.
package jobs
