package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/openshelf/reserve/api/internal/service"
)

// RetentionSweeper periodically removes reservations that ended more than the
// retention period ago. Deletes run as a bounded atomic batch per sweep.
type RetentionSweeper struct {
	reservationService *service.ReservationService
	interval           time.Duration
	retention          time.Duration
	stopCh             chan struct{}
	wg                 sync.WaitGroup
	running            bool
	mu                 sync.Mutex
}

// NewRetentionSweeper creates a new retention sweeper job
func NewRetentionSweeper(reservationService *service.ReservationService, interval, retention time.Duration) *RetentionSweeper {
	if interval == 0 {
		interval = time.Hour
	}
	if retention == 0 {
		retention = 90 * 24 * time.Hour
	}
	return &RetentionSweeper{
		reservationService: reservationService,
		interval:           interval,
		retention:          retention,
		stopCh:             make(chan struct{}),
	}
}

// Start begins the retention sweeper job
func (s *RetentionSweeper) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	log.Printf("Retention sweeper started (interval: %v, retention: %v)", s.interval, s.retention)
}

// Stop gracefully stops the retention sweeper job
func (s *RetentionSweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	log.Println("Retention sweeper stopped")
}

// run is the main loop
func (s *RetentionSweeper) run() {
	defer s.wg.Done()

	// Run immediately on start (but with a short delay to let services initialize)
	time.Sleep(5 * time.Second)
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep removes reservations past the retention horizon
func (s *RetentionSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().Add(-s.retention)
	removed, err := s.reservationService.PurgeEndedBefore(ctx, cutoff)
	if err != nil {
		log.Printf("Retention sweep failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Retention sweep removed %d reservations ended before %v", removed, cutoff)
	}
}
