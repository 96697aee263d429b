package jobs

import (
	"fmt"
	"log"
	"time"

	"hireloop/internal/repositories"

	"github.com/robfig/cron/v3"
)

// InterviewSweeperJob cancels pending interviews whose invite expiry has
// passed, on a cron schedule.
type InterviewSweeperJob struct {
	interviews *repositories.InterviewRepository
	config     *SweeperConfig
	cron       *cron.Cron
}

// SweeperConfig contains configuration for the sweeper job
type SweeperConfig struct {
	Schedule string // Cron schedule (e.g., "*/15 * * * *")
	Enabled  bool
}

func NewInterviewSweeperJob(interviews *repositories.InterviewRepository, config *SweeperConfig) *InterviewSweeperJob {
	return &InterviewSweeperJob{
		interviews: interviews,
		config:     config,
		cron:       cron.New(),
	}
}

// Start begins the scheduled sweep job
func (isj *InterviewSweeperJob) Start() error {
	if !isj.config.Enabled {
		log.Println("Interview sweeper is disabled, skipping scheduler")
		return nil
	}

	log.Printf("Starting interview sweeper with schedule: %s", isj.config.Schedule)

	_, err := isj.cron.AddFunc(isj.config.Schedule, func() {
		if err := isj.RunSweep(); err != nil {
			log.Printf("Sweep job failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sweep job: %w", err)
	}

	isj.cron.Start()
	return nil
}

// Stop stops the scheduled sweep job
func (isj *InterviewSweeperJob) Stop() {
	if isj.cron != nil {
		isj.cron.Stop()
		log.Println("Interview sweeper stopped")
	}
}

// RunSweep performs a single sweep run
func (isj *InterviewSweeperJob) RunSweep() error {
	cancelled, err := isj.interviews.CancelExpired(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to cancel expired interviews: %w", err)
	}
	if cancelled > 0 {
		log.Printf("Cancelled %d expired interview invites", cancelled)
	}
	return nil
}
