package scheduler

import (
	"context"
	"fmt"
	"log"
	"propertyhub/internal/usecase"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Checker is the part of the MoMo use case the job drives.
type Checker interface {
	CheckAll(ctx context.Context) (usecase.CheckAllSummary, error)
}

// ReconcileJob runs CheckAll on a cron schedule. A run that is still going
// when the next tick fires makes that tick a no-op.
type ReconcileJob struct {
	checker Checker
	timeout time.Duration
	cron    *cron.Cron
}

// NewReconcileJob parses schedule (standard five-field cron or a descriptor such
// as "@every 10m"). Each run is bounded by timeout.
func NewReconcileJob(schedule string, checker Checker, timeout time.Duration) (*ReconcileJob, error) {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		return nil, fmt.Errorf("empty reconcile schedule")
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	j := &ReconcileJob{checker: checker, timeout: timeout}
	j.cron = cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := j.cron.AddFunc(schedule, j.run); err != nil {
		return nil, fmt.Errorf("invalid reconcile schedule %q: %w", schedule, err)
	}
	return j, nil
}

func (j *ReconcileJob) Start() {
	log.Printf("[scheduler] reconcile job started")
	j.cron.Start()
}

// Stop waits for a running reconciliation to finish.
func (j *ReconcileJob) Stop() {
	<-j.cron.Stop().Done()
	log.Printf("[scheduler] reconcile job stopped")
}

func (j *ReconcileJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	summary, err := j.checker.CheckAll(ctx)
	if err != nil {
		log.Printf("[scheduler] reconcile failed err=%v", err)
		return
	}
	log.Printf("[scheduler] reconcile done checked=%d updated=%d failed=%d took=%s",
		summary.Checked, summary.Updated, summary.Failed, time.Since(start).Round(time.Millisecond))
}
