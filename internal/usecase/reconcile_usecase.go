package usecase

import (
	"context"
	"errors"
	"log"
	"propertyhub/internal/domain/entities"
	"propertyhub/internal/usecase/interfaces"
	"sync"
	"time"
)

// CheckAll reconciles every open payment that carries a provider reference.
// Payments are checked concurrently; one failure never stops the others.
func (u *MoMoUseCase) CheckAll(ctx context.Context) (CheckAllSummary, error) {
	var targets []entities.Payment
	for _, status := range entities.OpenPaymentStatuses() {
		rows, err := u.payments.List(ctx, interfaces.PaymentFilter{Status: status})
		if err != nil {
			return CheckAllSummary{}, err
		}
		for _, p := range rows {
			if p.HasProviderReference() {
				targets = append(targets, p)
			}
		}
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		summary = CheckAllSummary{Checked: len(targets)}
		sem     = make(chan struct{}, u.opts.Concurrency)
	)
	for _, p := range targets {
		wg.Add(1)
		go func(p entities.Payment) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				summary.Failed++
				summary.Failures = append(summary.Failures, CheckFailure{PaymentID: p.ID, Err: ctx.Err()})
				mu.Unlock()
				return
			}

			res, err := u.CheckStatus(ctx, p.ID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("[momo][usecase] check-all item failed payment_id=%s err=%v", p.ID, err)
				summary.Failed++
				summary.Failures = append(summary.Failures, CheckFailure{PaymentID: p.ID, Err: err})
				return
			}
			if res.Updated {
				summary.Updated++
			}
			summary.Results = append(summary.Results, res)
		}(p)
	}
	wg.Wait()

	log.Printf("[momo][usecase] check-all done checked=%d updated=%d failed=%d", summary.Checked, summary.Updated, summary.Failed)
	return summary, nil
}

// WaitForCompletion polls CheckStatus every interval until the provider reports a
// final status or timeout elapses. Zero values fall back to the configured defaults
// and the timeout never exceeds five minutes.
func (u *MoMoUseCase) WaitForCompletion(ctx context.Context, paymentID string, timeout, interval time.Duration) (ReconcileResult, error) {
	if timeout <= 0 {
		timeout = u.opts.WaitTimeout
	}
	if timeout > maxWaitTimeout {
		timeout = maxWaitTimeout
	}
	if interval <= 0 {
		interval = u.opts.WaitInterval
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last ReconcileResult
	for {
		res, err := u.CheckStatus(waitCtx, paymentID)
		if err != nil {
			if ctx.Err() == nil && errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
				return last, ErrWaitTimeout
			}
			return res, err
		}
		last = res
		if res.Transaction.Status.IsTerminal() || res.Payment.Status.IsTerminal() {
			return res, nil
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return last, ctx.Err()
			}
			log.Printf("[momo][usecase] wait timed out payment_id=%s provider_status=%s", paymentID, last.Transaction.RawStatus)
			return last, ErrWaitTimeout
		case <-ticker.C:
		}
	}
}
