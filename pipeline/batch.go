package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/rhenanbartels/rri-rqa-analysis/model"
	"github.com/rhenanbartels/rri-rqa-analysis/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// RunBatch runs independent recordings on at most Workers goroutines.
// Reports keep the input order, a failed recording leaves a nil entry and contributes to the
// returned error.
func (p *Pipeline) RunBatch(ctx context.Context, recordings []model.Recording) ([]*model.RunReport, error) {
	logger := utils.GetLogger(ctx)

	reports := make([]*model.RunReport, len(recordings))
	errs := make([]error, len(recordings))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				run, err := p.Run(ctx, recordings[i])
				if err != nil {
					errs[i] = fmt.Errorf("recording %d: %w", i, err)
					continue
				}
				reports[i] = run
			}
		}()
	}

	for i := range recordings {
		if ctx.Err() != nil {
			errs[i] = fmt.Errorf("recording %d: %w", i, ctx.Err())
			continue
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	err := multierr.Combine(errs...)
	logger.Info("batch finished", zap.Int("recordings", len(recordings)),
		zap.Int("failed", len(multierr.Errors(err))))
	return reports, err
}
