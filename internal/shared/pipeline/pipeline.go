// Package pipeline runs the ordered steps of a form submission
// (validate → upload assets → allocate → assemble → submit → publish).
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"webflow-forms-backend/internal/shared"
)

// Step là một bước có tên; Run dừng ở step lỗi đầu tiên
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// StepError cho biết step nào fail
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Run chạy steps theo thứ tự trên context con. Step lỗi đầu tiên cancel context
// (các request đang chạy của step đó bị hủy) và được trả về dưới dạng *StepError.
// Context của caller bị cancel giữa hai step cũng dừng pipeline.
func Run(ctx context.Context, steps ...Step) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	requestID := shared.RequestIDFromContext(ctx)

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return &StepError{Step: step.Name, Err: err}
		}

		start := time.Now()
		if err := step.Run(ctx); err != nil {
			cancel()
			log.Warn().Str("request_id", requestID).Str("step", step.Name).Err(err).Dur("elapsed", time.Since(start)).Msg("Pipeline step failed")
			return &StepError{Step: step.Name, Err: err}
		}
		log.Debug().Str("request_id", requestID).Str("step", step.Name).Dur("elapsed", time.Since(start)).Msg("Pipeline step done")
	}
	return nil
}
