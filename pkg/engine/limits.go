package engine

import (
	"context"
	"errors"
	"time"

	. "github.com/ChizhovVadim/GeneSolver/pkg/common"
)

var errTupleLimit = errors.New("tuple limit reached")

type limitManager struct {
	limits   LimitsType
	cancel   context.CancelCauseFunc
	deadline context.CancelFunc
}

func newLimitManager(ctx context.Context, start time.Time,
	limits LimitsType) (context.Context, *limitManager) {

	var lm = &limitManager{limits: limits}

	if limits.SearchTime > 0 {
		var hardLimit = time.Duration(limits.SearchTime) * time.Millisecond
		ctx, lm.deadline = context.WithDeadline(ctx, start.Add(hardLimit))
	}
	ctx, lm.cancel = context.WithCancelCause(ctx)
	return ctx, lm
}

func (lm *limitManager) OnTuplesChanged(tuples int64) {
	if lm.limits.Tuples > 0 && tuples >= lm.limits.Tuples {
		lm.cancel(errTupleLimit)
	}
}

func (lm *limitManager) Close() {
	lm.cancel(nil)
	if lm.deadline != nil {
		lm.deadline()
	}
}
