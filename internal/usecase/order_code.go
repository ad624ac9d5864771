package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"mecanica_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrCodeAllocation = errors.New("could not allocate a unique order code")

const (
	orderCodePrefix  = "OS-"
	maxCodeAttempts  = 5
	codeRetryBackoff = 25 * time.Millisecond
)

// codeAllocator hands out human-facing order codes guaranteed unique among
// all orders. Candidates are collision-checked against the repository and
// regenerated on collision. The original service looped forever here; this
// implementation bounds the loop with backoff and fails with a conflict once
// the attempts run out.
type codeAllocator struct {
	repo  interfaces.IServiceOrderRepository
	sleep func(time.Duration)
}

func newCodeAllocator(repo interfaces.IServiceOrderRepository) *codeAllocator {
	return &codeAllocator{repo: repo, sleep: time.Sleep}
}

func (a *codeAllocator) Allocate(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := generateOrderCode()
		exists, err := a.repo.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		log.Printf("[order][code] candidate collision code=%s attempt=%d", code, attempt)
		if attempt < maxCodeAttempts {
			a.sleep(time.Duration(attempt) * codeRetryBackoff)
		}
	}
	return "", ErrCodeAllocation
}

func generateOrderCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return orderCodePrefix + strings.ToUpper(raw[:8])
}
