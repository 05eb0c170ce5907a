package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUsecase "nexus/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

func TestSweeper_Sweep(t *testing.T) {
	runner := mockUsecase.NewMockJobRunner(t)
	riders := mockUsecase.NewMockRiderUsecase(t)
	s := &sweeper{
		interval: time.Minute,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		runner:   runner,
		riders:   riders,
	}

	// A failed job sweep must not skip boost expiry.
	runner.EXPECT().RunDue(mock.Anything).Return(0, errors.New("db down")).Once()
	riders.EXPECT().ExpireBoosts(mock.Anything).Return(int64(2), nil).Once()

	s.sweep(context.Background())
}
