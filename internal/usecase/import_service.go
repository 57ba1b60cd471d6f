package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/brazilian-soccer/internal/domain/match"
	"github.com/riskibarqy/brazilian-soccer/internal/domain/player"
	"github.com/riskibarqy/brazilian-soccer/internal/platform/logging"
)

const (
	ImportKindMatches = "matches"
	ImportKindPlayers = "players"

	importStatusSuccess = "success"
	importStatusFailed  = "failed"
)

type ImportResult struct {
	TaskCount    int                `json:"task_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	WorkerCount  int                `json:"worker_count"`
	Tasks        []ImportTaskResult `json:"tasks"`
}

type ImportTaskResult struct {
	Kind       string `json:"kind"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// ImportService copies records from read sources into persistent writers.
type ImportService struct {
	matchSource  match.Source
	playerSource player.Source
	matchWriter  match.Writer
	playerWriter player.Writer
	workers      int
	logger       *logging.Logger
}

func NewImportService(
	matchSource match.Source,
	playerSource player.Source,
	matchWriter match.Writer,
	playerWriter player.Writer,
	workers int,
	logger *logging.Logger,
) *ImportService {
	if workers <= 0 {
		workers = 2
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		matchSource:  matchSource,
		playerSource: playerSource,
		matchWriter:  matchWriter,
		playerWriter: playerWriter,
		workers:      workers,
		logger:       logger,
	}
}

type importTask struct {
	kind string
	run  func(ctx context.Context) (int, error)
}

// Import runs one task per record kind on a worker pool. A failed task does
// not cancel the others; the error return is reserved for setup failures.
func (s *ImportService) Import(ctx context.Context) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import")
	defer span.End()

	tasks := s.tasks()
	if len(tasks) == 0 {
		return ImportResult{}, fmt.Errorf("%w: no import source and writer pair configured", ErrDependencyUnavailable)
	}

	workerCount := min(s.workers, len(tasks))
	result := ImportResult{
		TaskCount:   len(tasks),
		WorkerCount: workerCount,
		Tasks:       make([]ImportTaskResult, 0, len(tasks)),
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan ImportTaskResult, len(tasks))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, task := range tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := ImportTaskResult{Kind: task.kind}
			records, err := task.run(ctx)
			row.Records = records
			row.DurationMs = time.Since(start).Milliseconds()
			if err != nil {
				row.Status = importStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
				s.logger.ErrorContext(ctx, "import task failed", "kind", task.kind, "error", err)
			} else {
				row.Status = importStatusSuccess
				successCount.Add(1)
				s.logger.InfoContext(ctx, "import task finished", "kind", task.kind, "records", records, "duration_ms", row.DurationMs)
			}
			results <- row
		}); err != nil {
			workers.Done()
			return ImportResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].Kind < result.Tasks[j].Kind
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *ImportService) tasks() []importTask {
	out := make([]importTask, 0, 2)
	if s.matchSource != nil && s.matchWriter != nil {
		out = append(out, importTask{kind: ImportKindMatches, run: func(ctx context.Context) (int, error) {
			rows, err := s.matchSource.ListMatches(ctx)
			if err != nil {
				return 0, fmt.Errorf("list matches: %w", err)
			}
			if err := s.matchWriter.ReplaceMatches(ctx, rows); err != nil {
				return 0, fmt.Errorf("replace matches: %w", err)
			}
			return len(rows), nil
		}})
	}
	if s.playerSource != nil && s.playerWriter != nil {
		out = append(out, importTask{kind: ImportKindPlayers, run: func(ctx context.Context) (int, error) {
			rows, err := s.playerSource.ListPlayers(ctx)
			if err != nil {
				return 0, fmt.Errorf("list players: %w", err)
			}
			if err := s.playerWriter.ReplacePlayers(ctx, rows); err != nil {
				return 0, fmt.Errorf("replace players: %w", err)
			}
			return len(rows), nil
		}})
	}
	return out
}
