// Package gamification keeps the cosmetic XP counter and rank ladder of the
// original client. It is display glue, but it shares the key-value store
// with the history and exercises the same persistence path.
package gamification

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/claude/neonfit/internal/kv"
)

const xpKey = "hybrid_xp"

// XP awards per action.
const (
	XPPerSet     = 50
	XPPerWorkout = 500
)

var (
	levelThresholds = []int{0, 1000, 2500, 5000, 10000}
	ranks           = []string{"Recrue", "Soldat", "Vétéran", "Élite", "Légende"}
)

// Service reads and writes the persisted XP counter.
type Service struct {
	kv  kv.Store
	log *slog.Logger
}

// New creates a Service over the given key-value backend.
func New(store kv.Store, log *slog.Logger) *Service {
	return &Service{kv: store, log: log}
}

// XP returns the current XP total. A missing or malformed counter reads as
// zero.
func (s *Service) XP(ctx context.Context) int {
	raw, ok, err := s.kv.Get(ctx, xpKey)
	if err != nil {
		s.log.Error("reading xp failed", "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	xp, err := strconv.Atoi(raw)
	if err != nil {
		s.log.Error("parsing xp failed", "value", raw, "error", err)
		return 0
	}
	return xp
}

// AddXP increments the counter and returns the new total.
func (s *Service) AddXP(ctx context.Context, amount int) (int, error) {
	total := s.XP(ctx) + amount
	if err := s.kv.Set(ctx, xpKey, strconv.Itoa(total)); err != nil {
		return 0, fmt.Errorf("persisting xp: %w", err)
	}
	return total, nil
}

// LevelInfo is the derived level/rank state shown in the dashboard header.
type LevelInfo struct {
	Level    int     `json:"level"`
	NextXP   int     `json:"nextXp"`
	Progress float64 `json:"progress"` // percent toward next level, capped at 100
	Rank     string  `json:"rank"`
	XP       int     `json:"xp"`
}

// LevelInfo derives the level, rank and progress bar from the XP total.
func (s *Service) LevelInfo(ctx context.Context) LevelInfo {
	xp := s.XP(ctx)

	level := 1
	nextXP := levelThresholds[1]
	for i := range levelThresholds {
		if xp >= levelThresholds[i] {
			level = i + 1
			if i+1 < len(levelThresholds) {
				nextXP = levelThresholds[i+1]
			} else {
				nextXP = 99999
			}
		}
	}

	rankIdx := level - 1
	if rankIdx >= len(ranks) {
		rankIdx = len(ranks) - 1
	}

	return LevelInfo{
		Level:    level,
		NextXP:   nextXP,
		Progress: math.Min(100, float64(xp)/float64(nextXP)*100),
		Rank:     ranks[rankIdx],
		XP:       xp,
	}
}
