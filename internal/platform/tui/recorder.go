package tui

import (
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// StoreRecorder returns a pong.RoundRecorder that saves rounds to store
// under sessionID.
func StoreRecorder(store *storage.Store, sessionID string) pong.RoundRecorder {
	return &storeRecorder{store: store, sessionID: sessionID}
}

type storeRecorder struct {
	store     *storage.Store
	sessionID string
}

func (r *storeRecorder) RecordRound(result pong.RoundResult) error {
	_, err := r.store.SaveRound(r.sessionID, storage.Round{
		HumanWon:   result.Winner == pong.Left,
		LeftScore:  result.LeftScore,
		RightScore: result.RightScore,
		Ticks:      result.Ticks,
		Duration:   result.Duration,
		FinishedAt: result.FinishedAt,
	})
	return err
}
