package guides

import (
	"errors"
	"testing"
)

func TestLikeToggleCommits(t *testing.T) {
	counter := int64(4)
	toggle := &likeToggle{
		apply: func() (int64, error) {
			counter++
			return counter, nil
		},
		commit:     func() error { return nil },
		compensate: func() { counter-- },
	}

	count, err := toggle.run()
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if toggle.state != LikeCommitted {
		t.Errorf("expected LikeCommitted, got %v", toggle.state)
	}
	if count != 5 {
		t.Errorf("expected count 5, got %d", count)
	}
	if counter != 5 {
		t.Errorf("counter should keep the applied value, got %d", counter)
	}
}

func TestLikeToggleRollsBackOnCommitFailure(t *testing.T) {
	counter := int64(4)
	commitErr := errors.New("store unavailable")
	toggle := &likeToggle{
		apply: func() (int64, error) {
			counter++
			return counter, nil
		},
		commit:     func() error { return commitErr },
		compensate: func() { counter-- },
	}

	_, err := toggle.run()
	if !errors.Is(err, commitErr) {
		t.Fatalf("expected commit error, got %v", err)
	}
	if toggle.state != LikeRolledBack {
		t.Errorf("expected LikeRolledBack, got %v", toggle.state)
	}
	if counter != 4 {
		t.Errorf("compensation should restore the counter, got %d", counter)
	}
}

func TestLikeToggleApplyFailureStaysIdle(t *testing.T) {
	applyErr := errors.New("counter unavailable")
	compensated := false
	toggle := &likeToggle{
		apply:      func() (int64, error) { return 0, applyErr },
		commit:     func() error { t.Fatal("commit must not run when apply fails"); return nil },
		compensate: func() { compensated = true },
	}

	_, err := toggle.run()
	if !errors.Is(err, applyErr) {
		t.Fatalf("expected apply error, got %v", err)
	}
	if toggle.state != LikeIdle {
		t.Errorf("expected LikeIdle, got %v", toggle.state)
	}
	if compensated {
		t.Error("nothing was applied, nothing should be compensated")
	}
}

func TestRedisLikeKey(t *testing.T) {
	if got := redisLikeKey("g123"); got != "like:count:guide:g123" {
		t.Errorf("unexpected key %q", got)
	}
}
