package session

import (
	"testing"

	"github.com/BaconStrps/go-gpt/core"
)

func TestBuilderDefaults(t *testing.T) {
	sess := New().Build("gpt-3.5-turbo", &mockSender{})

	cfg := sess.cfg
	if cfg.Temperature != 1.0 {
		t.Errorf("Temperature = %v, want 1.0", cfg.Temperature)
	}
	if cfg.MaxTokens != 4096 {
		t.Errorf("MaxTokens = %v, want 4096", cfg.MaxTokens)
	}
	if cfg.TopP != 1.0 {
		t.Errorf("TopP = %v, want 1.0", cfg.TopP)
	}
	if cfg.PresencePenalty != 0.0 {
		t.Errorf("PresencePenalty = %v, want 0.0", cfg.PresencePenalty)
	}
	if cfg.FrequencyPenalty != 0.0 {
		t.Errorf("FrequencyPenalty = %v, want 0.0", cfg.FrequencyPenalty)
	}
	if cfg.MaxLen != 5 {
		t.Errorf("MaxLen = %v, want 5", cfg.MaxLen)
	}
	if cfg.hasUserTag {
		t.Error("user tag set by default")
	}
	if cfg.System.Role != core.RoleSystem {
		t.Errorf("System role = %v, want system", cfg.System.Role)
	}
	if sess.Model() != "gpt-3.5-turbo" {
		t.Errorf("Model = %v", sess.Model())
	}
}

func TestBuilderOverrides(t *testing.T) {
	sess := New().
		Temperature(0.2).
		MaxTokens(64).
		TopP(0.5).
		PresencePenalty(-1.5).
		FrequencyPenalty(2.0).
		UserTag("tester").
		System("be brief").
		MaxLen(9).
		RollbackOnError(true).
		Build("gpt-3.5-turbo-0301", &mockSender{})

	cfg := sess.cfg
	if cfg.Temperature != 0.2 || cfg.MaxTokens != 64 || cfg.TopP != 0.5 {
		t.Errorf("sampling params not applied: %+v", cfg)
	}
	if cfg.PresencePenalty != -1.5 || cfg.FrequencyPenalty != 2.0 {
		t.Errorf("penalties not applied: %+v", cfg)
	}
	if !cfg.hasUserTag || cfg.UserTag != "tester" {
		t.Errorf("UserTag = %q (set=%v)", cfg.UserTag, cfg.hasUserTag)
	}
	if cfg.System != core.NewMessage(core.RoleSystem, "be brief") {
		t.Errorf("System = %+v", cfg.System)
	}
	if cfg.MaxLen != 9 || !cfg.RollbackOnError {
		t.Errorf("MaxLen/RollbackOnError not applied: %+v", cfg)
	}
}

func TestBuilderAcceptsOutOfRangeValues(t *testing.T) {
	// No local validation: the remote service decides what to reject.
	sess := New().
		Temperature(-3.0).
		MaxTokens(-1).
		Build("gpt-3.5-turbo", &mockSender{})

	if sess.cfg.Temperature != -3.0 || sess.cfg.MaxTokens != -1 {
		t.Errorf("out-of-range values not forwarded: %+v", sess.cfg)
	}
}

func TestBuildStartsEmpty(t *testing.T) {
	sess := New().Build("gpt-3.5-turbo", &mockSender{})
	if sess.HistoryLen() != 0 || sess.PendingLen() != 0 {
		t.Errorf("new session not empty: history=%d pending=%d",
			sess.HistoryLen(), sess.PendingLen())
	}
}
