package appointment

import (
	"time"

	"github.com/psicoagenda/psico-scheduler/internal/config"
	domain "github.com/psicoagenda/psico-scheduler/internal/domain/appointment"
)

// Rules concentra os parâmetros de negócio que os casos de uso
// aplicam, desacoplados da origem (env) para facilitar teste.
type Rules struct {
	GuardMinutes    int
	OverlapMode     bool
	RewardThreshold int
	ModifyLeadTime  time.Duration
	DefaultDuration int
}

func RulesFromConfig(cfg *config.Config) Rules {
	return Rules{
		GuardMinutes:    cfg.GuardWindowMinutes,
		OverlapMode:     cfg.ConflictMode == config.ConflictModeOverlap,
		RewardThreshold: cfg.RewardThresholdPoints,
		ModifyLeadTime:  cfg.ModifyLeadTime,
		DefaultDuration: cfg.DefaultDurationMin,
	}
}

func (r Rules) policy() domain.ConflictPolicy {
	return domain.ConflictPolicy{
		GuardMinutes: r.GuardMinutes,
		Overlap:      r.OverlapMode,
	}
}

func (r Rules) leadTime() time.Duration {
	if r.ModifyLeadTime <= 0 {
		return 24 * time.Hour
	}
	return r.ModifyLeadTime
}

func (r Rules) defaultDuration() int {
	if r.DefaultDuration <= 0 {
		return 50
	}
	return r.DefaultDuration
}
