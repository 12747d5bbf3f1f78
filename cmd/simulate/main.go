// Command simulate drives ADSC's evaluation engine against a
// scenario file instead of a real host, for manual and integration
// verification of the scenarios in spec.md §8. It replaces the
// teacher's test/loadtest harness with a YAML-fixture-driven flag CLI
// in the same style: flags for the run, structured logging to
// stderr, a final summary dump.
//
// Usage:
//
//	go run ./cmd/simulate -scenario cmd/simulate/scenarios/s1_score_based_switch.yaml
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/domain/event"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
	"github.com/emperorhan/auto-data-switch-controller/internal/engine"
	"github.com/emperorhan/auto-data-switch-controller/internal/host"
	"github.com/emperorhan/auto-data-switch-controller/internal/notify"
	"github.com/emperorhan/auto-data-switch-controller/internal/switcher"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "", "Path to a scenario YAML file (required)")
		speedup      = flag.Float64("speedup", 1, "Divide every scenario delay by this factor (1 = real time)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *scenarioPath == "" {
		logger.Error("missing required -scenario flag")
		os.Exit(1)
	}

	scenario, err := loadScenario(*scenarioPath)
	if err != nil {
		logger.Error("failed to load scenario", "error", err)
		os.Exit(1)
	}
	logger.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	simHost := buildSimHost(scenario)
	notifier := notify.NewOneShotNotifier(logger, notify.NoopChannel{})
	sw := switcher.New(simHost, notifier, logger)
	eng := engine.New(simHost, sw, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := eng.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("engine loop exited", "error", err)
		}
	}()

	runSteps(eng, simHost, scenario, *speedup, logger)

	if scenario.WaitForMS > 0 {
		time.Sleep(scaledDelay(scenario.WaitForMS, *speedup))
	}

	dump, err := json.MarshalIndent(eng.Snapshot(), "", "  ")
	if err != nil {
		logger.Error("failed to marshal final snapshot", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(dump))
}

func scaledDelay(ms int, speedup float64) time.Duration {
	if speedup <= 0 {
		speedup = 1
	}
	return time.Duration(float64(ms)/speedup) * time.Millisecond
}

func buildSimHost(s *Scenario) *host.SimHost {
	cfg := model.Config{
		StabilityDwell:           time.Duration(s.Config.StabilityDwellMS) * time.Millisecond,
		ScoreTolerance:           s.Config.ScoreTolerance,
		RequirePing:              s.Config.RequirePing,
		MaxValidationRetries:     s.Config.MaxValidationRetries,
		AllowRoamingSwitch:       s.Config.AllowRoamingSwitch,
		FeatureScoreBasedEnabled: s.Config.FeatureScoreBasedEnabled,
	}

	h := host.NewSimHost(cfg)
	for _, slot := range s.Slots {
		h.AddSlot(model.SlotId(slot.Slot), slot.SubID)
		h.MutateSlot(model.SlotId(slot.Slot), func(st *host.SlotState) {
			st.RegState = parseRegState(slot.RegState)
			st.Signal = model.SignalStrength{Level: slot.SignalLevel}
			st.Opportunistic = slot.Opportunistic
		})
	}
	h.SetDefaultDataSubId(s.DefaultSubID)
	h.SetPreferredDataSlot(model.SlotId(s.PreferredSlot))
	if s.AutoSelectedSubID != 0 {
		h.SetAutoSelectedDataSubId(s.AutoSelectedSubID)
	}
	return h
}

func parseRegState(s string) model.RegState {
	switch s {
	case "home":
		return model.Home
	case "roaming":
		return model.Roaming
	case "other":
		return model.Other
	default:
		return model.NotRegistered
	}
}

// runSteps replays the scenario's step list in order, sleeping the
// (speedup-scaled) delay between steps and either submitting an
// ingress event or, for "validation_failure", invoking the
// asynchronous Switcher feedback path directly.
func runSteps(eng *engine.Engine, h *host.SimHost, s *Scenario, speedup float64, logger *slog.Logger) {
	elapsed := 0
	for _, step := range s.Steps {
		wait := step.AfterMS - elapsed
		if wait > 0 {
			time.Sleep(scaledDelay(wait, speedup))
		}
		elapsed = step.AfterMS

		logger.Info("applying step", "event", step.Event, "slot", step.Slot, "after_ms", step.AfterMS)

		if step.RegState != "" || step.SignalLevel != 0 || step.UserDataEnabled != "" {
			h.MutateSlot(model.SlotId(step.Slot), func(st *host.SlotState) {
				if step.RegState != "" {
					st.RegState = parseRegState(step.RegState)
				}
				if step.SignalLevel != 0 {
					st.Signal = model.SignalStrength{Level: step.SignalLevel}
				}
				if step.UserDataEnabled != "" {
					st.UserDataEnabled = step.UserDataEnabled == "true"
				}
			})
		}

		switch step.Event {
		case "service_state_changed":
			eng.Submit(event.ServiceStateChanged(model.SlotId(step.Slot)))
		case "display_info_changed":
			eng.Submit(event.DisplayInfoChanged(model.SlotId(step.Slot)))
		case "signal_strength_changed":
			eng.Submit(event.SignalStrengthChanged(model.SlotId(step.Slot)))
		case "default_network_changed":
			if step.HasCellular {
				eng.Submit(event.DefaultNetworkChanged(&event.NetworkCapabilities{HasCellular: true}))
			} else {
				eng.Submit(event.DefaultNetworkChanged(&event.NetworkCapabilities{HasCellular: false}))
			}
		case "default_network_lost":
			eng.Submit(event.DefaultNetworkChanged(nil))
		case "data_settings_changed":
			eng.Submit(event.DataSettingsChanged())
		case "sim_loaded":
			eng.Submit(event.SimLoaded())
		case "voice_call_ended":
			eng.Submit(event.VoiceCallEnded())
		case "subscriptions_changed":
			eng.Submit(event.SubscriptionsChanged())
		case "multi_sim_config_changed":
			eng.Submit(event.MultiSimConfigChanged(step.ModemCount))
		case "validation_failure":
			eng.SubmitValidationFailure(errors.New("simulated ping failure"))
		case "wait":
			// no-op: after_ms delay already applied above.
		default:
			logger.Warn("unknown step event, skipping", "event", step.Event)
		}
	}
}
