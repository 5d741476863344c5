package game

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/fortress/internal/gamedata"
	"github.com/samdwyer/fortress/internal/sim"
)

// reportSeconds is how often, in simulated seconds, headless runs log a
// census.
const reportSeconds = 10

// RunHeadless advances the simulation without a terminal. With ticks > 0 it
// runs that many ticks back to back; otherwise it ticks in real time until
// ctx is done. It returns the census after the last tick.
func RunHeadless(ctx context.Context, cfg Config, log *logrus.Logger, ticks int) (sim.Census, error) {
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return sim.Census{}, fmt.Errorf("load species: %w", err)
	}
	rng, seed := cfg.newRand()
	w, err := sim.NewWorld(ctx, cfg.Tuning, catalog, rng, log)
	if err != nil {
		return sim.Census{}, fmt.Errorf("create world: %w", err)
	}

	every := uint64(cfg.Tuning.TicksPerSecond * reportSeconds)
	var loop *sim.Scheduler
	report := func() {
		if loop.TickID()%every == 0 {
			logCensus(log, loop.TickID(), w.Census())
		}
	}
	loop = sim.NewScheduler(cfg.Tuning.TickInterval(cfg.Debug), report, log, w.Systems()...)

	log.WithFields(logrus.Fields{"seed": seed, "ticks": ticks}).Info("headless run started")
	if ticks > 0 {
		err = loop.Advance(ctx, ticks)
	} else {
		err = loop.Run(ctx)
	}

	c := w.Census()
	logCensus(log, loop.TickID(), c)
	return c, err
}

func logCensus(log *logrus.Logger, tick uint64, c sim.Census) {
	log.WithFields(logrus.Fields{
		"tick":     tick,
		"agents":   c.Agents,
		"hungry":   c.Hungry,
		"starving": c.Starving,
		"mean_fed": fmt.Sprintf("%.1f", c.MeanFed),
		"edible":   c.Edible,
	}).Info("census")
}
