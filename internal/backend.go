package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tbeckfield/rotorpid/internal/configuration"
	"github.com/tbeckfield/rotorpid/internal/controller"
	"github.com/tbeckfield/rotorpid/internal/pid"
	"github.com/tbeckfield/rotorpid/internal/sim"
	"github.com/tbeckfield/rotorpid/internal/statistics"
	"github.com/tbeckfield/rotorpid/internal/ui"
)

// RunDaemon runs the rate loop against the bench craft model until
// interrupted. Real sensor and mixer backends attach through the
// controller.InputSource and controller.MixerSink interfaces.
func RunDaemon() {
	config := &configuration.CurrentConfig

	craft := sim.NewCraft(config.Simulation, config.Rx, config.LoopTickRate)
	craft.SetArmed(true)

	rateController := pid.NewController(
		pid.ControllerTypeFromName(config.Controller.Type),
		config.Controller.RecordTerms || config.Statistics.Enabled,
	)
	rateLoop := controller.NewRateLoop(
		rateController,
		craft,
		craft,
		config.LoopTickRate,
		config.LoopTimeWindowSize,
	)

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		if config.Statistics.Enabled {
			statistics.Register(statistics.NewRateLoopCollector(rateLoop))

			// === Prometheus Exporter
			g.Add(func() error {
				port := config.Statistics.Port
				addr := fmt.Sprintf(":%d", port)
				handler := promhttp.Handler()
				server := &http.Server{Addr: addr, Handler: handler}

				go func() {
					if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						ui.Error("Cannot start prometheus metrics endpoint (%s)", err.Error())
					}
				}()

				<-ctx.Done()
				ui.Info("Stopping statistics server...")
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				return server.Shutdown(timeoutCtx)
			}, func(err error) {
				if err != nil {
					ui.Warning("Error stopping statistics server: " + err.Error())
				} else {
					ui.Info("Statistics server stopped.")
				}
			})
		}
	}
	{
		// === rate loop
		g.Add(func() error {
			err := rateLoop.Run(ctx)
			ui.Info("Rate loop stopped.")
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Something went wrong: %v", err)
			}
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received SIGTERM signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}
