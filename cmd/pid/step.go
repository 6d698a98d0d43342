package pid

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tbeckfield/rotorpid/cmd/global"
	"github.com/tbeckfield/rotorpid/internal/configuration"
	"github.com/tbeckfield/rotorpid/internal/controller"
	"github.com/tbeckfield/rotorpid/internal/pid"
	"github.com/tbeckfield/rotorpid/internal/sim"
	"github.com/tbeckfield/rotorpid/internal/ui"
)

var (
	stepStick  int16
	stepCycles int
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Print the simulated roll rate step response of the active profile",
	Run: func(cmd *cobra.Command, args []string) {
		configPath := configuration.DetectAndReadConfigFile()
		if configPath != "" {
			ui.Info("Using configuration file at: %s", configPath)
		}
		configuration.LoadConfig()
		if err := configuration.Validate(); err != nil {
			ui.Fatal(err.Error())
		}

		config := &configuration.CurrentConfig

		craft := sim.NewCraft(config.Simulation, config.Rx, config.LoopTickRate)
		craft.SetArmed(true)
		craft.SetSticks(stepStick, 0, 0)

		rateController := pid.NewController(
			pid.ControllerTypeFromName(config.Controller.Type), true)
		rateLoop := controller.NewRateLoop(
			rateController, craft, craft,
			config.LoopTickRate, config.LoopTimeWindowSize)

		values := make([]float64, 0, stepCycles)
		for i := 0; i < stepCycles; i++ {
			rateLoop.CycleWithDT(config.LoopTickRate)
			values = append(values, craft.Rates()[pid.Roll])
		}

		desiredRate := desiredRollRate(config, stepStick)
		caption := fmt.Sprintf("roll rate (deg/s) over %d cycles, %s controller, commanded %.0f deg/s",
			stepCycles, rateController.Type(), desiredRate)
		if !global.NoColor {
			caption = ansi.Color(caption, "white+b")
		}

		graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln(graph)

		final := values[len(values)-1]
		ui.Printfln("")
		ui.Printfln("final rate: %.1f deg/s (%.1f%% of commanded)",
			final, 100*final/desiredRate)
	},
}

// desiredRollRate mirrors the acro-mode stick scaling of the active
// controller variant, converted to deg/s.
func desiredRollRate(config *configuration.Configuration, stick int16) float64 {
	if config.Controller.Type == configuration.ControllerTypeLuxFloat {
		return (float64(config.Rates.Roll) + 20) * float64(stick) / 50.0
	}
	// the integer controller works in quarter-gyro units
	desired := ((int32(config.Rates.Roll) + 27) * int32(stick)) >> 4
	return float64(desired) * 4 * sim.GyroScale
}

func init() {
	stepCmd.Flags().Int16VarP(&stepStick, "stick", "s", 250, "Roll stick step in deflection units (-500..500)")
	stepCmd.Flags().IntVarP(&stepCycles, "cycles", "n", 500, "Number of control cycles to simulate")
	Command.AddCommand(stepCmd)
}
