package config

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tbeckfield/rotorpid/cmd/global"
	"github.com/tbeckfield/rotorpid/internal/configuration"
	"github.com/tbeckfield/rotorpid/internal/ui"
	"github.com/tomlazar/table"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the active PID profile to console",
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

		ui.Printfln("Controller: %s", config.Controller.Type)
		ui.Printfln("Loop tick rate: %s", config.LoopTickRate)

		profile := &config.Profile
		tab := table.Table{
			Headers: []string{"axis", "P", "I", "D", "Pf", "If", "Df", "rate"},
			Rows: [][]string{
				profileRow("roll", &profile.Roll, config.Rates.Roll),
				profileRow("pitch", &profile.Pitch, config.Rates.Pitch),
				profileRow("yaw", &profile.Yaw, config.Rates.Yaw),
			},
		}

		var buf bytes.Buffer
		tableErr := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if tableErr != nil {
			panic(tableErr)
		}
		ui.Printfln(buf.String())

		ui.Printfln("Level: P %d  I %d  D %d  Pf %.2f  If %.2f",
			profile.Level.P, profile.Level.I, profile.Level.D,
			profile.Level.PF, profile.Level.IF)
		ui.Printfln("P-term cut: %dHz  D-term cut: %dHz  Horizon sensitivity: %d",
			profile.PTermCutHz, profile.DTermCutHz, profile.HorizonSensitivity)
	},
}

func profileRow(axis string, gains *configuration.AxisGainsConfig, rate uint8) []string {
	return []string{
		axis,
		strconv.Itoa(int(gains.P)),
		strconv.Itoa(int(gains.I)),
		strconv.Itoa(int(gains.D)),
		fmt.Sprintf("%.2f", gains.PF),
		fmt.Sprintf("%.2f", gains.IF),
		fmt.Sprintf("%.3f", gains.DF),
		strconv.Itoa(int(rate)),
	}
}

func init() {
	Command.AddCommand(printCmd)
}
