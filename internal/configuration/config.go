package configuration

import (
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/tbeckfield/rotorpid/internal/ui"
)

type Configuration struct {
	// LoopTickRate is the interval between control cycles.
	LoopTickRate time.Duration `json:"loopTickRate"`
	// LoopTimeWindowSize is the number of measured cycle times kept for
	// loop statistics.
	LoopTimeWindowSize int `json:"loopTimeWindowSize"`

	Controller ControllerConfig `json:"controller"`
	Profile    PidProfileConfig `json:"profile"`
	Rates      RatesConfig      `json:"rates"`
	Rx         RxConfig         `json:"rx"`

	Statistics StatisticsConfig `json:"statistics"`
	Simulation SimulationConfig `json:"simulation"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("rotorpid")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/rotorpid/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("LoopTickRate", 2*time.Millisecond)
	viper.SetDefault("LoopTimeWindowSize", 256)

	viper.SetDefault("Controller.Type", ControllerTypeMWRewrite)
	viper.SetDefault("Controller.MaxAngleInclination", 500)
	viper.SetDefault("Controller.RecordTerms", false)
	viper.SetDefault("Controller.TpaRate", 0)
	viper.SetDefault("Controller.TpaBreakpoint", 1500)

	viper.SetDefault("Profile.Roll", DefaultAxisGains)
	viper.SetDefault("Profile.Pitch", DefaultAxisGains)
	viper.SetDefault("Profile.Yaw", DefaultYawGains)
	viper.SetDefault("Profile.Level", DefaultLevelGains)
	viper.SetDefault("Profile.PTermCutHz", 0)
	viper.SetDefault("Profile.DTermCutHz", 0)
	viper.SetDefault("Profile.HorizonSensitivity", 75)

	viper.SetDefault("Rates", RatesConfig{})
	viper.SetDefault("Rx.MidRC", 1500)

	viper.SetDefault("Statistics.Enabled", false)
	viper.SetDefault("Statistics.Port", 9400)

	viper.SetDefault("Simulation.ResponseGain", 0.6)
	viper.SetDefault("Simulation.Damping", 2.5)
}

// DetectAndReadConfigFile reads the detected config file and returns its path.
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			// defaults describe a complete, flyable bench setup
			ui.Warning("No configuration file found, using defaults")
		} else {
			// config file was found but could not be parsed
			ui.Fatal("Error reading config file, %s", err)
		}
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

// LoadConfig unmarshals the current viper state into CurrentConfig.
func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig)
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}
