package phugoid

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _phugoidconfig{}
)

// _phugoidconfig is a "hidden" struct, just use `phugoidConfig`
type _phugoidconfig struct {
	outputDir  string
	resolution int
}

// phugoidConfig returns the phugoid configuration. Unlike a mission
// toolchain, this library is fully usable without any configuration file:
// if the `PHUGOID_CONFIG` environment variable is unset, defaults apply
// (output in the working directory, 1000 points per trace).
func phugoidConfig() _phugoidconfig {
	if cfgLoaded {
		return config
	}
	config = _phugoidconfig{outputDir: ".", resolution: 1000}
	if confPath := os.Getenv("PHUGOID_CONFIG"); confPath != "" {
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("%s/conf.toml not found", confPath))
		}
		if dir := viper.GetString("general.output_path"); dir != "" {
			config.outputDir = dir
		}
		if res := viper.GetInt("trace.resolution"); res > 0 {
			config.resolution = res
		}
	}
	cfgLoaded = true
	return config
}
