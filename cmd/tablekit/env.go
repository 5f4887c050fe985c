package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "tablekit"

// applyEnvironment fills flags the user did not pass from the environment.
// Root flags read TABLEKIT_<FLAG>, subcommand flags TABLEKIT_<CMD>_<FLAG>.
func applyEnvironment(cmd *cobra.Command) error {
	v := viper.New()
	v.AutomaticEnv()
	if cmd.Parent() == nil {
		v.SetEnvPrefix(envPrefix)
	} else {
		v.SetEnvPrefix(fmt.Sprintf("%s_%s", envPrefix, cmd.Name()))
	}

	var errs []string
	visit := func(f *pflag.Flag) {
		name := strings.ReplaceAll(f.Name, "-", "_")
		if f.Changed || !v.IsSet(name) {
			return
		}
		if err := f.Value.Set(fmt.Sprintf("%v", v.Get(name))); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", f.Name, err))
			return
		}
		f.Changed = true
	}
	if cmd.Parent() == nil {
		cmd.PersistentFlags().VisitAll(visit)
	} else {
		cmd.LocalNonPersistentFlags().VisitAll(visit)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("error mapping environment variables to command flags: %s", strings.Join(errs, "; "))
}
