package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Subcommand flags are not bound into viper: several commands share flag
// names such as "manifest", and a global binding would only track the
// last registered command. Keys are read from the config file and
// PKGMANIFEST_* environment instead, with the flag value as fallback.

// resolveString prefers an explicitly set flag, then the viper value
// (config file or PKGMANIFEST_* environment), then the flag default.
func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if flagChanged(cmd, flagName) {
		return value
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return value
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if flagChanged(cmd, flagName) {
		return value
	}
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return value
}
