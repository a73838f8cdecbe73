package common

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type finderFlag struct {
	name  string
	key   string
	usage string
	list  bool
}

var finderFlags = []finderFlag{
	{name: "threshold", key: "threshold", usage: "combinations per level stack before falling back to a narrower policy"},
	{name: "seed-min-length", key: "seed_min_length", usage: "levels collected before the first uniqueness check"},
	{name: "optimized-min-length", key: "optimized_min_length", usage: "path length above which the selector is shortened"},
	{name: "max-tries", key: "max_number_of_tries", usage: "budget of removal attempts while shortening"},
	{name: "attr", key: "attributes", usage: "attribute names allowed in selectors (trailing * matches a prefix)", list: true},
	{name: "ignore-id", key: "ignore_ids", usage: "regexp of ids never to use", list: true},
	{name: "ignore-class", key: "ignore_classes", usage: "regexp of classes never to use", list: true},
	{name: "ignore-tag", key: "ignore_tags", usage: "regexp of tag names never to use", list: true},
}

func finderKey(key string) string {
	return "finder." + key
}

// AddFinderFlags registers the selector search flags on cmd.
func AddFinderFlags(cmd *cobra.Command) {
	for _, f := range finderFlags {
		if f.list {
			cmd.Flags().StringSlice(f.name, nil, f.usage)
		} else {
			cmd.Flags().Int(f.name, 0, f.usage)
		}
	}
}

// bindFinderFlags binds the search flags of the running command to v.
// Subcommands share key names, so binding happens per run.
func bindFinderFlags(cmd *cobra.Command, v *viper.Viper) error {
	for _, f := range finderFlags {
		flag := cmd.Flags().Lookup(f.name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(finderKey(f.key), flag); err != nil {
			return fmt.Errorf("failed to bind %s flag: %w", f.name, err)
		}
	}
	return nil
}
