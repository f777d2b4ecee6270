// Command kp manages kartu persediaan, inventory cards kept with the
// weighted average costing method.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/melinasalsa28/kartu-persediaan/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("kp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	postFlags := map[string]complete.Predictor{
		"item": predict.Something,
		"d":    predict.Nothing,
		"q":    predict.Nothing,
		"p":    predict.Nothing,
		"doc":  predict.Nothing,
		"memo": predict.Nothing,
	}
	itemFlag := map[string]complete.Predictor{
		"item": predict.Something,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"add-item": {Args: predict.Something},
			"items":    {},
			"opening": {Flags: map[string]complete.Predictor{
				"item": predict.Something,
				"d":    predict.Nothing,
				"q":    predict.Nothing,
				"p":    predict.Nothing,
			}},
			"buy":      {Flags: postFlags},
			"sell":     {Flags: postFlags},
			"delete": {Flags: map[string]complete.Predictor{
				"item":  predict.Something,
				"index": predict.Nothing,
			}},
			"card": {Flags: itemFlag},
			"export": {Flags: map[string]complete.Predictor{
				"item": predict.Something,
				"o":    predict.Files("*.xlsx"),
			}},
			"topic": {Args: predict.Set{"readme", "commands", "costing", "storage", "*"}},
		},
	}
}
