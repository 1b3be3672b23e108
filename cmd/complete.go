package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the commands and their flags for shell completion.
func Completion() *complete.Command {
	currencies := predict.Set{"EUR", "USD"}
	rates := map[string]complete.Predictor{
		"r":            predict.Files("*"),
		"rates-format": predict.Set{"csv", "json"},
		"rates-path":   predict.Something,
		"rates-date":   predict.Something,
		"rates-value":  predict.Something,
		"from":         currencies,
		"to":           currencies,
	}
	with := func(flags map[string]complete.Predictor) map[string]complete.Predictor {
		for k, v := range rates {
			flags[k] = v
		}
		return flags
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"convert": {Flags: with(map[string]complete.Predictor{
				"i":       predict.Files("*.csv"),
				"o":       predict.Files("*.csv"),
				"summary": predict.Nothing,
			})},
			"rate": {Flags: with(map[string]complete.Predictor{
				"d":      predict.Something,
				"amount": predict.Something,
			})},
			"sales": {Flags: map[string]complete.Predictor{
				"i":         predict.Files("*.csv"),
				"tolerance": predict.Something,
				"json":      predict.Nothing,
			}},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}
