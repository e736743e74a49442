package cmd

import (
	"github.com/etnz/cashbuddy"
	"github.com/etnz/cashbuddy/config"
	"github.com/etnz/cashbuddy/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	prefixes := map[string]predict.Set{
		cashbuddy.CmdAdd:       {cashbuddy.PrefixAmount, cashbuddy.PrefixDescription, cashbuddy.PrefixCategory},
		cashbuddy.CmdEdit:      {cashbuddy.PrefixID, cashbuddy.PrefixAmount, cashbuddy.PrefixDescription, cashbuddy.PrefixCategory},
		cashbuddy.CmdSetBudget: {cashbuddy.PrefixAmount},
		cashbuddy.CmdFind:      {cashbuddy.PrefixCategory, cashbuddy.PrefixDescription},
	}

	sub := map[string]*complete.Command{
		"shell": {},
		"fmt":   {},
		"query": {Args: predict.Set{"$.budget", "$.total", "$.remaining", "$.expenses"}},
	}
	for _, lc := range ledgerCommands() {
		c := &complete.Command{}
		if p, ok := prefixes[lc.name]; ok {
			c.Args = p
		}
		sub[lc.name] = c
	}
	topics, _ := docs.GetAllTopics()
	topics = append(append([]string{"*"}, topics...), cashbuddy.Commands...)
	sub["topic"] = &complete.Command{
		Args:  predict.Set(topics),
		Flags: map[string]complete.Predictor{"list": predict.Nothing},
	}

	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data":      predict.Files("*"),
			"backend":   predict.Set(config.Backends),
			"currency":  predict.Something,
			"log-level": predict.Set{"debug", "info", "warn", "error", "disabled"},
		},
	}
}
