// Package main provides the taskpilot binary entry point: a CLI for
// validating automation rule files and running single engine passes over
// task mutations.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"taskpilot/internal/config"
	"taskpilot/internal/engine"
	"taskpilot/internal/rules"
	"taskpilot/internal/task"
)

var cfg *config.Config

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "taskpilot",
		Short:        "Task automation rule engine",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			return setupLogging(cfg.Logging)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "taskpilot.yaml", "path to config file")
	root.AddCommand(newValidateCmd(), newEvalCmd())
	return root
}

func setupLogging(lc config.LoggingConfig) error {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		return fmt.Errorf("invalid log level '%s': %w", lc.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	if lc.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return nil
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [rules-file]",
		Short: "Parse and validate an automation rules file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Rules.Path
			if len(args) == 1 {
				path = args[0]
			}
			ruleSet, err := loadRules(path)
			if err != nil {
				return err
			}
			fmt.Printf("%d rules OK\n", len(ruleSet))
			return nil
		},
	}
}

func newEvalCmd() *cobra.Command {
	var rulesPath, oldPath, newPath string
	var updateCounts bool

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Run one automation pass over a task mutation",
		Long: `Eval runs a single rule pass for one task mutation. With --old it
evaluates an update from the old snapshot to the new one; without it the
mutation counts as a creation. The result (patched task, fired rule ids,
notifications) is printed as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rulesPath == "" {
				rulesPath = cfg.Rules.Path
			}
			ruleSet, err := loadRules(rulesPath)
			if err != nil {
				return err
			}

			var oldTask *task.Task
			if oldPath != "" {
				var t task.Task
				if err := readJSON(oldPath, &t); err != nil {
					return err
				}
				oldTask = &t
			}
			var newTask task.Task
			if err := readJSON(newPath, &newTask); err != nil {
				return err
			}

			e := engine.New()
			result := e.Execute(oldTask, newTask, ruleSet)
			if err := printJSON(result); err != nil {
				return err
			}

			if updateCounts {
				return printJSON(e.UpdateRuleTriggerCount(ruleSet, result.FiredRuleIDs))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "", "rules file (default from config)")
	cmd.Flags().StringVar(&oldPath, "old", "", "prior task snapshot JSON (omit for creation)")
	cmd.Flags().StringVar(&newPath, "new", "", "candidate task snapshot JSON")
	_ = cmd.MarkFlagRequired("new")
	cmd.Flags().BoolVar(&updateCounts, "update-counts", false, "also print rules with trigger counts applied")
	return cmd
}

func loadRules(path string) ([]rules.AutomationRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	ruleSet, err := rules.ParseRules(data)
	if err != nil {
		return nil, err
	}
	if err := rules.ValidateRules(ruleSet); err != nil {
		return nil, err
	}
	return ruleSet, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
