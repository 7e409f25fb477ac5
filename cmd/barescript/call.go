package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"barescript/internal/library"
	"barescript/internal/store"
	"barescript/internal/value"
)

func (a *app) callCmd() *cobra.Command {
	var (
		expr          bool
		globalsDriver string
		globalsDSN    string
	)

	cmd := &cobra.Command{
		Use:   "call <function> [json-arg ...]",
		Short: "Call a built-in function and print its result",
		Example: `  barescript call arrayLength '[1, 2, 3]'
  barescript call --expr rept abc 3
  barescript call --globals-dsn globals.db systemGlobalSet count 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, ok := library.Lookup(args[0], expr)
			if !ok {
				return fmt.Errorf("unknown function %q", args[0])
			}

			values := make([]value.Value, 0, len(args)-1)
			for _, arg := range args[1:] {
				values = append(values, parseArg(arg))
			}

			if cmd.Flags().Changed("globals-driver") {
				a.cfg.Globals.Driver = globalsDriver
			}
			if cmd.Flags().Changed("globals-dsn") {
				a.cfg.Globals.DSN = globalsDSN
			}

			ctx := cmd.Context()
			opts := a.options(ctx, cmd.OutOrStdout())

			var globals *store.Store
			if a.cfg.Globals.DSN != "" {
				var err error
				globals, err = store.Open(ctx, a.cfg.Globals.Driver, a.cfg.Globals.DSN)
				if err != nil {
					return err
				}
				defer globals.Close()
				if opts.Globals, err = globals.Load(ctx); err != nil {
					return err
				}
			}

			slog.Debug("calling function", slog.String("name", fn.Name), slog.Int("args", len(values)))
			result := fn.Call(values, opts)
			fmt.Fprintln(cmd.OutOrStdout(), value.String(result))

			if globals != nil {
				return globals.Save(ctx, opts.Globals)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&expr, "expr", false, "Resolve the name in the expression function table")
	cmd.Flags().StringVar(&globalsDriver, "globals-driver", "", "Globals database driver: "+fmt.Sprint(store.Drivers))
	cmd.Flags().StringVar(&globalsDSN, "globals-dsn", "", "Globals database DSN (globals are not persisted when empty)")
	return cmd
}

// parseArg reads a command-line argument as JSON, falling back to a plain
// string.
func parseArg(arg string) value.Value {
	v, err := value.ParseJSON(arg)
	if err != nil {
		return value.NewString(arg)
	}
	return v
}

func (a *app) listCmd() *cobra.Command {
	var expr bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in function names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fns := library.ScriptFunctions
			if expr {
				fns = library.ExpressionFunctions
			}
			names := make([]string, 0, len(fns))
			for name := range fns {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	cmd.Flags().BoolVar(&expr, "expr", false, "List the expression function names")
	return cmd
}
