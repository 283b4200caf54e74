package commands

import (
	"fmt"
	"io"
	"os"

	"projboard/internal/models"
	"projboard/internal/script"
	"projboard/internal/util"
	"projboard/internal/views"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Print every list notification while replaying
var replayTrace bool

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Replay a script of board operations",
	Long: `Run add and move operations from a script without the terminal UI
and print the resulting lists. Use "-" to read the script from stdin.

Script lines have fields separated by '|':
  add  | <title> | <description> | <people>
  move | <title or id> | <active or finished>`,
	Example: `  projboard replay board.txt
  projboard replay --trace board.txt
  cat board.txt | projboard replay -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("error opening script: %w", err)
			}
			defer f.Close()
			in = f
		}

		cmds, err := script.Parse(in)
		if err != nil {
			return err
		}

		logger, closeLog, err := openLogger()
		if err != nil {
			return err
		}
		defer closeLog()

		out := cmd.OutOrStdout()
		store, validator := newBoard(logger)

		var renderer views.Renderer
		if replayTrace {
			renderer = views.RendererFunc(func(kind views.Kind, projects []models.Project) {
				fmt.Fprintf(out, "~ %s: %d\n", kind, len(projects))
			})
		}
		active := views.New(views.KindActive, store, renderer, logger)
		finished := views.New(views.KindFinished, store, renderer, logger)

		runner := script.NewRunner(store, validator, []*views.ListView{active, finished}, logger)
		if err := runner.Run(cmds); err != nil {
			return err
		}

		printList(out, active, color.New(color.FgGreen))
		fmt.Fprintln(out)
		printList(out, finished, color.New(color.FgCyan))
		return nil
	},
}

// printList writes one list in the style of the board
func printList(w io.Writer, v *views.ListView, c *color.Color) {
	projects := v.Projects()
	bold := color.New(color.Bold)
	bold.Fprintf(w, "%s (%d)\n", v.Title(), len(projects))

	if len(projects) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, p := range projects {
		c.Fprintf(w, "\t%s\n", p.Title)
		fmt.Fprintf(w, "\t  %s\n", util.PeopleText(p.People))
		fmt.Fprintf(w, "\t  %s\n", util.Truncate(p.Description, 72))
	}
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayTrace, "trace", false, "Print every list notification")
}
