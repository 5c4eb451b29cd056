package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/polarbytes/floe/internal/varpath"
)

var (
	availPaths    bool
	availBranches bool
	availKeywords bool
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
var dimStyle = lipgloss.NewStyle().Faint(true)

var availCmd = &cobra.Command{
	Use:   "avail",
	Short: "List a catalog's variables, branches, and keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}

		if availBranches {
			printSection("branches", sess.Index.Branches())
			return nil
		}
		if availKeywords {
			printSection("keywords", sess.Index.Keywords())
			return nil
		}

		if availPaths {
			for _, g := range varpath.GroupByVariable(sess.Catalog.Paths()) {
				fmt.Println(headingStyle.Render(g.Variable))
				for _, p := range g.Paths {
					fmt.Println("  " + p)
				}
			}
			return nil
		}

		printSection("variables", sess.Index.Variables())
		fmt.Println(dimStyle.Render(
			"use --paths for full paths, --branches or --keywords for filter tokens"))
		return nil
	},
}

func printSection(name string, values []string) {
	fmt.Println(headingStyle.Render(name))
	fmt.Println(strings.Join(values, "\n"))
}

func init() {
	availCmd.Flags().BoolVar(&availPaths, "paths", false, "Group full paths by variable")
	availCmd.Flags().BoolVar(&availBranches, "branches", false, "List branch (beam/profile) values")
	availCmd.Flags().BoolVar(&availKeywords, "keywords", false, "List keyword tokens")
	rootCmd.AddCommand(availCmd)
}
