package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polarbytes/floe/internal/index"
	"github.com/polarbytes/floe/internal/logging"
	"github.com/polarbytes/floe/internal/wanted"
)

var (
	covDefaults bool
	covVars     []string
	covBeams    []string
	covKeywords []string
	dropVars    []string
	dropBeams   []string
	dropKeys    []string
	covJSON     bool
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Build the coverage parameter for a subsetting order",
	Long: `Build a wanted-path set from the catalog and print the coverage value
an order request embeds. Appends run first (--defaults, --var, --beam,
--keyword combine with AND across dimensions), then any --drop-* filters
remove from the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		logger := logging.Component("coverage")

		req := wanted.AppendRequest{Defaults: covDefaults}
		if covVars != nil || covBeams != nil || covKeywords != nil {
			req.Spec = &index.FilterSpec{
				Variables: covVars,
				Branches:  covBeams,
				Keywords:  covKeywords,
			}
		}
		added, err := sess.Append(req)
		if err != nil {
			return err
		}
		logger.Info().Int("added", len(added)).Msg("appended paths")

		if dropVars != nil || dropBeams != nil || dropKeys != nil {
			removed, err := sess.Remove(wanted.RemoveRequest{Spec: &index.FilterSpec{
				Variables: dropVars,
				Branches:  dropBeams,
				Keywords:  dropKeys,
			}})
			if err != nil {
				return err
			}
			logger.Info().Int("removed", len(removed)).Msg("removed paths")
		}

		order := sess.Order()
		if covJSON {
			out, err := json.MarshalIndent(order, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}
		fmt.Println(order.Coverage)
		return nil
	},
}

func init() {
	f := coverageCmd.Flags()
	f.BoolVar(&covDefaults, "defaults", false, "Include the product's curated baseline variables")
	f.StringSliceVar(&covVars, "var", nil, "Variable names to select (repeatable)")
	f.StringSliceVar(&covBeams, "beam", nil, "Branch (beam/profile) names to select (repeatable)")
	f.StringSliceVar(&covKeywords, "keyword", nil, "Path keywords to select (repeatable)")
	f.StringSliceVar(&dropVars, "drop-var", nil, "Variable names to remove (repeatable)")
	f.StringSliceVar(&dropBeams, "drop-beam", nil, "Branch names to remove (repeatable)")
	f.StringSliceVar(&dropKeys, "drop-keyword", nil, "Path keywords to remove (repeatable)")
	f.BoolVar(&covJSON, "json", false, "Print the full order scaffold as JSON")
	rootCmd.AddCommand(coverageCmd)
}
