package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/polarbytes/floe/internal/index"
	"github.com/polarbytes/floe/internal/session"
	"github.com/polarbytes/floe/internal/wanted"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the selection session as an MCP stdio server",
	Long: `Serve the loaded catalog as MCP tools so an agent can build a coverage
selection incrementally: list_values, append, remove, coverage. One session
per server process; stdio serializes calls, matching the engine's
single-writer model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession()
		if err != nil {
			return err
		}
		return serveSession(sess)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type sessionTools struct {
	sess *session.Session
}

func serveSession(sess *session.Session) error {
	st := &sessionTools{sess: sess}
	s := server.NewMCPServer("floe", "1.0.0", server.WithToolCapabilities(false))

	s.AddTool(mcp.NewTool("list_values",
		mcp.WithDescription("List the valid filter values for one dimension of the catalog"),
		mcp.WithString("dimension",
			mcp.Required(),
			mcp.Description("One of: variables, branches, keywords"),
			mcp.Enum("variables", "branches", "keywords"),
		),
	), st.listValues)

	s.AddTool(mcp.NewTool("append",
		mcp.WithDescription("Add matching paths to the wanted set. Dimensions combine with AND, values within a dimension with OR. Omit all filters and set defaults=true for the curated baseline."),
		mcp.WithBoolean("defaults", mcp.Description("Include the product's curated baseline variables")),
		mcp.WithArray("variables", mcp.Description("Variable names"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("branches", mcp.Description("Beam/profile names"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("keywords", mcp.Description("Path keywords"), mcp.Items(map[string]any{"type": "string"})),
	), st.append)

	s.AddTool(mcp.NewTool("remove",
		mcp.WithDescription("Remove matching paths from the wanted set, or everything with all=true"),
		mcp.WithBoolean("all", mcp.Description("Clear the entire wanted set")),
		mcp.WithArray("variables", mcp.Description("Variable names"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("branches", mcp.Description("Beam/profile names"), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("keywords", mcp.Description("Path keywords"), mcp.Items(map[string]any{"type": "string"})),
	), st.remove)

	s.AddTool(mcp.NewTool("coverage",
		mcp.WithDescription("Return the current wanted paths as an order coverage parameter"),
	), st.coverage)

	return server.ServeStdio(s)
}

func (st *sessionTools) listValues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dim := req.GetString("dimension", "")
	values, err := st.sess.Index.ValidValues(index.Dimension(dim))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strings.Join(values, "\n")), nil
}

// specFromArgs maps tool arguments to a filter spec, keeping the unset /
// empty distinction: an omitted dimension is unconstrained, an explicit
// empty list asks for that dimension's valid values.
func specFromArgs(req mcp.CallToolRequest) *index.FilterSpec {
	spec := &index.FilterSpec{
		Variables: req.GetStringSlice("variables", nil),
		Branches:  req.GetStringSlice("branches", nil),
		Keywords:  req.GetStringSlice("keywords", nil),
	}
	if spec.IsZero() {
		return nil
	}
	return spec
}

func (st *sessionTools) append(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	added, err := st.sess.Append(wanted.AppendRequest{
		Defaults: req.GetBool("defaults", false),
		Spec:     specFromArgs(req),
	})
	if err != nil {
		// The introspection signal is a result, not a failure: hand the
		// valid values back to the agent.
		var empty *index.EmptyDimensionError
		if errors.As(err, &empty) {
			return mcp.NewToolResultText(fmt.Sprintf("valid %s:\n%s",
				empty.Dimension, strings.Join(empty.Valid, "\n"))), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("added %d paths\n%s",
		len(added), strings.Join(added, "\n"))), nil
}

func (st *sessionTools) remove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	removed, err := st.sess.Remove(wanted.RemoveRequest{
		All:  req.GetBool("all", false),
		Spec: specFromArgs(req),
	})
	if err != nil {
		var empty *index.EmptyDimensionError
		if errors.As(err, &empty) {
			return mcp.NewToolResultText(fmt.Sprintf("valid %s:\n%s",
				empty.Dimension, strings.Join(empty.Valid, "\n"))), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("removed %d paths", len(removed))), nil
}

func (st *sessionTools) coverage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	order := st.sess.Order()
	return mcp.NewToolResultText(order.Coverage), nil
}
