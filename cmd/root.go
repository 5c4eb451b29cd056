// Package cmd implements the floe command line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polarbytes/floe/internal/ingest"
	"github.com/polarbytes/floe/internal/logging"
	"github.com/polarbytes/floe/internal/product"
	"github.com/polarbytes/floe/internal/session"
)

var (
	productID   string
	versionID   string
	catalogPath string
	cachePath   string
	configPath  string
	verbosity   int
)

var rootCmd = &cobra.Command{
	Use:   "floe",
	Short: "Floe: variable subset selection for hierarchical data products",
	Long: `Floe builds the variable-coverage subset of a hierarchical satellite
data product. Load a catalog of full variable paths, narrow it by variable
name, beam, or path keyword, and hand the result to an order as a single
coverage parameter.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbosity)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&productID, "product", "p", "", "Product short name (e.g. ATL06)")
	pf.StringVar(&versionID, "product-version", "", "Product version (e.g. 006)")
	pf.StringVarP(&catalogPath, "catalog", "c", "", "Catalog file: capabilities JSON or plain path listing")
	pf.StringVar(&cachePath, "cache", "", "SQLite catalog cache database")
	pf.StringVar(&configPath, "products-config", "", "Extra product constants (HCL)")
	pf.CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (repeatable)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newRegistry builds the product registry, merging any user config file.
func newRegistry() (*product.Registry, error) {
	reg := product.NewRegistry()
	if configPath != "" {
		if err := reg.LoadFile(configPath); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// loadCatalog resolves the catalog paths from --catalog or --cache.
// A capabilities document may also fill in the product and version when the
// flags are unset.
func loadCatalog() ([]string, error) {
	switch {
	case catalogPath != "" && strings.HasSuffix(catalogPath, ".json"):
		caps, err := ingest.ReadCapabilitiesFile(catalogPath)
		if err != nil {
			return nil, err
		}
		if productID == "" {
			productID = caps.Product
		}
		if versionID == "" {
			versionID = caps.Version
		}
		return caps.Paths, nil
	case catalogPath != "":
		return ingest.ReadPathsFile(catalogPath)
	case cachePath != "":
		if productID == "" {
			return nil, errors.New("--product is required when loading from the cache")
		}
		cache, err := ingest.OpenCache(cachePath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = cache.Close() }()
		return cache.Load(productID, versionID)
	default:
		return nil, errors.New("no catalog source: pass --catalog or --cache")
	}
}

// newSession loads the catalog and builds a selection session.
func newSession() (*session.Session, error) {
	paths, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	reg, err := newRegistry()
	if err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, errors.New("no product: pass --product or a capabilities catalog")
	}
	return session.New(productID, versionID, paths, reg)
}
