package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polarbytes/floe/internal/ingest"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local catalog cache",
}

var cacheSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Store the --catalog file in the cache under --product/--product-version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cachePath == "" {
			return errors.New("--cache is required")
		}
		if catalogPath == "" {
			return errors.New("--catalog is required")
		}
		paths, err := loadCatalog()
		if err != nil {
			return err
		}
		if productID == "" {
			return errors.New("no product: pass --product or a capabilities catalog")
		}
		cache, err := ingest.OpenCache(cachePath)
		if err != nil {
			return err
		}
		defer func() { _ = cache.Close() }()

		if err := cache.Save(productID, versionID, paths); err != nil {
			return err
		}
		fmt.Printf("cached %d paths for %s v%s\n", len(paths), productID, versionID)
		return nil
	},
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cachePath == "" {
			return errors.New("--cache is required")
		}
		cache, err := ingest.OpenCache(cachePath)
		if err != nil {
			return err
		}
		defer func() { _ = cache.Close() }()

		entries, err := cache.Products()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s v%s\n", e[0], e[1])
		}
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheSaveCmd)
	cacheCmd.AddCommand(cacheListCmd)
	rootCmd.AddCommand(cacheCmd)
}
