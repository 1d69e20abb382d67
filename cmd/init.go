package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Rana718/spring-helper/internal/initializr"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <package> <jar|war> <java-version> <maven|gradle> [file]",
	Short: "Download a new Spring Boot project skeleton",
	Long: `Download a project zip from Spring Initializr with the reactive
PostgreSQL stack preselected (webflux, lombok, devtools,
configuration-processor, data-r2dbc, postgresql).

The package needs at least three parts: the first two become the groupId
and the rest the artifactId. Supported Java versions are 18, 17 and 11.

Example:
  spring-helper init tw.mingchang.shop jar 17 maven shop.zip`,
	Args: cobra.RangeArgs(4, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg)

		javaVersion, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("%w: Java version %q is not a number", initializr.ErrInvalidOption, args[2])
		}

		opts := initializr.Options{
			PackageName: args[0],
			Packaging:   args[1],
			JavaVersion: javaVersion,
			ProjectType: args[3],
		}
		if len(args) == 5 {
			opts.FileName = args[4]
		}

		log.Debug("requesting project skeleton", "base_url", cfg.Initializr.BaseURL, "boot_version", cfg.Initializr.BootVersion)

		client := initializr.NewClient(cfg.Initializr, afero.NewOsFs(), os.Stdout)
		path, err := client.Download(cmd.Context(), opts)
		if err != nil {
			return err
		}

		color.Green("✅ Project downloaded successfully as %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
