package cmd

import (
	"fmt"
	"os"

	"github.com/Rana718/spring-helper/internal/config"
	"github.com/Rana718/spring-helper/internal/logger"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool
	Version  = "0.3.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════╗",
		"║                                                  ║",
		"║        🌱  S P R I N G   H E L P E R  🌱         ║",
		"║                                                  ║",
		"║     Spring Boot scaffolding from your schema     ║",
		"║                                                  ║",
		"╚══════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                  ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "spring-helper",
	Short: "Scaffold Spring Boot projects and layered sources from PostgreSQL",
	Long: `
Spring Helper bootstraps Spring Boot projects and generates the layered
source files of a reactive CRUD service from an existing database.

Commands:
- init         download a project skeleton from Spring Initializr
- model        turn a pasted JSON document into a model class
- quick-start  generate entity, repository, service and controller
               files for every table of a PostgreSQL schema`,

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("Spring Helper CLI version %s\n", Version)
			return
		}

		showBanner()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./spring-helper.config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "diagnostic log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("spring-helper.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}

// loadConfig loads and validates the configuration, letting --log-level win
// over the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(&logger.Config{
		Level:  cfg.LogLevel,
		Output: os.Stderr,
	})
}
