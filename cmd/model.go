package cmd

import (
	"os"

	"github.com/Rana718/spring-helper/internal/artifact"
	"github.com/Rana718/spring-helper/internal/model"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var modelOut string

var modelCmd = &cobra.Command{
	Use:   "model <ModelName> <package>",
	Short: "Create a model class from a pasted JSON document",
	Long: `Read one line of JSON from standard input, an object mapping field
names to Java types, and write <ModelName>.java with one private field per
key in document order.

Example:
  echo '{"id":"Integer","name":"String"}' | spring-helper model Product tw.mingchang.shop.model`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		outDir := modelOut
		if outDir == "" {
			outDir = cfg.OutputDir
		}

		generator := model.NewGenerator(os.Stdin, os.Stdout, artifact.NewEmitter(afero.NewOsFs(), outDir), newLogger(cfg))
		_, err = generator.Generate(args[0], args[1])
		return err
	},
}

func init() {
	modelCmd.Flags().StringVarP(&modelOut, "out", "o", "", "output directory (default from output_dir)")

	rootCmd.AddCommand(modelCmd)
}
