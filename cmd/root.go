package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Karl-Horning/nextjs-shoe-store/internal/config"
	"github.com/Karl-Horning/nextjs-shoe-store/internal/database"
)

var (
	cfgFile   string
	configErr error
	Version   = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "shoeseed",
	Short: "Seed the shoe store tables with development data",
	Long: `
shoeseed writes the fixed development dataset of the shoe store into its two
tables: one sample order into the orders table and the full shoe catalog into
the shoes table. Records are upserted by primary key, so running it again
leaves the same contents.

Running shoeseed with no command seeds the tables.

Database Support:
- DynamoDB (default, AWS credential chain or DynamoDB Local via database.endpoint)
- PostgreSQL, MySQL, SQLite (JSON documents keyed by the primary key column)`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runSeed,
}

func Execute() error {
	err := rootCmd.Execute()
	if tip := failureTip(err); tip != "" {
		color.Yellow("💡 Tip: %s", tip)
	}
	return err
}

func failureTip(err error) string {
	switch database.Kind(err) {
	case database.ErrConnection:
		return "check AWS credentials, database.region and database.endpoint, or DATABASE_URL for SQL providers"
	case database.ErrTableNotFound:
		return "create both tables before seeding, shoeseed does not create them"
	case database.ErrThroughput:
		return "lower seed.batch_size or raise the table's write capacity"
	case database.ErrInvalidItem:
		return "the table's key attribute must match OrderId / ShoeId"
	default:
		return ""
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./shoeseed.config.json)")
	rootCmd.PersistentFlags().String("provider", "", "database provider (dynamodb, postgresql, mysql, sqlite, memory)")
	viper.BindPFlag("database.provider", rootCmd.PersistentFlags().Lookup("provider"))
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
		viper.SetConfigName(config.FileName)
	}

	config.BindEnv(viper.GetViper())

	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = err
		}
	}
}

// loadConfig surfaces a config file that exists but could not be read.
func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, fmt.Errorf("failed to read config file: %w", configErr)
	}
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
