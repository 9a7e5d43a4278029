// Package commands implements the CourseHub operator CLI
package commands

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/coursehub/coursehub/pkg/api/v1/client"
	"github.com/coursehub/coursehub/pkg/api/v1/routes"
)

// flag names
const (
	flagServerAddress = "server-address"
	flagToken         = "token"
)

// environment variable names
const (
	envServerAddress = "COURSEHUB_SERVER_ADDRESS"
	envToken         = "COURSEHUB_TOKEN"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// serverAddress holds the target API server address
	serverAddress string
	// token holds the bearer session token presented to the API
	token string
)

// initClient initializes the API client
func initClient() error {
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress
	opts.Token = token

	var err error
	apiClient, err = client.NewClient(opts)
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", routes.DefaultBaseURL,
		"Address of the CourseHub API server (env: COURSEHUB_SERVER_ADDRESS)")
	RootCmd.PersistentFlags().StringVarP(&token, flagToken, "t", "",
		"Bearer session token (env: COURSEHUB_TOKEN)")

	RootCmd.AddCommand(GetCoursesCmd())
	RootCmd.AddCommand(GetEnrollmentsCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "coursehub",
	Short: "CourseHub CLI - A command line interface for the CourseHub API",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		_ = godotenv.Load()

		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(envServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}
		if !cmd.Flags().Changed(flagToken) {
			if envTok := os.Getenv(envToken); envTok != "" {
				token = envTok
			}
		}

		return initClient()
	},
}
