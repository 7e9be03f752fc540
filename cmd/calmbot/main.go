package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "calmbot",
	Short:   "Supportive mental-health chat service",
	Long:    "CalmBot classifies the emotional intent of chat messages and replies with supportive, rule-selected responses, escalating to follow-up questions and professional referrals as a conversation progresses.",
	Version: version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
