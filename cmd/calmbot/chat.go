package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	memstore "github.com/PreranaYekkele/CalmBot/internal/adapters/storage/memory"
	"github.com/PreranaYekkele/CalmBot/internal/app/dialogue"
	"github.com/PreranaYekkele/CalmBot/internal/app/emotion"
	"github.com/PreranaYekkele/CalmBot/internal/domain"
	"github.com/PreranaYekkele/CalmBot/internal/observability"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to CalmBot in the terminal",
	Long:  "Starts a local, in-memory conversation. Nothing is persisted; useful for trying out the response engine without running the API.",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

var (
	botStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	userStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runChat(cmd *cobra.Command, args []string) error {
	observability.Configure("text", "error")

	bank, err := dialogue.NewBank()
	if err != nil {
		return err
	}

	engine := dialogue.NewEngine(
		emotion.NewDefaultRules(),
		bank,
		memstore.NewSessionStore(),
		memstore.NewInteractionStore(),
		dialogue.WithCrisisDetector(emotion.NewCrisisKeywords()),
	)

	ctx := cmd.Context()
	sessionID := domain.SessionID(uuid.NewString())

	fmt.Println(dimStyle.Render("CalmBot (type 'exit' to leave)"))

	// The first contact always greets, whatever the text.
	greeting, err := engine.Respond(ctx, sessionID, "hello")
	if err != nil {
		return err
	}
	fmt.Println(botStyle.Render("calmbot: ") + greeting)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(userStyle.Render("you: "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		response, err := engine.Respond(ctx, sessionID, line)
		if err != nil {
			return err
		}
		fmt.Println(botStyle.Render("calmbot: ") + response)
	}

	fmt.Println(dimStyle.Render("Take care of yourself."))
	return scanner.Err()
}
