package main

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/PreranaYekkele/CalmBot/internal/adapters/chatlog"
	"github.com/PreranaYekkele/CalmBot/internal/adapters/classifier"
	httpadapter "github.com/PreranaYekkele/CalmBot/internal/adapters/http"
	memstore "github.com/PreranaYekkele/CalmBot/internal/adapters/storage/memory"
	"github.com/PreranaYekkele/CalmBot/internal/adapters/storage/redisstore"
	sqlitestore "github.com/PreranaYekkele/CalmBot/internal/adapters/storage/sqlite"
	"github.com/PreranaYekkele/CalmBot/internal/app/dialogue"
	"github.com/PreranaYekkele/CalmBot/internal/app/emotion"
	"github.com/PreranaYekkele/CalmBot/internal/config"
	"github.com/PreranaYekkele/CalmBot/internal/domain"
	"github.com/PreranaYekkele/CalmBot/internal/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the CalmBot HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	observability.Configure(cfg.LogFormat, cfg.LogLevel)
	log := observability.Logger()

	// Response bank, optionally overridden from a YAML file.
	bankOpts := []dialogue.BankOption{}
	if cfg.BankFile != "" {
		content, err := dialogue.LoadContent(cfg.BankFile)
		if err != nil {
			return err
		}
		log.Info("loaded response bank override", "file", cfg.BankFile)
		bankOpts = append(bankOpts, dialogue.WithContent(content))
	}
	bank, err := dialogue.NewBank(bankOpts...)
	if err != nil {
		return err
	}

	// Classifier: rules or the model-backed variant.
	var emotionClassifier domain.EmotionClassifier
	switch cfg.ClassifierBackend {
	case config.ClassifierOpenAI:
		log.Info("using openai classifier", "model", cfg.OpenAIModel)
		emotionClassifier, err = classifier.NewOpenAIClassifier(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			return err
		}
	default:
		log.Info("using rule-based classifier")
		emotionClassifier = emotion.NewDefaultRules()
	}

	// Session registry: memory or redis.
	var sessionStore domain.SessionStore
	switch cfg.SessionBackend {
	case config.SessionBackendRedis:
		log.Info("using redis session store", "addr", cfg.RedisAddr)
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(cmd.Context()).Err(); err != nil {
			return err
		}
		sessionStore, err = redisstore.NewStore(client, redisstore.WithTTL(cfg.SessionTTL))
		if err != nil {
			return err
		}
	default:
		log.Info("using in-memory session store")
		sessionStore = memstore.NewSessionStore()
	}

	// Interaction log: JSONL files, or in-memory when disabled.
	var interactionStore domain.InteractionStore
	if cfg.ChatLogDir != "" {
		interactionStore, err = chatlog.NewFileStore(cfg.ChatLogDir)
		if err != nil {
			return err
		}
		log.Info("chat log enabled", "dir", cfg.ChatLogDir)
	} else {
		interactionStore = memstore.NewInteractionStore()
	}

	// Activity tracking: sqlite or memory.
	var activityStore domain.ActivityStore
	switch cfg.ActivityBackend {
	case config.ActivityBackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.ActivityDBPath), 0o755); err != nil {
			return err
		}
		store, err := sqlitestore.OpenActivityStore(cfg.ActivityDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		log.Info("using sqlite activity store", "path", cfg.ActivityDBPath)
		activityStore = store
	default:
		log.Info("using in-memory activity store")
		activityStore = memstore.NewActivityStore()
	}

	engine := dialogue.NewEngine(
		emotionClassifier,
		bank,
		sessionStore,
		interactionStore,
		dialogue.WithPolicy(dialogue.Policy{
			FollowUpProbability: cfg.FollowUpProbability,
			ReferralProbability: cfg.ReferralProbability,
			ReferralMinMessages: cfg.ReferralMinMessages,
			ReferralMaxMessages: cfg.ReferralMaxMessages,
		}),
		dialogue.WithCrisisDetector(emotion.NewCrisisKeywords()),
	)

	handler := httpadapter.NewServer(engine, activityStore, time.Now)

	addr := ":" + cfg.Port
	log.Info("CalmBot API listening", "addr", addr)
	return http.ListenAndServe(addr, handler)
}
